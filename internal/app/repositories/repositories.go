package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all entity repositories over one shared pool.
type Repositories struct {
	Student     *StudentRepository
	Actor       *ActorRepository
	Crew        *CrewRepository
	Show        *ShowRepository
	Character   *CharacterRepository
	Scene       *SceneRepository
	SceneDetail *SceneDetailRepository
	Staff       *StaffRepository
}

// NewRepositories creates all repositories. The pool is owned by the server;
// repositories only borrow connections per call.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Student:     NewStudentRepository(db),
		Actor:       NewActorRepository(db),
		Crew:        NewCrewRepository(db),
		Show:        NewShowRepository(db),
		Character:   NewCharacterRepository(db),
		Scene:       NewSceneRepository(db),
		SceneDetail: NewSceneDetailRepository(db),
		Staff:       NewStaffRepository(db),
	}
}
