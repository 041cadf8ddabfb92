package services

import (
	"github.com/cabanes/backstage/internal/app/repositories"
	"github.com/cabanes/backstage/internal/pkg/auth"
)

// Services defined in this package:
// - StudentService: roster operations and per-student show history
// - ActorService: actor profiles and measurement sheets
// - CrewService: crew profiles
// - ShowService: shows, show lookup and crew assignments
// - CharacterService: roles linking actors to shows
// - SceneService: scenes and per-scene character details
// - AuthService: staff registration and login

// Services bundles all services for dependency injection.
type Services struct {
	Student   *StudentService
	Actor     *ActorService
	Crew      *CrewService
	Show      *ShowService
	Character *CharacterService
	Scene     *SceneService
	Auth      *AuthService
}

// NewServices wires all services over the repository container.
func NewServices(repos *repositories.Repositories, jwt *auth.JWTService) *Services {
	return &Services{
		Student:   NewStudentService(repos.Student),
		Actor:     NewActorService(repos.Actor),
		Crew:      NewCrewService(repos.Crew),
		Show:      NewShowService(repos.Show),
		Character: NewCharacterService(repos.Character),
		Scene:     NewSceneService(repos.Scene, repos.SceneDetail),
		Auth:      NewAuthService(repos.Staff, jwt),
	}
}
