package models

// Crew extends a Student with technical skill flags and specialties.
type Crew struct {
	NetID         string `json:"netID" db:"netID"`
	WigTrained    bool   `json:"wigTrained" db:"wigTrained"`
	MakeupTrained bool   `json:"makeupTrained" db:"makeupTrained"`
	MusicReading  bool   `json:"musicReading" db:"musicReading"`
	Lighting      string `json:"lighting" db:"lighting"`
	Sound         string `json:"sound" db:"sound"`
	Specialty     string `json:"specialty" db:"specialty"`
	Notes         string `json:"notes" db:"notes"`
}

// CrewAssignment places a crew member on a show with a role description.
type CrewAssignment struct {
	CrewID string `json:"crewID" db:"crewID"`
	ShowID int64  `json:"showID" db:"showID"`
	Roles  string `json:"roles" db:"roles"`
}
