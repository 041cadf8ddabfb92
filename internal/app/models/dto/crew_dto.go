package dto

// CrewFields is the shared set of crew profile form fields. The trained
// flags arrive as 0/1 from the HTML forms.
type CrewFields struct {
	WigTrained    int    `form:"wigTrained"`
	MakeupTrained int    `form:"makeupTrained"`
	MusicReading  int    `form:"musicReading"`
	Lighting      string `form:"lighting"`
	Sound         string `form:"sound"`
	Specialty     string `form:"specialty"`
	Notes         string `form:"notes"`
}

// AddCrewRequest creates a crew profile for an existing student.
type AddCrewRequest struct {
	NetID string `form:"netID" binding:"required"`
	CrewFields
}

// EditCrewRequest updates a crew profile.
type EditCrewRequest struct {
	NetID string `form:"netID" binding:"required"`
	CrewFields
}

// AssignCrewRequest assigns a crew member to a show.
type AssignCrewRequest struct {
	CrewID string `form:"crewID" binding:"required"`
	ShowID int64  `form:"showID" binding:"required"`
	Roles  string `form:"roles"`
}

// RemoveCrewRequest removes a crew member from a show.
type RemoveCrewRequest struct {
	CrewID string `form:"crewID" binding:"required"`
	ShowID int64  `form:"showID" binding:"required"`
}
