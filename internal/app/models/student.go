package models

// Student represents one member of the theater department. The netID is the
// business identifier; edits may reassign it when the registrar reissues one.
type Student struct {
	NetID                  string `json:"netID" db:"netID"`
	FirstName              string `json:"firstName" db:"firstName"`
	LastName               string `json:"lastName" db:"lastName"`
	GradeLevel             string `json:"gradeLevel" db:"gradeLevel"`
	Pronouns               string `json:"pronouns" db:"pronouns"`
	SpecialNotes           string `json:"specialNotes" db:"specialNotes"`
	Email                  string `json:"email" db:"email"`
	AllergiesSensitivities string `json:"allergies_sensitivities" db:"allergies_sensitivities"`
}
