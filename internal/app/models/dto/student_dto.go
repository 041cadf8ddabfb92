package dto

// AddStudentRequest carries the form fields for creating a student.
type AddStudentRequest struct {
	NetID                  string `form:"netID" binding:"required"`
	FirstName              string `form:"firstName" binding:"required"`
	LastName               string `form:"lastName" binding:"required"`
	GradeLevel             string `form:"gradeLevel" binding:"required"`
	Pronouns               string `form:"pronouns"`
	SpecialNotes           string `form:"specialNotes"`
	Email                  string `form:"email" binding:"omitempty,email"`
	AllergiesSensitivities string `form:"allergies"`
}

// EditStudentRequest carries the form fields for updating a student. The old
// netID travels in the URL path; newNetID may reassign the identifier.
type EditStudentRequest struct {
	NewNetID               string `form:"newNetID" binding:"required"`
	FirstName              string `form:"firstName" binding:"required"`
	LastName               string `form:"lastName" binding:"required"`
	GradeLevel             string `form:"gradeLevel" binding:"required"`
	Pronouns               string `form:"pronouns"`
	SpecialNotes           string `form:"specialNotes"`
	Email                  string `form:"email" binding:"omitempty,email"`
	AllergiesSensitivities string `form:"allergies_sensitivities"`
}

// DeleteByNetIDRequest identifies a row by netID for deletion.
type DeleteByNetIDRequest struct {
	NetID string `form:"netID" binding:"required"`
}
