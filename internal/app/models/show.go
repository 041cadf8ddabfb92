package models

// Show represents one production in a given semester.
type Show struct {
	ShowID       int64  `json:"showID" db:"showID"`
	ShowName     string `json:"showName" db:"showName"`
	YearSemester string `json:"yearSemester" db:"yearSemester"`
	Director     string `json:"director" db:"director"`
	Genre        string `json:"genre" db:"genre"`
	PlayWright   string `json:"playWright" db:"playWright"`
}
