package dto

// AddShowRequest carries the form fields for creating a show.
type AddShowRequest struct {
	ShowName     string `form:"showName" binding:"required"`
	YearSemester string `form:"yearSemester"`
	Director     string `form:"director"`
	Genre        string `form:"genre"`
	PlayWright   string `form:"playWright"`
}

// EditShowRequest updates a show identified by its numeric ID.
type EditShowRequest struct {
	ShowID       int64  `form:"showID" binding:"required"`
	ShowName     string `form:"showName" binding:"required"`
	YearSemester string `form:"yearSemester"`
	Director     string `form:"director"`
	Genre        string `form:"genre"`
	PlayWright   string `form:"playWright"`
}

// DeleteShowRequest identifies a show for deletion.
type DeleteShowRequest struct {
	ShowID int64 `form:"showID" binding:"required"`
}
