package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/app/services"
	"github.com/cabanes/backstage/internal/middleware"
)

// StudentController handles student roster endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetAll retrieves the full roster
// @Summary List all students
// @Description Retrieves every student ordered by name
// @Tags student
// @Produce json
// @Success 200 {array} object "Students"
// @Failure 500 {object} dto.StatusResponse "Internal server error"
// @Router /student/getAll [get]
func (c *StudentController) GetAll(ctx *gin.Context) {
	students, err := c.studentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// FilterBy retrieves students matching a column filter
// @Summary Filter students
// @Description Retrieves students whose column contains the given value. The column must be one of the whitelisted student columns.
// @Tags student
// @Produce json
// @Param column query string true "Column to filter on"
// @Param value query string true "Substring to match"
// @Success 200 {array} object "Matching students"
// @Failure 400 {object} dto.StatusResponse "Column not filterable"
// @Router /student/filterBy [get]
func (c *StudentController) FilterBy(ctx *gin.Context) {
	students, err := c.studentService.FilterBy(ctx, ctx.Query("column"), ctx.Query("value"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// GetShows retrieves one student's show history
// @Summary Get a student's shows
// @Description Retrieves the shows a student appeared in with their roles per show
// @Tags student
// @Produce json
// @Param netID query string true "Student netID"
// @Success 200 {array} object "Show history"
// @Failure 400 {object} dto.StatusResponse "Missing netID"
// @Router /student/getShows [get]
func (c *StudentController) GetShows(ctx *gin.Context) {
	shows, err := c.studentService.GetShows(ctx, ctx.Query("netID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, shows)
}

// Add creates a student
// @Summary Add a student
// @Description Creates a student from form fields
// @Tags student
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param netID formData string true "Student netID"
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param gradeLevel formData string true "Grade level"
// @Param pronouns formData string false "Pronouns"
// @Param specialNotes formData string false "Special notes"
// @Param email formData string false "Email"
// @Param allergies formData string false "Allergies and sensitivities"
// @Success 200 {object} dto.StatusResponse "Student added"
// @Failure 400 {object} dto.StatusResponse "Validation failed"
// @Failure 409 {object} dto.StatusResponse "Student already exists"
// @Router /student/add [post]
func (c *StudentController) Add(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.studentService.Add(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student added successfully!"))
}

// Edit updates the student identified by the path netID
// @Summary Edit a student
// @Description Updates a student; newNetID may reassign the identifier
// @Tags student
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param netID path string true "Current netID"
// @Param newNetID formData string true "New netID (may equal the current one)"
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param gradeLevel formData string true "Grade level"
// @Param pronouns formData string false "Pronouns"
// @Param specialNotes formData string false "Special notes"
// @Param email formData string false "Email"
// @Param allergies_sensitivities formData string false "Allergies and sensitivities"
// @Success 200 {object} dto.StatusResponse "Student updated"
// @Failure 400 {object} dto.StatusResponse "Validation failed or netID still referenced"
// @Failure 404 {object} dto.StatusResponse "Student not found"
// @Router /student/{netID}/edit [post]
func (c *StudentController) Edit(ctx *gin.Context) {
	var req dto.EditStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.studentService.Edit(ctx, ctx.Param("netID"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student updated successfully!"))
}

// Delete removes a student
// @Summary Delete a student
// @Description Removes a student by netID. Fails while actor, crew or character rows still reference it.
// @Tags student
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param netID formData string true "Student netID"
// @Success 200 {object} dto.StatusResponse "Student deleted"
// @Failure 400 {object} dto.StatusResponse "Student still referenced"
// @Failure 404 {object} dto.StatusResponse "Student not found"
// @Router /student/delete [post]
func (c *StudentController) Delete(ctx *gin.Context) {
	var req dto.DeleteByNetIDRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.studentService.Delete(ctx, req.NetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student deleted successfully!"))
}
