package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/app/services"
	"github.com/cabanes/backstage/internal/middleware"
)

// CrewController handles crew profile endpoints
type CrewController struct {
	crewService *services.CrewService
}

// NewCrewController creates a new CrewController
func NewCrewController(crewService *services.CrewService) *CrewController {
	return &CrewController{crewService: crewService}
}

// GetAll retrieves all crew profiles
// @Summary List all crew
// @Description Retrieves every crew member with training flags rendered as Yes/No
// @Tags crew
// @Produce json
// @Success 200 {array} object "Crew members"
// @Failure 500 {object} dto.StatusResponse "Internal server error"
// @Router /crew/getAll [get]
func (c *CrewController) GetAll(ctx *gin.Context) {
	crew, err := c.crewService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, crew)
}

// FilterBy retrieves crew members matching a column filter
// @Summary Filter crew
// @Description Retrieves crew members whose column contains the given value
// @Tags crew
// @Produce json
// @Param column query string true "Column to filter on"
// @Param value query string true "Substring to match"
// @Success 200 {array} object "Matching crew members"
// @Failure 400 {object} dto.StatusResponse "Column not filterable"
// @Router /crew/filterBy [get]
func (c *CrewController) FilterBy(ctx *gin.Context) {
	crew, err := c.crewService.FilterBy(ctx, ctx.Query("column"), ctx.Query("value"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, crew)
}

// Add creates a crew profile
// @Summary Add a crew member
// @Description Creates a crew profile for an existing student. Training flags arrive as 0/1.
// @Tags crew
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param netID formData string true "Student netID"
// @Param wigTrained formData int false "Wig trained (0/1)"
// @Param makeupTrained formData int false "Makeup trained (0/1)"
// @Param musicReading formData int false "Reads music (0/1)"
// @Param lighting formData string false "Lighting experience"
// @Param sound formData string false "Sound experience"
// @Param specialty formData string false "Specialty"
// @Param notes formData string false "Notes"
// @Success 200 {object} dto.StatusResponse "Crew member added"
// @Failure 400 {object} dto.StatusResponse "Student does not exist"
// @Failure 409 {object} dto.StatusResponse "Crew profile already exists"
// @Router /crew/add [post]
func (c *CrewController) Add(ctx *gin.Context) {
	var req dto.AddCrewRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.crewService.Add(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Crew member added successfully!"))
}

// Edit updates a crew profile
// @Summary Edit a crew member
// @Description Updates the crew profile identified by netID
// @Tags crew
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param netID formData string true "Crew netID"
// @Success 200 {object} dto.StatusResponse "Crew member updated"
// @Failure 404 {object} dto.StatusResponse "Crew member not found"
// @Router /crew/edit [post]
func (c *CrewController) Edit(ctx *gin.Context) {
	var req dto.EditCrewRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.crewService.Edit(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Crew member updated successfully!"))
}

// Delete removes a crew profile
// @Summary Delete a crew member
// @Description Removes a crew profile by netID. Fails while show assignments still reference it.
// @Tags crew
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param netID formData string true "Crew netID"
// @Success 200 {object} dto.StatusResponse "Crew member deleted"
// @Failure 400 {object} dto.StatusResponse "Crew member still assigned to shows"
// @Failure 404 {object} dto.StatusResponse "Crew member not found"
// @Router /crew/delete [post]
func (c *CrewController) Delete(ctx *gin.Context) {
	var req dto.DeleteByNetIDRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.crewService.Delete(ctx, req.NetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Crew member deleted successfully!"))
}
