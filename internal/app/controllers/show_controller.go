package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/app/services"
	"github.com/cabanes/backstage/internal/middleware"
)

// ShowController handles show and crew assignment endpoints
type ShowController struct {
	showService *services.ShowService
}

// NewShowController creates a new ShowController
func NewShowController(showService *services.ShowService) *ShowController {
	return &ShowController{showService: showService}
}

// GetAll retrieves all shows
// @Summary List all shows
// @Description Retrieves every show ordered by semester and name
// @Tags shows
// @Produce json
// @Success 200 {array} object "Shows"
// @Failure 500 {object} dto.StatusResponse "Internal server error"
// @Router /shows/getAll [get]
func (c *ShowController) GetAll(ctx *gin.Context) {
	shows, err := c.showService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, shows)
}

// GetShowIDName resolves shows for the pick-a-show widgets
// @Summary Search shows
// @Description Retrieves showName, yearSemester and showID for shows matching the search column and value
// @Tags shows
// @Produce json
// @Param searchBy query string true "Column to search (showID, showName, yearSemester)"
// @Param searchValue query string true "Substring to match"
// @Success 200 {array} object "Matching shows"
// @Failure 400 {object} dto.StatusResponse "Column not searchable"
// @Router /shows/getShowIDName [get]
func (c *ShowController) GetShowIDName(ctx *gin.Context) {
	shows, err := c.showService.Search(ctx, ctx.Query("searchBy"), ctx.Query("searchValue"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, shows)
}

// GetCrew retrieves the crew roster of one show
// @Summary Get a show's crew
// @Description Retrieves the crew assigned to a show with their roles
// @Tags shows
// @Produce json
// @Param showID query int true "Show ID"
// @Success 200 {array} object "Crew assignments"
// @Failure 400 {object} dto.StatusResponse "Invalid show ID"
// @Router /shows/getCrew [get]
func (c *ShowController) GetCrew(ctx *gin.Context) {
	showID, err := strconv.ParseInt(ctx.Query("showID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("showID must be a number"))
		return
	}

	crew, err := c.showService.GetCrew(ctx, showID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, crew)
}

// Add creates a show
// @Summary Add a show
// @Description Creates a show from form fields
// @Tags shows
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param showName formData string true "Show name"
// @Param yearSemester formData string false "Year and semester"
// @Param director formData string false "Director"
// @Param genre formData string false "Genre"
// @Param playWright formData string false "Playwright"
// @Success 200 {object} dto.StatusResponse "Show added"
// @Failure 400 {object} dto.StatusResponse "Validation failed"
// @Router /shows/add [post]
func (c *ShowController) Add(ctx *gin.Context) {
	var req dto.AddShowRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.showService.Add(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Show added successfully!"))
}

// Edit updates a show
// @Summary Edit a show
// @Description Updates the show identified by showID
// @Tags shows
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param showID formData int true "Show ID"
// @Param showName formData string true "Show name"
// @Success 200 {object} dto.StatusResponse "Show updated"
// @Failure 404 {object} dto.StatusResponse "Show not found"
// @Router /shows/edit [post]
func (c *ShowController) Edit(ctx *gin.Context) {
	var req dto.EditShowRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.showService.Edit(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Show updated successfully!"))
}

// Delete removes a show
// @Summary Delete a show
// @Description Removes a show by ID. Fails while characters, scenes or crew assignments still reference it.
// @Tags shows
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param showID formData int true "Show ID"
// @Success 200 {object} dto.StatusResponse "Show deleted"
// @Failure 400 {object} dto.StatusResponse "Show still referenced"
// @Failure 404 {object} dto.StatusResponse "Show not found"
// @Router /shows/delete [post]
func (c *ShowController) Delete(ctx *gin.Context) {
	var req dto.DeleteShowRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.showService.Delete(ctx, req.ShowID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Show deleted successfully!"))
}

// AddCrew assigns a crew member to a show
// @Summary Assign crew to a show
// @Description Places a crew member on a show with their roles
// @Tags shows
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param crewID formData string true "Crew netID"
// @Param showID formData int true "Show ID"
// @Param roles formData string false "Roles on this show"
// @Success 200 {object} dto.StatusResponse "Crew assigned"
// @Failure 400 {object} dto.StatusResponse "Crew member or show does not exist"
// @Failure 409 {object} dto.StatusResponse "Already assigned"
// @Router /shows/addCrew [post]
func (c *ShowController) AddCrew(ctx *gin.Context) {
	var req dto.AssignCrewRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.showService.AssignCrew(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Crew assigned successfully!"))
}

// RemoveCrew takes a crew member off a show
// @Summary Remove crew from a show
// @Description Removes a crew member's assignment to a show
// @Tags shows
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param crewID formData string true "Crew netID"
// @Param showID formData int true "Show ID"
// @Success 200 {object} dto.StatusResponse "Assignment removed"
// @Failure 404 {object} dto.StatusResponse "Assignment not found"
// @Router /shows/removeCrew [post]
func (c *ShowController) RemoveCrew(ctx *gin.Context) {
	var req dto.RemoveCrewRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.showService.RemoveCrew(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Crew assignment removed successfully!"))
}
