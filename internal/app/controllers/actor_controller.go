package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/app/services"
	"github.com/cabanes/backstage/internal/middleware"
)

// ActorController handles actor profile endpoints
type ActorController struct {
	actorService *services.ActorService
}

// NewActorController creates a new ActorController
func NewActorController(actorService *services.ActorService) *ActorController {
	return &ActorController{actorService: actorService}
}

// GetAll retrieves all actor profiles
// @Summary List all actors
// @Description Retrieves every actor with their student fields and measurement sheet
// @Tags actors
// @Produce json
// @Success 200 {array} object "Actors"
// @Failure 500 {object} dto.StatusResponse "Internal server error"
// @Router /actors/getAll [get]
func (c *ActorController) GetAll(ctx *gin.Context) {
	actors, err := c.actorService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, actors)
}

// FilterBy retrieves actors matching a column filter
// @Summary Filter actors
// @Description Retrieves actors by netID, name, or the shows they appeared in (column "shows" matches show IDs)
// @Tags actors
// @Produce json
// @Param column query string true "Column to filter on"
// @Param value query string true "Substring to match"
// @Success 200 {array} object "Matching actors"
// @Failure 400 {object} dto.StatusResponse "Column not filterable"
// @Router /actors/filterBy [get]
func (c *ActorController) FilterBy(ctx *gin.Context) {
	actors, err := c.actorService.FilterBy(ctx, ctx.Query("column"), ctx.Query("value"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, actors)
}

// Get retrieves one actor profile
// @Summary Get one actor
// @Description Retrieves a single actor profile by netID
// @Tags actors
// @Produce json
// @Param netID query string true "Actor netID"
// @Success 200 {object} object "Actor profile"
// @Failure 404 {object} dto.StatusResponse "Actor not found"
// @Router /actors/get [get]
func (c *ActorController) Get(ctx *gin.Context) {
	actor, err := c.actorService.GetByNetID(ctx, ctx.Query("netID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, actor)
}

// Add creates an actor profile
// @Summary Add an actor
// @Description Creates an actor profile for an existing student
// @Tags actors
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param netID formData string true "Student netID"
// @Param yearsActingExperience formData int false "Years of acting experience"
// @Success 200 {object} dto.StatusResponse "Actor added"
// @Failure 400 {object} dto.StatusResponse "Student does not exist"
// @Failure 409 {object} dto.StatusResponse "Actor profile already exists"
// @Router /actors/add [post]
func (c *ActorController) Add(ctx *gin.Context) {
	var req dto.AddActorRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.actorService.Add(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Actor added successfully!"))
}

// Edit updates an actor profile
// @Summary Edit an actor
// @Description Updates the measurement sheet of the actor identified by netID
// @Tags actors
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param netID formData string true "Actor netID"
// @Success 200 {object} dto.StatusResponse "Actor updated"
// @Failure 404 {object} dto.StatusResponse "Actor not found"
// @Router /actors/edit [post]
func (c *ActorController) Edit(ctx *gin.Context) {
	var req dto.EditActorRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.actorService.Edit(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Actor updated successfully!"))
}

// Delete removes an actor profile
// @Summary Delete an actor
// @Description Removes an actor profile by netID. Fails while characters still reference it.
// @Tags actors
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param netID formData string true "Actor netID"
// @Success 200 {object} dto.StatusResponse "Actor deleted"
// @Failure 400 {object} dto.StatusResponse "Actor still referenced"
// @Failure 404 {object} dto.StatusResponse "Actor not found"
// @Router /actors/delete [post]
func (c *ActorController) Delete(ctx *gin.Context) {
	var req dto.DeleteByNetIDRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.actorService.Delete(ctx, req.NetID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Actor deleted successfully!"))
}
