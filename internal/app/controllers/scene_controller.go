package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/app/services"
	"github.com/cabanes/backstage/internal/middleware"
)

// SceneController handles scene and scene detail endpoints
type SceneController struct {
	sceneService *services.SceneService
}

// NewSceneController creates a new SceneController
func NewSceneController(sceneService *services.SceneService) *SceneController {
	return &SceneController{sceneService: sceneService}
}

// GetAll retrieves all scenes
// @Summary List all scenes
// @Description Retrieves every scene with its show information
// @Tags scenes
// @Produce json
// @Success 200 {array} object "Scenes"
// @Failure 500 {object} dto.StatusResponse "Internal server error"
// @Router /scenes/getAll [get]
func (c *SceneController) GetAll(ctx *gin.Context) {
	scenes, err := c.sceneService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, scenes)
}

// FilterBy retrieves scenes matching a column filter
// @Summary Filter scenes
// @Description Retrieves scenes whose column contains the given value
// @Tags scenes
// @Produce json
// @Param column query string true "Column to filter on"
// @Param value query string true "Substring to match"
// @Success 200 {array} object "Matching scenes"
// @Failure 400 {object} dto.StatusResponse "Column not filterable"
// @Router /scenes/filterBy [get]
func (c *SceneController) FilterBy(ctx *gin.Context) {
	scenes, err := c.sceneService.FilterBy(ctx, ctx.Query("column"), ctx.Query("value"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, scenes)
}

// ForShow retrieves the scenes of one show
// @Summary Get a show's scenes
// @Description Retrieves the scenes of one show in running order
// @Tags scenes
// @Produce json
// @Param showID query int true "Show ID"
// @Success 200 {array} object "Scenes"
// @Failure 400 {object} dto.StatusResponse "Invalid show ID"
// @Router /scenes/forShow [get]
func (c *SceneController) ForShow(ctx *gin.Context) {
	showID, err := strconv.ParseInt(ctx.Query("showID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("showID must be a number"))
		return
	}

	scenes, err := c.sceneService.ForShow(ctx, showID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, scenes)
}

// Add creates a scene
// @Summary Add a scene
// @Description Creates a scene of an existing show
// @Tags scenes
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param showID formData int true "Show ID"
// @Param sceneName formData string true "Scene name"
// @Param actNumber formData int false "Act number"
// @Param location formData string false "Location"
// @Param song formData string false "Song"
// @Param scriptPage formData string false "Script page"
// @Param crewNotes formData string false "Crew notes"
// @Success 200 {object} dto.StatusResponse "Scene added"
// @Failure 400 {object} dto.StatusResponse "Show does not exist"
// @Router /scenes/add [post]
func (c *SceneController) Add(ctx *gin.Context) {
	var req dto.AddSceneRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.sceneService.Add(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Scene added successfully!"))
}

// Edit updates a scene
// @Summary Edit a scene
// @Description Updates the scene identified by sceneID; the show binding stays put
// @Tags scenes
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param sceneID formData int true "Scene ID"
// @Param sceneName formData string true "Scene name"
// @Success 200 {object} dto.StatusResponse "Scene updated"
// @Failure 404 {object} dto.StatusResponse "Scene not found"
// @Router /scenes/edit [post]
func (c *SceneController) Edit(ctx *gin.Context) {
	var req dto.EditSceneRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.sceneService.Edit(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Scene updated successfully!"))
}

// Delete removes a scene
// @Summary Delete a scene
// @Description Removes a scene by ID. Fails while character details still reference it.
// @Tags scenes
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param sceneID formData int true "Scene ID"
// @Success 200 {object} dto.StatusResponse "Scene deleted"
// @Failure 400 {object} dto.StatusResponse "Scene still referenced"
// @Failure 404 {object} dto.StatusResponse "Scene not found"
// @Router /scenes/delete [post]
func (c *SceneController) Delete(ctx *gin.Context) {
	var req dto.DeleteSceneRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.sceneService.Delete(ctx, req.SceneID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Scene deleted successfully!"))
}

// DetailsForScene retrieves the character details of one scene
// @Summary Get a scene's character details
// @Description Retrieves the costume logistics of every character in a scene
// @Tags sceneDetails
// @Produce json
// @Param sceneID query int true "Scene ID"
// @Success 200 {array} object "Character details"
// @Failure 400 {object} dto.StatusResponse "Invalid scene ID"
// @Router /sceneDetails/forScene [get]
func (c *SceneController) DetailsForScene(ctx *gin.Context) {
	sceneID, err := strconv.ParseInt(ctx.Query("sceneID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("sceneID must be a number"))
		return
	}

	details, err := c.sceneService.DetailsForScene(ctx, sceneID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// AddDetail records a character's costume logistics in a scene
// @Summary Add a scene detail
// @Description Records a character's costume logistics for a scene
// @Tags sceneDetails
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param sceneID formData int true "Scene ID"
// @Param characterName formData string true "Character name"
// @Param showID formData int true "Show ID"
// @Param costumeChange formData int false "Costume change (0/1)"
// @Param costumeDescription formData string false "Costume description"
// @Param location formData string false "Location"
// @Param changeLocation formData string false "Change location"
// @Param changeDuration formData string false "Change duration"
// @Param notes formData string false "Notes"
// @Success 200 {object} dto.StatusResponse "Scene detail added"
// @Failure 400 {object} dto.StatusResponse "Scene or character does not exist"
// @Failure 409 {object} dto.StatusResponse "Character already detailed for this scene"
// @Router /sceneDetails/add [post]
func (c *SceneController) AddDetail(ctx *gin.Context) {
	var req dto.AddSceneDetailRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.sceneService.AddDetail(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Scene detail added successfully!"))
}

// EditDetail updates one character's detail in a scene
// @Summary Edit a scene detail
// @Description Updates the costume logistics of one character in a scene
// @Tags sceneDetails
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param sceneID formData int true "Scene ID"
// @Param characterName formData string true "Character name"
// @Param showID formData int true "Show ID"
// @Success 200 {object} dto.StatusResponse "Scene detail updated"
// @Failure 404 {object} dto.StatusResponse "Scene detail not found"
// @Router /sceneDetails/edit [post]
func (c *SceneController) EditDetail(ctx *gin.Context) {
	var req dto.EditSceneDetailRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.sceneService.EditDetail(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Scene detail updated successfully!"))
}

// DeleteDetail removes one character's detail from a scene
// @Summary Delete a scene detail
// @Description Removes one character's costume logistics from a scene
// @Tags sceneDetails
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param sceneID formData int true "Scene ID"
// @Param characterName formData string true "Character name"
// @Param showID formData int true "Show ID"
// @Success 200 {object} dto.StatusResponse "Scene detail deleted"
// @Failure 404 {object} dto.StatusResponse "Scene detail not found"
// @Router /sceneDetails/delete [post]
func (c *SceneController) DeleteDetail(ctx *gin.Context) {
	var req dto.DeleteSceneDetailRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.sceneService.DeleteDetail(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Scene detail deleted successfully!"))
}
