package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/app/services"
	"github.com/cabanes/backstage/internal/middleware"
)

// CharacterController handles character endpoints
type CharacterController struct {
	characterService *services.CharacterService
}

// NewCharacterController creates a new CharacterController
func NewCharacterController(characterService *services.CharacterService) *CharacterController {
	return &CharacterController{characterService: characterService}
}

// GetAll retrieves all characters
// @Summary List all characters
// @Description Retrieves every character with actor and show information
// @Tags characters
// @Produce json
// @Success 200 {array} object "Characters"
// @Failure 500 {object} dto.StatusResponse "Internal server error"
// @Router /characters/getAll [get]
func (c *CharacterController) GetAll(ctx *gin.Context) {
	characters, err := c.characterService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, characters)
}

// FilterBy retrieves characters matching a column filter. The page parameter
// names the table the column belongs to: c for characters, s for student, sh
// for shows.
// @Summary Filter characters
// @Description Retrieves characters matching a column under the given table alias (page: c, s, or sh)
// @Tags characters
// @Produce json
// @Param column query string true "Column to filter on"
// @Param value query string true "Substring to match"
// @Param page query string true "Table alias: c (characters), s (student), sh (shows)"
// @Success 200 {array} object "Matching characters"
// @Failure 400 {object} dto.StatusResponse "Alias/column pair not filterable"
// @Router /characters/filterBy [get]
func (c *CharacterController) FilterBy(ctx *gin.Context) {
	characters, err := c.characterService.FilterBy(ctx,
		ctx.Query("page"), ctx.Query("column"), ctx.Query("value"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, characters)
}

// Add creates a character
// @Summary Add a character
// @Description Creates a character played by an existing actor in an existing show
// @Tags characters
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param characterName formData string true "Character name"
// @Param netID formData string true "Actor netID"
// @Param showID formData int true "Show ID"
// @Success 200 {object} dto.StatusResponse "Character added"
// @Failure 400 {object} dto.StatusResponse "Referenced netID or showID does not exist"
// @Failure 409 {object} dto.StatusResponse "Character already exists for this show"
// @Router /characters/add [post]
func (c *CharacterController) Add(ctx *gin.Context) {
	var req dto.AddCharacterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.characterService.Add(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Character added successfully!"))
}

// Edit renames a character and recasts its actor
// @Summary Edit a character
// @Description Updates a character matched by its old name; the show binding stays put
// @Tags characters
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param NewCharacterName formData string true "New character name"
// @Param netID formData string true "Actor netID"
// @Param OldcharacterName formData string true "Current character name"
// @Success 200 {object} dto.StatusResponse "Character updated"
// @Failure 404 {object} dto.StatusResponse "Character not found"
// @Router /characters/edit [post]
func (c *CharacterController) Edit(ctx *gin.Context) {
	var req dto.EditCharacterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.characterService.Edit(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Character updated successfully!"))
}

// Delete removes a character
// @Summary Delete a character
// @Description Removes a character by name within a show. Fails while scene details still reference it.
// @Tags characters
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param characterName formData string true "Character name"
// @Param showID formData int true "Show ID"
// @Success 200 {object} dto.StatusResponse "Character deleted"
// @Failure 400 {object} dto.StatusResponse "Character still referenced"
// @Failure 404 {object} dto.StatusResponse "Character not found"
// @Router /characters/delete [post]
func (c *CharacterController) Delete(ctx *gin.Context) {
	var req dto.DeleteCharacterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := c.characterService.Delete(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Character deleted successfully!"))
}
