package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cabanes/backstage/internal/app/models/dto"
)

// HealthController reports service liveness
type HealthController struct {
	db *pgxpool.Pool
}

// NewHealthController creates a new HealthController
func NewHealthController(db *pgxpool.Pool) *HealthController {
	return &HealthController{db: db}
}

// Check reports whether the service and its database are reachable
// @Summary Health check
// @Description Pings the database and reports service health
// @Tags health
// @Produce json
// @Success 200 {object} dto.StatusResponse "Service healthy"
// @Failure 503 {object} dto.StatusResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	if err := c.db.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("database unreachable"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("ok"))
}
