package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/dto/common"
	"github.com/webcraftstudio/webcraft/internal/utils"
	"github.com/webcraftstudio/webcraft/internal/version"
)

// Pinger is anything whose liveness can be checked, such as the lead database
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeInternalServer, "Database connection error")
		return
	}

	utils.HandleMessage(c, "Health check OK")
}

// Version reports the server's build information
func (h *HealthHandler) Version(c *gin.Context) {
	utils.HandleSuccess(c, version.GetBuildInfo())
}
