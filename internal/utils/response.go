package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/dto/common"
)

// HandleSuccess answers 200 with data wrapped in the API envelope
func HandleSuccess(c *gin.Context, data interface{}) {
	respond(c, http.StatusOK, common.NewSuccessResponse(data))
}

// HandleCreated answers 201, used when a lead has been stored
func HandleCreated(c *gin.Context, data interface{}) {
	respond(c, http.StatusCreated, common.NewSuccessResponse(data))
}

func HandleMessage(c *gin.Context, message string) {
	respond(c, http.StatusOK, common.NewMessageResponse(message))
}

func respond(c *gin.Context, status int, body common.APIResponse) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, body)
}
