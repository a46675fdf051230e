package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aiman/admitbot/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, webhookController *controllers.WebhookController) {
	router.POST("/webhook", webhookController.HandleWebhook)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
