package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aiman/admitbot/internal/app/intents"
	"github.com/aiman/admitbot/internal/app/models/dto"
	"github.com/aiman/admitbot/internal/app/reply"
	"github.com/aiman/admitbot/internal/pkg/logger"
)

// WebhookController handles fulfillment requests from the conversational
// platform. It is the failure boundary: whatever happens inside the dispatch
// sequence, the platform gets a well-formed reply envelope back.
type WebhookController struct {
	router    *intents.Router
	formatter *reply.Formatter
}

// NewWebhookController creates a new WebhookController
func NewWebhookController(router *intents.Router, formatter *reply.Formatter) *WebhookController {
	return &WebhookController{
		router:    router,
		formatter: formatter,
	}
}

// HandleWebhook processes one fulfillment request
// @Summary Fulfillment webhook
// @Description Maps the resolved intent to a query plan and returns the formatted reply
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body dto.WebhookRequest true "Fulfillment request"
// @Success 200 {object} dto.WebhookResponse "Reply envelope; also returned for application-level failures"
// @Router /webhook [post]
func (c *WebhookController) HandleWebhook(ctx *gin.Context) {
	var req dto.WebhookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Warn().Err(err).Msg("Malformed webhook payload")
		ctx.JSON(http.StatusOK, dto.NewWebhookResponse(reply.Apology()))
		return
	}

	requestID := req.ResponseID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	intentName := req.QueryResult.Intent.DisplayName
	params := intents.Params(req.QueryResult.Parameters)

	logger.Info().
		Str("requestId", requestID).
		Str("intent", intentName).
		Int("paramCount", len(params)).
		Msg("Webhook request received")

	text := c.dispatch(ctx.Request.Context(), intentName, params, requestID)

	ctx.JSON(http.StatusOK, dto.NewWebhookResponse(text))
}

// dispatch runs route -> execute -> format and converts every failure mode,
// panics included, into the generic apology text.
func (c *WebhookController) dispatch(ctx context.Context, intentName string, params intents.Params, requestID string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Interface("panic", r).
				Str("requestId", requestID).
				Str("intent", intentName).
				Msg("Panic during intent dispatch")
			text = reply.Apology()
		}
	}()

	plan := c.router.Route(intentName)

	result, err := plan.Execute(ctx, params)
	if err != nil {
		logger.Error().
			Err(err).
			Str("requestId", requestID).
			Str("intent", intentName).
			Msg("Intent dispatch failed")
		return reply.Apology()
	}

	return c.formatter.Format(result)
}
