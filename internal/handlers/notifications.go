package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/supabase"
)

type NotificationsHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewNotificationsHandler(dbClient *supabase.DatabaseClient) *NotificationsHandler {
	return &NotificationsHandler{dbClient: dbClient}
}

// SaveSubscription godoc
// @Summary Save a Web Push subscription
// @Description Stores the browser push subscription for the authenticated user. Saving the same endpoint again refreshes its keys.
// @Tags notifications
// @Accept json
// @Produce json
// @Param subscription body models.SaveSubscriptionRequest true "Push subscription"
// @Success 200 {object} models.SubscriptionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /notifications/subscription [put]
func (h *NotificationsHandler) SaveSubscription(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.SaveSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	sub, err := h.dbClient.UpsertPushSubscription(userID, req.Endpoint, req.Keys.P256DH, req.Keys.Auth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save subscription",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.SubscriptionResponse{
		ID:        sub.ID.String(),
		Endpoint:  sub.Endpoint,
		CreatedAt: sub.CreatedAt,
	})
}

// ListSubscriptions godoc
// @Summary List Web Push subscriptions
// @Description Returns every stored subscription for the authenticated user.
// @Tags notifications
// @Produce json
// @Success 200 {array} models.SubscriptionResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /notifications/subscriptions [get]
func (h *NotificationsHandler) ListSubscriptions(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	subs, err := h.dbClient.ListPushSubscriptions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list subscriptions",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.SubscriptionResponse, len(subs))
	for i, sub := range subs {
		responses[i] = models.SubscriptionResponse{
			ID:        sub.ID.String(),
			Endpoint:  sub.Endpoint,
			CreatedAt: sub.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, responses)
}

// DeleteSubscription godoc
// @Summary Remove a Web Push subscription
// @Description Deletes the subscription matching the given endpoint for the authenticated user.
// @Tags notifications
// @Accept json
// @Produce json
// @Param subscription body models.DeleteSubscriptionRequest true "Subscription endpoint"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /notifications/subscription [delete]
func (h *NotificationsHandler) DeleteSubscription(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.DeleteSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if err := h.dbClient.DeletePushSubscription(userID, req.Endpoint); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "subscription not found",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
