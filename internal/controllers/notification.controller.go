package controllers

import (
	"log"
	"net/http"
	"strconv"

	"ricettario/internal/repository"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationController(notificationRepo repository.NotificationRepository) *NotificationController {
	return &NotificationController{notificationRepo: notificationRepo}
}

// GetNotifications godoc
// @Summary The current user's notification inbox
// @Description Payloads are decoded according to each notification's type tag.
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "Notifications retrieved successfully"
// @Router /notifications [get]
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	notifications, err := nc.notificationRepo.ListForUser(currentUserID(c))
	if err != nil {
		internalError(c, "Failed to retrieve notifications", err)
		return
	}

	inbox := make([]gin.H, 0, len(notifications))
	for _, n := range notifications {
		entry := gin.H{
			"id":         n.ID,
			"type":       n.Type,
			"read":       n.Read,
			"created_at": n.CreatedAt,
		}
		payload, err := n.DecodePayload()
		if err != nil {
			// A malformed row should not hide the rest of the inbox
			log.Printf("Failed to decode notification %d: %v", n.ID, err)
		} else {
			entry["data"] = payload
		}
		inbox = append(inbox, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notifications retrieved successfully",
		"data":    inbox,
	})
}

// MarkNotificationRead godoc
// @Summary Mark a notification as read
// @Description Recipient only: 404 for an unknown ID, 403 for someone else's notification.
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]interface{} "Notification marked as read"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Router /notifications/{id}/read [post]
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid notification ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	notification, err := nc.notificationRepo.FindByID(uint(id))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Notification not found",
				"error":   "No notification exists with the provided ID",
			})
			return
		}
		internalError(c, "Failed to retrieve notification", err)
		return
	}

	if notification.RecipientID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Forbidden",
			"error":   "Only the recipient can mark this notification as read",
		})
		return
	}

	if err := nc.notificationRepo.MarkRead(notification.ID); err != nil {
		internalError(c, "Failed to mark notification as read", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notification marked as read",
		"data":    nil,
	})
}
