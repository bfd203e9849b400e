package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	NotificationTypeComment = "comment"
)

// Notification stores its payload as opaque serialized JSON; the Type tag
// selects the payload shape at decode time.
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipientID uint      `gorm:"index" json:"recipient_id"`
	Type        string    `gorm:"size:30;index" json:"type" example:"comment"`
	Data        string    `json:"-"`
	Read        bool      `gorm:"default:false;index" json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommentNotificationData is the payload for NotificationTypeComment.
type CommentNotificationData struct {
	RecipeID       uint   `json:"recipe_id"`
	RecipeName     string `json:"recipe_name"`
	CommentID      uint   `json:"comment_id"`
	AuthorNickname string `json:"author_nickname"`
}

// DecodePayload returns the typed payload for the notification's Type tag.
func (n *Notification) DecodePayload() (interface{}, error) {
	switch n.Type {
	case NotificationTypeComment:
		var data CommentNotificationData
		if err := json.Unmarshal([]byte(n.Data), &data); err != nil {
			return nil, fmt.Errorf("failed to decode comment notification payload: %w", err)
		}
		return &data, nil
	default:
		return nil, fmt.Errorf("unknown notification type %q", n.Type)
	}
}

// SetPayload serializes the payload into the Data column.
func (n *Notification) SetPayload(payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode notification payload: %w", err)
	}
	n.Data = string(raw)
	return nil
}
