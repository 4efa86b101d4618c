package dto

import (
	"staywise/internal/domains/concierge/model"
	"staywise/shared/timezone"
	"time"
)

type MessageResponse struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type ConversationResponse struct {
	ID       string            `json:"id"`
	Messages []MessageResponse `json:"messages"`
}

func (c *ConversationResponse) FromModel(conversation model.Conversation) {
	c.ID = conversation.ID
	c.Messages = make([]MessageResponse, 0, len(conversation.Messages))

	for _, message := range conversation.Messages {
		c.Messages = append(c.Messages, MessageResponse{
			ID:        message.ID,
			Role:      string(message.Role),
			Text:      message.Text,
			CreatedAt: timezone.Format(message.CreatedAt, time.RFC3339),
		})
	}
}

// SendRequest may carry blank text, which is ignored.
type SendRequest struct {
	Text string `json:"text" validate:"max=2000"`
}

// SendResponse reports whether the message was taken. A send made while a reply
// is still being generated is not.
type SendResponse struct {
	Accepted     bool                 `json:"accepted"`
	Conversation ConversationResponse `json:"conversation"`
}

type RecommendRequest struct {
	Query string `json:"query" validate:"required,notblank,max=2000"`
}

type RecommendResponse struct {
	Reply string `json:"reply"`
}
