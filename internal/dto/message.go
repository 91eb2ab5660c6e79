package dto

import (
	"time"

	dom "github.com/mmyatt91/message.ly/internal/domain"
)

// SendMessageRequest is the JSON body for POST /messages.
type SendMessageRequest struct {
	ToUsername string `json:"to_username" binding:"required"`
	Body       string `json:"body" binding:"required"`
}

// MessageResponse is the shape of a freshly sent message.
type MessageResponse struct {
	ID           int64     `json:"id"`
	FromUsername string    `json:"from_username"`
	ToUsername   string    `json:"to_username"`
	Body         string    `json:"body"`
	SentAt       time.Time `json:"sent_at"`
}

// MessageDetailResponse is a message joined with both participant profiles.
type MessageDetailResponse struct {
	ID       int64               `json:"id"`
	Body     string              `json:"body"`
	SentAt   time.Time           `json:"sent_at"`
	ReadAt   *time.Time          `json:"read_at"`
	FromUser UserSummaryResponse `json:"from_user"`
	ToUser   UserSummaryResponse `json:"to_user"`
}

// InboxMessageResponse is a received message with the sender's profile.
type InboxMessageResponse struct {
	ID       int64               `json:"id"`
	Body     string              `json:"body"`
	SentAt   time.Time           `json:"sent_at"`
	ReadAt   *time.Time          `json:"read_at"`
	FromUser UserSummaryResponse `json:"from_user"`
}

// OutboxMessageResponse is a sent message with the recipient's profile.
type OutboxMessageResponse struct {
	ID     int64               `json:"id"`
	Body   string              `json:"body"`
	SentAt time.Time           `json:"sent_at"`
	ReadAt *time.Time          `json:"read_at"`
	ToUser UserSummaryResponse `json:"to_user"`
}

// ReadReceiptResponse is the shape returned by POST /messages/:id/read.
type ReadReceiptResponse struct {
	ID     int64      `json:"id"`
	ReadAt *time.Time `json:"read_at"`
}

type MessageEnvelope struct {
	Message MessageResponse `json:"message"`
}

type MessageDetailEnvelope struct {
	Message MessageDetailResponse `json:"message"`
}

type ReadReceiptEnvelope struct {
	Message ReadReceiptResponse `json:"message"`
}

type InboxEnvelope struct {
	Messages []InboxMessageResponse `json:"messages"`
}

type OutboxEnvelope struct {
	Messages []OutboxMessageResponse `json:"messages"`
}

func MessageToResponse(m dom.Message) MessageResponse {
	return MessageResponse{
		ID:           m.ID,
		FromUsername: m.FromUsername,
		ToUsername:   m.ToUsername,
		Body:         m.Body,
		SentAt:       m.SentAt,
	}
}

func DetailToResponse(m dom.MessageDetail) MessageDetailResponse {
	return MessageDetailResponse{
		ID:       m.ID,
		Body:     m.Body,
		SentAt:   m.SentAt,
		ReadAt:   m.ReadAt,
		FromUser: SummaryToResponse(m.From),
		ToUser:   SummaryToResponse(m.To),
	}
}

func InboxToResponses(list []dom.InboxMessage) []InboxMessageResponse {
	out := make([]InboxMessageResponse, len(list))
	for i, m := range list {
		out[i] = InboxMessageResponse{
			ID:       m.ID,
			Body:     m.Body,
			SentAt:   m.SentAt,
			ReadAt:   m.ReadAt,
			FromUser: SummaryToResponse(m.From),
		}
	}
	return out
}

func OutboxToResponses(list []dom.OutboxMessage) []OutboxMessageResponse {
	out := make([]OutboxMessageResponse, len(list))
	for i, m := range list {
		out[i] = OutboxMessageResponse{
			ID:     m.ID,
			Body:   m.Body,
			SentAt: m.SentAt,
			ReadAt: m.ReadAt,
			ToUser: SummaryToResponse(m.To),
		}
	}
	return out
}
