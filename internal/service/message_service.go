package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mmyatt91/message.ly/internal/apperr"
	dom "github.com/mmyatt91/message.ly/internal/domain"
	"github.com/mmyatt91/message.ly/internal/repo"
	"github.com/mmyatt91/message.ly/internal/utils"
)

// MessageService handles sending, fetching and marking messages read.
type MessageService struct {
	repo repo.MessageRepo
}

// NewMessageService returns a new MessageService.
func NewMessageService(r repo.MessageRepo) *MessageService {
	return &MessageService{repo: r}
}

// Send creates a message from the authenticated sender to the named recipient.
func (s *MessageService) Send(ctx context.Context, from, to, body string) (dom.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return dom.Message{}, apperr.Validation("body required")
	}
	m, err := s.repo.Create(ctx, from, to, body)
	if err != nil {
		if utils.IsPGForeignKeyViolation(err) {
			return dom.Message{}, apperr.ErrUnknownRecipient
		}
		return dom.Message{}, err
	}
	return m, nil
}

// Get returns the message joined with both participant profiles.
func (s *MessageService) Get(ctx context.Context, id int64) (dom.MessageDetail, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.MessageDetail{}, apperr.ErrNotFound
		}
		return dom.MessageDetail{}, err
	}
	return m, nil
}

// MarkRead sets read_at on the message. The update is conditional on read_at
// still being null; a second call for the same id fails with ErrAlreadyRead
// rather than silently succeeding.
func (s *MessageService) MarkRead(ctx context.Context, id int64) (dom.Message, error) {
	m, err := s.repo.MarkRead(ctx, id)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dom.Message{}, err
	}
	// No row updated: either the message is gone or it was already read.
	if _, getErr := s.repo.GetByID(ctx, id); getErr != nil {
		if errors.Is(getErr, pgx.ErrNoRows) {
			return dom.Message{}, apperr.ErrNotFound
		}
		return dom.Message{}, getErr
	}
	return dom.Message{}, apperr.ErrAlreadyRead
}
