package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmyatt91/message.ly/internal/apperr"
	dom "github.com/mmyatt91/message.ly/internal/domain"
)

// fakeMessageRepo mimics the Postgres repo including the conditional
// mark-read update (no row matched when read_at is already set).
type fakeMessageRepo struct {
	known    map[string]dom.UserSummary
	messages map[int64]dom.Message
	nextID   int64
}

func newFakeMessageRepo(usernames ...string) *fakeMessageRepo {
	known := map[string]dom.UserSummary{}
	for _, u := range usernames {
		known[u] = dom.UserSummary{Username: u}
	}
	return &fakeMessageRepo{known: known, messages: map[int64]dom.Message{}, nextID: 1}
}

func (f *fakeMessageRepo) Create(ctx context.Context, from, to, body string) (dom.Message, error) {
	if _, ok := f.known[to]; !ok {
		return dom.Message{}, &pgconn.PgError{Code: "23503"}
	}
	m := dom.Message{
		ID:           f.nextID,
		FromUsername: from,
		ToUsername:   to,
		Body:         body,
		SentAt:       time.Now(),
	}
	f.messages[m.ID] = m
	f.nextID++
	return m, nil
}

func (f *fakeMessageRepo) GetByID(ctx context.Context, id int64) (dom.MessageDetail, error) {
	m, ok := f.messages[id]
	if !ok {
		return dom.MessageDetail{}, pgx.ErrNoRows
	}
	return dom.MessageDetail{
		ID:     m.ID,
		Body:   m.Body,
		SentAt: m.SentAt,
		ReadAt: m.ReadAt,
		From:   f.known[m.FromUsername],
		To:     f.known[m.ToUsername],
	}, nil
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, id int64) (dom.Message, error) {
	m, ok := f.messages[id]
	if !ok || m.ReadAt != nil {
		return dom.Message{}, pgx.ErrNoRows
	}
	now := time.Now()
	m.ReadAt = &now
	f.messages[id] = m
	return m, nil
}

func TestMessageService_SendAndGet(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo("alice", "bob"))
	ctx := context.Background()

	m, err := svc.Send(ctx, "alice", "bob", "hi")
	require.NoError(t, err)
	assert.Equal(t, "alice", m.FromUsername)
	assert.Equal(t, "bob", m.ToUsername)
	assert.Nil(t, m.ReadAt)

	detail, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", detail.From.Username)
	assert.Equal(t, "bob", detail.To.Username)
}

func TestMessageService_Send_UnknownRecipient(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo("alice"))

	_, err := svc.Send(context.Background(), "alice", "ghost", "hi")
	assert.ErrorIs(t, err, apperr.ErrUnknownRecipient)
}

func TestMessageService_Send_EmptyBody(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo("alice", "bob"))

	_, err := svc.Send(context.Background(), "alice", "bob", "   ")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
}

func TestMessageService_Get_NotFound(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo("alice", "bob"))

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMessageService_MarkRead_Once(t *testing.T) {
	repo := newFakeMessageRepo("alice", "bob")
	svc := NewMessageService(repo)
	ctx := context.Background()

	m, err := svc.Send(ctx, "alice", "bob", "hi")
	require.NoError(t, err)

	read, err := svc.MarkRead(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, read.ReadAt)
	firstReadAt := *read.ReadAt

	// A second call must fail, not silently succeed, and must leave the
	// original timestamp in place.
	_, err = svc.MarkRead(ctx, m.ID)
	assert.ErrorIs(t, err, apperr.ErrAlreadyRead)
	assert.Equal(t, firstReadAt, *repo.messages[m.ID].ReadAt)
}

func TestMessageService_MarkRead_NotFound(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo("alice", "bob"))

	_, err := svc.MarkRead(context.Background(), 99)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
