package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/mmyatt91/message.ly/internal/domain"
)

// MessageRepo provides message persistence.
type MessageRepo interface {
	Create(ctx context.Context, from, to, body string) (dom.Message, error)
	GetByID(ctx context.Context, id int64) (dom.MessageDetail, error)
	MarkRead(ctx context.Context, id int64) (dom.Message, error)
}

// PGMessageRepo implements MessageRepo with Postgres.
type PGMessageRepo struct {
	db *pgxpool.Pool
}

// NewPGMessageRepo returns a new PGMessageRepo.
func NewPGMessageRepo(db *pgxpool.Pool) *PGMessageRepo {
	return &PGMessageRepo{db: db}
}

// Create inserts a message with sent_at set by the database and read_at null.
// An unknown recipient surfaces as a foreign key violation.
func (r *PGMessageRepo) Create(ctx context.Context, from, to, body string) (dom.Message, error) {
	query := `
		INSERT INTO messages (from_username, to_username, body)
		VALUES ($1, $2, $3)
		RETURNING id, from_username, to_username, body, sent_at, read_at`
	var m dom.Message
	err := r.db.QueryRow(ctx, query, from, to, body).Scan(
		&m.ID, &m.FromUsername, &m.ToUsername, &m.Body, &m.SentAt, &m.ReadAt,
	)
	return m, err
}

// GetByID returns the message joined with sender and recipient profiles.
func (r *PGMessageRepo) GetByID(ctx context.Context, id int64) (dom.MessageDetail, error) {
	query := `
		SELECT m.id, m.body, m.sent_at, m.read_at,
		       f.username, f.first_name, f.last_name, f.phone,
		       t.username, t.first_name, t.last_name, t.phone
		FROM messages m
		JOIN users f ON m.from_username = f.username
		JOIN users t ON m.to_username = t.username
		WHERE m.id = $1`
	var m dom.MessageDetail
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Body, &m.SentAt, &m.ReadAt,
		&m.From.Username, &m.From.FirstName, &m.From.LastName, &m.From.Phone,
		&m.To.Username, &m.To.FirstName, &m.To.LastName, &m.To.Phone,
	)
	return m, err
}

// MarkRead sets read_at to now only if it is still null, so the null ->
// timestamp transition happens exactly once even under concurrent calls.
// A message that exists but is already read yields pgx.ErrNoRows here;
// the service layer tells the two apart.
func (r *PGMessageRepo) MarkRead(ctx context.Context, id int64) (dom.Message, error) {
	query := `
		UPDATE messages SET read_at = NOW()
		WHERE id = $1 AND read_at IS NULL
		RETURNING id, from_username, to_username, body, sent_at, read_at`
	var m dom.Message
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.FromUsername, &m.ToUsername, &m.Body, &m.SentAt, &m.ReadAt,
	)
	return m, err
}
