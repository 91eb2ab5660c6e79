package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/mmyatt91/message.ly/internal/domain"
)

// UserRepo provides user persistence.
type UserRepo interface {
	Create(ctx context.Context, u dom.User) (dom.User, error)
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	List(ctx context.Context) ([]dom.UserSummary, error)
	TouchLastLogin(ctx context.Context, username string) error
	MessagesTo(ctx context.Context, username string) ([]dom.InboxMessage, error)
	MessagesFrom(ctx context.Context, username string) ([]dom.OutboxMessage, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// Create inserts a new user and returns it with join_at set by the database.
func (r *PGUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		INSERT INTO users (username, password_hash, first_name, last_name, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING username, password_hash, first_name, last_name, phone, join_at, last_login_at`
	var out dom.User
	err := r.db.QueryRow(ctx, query, u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Phone).Scan(
		&out.Username, &out.PasswordHash, &out.FirstName, &out.LastName, &out.Phone,
		&out.JoinAt, &out.LastLoginAt,
	)
	return out, err
}

// GetByUsername returns the full user record including the password hash.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	query := `
		SELECT username, password_hash, first_name, last_name, phone, join_at, last_login_at
		FROM users WHERE username = $1`
	var u dom.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone,
		&u.JoinAt, &u.LastLoginAt,
	)
	return u, err
}

// List returns public profiles for all users.
func (r *PGUserRepo) List(ctx context.Context) ([]dom.UserSummary, error) {
	query := `
		SELECT username, first_name, last_name, phone
		FROM users ORDER BY username`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.UserSummary
	for rows.Next() {
		var u dom.UserSummary
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Phone); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// TouchLastLogin sets last_login_at to now.
func (r *PGUserRepo) TouchLastLogin(ctx context.Context, username string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = NOW() WHERE username = $1`, username)
	return err
}

// MessagesTo returns messages received by username, each joined with the
// sender's profile, newest first.
func (r *PGUserRepo) MessagesTo(ctx context.Context, username string) ([]dom.InboxMessage, error) {
	query := `
		SELECT m.id, m.body, m.sent_at, m.read_at,
		       u.username, u.first_name, u.last_name, u.phone
		FROM messages m
		JOIN users u ON m.from_username = u.username
		WHERE m.to_username = $1
		ORDER BY m.sent_at DESC`
	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.InboxMessage
	for rows.Next() {
		var m dom.InboxMessage
		if err := rows.Scan(&m.ID, &m.Body, &m.SentAt, &m.ReadAt,
			&m.From.Username, &m.From.FirstName, &m.From.LastName, &m.From.Phone); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// MessagesFrom returns messages sent by username, each joined with the
// recipient's profile, newest first.
func (r *PGUserRepo) MessagesFrom(ctx context.Context, username string) ([]dom.OutboxMessage, error) {
	query := `
		SELECT m.id, m.body, m.sent_at, m.read_at,
		       u.username, u.first_name, u.last_name, u.phone
		FROM messages m
		JOIN users u ON m.to_username = u.username
		WHERE m.from_username = $1
		ORDER BY m.sent_at DESC`
	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.OutboxMessage
	for rows.Next() {
		var m dom.OutboxMessage
		if err := rows.Scan(&m.ID, &m.Body, &m.SentAt, &m.ReadAt,
			&m.To.Username, &m.To.FirstName, &m.To.LastName, &m.To.Phone); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
