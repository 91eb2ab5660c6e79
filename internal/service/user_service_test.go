package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmyatt91/message.ly/internal/apperr"
	dom "github.com/mmyatt91/message.ly/internal/domain"
)

// fakeUserRepo is an in-memory UserRepo mimicking Postgres error behavior.
type fakeUserRepo struct {
	users map[string]dom.User

	touched []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]dom.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	if _, ok := f.users[u.Username]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505"}
	}
	f.users[u.Username] = u
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	u, ok := f.users[username]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]dom.UserSummary, error) {
	var out []dom.UserSummary
	for _, u := range f.users {
		out = append(out, u.Summary())
	}
	return out, nil
}

func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, username string) error {
	f.touched = append(f.touched, username)
	return nil
}

func (f *fakeUserRepo) MessagesTo(ctx context.Context, username string) ([]dom.InboxMessage, error) {
	return nil, nil
}

func (f *fakeUserRepo) MessagesFrom(ctx context.Context, username string) ([]dom.OutboxMessage, error) {
	return nil, nil
}

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "secret1", "Alice", "Anderson", "555-0100")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))

	got, err := svc.Authenticate(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1", "Alice", "Anderson", "555-0100")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "alice", "not-it")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestUserService_Authenticate_UnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)

	_, err := svc.Authenticate(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestUserService_Authenticate_SameErrorForBothFailures(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1", "Alice", "Anderson", "555-0100")
	require.NoError(t, err)

	_, errUnknown := svc.Authenticate(ctx, "nobody", "secret1")
	_, errWrongPw := svc.Authenticate(ctx, "alice", "wrong")
	assert.Equal(t, errUnknown, errWrongPw)
}

func TestUserService_Register_Duplicate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1", "Alice", "Anderson", "555-0100")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other", "Alicia", "Andrews", "555-0101")
	assert.ErrorIs(t, err, apperr.ErrDuplicateUsername)
	// No partial state: the original record is untouched.
	stored := repo.users["alice"]
	assert.Equal(t, "Alice", stored.FirstName)
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)

	_, err := svc.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserService_All_WithoutCache(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1", "Alice", "Anderson", "555-0100")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "bob", "secret2", "Bob", "Brown", "555-0200")
	require.NoError(t, err)

	list, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUserService_TouchLastLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1", "Alice", "Anderson", "555-0100")
	require.NoError(t, err)

	require.NoError(t, svc.TouchLastLogin(ctx, "alice"))
	assert.Equal(t, []string{"alice"}, repo.touched)
}
