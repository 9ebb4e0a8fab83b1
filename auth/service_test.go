package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpix/database"
	"smartpix/models"
)

type fakeUserStore struct {
	byEmail map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return database.ErrDuplicateEmail
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserStore) ByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, database.ErrUserNotFound
	}
	return user, nil
}

func newTestService(t *testing.T) (*Service, *fakeUserStore) {
	t.Helper()
	store := newFakeUserStore()
	return NewService(store, "test-secret", 7*24*time.Hour), store
}

func TestSignup(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, token, err := svc.Signup(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "a", user.Username)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "pw1", user.PasswordHash)

	// Same email registers at most once.
	_, _, err = svc.Signup(ctx, "a@x.com", "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSignupRejectsInvalidEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Signup(context.Background(), "not-an-email", "pw1")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	signedUp, t1, err := svc.Signup(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	loggedIn, t2, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, signedUp.ID, loggedIn.ID)
	assert.NotEmpty(t, t2)
	assert.NotEqual(t, t1, t2)

	// Both tokens authenticate to the same subject.
	sub1, err := svc.Authenticate(t1)
	require.NoError(t, err)
	sub2, err := svc.Authenticate(t2)
	require.NoError(t, err)
	assert.Equal(t, signedUp.ID, sub1)
	assert.Equal(t, sub1, sub2)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(ctx, "a@x.com", "nope")
	_, _, unknownEmail := svc.Login(ctx, "b@x.com", "pw1")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)

	user, token, err := svc.Signup(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)

	subject, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Authenticate(token)
		assert.ErrorIs(t, err, ErrUnauthenticated, "token %q", token)
	}
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	svc, _ := newTestService(t)
	svc.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }

	_, token, err := svc.Signup(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Authenticate(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticateRejectsForeignSignature(t *testing.T) {
	svc, _ := newTestService(t)

	store := newFakeUserStore()
	other := NewService(store, "other-secret", time.Hour)
	_, token, err := other.Signup(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Authenticate(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
