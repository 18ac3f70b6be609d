package service

import (
	"context"
	"testing"
	"time"

	"dayboard/core/config"
	"dayboard/core/constants"
	"dayboard/core/errors"
	"dayboard/core/taskqueue"
	"dayboard/core/utils"
	"dayboard/modules/auth/dto"
	"dayboard/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.SetForTesting(&config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", TTLMinutes: 60},
	})
}

type fakeUserRepository struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return errors.NewAppError(errors.ErrAlreadyExists, "email already registered", nil)
	}
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) Activate(_ context.Context, id uuid.UUID) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Activated = true
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepository) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return nil
}

type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeCache) BlacklistToken(_ context.Context, token string, _ time.Duration) error {
	f.data[constants.RedisKeyTokenBlacklist+token] = "1"
	return nil
}

func (f *fakeCache) IsTokenBlacklisted(_ context.Context, token string) (bool, error) {
	_, ok := f.data[constants.RedisKeyTokenBlacklist+token]
	return ok, nil
}

type fakeQueue struct {
	activation []taskqueue.EmailPayload
	reset      []taskqueue.EmailPayload
}

func (f *fakeQueue) EnqueueActivationEmail(_ context.Context, p taskqueue.EmailPayload) error {
	f.activation = append(f.activation, p)
	return nil
}

func (f *fakeQueue) EnqueueResetEmail(_ context.Context, p taskqueue.EmailPayload) error {
	f.reset = append(f.reset, p)
	return nil
}

func newTestAuthService() (AuthService, *fakeUserRepository, *fakeCache, *fakeQueue) {
	users := newFakeUserRepository()
	c := newFakeCache()
	q := &fakeQueue{}
	return NewAuthService(users, c, q), users, c, q
}

func TestRegisterQueuesActivationEmail(t *testing.T) {
	svc, users, _, q := newTestAuthService()

	appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	})
	require.Nil(t, appErr)

	user := users.byEmail["ana@example.com"]
	require.NotNil(t, user)
	assert.False(t, user.Activated)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	require.Len(t, q.activation, 1)
	assert.Equal(t, "ana@example.com", q.activation[0].To)
	assert.NotEmpty(t, q.activation[0].Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	req := &dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"}
	require.Nil(t, svc.Register(context.Background(), req))

	appErr := svc.Register(context.Background(), req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestActivateIsSingleUse(t *testing.T) {
	svc, users, _, q := newTestAuthService()

	require.Nil(t, svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	}))
	token := q.activation[0].Token

	require.Nil(t, svc.Activate(context.Background(), token))
	assert.True(t, users.byEmail["ana@example.com"].Activated)

	appErr := svc.Activate(context.Background(), token)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestActivateUnknownToken(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	appErr := svc.Activate(context.Background(), "no-such-token")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestLogin(t *testing.T) {
	svc, _, _, q := newTestAuthService()

	require.Nil(t, svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	}))

	// Not activated yet.
	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)

	require.Nil(t, svc.Activate(context.Background(), q.activation[0].Token))

	resp, appErr := svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	require.Nil(t, appErr)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ana@example.com", resp.Email)

	data, err := utils.ValidateAndParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, data.UserID.String())
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, _, q := newTestAuthService()

	require.Nil(t, svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	}))
	require.Nil(t, svc.Activate(context.Background(), q.activation[0].Token))

	for _, req := range []*dto.LoginRequest{
		{Email: "ana@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "secret123"},
	} {
		_, appErr := svc.Login(context.Background(), req)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	}
}

func TestLogoutBlacklistsToken(t *testing.T) {
	svc, _, c, _ := newTestAuthService()

	require.Nil(t, svc.Logout(context.Background(), "some.jwt.token"))

	blacklisted, err := c.IsTokenBlacklisted(context.Background(), "some.jwt.token")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestSendResetEmailUnknownAddressSucceedsQuietly(t *testing.T) {
	svc, _, _, q := newTestAuthService()

	require.Nil(t, svc.SendResetEmail(context.Background(), "nobody@example.com"))
	assert.Empty(t, q.reset)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _, _, q := newTestAuthService()

	require.Nil(t, svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	}))
	require.Nil(t, svc.Activate(context.Background(), q.activation[0].Token))

	require.Nil(t, svc.SendResetEmail(context.Background(), "ana@example.com"))
	require.Len(t, q.reset, 1)
	token := q.reset[0].Token

	require.Nil(t, svc.UpdatePassword(context.Background(), &dto.UpdatePasswordRequest{
		Token: token, Password: "newpass456",
	}))

	// Old password no longer works, new one does, token is spent.
	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	require.NotNil(t, appErr)

	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "newpass456"})
	require.Nil(t, appErr)

	appErr = svc.UpdatePassword(context.Background(), &dto.UpdatePasswordRequest{Token: token, Password: "again"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
