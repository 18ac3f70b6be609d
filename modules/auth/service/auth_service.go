package service

import (
	"context"
	"time"

	"dayboard/core/cache"
	"dayboard/core/config"
	"dayboard/core/constants"
	"dayboard/core/errors"
	"dayboard/core/logger"
	"dayboard/core/taskqueue"
	"dayboard/core/utils"
	"dayboard/modules/auth/dto"
	"dayboard/modules/auth/entity"
	"dayboard/modules/auth/repository"

	"github.com/google/uuid"
)

// EmailQueue enqueues outbound account emails.
type EmailQueue interface {
	EnqueueActivationEmail(ctx context.Context, p taskqueue.EmailPayload) error
	EnqueueResetEmail(ctx context.Context, p taskqueue.EmailPayload) error
}

var _ EmailQueue = (*taskqueue.Client)(nil)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) *errors.AppError
	Activate(ctx context.Context, token string) *errors.AppError
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	SendResetEmail(ctx context.Context, email string) *errors.AppError
	UpdatePassword(ctx context.Context, req *dto.UpdatePasswordRequest) *errors.AppError
}

type authService struct {
	users repository.UserRepository
	cache cache.Cache
	queue EmailQueue
}

func NewAuthService(users repository.UserRepository, c cache.Cache, queue EmailQueue) AuthService {
	return &authService{users: users, cache: c, queue: queue}
}

// Register creates an inactive account and queues the activation email.
// The activation token lives in redis until used or expired.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) *errors.AppError {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return appErr
		}
		return errors.NewAppError(errors.ErrInternalServer, "failed to create user", err)
	}

	token := utils.GenerateOpaqueToken(32)
	ttl := time.Duration(constants.ActivationTokenTTLHours) * time.Hour
	if err := s.cache.Set(ctx, constants.RedisKeyActivationToken+token, user.ID.String(), ttl); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to store activation token", err)
	}

	if err := s.queue.EnqueueActivationEmail(ctx, taskqueue.EmailPayload{
		To:    user.Email,
		Name:  user.Name,
		Token: token,
	}); err != nil {
		// The account exists; the user can request another email later.
		logger.Error("AuthService:Register:Enqueue:Error:", err)
	}

	logger.Info("AuthService:Register", "user_id", user.ID, "email", user.Email)
	return nil
}

// Activate consumes a single-use activation token. The token is deleted
// before the update so replays fail even if the update errors.
func (s *authService) Activate(ctx context.Context, token string) *errors.AppError {
	key := constants.RedisKeyActivationToken + token
	userIDStr, err := s.cache.Get(ctx, key)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to check activation token", err)
	}
	if userIDStr == "" {
		return errors.NewAppError(errors.ErrNotFound, "activation token invalid or expired", nil)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "corrupt activation token", err)
	}

	if err := s.cache.Delete(ctx, key); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to consume activation token", err)
	}

	if err := s.users.Activate(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to activate account", err)
	}

	logger.Info("AuthService:Activate", "user_id", userID)
	return nil
}

// Login verifies credentials against an activated account and issues a
// session token. Unknown email and wrong password are indistinguishable.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load user", err)
	}
	if user == nil || !utils.ComparePassword(user.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}
	if !user.Activated {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "account not activated", nil)
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue token", err)
	}

	return &dto.LoginResponse{
		Token: token,
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// Logout blacklists the session token for the rest of its lifetime, so
// the middleware rejects it even though the signature stays valid.
func (s *authService) Logout(ctx context.Context, token string) *errors.AppError {
	cfg, err := config.GetSafe()
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "configuration unavailable", err)
	}

	ttl := time.Duration(cfg.JWT.TTLMinutes) * time.Minute
	if err := s.cache.BlacklistToken(ctx, token, ttl); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to invalidate token", err)
	}
	return nil
}

// SendResetEmail queues a password-reset email. The response never
// reveals whether the address is registered.
func (s *authService) SendResetEmail(ctx context.Context, email string) *errors.AppError {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to load user", err)
	}
	if user == nil {
		logger.Info("AuthService:SendResetEmail:UnknownEmail", "email", email)
		return nil
	}

	token := utils.GenerateOpaqueToken(32)
	ttl := time.Duration(constants.ResetTokenTTLHours) * time.Hour
	if err := s.cache.Set(ctx, constants.RedisKeyResetToken+token, user.ID.String(), ttl); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to store reset token", err)
	}

	if err := s.queue.EnqueueResetEmail(ctx, taskqueue.EmailPayload{
		To:    user.Email,
		Name:  user.Name,
		Token: token,
	}); err != nil {
		logger.Error("AuthService:SendResetEmail:Enqueue:Error:", err)
	}
	return nil
}

// UpdatePassword consumes a single-use reset token and replaces the hash.
func (s *authService) UpdatePassword(ctx context.Context, req *dto.UpdatePasswordRequest) *errors.AppError {
	key := constants.RedisKeyResetToken + req.Token
	userIDStr, err := s.cache.Get(ctx, key)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to check reset token", err)
	}
	if userIDStr == "" {
		return errors.NewAppError(errors.ErrNotFound, "reset token invalid or expired", nil)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "corrupt reset token", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	if err := s.cache.Delete(ctx, key); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to consume reset token", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to update password", err)
	}

	logger.Info("AuthService:UpdatePassword", "user_id", userID)
	return nil
}
