package service

import (
	"context"
	"errors"
	"fmt"
	"mallbook/config"
	"mallbook/infras/jwt"
	"mallbook/infras/otel"
	"mallbook/internal/domains/auth/model/dto"
	userModel "mallbook/internal/domains/user/model"
	userRepo "mallbook/internal/domains/user/repository"
	"mallbook/shared"
	"mallbook/shared/constant"
	"mallbook/shared/password"
	"mallbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	users  userRepo.User
	cfg    *config.Config
	otel   otel.Otel
	tokens jwt.JWT
}

func New(users userRepo.User, cfg *config.Config, otel otel.Otel, tokens jwt.JWT) Auth {
	return &serviceImpl{
		users:  users,
		cfg:    cfg,
		otel:   otel,
		tokens: tokens,
	}
}

func (s *serviceImpl) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth."+op)
}

// hash maps bcrypt's input limit onto a client error.
func hash(plain string) (string, error) {
	hashed, err := password.Hash(plain)
	if errors.Is(err, password.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hashed, nil
}

// Register creates a customer account. Staff roles are granted by an admin.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.scope(ctx, "Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	taken, err := s.users.EmailTaken(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check email availability")

		return fmt.Errorf("failed to check email availability: %w", err)
	}

	if taken {
		return ErrEmailTaken
	}

	hashed, err := hash(req.Password)
	if err != nil {
		return err
	}

	user := req.ToUserModel(constant.ContextGuest, hashed)

	if err = s.users.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("customer registered")

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.scope(ctx, "Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to load user for login")

		return res, fmt.Errorf("failed to load user: %w", err)
	}

	if user.ID == constant.Empty || password.Verify(req.Password, user.Password) != nil {
		log.Warn().Str("email", userModel.NormalizeEmail(req.Email)).Msg("rejected login")

		return res, ErrInvalidCredentials
	}

	if !user.Active {
		return res, ErrAccountDeactivated
	}

	pair, err := s.tokens.GenerateTokenPair(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to issue tokens")

		return res, fmt.Errorf("failed to issue tokens: %w", err)
	}

	now := timezone.Now()

	// a stale last_login must not block a valid sign in
	if err := s.users.RecordLogin(ctx, user.ID, now); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record login")
	} else {
		user.LastLogin = &now
	}

	res.FromTokenPair(pair)
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.scope(ctx, "RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pair, err := s.tokens.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")

		return res, ErrInvalidRefreshToken
	}

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.scope(ctx, "ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.users.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to load user")

		return fmt.Errorf("failed to load user: %w", err)
	}

	if user.ID == constant.Empty {
		return ErrUserNotFound
	}

	if password.Verify(req.CurrentPassword, user.Password) != nil {
		return ErrWrongPassword
	}

	if req.CurrentPassword == req.NewPassword {
		return ErrPasswordUnchanged
	}

	hashed, err := hash(req.NewPassword)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashed}, userID)

	if err = s.users.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
