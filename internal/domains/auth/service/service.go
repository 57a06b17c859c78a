package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/internal/domains/user/model"
	"frontdesk/internal/domains/user/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/password"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (*jwt.TokenPair, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	Me(ctx context.Context) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo repository.User
	jwt  jwt.JWT
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.User, jwtService jwt.JWT, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		repo: repo,
		jwt:  jwtService,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exist {
		return failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(hash, user)); err != nil {
		log.Error().Err(err).Msg("failed to register user")

		return fmt.Errorf("failed to register user: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.Get(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	// Same failure for a missing account and a wrong password.
	if user.ID == constant.Empty {
		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to verify password")

		return res, fmt.Errorf("failed to verify password: %w", err)
	}

	if !user.IsActive {
		return res, failure.Forbidden("account is deactivated") // nolint:wrapcheck
	}

	tokens, err := s.jwt.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()

	err = s.repo.Update(ctx, map[string]any{
		model.FieldLastLoginAt:   now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user.ID,
	}, shared.FilterByID(user.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to stamp last login")

		return res, fmt.Errorf("failed to stamp last login: %w", err)
	}

	user.LastLoginAt = &now

	res.Tokens = tokens
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res *jwt.TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to refresh tokens")

		return nil, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if err = password.Verify(req.OldPassword, user.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return failure.Unauthorized("old password does not match") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to verify password")

		return fmt.Errorf("failed to verify password: %w", err)
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldPassword:      hash,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to change password")

		return fmt.Errorf("failed to change password: %w", err)
	}

	return nil
}

func (s *serviceImpl) Me(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) getUser(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound("user not found") // nolint:wrapcheck
	}

	return user, nil
}

func filterByEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}
}
