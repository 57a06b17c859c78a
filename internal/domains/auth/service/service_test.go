package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	jwtMocks "frontdesk/infras/jwt/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/internal/domains/auth/service"
	userMocks "frontdesk/internal/domains/user/mocks"
	userModel "frontdesk/internal/domains/user/model"
	"frontdesk/shared/constant"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

func validUser() userModel.User {
	return userModel.User{
		ID:       "user-id-123",
		Email:    "reception@frontdesk.md",
		Password: "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
		FullName: "Test Reception",
		Role:     constant.RoleReception,
		IsActive: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockJWT, cfg, mockOtel)

	user := validUser()

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "reception@frontdesk.md",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.LoginRequest{
				Email:    "reception@frontdesk.md",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "user not found",
			req: dto.LoginRequest{
				Email:    "nonexistent@frontdesk.md",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "reception@frontdesk.md",
				Password: "wrongpassword",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive user",
			req: dto.LoginRequest{
				Email:    "reception@frontdesk.md",
				Password: "password",
			},
			setupMock: func() {
				inactiveUser := validUser()
				inactiveUser.IsActive = false

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactiveUser, nil)
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req: dto.LoginRequest{
				Email:    "reception@frontdesk.md",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Role).
					Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
		{
			name: "last login stamp error",
			req: dto.LoginRequest{
				Email:    "reception@frontdesk.md",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Login(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result.Tokens)
				assert.NotEmpty(t, result.Tokens.AccessToken)
				assert.NotEmpty(t, result.Tokens.RefreshToken)
				assert.Equal(t, user.Email, result.User.Email)
				assert.NotEmpty(t, result.User.LastLoginAt)
			}
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockJWT, cfg, mockOtel)

	req := dto.RegisterRequest{
		Email:    "newstaff@frontdesk.md",
		Password: "strong-password",
		FullName: "New Staff",
		Role:     constant.RoleViewer,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful registration",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, req.Email, user.Email)
						assert.Equal(t, req.Role, user.Role)
						assert.True(t, user.IsActive)
						assert.NotEqual(t, req.Password, user.Password)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "exist check error",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Register(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockJWT, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req: dto.RefreshTokenRequest{
				RefreshToken: "valid-refresh-token",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(&jwt.TokenPair{
						AccessToken:  "new-access-token",
						RefreshToken: "new-refresh-token",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			req: dto.RefreshTokenRequest{
				RefreshToken: "invalid-refresh-token",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("invalid-refresh-token").
					Return(nil, errors.New("invalid token"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.RefreshToken(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockJWT, cfg, mockOtel)

	user := validUser()

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful password change",
			req: dto.ChangePasswordRequest{
				OldPassword: "password",
				NewPassword: "newpassword123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "user not found",
			req: dto.ChangePasswordRequest{
				OldPassword: "password",
				NewPassword: "newpassword123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong old password",
			req: dto.ChangePasswordRequest{
				OldPassword: "wrongpassword",
				NewPassword: "newpassword123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "update password error",
			req: dto.ChangePasswordRequest{
				OldPassword: "password",
				NewPassword: "newpassword123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, user.ID)
			err := svc.ChangePassword(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockJWT, cfg, mockOtel)

	user := validUser()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful profile fetch",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: false,
		},
		{
			name: "user not found",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, user.ID)
			result, err := svc.Me(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, user.Email, result.Email)
				assert.Equal(t, user.Role, result.Role)
			}
		})
	}
}
