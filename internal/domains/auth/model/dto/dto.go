package dto

import (
	"frontdesk/infras/jwt"
	"frontdesk/internal/domains/user/model"
	"frontdesk/shared/constant"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email"     validate:"required,email,max=100"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Role     string `json:"role"      validate:"required,oneof=administrator manager reception viewer"`
}

func (r *RegisterRequest) ToModel(passwordHash, user string) model.User {
	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: passwordHash,
		FullName: r.FullName,
		Role:     r.Role,
		IsActive: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72,nefield=OldPassword"`
}

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
	LastLoginAt string `json:"last_login_at,omitempty"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Role = model.Role
	r.IsActive = model.IsActive

	if model.LastLoginAt != nil {
		r.LastLoginAt = timezone.Format(*model.LastLoginAt, constant.DateFormat)
	}
}

type LoginResponse struct {
	User   UserResponse   `json:"user"`
	Tokens *jwt.TokenPair `json:"tokens"`
}
