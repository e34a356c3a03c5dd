package models

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,role"`
	ParentID *ID    `json:"parent_id,omitempty"`
	Status   Status `json:"status,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,nefield=OldPassword"`
}

type CampaignRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	TargetURL   string `json:"target_url" validate:"required,url"`
}

type TrackingLinkRequest struct {
	OriginalURL    string `json:"original_url" validate:"required,url"`
	CampaignID     *ID    `json:"campaign_id,omitempty"`
	RecipientEmail string `json:"recipient_email,omitempty" validate:"omitempty,email"`
	RecipientName  string `json:"recipient_name,omitempty"`
}

type RoleUpdate struct {
	Role Role `json:"role" validate:"required,role"`
}

type StatusUpdate struct {
	Status Status `json:"status" validate:"required,oneof=pending active inactive suspended"`
}

type LoginResponse struct {
	Message string   `json:"message,omitempty"`
	Token   string   `json:"token"`
	User    Identity `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse answers campaign and tracking link creation.
type CreatedResponse struct {
	Message       string `json:"message"`
	CampaignID    ID     `json:"campaign_id,omitempty"`
	LinkID        ID     `json:"link_id,omitempty"`
	TrackingToken string `json:"tracking_token,omitempty"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			return Role(fl.Field().String()).Known()
		})
	})
	return validate
}

// Validate checks the struct tags of a request DTO.
func Validate(v any) error {
	return validatorInstance().Struct(v)
}
