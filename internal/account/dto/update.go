package dto

import (
	"strings"

	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/esterhugosson/Shareyoutravels-backend/pkg/constant"
)

// UpdateInput is a partial account update. Nil fields are left untouched.
type UpdateInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

func (in UpdateInput) Validate() error {
	var fields []string

	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) == "" {
		fields = append(fields, "Invalid firstName")
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) == "" {
		fields = append(fields, "Invalid lastName")
	}
	if in.Username != nil && strings.TrimSpace(*in.Username) == "" {
		fields = append(fields, "Invalid username")
	}
	if in.Email != nil && !emailPattern.MatchString(*in.Email) {
		fields = append(fields, "Invalid email")
	}
	if in.Password != nil && len(*in.Password) < constant.MinPasswordLength {
		fields = append(fields, "Password must be at least 6 characters")
	}

	if len(fields) > 0 {
		return apperr.NewValidation(fields...)
	}

	return nil
}
