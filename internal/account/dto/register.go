package dto

import (
	"regexp"
	"strings"

	apperr "github.com/esterhugosson/Shareyoutravels-backend/internal/errors"
	"github.com/esterhugosson/Shareyoutravels-backend/pkg/constant"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (in RegisterInput) Validate() error {
	var fields []string

	if strings.TrimSpace(in.FirstName) == "" {
		fields = append(fields, "Invalid or missing firstName")
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields = append(fields, "Invalid or missing lastName")
	}
	if strings.TrimSpace(in.Username) == "" {
		fields = append(fields, "Invalid or missing username")
	}
	if !emailPattern.MatchString(in.Email) {
		fields = append(fields, "Invalid or missing email")
	}
	if len(in.Password) < constant.MinPasswordLength {
		fields = append(fields, "Password must be at least 6 characters")
	}

	if len(fields) > 0 {
		return apperr.NewValidation(fields...)
	}

	return nil
}
