package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldNewPassword = "new_password"
	FieldToken       = "token"
)

// MinPasswordLength is the shortest accepted account password.
const MinPasswordLength = 8

// CredentialsValidator implements [Validator] for the auth requests.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate dispatches validation to the type-specific method.
func (v *CredentialsValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialsRequest:
		return validateFields(fields, []string{FieldEmail, FieldPassword}, func(f string) error {
			switch f {
			case FieldEmail:
				return validateEmail(value.Email)
			case FieldPassword:
				return validatePassword(value.Password)
			}
			return ErrUnknownField
		})
	case models.PasswordUpdateRequest:
		return validateFields(fields, []string{FieldNewPassword}, func(f string) error {
			if f == FieldNewPassword {
				return validatePassword(value.NewPassword)
			}
			return ErrUnknownField
		})
	case models.PasswordResetRequest:
		return validateFields(fields, []string{FieldEmail}, func(f string) error {
			if f == FieldEmail {
				return validateEmail(value.Email)
			}
			return ErrUnknownField
		})
	case models.PasswordResetConfirmRequest:
		return validateFields(fields, []string{FieldToken, FieldNewPassword}, func(f string) error {
			switch f {
			case FieldToken:
				return validateToken(value.Token)
			case FieldNewPassword:
				return validatePassword(value.NewPassword)
			}
			return ErrUnknownField
		})
	case models.VerifyEmailRequest:
		return validateFields(fields, []string{FieldToken}, func(f string) error {
			if f == FieldToken {
				return validateToken(value.Token)
			}
			return ErrUnknownField
		})
	default:
		return ErrUnsupportedType
	}
}

func validateFields(fields, defaults []string, check func(string) error) error {
	if len(fields) == 0 {
		fields = defaults
	}
	for _, f := range fields {
		if err := check(f); err != nil {
			return err
		}
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	// bcrypt ignores everything past 72 bytes
	if len(password) > 72 {
		return ErrFieldTooLong
	}
	return nil
}

func validateToken(token string) error {
	if token == "" {
		return ErrEmptyOneTimeToken
	}
	return nil
}
