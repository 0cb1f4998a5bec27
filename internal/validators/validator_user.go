package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the unique short handle of a user account.
	FieldUsername = "username"

	// FieldName targets the display name of a user account.
	FieldName = "name"

	// FieldEmail targets the email address used as the login identifier.
	FieldEmail = "email"
)

// profileFields is the default validation scope applied to a [models.User]
// when the caller does not name any fields explicitly.
var profileFields = []string{FieldUsername, FieldName, FieldEmail}

// PasswordPair carries the two password inputs of a registration request so
// they can be validated together: both presence and equality.
type PasswordPair struct {
	Password        string
	ConfirmPassword string
}

// UserValidator validates user profile data and registration password input.
type UserValidator struct {
}

// NewUserValidator returns a [Validator] for [models.User] and [PasswordPair]
// values.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate implements [Validator].
//
// Supported value types:
//   - [models.User]: checks that every scoped profile field is non-empty.
//     When no fields are named, all profile fields are checked.
//   - [PasswordPair]: checks that both password inputs are present and that
//     they are equal. A missing input is a missing-field error, never a
//     mismatch.
//
// Returns [ErrRequiredFieldMissing] (wrapped with the field name),
// [ErrPasswordsDoNotMatch], [ErrUnknownField] for an unrecognised field name,
// or [ErrUnsupportedType] for any other value type.
func (v *UserValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	case PasswordPair:
		return v.validatePasswordPair(value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = profileFields
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if user.Username == "" {
				return fmt.Errorf("%w: %s", ErrRequiredFieldMissing, FieldUsername)
			}
		case FieldName:
			if user.Name == "" {
				return fmt.Errorf("%w: %s", ErrRequiredFieldMissing, FieldName)
			}
		case FieldEmail:
			if user.Email == "" {
				return fmt.Errorf("%w: %s", ErrRequiredFieldMissing, FieldEmail)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *UserValidator) validatePasswordPair(pair PasswordPair) error {
	if pair.Password == "" {
		return fmt.Errorf("%w: password", ErrRequiredFieldMissing)
	}

	if pair.ConfirmPassword == "" {
		return fmt.Errorf("%w: confirm_password", ErrRequiredFieldMissing)
	}

	if pair.Password != pair.ConfirmPassword {
		return ErrPasswordsDoNotMatch
	}

	return nil
}
