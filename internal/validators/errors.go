package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredFieldMissing = errors.New("required field is missing")
	ErrPasswordsDoNotMatch  = errors.New("passwords do not match")
)
