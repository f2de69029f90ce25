package httpapi

import (
	"fmt"
	"unicode/utf8"

	"github.com/example/hive/internal/ports/primary"
)

// Field limits accepted by the API.
const (
	CodeLength       = 5
	MaxNameLength    = 60
	MaxAddressLength = 300
)

func validateHiveRequest(req primary.UpdateHiveRequest) []FieldError {
	var errs []FieldError
	errs = append(errs, validateCode(req.Code)...)
	errs = append(errs, validateName(req.Name)...)
	if utf8.RuneCountInString(req.Address) > MaxAddressLength {
		errs = append(errs, FieldError{Field: "address", Message: fmt.Sprintf("must be at most %d characters", MaxAddressLength)})
	}
	return errs
}

func validateSectionRequest(req primary.UpdateSectionRequest, creating bool) []FieldError {
	var errs []FieldError
	errs = append(errs, validateCode(req.Code)...)
	errs = append(errs, validateName(req.Name)...)
	if creating && req.StoreHiveID <= 0 {
		errs = append(errs, FieldError{Field: "storeHiveId", Message: "must be greater than 0"})
	}
	return errs
}

func validateCode(code string) []FieldError {
	switch n := utf8.RuneCountInString(code); {
	case n == 0:
		return []FieldError{{Field: "code", Message: "is required"}}
	case n != CodeLength:
		return []FieldError{{Field: "code", Message: fmt.Sprintf("must be exactly %d characters", CodeLength)}}
	}
	return nil
}

func validateName(name string) []FieldError {
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		return []FieldError{{Field: "name", Message: "is required"}}
	case n > MaxNameLength:
		return []FieldError{{Field: "name", Message: fmt.Sprintf("must be at most %d characters", MaxNameLength)}}
	}
	return nil
}
