// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mep-tools/bracket-tool/internal/calc"
	"github.com/mep-tools/bracket-tool/models"
)

// Field names accepted by [RequestValidator.Validate] to restrict which
// rules run against a snapshot.
const (
	// FieldStruct runs the struct tag rules.
	FieldStruct = "struct"

	// FieldTiers checks every service tier lies in 1..tier_count.
	FieldTiers = "tiers"

	// FieldRodSize checks the drop rod parses to a supported size.
	FieldRodSize = "drop_rod_size"
)

var defaultSnapshotFields = []string{FieldStruct, FieldTiers, FieldRodSize}

// RequestValidator implements [Validator] for auth requests and project
// snapshots.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a [Validator] whose error messages use the
// json field names of the validated structs.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.ProjectSnapshot / *models.ProjectSnapshot
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value)
	case *models.RegisterRequest:
		return v.validateRegister(*value)

	case models.LoginRequest:
		return v.structRules(value)
	case *models.LoginRequest:
		return v.structRules(*value)

	case models.ProjectSnapshot:
		return v.validateSnapshot(value, fields...)
	case *models.ProjectSnapshot:
		return v.validateSnapshot(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(req models.RegisterRequest) error {
	if err := v.structRules(req); err != nil {
		var fe validator.FieldError
		if errors.As(err, &fe) && fe.Field() == "password" && fe.Tag() == "min" {
			return fmt.Errorf("%w: %w", ErrInvalidInput, ErrInvalidPassword)
		}
		return err
	}
	return nil
}

// validateSnapshot runs the named rules, or all of them when fields is
// empty.
func (v *RequestValidator) validateSnapshot(s models.ProjectSnapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultSnapshotFields
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldStruct:
			if err := v.structRules(s); err != nil {
				errs = append(errs, err)
			}
		case FieldTiers:
			for i, svc := range s.Services {
				if svc.Tier < 1 || svc.Tier > s.Bracket.TierCount {
					errs = append(errs, fmt.Errorf("%w: %w: services[%d].tier=%d, tier_count=%d",
						ErrInvalidInput, ErrTierOutOfRange, i, svc.Tier, s.Bracket.TierCount))
				}
			}
		case FieldRodSize:
			if !calc.IsKnownRodSize(s.Bracket.DropRodSize) {
				errs = append(errs, fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrUnknownRodSize, s.Bracket.DropRodSize))
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return errors.Join(errs...)
}

// structRules applies the struct tags and reports the first violation in
// a user-readable form.
func (v *RequestValidator) structRules(obj any) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return &fieldError{FieldError: verrs[0]}
}

// fieldError renders a validator.FieldError as "path: rule".
type fieldError struct {
	validator.FieldError
}

func (e *fieldError) Error() string {
	path := e.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: %s is required", ErrInvalidInput, path)
	case "email":
		return fmt.Sprintf("%s: %s must be a valid email address", ErrInvalidInput, path)
	case "min", "gte":
		return fmt.Sprintf("%s: %s must be at least %s", ErrInvalidInput, path, e.Param())
	case "max", "lte":
		return fmt.Sprintf("%s: %s must be at most %s", ErrInvalidInput, path, e.Param())
	case "gt":
		return fmt.Sprintf("%s: %s must be greater than %s", ErrInvalidInput, path, e.Param())
	default:
		return fmt.Sprintf("%s: %s failed %q", ErrInvalidInput, path, e.Tag())
	}
}

func (e *fieldError) Unwrap() []error {
	return []error{ErrInvalidInput, e.FieldError}
}
