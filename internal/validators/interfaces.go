// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

// Package validators checks request bodies and project snapshots before
// they reach the service layer.
//
// Struct tags are enforced with go-playground/validator; rules that span
// several fields (tier ranges, rod sizes) are coded by hand.
package validators

import "context"

// Validator checks a request value. When fields are given only those
// struct fields are checked.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
