// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package http

import "errors"

// Sentinel errors raised by the transport layer itself.
var (
	// ErrMissingToken is returned by the auth middleware when the request
	// carries no bearer token at all.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrNoUserInContext is returned when a protected handler runs without
	// the auth middleware having stored the user id.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrFileRequired is returned when a multipart import has no "file" part.
	ErrFileRequired = errors.New("multipart field \"file\" is required")
)
