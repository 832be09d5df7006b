// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

// Package app contains shared application-layer constants used across the
// bracket tool HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "detail" field of JSON error bodies. The single-page client shows them to
// the engineer as they are, so the wording is part of the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgEmailAlreadyRegistered is returned when a registration attempt uses
	// an email that already has an account.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidCredentials is returned for an unknown email or a wrong
	// password. Both cases share this message.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgMissingToken is returned when a protected route is called without
	// a bearer token.
	MsgMissingToken = "Missing token"

	// MsgInvalidToken is returned when the bearer token is malformed,
	// expired or signed by someone else.
	MsgInvalidToken = "Invalid token"

	// MsgUnknownKind is returned by the import endpoint for a library kind
	// other than profiles, rods, washers or anchors.
	MsgUnknownKind = "Unknown kind"

	// MsgUnknownLibraryKind prefixes the kind name on library reads.
	MsgUnknownLibraryKind = "Unknown library kind: "

	// MsgNotFound is returned when a library row does not exist.
	MsgNotFound = "Not found"

	// MsgFileRequired is returned when an import request has no "file" part.
	MsgFileRequired = "CSV file is required in form field \"file\""

	// MsgFileTooLarge is returned when an upload exceeds the configured limit.
	MsgFileTooLarge = "File too large"

	// MsgBodyTooLarge is returned when a JSON request body exceeds the cap.
	MsgBodyTooLarge = "Request body too large"

	// MsgProjectNotFound is returned for projects that do not exist or
	// belong to another user.
	MsgProjectNotFound = "Project not found"

	// MsgRevisionNotFound is returned for an unknown revision code.
	MsgRevisionNotFound = "Revision not found"

	// MsgPDFNotFound is returned when a revision's stored PDF is gone.
	MsgPDFNotFound = "Stored PDF not found"

	// MsgRevisionConflict is returned when no free revision code could be
	// allocated because of concurrent report generation.
	MsgRevisionConflict = "Concurrent report generation, please retry"

	// MsgMethodNotAllowed is returned when a known path is called with an
	// unsupported HTTP method.
	MsgMethodNotAllowed = "Method Not Allowed"
)
