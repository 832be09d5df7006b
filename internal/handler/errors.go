// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when neither the API
// nor the frontend address is configured. The server refuses to start.
var errNoHandlersAreCreated = errors.New("no handlers are created")
