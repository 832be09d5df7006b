// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package server

import "errors"

// errNoServersAreCreated means neither the API nor the frontend listener
// has an address configured.
var errNoServersAreCreated = errors.New("no servers are created: set HTTP_ADDRESS or FRONTEND_ADDRESS")
