// Package utils holds small helpers shared by the server packages: request
// context accessors, JSON replies, the resty client wrapper, JWT issuing and
// identifier generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// Keys under which the auth middleware stores the caller.
var (
	UserIDCtxKey = contextKey("userID")
	EmailCtxKey  = contextKey("email")
)

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, userID int64, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, EmailCtxKey, email)
}

// GetUserIDFromContext reports the user id set by [WithUser]. ok is false
// when the value is absent or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok
}
