// Package utils holds helpers shared by the notes server and client: request
// context values, body signing, JSON replies, the resty client, session
// tokens and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	tokenKey
)

// WithToken stores the authenticated token and its owner in ctx.
func WithToken(ctx context.Context, token models.Token) context.Context {
	ctx = context.WithValue(ctx, userIDKey, token.UserID)
	return context.WithValue(ctx, tokenKey, token)
}

func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(tokenKey).(models.Token)
	return token, ok
}
