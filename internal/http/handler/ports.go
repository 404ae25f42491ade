package handler

import (
	"context"
	"net/http"
	"zoomguess/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name GameService . GameService
type GameService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	GetUser(ctx context.Context, token string, id uint) (core.UserRecord, error)
	DeleteUser(ctx context.Context, token string, id uint) error
	Leaderboard(ctx context.Context) ([]core.LeaderboardEntry, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
