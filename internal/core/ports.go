package core

import (
	"context"
	"zoomguess/internal/repository"
	tokenIssuer "zoomguess/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user *repository.User) error
	GetUserByID(ctx context.Context, id uint) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUsersByID(ctx context.Context, ids []uint) ([]repository.User, error)
	DeleteUser(ctx context.Context, id uint) error
	CreateGuess(ctx context.Context, guess *repository.Guess) error
	GetGuessesRanked(ctx context.Context) ([]repository.Guess, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
