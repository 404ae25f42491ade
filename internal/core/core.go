package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"zoomguess/internal/repository"
	tokenIssuer "zoomguess/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var TimeNow = time.Now

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateCredential error = errors.New("username or email already exists")

const timestampLayout = "2006-01-02 15:04:05"

// unknownUsername is shown for guesses whose submitting user no longer
// exists. User deletion does not cascade to guesses.
const unknownUsername = "Unknown"

// Game holds the Zoom-n-Guess domain operations: user registration and
// authentication, guess submission and the leaderboard ranking.
type Game struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

// NewGame is a constructor function for the Game type.
func NewGame(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *Game {
	return &Game{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Register hashes the plaintext password, persists the new user and returns
// its public projection. A taken username or email surfaces
// ErrDuplicateCredential; the plaintext is never stored or logged.
func (g *Game) Register(ctx context.Context, msg RegisterMessage) (UserRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:     msg.Username,
		Email:        msg.Email,
		PasswordHash: string(hash),
	}

	if err := g.repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateCredential) {
			return UserRecord{}, ErrDuplicateCredential
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	g.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// VerifyPassword reports whether the plaintext matches the stored bcrypt
// hash. Neither value is logged.
func (g *Game) VerifyPassword(passwordHash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(plaintext)) == nil
}

// Authenticate checks the provided username and password against the
// database. If the credentials are valid, it generates a JWT token for the
// user.
func (g *Game) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := g.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if !g.VerifyPassword(user.PasswordHash, msg.Password) {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    strconv.FormatUint(uint64(user.ID), 10),
		Expiration: 24,
	}
	token := g.jwtIssuer.Generate(tokenInfo)
	signed, err := g.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// GetUser returns the public projection of the user with the given id. The
// caller's token must validate first.
func (g *Game) GetUser(ctx context.Context, token string, id uint) (UserRecord, error) {
	if _, err := g.jwtIssuer.Validate(token); err != nil {
		return UserRecord{}, fmt.Errorf("validate jwt token: %w", err)
	}

	user, err := g.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user by id: %w", err)
	}

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// DeleteUser removes the user record. Guesses submitted by the user are
// left in place and show up as "Unknown" on the leaderboard afterwards.
func (g *Game) DeleteUser(ctx context.Context, token string, id uint) error {
	if _, err := g.jwtIssuer.Validate(token); err != nil {
		return fmt.Errorf("validate jwt token: %w", err)
	}

	if err := g.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	g.logs.Infow("user deleted", "userId", id)
	return nil
}

// SubmitGuess appends a guess with a server-assigned id and a UTC timestamp
// captured at write time. The referenced user is not required to exist.
func (g *Game) SubmitGuess(ctx context.Context, msg GuessMessage) (GuessRecord, error) {
	guess := repository.Guess{
		ImageID:   msg.ImageID,
		GuessText: msg.GuessText,
		Reasoning: msg.Reasoning,
		UserID:    msg.UserID,
		IsCorrect: msg.IsCorrect,
		Timestamp: TimeNow().UTC(),
	}

	if err := g.repo.CreateGuess(ctx, &guess); err != nil {
		return GuessRecord{}, fmt.Errorf("create guess: %w", err)
	}

	g.logs.Infow("guess submitted",
		"guessId", guess.ID,
		"imageId", guess.ImageID,
		"userId", guess.UserID,
		"isCorrect", guess.IsCorrect)

	return GuessRecord{
		ID:        guess.ID,
		ImageID:   guess.ImageID,
		GuessText: guess.GuessText,
		Reasoning: guess.Reasoning,
		UserID:    guess.UserID,
		IsCorrect: guess.IsCorrect,
		Timestamp: guess.Timestamp,
	}, nil
}

// Leaderboard returns every guess joined with its submitter's username,
// correct guesses first, most recent first within each group. A guess whose
// user no longer exists is listed with the "Unknown" username instead of
// failing the query.
func (g *Game) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	guesses, err := g.repo.GetGuessesRanked(ctx)
	if err != nil {
		return nil, fmt.Errorf("get guesses ranked: %w", err)
	}

	usernames, err := g.usernamesFor(ctx, guesses)
	if err != nil {
		return nil, fmt.Errorf("resolve usernames: %w", err)
	}

	entries := make([]LeaderboardEntry, len(guesses))
	for i, guess := range guesses {
		username, ok := usernames[guess.UserID]
		if !ok {
			username = unknownUsername
		}

		entries[i] = LeaderboardEntry{
			Username:  username,
			ImageID:   guess.ImageID,
			Guess:     guess.GuessText,
			Reasoning: guess.Reasoning,
			IsCorrect: guess.IsCorrect,
			Timestamp: guess.Timestamp.UTC().Format(timestampLayout),
		}
	}

	g.logs.Infow("leaderboard computed", "entries", len(entries))

	return entries, nil
}

func (g *Game) usernamesFor(ctx context.Context, guesses []repository.Guess) (map[uint]string, error) {
	if len(guesses) == 0 {
		return map[uint]string{}, nil
	}

	seen := make(map[uint]struct{}, len(guesses))
	ids := make([]uint, 0, len(guesses))
	for _, guess := range guesses {
		if _, ok := seen[guess.UserID]; ok {
			continue
		}
		seen[guess.UserID] = struct{}{}
		ids = append(ids, guess.UserID)
	}

	users, err := g.repo.GetUsersByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get users by id: %w", err)
	}

	usernames := make(map[uint]string, len(users))
	for _, user := range users {
		usernames[user.ID] = user.Username
	}

	return usernames, nil
}
