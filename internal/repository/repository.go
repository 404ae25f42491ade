package repository

import (
	"context"
	"errors"
	"fmt"
	"time"
	"zoomguess/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateCredential error = errors.New("username or email already exists")

// guessRanking orders correct guesses first, most recent first within each
// group. Ties beyond the two keys keep whatever order the store returns.
const guessRanking = "is_correct DESC, timestamp DESC"

type GameRepository struct {
	db Storage
}

func NewGameRepository(db Storage) *GameRepository {
	return &GameRepository{
		db: db,
	}
}

func (r *GameRepository) MigrateTables(tables ...any) error {
	err := r.db.MigrateTable(tables...)
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// SeedUserTable loads two demo players into an empty users table so the
// seeded guesses resolve to real usernames.
func (r *GameRepository) SeedUserTable(ctx context.Context) error {
	users := []User{
		{
			Username:     "alice",
			Email:        "alice@zoomnguess.io",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
		{
			Username:     "bob",
			Email:        "bob@zoomnguess.io",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
		},
	}

	err := r.db.Seed(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	return nil
}

// SeedGuessTable loads a couple of sample guesses so a fresh install has
// something to show on the leaderboard. Runs only against an empty table.
func (r *GameRepository) SeedGuessTable(ctx context.Context) error {
	guesses := []Guess{
		{
			ImageID:   1,
			GuessText: "Eiffel Tower",
			Reasoning: "It looks like iron lattice work.",
			UserID:    1,
			IsCorrect: true,
			Timestamp: time.Now().UTC(),
		},
		{
			ImageID:   2,
			GuessText: "Great Wall",
			Reasoning: "Stony structure across hills.",
			UserID:    2,
			IsCorrect: false,
			Timestamp: time.Now().UTC(),
		},
	}

	err := r.db.Seed(ctx, &guesses)
	if err != nil {
		return fmt.Errorf("seed guesses: %w", err)
	}

	return nil
}

func (r *GameRepository) CreateUser(ctx context.Context, user *User) error {
	err := r.db.SaveToTable(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateCredential
		}
		return fmt.Errorf("save user: %w", err)
	}

	return nil
}

func (r *GameRepository) GetUserByID(ctx context.Context, id uint) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *GameRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *GameRepository) GetUsersByID(ctx context.Context, ids []uint) ([]User, error) {
	users := []User{}

	err := r.db.GetAllBy(ctx, "id", ids, &users)
	if err != nil {
		return nil, fmt.Errorf("get users by id: %w", err)
	}

	return users, nil
}

func (r *GameRepository) DeleteUser(ctx context.Context, id uint) error {
	err := r.db.DeleteByID(ctx, id, &User{})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func (r *GameRepository) CreateGuess(ctx context.Context, guess *Guess) error {
	err := r.db.SaveToTable(ctx, guess)
	if err != nil {
		return fmt.Errorf("save guess: %w", err)
	}

	return nil
}

// GetGuessesRanked returns every guess in leaderboard order.
func (r *GameRepository) GetGuessesRanked(ctx context.Context) ([]Guess, error) {
	guesses := []Guess{}

	err := r.db.GetAllOrdered(ctx, guessRanking, &guesses)
	if err != nil {
		return nil, fmt.Errorf("get guesses ranked: %w", err)
	}

	return guesses, nil
}
