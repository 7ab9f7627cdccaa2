package repository

import (
	"context"
	"database/sql"
	"errors"

	"movie-manager/internal/models"
)

// ErrDuplicate marks a write rejected by a UNIQUE constraint. Callers
// translate it into a domain-level conflict instead of a generic fault.
var ErrDuplicate = errors.New("duplicate value for unique column")

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// Movies provides row-level access to the movies table. Every per-row
// operation filters by owner in the same statement, so a foreign-owned id
// behaves exactly like a missing one.
type Movies interface {
	Insert(ctx context.Context, m models.Movie) (int, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Movie, error)
	GetByOwner(ctx context.Context, id, ownerID int) (*models.Movie, error)
	UpdateByOwner(ctx context.Context, id, ownerID int, patch models.MovieUpdate) (int64, error)
	DeleteByOwner(ctx context.Context, id, ownerID int) (int64, error)
}

type Repository struct {
	Auth   Authorization
	Movies Movies
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:   NewUserRepository(db),
		Movies: NewMovieSQLite(db),
	}
}
