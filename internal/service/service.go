package service

import (
	"context"

	"movie-manager/internal/models"
	"movie-manager/internal/repository"
)

type Authorization interface {
	// SignUp creates the account and returns a token, so registration
	// doubles as the first login.
	SignUp(username, password string) (string, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
	Authenticate(accessToken string) (*models.User, error)
}

// Movies exposes the catalog operations, always scoped to the owner that
// the caller resolved from the request token.
type Movies interface {
	List(ctx context.Context, ownerID int) ([]models.Movie, error)
	Create(ctx context.Context, ownerID int, in models.MovieCreate) (*models.Movie, error)
	Get(ctx context.Context, ownerID, id int) (*models.Movie, error)
	Update(ctx context.Context, ownerID, id int, patch models.MovieUpdate) (*models.Movie, error)
	Delete(ctx context.Context, ownerID, id int) error
}

// Service aggregates all sub-services behind one handle for the HTTP layer.
type Service struct {
	Movies
	Authorization
}

func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Movies:        NewMovieService(repos.Movies),
		Authorization: NewAuthService(repos.Auth, authCfg),
	}
}
