package service

import (
	"context"
	"errors"
	"strings"

	"movie-manager/internal/models"
	"movie-manager/internal/repository"
)

// Domain errors for catalog operations.
var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrTitleRequired = errors.New("title must not be empty")
)

type MovieService struct {
	movieRepo repository.Movies
}

func NewMovieService(repo repository.Movies) *MovieService {
	return &MovieService{movieRepo: repo}
}

// List returns every movie the owner has, in storage order.
func (s *MovieService) List(ctx context.Context, ownerID int) ([]models.Movie, error) {
	return s.movieRepo.ListByOwner(ctx, ownerID)
}

// Create validates the title, stamps the owner and returns the stored
// record including its assigned id. Field values are stored exactly as
// submitted.
func (s *MovieService) Create(ctx context.Context, ownerID int, in models.MovieCreate) (*models.Movie, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	m := models.Movie{
		Title:       in.Title,
		Director:    in.Director,
		Year:        in.Year,
		Genre:       in.Genre,
		Rating:      in.Rating,
		Description: in.Description,
		UserID:      ownerID,
	}
	id, err := s.movieRepo.Insert(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return &m, nil
}

// Get fetches one owned movie. Missing and foreign-owned ids are both
// ErrMovieNotFound, so existence never leaks across owners.
func (s *MovieService) Get(ctx context.Context, ownerID, id int) (*models.Movie, error) {
	m, err := s.movieRepo.GetByOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMovieNotFound
	}
	return m, nil
}

// Update applies a sparse patch to an owned movie and returns the fresh
// record. An empty patch is a no-op that still returns the current record;
// the ownership rule matches Get either way. Between two racing updates the
// last write wins.
func (s *MovieService) Update(ctx context.Context, ownerID, id int, patch models.MovieUpdate) (*models.Movie, error) {
	// Title stays mandatory: a patch may not null it or blank it out.
	if patch.Title.Set && (!patch.Title.Valid || strings.TrimSpace(patch.Title.Value) == "") {
		return nil, ErrTitleRequired
	}

	if patch.IsZero() {
		return s.Get(ctx, ownerID, id)
	}

	n, err := s.movieRepo.UpdateByOwner(ctx, id, ownerID, patch)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrMovieNotFound
	}
	return s.Get(ctx, ownerID, id)
}

// Delete removes one owned movie under the same ownership rule as Get.
func (s *MovieService) Delete(ctx context.Context, ownerID, id int) error {
	n, err := s.movieRepo.DeleteByOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
