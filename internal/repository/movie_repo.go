package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"movie-manager/internal/models"
)

type MovieSQLite struct {
	db *sql.DB
}

func NewMovieSQLite(db *sql.DB) *MovieSQLite { return &MovieSQLite{db: db} }

var _ Movies = (*MovieSQLite)(nil)

const (
	movieColumns = "id, title, director, year, genre, rating, description, user_id"

	insertMovieSQL = `INSERT INTO movies (title, director, year, genre, rating, description, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectMoviesByOwnerSQL = `SELECT ` + movieColumns + ` FROM movies WHERE user_id = ?`
	selectMovieByOwnerSQL  = `SELECT ` + movieColumns + ` FROM movies WHERE id = ? AND user_id = ?`
	deleteMovieByOwnerSQL  = `DELETE FROM movies WHERE id = ? AND user_id = ?`
)

// Insert stores a new movie row and returns the id SQLite assigned to it.
func (r *MovieSQLite) Insert(ctx context.Context, m models.Movie) (int, error) {
	res, err := r.db.ExecContext(ctx, insertMovieSQL,
		m.Title, m.Director, m.Year, m.Genre, m.Rating, m.Description, m.UserID)
	if err != nil {
		return 0, fmt.Errorf("insert movie %q: %w", m.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for movie %q: %w", m.Title, err)
	}
	return int(lastID), nil
}

// ListByOwner returns every movie owned by ownerID in storage order. The
// result is an empty slice, never nil, so it serializes as [].
func (r *MovieSQLite) ListByOwner(ctx context.Context, ownerID int) ([]models.Movie, error) {
	rows, err := r.db.QueryContext(ctx, selectMoviesByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select movies for user %d: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Movie, 0, 16)
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Director, &m.Year,
			&m.Genre, &m.Rating, &m.Description, &m.UserID); err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}
	return out, nil
}

// GetByOwner fetches one movie by id, restricted to ownerID. Returns
// (nil, nil) when no such owned row exists.
func (r *MovieSQLite) GetByOwner(ctx context.Context, id, ownerID int) (*models.Movie, error) {
	var m models.Movie
	err := r.db.QueryRowContext(ctx, selectMovieByOwnerSQL, id, ownerID).
		Scan(&m.ID, &m.Title, &m.Director, &m.Year,
			&m.Genre, &m.Rating, &m.Description, &m.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select movie %d: %w", id, err)
	}
	return &m, nil
}

// UpdateByOwner builds the SET clause from only the fields present in patch
// (an explicit null writes NULL) and applies it with the ownership predicate
// in the same statement. The returned count is 0 both for a missing row and
// for somebody else's row.
func (r *MovieSQLite) UpdateByOwner(ctx context.Context, id, ownerID int, patch models.MovieUpdate) (int64, error) {
	var (
		sets []string
		args []any
	)
	if patch.Title.Set {
		sets = append(sets, "title = ?")
		args = append(args, patch.Title.Ptr())
	}
	if patch.Director.Set {
		sets = append(sets, "director = ?")
		args = append(args, patch.Director.Ptr())
	}
	if patch.Year.Set {
		sets = append(sets, "year = ?")
		args = append(args, patch.Year.Ptr())
	}
	if patch.Genre.Set {
		sets = append(sets, "genre = ?")
		args = append(args, patch.Genre.Ptr())
	}
	if patch.Rating.Set {
		sets = append(sets, "rating = ?")
		args = append(args, patch.Rating.Ptr())
	}
	if patch.Description.Set {
		sets = append(sets, "description = ?")
		args = append(args, patch.Description.Ptr())
	}
	if len(sets) == 0 {
		return 0, errors.New("empty movie patch")
	}

	q := "UPDATE movies SET " + strings.Join(sets, ", ") + " WHERE id = ? AND user_id = ?"
	args = append(args, id, ownerID)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("update movie %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for movie %d: %w", id, err)
	}
	return n, nil
}

// DeleteByOwner removes one owned movie row and reports how many rows went
// away, which is how callers detect missing or foreign-owned ids.
func (r *MovieSQLite) DeleteByOwner(ctx context.Context, id, ownerID int) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteMovieByOwnerSQL, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete movie %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for movie %d: %w", id, err)
	}
	return n, nil
}
