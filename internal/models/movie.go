package models

// Movie is one catalog entry, always owned by exactly one user. Optional
// fields are pointers so a missing value serializes as an explicit JSON null.
type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Director    *string  `json:"director"`
	Year        *int     `json:"year"`
	Genre       *string  `json:"genre"`
	Rating      *float64 `json:"rating"` // UI range is 0..10, storage does not enforce it
	Description *string  `json:"description"`
	UserID      int      `json:"user_id"`
}

// MovieCreate is the request body for POST /movies. Title is the only
// required field.
type MovieCreate struct {
	Title       string   `json:"title" binding:"required"`
	Director    *string  `json:"director"`
	Year        *int     `json:"year"`
	Genre       *string  `json:"genre"`
	Rating      *float64 `json:"rating"`
	Description *string  `json:"description"`
}

// MovieUpdate is the sparse patch body for PUT /movies/{id}. Only fields
// present in the request are applied: an explicit null clears the column,
// an absent field leaves it untouched.
type MovieUpdate struct {
	Title       Optional[string]  `json:"title"`
	Director    Optional[string]  `json:"director"`
	Year        Optional[int]     `json:"year"`
	Genre       Optional[string]  `json:"genre"`
	Rating      Optional[float64] `json:"rating"`
	Description Optional[string]  `json:"description"`
}

// IsZero reports whether the patch carries no fields at all.
func (u MovieUpdate) IsZero() bool {
	return !u.Title.Set && !u.Director.Set && !u.Year.Set &&
		!u.Genre.Set && !u.Rating.Set && !u.Description.Set
}
