package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"movie-manager/internal/models"
	"movie-manager/internal/service"

	"github.com/gin-gonic/gin"
)

// Kinds carried by every error body next to the human-readable message.
const (
	kindValidation   = "validation"
	kindUnauthorized = "unauthorized"
	kindNotFound     = "not_found"
	kindConflict     = "conflict"
	kindInternal     = "internal"
)

// Common response messages to avoid magic strings and typos.
const (
	errInvalidMovieID  = "invalid movie id"
	errMissingIdentity = "missing authenticated user"
	errInternal        = "internal error"
)

// errorResponse writes the uniform error envelope.
func errorResponse(c *gin.Context, httpCode int, kind, msg string) {
	c.JSON(httpCode, gin.H{"kind": kind, "error": msg})
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, kind, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", requestID(c)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	errorResponse(c, httpCode, kind, userMsg)
}

// respondServiceError translates domain errors into the wire taxonomy.
// Anything unrecognized is logged and surfaces as an opaque 500.
func (h *Handler) respondServiceError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrMovieNotFound):
		errorResponse(c, http.StatusNotFound, kindNotFound, service.ErrMovieNotFound.Error())
	case errors.Is(err, service.ErrTitleRequired):
		errorResponse(c, http.StatusBadRequest, kindValidation, service.ErrTitleRequired.Error())
	case errors.Is(err, service.ErrCredentialsRequired):
		errorResponse(c, http.StatusBadRequest, kindValidation, service.ErrCredentialsRequired.Error())
	case errors.Is(err, service.ErrUserExists):
		errorResponse(c, http.StatusBadRequest, kindConflict, service.ErrUserExists.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		errorResponse(c, http.StatusUnauthorized, kindUnauthorized, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrInvalidToken):
		errorResponse(c, http.StatusUnauthorized, kindUnauthorized, service.ErrInvalidToken.Error())
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, kindInternal, errInternal, logKey, err, kv...)
	}
}

// movieIDParam parses the {id} path segment. A non-integer id is a
// validation failure, not a lookup miss.
func (h *Handler) movieIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, kindValidation, errInvalidMovieID)
		return 0, false
	}
	return id, true
}

// mustCallerID pulls the authenticated user id or writes a 401.
func (h *Handler) mustCallerID(c *gin.Context) (int, bool) {
	owner, ok := callerID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, kindUnauthorized, errMissingIdentity)
	}
	return owner, ok
}

// MovieUpdateRequest is an exported model for Swagger docs of the update
// payload. Omitted fields keep their stored values; explicit nulls clear them.
type MovieUpdateRequest struct {
	Title       *string  `json:"title,omitempty" example:"Dune"`
	Director    *string  `json:"director,omitempty" example:"Denis Villeneuve"`
	Year        *int     `json:"year,omitempty" example:"2021"`
	Genre       *string  `json:"genre,omitempty" example:"sci-fi"`
	Rating      *float64 `json:"rating,omitempty" example:"8.1"`
	Description *string  `json:"description,omitempty" example:"Paul Atreides goes to Arrakis."`
}

// @Summary      List my movies
// @Description  Returns every movie owned by the caller, empty list included.
// @Tags         movies
// @Produce      json
// @Success      200  {array}   models.Movie
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /movies [get]
// @Security     BearerAuth
func (h *Handler) listMovies(c *gin.Context) {
	owner, ok := h.mustCallerID(c)
	if !ok {
		return
	}
	list, err := h.services.Movies.List(c.Request.Context(), owner)
	if err != nil {
		h.respondServiceError(c, err, "movies_list_failed", "owner", owner)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Add a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        body  body      models.MovieCreate  true  "New movie"
// @Success      201   {object}  models.Movie
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /movies [post]
// @Security     BearerAuth
func (h *Handler) createMovie(c *gin.Context) {
	owner, ok := h.mustCallerID(c)
	if !ok {
		return
	}
	var input models.MovieCreate
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	m, err := h.services.Movies.Create(c.Request.Context(), owner, input)
	if err != nil {
		h.respondServiceError(c, err, "movie_create_failed", "owner", owner)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary      Get one movie
// @Tags         movies
// @Produce      json
// @Param        id   path      int  true  "Movie id"
// @Success      200  {object}  models.Movie
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [get]
// @Security     BearerAuth
func (h *Handler) getMovie(c *gin.Context) {
	owner, ok := h.mustCallerID(c)
	if !ok {
		return
	}
	id, ok := h.movieIDParam(c)
	if !ok {
		return
	}
	m, err := h.services.Movies.Get(c.Request.Context(), owner, id)
	if err != nil {
		h.respondServiceError(c, err, "movie_get_failed", "owner", owner, "id", id)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Update a movie
// @Description  Sparse update: only fields present in the body change.
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Movie id"
// @Param        body  body      MovieUpdateRequest  true  "Fields to change"
// @Success      200   {object}  models.Movie
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /movies/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateMovie(c *gin.Context) {
	owner, ok := h.mustCallerID(c)
	if !ok {
		return
	}
	id, ok := h.movieIDParam(c)
	if !ok {
		return
	}
	var patch models.MovieUpdate
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}
	m, err := h.services.Movies.Update(c.Request.Context(), owner, id, patch)
	if err != nil {
		h.respondServiceError(c, err, "movie_update_failed", "owner", owner, "id", id)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Param        id   path  int  true  "Movie id"
// @Success      204  "deleted"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteMovie(c *gin.Context) {
	owner, ok := h.mustCallerID(c)
	if !ok {
		return
	}
	id, ok := h.movieIDParam(c)
	if !ok {
		return
	}
	if err := h.services.Movies.Delete(c.Request.Context(), owner, id); err != nil {
		h.respondServiceError(c, err, "movie_delete_failed", "owner", owner, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
