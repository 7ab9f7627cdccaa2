package handlers

import (
	"context"
	"net/http"

	"movie-manager/internal/models"
	"movie-manager/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpToken   string
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseSubject  string
	parseErr      error
	authUser      *models.User
	authErr       error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
	lastAuthToken      string
}

func (m *mockAuth) SignUp(username, password string) (string, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpToken, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseSubject, m.parseErr
}
func (m *mockAuth) Authenticate(token string) (*models.User, error) {
	m.lastAuthToken = token
	return m.authUser, m.authErr
}

type mockMovies struct {
	listResp   []models.Movie
	listErr    error
	createResp *models.Movie
	createErr  error
	getResp    *models.Movie
	getErr     error
	updateResp *models.Movie
	updateErr  error
	deleteErr  error

	lastOwner   int
	lastID      int
	lastCreate  models.MovieCreate
	lastPatch   models.MovieUpdate
	listCalls   int
	createCalls int
	getCalls    int
	updateCalls int
	deleteCalls int
}

func (m *mockMovies) List(ctx context.Context, ownerID int) ([]models.Movie, error) {
	m.listCalls++
	m.lastOwner = ownerID
	return m.listResp, m.listErr
}
func (m *mockMovies) Create(ctx context.Context, ownerID int, in models.MovieCreate) (*models.Movie, error) {
	m.createCalls++
	m.lastOwner = ownerID
	m.lastCreate = in
	return m.createResp, m.createErr
}
func (m *mockMovies) Get(ctx context.Context, ownerID, id int) (*models.Movie, error) {
	m.getCalls++
	m.lastOwner = ownerID
	m.lastID = id
	return m.getResp, m.getErr
}
func (m *mockMovies) Update(ctx context.Context, ownerID, id int, patch models.MovieUpdate) (*models.Movie, error) {
	m.updateCalls++
	m.lastOwner = ownerID
	m.lastID = id
	m.lastPatch = patch
	return m.updateResp, m.updateErr
}
func (m *mockMovies) Delete(ctx context.Context, ownerID, id int) error {
	m.deleteCalls++
	m.lastOwner = ownerID
	m.lastID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
