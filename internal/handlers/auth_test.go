package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"deals-room-service/internal/mocks"
	"deals-room-service/internal/models"
	"deals-room-service/internal/repositories"
)

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/logout", handler.Logout)
	r.GET("/auth/session", handler.Session)
	return r
}

func TestRegisterSuccess(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	sessionRepo := new(mocks.SessionRepositoryMock)
	handler := NewAuthHandler(userRepo, sessionRepo, nil)
	router := setupAuthRouter(handler)

	created := models.User{ID: 5, Name: "alice", Email: "alice@example.com"}
	userRepo.On("CreateUser", mock.Anything, "alice", "alice@example.com", mock.AnythingOfType("string"),
		[]string{"Machines"}, []string(nil)).Return(created, nil).Once()
	sessionRepo.On("CreateSession", mock.Anything, created).
		Return(models.Session{Token: "tok-1", UserID: 5, Email: "alice@example.com", Name: "alice"}, nil).Once()

	body := bytes.NewBufferString(`{"name":"alice","email":"alice@example.com","password":"secret1","resources":["Machines"]}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		User    models.User    `json:"user"`
		Session models.Session `json:"session"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 5, resp.User.ID)
	assert.Equal(t, "tok-1", resp.Session.Token)

	userRepo.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	handler := NewAuthHandler(userRepo, new(mocks.SessionRepositoryMock), nil)
	router := setupAuthRouter(handler)

	userRepo.On("CreateUser", mock.Anything, "alice", "alice@example.com", mock.AnythingOfType("string"),
		[]string(nil), []string(nil)).Return(models.User{}, repositories.ErrEmailTaken).Once()

	body := bytes.NewBufferString(`{"name":"alice","email":"alice@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	userRepo.AssertExpectations(t)
}

func TestRegisterShortPassword(t *testing.T) {
	handler := NewAuthHandler(new(mocks.UserRepositoryMock), new(mocks.SessionRepositoryMock), nil)
	router := setupAuthRouter(handler)

	body := bytes.NewBufferString(`{"name":"alice","email":"alice@example.com","password":"abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginSuccess(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	sessionRepo := new(mocks.SessionRepositoryMock)
	handler := NewAuthHandler(userRepo, sessionRepo, nil)
	router := setupAuthRouter(handler)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{ID: 5, Name: "alice", Email: "alice@example.com", PasswordHash: string(hash)}
	userRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(user, nil).Once()
	sessionRepo.On("CreateSession", mock.Anything, user).
		Return(models.Session{Token: "tok-2", UserID: 5}, nil).Once()

	body := bytes.NewBufferString(`{"email":"alice@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	userRepo.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	sessionRepo := new(mocks.SessionRepositoryMock)
	handler := NewAuthHandler(userRepo, sessionRepo, nil)
	router := setupAuthRouter(handler)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").
		Return(models.User{ID: 5, PasswordHash: string(hash)}, nil).Once()

	body := bytes.NewBufferString(`{"email":"alice@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	sessionRepo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestLoginUnknownEmail(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	handler := NewAuthHandler(userRepo, new(mocks.SessionRepositoryMock), nil)
	router := setupAuthRouter(handler)

	userRepo.On("GetUserByEmail", mock.Anything, "ghost@example.com").
		Return(models.User{}, repositories.ErrUserNotFound).Once()

	body := bytes.NewBufferString(`{"email":"ghost@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "invalid email or password", resp["error"])
}

func TestLogoutSuccess(t *testing.T) {
	sessionRepo := new(mocks.SessionRepositoryMock)
	handler := NewAuthHandler(new(mocks.UserRepositoryMock), sessionRepo, nil)
	router := setupAuthRouter(handler)

	sessionRepo.On("DeleteSession", mock.Anything, "tok-3").Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-3")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	sessionRepo.AssertExpectations(t)
}

func TestSessionInvalidToken(t *testing.T) {
	sessionRepo := new(mocks.SessionRepositoryMock)
	handler := NewAuthHandler(new(mocks.UserRepositoryMock), sessionRepo, nil)
	router := setupAuthRouter(handler)

	sessionRepo.On("GetSession", mock.Anything, "stale").
		Return(models.Session{}, repositories.ErrSessionNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	sessionRepo.AssertExpectations(t)
}
