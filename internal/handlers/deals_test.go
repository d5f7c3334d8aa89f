package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deals-room-service/internal/mocks"
	"deals-room-service/internal/models"
	"deals-room-service/internal/ws"
)

func setupDealRouter(handler *DealHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", 1)
		c.Set("userName", "alice")
		c.Next()
	})
	r.GET("/deals", handler.ListDeals)
	r.POST("/deals", handler.PostDeal)
	return r
}

func TestListDealsSuccess(t *testing.T) {
	dealRepo := new(mocks.DealRepositoryMock)
	userRepo := new(mocks.UserRepositoryMock)
	handler := NewDealHandler(dealRepo, userRepo, ws.NewHub(), nil)
	router := setupDealRouter(handler)

	dealRepo.On("ListDeals", mock.Anything, "", "").Return([]models.Deal{
		{ID: 2, Title: "bob: looking for rebar", SenderID: 2, CreatedAt: time.Now()},
		{ID: 1, Title: "gone: old post", SenderID: 9, CreatedAt: time.Now().Add(-time.Hour)},
	}, nil).Once()
	userRepo.On("ListUsers", mock.Anything).Return([]models.User{{ID: 2, Name: "bob"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/deals", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Deals []struct {
			ID         int    `json:"id"`
			SenderName string `json:"sender_name"`
		} `json:"deals"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Deals, 2)
	assert.Equal(t, "bob", resp.Deals[0].SenderName)
	assert.Equal(t, "Unknown User", resp.Deals[1].SenderName)

	dealRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestListDealsWithFilters(t *testing.T) {
	dealRepo := new(mocks.DealRepositoryMock)
	userRepo := new(mocks.UserRepositoryMock)
	handler := NewDealHandler(dealRepo, userRepo, ws.NewHub(), nil)
	router := setupDealRouter(handler)

	dealRepo.On("ListDeals", mock.Anything, "Machines", "active").Return([]models.Deal{}, nil).Once()
	userRepo.On("ListUsers", mock.Anything).Return([]models.User{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/deals?category=Machines&status=active", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	dealRepo.AssertExpectations(t)
}

func TestPostDealSuccess(t *testing.T) {
	dealRepo := new(mocks.DealRepositoryMock)
	handler := NewDealHandler(dealRepo, new(mocks.UserRepositoryMock), ws.NewHub(), nil)
	router := setupDealRouter(handler)

	dealRepo.On("CreateDeal", mock.Anything, 1, "alice: need 20 tons of cement", "need 20 tons of cement", "Materials").
		Return(models.Deal{ID: 11, SenderID: 1}, nil).Once()

	body := bytes.NewBufferString(`{"description":"need 20 tons of cement","category":"Materials"}`)
	req := httptest.NewRequest(http.MethodPost, "/deals", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	dealRepo.AssertExpectations(t)
}

func TestPostDealTruncatesTitle(t *testing.T) {
	dealRepo := new(mocks.DealRepositoryMock)
	handler := NewDealHandler(dealRepo, new(mocks.UserRepositoryMock), ws.NewHub(), nil)
	router := setupDealRouter(handler)

	long := "this description is well over fifty characters long so the title gets cut"
	wantTitle := "alice: " + long[:50] + "..."
	dealRepo.On("CreateDeal", mock.Anything, 1, wantTitle, long, "").
		Return(models.Deal{ID: 12, SenderID: 1}, nil).Once()

	payload, err := json.Marshal(map[string]string{"description": long})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/deals", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	dealRepo.AssertExpectations(t)
}

func TestPostDealStoreFailure(t *testing.T) {
	dealRepo := new(mocks.DealRepositoryMock)
	handler := NewDealHandler(dealRepo, new(mocks.UserRepositoryMock), ws.NewHub(), nil)
	router := setupDealRouter(handler)

	dealRepo.On("CreateDeal", mock.Anything, 1, mock.AnythingOfType("string"), "hello", "").
		Return(models.Deal{}, assert.AnError).Once()

	body := bytes.NewBufferString(`{"description":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/deals", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	dealRepo.AssertExpectations(t)
}

func TestPostDealMissingDescription(t *testing.T) {
	handler := NewDealHandler(new(mocks.DealRepositoryMock), new(mocks.UserRepositoryMock), ws.NewHub(), nil)
	router := setupDealRouter(handler)

	body := bytes.NewBufferString(`{"category":"Materials"}`)
	req := httptest.NewRequest(http.MethodPost, "/deals", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
