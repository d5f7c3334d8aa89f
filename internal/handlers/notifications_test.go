package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deals-room-service/internal/mocks"
	"deals-room-service/internal/models"
	"deals-room-service/internal/repositories"
	"deals-room-service/internal/ws"
)

func setupNotificationRouter(handler *NotificationHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", 1)
		c.Next()
	})
	r.GET("/notifications", handler.ListNotifications)
	r.GET("/notifications/unread_count", handler.UnreadCount)
	r.POST("/notifications/:id/read", handler.MarkRead)
	r.POST("/notifications/read_all", handler.MarkAllRead)
	return r
}

func TestListNotificationsSuccess(t *testing.T) {
	notifRepo := new(mocks.NotificationRepositoryMock)
	handler := NewNotificationHandler(notifRepo, ws.NewHub(), nil)
	router := setupNotificationRouter(handler)

	notifRepo.On("ListForUser", mock.Anything, 1).Return([]models.Notification{
		{ID: 2, UserID: 1, Type: models.NotificationDMMessage},
		{ID: 1, UserID: 1, Type: models.NotificationDMRequest, IsRead: true},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Notifications []models.Notification `json:"notifications"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Notifications, 2)
	notifRepo.AssertExpectations(t)
}

func TestUnreadCountFallsBackToStore(t *testing.T) {
	notifRepo := new(mocks.NotificationRepositoryMock)
	handler := NewNotificationHandler(notifRepo, ws.NewHub(), nil)
	router := setupNotificationRouter(handler)

	// No live feed for user 1, so the count comes from the repository.
	notifRepo.On("UnreadCount", mock.Anything, 1).Return(3, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/notifications/unread_count", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]int
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 3, resp["unread_count"])
	notifRepo.AssertExpectations(t)
}

func TestMarkReadSuccess(t *testing.T) {
	notifRepo := new(mocks.NotificationRepositoryMock)
	handler := NewNotificationHandler(notifRepo, ws.NewHub(), nil)
	router := setupNotificationRouter(handler)

	notifRepo.On("MarkNotificationRead", mock.Anything, 7, 1).
		Return(models.Notification{ID: 7, UserID: 1, IsRead: true}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/notifications/7/read", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.Notification
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.IsRead)
	notifRepo.AssertExpectations(t)
}

func TestMarkReadNotFound(t *testing.T) {
	notifRepo := new(mocks.NotificationRepositoryMock)
	handler := NewNotificationHandler(notifRepo, ws.NewHub(), nil)
	router := setupNotificationRouter(handler)

	notifRepo.On("MarkNotificationRead", mock.Anything, 99, 1).
		Return(models.Notification{}, repositories.ErrNotificationNotFound).Once()

	req := httptest.NewRequest(http.MethodPost, "/notifications/99/read", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	notifRepo.AssertExpectations(t)
}

func TestMarkReadBadID(t *testing.T) {
	handler := NewNotificationHandler(new(mocks.NotificationRepositoryMock), ws.NewHub(), nil)
	router := setupNotificationRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/notifications/abc/read", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkAllReadSuccess(t *testing.T) {
	notifRepo := new(mocks.NotificationRepositoryMock)
	handler := NewNotificationHandler(notifRepo, ws.NewHub(), nil)
	router := setupNotificationRouter(handler)

	notifRepo.On("MarkAllRead", mock.Anything, 1).Return([]models.Notification{
		{ID: 1, UserID: 1, IsRead: true},
		{ID: 2, UserID: 1, IsRead: true},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/notifications/read_all", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]int
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp["updated"])
	notifRepo.AssertExpectations(t)
}
