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

	"deals-room-service/internal/mocks"
	"deals-room-service/internal/models"
)

func setupCatalogRouter(handler *CatalogHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", 1)
		c.Next()
	})
	r.GET("/catalog/machines", handler.ListMachines)
	r.POST("/catalog/machines", handler.CreateMachine)
	r.GET("/catalog/jobs", handler.ListJobs)
	return r
}

func TestListMachinesWithBrandFilter(t *testing.T) {
	catalogRepo := new(mocks.CatalogRepositoryMock)
	handler := NewCatalogHandler(catalogRepo)
	router := setupCatalogRouter(handler)

	catalogRepo.On("ListMachines", mock.Anything, "CAT").Return([]models.Machine{
		{ID: 1, Title: "Excavator", Brand: "CAT", Status: "active"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/catalog/machines?brand=CAT", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Machines []models.Machine `json:"machines"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Machines, 1)
	assert.Equal(t, "Excavator", resp.Machines[0].Title)
	catalogRepo.AssertExpectations(t)
}

func TestCreateMachineSetsOwnerAndStatus(t *testing.T) {
	catalogRepo := new(mocks.CatalogRepositoryMock)
	handler := NewCatalogHandler(catalogRepo)
	router := setupCatalogRouter(handler)

	catalogRepo.On("CreateMachine", mock.Anything, mock.MatchedBy(func(m models.Machine) bool {
		return m.UserID == 1 && m.Status == "active" && m.Title == "Crane"
	})).Return(models.Machine{ID: 9, UserID: 1, Title: "Crane", Status: "active"}, nil).Once()

	body := bytes.NewBufferString(`{"title":"Crane","type":"Lifting","brand":"Liebherr","status":"draft"}`)
	req := httptest.NewRequest(http.MethodPost, "/catalog/machines", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	catalogRepo.AssertExpectations(t)
}

func TestListJobsRepoError(t *testing.T) {
	catalogRepo := new(mocks.CatalogRepositoryMock)
	handler := NewCatalogHandler(catalogRepo)
	router := setupCatalogRouter(handler)

	catalogRepo.On("ListJobs", mock.Anything, "").Return(([]models.Job)(nil), assert.AnError).Once()

	req := httptest.NewRequest(http.MethodGet, "/catalog/jobs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	catalogRepo.AssertExpectations(t)
}
