package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deals-room-service/internal/models"
	"deals-room-service/internal/repositories"
)

// CatalogHandler serves the resource-catalog listings: announcements,
// products, tenders, land, machines, materials and jobs. Listings
// created through the API start in active status and are owned by the
// authenticated caller.
type CatalogHandler struct {
	catalogRepo repositories.CatalogRepository
}

// NewCatalogHandler builds a CatalogHandler.
func NewCatalogHandler(catalogRepo repositories.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalogRepo: catalogRepo}
}

func (h *CatalogHandler) ListAnnouncements(c *gin.Context) {
	items, err := h.catalogRepo.ListAnnouncements(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load announcements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": items})
}

func (h *CatalogHandler) CreateAnnouncement(c *gin.Context) {
	var item models.Announcement
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.SellerID = c.GetInt("userID")
	item.Status = "active"

	created, err := h.catalogRepo.CreateAnnouncement(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create announcement"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	items, err := h.catalogRepo.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": items})
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var item models.Product
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.SellerID = c.GetInt("userID")
	item.Status = "active"

	created, err := h.catalogRepo.CreateProduct(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListTenders(c *gin.Context) {
	items, err := h.catalogRepo.ListTenders(c.Request.Context(), c.Query("engineering_category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tenders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenders": items})
}

func (h *CatalogHandler) CreateTender(c *gin.Context) {
	var item models.Tender
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.UserID = c.GetInt("userID")
	item.Status = "active"

	created, err := h.catalogRepo.CreateTender(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tender"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListLandListings(c *gin.Context) {
	items, err := h.catalogRepo.ListLandListings(c.Request.Context(), c.Query("land_type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load land listings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"land_listings": items})
}

func (h *CatalogHandler) CreateLandListing(c *gin.Context) {
	var item models.LandListing
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.UserID = c.GetInt("userID")
	item.Status = "active"

	created, err := h.catalogRepo.CreateLandListing(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create land listing"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListMachines(c *gin.Context) {
	items, err := h.catalogRepo.ListMachines(c.Request.Context(), c.Query("brand"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load machines"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"machines": items})
}

func (h *CatalogHandler) CreateMachine(c *gin.Context) {
	var item models.Machine
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.UserID = c.GetInt("userID")
	item.Status = "active"

	created, err := h.catalogRepo.CreateMachine(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create machine"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	items, err := h.catalogRepo.ListMaterials(c.Request.Context(), c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load materials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"materials": items})
}

func (h *CatalogHandler) CreateMaterial(c *gin.Context) {
	var item models.Material
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.UserID = c.GetInt("userID")
	item.Status = "active"

	created, err := h.catalogRepo.CreateMaterial(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create material"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListJobs(c *gin.Context) {
	items, err := h.catalogRepo.ListJobs(c.Request.Context(), c.Query("job_type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load jobs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": items})
}

func (h *CatalogHandler) CreateJob(c *gin.Context) {
	var item models.Job
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.UserID = c.GetInt("userID")
	item.Status = "active"

	created, err := h.catalogRepo.CreateJob(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create job"})
		return
	}
	c.JSON(http.StatusCreated, created)
}
