package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deals-room-service/internal/conversations"
	"deals-room-service/internal/models"
	"deals-room-service/internal/observability"
	"deals-room-service/internal/repositories"
	"deals-room-service/internal/telemetry"
	"deals-room-service/internal/ws"
)

// DealHandler manages the public deals feed.
type DealHandler struct {
	dealRepo repositories.DealRepository
	userRepo repositories.UserRepository
	hub      *ws.Hub
	audit    *telemetry.AuditEmitter
}

// NewDealHandler builds a DealHandler.
func NewDealHandler(dealRepo repositories.DealRepository, userRepo repositories.UserRepository, hub *ws.Hub, audit *telemetry.AuditEmitter) *DealHandler {
	return &DealHandler{dealRepo: dealRepo, userRepo: userRepo, hub: hub, audit: audit}
}

// ListDeals returns the public feed newest first, enriched with sender
// display names. Unknown senders get a placeholder rather than an error.
func (h *DealHandler) ListDeals(c *gin.Context) {
	deals, err := h.dealRepo.ListDeals(c.Request.Context(), c.Query("category"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load deals"})
		return
	}

	names, err := userDirectory(c, h.userRepo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user info"})
		return
	}

	type dealResponse struct {
		models.Deal
		SenderName string `json:"sender_name"`
	}

	responses := make([]dealResponse, 0, len(deals))
	for _, deal := range deals {
		name, ok := names[deal.SenderID]
		if !ok {
			name = conversations.UnknownPartnerName
		}
		responses = append(responses, dealResponse{Deal: deal, SenderName: name})
	}

	c.JSON(http.StatusOK, gin.H{"deals": responses})
}

// PostDeal stores a public message and broadcasts it to the deals room.
func (h *DealHandler) PostDeal(c *gin.Context) {
	userID := c.GetInt("userID")

	var req struct {
		Description string `json:"description" binding:"required"`
		Category    string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title := c.GetString("userName") + ": " + truncate(req.Description, 50)
	deal, err := h.dealRepo.CreateDeal(c.Request.Context(), userID, title, req.Description, req.Category)
	if err != nil {
		h.emitAudit(c, "ERROR", "failed to store deal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	observability.IncMessageSent("deal")
	h.hub.BroadcastDeal(deal)
	h.emitAudit(c, "INFO", "deal posted")
	c.JSON(http.StatusCreated, deal)
}

func (h *DealHandler) emitAudit(c *gin.Context, level, text string) {
	if h.audit == nil {
		return
	}
	h.audit.Emit(c.Request.Context(), level, text, requestIDFromContext(c), userIDFromContext(c))
}

// userDirectory loads the id-to-name map used to label feed entries.
func userDirectory(c *gin.Context, userRepo repositories.UserRepository) (map[int]string, error) {
	users, err := userRepo.ListUsers(c.Request.Context())
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
