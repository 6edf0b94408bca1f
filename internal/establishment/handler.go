package establishment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	service *Service
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// --------------------------------------------------
// PATCH /admin/establishments/:id/boost
// --------------------------------------------------
func (h *AdminHandler) SetBoost(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid establishment id"})
		return
	}

	var req struct {
		BoostScore float64 `json:"boost_score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.service.SetBoost(c.Request.Context(), id, req.BoostScore)
	switch {
	case errors.Is(err, ErrInvalidBoost):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "establishment not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update boost score"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":          "boost score updated",
			"establishment_id": id,
			"boost_score":      req.BoostScore,
		})
	}
}
