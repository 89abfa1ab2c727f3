package handlers

import (
	"net/http"

	referenceRepo "saarthi/database/repository/reference"
	"saarthi/models"
	"saarthi/services/legal"
	"saarthi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReferenceHandler serves the static and seeded legal reference endpoints.
type ReferenceHandler struct {
	Repo referenceRepo.ReferenceRepository
}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler(repo referenceRepo.ReferenceRepository) *ReferenceHandler {
	return &ReferenceHandler{Repo: repo}
}

// PoliceStationsHandler lists nearby police stations.
func (h *ReferenceHandler) PoliceStationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, legal.PoliceStations())
}

// IPCSectionsHandler lists the seeded IPC sections.
func (h *ReferenceHandler) IPCSectionsHandler(c *gin.Context) {
	sections, err := h.Repo.GetIPCSections()
	if err != nil {
		utils.GetLogger().Error("failed to load IPC sections", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed, please try again"})
		return
	}
	if sections == nil {
		sections = []models.IPCSection{}
	}
	c.JSON(http.StatusOK, sections)
}

// LegalRightsHandler lists the seeded legal rights.
func (h *ReferenceHandler) LegalRightsHandler(c *gin.Context) {
	rights, err := h.Repo.GetLegalRights()
	if err != nil {
		utils.GetLogger().Error("failed to load legal rights", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed, please try again"})
		return
	}
	if rights == nil {
		rights = []models.LegalRight{}
	}
	c.JSON(http.StatusOK, rights)
}
