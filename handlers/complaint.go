package handlers

import (
	"net/http"

	"saarthi/middleware"
	"saarthi/services/complaint"
	"saarthi/services/legal"
	"saarthi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ComplaintHandler exposes the complaint lifecycle endpoints.
type ComplaintHandler struct {
	Service complaint.ComplaintService
}

// NewComplaintHandler creates a ComplaintHandler.
func NewComplaintHandler(svc complaint.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{Service: svc}
}

func complaintErrorStatus(err error) int {
	switch err.(type) {
	case complaint.ValidationError:
		return http.StatusBadRequest
	case complaint.ForbiddenError:
		return http.StatusForbidden
	case complaint.NotFoundError:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (h *ComplaintHandler) fail(c *gin.Context, err error) {
	status := complaintErrorStatus(err)
	if status == http.StatusInternalServerError {
		utils.GetLogger().Error("complaint request failed", zap.Error(err))
		c.JSON(status, gin.H{"error": "Request failed, please try again"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// CreateComplaintHandler files a new complaint.
func (h *ComplaintHandler) CreateComplaintHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req complaint.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), principal, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListComplaintsHandler lists complaints visible to the caller.
func (h *ComplaintHandler) ListComplaintsHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listing, err := h.Service.List(c.Request.Context(), principal)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listing.Payload())
}

// GetComplaintHandler fetches one complaint by id.
func (h *ComplaintHandler) GetComplaintHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	detail, err := h.Service.Get(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateComplaintHandler applies a partial update to a complaint.
func (h *ComplaintHandler) UpdateComplaintHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req complaint.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AnalyzeComplaintHandler runs the legal analysis over a complaint text.
func (h *ComplaintHandler) AnalyzeComplaintHandler(c *gin.Context) {
	var req struct {
		Text     string `json:"text"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Complaint text is required"})
		return
	}

	c.JSON(http.StatusOK, legal.AnalyzeComplaint(req.Text, req.Language))
}

// AddNoteHandler appends a case note to a complaint.
func (h *ComplaintHandler) AddNoteHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req complaint.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.Service.AddNote(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// ListNotesHandler lists notes on a complaint, filtered by role.
func (h *ComplaintHandler) ListNotesHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	notes, err := h.Service.ListNotes(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}
