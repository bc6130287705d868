package handlers

import (
	"net/http"

	"github.com/arjun-and-preetham/studio-backend/internal/models"
	"github.com/arjun-and-preetham/studio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Inquiry Handler
// ============================================

type InquiryHandler struct {
	inquiryService service.InquiryService
}

// Submit is the public contact form endpoint.
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req models.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inquiry, err := h.inquiryService.Submit(c.Request.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toInquiryResponse(inquiry))
}

func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.inquiryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]models.InquiryResponse, len(inquiries))
	for i, inq := range inquiries {
		response[i] = toInquiryResponse(inq)
	}
	c.JSON(http.StatusOK, response)
}

func (h *InquiryHandler) GetByID(c *gin.Context) {
	inquiry, err := h.inquiryService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInquiryResponse(inquiry))
}

// Respond stores the reply and emails it to the inquirer.
func (h *InquiryHandler) Respond(c *gin.Context) {
	var req models.RespondInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inquiry, err := h.inquiryService.MarkResponded(c.Request.Context(), c.Param("id"), req.Response)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInquiryResponse(inquiry))
}

// Reopen moves a responded inquiry back to pending.
func (h *InquiryHandler) Reopen(c *gin.Context) {
	inquiry, err := h.inquiryService.MarkPending(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInquiryResponse(inquiry))
}

func (h *InquiryHandler) Delete(c *gin.Context) {
	if err := h.inquiryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted"})
}
