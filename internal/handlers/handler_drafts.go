package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/SscSPs/exchange_desk/internal/core/forms"
	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
	"github.com/SscSPs/exchange_desk/internal/dto"
	"github.com/SscSPs/exchange_desk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// draftHandler serves the guest request wizard.
type draftHandler struct {
	draftService portssvc.DraftSvc
}

func newDraftHandler(ds portssvc.DraftSvc) *draftHandler {
	return &draftHandler{draftService: ds}
}

func registerDraftRoutes(rg *gin.RouterGroup, draftService portssvc.DraftSvc) {
	h := newDraftHandler(draftService)

	rg.POST("/providers/:providerID/drafts", h.createDraft)

	drafts := rg.Group("/drafts/:draftID")
	{
		drafts.GET("", h.getDraft)
		drafts.PATCH("/contact", h.updateContact)
		drafts.PATCH("/exchange", h.updateExchange)
		drafts.POST("/swap", h.swap)
		drafts.POST("/next", h.next)
		drafts.POST("/previous", h.previous)
		drafts.POST("/submit", h.submit)
	}
}

// createDraft godoc
// @Summary Start an exchange request
// @Description Creates a draft on the contact step, priced against the provider's current rates.
// @Tags drafts
// @Accept json
// @Produce json
// @Param providerID path string true "Provider ID"
// @Param draft body dto.CreateDraftRequest false "Initial exchange"
// @Success 201 {object} dto.DraftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /providers/{providerID}/drafts [post]
func (h *draftHandler) createDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDraftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, logger, err)
			return
		}
	}

	draft, err := h.draftService.CreateDraft(c.Request.Context(), c.Param("providerID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create draft")
		return
	}

	logger.Info("Draft created", slog.String("draft_id", draft.ID))
	c.JSON(http.StatusCreated, dto.ToDraftResponse(draft, nil))
}

// getDraft godoc
// @Summary Get a draft
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{draftID} [get]
func (h *draftHandler) getDraft(c *gin.Context) {
	h.respondDraft(c, "Failed to load draft", func() (*forms.Draft, error) {
		return h.draftService.GetDraft(c.Request.Context(), c.Param("draftID"))
	})
}

// updateContact godoc
// @Summary Edit contact fields
// @Description Stores the edited fields and returns per-field feedback. Invalid values are kept.
// @Tags drafts
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param contact body dto.UpdateContactRequest true "Edited fields"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{draftID}/contact [patch]
func (h *draftHandler) updateContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	draft, feedback, err := h.draftService.UpdateContact(c.Request.Context(), c.Param("draftID"), req.Fields)
	if err != nil {
		respondError(c, logger, err, "Failed to update contact details")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft, feedback))
}

// updateExchange godoc
// @Summary Edit the exchange
// @Description Changes the currencies or the amount and re-prices the pair.
// @Tags drafts
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param exchange body dto.UpdateExchangeRequest true "Exchange changes"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /drafts/{draftID}/exchange [patch]
func (h *draftHandler) updateExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	h.respondDraft(c, "Failed to update exchange", func() (*forms.Draft, error) {
		return h.draftService.UpdateExchange(c.Request.Context(), c.Param("draftID"), req)
	})
}

// swap godoc
// @Summary Swap the currencies
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{draftID}/swap [post]
func (h *draftHandler) swap(c *gin.Context) {
	h.respondDraft(c, "Failed to swap currencies", func() (*forms.Draft, error) {
		return h.draftService.Swap(c.Request.Context(), c.Param("draftID"))
	})
}

// next godoc
// @Summary Advance the wizard
// @Description Moves to the next step when the current step is valid.
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{draftID}/next [post]
func (h *draftHandler) next(c *gin.Context) {
	h.respondDraft(c, "Failed to advance draft", func() (*forms.Draft, error) {
		return h.draftService.Next(c.Request.Context(), c.Param("draftID"))
	})
}

// previous godoc
// @Summary Go back one step
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{draftID}/previous [post]
func (h *draftHandler) previous(c *gin.Context) {
	h.respondDraft(c, "Failed to move draft back", func() (*forms.Draft, error) {
		return h.draftService.Previous(c.Request.Context(), c.Param("draftID"))
	})
}

// submit godoc
// @Summary Submit the request
// @Description Validates every field and sends the request to the exchange service.
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 201 {object} dto.RequestView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /drafts/{draftID}/submit [post]
func (h *draftHandler) submit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	created, err := h.draftService.Submit(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		respondError(c, logger, err, "Failed to submit request")
		return
	}

	logger.Info("Exchange request submitted", slog.String("reference_number", created.ReferenceNumber))
	c.JSON(http.StatusCreated, dto.ToRequestView(*created, domain.DefaultLanguage))
}

// respondDraft runs a draft operation and renders the result.
func (h *draftHandler) respondDraft(c *gin.Context, failMsg string, op func() (*forms.Draft, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	draft, err := op()
	if err != nil {
		respondError(c, logger, err, failMsg)
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft, nil))
}
