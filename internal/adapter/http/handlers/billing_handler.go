package handlers

import (
	"errors"
	"net/http"

	request "atelier-service/internal/adapter/http/dto/request"
	response "atelier-service/internal/adapter/http/dto/response"
	"atelier-service/internal/usecase"
	"atelier-service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBillingPayload = pkg.NewDomainErrorSimple("INVALID_BILLING_INPUT", "Invalid billing payload", http.StatusBadRequest)
)

// BillingHandler handles HTTP requests for invoice reads, negotiation and
// approval. Billings are addressed by the design id they belong to.

type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

func (h *BillingHandler) GetByDesignID(c *gin.Context) {
	billing, err := h.usecase.GetByDesignID(c.Request.Context(), c.Param("design_id"))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBilling(billing))
}

func (h *BillingHandler) Negotiate(c *gin.Context) {
	var payload request.NegotiateBillingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	billing, err := h.usecase.Negotiate(c.Request.Context(), c.Param("design_id"), payload.ClientID, payload.Amount)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBilling(billing))
}

func (h *BillingHandler) Approve(c *gin.Context) {
	var payload request.ApproveBillingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	billing, err := h.usecase.Approve(c.Request.Context(), c.Param("design_id"), payload.ClientID)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBilling(billing))
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillingRef), errors.Is(err, usecase.ErrInvalidProposal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillingNotFound):
		return pkg.NewDomainErrorSimple("BILLING_NOT_FOUND", "Billing not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDesignNotFound):
		return pkg.NewDomainErrorSimple("DESIGN_NOT_FOUND", "Design not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillingApproved):
		return pkg.NewDomainErrorSimple("BILLING_ALREADY_APPROVED", "Billing is already approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNegotiationLimit):
		return pkg.NewDomainErrorSimple("NEGOTIATION_LIMIT_REACHED", "Negotiation round limit reached", http.StatusConflict)
	case errors.Is(err, usecase.ErrAmountBelowFloor):
		return pkg.NewDomainErrorSimple("AMOUNT_BELOW_FLOOR", "Proposed amount is below the negotiation floor", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Actor does not own this resource", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
