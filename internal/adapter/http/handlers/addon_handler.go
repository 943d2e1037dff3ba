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
	errInvalidAddOnPayload = pkg.NewDomainErrorSimple("INVALID_ADDON_INPUT", "Invalid add-on payload", http.StatusBadRequest)
)

// AddOnHandler handles HTTP requests for post-approval change requests.

type AddOnHandler struct {
	usecase usecase.IAddOnUseCase
}

func NewAddOnHandler(uc usecase.IAddOnUseCase) *AddOnHandler {
	return &AddOnHandler{usecase: uc}
}

func (h *AddOnHandler) Submit(c *gin.Context) {
	var payload request.SubmitAddOnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddOnPayload.HTTPStatus, errInvalidAddOnPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapAddOnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAddOn(created))
}

func (h *AddOnHandler) GetByID(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAddOnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAddOn(found))
}

func (h *AddOnHandler) ListByDesign(c *gin.Context) {
	designID := c.Query("design_id")
	if designID == "" {
		c.JSON(errInvalidAddOnPayload.HTTPStatus, errInvalidAddOnPayload.ToHTTPError())
		return
	}

	found, err := h.usecase.ListByDesign(c.Request.Context(), designID)
	if err != nil {
		appErr := mapAddOnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAddOns(found))
}

func (h *AddOnHandler) Approve(c *gin.Context) {
	var payload request.ApproveAddOnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddOnPayload.HTTPStatus, errInvalidAddOnPayload.ToHTTPError())
		return
	}

	approved, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), payload.AdminID, payload.Fee)
	if err != nil {
		appErr := mapAddOnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAddOn(approved))
}

func (h *AddOnHandler) Decline(c *gin.Context) {
	var payload request.DeclineAddOnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddOnPayload.HTTPStatus, errInvalidAddOnPayload.ToHTTPError())
		return
	}

	declined, err := h.usecase.Decline(c.Request.Context(), c.Param("id"), payload.AdminID, payload.Reason)
	if err != nil {
		appErr := mapAddOnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAddOn(declined))
}

func (h *AddOnHandler) Cancel(c *gin.Context) {
	var payload request.CancelAddOnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddOnPayload.HTTPStatus, errInvalidAddOnPayload.ToHTTPError())
		return
	}

	cancelled, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.RequesterID)
	if err != nil {
		appErr := mapAddOnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAddOn(cancelled))
}

func mapAddOnError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAddOnID),
		errors.Is(err, usecase.ErrInvalidAddOnType),
		errors.Is(err, usecase.ErrDeclineReasonRequired),
		errors.Is(err, usecase.ErrFeeRequired),
		errors.Is(err, usecase.ErrAddOnSizesRequired),
		errors.Is(err, usecase.ErrReasonRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAddOnNotFound):
		return pkg.NewDomainErrorSimple("ADDON_NOT_FOUND", "Add-on request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDesignNotFound):
		return pkg.NewDomainErrorSimple("DESIGN_NOT_FOUND", "Design not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillingNotFound):
		return pkg.NewDomainErrorSimple("BILLING_NOT_FOUND", "Billing not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAddOnNotPending):
		return pkg.NewDomainErrorSimple("ADDON_NOT_PENDING", "Add-on request is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidDesignState):
		return pkg.NewDomainErrorSimple("INVALID_DESIGN_STATE", "Design state does not permit this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Actor does not own this resource", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPrintPriceNotFound), errors.Is(err, usecase.ErrShirtTypeMismatch):
		return pkg.NewDomainErrorSimple("PRICING_UNAVAILABLE", "Pricing data missing for this order", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
