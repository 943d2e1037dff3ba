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
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid design request payload", http.StatusBadRequest)
)

// RequestHandler handles HTTP requests for the design request intake flow.

type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

func (h *RequestHandler) Submit(c *gin.Context) {
	var payload request.SubmitDesignRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), in)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDesignRequest(created))
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesignRequest(found))
}

func (h *RequestHandler) List(c *gin.Context) {
	if clientID := c.Query("client_id"); clientID != "" {
		found, err := h.usecase.ListByClient(c.Request.Context(), clientID)
		if err != nil {
			appErr := mapRequestError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromDesignRequests(found))
		return
	}

	found, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDesignRequests(found))
}

func (h *RequestHandler) Assign(c *gin.Context) {
	var payload request.AssignDesignerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	design, err := h.usecase.Assign(c.Request.Context(), c.Param("id"), payload.DesignerID, payload.AdminID)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDesign(design))
}

func (h *RequestHandler) Decline(c *gin.Context) {
	var payload request.DeclineRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	declined, err := h.usecase.Decline(c.Request.Context(), c.Param("id"), payload.AdminID, payload.Reason)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesignRequest(declined))
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	var payload request.CancelRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	cancelled, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.ClientID)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesignRequest(cancelled))
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrEmptySizes),
		errors.Is(err, usecase.ErrReasonRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Design request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTextileNotFound):
		return pkg.NewDomainErrorSimple("TEXTILE_NOT_FOUND", "Textile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotPending):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_PENDING", "Design request is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Actor does not own this resource", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
