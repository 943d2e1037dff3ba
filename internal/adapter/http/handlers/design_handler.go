package handlers

import (
	"context"
	"errors"
	"net/http"

	request "atelier-service/internal/adapter/http/dto/request"
	response "atelier-service/internal/adapter/http/dto/response"
	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase"
	"atelier-service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDesignPayload = pkg.NewDomainErrorSimple("INVALID_DESIGN_INPUT", "Invalid design payload", http.StatusBadRequest)
)

// DesignHandler handles HTTP requests for the design revision and
// production lifecycle.

type DesignHandler struct {
	usecase usecase.IDesignUseCase
}

func NewDesignHandler(uc usecase.IDesignUseCase) *DesignHandler {
	return &DesignHandler{usecase: uc}
}

func (h *DesignHandler) GetByID(c *gin.Context) {
	design, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDesignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesign(design))
}

func (h *DesignHandler) List(c *gin.Context) {
	if clientID := c.Query("client_id"); clientID != "" {
		designs, err := h.usecase.ListByClient(c.Request.Context(), clientID)
		if err != nil {
			appErr := mapDesignError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromDesigns(designs))
		return
	}

	designerID := c.Query("designer_id")
	if designerID == "" {
		c.JSON(errInvalidDesignPayload.HTTPStatus, errInvalidDesignPayload.ToHTTPError())
		return
	}

	designs, err := h.usecase.ListByDesigner(c.Request.Context(), designerID)
	if err != nil {
		appErr := mapDesignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDesigns(designs))
}

func (h *DesignHandler) PostPreview(c *gin.Context) {
	var payload request.PostPreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDesignPayload.HTTPStatus, errInvalidDesignPayload.ToHTTPError())
		return
	}

	preview, err := h.usecase.PostPreview(c.Request.Context(), c.Param("id"), payload.DesignerID, payload.ImageHandle, payload.Note)
	if err != nil {
		appErr := mapDesignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPreview(preview))
}

func (h *DesignHandler) ListPreviews(c *gin.Context) {
	previews, err := h.usecase.ListPreviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDesignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPreviews(previews))
}

func (h *DesignHandler) PostComment(c *gin.Context) {
	var payload request.PostCommentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDesignPayload.HTTPStatus, errInvalidDesignPayload.ToHTTPError())
		return
	}

	comment, err := h.usecase.PostComment(c.Request.Context(), c.Param("id"), payload.AuthorID, payload.ResolveRole(), payload.Body)
	if err != nil {
		appErr := mapDesignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDesignComment(comment))
}

func (h *DesignHandler) ListComments(c *gin.Context) {
	comments, err := h.usecase.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDesignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesignComments(comments))
}

func (h *DesignHandler) RequestRevision(c *gin.Context) {
	var payload request.RequestRevisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDesignPayload.HTTPStatus, errInvalidDesignPayload.ToHTTPError())
		return
	}

	design, err := h.usecase.RequestRevision(c.Request.Context(), c.Param("id"), payload.ClientID)
	if err != nil {
		appErr := mapDesignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesign(design))
}

// Approve closes the design work and returns the freshly created (or
// already existing) billing for the design.
func (h *DesignHandler) Approve(c *gin.Context) {
	var payload request.ApproveDesignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDesignPayload.HTTPStatus, errInvalidDesignPayload.ToHTTPError())
		return
	}

	billing, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), payload.ClientID)
	if err != nil {
		appErr := mapDesignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBilling(billing))
}

func (h *DesignHandler) ResumeProgress(c *gin.Context) {
	h.patchDesignStatusByRequest(c, h.usecase.ResumeProgress)
}

func (h *DesignHandler) StartProduction(c *gin.Context) {
	h.patchDesignStatusByRequest(c, h.usecase.StartProduction)
}

func (h *DesignHandler) MarkReadyForPickup(c *gin.Context) {
	h.patchDesignStatusByRequest(c, h.usecase.MarkReadyForPickup)
}

func (h *DesignHandler) MarkCompleted(c *gin.Context) {
	h.patchDesignStatusByRequest(c, h.usecase.MarkCompleted)
}

func (h *DesignHandler) patchDesignStatusByRequest(
	c *gin.Context,
	updater func(ctx context.Context, designID, adminID string) (entities.Design, error),
) {
	var payload request.AdminActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDesignPayload.HTTPStatus, errInvalidDesignPayload.ToHTTPError())
		return
	}

	design, err := updater(c.Request.Context(), c.Param("id"), payload.AdminID)
	if err != nil {
		appErr := mapDesignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesign(design))
}

func mapDesignError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDesignID), errors.Is(err, usecase.ErrEmptyComment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDesignNotFound):
		return pkg.NewDomainErrorSimple("DESIGN_NOT_FOUND", "Design not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Design request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRevisionInProgress):
		return pkg.NewDomainErrorSimple("REVISION_IN_PROGRESS", "A revision is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidDesignState):
		return pkg.NewDomainErrorSimple("INVALID_DESIGN_STATE", "Design state does not permit this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Actor does not own this resource", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotAssignee):
		return pkg.NewDomainErrorSimple("NOT_ASSIGNEE", "Actor is not the assigned designer", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPrintPriceNotFound), errors.Is(err, usecase.ErrShirtTypeMismatch), errors.Is(err, usecase.ErrDesignerPriceNotFound):
		return pkg.NewDomainErrorSimple("PRICING_UNAVAILABLE", "Pricing data missing for this order", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
