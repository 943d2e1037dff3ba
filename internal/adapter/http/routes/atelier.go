package routes

import (
	"atelier-service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
	PathDesigns  = "/designs"
	PathBillings = "/billings"
	PathAddOns   = "/addons"
)

func addAtelierRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.RequestHandler,
	designHandler *handlers.DesignHandler,
	billingHandler *handlers.BillingHandler,
	addOnHandler *handlers.AddOnHandler,
) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.Submit)
		requests.GET("", requestHandler.List)
		requests.GET("/:id", requestHandler.GetByID)
		requests.PATCH("/:id/assign", requestHandler.Assign)
		requests.PATCH("/:id/decline", requestHandler.Decline)
		requests.PATCH("/:id/cancel", requestHandler.Cancel)
	}

	designs := rg.Group(PathDesigns)
	{
		designs.GET("", designHandler.List)
		designs.GET("/:id", designHandler.GetByID)
		designs.POST("/:id/previews", designHandler.PostPreview)
		designs.GET("/:id/previews", designHandler.ListPreviews)
		designs.POST("/:id/comments", designHandler.PostComment)
		designs.GET("/:id/comments", designHandler.ListComments)
		designs.PATCH("/:id/revision", designHandler.RequestRevision)
		designs.PATCH("/:id/resume", designHandler.ResumeProgress)
		designs.PATCH("/:id/approve", designHandler.Approve)
		designs.PATCH("/:id/production", designHandler.StartProduction)
		designs.PATCH("/:id/pickup", designHandler.MarkReadyForPickup)
		designs.PATCH("/:id/complete", designHandler.MarkCompleted)
	}

	billings := rg.Group(PathBillings)
	{
		billings.GET("/:design_id", billingHandler.GetByDesignID)
		billings.PATCH("/:design_id/negotiate", billingHandler.Negotiate)
		billings.PATCH("/:design_id/approve", billingHandler.Approve)
	}

	addons := rg.Group(PathAddOns)
	{
		addons.POST("", addOnHandler.Submit)
		addons.GET("", addOnHandler.ListByDesign)
		addons.GET("/:id", addOnHandler.GetByID)
		addons.PATCH("/:id/approve", addOnHandler.Approve)
		addons.PATCH("/:id/decline", addOnHandler.Decline)
		addons.PATCH("/:id/cancel", addOnHandler.Cancel)
	}
}
