package routes

import (
	"freight_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDeals  = "/deals"
	PathStages = "/stages"
)

func addStageRoutes(rg *gin.RouterGroup, dealHandler *handlers.DealHandler) {
	stages := rg.Group(PathStages)
	{
		stages.GET("", dealHandler.ListStages)
		stages.POST("", dealHandler.CreateStage)
	}
}

// addDealRoutes mounts the deal resource and everything scoped to one deal.
func addDealRoutes(rg *gin.RouterGroup, h Handlers) {
	deals := rg.Group(PathDeals)
	{
		deals.POST("", h.Deals.CreateDeal)
		deals.GET("", h.Deals.ListDeals)
		deals.GET("/:id", h.Deals.GetDeal)
		deals.PATCH("/:id", h.Deals.UpdateDeal)
		deals.PATCH("/:id/stage", h.Deals.MoveStage)
		deals.GET("/:id/modality", h.Deals.GetModality)

		deals.GET("/:id/cost-sheet", h.CostSheets.GetCostSheet)
		deals.PUT("/:id/cost-sheet", h.CostSheets.SaveCostSheet)
		deals.GET("/:id/profit", h.CostSheets.GetProfit)

		deals.GET("/:id/notes", h.Activity.ListNotes)
		deals.POST("/:id/notes", h.Activity.CreateNote)

		deals.GET("/:id/doors", h.Activity.ListDoors)
		deals.POST("/:id/doors", h.Activity.CreateDoor)
		deals.PUT("/:id/doors/:door_id", h.Activity.UpdateDoor)
		deals.DELETE("/:id/doors/:door_id", h.Activity.DeleteDoor)
		deals.POST("/:id/quote-email", h.Activity.QuoteEmail)

		deals.GET("/:id/files", h.Files.ListFiles)
		deals.POST("/:id/files", h.Files.UploadFile)
		deals.GET("/:id/files/pending", h.Files.PendingUploads)
		deals.GET("/:id/files/:file_id/content", h.Files.DownloadFile)
		deals.PUT("/:id/files/:file_id/label", h.Files.SetFileLabel)
		deals.DELETE("/:id/files/:file_id", h.Files.DeleteFile)

		deals.GET("/:id/report", h.Reports.GetReport)

		deals.GET("/:id/payments", h.Payments.ListPayments)
		deals.POST("/:id/payments", h.Payments.CollectPayment)
	}
}
