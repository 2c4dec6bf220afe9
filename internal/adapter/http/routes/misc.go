package routes

import (
	"freight_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomFields = "/custom-fields"
	PathSearch       = "/search"
	PathPayments     = "/payments"
)

func addCustomFieldRoutes(rg *gin.RouterGroup, customFieldHandler *handlers.CustomFieldHandler) {
	fields := rg.Group(PathCustomFields)
	{
		fields.GET("/:entity_type/:entity_id", customFieldHandler.GetCustomFields)
		fields.PUT("/:entity_type/:entity_id", customFieldHandler.UpsertCustomFields)
		fields.PUT("/:entity_type/:entity_id/:key", customFieldHandler.UpsertCustomField)
	}
}

func addSearchRoutes(rg *gin.RouterGroup, searchHandler *handlers.SearchHandler) {
	search := rg.Group(PathSearch)
	{
		search.GET("", searchHandler.Search)
		search.GET("/live", searchHandler.Live)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.DealPaymentHandler) {
	rg.GET(PathPayments+"/:payment_id", paymentHandler.GetPayment)
}
