package routes

import (
	"freight_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrganizations = "/organizations"
	PathContacts      = "/contacts"
)

func addPartyRoutes(rg *gin.RouterGroup, partyHandler *handlers.PartyHandler) {
	organizations := rg.Group(PathOrganizations)
	{
		organizations.GET("", partyHandler.SearchOrganizations)
		organizations.POST("", partyHandler.CreateOrganization)
		organizations.GET("/:id", partyHandler.GetOrganization)
		organizations.PUT("/:id", partyHandler.UpdateOrganization)
	}

	contacts := rg.Group(PathContacts)
	{
		contacts.GET("", partyHandler.SearchContacts)
		contacts.POST("", partyHandler.CreateContact)
		contacts.GET("/:id", partyHandler.GetContact)
		contacts.PUT("/:id", partyHandler.UpdateContact)
	}
}
