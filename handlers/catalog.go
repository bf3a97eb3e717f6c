package handlers

import (
	"net/http"

	"poojaghar/services/catalog"

	"github.com/gin-gonic/gin"
)

// ListMantrasHandler returns the devotional-audio collection.
func ListMantrasHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"mantras": svc.Mantras()})
	}
}

// ListServiceItemsHandler returns the marketplace items.
func ListServiceItemsHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": svc.ServiceItems()})
	}
}

// ListAstrologersHandler returns the consultation providers.
func ListAstrologersHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"astrologers": svc.Astrologers()})
	}
}

// SearchCatalogHandler runs the combined mantra/item search for ?q=.
func SearchCatalogHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		results := svc.Search(c.Query("q"))
		c.JSON(http.StatusOK, gin.H{"results": results})
	}
}
