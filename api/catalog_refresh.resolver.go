package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) catalogRefresh(c *gin.Context) {
	count, err := m.CatalogService.RefreshCatalog(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"count":   count,
	})
}
