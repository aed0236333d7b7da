package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

// paginationFromQuery reads ?page= and ?limit= with the standard defaults
func paginationFromQuery(c *gin.Context) utils.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.DefaultPageSize)))
	return utils.GetPaginationParams(page, limit)
}
