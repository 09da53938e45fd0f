package http

import (
	"github.com/gin-gonic/gin"

	"percept-srv/pkg/paginator"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, error) {
	var req listReq

	if err := c.ShouldBindQuery(&req.PaginateQuery); err != nil {
		return req, err
	}
	req.ProductName = c.Param("product")
	return req, nil
}

type listReq struct {
	ProductName   string
	PaginateQuery paginator.PaginateQuery
}
