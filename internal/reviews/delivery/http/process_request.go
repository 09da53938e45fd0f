package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processAggregateRequest(c *gin.Context) (reviewsReq, error) {
	var req reviewsReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
