package http

import (
	"percept-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListSnapshots - Paginated scan history for a product
// @Summary List sentiment snapshots
// @Description Return a product's recorded scans, newest first
// @Tags History
// @Produce json
// @Param product path string true "Product name"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/history/{product} [get]
func (h *handler) ListSnapshots(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "history.delivery.http.ListSnapshots: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.ListSnapshots(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "history.delivery.http.ListSnapshots: usecase ListSnapshots failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newListResp(output))
}

// LatestSnapshot - Most recent scan result for a product
// @Summary Latest sentiment snapshot
// @Description Return the most recent recorded scan for a product
// @Tags History
// @Produce json
// @Param product path string true "Product name"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/history/{product}/latest [get]
func (h *handler) LatestSnapshot(c *gin.Context) {
	ctx := c.Request.Context()

	productName := c.Param("product")

	snap, err := h.uc.LatestSnapshot(ctx, productName)
	if err != nil {
		h.l.Errorf(ctx, "history.delivery.http.LatestSnapshot: usecase LatestSnapshot failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSnapshotResp(snap))
}
