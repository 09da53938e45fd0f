package http

import (
	"percept-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Aggregate - Scan every configured source for a product's reviews
// @Summary Aggregate product reviews
// @Description Fetch reviews from all configured platforms concurrently, score sentiment per source and combined
// @Tags Reviews
// @Accept json
// @Produce json
// @Param body body reviewsReq true "Scan request"
// @Success 200 {object} model.ProductReviewsResponse
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reviews [post]
func (h *handler) Aggregate(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processAggregateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "reviews.delivery.http.Aggregate: processAggregateRequest failed: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.Aggregate(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "reviews.delivery.http.Aggregate: usecase Aggregate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response. The scan result is a published contract, so
	// it goes out bare rather than wrapped in the service envelope.
	response.JSON(c, h.newAggregateResp(output))
}
