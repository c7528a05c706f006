package http

import (
	"engagement-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ActivityTiers - Classify roster members into activity tiers
// @Summary Classify participants into activity tiers
// @Description Merge the roster, likes and comments payloads and classify every roster member into one of four activity tiers by their metric-to-content ratio
// @Tags Reports
// @Accept json
// @Produce json
// @Param body body tiersReq true "Raw source payloads plus content denominators"
// @Success 200 {object} tiersResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/activity-tiers [post]
func (h *handler) ActivityTiers(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTiersRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "stats.delivery.http.ActivityTiers: processTiersRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.ActivityTiers(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "stats.delivery.http.ActivityTiers: usecase ActivityTiers failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTiersResp(output))
}

// Summary - Aggregate totals, client breakdown and ranking
// @Summary Aggregate engagement summary
// @Description Merge the raw payloads into canonical participants and return global totals, per-client compliance breakdown and the ranked participant list
// @Tags Reports
// @Accept json
// @Produce json
// @Param body body summaryReq true "Raw source payloads"
// @Success 200 {object} summaryResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/summary [post]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummaryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "stats.delivery.http.Summary: processSummaryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Summary(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "stats.delivery.http.Summary: usecase Summary failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Trend - Time-bucketed engagement trend
// @Summary Weekly or monthly engagement trend
// @Description Bucket the likes and comments payloads into calendar weeks (Monday-start, UTC) or months and return per-bucket metric sums with the period-over-period delta
// @Tags Reports
// @Accept json
// @Produce json
// @Param body body trendReq true "Raw source payloads plus period"
// @Success 200 {object} trendResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/trend [post]
func (h *handler) Trend(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTrendRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "stats.delivery.http.Trend: processTrendRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Trend(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "stats.delivery.http.Trend: usecase Trend failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTrendResp(output))
}
