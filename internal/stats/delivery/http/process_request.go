package http

import "github.com/gin-gonic/gin"

func (h *handler) processTiersRequest(c *gin.Context) (tiersReq, error) {
	var req tiersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMalformedBody
	}
	return req, nil
}

func (h *handler) processSummaryRequest(c *gin.Context) (summaryReq, error) {
	var req summaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMalformedBody
	}
	return req, nil
}

func (h *handler) processTrendRequest(c *gin.Context) (trendReq, error) {
	var req trendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMalformedBody
	}
	return req, nil
}
