package response

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"engagement-srv/pkg/discord"
	pkgErrors "engagement-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code;
// anything else is a 500 and is reported to the alert channel when one is
// configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	notify(d, fmt.Sprintf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// PanicError writes a 500 response for a recovered panic.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	notify(d, fmt.Sprintf("Panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

func notify(d discord.IDiscord, message string) {
	if d == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = d.ReportBug(ctx, message)
	}()
}
