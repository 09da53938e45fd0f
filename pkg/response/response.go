package response

import (
	"context"
	"fmt"
	"net/http"

	pkgErrors "percept-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// notifier is the subset of the Discord client used for error reporting.
// Nil is allowed and disables reporting.
type notifier interface {
	SendError(ctx context.Context, title, description string, err error) error
}

// OK writes a success envelope with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeSuccess,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// JSON writes data as-is without the envelope. Used by endpoints whose
// wire shape is an external contract.
func JSON(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error writes an error envelope. HTTPError values keep their status and
// message; anything else becomes a 500 and is reported to Discord.
func Error(c *gin.Context, err error, d notifier) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	if d != nil {
		_ = d.SendError(c.Request.Context(), "Unhandled error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}

// PanicError writes a 500 envelope for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, d notifier) {
	if d != nil {
		_ = d.SendError(c.Request.Context(), "Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}
