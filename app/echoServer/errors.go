// app/echoServer/errors.go
package echoServer

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tajmin/level2-assingment3/util/apperr"
	"github.com/tajmin/level2-assingment3/util/httpx"
)

// ErrorHandler funnels every error into the JSON envelope. Nothing beyond
// the structured error field ever reaches the client.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if ae, ok := apperr.From(err); ok {
			_ = httpx.Fail(c, ae.Status, ae.Message, ae.Detail)
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			if he.Code == http.StatusNotFound {
				// unmatched route, not a missing resource
				msg = "Bad request: route Not found"
			}
			_ = httpx.Fail(c, he.Code, msg, nil)
			return
		}

		log.Error("unhandled error", "err", err, "path", c.Path())
		_ = httpx.Fail(c, http.StatusInternalServerError, "Something went wrong", nil)
	}
}
