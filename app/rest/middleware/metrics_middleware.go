package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"blog-api/app/metrics"
)

// Metrics records request count and duration for every handled
// request. The route template (c.Path) is used as the path label so
// /authors/1 and /authors/2 share a series.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let Echo resolve the status before it is recorded
				c.Error(err)
			}

			metrics.RecordHTTPRequest(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(c.Response().Status),
				time.Since(start).Seconds(),
			)

			return err
		}
	}
}
