package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Logger emits one structured line per request. Routed requests carry
// the agent that handled them and the result outcome, which the request
// handler records on the echo context.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid, _ := c.Get("request_id").(string)

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			evt = evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Int64("bytes_out", c.Response().Size).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP())

			if agentType, ok := c.Get("agent_type").(string); ok {
				evt = evt.Str("agent_type", agentType)
			}
			if outcome, ok := c.Get("outcome").(string); ok {
				evt = evt.Str("outcome", outcome)
			}

			evt.Msg("request")
			return err
		}
	}
}
