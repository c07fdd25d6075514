package agent

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agentcare/agentcare/internal/platform/telemetry"
)

type Handler struct {
	coordinator *Coordinator
	metrics     *telemetry.Metrics
}

func NewHandler(c *Coordinator, metrics *telemetry.Metrics) *Handler {
	return &Handler{coordinator: c, metrics: metrics}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/requests", h.ProcessRequest)
}

type processRequestBody struct {
	Request string                 `json:"request"`
	Context map[string]interface{} `json:"context"`
}

// ProcessRequest accepts free text plus optional context and returns
// the routed agent's result. Handler faults already arrive in the
// failure shape, so the HTTP status is 200 either way; only a bad body
// is a client error. Rejected bodies still count in the request census.
func (h *Handler) ProcessRequest(c echo.Context) error {
	var body processRequestBody
	if err := c.Bind(&body); err != nil {
		h.metrics.ObserveRequest("unclassified", "rejected")
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(body.Request) == "" {
		h.metrics.ObserveRequest("unclassified", "rejected")
		return echo.NewHTTPError(http.StatusBadRequest, "request text is required")
	}

	result := h.coordinator.ProcessRequest(c.Request().Context(), body.Request, body.Context)

	// annotate the request log with the routing outcome
	if agentType, ok := result["agent_type"].(string); ok {
		c.Set("agent_type", agentType)
	}
	if status, ok := result["status"].(string); ok {
		c.Set("outcome", status)
	}
	return c.JSON(http.StatusOK, result)
}
