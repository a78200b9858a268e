package api

import (
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hooklinehq/hookline/pkg/plugin"
)

// maxWebhookBody bounds inbound webhook payloads.
const maxWebhookBody = 1 << 20 // 1 MiB

// webhookHandler handles POST /hooks/:pluginType/:pluginInstanceID.
func (s *Server) webhookHandler(c *echo.Context) error {
	pluginType := c.Param("pluginType")
	instanceID := c.Param("pluginInstanceID")
	if pluginType == "" || instanceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plugin type and instance id are required")
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}
	if len(body) > maxWebhookBody {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "webhook payload too large")
	}

	result := s.ingress.RouteWebhook(c.Request().Context(), pluginType, instanceID, &plugin.WebhookRequest{
		Method:  c.Request().Method,
		Headers: c.Request().Header,
		Query:   c.QueryParams(),
		Body:    body,
	})
	return c.JSON(result.Status, result.Body)
}
