package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":       true,
	"/swagger/*any": true,
}

const posthogClientKey = contextKey("posthogClient")

// PosthogMiddleware creates a Gin middleware handler that tracks API events with PostHog.
// It also stores the client in the Gin context for PosthogEvent.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(posthogClientKey), posthogClient)

		// Skip if PostHog is not initialized or path is in skip list
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] || pathsToSkip[c.FullPath()] {
			c.Next()
			return
		}

		// Process request first
		c.Next()

		// Skip if there was an error processing the request
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		clientID, exists := GetClientIDFromContext(c)
		if !exists {
			clientID = anonymousClient
		}

		// Create event name from route path (e.g., "/api/v1/expenses/stats" -> "api_v1_expenses_stats")
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")

		// Skip if event name is empty (e.g., for 404s)
		if eventName == "" {
			return
		}

		// Prepare event properties
		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}

		if period := c.Query("period"); period != "" {
			props["period"] = period
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(clientID, eventName, props)
	}
}

// PosthogEvent sends a custom event through the client PosthogMiddleware stored.
// Without one it does nothing.
func PosthogEvent(c *gin.Context, eventName string, properties map[string]any) {
	val, _ := c.Get(string(posthogClientKey))
	posthogClient, _ := val.(*utils.PosthogClientWrapper)
	if !posthogClient.IsInitialized() {
		return
	}

	clientID, exists := GetClientIDFromContext(c)
	if !exists {
		clientID = anonymousClient
	}

	// Ensure properties is not nil
	if properties == nil {
		properties = make(map[string]any)
	}

	// Add request context
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path

	// Send custom event
	posthogClient.Enqueue(clientID, eventName, properties)
}
