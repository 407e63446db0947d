package middleware

import "github.com/gin-gonic/gin"

// ClientIDHeader lets a front end name itself for analytics. There are no user
// accounts, so this is the only distinct id available.
const ClientIDHeader = "X-Client-ID"

// anonymousClient is the distinct id used when no client id header is sent.
const anonymousClient = "anonymous"

const clientIDKey = contextKey("clientID")

// ClientIDMiddleware stores the caller's client id in the Gin context.
func ClientIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(ClientIDHeader)
		if id == "" {
			id = anonymousClient
		}
		c.Set(string(clientIDKey), id)
		c.Next()
	}
}

// GetClientIDFromContext retrieves the client id from the Gin context.
// It returns the id and a boolean indicating if it was found.
func GetClientIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(clientIDKey))
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	if !ok {
		return "", false
	}
	return id, true
}
