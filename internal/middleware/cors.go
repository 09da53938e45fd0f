package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which origins may call the API cross-origin.
type CORSConfig struct {
	// AllowedOrigins lists exact origins. Ignored when AllowAll is true.
	AllowedOrigins []string
	AllowAll       bool
	AllowedMethods string
	AllowedHeaders string
	MaxAge         string
}

// DefaultCORSConfig returns a CORS configuration for the given environment.
// Production allows only the configured origins; every other environment is
// permissive to keep local development friction-free.
func DefaultCORSConfig(environment string) CORSConfig {
	cfg := CORSConfig{
		AllowedMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowedHeaders: "Origin, Content-Type, Accept, Authorization, lang",
		MaxAge:         "86400",
	}

	if environment == "production" {
		cfg.AllowedOrigins = []string{}
		return cfg
	}

	cfg.AllowAll = true
	return cfg
}

// CORS returns a middleware that applies the given CORS configuration.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[strings.TrimRight(origin, "/")] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			_, ok := allowed[strings.TrimRight(origin, "/")]
			if cfg.AllowAll || ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Methods", cfg.AllowedMethods)
				c.Header("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				c.Header("Access-Control-Max-Age", cfg.MaxAge)
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
