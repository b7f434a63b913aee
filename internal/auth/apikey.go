package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/event-planner/pkg/util/errorutil"
)

// APIKeyHeader carries the shared admin secret on mutating requests.
const APIKeyHeader = "X-API-KEY"

// RequireAPIKey gates mutating endpoints behind the shared admin secret.
// Every create/update/delete route goes through this middleware; there are
// no per-route exceptions. An unset server key is a misconfiguration, not
// an open door.
func RequireAPIKey(adminKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if adminKey == "" {
			return apperrors.NewServerMisconfigured("server misconfiguration: ADMIN_API_KEY not set")
		}
		supplied := c.Get(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(adminKey)) != 1 {
			return apperrors.NewUnauthorized("unauthorized")
		}
		return c.Next()
	}
}
