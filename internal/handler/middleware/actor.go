package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	// ActorKey is the context key carrying the identity recorded in the
	// history ledger.
	ActorKey = "actor"

	// ActorSystem is recorded for requests that carry no identity.
	ActorSystem = "system"
)

// ActorIdentity resolves the caller identity from the X-Actor header. The
// value is opaque here; it ends up as changed_by on ledger entries.
func ActorIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader("X-Actor")
		if actor == "" {
			actor = ActorSystem
		}
		c.Set(ActorKey, actor)
	}
}
