package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	ActorHeader = "X-User-ID"
	ActorKey    = "actor_id"
)

// Identity lifts the authenticated actor id set by the upstream auth
// layer into the request context. The id is trusted verbatim; issuing and
// verifying it is somebody else's job.
func Identity() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		actorID := c.GetHeader(ActorHeader)
		if actorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing " + ActorHeader + " header"},
			)
			return
		}
		if _, err := uuid.Parse(actorID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid actor id"},
			)
			return
		}

		c.Set(ActorKey, actorID)
		c.Next()
	}
}
