package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every handler emits: a human-readable
// message, and for conflict and lifecycle rejections a machine-readable
// reason code plus the colliding interval.
type Response struct {
	Status   int    `json:"-"`
	Message  string `json:"error"`
	Kind     string `json:"kind,omitempty"`
	Conflict any    `json:"conflict,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, kind string) {
	AbortWith(c, err, Response{Status: status, Message: msg, Kind: kind})
}

// AbortWith is the payload-carrying variant, for envelopes that include the
// colliding interval.
func AbortWith(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("AbortWith: err cannot be nil")
	}

	_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta(resp)
	c.AbortWithStatusJSON(resp.Status, resp)
}
