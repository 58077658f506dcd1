package middleware

import (
	types "checkout-gateway/internal/common/type"

	"github.com/gin-gonic/gin"
)

// ResponseInit installs the "send" func handlers use to emit the standard
// response envelope. Errors are flattened to their message; internals never
// leak stack detail to the client.
func ResponseInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("send", func(r *types.Response) {
			api := types.ResponseAPI{
				Status:  r.Code,
				Message: r.Message,
				Data:    r.Data,
			}
			if r.Error != nil {
				api.Error = r.Error.Error()
			}

			c.JSON(r.Code, api)
			c.Abort()
		})
		c.Next()
	}
}
