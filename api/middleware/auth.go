package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogging-api/auth"
	"blogging-api/dto"
	"blogging-api/logger"
)

// CtxUserID is the gin context key carrying the authenticated principal id.
const CtxUserID = "user_id"

// RequireAuth verifies the bearer token on the request and stores the
// principal id in the context. Requests without a valid token never reach
// the handler.
func RequireAuth(jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Msg: "No token, authorization denied"})
			return
		}

		userID, err := jwt.Parse(token)
		if err != nil {
			logger.Log.Debugf("token parse error: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Msg: "Token is not valid"})
			return
		}

		c.Set(CtxUserID, userID)
		c.Next()
	}
}
