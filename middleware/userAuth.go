package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"poojaghar/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// FirebaseAuthMiddleware verifies the Bearer ID token with the identity
// collaborator and sets "userID" on the context. Verified token hashes are
// cached in Redis so repeat requests skip the verification round trip; the
// raw token never enters the cache.
func FirebaseAuthMiddleware(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		// Retrieve token from header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + tokenHash

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := true
		if authCache == nil {
			// Treat an unavailable cache as a miss, not a failure.
			log.Printf("WARNING: Auth cache client not available. Falling back to token verification.")
			cacheEnabled = false
		}

		if cacheEnabled {
			cachedUID, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && cachedUID != "" {
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("userID", cachedUID)
				c.Next()
				return
			} else if err != nil && err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to token verification.", err)
			}
		}

		// Cache miss: verify with the identity collaborator.
		token, err := authClient.VerifyIDToken(ctx, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, token.UID, time.Hour).Err()
			setKey := utils.AuthUserTokensPrefix + token.UID
			_ = authCache.SAdd(ctx, setKey, tokenHash).Err()
			_ = authCache.Expire(ctx, setKey, 24*time.Hour).Err()
		}

		c.Set("userID", token.UID)
		c.Next()
	}
}
