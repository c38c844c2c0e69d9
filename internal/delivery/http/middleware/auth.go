package middleware

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/dto/response"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/gin-gonic/gin"
)

// UserIDHeader is set by the site's auth layer in front of the portal.
const UserIDHeader = "X-User-ID"

const userContextKey = "portal.user"

// Auth loads the authenticated user named by X-User-ID.
func Auth(users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error{Error: "Не авторизован"})
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error{Error: "Не авторизован"})
				return
			}
			slog.Error("failed to load user", "user_id", userID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error{Error: "Внутренняя ошибка сервера"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireStaff must run after Auth.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error{Error: "Не авторизован"})
			return
		}
		if !user.IsStaff() {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error{Error: "Нет доступа"})
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}

// CronAuth checks the bearer token of the scheduler. An empty secret rejects every call.
func CronAuth(secret string) gin.HandlerFunc {
	expected := []byte("Bearer " + secret)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader("Authorization"))
		if secret == "" || subtle.ConstantTimeCompare(got, expected) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error{Error: "Unauthorized"})
			return
		}
		c.Next()
	}
}
