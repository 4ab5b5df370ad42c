// Package auth потребляет токены внешнего провайдера идентичности.
// Выпуск токенов здесь не выполняется: middleware только проверяет подпись
// и разрешает вызывающего пользователя по строке в базе.
package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jredd/mouse-tracks-backend/internal/model"
	"github.com/jredd/mouse-tracks-backend/internal/repository"
)

// callerKey - ключ, под которым пользователь сохраняется в контексте gin.
const callerKey = "auth.caller"

// Middleware проверяет bearer-токен запроса и кладет вызывающего пользователя
// в контекст. Запросы без корректного токена отклоняются с кодом 401.
func Middleware(secret string, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "требуется bearer-токен"})
			return
		}
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "недействительный токен"})
			return
		}
		sub, err := token.Claims.GetSubject()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "недействительный токен"})
			return
		}
		userID, err := uuid.Parse(sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "недействительный токен"})
			return
		}
		user, err := users.GetByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "пользователь не найден"})
			return
		}
		c.Set(callerKey, user)
		c.Next()
	}
}

// SetCaller кладет пользователя в контекст напрямую (для тестов обработчиков).
func SetCaller(c *gin.Context, user *model.User) {
	c.Set(callerKey, user)
}

// Caller возвращает вызывающего пользователя из контекста запроса.
func Caller(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}
