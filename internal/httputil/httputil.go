package httputil

import "github.com/gin-gonic/gin"

// RespondError отправляет ошибку в едином формате {"error": ...} и прекращает
// обработку запроса, чтобы последующие обработчики не выполнялись.
func RespondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
