package response

import (
	"github.com/gin-gonic/gin"

	"github.com/sudono1/gamesucks-api/internal/pkg/apperror"
)

// Envelope API mengikuti kontrak lama: {"message": string, ...payload}.
// Field tambahan ditaruh langsung di root, bukan dibungkus "data".

func JSON(c *gin.Context, status int, payload gin.H) {
	c.JSON(status, payload)
}

// Success untuk response tanpa payload tambahan
func Success(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Error memetakan error service ke status + {"message"} lewat apperror
func Error(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	c.JSON(httpErr.Status, gin.H{"message": httpErr.Message})
}

// AbortError dipakai middleware supaya handler berikutnya tidak jalan
func AbortError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	c.AbortWithStatusJSON(httpErr.Status, gin.H{"message": httpErr.Message})
}
