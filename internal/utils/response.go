package utils

import "github.com/gin-gonic/gin"

// Success writes the standard success envelope: {"message": ..., <key>: ...}.
// key names the resource being returned ("provinsi", "user", "request", ...).
func Success(c *gin.Context, code int, message, key string, data interface{}) {
	body := gin.H{"message": message}
	if key != "" {
		body[key] = data
	}
	c.JSON(code, body)
}

// SuccessFields writes a success envelope with multiple resource keys,
// e.g. login responses carrying both "token" and "user".
func SuccessFields(c *gin.Context, code int, message string, fields gin.H) {
	body := gin.H{"message": message}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(code, body)
}

// Error writes the standard error envelope: {"message": ...}.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// ErrorDetail writes an error envelope with a detail string, used for
// validation failures where the client benefits from the specifics.
func ErrorDetail(c *gin.Context, code int, message, detail string) {
	c.JSON(code, gin.H{"message": message, "error": detail})
}
