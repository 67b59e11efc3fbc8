package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cabecalhoRequestID = "X-Request-ID"

// RequestID garante que toda requisição carregue um identificador único,
// propagado na resposta e disponível no contexto para os logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cabecalhoRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(cabecalhoRequestID, id)
		c.Next()
	}
}
