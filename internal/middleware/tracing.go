package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// RequestTiming abre um span OpenTelemetry por requisição HTTP, anotando
// rota, duração e status. O código IBGE consultado entra como atributo para
// permitir filtrar os traces de geração por território.
func RequestTiming() gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()

		ctx, span := otel.Tracer("http").Start(c.Request.Context(), "http.request")
		defer span.End()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.route", c.FullPath()),
			attribute.String("http.client_ip", c.ClientIP()),
		)
		if ibge := c.Param("ibge"); ibge != "" {
			span.SetAttributes(attribute.String("relatorio.ibge", ibge))
		} else if ibge := c.Query("ibge"); ibge != "" {
			span.SetAttributes(attribute.String("relatorio.ibge", ibge))
		}
		if id := c.GetString("request_id"); id != "" {
			span.SetAttributes(attribute.String("http.request_id", id))
		}

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		duracao := time.Since(inicio)
		status := c.Writer.Status()

		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int64("http.duration_ms", duracao.Milliseconds()),
			attribute.Int("http.response_size", c.Writer.Size()),
		)

		if status >= 400 {
			span.SetStatus(codes.Error, "requisição falhou")
			if len(c.Errors) > 0 {
				span.SetAttributes(attribute.String("http.error_message", c.Errors.String()))
			}
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}
}
