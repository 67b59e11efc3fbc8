package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/constants"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct{}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status           string   `json:"status"`
	Version          string   `json:"version"`
	Timestamp        string   `json:"timestamp"`
	TiposDisponiveis []string `json:"tipos_disponiveis"`
}

// Health godoc
// @Summary Health check endpoint
// @Description Confirma que a aplicação está viva e lista os tipos de relatório disponíveis
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:           "ok",
		Version:          "2.0.0",
		Timestamp:        time.Now().Format(time.RFC3339),
		TiposDisponiveis: constants.TiposRelatorio,
	})
}
