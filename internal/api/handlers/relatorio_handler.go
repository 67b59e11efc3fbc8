package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/constants"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/models"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/relatorio"
)

// RelatorioHandler gerencia os endpoints de geração de relatórios
type RelatorioHandler struct {
	gerador *relatorio.Gerador
}

// NewRelatorioHandler cria um novo handler de relatórios
func NewRelatorioHandler(g *relatorio.Gerador) *RelatorioHandler {
	return &RelatorioHandler{gerador: g}
}

// GerarPath godoc
// @Summary Gera os cinco relatórios educacionais de um território
// @Description Gera os relatórios de aprendizado, infraestrutura, censo, IDEB e taxas de rendimento para um município (código de 7 dígitos) ou estado (2 dígitos)
// @Tags relatorios
// @Produce json
// @Param ibge path string true "Código IBGE (7 dígitos município, 2 dígitos estado)"
// @Success 200 {object} models.RelatorioResponse
// @Failure 400 {object} models.ErroResponse
// @Failure 404 {object} models.ErroResponse
// @Failure 500 {object} models.ErroResponse
// @Router /gerar/{ibge} [get]
func (h *RelatorioHandler) GerarPath(c *gin.Context) {
	h.gerar(c, c.Param("ibge"))
}

// GerarQuery godoc
// @Summary Gera os cinco relatórios educacionais (variante por query string)
// @Description Equivalente a /gerar/{ibge} com o código informado em ?ibge=
// @Tags relatorios
// @Produce json
// @Param ibge query string true "Código IBGE (7 dígitos município, 2 dígitos estado)"
// @Success 200 {object} models.RelatorioResponse
// @Failure 400 {object} models.ErroResponse
// @Failure 404 {object} models.ErroResponse
// @Failure 500 {object} models.ErroResponse
// @Router /gerar [get]
func (h *RelatorioHandler) GerarQuery(c *gin.Context) {
	ibge := c.Query("ibge")
	if strings.TrimSpace(ibge) == "" {
		c.JSON(http.StatusBadRequest, models.ErroResponse{
			Erro: "Parâmetro 'ibge' obrigatório. Ex: /gerar?ibge=2304400",
		})
		return
	}
	h.gerar(c, ibge)
}

func (h *RelatorioHandler) gerar(c *gin.Context, ibge string) {
	ibge, ok := validarIBGE(ibge)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErroResponse{
			Erro: "Código IBGE inválido. Use 7 dígitos (município) ou 2 dígitos (estado).",
		})
		return
	}

	log.Printf("Gerando relatórios para IBGE %s...", ibge)
	bundle, err := h.gerador.Gerar(c.Request.Context(), ibge)
	if err != nil {
		if errors.Is(err, relatorio.ErrMunicipioNaoEncontrado) {
			c.JSON(http.StatusNotFound, models.ErroResponse{
				Erro: fmt.Sprintf("Código IBGE %s não encontrado", ibge),
				IBGE: ibge,
			})
			return
		}
		log.Printf("Erro ao gerar IBGE %s: %v", ibge, err)
		c.JSON(http.StatusInternalServerError, models.ErroResponse{
			Erro: fmt.Sprintf("Erro ao gerar: %v", err),
			IBGE: ibge,
		})
		return
	}

	log.Printf("OK: %s (%s) - %d relatórios", bundle.Municipio.Nome, bundle.Municipio.UF, len(bundle.Relatorios))
	c.JSON(http.StatusOK, models.RelatorioResponse{
		Municipio:       bundle.Municipio.Nome,
		UF:              bundle.Municipio.UF,
		IBGE:            bundle.Municipio.IBGE,
		Tipo:            bundle.Tipo,
		GeradoEm:        bundle.GeradoEm.Format(time.RFC3339),
		TotalRelatorios: len(bundle.Relatorios),
		Arquivos:        bundle.Arquivos,
		Relatorios:      bundle.Relatorios,
		Dados:           bundle.Dados,
	})
}

// RelatorioIndividual godoc
// @Summary Retorna um único relatório em texto puro
// @Description Gera apenas o relatório do tipo pedido e devolve como text/plain
// @Tags relatorios
// @Produce plain
// @Param ibge query string true "Código IBGE"
// @Param tipo query string true "Tipo de relatório" Enums(aprendizado, infra, censo, ideb, taxa_rendimento)
// @Success 200 {string} string
// @Failure 400 {object} models.ErroResponse
// @Failure 404 {object} models.ErroResponse
// @Router /relatorio [get]
func (h *RelatorioHandler) RelatorioIndividual(c *gin.Context) {
	ibge := strings.TrimSpace(c.Query("ibge"))
	tipo := strings.ToLower(strings.TrimSpace(c.Query("tipo")))

	if ibge == "" {
		c.JSON(http.StatusBadRequest, models.ErroResponse{Erro: "Parâmetro 'ibge' obrigatório."})
		return
	}
	if !constants.TipoRelatorioValido(tipo) {
		c.JSON(http.StatusBadRequest, models.ErroResponse{
			Erro: fmt.Sprintf("Tipo inválido. Use: %s", strings.Join(constants.TiposRelatorio, ", ")),
		})
		return
	}

	ibge, ok := validarIBGE(ibge)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErroResponse{
			Erro: "Código IBGE inválido. Use 7 dígitos (município) ou 2 dígitos (estado).",
		})
		return
	}

	_, texto, err := h.gerador.GerarUm(c.Request.Context(), ibge, tipo)
	if err != nil {
		if errors.Is(err, relatorio.ErrMunicipioNaoEncontrado) {
			c.JSON(http.StatusNotFound, models.ErroResponse{
				Erro: fmt.Sprintf("Código IBGE %s não encontrado", ibge),
				IBGE: ibge,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErroResponse{
			Erro: fmt.Sprintf("Erro ao gerar: %v", err),
			IBGE: ibge,
		})
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(texto))
}
