package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/models"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/relatorio"
)

// MunicipioHandler resolve a identidade de um território sem gerar relatórios
type MunicipioHandler struct {
	gerador *relatorio.Gerador
}

// NewMunicipioHandler cria um novo handler de identificação de municípios
func NewMunicipioHandler(g *relatorio.Gerador) *MunicipioHandler {
	return &MunicipioHandler{gerador: g}
}

// PorPath godoc
// @Summary Identifica um território pelo código IBGE
// @Description Retorna nome e UF sem gerar relatórios
// @Tags municipios
// @Produce json
// @Param ibge path string true "Código IBGE"
// @Success 200 {object} models.MunicipioResponse
// @Failure 400 {object} models.ErroResponse
// @Failure 404 {object} models.ErroResponse
// @Router /municipio/{ibge} [get]
func (h *MunicipioHandler) PorPath(c *gin.Context) {
	h.identificar(c, c.Param("ibge"))
}

// PorQuery godoc
// @Summary Identifica um território (variante por query string)
// @Description Equivalente a /municipio/{ibge} com o código informado em ?ibge=
// @Tags municipios
// @Produce json
// @Param ibge query string true "Código IBGE"
// @Success 200 {object} models.MunicipioResponse
// @Failure 400 {object} models.ErroResponse
// @Failure 404 {object} models.ErroResponse
// @Router /municipio [get]
func (h *MunicipioHandler) PorQuery(c *gin.Context) {
	ibge := c.Query("ibge")
	if strings.TrimSpace(ibge) == "" {
		c.JSON(http.StatusBadRequest, models.ErroResponse{Erro: "Parâmetro 'ibge' obrigatório."})
		return
	}
	h.identificar(c, ibge)
}

func (h *MunicipioHandler) identificar(c *gin.Context, ibge string) {
	ibge, ok := validarIBGE(ibge)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErroResponse{
			Erro: "Código IBGE inválido. Use 7 dígitos (município) ou 2 dígitos (estado).",
		})
		return
	}

	municipio, ok := h.gerador.Municipio(ibge)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErroResponse{
			Erro: fmt.Sprintf("Código IBGE %s não encontrado", ibge),
			IBGE: ibge,
		})
		return
	}

	c.JSON(http.StatusOK, models.MunicipioResponse{
		Municipio: municipio.Nome,
		UF:        municipio.UF,
		IBGE:      municipio.IBGE,
	})
}
