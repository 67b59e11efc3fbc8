package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-educacao-relatorios/internal/ideb"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/models"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/qedu"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/relatorio"
)

// fonteVazia simula a API QEdu fora do ar; os relatórios degradam, mas o
// serviço responde.
type fonteVazia struct{}

func (fonteVazia) Censo(context.Context, string, int, []int) (*qedu.Censo, int) { return nil, 0 }
func (fonteVazia) Infra(context.Context, string, int, []int) ([]qedu.SecaoInfra, int) {
	return nil, 0
}
func (fonteVazia) Aprendizado(context.Context, string, int, string) [][]qedu.RegistroAprendizado {
	return nil
}
func (fonteVazia) Taxa(context.Context, string, string, int, []int) (*qedu.TaxaComparacao, int) {
	return nil, 0
}
func (fonteVazia) TaxaHistorico(context.Context, string, string, int, []int, int) map[int]*qedu.TaxaComparacao {
	return nil
}

func routerTeste(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := ideb.Load("testdata/ideb_municipios.csv", "testdata/ideb_estados.csv")
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC))
	gerador := relatorio.NewGerador(fonteVazia{}, store, clock, "")

	r := gin.New()
	relatorioHandler := NewRelatorioHandler(gerador)
	municipioHandler := NewMunicipioHandler(gerador)
	healthHandler := NewHealthHandler()

	r.GET("/health", healthHandler.Health)
	r.GET("/gerar", relatorioHandler.GerarQuery)
	r.GET("/gerar/:ibge", relatorioHandler.GerarPath)
	r.POST("/gerar/:ibge", relatorioHandler.GerarPath)
	r.GET("/relatorio", relatorioHandler.RelatorioIndividual)
	r.GET("/municipio", municipioHandler.PorQuery)
	r.GET("/municipio/:ibge", municipioHandler.PorPath)
	return r
}

func executar(r *gin.Engine, metodo, alvo string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(metodo, alvo, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := routerTeste(t)

	w := executar(r, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Len(t, resp.TiposDisponiveis, 5)
}

func TestGerarPorPath(t *testing.T) {
	r := routerTeste(t)

	w := executar(r, http.MethodGet, "/gerar/2304400")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.RelatorioResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Fortaleza", resp.Municipio)
	assert.Equal(t, "CE", resp.UF)
	assert.Equal(t, "municipio", resp.Tipo)
	assert.Equal(t, 5, resp.TotalRelatorios)
	assert.Len(t, resp.Arquivos, 5)
	assert.Len(t, resp.Relatorios, 5)
	for _, conteudo := range resp.Relatorios {
		assert.NotEmpty(t, conteudo)
	}
}

func TestGerarPorQuery(t *testing.T) {
	r := routerTeste(t)

	w := executar(r, http.MethodGet, "/gerar?ibge=2304400")
	assert.Equal(t, http.StatusOK, w.Code)

	w = executar(r, http.MethodGet, "/gerar")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGerarPost(t *testing.T) {
	r := routerTeste(t)

	w := executar(r, http.MethodPost, "/gerar/2304400")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGerarCodigoInvalido(t *testing.T) {
	r := routerTeste(t)

	for _, codigo := range []string{"abc", "123", "23044000", "23o4400"} {
		w := executar(r, http.MethodGet, "/gerar/"+codigo)
		assert.Equal(t, http.StatusBadRequest, w.Code, "código %q", codigo)
	}
}

func TestGerarCodigoDesconhecido(t *testing.T) {
	r := routerTeste(t)

	w := executar(r, http.MethodGet, "/gerar/9999999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErroResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "9999999", resp.IBGE)
}

func TestRelatorioIndividual(t *testing.T) {
	r := routerTeste(t)

	w := executar(r, http.MethodGet, "/relatorio?ibge=2304400&tipo=ideb")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "RELATÓRIO DE ANÁLISE IDEB")

	w = executar(r, http.MethodGet, "/relatorio?ibge=2304400&tipo=inexistente")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = executar(r, http.MethodGet, "/relatorio?tipo=ideb")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMunicipio(t *testing.T) {
	r := routerTeste(t)

	w := executar(r, http.MethodGet, "/municipio/2304400")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.MunicipioResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Fortaleza", resp.Municipio)
	assert.Equal(t, "CE", resp.UF)

	w = executar(r, http.MethodGet, "/municipio?ibge=23")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ceará", resp.Municipio)

	w = executar(r, http.MethodGet, "/municipio/9999999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = executar(r, http.MethodGet, "/municipio/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
