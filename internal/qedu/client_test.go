package qedu

import (
	"context"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURLTeste = "https://qedu.test/api/v1"

func novoClienteTeste(t *testing.T) *Client {
	t.Helper()
	c := NewClient(Options{
		BaseURL:         baseURLTeste,
		Timeout:         2 * time.Second,
		Tentativas:      1,
		CacheCapacidade: 64,
		CacheTTL:        time.Minute,
	})
	httpmock.ActivateNonDefault(c.http.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestCensoFallbackDeAnos(t *testing.T) {
	c := novoClienteTeste(t)

	// ano mais recente sem dados, anterior com censo preenchido
	httpmock.RegisterResponderWithQuery("GET", baseURLTeste+"/censo/territorios/matriculas",
		map[string]string{"ibge_id": "2304400", "ano": "2025", "dependencia_id": "3", "localizacao_id": "0", "oferta_id": "0"},
		httpmock.NewStringResponder(200, `{"censo": null}`))
	httpmock.RegisterResponderWithQuery("GET", baseURLTeste+"/censo/territorios/matriculas",
		map[string]string{"ibge_id": "2304400", "ano": "2024", "dependencia_id": "3", "localizacao_id": "0", "oferta_id": "0"},
		httpmock.NewStringResponder(200, `{"censo": {"qtd_escolas": 10, "matriculas_creche": 500, "matriculas_1ano": 120}}`))

	censo, ano := c.Censo(context.Background(), "2304400", 3, []int{2025, 2024, 2023})
	require.NotNil(t, censo)
	assert.Equal(t, 2024, ano)
	assert.Equal(t, 10, censo.QtdEscolas)

	v, ok := censo.Matricula("matriculas_creche")
	require.True(t, ok)
	assert.Equal(t, 500, v)
}

func TestCensoSemDadosEmNenhumAno(t *testing.T) {
	c := novoClienteTeste(t)
	httpmock.RegisterResponder("GET", baseURLTeste+"/censo/territorios/matriculas",
		httpmock.NewStringResponder(404, `{}`))

	censo, ano := c.Censo(context.Background(), "2304400", 3, []int{2025, 2024})
	assert.Nil(t, censo)
	assert.Zero(t, ano)
}

func TestCacheEvitaChamadaDuplicada(t *testing.T) {
	c := novoClienteTeste(t)
	httpmock.RegisterResponder("GET", baseURLTeste+"/aprendizado/2304400/ultimos-comparativo",
		httpmock.NewStringResponder(200, `[[{"ano": 2023, "territorio": {"ibge_id": 2304400}, "lp_proficiente": 0.4, "lp_avancado": 0.2}]]`))

	primeiro := c.Aprendizado(context.Background(), "2304400", 5, "AI")
	segundo := c.Aprendizado(context.Background(), "2304400", 5, "AI")
	require.Len(t, primeiro, 1)
	require.Len(t, segundo, 1)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestAprendizadoAdequadoDerivado(t *testing.T) {
	c := novoClienteTeste(t)
	httpmock.RegisterResponder("GET", baseURLTeste+"/aprendizado/2304400/ultimos-comparativo",
		httpmock.NewStringResponder(200, `[[{"ano": 2023, "territorio": {"ibge_id": 2304400}, "lp_proficiente": 0.4, "lp_avancado": 0.2, "mt_adequado": 0.55}]]`))

	grupos := c.Aprendizado(context.Background(), "2304400", 5, "AI")
	require.Len(t, grupos, 1)
	require.Len(t, grupos[0], 1)

	registro := grupos[0][0]
	lp := registro.Adequado("lp")
	require.NotNil(t, lp)
	assert.InDelta(t, 0.6, *lp, 0.0001)

	mt := registro.Adequado("mt")
	require.NotNil(t, mt)
	assert.InDelta(t, 0.55, *mt, 0.0001)
}

func TestTaxaNormalizaChavesEDetectaAno(t *testing.T) {
	c := novoClienteTeste(t)
	// convenção entidade/parent, ano real mais novo que o pedido
	httpmock.RegisterResponder("GET", baseURLTeste+"/taxa-rendimento/taxa-rendimento/2304400/comparacao",
		httpmock.NewStringResponder(200, `{
			"entidade": [{"ano": 2023, "rendimento": {"aprovados": 0.97, "reprovados": 0.02, "abandonos": 0.01, "territorio": {"nome": "Fortaleza"}}}],
			"parent": [{"ano": 2023, "rendimento": {"aprovados": 0.95, "territorio": {"nome": "Ceará", "sigla": "CE"}}}],
			"brasil": [{"ano": 2023, "rendimento": {"aprovados": 0.94}}]
		}`))

	taxa, ano := c.Taxa(context.Background(), "2304400", "AI", 0, []int{2025})
	require.NotNil(t, taxa)
	assert.Equal(t, 2023, ano)
	require.Len(t, taxa.Municipio, 1)
	require.Len(t, taxa.Estado, 1)

	rend := taxa.Municipio[0].Rend()
	require.NotNil(t, rend.Aprovados)
	assert.InDelta(t, 0.97, *rend.Aprovados, 0.0001)
}

func TestTaxaRegistroAchatado(t *testing.T) {
	registro := TaxaRegistro{Ano: 2022, Aprovados: ptr(0.9)}
	rend := registro.Rend()
	require.NotNil(t, rend.Aprovados)
	assert.InDelta(t, 0.9, *rend.Aprovados, 0.0001)
}

func TestInfraExigeValores(t *testing.T) {
	c := novoClienteTeste(t)
	httpmock.RegisterResponderWithQuery("GET", baseURLTeste+"/infra/2304400/comparativo",
		map[string]string{"dependencia_id": "3", "ano": "2025"},
		httpmock.NewStringResponder(200, `[{"items": [{"label": "Internet", "values": []}]}]`))
	httpmock.RegisterResponderWithQuery("GET", baseURLTeste+"/infra/2304400/comparativo",
		map[string]string{"dependencia_id": "3", "ano": "2024"},
		httpmock.NewStringResponder(200, `[{"items": [{"label": "Internet", "values": [{"entidade": "Municipio", "value": 0.8}]}]}]`))

	secoes, ano := c.Infra(context.Background(), "2304400", 3, []int{2025, 2024})
	require.NotNil(t, secoes)
	assert.Equal(t, 2024, ano)
}

func ptr(v float64) *float64 { return &v }
