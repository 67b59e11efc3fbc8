package relatorio

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-educacao-relatorios/internal/ideb"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/qedu"
)

// fonteFixa devolve sempre os mesmos dados, simulando a API QEdu
type fonteFixa struct {
	semDados bool
}

func territorioMunicipio() *qedu.Territorio {
	parent := 23
	return &qedu.Territorio{IbgeID: json.Number("2304400"), ParentID: &parent, Nome: "Fortaleza"}
}

func territorioEstado() *qedu.Territorio {
	parent := 1
	return &qedu.Territorio{IbgeID: json.Number("23"), ParentID: &parent, Nome: "Ceará"}
}

func territorioBrasil() *qedu.Territorio {
	return &qedu.Territorio{IbgeID: json.Number("7"), Nome: "Brasil"}
}

func (f *fonteFixa) Censo(ctx context.Context, ibge string, dependencia int, anos []int) (*qedu.Censo, int) {
	if f.semDados {
		return nil, 0
	}
	return &qedu.Censo{
		QtdEscolas: 200,
		Matriculas: map[string]int{
			"matriculas_creche":        5000,
			"matriculas_pre_escolar":   8000,
			"matriculas_anos_iniciais": 40000,
			"matriculas_anos_finais":   30000,
			"matriculas_1ano":          8000,
			"matriculas_2ano":          8000,
		},
	}, anos[1]
}

func (f *fonteFixa) Infra(ctx context.Context, ibge string, dependencia int, anos []int) ([]qedu.SecaoInfra, int) {
	if f.semDados {
		return nil, 0
	}
	return []qedu.SecaoInfra{{
		Items: []qedu.ItemInfra{{
			Label: "Internet",
			Values: []qedu.ValorInfra{
				{Entidade: "Municipio", Value: flt(0.95)},
				{Entidade: "Estado", Value: flt(0.90)},
				{Entidade: "Brasil", Value: flt(0.85)},
			},
		}},
	}}, anos[0]
}

func (f *fonteFixa) Aprendizado(ctx context.Context, ibge string, dependencia int, ciclo string) [][]qedu.RegistroAprendizado {
	if f.semDados {
		return nil
	}
	return [][]qedu.RegistroAprendizado{
		{
			{Ano: 2021, Territorio: territorioMunicipio(), LpProficiente: flt(0.35), LpAvancado: flt(0.15), MtProficiente: flt(0.30), MtAvancado: flt(0.10)},
			{Ano: 2023, Territorio: territorioMunicipio(), LpProficiente: flt(0.40), LpAvancado: flt(0.18), MtProficiente: flt(0.33), MtAvancado: flt(0.12)},
		},
		{
			{Ano: 2023, Territorio: territorioEstado(), LpProficiente: flt(0.38), LpAvancado: flt(0.14), MtProficiente: flt(0.31), MtAvancado: flt(0.10)},
			{Ano: 2023, Territorio: territorioBrasil(), LpProficiente: flt(0.36), LpAvancado: flt(0.12), MtProficiente: flt(0.28), MtAvancado: flt(0.09)},
		},
	}
}

func (f *fonteFixa) Taxa(ctx context.Context, ibge, ciclo string, dependencia int, anos []int) (*qedu.TaxaComparacao, int) {
	if f.semDados {
		return nil, 0
	}
	return &qedu.TaxaComparacao{
		Municipio: []qedu.TaxaRegistro{
			{Ano: 2022, Rendimento: &qedu.Rendimento{Aprovados: flt(0.96), Reprovados: flt(0.03), Abandonos: flt(0.01), Territorio: territorioMunicipio()}},
			{Ano: 2023, Rendimento: &qedu.Rendimento{Aprovados: flt(0.97), Reprovados: flt(0.02), Abandonos: flt(0.01), Territorio: territorioMunicipio()}},
		},
		Estado: []qedu.TaxaRegistro{
			{Ano: 2023, Rendimento: &qedu.Rendimento{Aprovados: flt(0.95), Reprovados: flt(0.03), Abandonos: flt(0.02), Territorio: territorioEstado()}},
		},
		Brasil: []qedu.TaxaRegistro{
			{Ano: 2023, Rendimento: &qedu.Rendimento{Aprovados: flt(0.94), Reprovados: flt(0.04), Abandonos: flt(0.02), Territorio: territorioBrasil()}},
		},
	}, 2023
}

func (f *fonteFixa) TaxaHistorico(ctx context.Context, ibge, ciclo string, dependencia int, anos []int, maxAnos int) map[int]*qedu.TaxaComparacao {
	if f.semDados {
		return nil
	}
	comparacao, ano := f.Taxa(ctx, ibge, ciclo, dependencia, anos)
	return map[int]*qedu.TaxaComparacao{ano: comparacao}
}

func novoGeradorTeste(t *testing.T, fonte FonteQEdu) *Gerador {
	t.Helper()
	store, err := ideb.Load("testdata/ideb_municipios.csv", "testdata/ideb_estados.csv")
	require.NoError(t, err)
	return NewGerador(fonte, store, relogioEm(2025), "")
}

func TestGerarTodosOsRelatorios(t *testing.T) {
	g := novoGeradorTeste(t, &fonteFixa{})

	bundle, err := g.Gerar(context.Background(), "2304400")
	require.NoError(t, err)

	assert.Equal(t, "Fortaleza", bundle.Municipio.Nome)
	assert.Equal(t, "CE", bundle.Municipio.UF)
	assert.Equal(t, "municipio", bundle.Tipo)

	assert.Len(t, bundle.Relatorios, 5)
	assert.Len(t, bundle.Arquivos, 5)
	for _, tipo := range []string{"aprendizado", "infra", "censo", "ideb", "taxa_rendimento"} {
		assert.Contains(t, bundle.Relatorios, tipo)
		assert.Contains(t, bundle.Arquivos, "Fortaleza_"+tipo+".txt")
		assert.NotEmpty(t, bundle.Relatorios[tipo])
	}

	assert.Contains(t, bundle.Relatorios["censo"], "PARTE 1: RESUMO GERAL")
	assert.Contains(t, bundle.Relatorios["ideb"], "HISTÓRICO IDEB POR SEGMENTO")
	assert.Contains(t, bundle.Relatorios["taxa_rendimento"], "TAXAS DE RENDIMENTO POR ETAPA")

	assert.Contains(t, bundle.Dados, "censo")
	assert.Contains(t, bundle.Dados, "taxa_rendimento")
}

func TestGerarIdempotenteComRelogioFixo(t *testing.T) {
	g := novoGeradorTeste(t, &fonteFixa{})

	primeiro, err := g.Gerar(context.Background(), "2304400")
	require.NoError(t, err)
	segundo, err := g.Gerar(context.Background(), "2304400")
	require.NoError(t, err)

	assert.Equal(t, primeiro.Relatorios, segundo.Relatorios)
	assert.Equal(t, primeiro.GeradoEm, segundo.GeradoEm)
}

func TestGerarMunicipioDesconhecido(t *testing.T) {
	g := novoGeradorTeste(t, &fonteFixa{})

	_, err := g.Gerar(context.Background(), "9999999")
	assert.ErrorIs(t, err, ErrMunicipioNaoEncontrado)
}

func TestGerarEstado(t *testing.T) {
	g := novoGeradorTeste(t, &fonteFixa{})

	bundle, err := g.Gerar(context.Background(), "23")
	require.NoError(t, err)
	assert.Equal(t, "estado", bundle.Tipo)
	assert.Equal(t, "Ceará", bundle.Municipio.Nome)
	assert.Contains(t, bundle.Arquivos, "Ceara_censo.txt")

	// o IDEB de um estado sai das linhas da própria UF
	idebTxt := bundle.Relatorios["ideb"]
	assert.NotContains(t, idebTxt, "Sem dados IDEB")
	assert.Contains(t, idebTxt, "Estado: Ceará (CE)")
	assert.Contains(t, idebTxt, "HISTÓRICO IDEB POR SEGMENTO")
	assert.Contains(t, idebTxt, "ANOS INICIAIS")
	assert.Contains(t, idebTxt, "ENSINO MEDIO")
}

func TestGerarSemDadosExternosDegrada(t *testing.T) {
	g := novoGeradorTeste(t, &fonteFixa{semDados: true})

	bundle, err := g.Gerar(context.Background(), "2304400")
	require.NoError(t, err)

	// todas as chaves presentes mesmo sem dados da API
	assert.Len(t, bundle.Relatorios, 5)
	assert.Contains(t, bundle.Relatorios["censo"], "Sem dados")
	assert.Contains(t, bundle.Relatorios["aprendizado"], "Sem dados")
	// IDEB vem do CSV local, segue completo
	assert.Contains(t, bundle.Relatorios["ideb"], "ANOS INICIAIS")
}

func TestGerarUm(t *testing.T) {
	g := novoGeradorTeste(t, &fonteFixa{})

	_, texto, err := g.GerarUm(context.Background(), "2304400", "censo")
	require.NoError(t, err)
	assert.Contains(t, texto, "RELATÓRIO DO CENSO ESCOLAR")

	_, _, err = g.GerarUm(context.Background(), "2304400", "inexistente")
	assert.Error(t, err)

	_, _, err = g.GerarUm(context.Background(), "9999999", "censo")
	assert.ErrorIs(t, err, ErrMunicipioNaoEncontrado)
}
