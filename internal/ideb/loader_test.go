package ideb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carregarStore(t *testing.T) *Store {
	t.Helper()
	store, err := Load(
		filepath.Join("testdata", "ideb_municipios.csv"),
		filepath.Join("testdata", "ideb_estados.csv"),
	)
	require.NoError(t, err)
	return store
}

func TestLoadArquivoInexistente(t *testing.T) {
	_, err := Load("testdata/nao_existe.csv", "testdata/ideb_estados.csv")
	require.Error(t, err)
}

func TestMunicipioReferencia(t *testing.T) {
	store := carregarStore(t)

	m, ok := store.Municipio("2304400")
	require.True(t, ok)
	assert.Equal(t, "Fortaleza", m.Nome)
	assert.Equal(t, "CE", m.UF)

	_, ok = store.Municipio("9999999")
	assert.False(t, ok)
}

func TestMunicipioEstado(t *testing.T) {
	store := carregarStore(t)

	m, ok := store.Municipio("23")
	require.True(t, ok)
	assert.Equal(t, "Ceará", m.Nome)
	assert.Equal(t, "CE", m.UF)
}

func TestLinhasMunicipioNormalizadas(t *testing.T) {
	store := carregarStore(t)

	linhas := store.LinhasMunicipio("2304400")
	require.Len(t, linhas, 7)

	segmentos := map[string]bool{}
	for _, l := range linhas {
		segmentos[l.Segmento] = true
	}
	// "Ensino Médio" do CSV vira o segmento canônico sem acento
	assert.True(t, segmentos["ensino medio"])
	assert.True(t, segmentos["anos iniciais"])
	assert.True(t, segmentos["anos finais"])
}

func TestValorVazioViraNil(t *testing.T) {
	store := carregarStore(t)

	var encontrou bool
	for _, l := range store.LinhasMunicipio("3550308") {
		if l.Segmento == "anos finais" {
			encontrou = true
			assert.Nil(t, l.Valor)
		}
	}
	require.True(t, encontrou)
}

func TestEstatisticaBrasil(t *testing.T) {
	store := carregarStore(t)

	// CE 5.6, SP 6.0, RJ 5.2 em 2023 / anos iniciais
	e, ok := store.EstatisticaBrasil("IDEB", 2023, "anos iniciais")
	require.True(t, ok)
	assert.InDelta(t, 5.6, e.Media, 0.0001)
	assert.InDelta(t, 5.6, e.Mediana, 0.0001)
	assert.InDelta(t, 5.2, e.Minimo, 0.0001)
	assert.InDelta(t, 6.0, e.Maximo, 0.0001)
	assert.Equal(t, 3, e.Quantidade)

	_, ok = store.EstatisticaBrasil("IDEB", 1999, "anos iniciais")
	assert.False(t, ok)
}

func TestLinhasEstado(t *testing.T) {
	store := carregarStore(t)

	linhas := store.LinhasEstado("CE")
	assert.Len(t, linhas, 7)
	assert.Empty(t, store.LinhasEstado("AC"))
}
