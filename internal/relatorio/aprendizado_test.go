package relatorio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-educacao-relatorios/internal/qedu"
)

func registroNoAno(ano int) qedu.RegistroAprendizado {
	return qedu.RegistroAprendizado{Ano: ano, Territorio: territorioMunicipio()}
}

func TestSelecaoAnoSAEB(t *testing.T) {
	registros := []qedu.RegistroAprendizado{
		registroNoAno(2021), registroNoAno(2022), registroNoAno(2023),
		registroNoAno(2024), registroNoAno(2025),
	}

	impares := somenteAnosImpares(registros)
	require.Len(t, impares, 3)

	ultimo := ultimoRegistro(impares)
	require.NotNil(t, ultimo)
	assert.Equal(t, 2025, ultimo.Ano)
}

func TestSelecaoAnoSAEBSemAnoImpar(t *testing.T) {
	registros := []qedu.RegistroAprendizado{registroNoAno(2020), registroNoAno(2022)}
	assert.Empty(t, somenteAnosImpares(registros))
	assert.Nil(t, ultimoRegistro(nil))
}
