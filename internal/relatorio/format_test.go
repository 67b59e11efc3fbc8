package relatorio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flt(v float64) *float64 { return &v }

func TestEscala100(t *testing.T) {
	assert.InDelta(t, 65.5, escala100(0.655), 0.001)
	assert.InDelta(t, 65.5, escala100(65.5), 0.001)
	assert.InDelta(t, 100, escala100(1.0), 0.001)
	assert.InDelta(t, -42.0, escala100(-0.42), 0.001)
}

func TestPct(t *testing.T) {
	assert.Equal(t, "65.5%", pct(flt(0.655)))
	assert.Equal(t, "65.5%", pct(flt(65.5)))
	assert.Equal(t, "sem dados", pct(nil))
}

func TestPp(t *testing.T) {
	assert.Equal(t, "+5.00pp", pp(flt(0.05), 2))
	assert.Equal(t, "-3.2pp", pp(flt(-0.032), 1))
	assert.Equal(t, "sem dados", pp(nil, 2))
}

func TestDiff(t *testing.T) {
	d := diff(flt(0.6), flt(0.4))
	if assert.NotNil(t, d) {
		assert.InDelta(t, 0.2, *d, 0.0001)
	}
	assert.Nil(t, diff(nil, flt(0.4)))
	assert.Nil(t, diff(flt(0.6), nil))
}

func TestValor(t *testing.T) {
	assert.Equal(t, "5.60", valor(flt(5.6)))
	assert.Equal(t, "N/D", valor(nil))
}

func TestMilhar(t *testing.T) {
	assert.Equal(t, "12,345", milhar(12345))
	assert.Equal(t, "987", milhar(987))
}

func TestClassificarTaxa(t *testing.T) {
	classe, _ := classificarTaxa(flt(0.99), "aprovacao")
	assert.Equal(t, "Excelente", classe)

	classe, _ = classificarTaxa(flt(0.92), "aprovacao")
	assert.Equal(t, "Regular", classe)

	classe, _ = classificarTaxa(flt(0.06), "reprovacao")
	assert.Equal(t, "Crítico", classe)

	classe, _ = classificarTaxa(flt(0.004), "abandono")
	assert.Equal(t, "Excelente", classe)

	classe, _ = classificarTaxa(nil, "abandono")
	assert.Equal(t, "Sem dados", classe)
}

func TestTendenciaLinear(t *testing.T) {
	// série perfeitamente linear: +0.2 por ano
	slope := tendenciaLinear([]int{2019, 2021, 2023}, []float64{5.0, 5.4, 5.8})
	assert.InDelta(t, 0.2, slope, 0.0001)

	assert.Zero(t, tendenciaLinear([]int{2021}, []float64{5.0}))
}
