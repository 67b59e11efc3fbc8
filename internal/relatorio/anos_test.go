package relatorio

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func relogioEm(ano int) clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(ano, time.June, 15, 12, 0, 0, 0, time.UTC))
}

func TestCandidatos(t *testing.T) {
	r := NewAnoResolver(relogioEm(2025))
	assert.Equal(t, []int{2025, 2024, 2023}, r.Candidatos())
}

func TestCandidatosAmplos(t *testing.T) {
	r := NewAnoResolver(relogioEm(2025))
	assert.Equal(t, []int{2025, 2024, 2023, 2022, 2021, 2020}, r.CandidatosAmplos(6))
}
