package utils

import (
	"testing"
)

func TestNormalizarSegmento(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Anos Iniciais", "anos iniciais"},
		{"anos inicias", "anos iniciais"},
		{"Ano Iniciais", "anos iniciais"},
		{"Anos Finais", "anos finais"},
		{"ano finais", "anos finais"},
		{"Ensino Médio", "ensino medio"},
		{"medio", "ensino medio"},
		{"  Ensino Medio  ", "ensino medio"},
	}

	for _, test := range tests {
		result := NormalizarSegmento(test.input)
		if result != test.expected {
			t.Errorf("NormalizarSegmento(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}
