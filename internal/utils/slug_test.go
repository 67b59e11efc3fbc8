package utils

import (
	"testing"
)

func TestRemoverAcentos(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"São Gonçalo", "Sao Goncalo"},
		{"Brasília", "Brasilia"},
		{"Pará", "Para"},
		{"Fortaleza", "Fortaleza"},
		{"", ""},
	}

	for _, test := range tests {
		result := RemoverAcentos(test.input)
		if result != test.expected {
			t.Errorf("RemoverAcentos(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestSlugTerritorio(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Fortaleza", "Fortaleza"},
		{"São Paulo", "Sao_Paulo"},
		{"Santa Bárbara d'Oeste", "Santa_Barbara_dOeste"},
		{"Não-Me-Toque", "Nao-Me-Toque"},
		{"Mogi Guaçu", "Mogi_Guacu"},
	}

	for _, test := range tests {
		result := SlugTerritorio(test.input)
		if result != test.expected {
			t.Errorf("SlugTerritorio(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}
