package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoverAcentos remove acentos e diacríticos de um texto
// Exemplo: "São Gonçalo" -> "Sao Goncalo"
func RemoverAcentos(texto string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalizado, _, _ := transform.String(t, texto)
	return normalizado
}

// SlugTerritorio converte o nome de um território para uso em nomes de arquivo.
// Mantém a caixa original: "São João del-Rei" -> "Sao_Joao_del-Rei".
func SlugTerritorio(nome string) string {
	slug := RemoverAcentos(nome)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "'", "")
	slug = strings.ReplaceAll(slug, "/", "_")
	return slug
}
