package utils

import "strings"

// NormalizarSegmento padroniza o nome de um segmento de ensino vindo dos CSVs
// de IDEB. As planilhas trazem variações de grafia e acentuação
// ("Anos Inicias", "Ensino Médio", "medio"); a saída canônica é
// "anos iniciais", "anos finais" ou "ensino medio".
func NormalizarSegmento(segmento string) string {
	s := strings.ToLower(strings.TrimSpace(RemoverAcentos(segmento)))

	if strings.Contains(s, "medio") && !strings.Contains(s, "ensino") {
		s = "ensino medio"
	}

	substituicoes := [][2]string{
		{"ano iniciais", "anos iniciais"},
		{"anos inicias", "anos iniciais"},
		{"ano finais", "anos finais"},
	}
	for _, par := range substituicoes {
		s = strings.ReplaceAll(s, par[0], par[1])
	}

	return strings.TrimSpace(s)
}
