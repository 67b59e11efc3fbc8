package relatorio

import "github.com/jonboulle/clockwork"

// AnoResolver decide qual ano de referência usar em cada categoria de dados.
// O relógio é injetado para que as regras baseadas no ano corrente sejam
// testáveis.
//
// Regras por categoria:
//   - aprendizado (SAEB): a prova é bienal em anos ímpares; vale o maior ano
//     ímpar com dados.
//   - censo, infra e taxa de rendimento: tenta o ano corrente, depois o
//     anterior, depois dois anos atrás; o primeiro com dados vence.
//   - ideb: o maior ano presente no dataset carregado para o território.
type AnoResolver struct {
	clock clockwork.Clock
}

// NewAnoResolver cria o resolvedor com o relógio informado
func NewAnoResolver(clock clockwork.Clock) *AnoResolver {
	return &AnoResolver{clock: clock}
}

// AnoAtual retorna o ano corrente do calendário
func (r *AnoResolver) AnoAtual() int {
	return r.clock.Now().Year()
}

// Candidatos retorna os anos de fallback para censo/infra/taxa:
// [atual, atual-1, atual-2]
func (r *AnoResolver) Candidatos() []int {
	return r.CandidatosAmplos(3)
}

// CandidatosAmplos retorna [atual, atual-1, ..., atual-n+1]; usado no passe
// de evolução histórica de taxa, que varre uma janela maior.
func (r *AnoResolver) CandidatosAmplos(n int) []int {
	atual := r.AnoAtual()
	anos := make([]int, 0, n)
	for i := 0; i < n; i++ {
		anos = append(anos, atual-i)
	}
	return anos
}
