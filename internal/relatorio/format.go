package relatorio

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// impressoraMilhar formata inteiros com separador de milhar, como nos
// relatórios originais (12,345)
var impressoraMilhar = message.NewPrinter(language.English)

// milhar formata um inteiro com separador de milhar
func milhar(n int) string {
	return impressoraMilhar.Sprintf("%d", n)
}

var (
	linha      = strings.Repeat("=", 80)
	sublinha   = strings.Repeat("-", 80)
	asteriscos = strings.Repeat("*", 80)
)

// escala100 normaliza um percentual para a escala 0-100. A API mistura as
// escalas 0-1 e 0-100 entre endpoints e safras.
func escala100(v float64) float64 {
	if math.Abs(v) <= 1.01 {
		return v * 100
	}
	return v
}

// pct formata um percentual: 0.655 -> "65.5%", 65.5 -> "65.5%"
func pct(v *float64) string {
	if v == nil {
		return "sem dados"
	}
	return fmt.Sprintf("%.1f%%", escala100(*v))
}

// pp formata uma diferença em pontos percentuais com sinal
func pp(v *float64, decimais int) string {
	if v == nil {
		return "sem dados"
	}
	return fmt.Sprintf("%+.*fpp", decimais, escala100(*v))
}

// diff retorna a diferença a-b quando ambos existem
func diff(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	d := *a - *b
	return &d
}

// valor formata um número com 2 casas ou "N/D"
func valor(v *float64) string {
	if v == nil {
		return "N/D"
	}
	return fmt.Sprintf("%.2f", *v)
}

type opcoesCabecalho struct {
	Rede    string
	Ciclo   string
	Ano     string
	Periodo string
}

// cabecalho monta o bloco de abertura comum aos relatórios
func cabecalho(titulo, territorio string, geradoEm time.Time, o opcoesCabecalho) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n%s\n\n", linha, titulo, linha)
	fmt.Fprintf(&b, "📍 Território: %s\n", territorio)
	if o.Rede != "" {
		fmt.Fprintf(&b, "🏫 Rede: %s\n", o.Rede)
	}
	if o.Ciclo != "" {
		fmt.Fprintf(&b, "📚 Ciclo: %s\n", o.Ciclo)
	}
	if o.Ano != "" {
		fmt.Fprintf(&b, "📅 Ano de referência: %s\n", o.Ano)
	}
	if o.Periodo != "" {
		fmt.Fprintf(&b, "📅 Período histórico: %s\n", o.Periodo)
	}
	fmt.Fprintf(&b, "📅 Gerado em: %s\n", geradoEm.Format("02/01/2006 15:04"))
	return b.String()
}

// rodape fecha o relatório com a fonte dos dados
func rodape(fonte string) string {
	return fmt.Sprintf("\n\n%s\nFonte: %s\n%s\n", linha, fonte, linha)
}
