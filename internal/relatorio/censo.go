package relatorio

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-educacao-relatorios/internal/constants"
)

const tituloCenso = "RELATÓRIO DO CENSO ESCOLAR - DADOS QEDU"

func gerarCenso(ctx context.Context, fonte FonteQEdu, anos *AnoResolver, ibge, territorio string, geradoEm time.Time) string {
	censo, ano := fonte.Censo(ctx, ibge, constants.DependenciaMunicipal, anos.Candidatos())
	if censo == nil {
		return cabecalho(tituloCenso, territorio, geradoEm, opcoesCabecalho{}) +
			"\n  ⚠️ Sem dados.\n" + rodape("QEdu (qedu.org.br)")
	}

	// matrículas por etapa, na ordem canônica
	type etapa struct {
		nome  string
		total int
	}
	var etapas []etapa
	totalMatriculas := 0
	for _, campo := range constants.CamposMatricula {
		if v, ok := censo.Matricula(campo.Campo); ok {
			etapas = append(etapas, etapa{campo.Nome, v})
			totalMatriculas += v
		}
	}

	mediaAlunos := 0.0
	if censo.QtdEscolas > 0 {
		mediaAlunos = float64(totalMatriculas) / float64(censo.QtdEscolas)
	}

	var b strings.Builder
	b.WriteString(cabecalho(tituloCenso, territorio, geradoEm, opcoesCabecalho{}))
	b.WriteString("\n")

	// PARTE 1: resumo geral
	fmt.Fprintf(&b, "\n%s\nPARTE 1: RESUMO GERAL\n%s\n\n", asteriscos, asteriscos)
	fmt.Fprintf(&b, "%25s %22s\n", "Indicador", "Valor")
	fmt.Fprintf(&b, "%25s %22s\n", "Número de Escolas", milhar(censo.QtdEscolas))
	fmt.Fprintf(&b, "%25s %22s\n", "Total de Matrículas", milhar(totalMatriculas))
	fmt.Fprintf(&b, "%25s %22.1f\n", "Média de Alunos por Escola", mediaAlunos)
	fmt.Fprintf(&b, "%25s %22s\n", "Rede", "Municipal")
	fmt.Fprintf(&b, "%25s %22s\n", "Localização", "Urbana e Rural (todas)")
	fmt.Fprintf(&b, "%25s %22d\n", "Ano de Referência", ano)

	// PARTE 2: matrículas por etapa
	fmt.Fprintf(&b, "\n\n%s\nPARTE 2: MATRÍCULAS POR ETAPA DE ENSINO\n%s\n\n", asteriscos, asteriscos)
	fmt.Fprintf(&b, "%25s %11s %11s %17s\n", "Etapa de Ensino", "Matrículas", "% do Total", "Média por Escola")
	for _, e := range etapas {
		percentual, mediaEscola := 0.0, 0.0
		if totalMatriculas > 0 {
			percentual = float64(e.total) / float64(totalMatriculas) * 100
		}
		if censo.QtdEscolas > 0 {
			mediaEscola = float64(e.total) / float64(censo.QtdEscolas)
		}
		fmt.Fprintf(&b, "%25s %11s %10.1f%% %17.1f\n", e.nome, milhar(e.total), percentual, mediaEscola)
	}
	fmt.Fprintf(&b, "%25s %11s %11s %17.1f\n", "TOTAL", milhar(totalMatriculas), "100%", mediaAlunos)

	// PARTE 3: matrículas por série
	fmt.Fprintf(&b, "\n\n%s\nPARTE 3: MATRÍCULAS POR SÉRIE/ANO\n%s\n\n", asteriscos, asteriscos)
	fmt.Fprintf(&b, "%15s %10s %11s\n", "Ciclo", "Série/Ano", "Matrículas")
	subtotais := map[string]int{}
	var ordemCiclos []string
	for _, serie := range constants.CamposSeries {
		v, ok := censo.Matricula(serie.Campo)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%15s %10s %11s\n", serie.Ciclo, serie.Serie, milhar(v))
		if _, visto := subtotais[serie.Ciclo]; !visto {
			ordemCiclos = append(ordemCiclos, serie.Ciclo)
		}
		subtotais[serie.Ciclo] += v
	}
	for _, ciclo := range ordemCiclos {
		fmt.Fprintf(&b, "%15s %10s %11s\n", ciclo, "Subtotal", milhar(subtotais[ciclo]))
	}

	// Análise qualitativa
	fmt.Fprintf(&b, "\n\n%s\nANÁLISE QUALITATIVA - CENSO ESCOLAR\n%s\n", linha, linha)
	fmt.Fprintf(&b, "\n📍 Território: %s\n🏫 Rede: Municipal\n", territorio)
	b.WriteString("📍 Localização: Urbana e Rural (todas)\n")
	fmt.Fprintf(&b, "📅 Ano de referência: %d\n", ano)

	fmt.Fprintf(&b, "\n%s\n📊 VISÃO GERAL\n%s\n\n", sublinha, sublinha)
	fmt.Fprintf(&b, "   • Total de Escolas: %s\n", milhar(censo.QtdEscolas))
	fmt.Fprintf(&b, "   • Total de Matrículas: %s\n", milhar(totalMatriculas))
	fmt.Fprintf(&b, "   • Média de alunos por escola: %.1f\n", mediaAlunos)

	fmt.Fprintf(&b, "\n%s\n📚 DISTRIBUIÇÃO POR ETAPA DE ENSINO\n%s\n\n", sublinha, sublinha)
	ordenadas := append([]etapa(nil), etapas...)
	sort.SliceStable(ordenadas, func(i, j int) bool { return ordenadas[i].total > ordenadas[j].total })
	for _, e := range ordenadas {
		percentual := 0.0
		if totalMatriculas > 0 {
			percentual = float64(e.total) / float64(totalMatriculas) * 100
		}
		fmt.Fprintf(&b, "   • %s: %s matrículas (%.1f%%)\n", e.nome, milhar(e.total), percentual)
	}
	if len(ordenadas) > 0 {
		fmt.Fprintf(&b, "\n   📌 Maior concentração: %s\n", ordenadas[0].nome)
		fmt.Fprintf(&b, "      com %s matrículas\n", milhar(ordenadas[0].total))
	}

	escreverInsightsCenso(&b, censo)

	b.WriteString(rodape("QEdu - Censo Escolar (qedu.org.br)"))
	return b.String()
}

func escreverInsightsCenso(b *strings.Builder, censo interface {
	Matricula(string) (int, bool)
}) {
	fmt.Fprintf(b, "\n%s\n💡 INSIGHTS PARA ABORDAGEM COMERCIAL\n%s\n\n", sublinha, sublinha)

	get := func(campo string) int {
		v, _ := censo.Matricula(campo)
		return v
	}

	infantil := get("matriculas_creche") + get("matriculas_pre_escolar")
	iniciais := get("matriculas_anos_iniciais")
	finais := get("matriculas_anos_finais")
	fundamental := iniciais + finais
	medio := get("matriculas_ensino_medio")
	eja := get("matriculas_eja")
	especial := get("matriculas_educacao_especial")

	if infantil > 0 {
		fmt.Fprintf(b, "   👶 EDUCAÇÃO INFANTIL: %s matrículas\n", milhar(infantil))
		b.WriteString("      → Potencial para: materiais lúdicos, livros infantis, brinquedos educativos\n\n")
	}
	if fundamental > 0 {
		fmt.Fprintf(b, "   📖 ENSINO FUNDAMENTAL: %s matrículas\n", milhar(fundamental))
		fmt.Fprintf(b, "      • Anos Iniciais: %s\n", milhar(iniciais))
		fmt.Fprintf(b, "      • Anos Finais: %s\n", milhar(finais))
		b.WriteString("      → Potencial para: livros didáticos, paradidáticos, materiais de alfabetização\n\n")
	}
	if medio > 0 {
		fmt.Fprintf(b, "   🎓 ENSINO MÉDIO: %s matrículas\n", milhar(medio))
		b.WriteString("      → Potencial para: materiais preparatórios ENEM/vestibular, livros técnicos\n\n")
	}
	if eja > 0 {
		fmt.Fprintf(b, "   📚 EJA: %s matrículas\n", milhar(eja))
		b.WriteString("      → Potencial para: materiais específicos para jovens e adultos\n\n")
	}
	if especial > 0 {
		fmt.Fprintf(b, "   ♿ EDUCAÇÃO ESPECIAL: %s matrículas\n", milhar(especial))
		b.WriteString("      → Potencial para: materiais adaptados, recursos de acessibilidade\n\n")
	}
}
