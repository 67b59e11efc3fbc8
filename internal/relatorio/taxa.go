package relatorio

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-educacao-relatorios/internal/constants"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/qedu"
)

const tituloTaxa = "RELATÓRIO DE TAXAS DE RENDIMENTO - DADOS QEDU"

// dadosEtapaTaxa reúne a comparação de um ciclo e o rendimento municipal mais
// recente dentro dela.
type dadosEtapaTaxa struct {
	comparacao *qedu.TaxaComparacao
	rendimento qedu.Rendimento
}

// ultimoRegistroTaxa retorna o registro de maior ano da série
func ultimoRegistroTaxa(regs []qedu.TaxaRegistro) *qedu.TaxaRegistro {
	var ultimo *qedu.TaxaRegistro
	for i := range regs {
		if ultimo == nil || regs[i].Ano > ultimo.Ano {
			ultimo = &regs[i]
		}
	}
	return ultimo
}

// classificarTaxa qualifica uma taxa segundo os cortes usados nos relatórios.
// O valor pode vir nas escalas 0-1 ou 0-100.
func classificarTaxa(valor *float64, tipo string) (string, string) {
	if valor == nil {
		return "Sem dados", "⚪"
	}
	v := escala100(*valor)
	switch tipo {
	case "aprovacao":
		switch {
		case v >= 98:
			return "Excelente", "✅"
		case v >= 95:
			return "Bom", "🟢"
		case v >= 90:
			return "Regular", "🟡"
		}
	case "reprovacao":
		switch {
		case v <= 1:
			return "Excelente", "✅"
		case v <= 3:
			return "Bom", "🟢"
		case v <= 5:
			return "Regular", "🟡"
		}
	default: // abandono
		switch {
		case v <= 0.5:
			return "Excelente", "✅"
		case v <= 1.5:
			return "Bom", "🟢"
		case v <= 3:
			return "Regular", "🟡"
		}
	}
	return "Crítico", "🔴"
}

// nomeEstado tenta extrair o nome do estado dos registros da comparação
func nomeEstado(comparacao *qedu.TaxaComparacao) string {
	for _, r := range comparacao.Estado {
		rend := r.Rend()
		if rend.Territorio != nil && rend.Territorio.Nome != "" {
			return rend.Territorio.Nome
		}
	}
	return "Estado"
}

// setaComparacao escolhe o emoji e o verbo da comparação: para aprovação,
// maior é melhor; para reprovação e abandono, menor é melhor.
func setaComparacao(dpp float64, indicador string) string {
	if indicador == "aprovados" {
		switch {
		case dpp > 0.005:
			return "✅ acima"
		case dpp < -0.005:
			return "🔴 abaixo"
		}
		return "➡️ igual"
	}
	switch {
	case dpp < -0.005:
		return "✅ melhor"
	case dpp > 0.005:
		return "🔴 pior"
	}
	return "➡️ igual"
}

func gerarTaxa(ctx context.Context, fonte FonteQEdu, anos *AnoResolver, ibge, territorio string, geradoEm time.Time) string {
	etapas := make(map[string]*dadosEtapaTaxa)
	anoRef := 0
	for _, ciclo := range constants.Ciclos {
		comparacao, ano := fonte.Taxa(ctx, ibge, ciclo.ID, constants.DependenciaTodas, anos.Candidatos())
		if comparacao == nil {
			continue
		}
		if ano > anoRef {
			anoRef = ano
		}
		ed := &dadosEtapaTaxa{comparacao: comparacao}
		if reg := ultimoRegistroTaxa(comparacao.Municipio); reg != nil {
			ed.rendimento = reg.Rend()
		}
		etapas[ciclo.ID] = ed
	}

	if anoRef == 0 {
		return cabecalho(tituloTaxa, territorio, geradoEm, opcoesCabecalho{}) +
			"\n  ⚠️ Sem dados.\n" + rodape("QEdu (qedu.org.br)")
	}

	// período histórico: anos distintos presentes nas séries municipais
	anosVistos := map[int]bool{}
	for _, ed := range etapas {
		for _, r := range ed.comparacao.Municipio {
			if r.Ano > 0 {
				anosVistos[r.Ano] = true
			}
		}
	}
	anosHist := make([]int, 0, len(anosVistos))
	for a := range anosVistos {
		anosHist = append(anosHist, a)
	}
	sort.Ints(anosHist)
	periodo := fmt.Sprint(anoRef)
	if len(anosHist) >= 2 {
		periodo = fmt.Sprintf("%d a %d", anosHist[0], anosHist[len(anosHist)-1])
	}

	var b strings.Builder
	b.WriteString(cabecalho(tituloTaxa, territorio, geradoEm, opcoesCabecalho{
		Ano:     fmt.Sprint(anoRef),
		Periodo: periodo,
	}))
	b.WriteString("\n")

	// PARTE 1: taxas por etapa
	fmt.Fprintf(&b, "\n%s\nPARTE 1: TAXAS DE RENDIMENTO POR ETAPA\n%s\n\n", asteriscos, asteriscos)
	fmt.Fprintf(&b, "%28s %10s %11s %9s\n", "Etapa", "Aprovação", "Reprovação", "Abandono")
	for _, ciclo := range constants.Ciclos {
		ed := etapas[ciclo.ID]
		if ed != nil && ed.rendimento.Aprovados != nil {
			fmt.Fprintf(&b, "%28s %10s %11s %9s\n", ciclo.Nome,
				pct(ed.rendimento.Aprovados), pct(ed.rendimento.Reprovados), pct(ed.rendimento.Abandonos))
		} else {
			fmt.Fprintf(&b, "%28s %10s %11s %9s\n", ciclo.Nome, "sem dados", "sem dados", "sem dados")
		}
	}

	// PARTE 2: comparativo do primeiro ciclo com dados
	fmt.Fprintf(&b, "\n\n%s\nPARTE 2: COMPARATIVO %d - MUNICÍPIO vs ESTADO vs BRASIL\n%s\n\n", asteriscos, anoRef, asteriscos)

	estado := "Estado"
	var cicloRef *dadosEtapaTaxa
	for _, ciclo := range constants.Ciclos {
		if ed := etapas[ciclo.ID]; ed != nil {
			cicloRef = ed
			break
		}
	}
	if cicloRef != nil {
		estado = nomeEstado(cicloRef.comparacao)
		rm := ultimoRegistroTaxa(cicloRef.comparacao.Municipio)
		re := ultimoRegistroTaxa(cicloRef.comparacao.Estado)
		rb := ultimoRegistroTaxa(cicloRef.comparacao.Brasil)
		if rm != nil {
			fmt.Fprintf(&b, "%10s %10s %7s %7s %10s %10s\n",
				"Indicador", "Município", "Estado", "Brasil", "vs Estado", "vs Brasil")
			rendM, rendE, rendB := rm.Rend(), re.Rend(), rb.Rend()
			for _, ind := range []struct {
				nome       string
				vm, ve, vb *float64
			}{
				{"Aprovação", rendM.Aprovados, rendE.Aprovados, rendB.Aprovados},
				{"Reprovação", rendM.Reprovados, rendE.Reprovados, rendB.Reprovados},
				{"Abandono", rendM.Abandonos, rendE.Abandonos, rendB.Abandonos},
			} {
				fmt.Fprintf(&b, "%10s %10s %7s %7s %10s %10s\n", ind.nome,
					pct(ind.vm), pct(ind.ve), pct(ind.vb),
					pp(diff(ind.vm, ind.ve), 2), pp(diff(ind.vm, ind.vb), 2))
			}
		}
	}

	// PARTE 3: evolução histórica do primeiro ciclo com série longa o bastante
	fmt.Fprintf(&b, "\n\n%s\nPARTE 3: EVOLUÇÃO HISTÓRICA (%s)\n%s\n\n", asteriscos, periodo, asteriscos)
	escreverEvolucaoTaxa(&b, ctx, fonte, anos, ibge, etapas, estado)

	// Análise qualitativa
	fmt.Fprintf(&b, "\n\n%s\nANÁLISE QUALITATIVA - TAXAS DE RENDIMENTO\n%s\n", linha, linha)

	var alertas, destaques []string
	fmt.Fprintf(&b, "\n%s\n📊 DIAGNÓSTICO POR ETAPA DE ENSINO\n%s\n", sublinha, sublinha)
	for _, ciclo := range constants.Ciclos {
		ed := etapas[ciclo.ID]
		if ed == nil || ed.rendimento.Aprovados == nil {
			fmt.Fprintf(&b, "\n   📌 %s: sem dados disponíveis\n", strings.ToUpper(ciclo.Nome))
			continue
		}
		fmt.Fprintf(&b, "\n   📌 %s\n\n", strings.ToUpper(ciclo.Nome))
		classeA, emojiA := classificarTaxa(ed.rendimento.Aprovados, "aprovacao")
		classeR, emojiR := classificarTaxa(ed.rendimento.Reprovados, "reprovacao")
		classeB, emojiB := classificarTaxa(ed.rendimento.Abandonos, "abandono")
		fmt.Fprintf(&b, "      %s Aprovação: %s - %s\n", emojiA, pct(ed.rendimento.Aprovados), classeA)
		fmt.Fprintf(&b, "      %s Reprovação: %s - %s\n", emojiR, pct(ed.rendimento.Reprovados), classeR)
		fmt.Fprintf(&b, "      %s Abandono: %s - %s\n", emojiB, pct(ed.rendimento.Abandonos), classeB)

		if v := ed.rendimento.Reprovados; v != nil && escala100(*v) > 5 {
			alertas = append(alertas, fmt.Sprintf("%s: Alta reprovação (%.1f%%)", ciclo.Nome, escala100(*v)))
		}
		if v := ed.rendimento.Abandonos; v != nil && escala100(*v) > 3 {
			alertas = append(alertas, fmt.Sprintf("%s: Alto abandono (%.1f%%)", ciclo.Nome, escala100(*v)))
		}
		if v := ed.rendimento.Aprovados; v != nil && escala100(*v) >= 98 {
			destaques = append(destaques, fmt.Sprintf("%s: Excelente aprovação (%.1f%%)", ciclo.Nome, escala100(*v)))
		}
	}

	// comparativo qualitativo do primeiro ciclo com dados
	fmt.Fprintf(&b, "\n%s\n📈 COMPARATIVO %d: %s vs %s vs BRASIL\n%s\n", sublinha,
		anoRef, strings.ToUpper(territorio), strings.ToUpper(estado), sublinha)
	if cicloRef != nil {
		rm := ultimoRegistroTaxa(cicloRef.comparacao.Municipio)
		re := ultimoRegistroTaxa(cicloRef.comparacao.Estado)
		rb := ultimoRegistroTaxa(cicloRef.comparacao.Brasil)
		if rm != nil {
			rendM, rendE, rendB := rm.Rend(), re.Rend(), rb.Rend()
			for _, ind := range []struct {
				nome, campo string
				vm, ve, vb  *float64
			}{
				{"Aprovação", "aprovados", rendM.Aprovados, rendE.Aprovados, rendB.Aprovados},
				{"Reprovação", "reprovados", rendM.Reprovados, rendE.Reprovados, rendB.Reprovados},
				{"Abandono", "abandonos", rendM.Abandonos, rendE.Abandonos, rendB.Abandonos},
			} {
				fmt.Fprintf(&b, "\n   %s:\n", ind.nome)
				fmt.Fprintf(&b, "      • %s: %s\n", territorio, pct(ind.vm))
				if ind.ve != nil {
					fmt.Fprintf(&b, "      • %s: %s\n", estado, pct(ind.ve))
				}
				if ind.vb != nil {
					fmt.Fprintf(&b, "      • Brasil: %s\n", pct(ind.vb))
				}
				if d := diff(ind.vm, ind.ve); d != nil {
					dpp := escala100(*d)
					fmt.Fprintf(&b, "      → %s do estado (%+.2fpp)\n", setaComparacao(dpp, ind.campo), dpp)
				}
				if d := diff(ind.vm, ind.vb); d != nil {
					dpp := escala100(*d)
					fmt.Fprintf(&b, "      → %s do Brasil (%+.2fpp)\n", setaComparacao(dpp, ind.campo), dpp)
				}
			}
		}
	}

	// evolução temporal qualitativa do primeiro ciclo com série >= 2 anos
	for _, ciclo := range constants.Ciclos {
		ed := etapas[ciclo.ID]
		if ed == nil || len(ed.comparacao.Municipio) < 2 {
			continue
		}
		regs := append([]qedu.TaxaRegistro(nil), ed.comparacao.Municipio...)
		sort.Slice(regs, func(i, j int) bool { return regs[i].Ano < regs[j].Ano })
		primeiro, ultimo := regs[0].Rend(), regs[len(regs)-1].Rend()

		fmt.Fprintf(&b, "\n%s\n📅 EVOLUÇÃO TEMPORAL (%s)\n%s\n", sublinha, periodo, sublinha)
		escreverVariacaoTemporal(&b, "Aprovação", primeiro.Aprovados, ultimo.Aprovados, true)
		escreverVariacaoTemporal(&b, "Reprovação", primeiro.Reprovados, ultimo.Reprovados, false)
		escreverVariacaoTemporal(&b, "Abandono", primeiro.Abandonos, ultimo.Abandonos, false)
		break
	}

	if len(alertas) > 0 {
		fmt.Fprintf(&b, "\n%s\n🚨 ALERTAS\n%s\n\n", sublinha, sublinha)
		for _, a := range alertas {
			fmt.Fprintf(&b, "   ⚠️ %s\n", a)
		}
	}
	if len(destaques) > 0 {
		fmt.Fprintf(&b, "\n%s\n🌟 DESTAQUES POSITIVOS\n%s\n\n", sublinha, sublinha)
		for _, d := range destaques {
			fmt.Fprintf(&b, "   ✅ %s\n", d)
		}
	}

	fmt.Fprintf(&b, "\n%s\n💡 CONCLUSÃO E RECOMENDAÇÕES\n%s\n\n", sublinha, sublinha)
	switch {
	case len(alertas) == 0:
		fmt.Fprintf(&b, "   ✅ %s apresenta EXCELENTES taxas de rendimento escolar.\n", territorio)
		b.WriteString("   O fluxo escolar está saudável, com baixa reprovação e abandono.\n\n")
		b.WriteString("   💼 Abordagem comercial: Focar em soluções de EXCELÊNCIA\n")
		b.WriteString("   e enriquecimento curricular para manter os bons indicadores.\n")
	case len(alertas) <= 2:
		fmt.Fprintf(&b, "   ⚠️ %s apresenta BOAS taxas, com pontos de atenção.\n\n", territorio)
		b.WriteString("   💼 Abordagem: soluções direcionadas para etapas problemáticas.\n")
	default:
		fmt.Fprintf(&b, "   🔴 %s apresenta DESAFIOS no fluxo escolar.\n\n", territorio)
		b.WriteString("   💼 Abordagem: RECUPERAÇÃO e reforço escolar. Grande potencial de mercado.\n")
	}

	b.WriteString(rodape("QEdu - Taxas de Rendimento / INEP (qedu.org.br)"))
	return b.String()
}

// escreverEvolucaoTaxa monta a tabela histórica do primeiro ciclo com série de
// pelo menos dois anos. Quando a comparação já traz a série completa ela é
// usada direto; senão a janela ampla de anos é varrida na API.
func escreverEvolucaoTaxa(b *strings.Builder, ctx context.Context, fonte FonteQEdu, anos *AnoResolver, ibge string, etapas map[string]*dadosEtapaTaxa, estado string) {
	for _, ciclo := range constants.Ciclos {
		ed := etapas[ciclo.ID]
		if ed == nil {
			continue
		}
		porAno := map[int]*qedu.TaxaComparacao{}
		for _, r := range ed.comparacao.Municipio {
			if r.Ano > 0 {
				porAno[r.Ano] = ed.comparacao
			}
		}
		if len(porAno) < 2 {
			historico := fonte.TaxaHistorico(ctx, ibge, ciclo.ID, constants.DependenciaTodas, anos.CandidatosAmplos(6), 3)
			for ano, comparacao := range historico {
				porAno[ano] = comparacao
			}
		}
		if len(porAno) < 2 {
			continue
		}

		anosSerie := make([]int, 0, len(porAno))
		for a := range porAno {
			anosSerie = append(anosSerie, a)
		}
		sort.Ints(anosSerie)
		if len(anosSerie) > 5 {
			anosSerie = anosSerie[len(anosSerie)-3:]
		}

		fmt.Fprintf(b, "%10s %10s", "Indicador", "Entidade")
		for _, a := range anosSerie {
			fmt.Fprintf(b, "%6d", a)
		}
		fmt.Fprintf(b, " %10s\n", "Variação")

		// valor de um indicador em um ano, para um escopo da comparação
		valorAno := func(comparacao *qedu.TaxaComparacao, escopo string, ano int, campo string) *float64 {
			var regs []qedu.TaxaRegistro
			switch escopo {
			case "municipio":
				regs = comparacao.Municipio
			case "estado":
				regs = comparacao.Estado
			default:
				regs = comparacao.Brasil
			}
			for i := range regs {
				if regs[i].Ano == ano {
					rend := regs[i].Rend()
					switch campo {
					case "aprovados":
						return rend.Aprovados
					case "reprovados":
						return rend.Reprovados
					}
					return rend.Abandonos
				}
			}
			return nil
		}

		for _, ind := range []struct{ nome, campo string }{
			{"Aprovação", "aprovados"}, {"Reprovação", "reprovados"}, {"Abandono", "abandonos"},
		} {
			for _, escopo := range []struct{ chave, nome string }{
				{"municipio", "Município"}, {"estado", estado}, {"brasil", "Brasil"},
			} {
				fmt.Fprintf(b, "%10s %10s", ind.nome, escopo.nome)
				var primeiro, ultimo *float64
				for _, a := range anosSerie {
					v := valorAno(porAno[a], escopo.chave, a, ind.campo)
					fmt.Fprintf(b, "%6s", pct(v))
					if v != nil {
						if primeiro == nil {
							primeiro = v
						}
						ultimo = v
					}
				}
				variacao := ""
				if primeiro != nil && ultimo != nil {
					variacao = pp(diff(ultimo, primeiro), 2)
				}
				fmt.Fprintf(b, " %10s\n", variacao)
			}
		}
		return
	}
}

// escreverVariacaoTemporal escreve uma linha "valor inicial → valor final" com
// o sentido da melhora por indicador.
func escreverVariacaoTemporal(b *strings.Builder, nome string, primeiro, ultimo *float64, maiorMelhor bool) {
	if primeiro == nil || ultimo == nil {
		return
	}
	dpp := escala100(*ultimo - *primeiro)
	melhora := dpp > 0.005
	piora := dpp < -0.005
	if !maiorMelhor {
		melhora, piora = piora, melhora
	}
	sentido := "➡️ Estável"
	if melhora {
		sentido = "📈 Melhora"
	} else if piora {
		sentido = "📉 Piora"
	}
	if nome == "Aprovação" {
		fmt.Fprintf(b, "\n")
	}
	fmt.Fprintf(b, "   %s: %s → %s (%+.2fpp) %s\n", nome, pct(primeiro), pct(ultimo), dpp, sentido)
}
