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

const tituloAprendizado = "RELATÓRIO COMPLETO DE APRENDIZADO - DADOS QEDU"

// classificarDesempenho classifica o percentual de aprendizado adequado
func classificarDesempenho(adequado *float64) (string, string) {
	if adequado == nil {
		return "Dados não disponíveis", "⚪"
	}
	p := escala100(*adequado)
	switch {
	case p >= 70:
		return "Bom desempenho", "✅"
	case p >= 50:
		return "Desempenho intermediário", "⚠️"
	default:
		return "Desempenho crítico - oportunidade de atuação", "🔴"
	}
}

// extrairTerritorios separa os registros da API de aprendizado entre o
// território consultado, os territórios de comparação (estado ou municípios
// semelhantes) e o Brasil.
func extrairTerritorios(grupos [][]qedu.RegistroAprendizado, ibge string) (mun, semelhantes, brasil []qedu.RegistroAprendizado) {
	for _, grupo := range grupos {
		for _, r := range grupo {
			if r.Territorio == nil {
				continue
			}
			switch {
			case r.Territorio.IbgeID.String() == ibge:
				mun = append(mun, r)
			case r.Territorio.Brasil():
				brasil = append(brasil, r)
			case r.Territorio.ParentID != nil && *r.Territorio.ParentID <= 27:
				semelhantes = append(semelhantes, r)
			}
		}
	}
	return mun, semelhantes, brasil
}

// somenteAnosImpares filtra os registros para anos ímpares (calendário SAEB)
func somenteAnosImpares(registros []qedu.RegistroAprendizado) []qedu.RegistroAprendizado {
	filtrados := registros[:0:0]
	for _, r := range registros {
		if r.Ano%2 == 1 {
			filtrados = append(filtrados, r)
		}
	}
	return filtrados
}

func ordenarPorAno(registros []qedu.RegistroAprendizado) {
	sort.Slice(registros, func(i, j int) bool { return registros[i].Ano < registros[j].Ano })
}

func ultimoRegistro(registros []qedu.RegistroAprendizado) *qedu.RegistroAprendizado {
	if len(registros) == 0 {
		return nil
	}
	ordenarPorAno(registros)
	return &registros[len(registros)-1]
}

func rotuloCiclo(ciclo constants.Ciclo) string {
	if ciclo.ID != "AI" && ciclo.ID != "AF" {
		return ciclo.Nome
	}
	i := strings.Index(ciclo.Nome, "(")
	if i < 0 {
		return ciclo.Nome
	}
	return strings.TrimSpace(ciclo.Nome[:i]) + " do Ensino Fundamental " + ciclo.Nome[i:]
}

// gerarAprendizado monta o relatório SAEB percorrendo os três ciclos.
// Ciclos sem dados para o território são omitidos; se nenhum ciclo tem
// dados, o relatório degrada para o aviso padrão.
func gerarAprendizado(ctx context.Context, fonte FonteQEdu, ibge, territorio string, geradoEm time.Time) string {
	var b strings.Builder

	for _, ciclo := range constants.Ciclos {
		grupos := fonte.Aprendizado(ctx, ibge, constants.DependenciaPublica, ciclo.ID)
		registrosMun, registrosSem, registrosBr := extrairTerritorios(grupos, ibge)
		registrosMun = somenteAnosImpares(registrosMun)
		if len(registrosMun) == 0 {
			continue
		}

		ordenarPorAno(registrosMun)
		anos := make([]int, len(registrosMun))
		for i, r := range registrosMun {
			anos[i] = r.Ano
		}

		b.WriteString(cabecalho(tituloAprendizado, territorio, geradoEm, opcoesCabecalho{
			Rede:  "Pública (todas as redes)",
			Ciclo: rotuloCiclo(ciclo),
		}))
		b.WriteString("\n")

		escreverEvolucaoTemporal(&b, registrosMun, anos)

		ultimoMun := &registrosMun[len(registrosMun)-1]
		ultimoBr := ultimoRegistro(registrosBr)
		ultimoSem := ultimoRegistro(registrosSem)
		escreverComparativoAprendizado(&b, ultimoMun, ultimoSem, ultimoBr)

		escreverAnaliseAprendizado(&b, territorio, rotuloCiclo(ciclo), registrosMun, anos, ultimoMun, ultimoSem, ultimoBr)

		b.WriteString(rodape("QEdu (qedu.org.br)"))
	}

	if b.Len() == 0 {
		return cabecalho(tituloAprendizado, territorio, geradoEm, opcoesCabecalho{}) +
			"\n  ⚠️ Sem dados de aprendizado disponíveis.\n" + rodape("QEdu (qedu.org.br)")
	}
	return b.String()
}

// PARTE 1: série temporal por disciplina e nível
func escreverEvolucaoTemporal(b *strings.Builder, registros []qedu.RegistroAprendizado, anos []int) {
	fmt.Fprintf(b, "\n%s\nPARTE 1: EVOLUÇÃO TEMPORAL DOS INDICADORES\n%s\n\n", asteriscos, asteriscos)

	var colAnos strings.Builder
	for _, a := range anos {
		fmt.Fprintf(&colAnos, "%7d", a)
	}
	fmt.Fprintf(b, "%18s %40s %s %10s\n", "Disciplina", "Nível", colAnos.String(), "Variação")

	for _, disc := range constants.Disciplinas {
		for _, nivel := range constants.Niveis {
			valores := make([]*float64, len(registros))
			for i := range registros {
				valores[i] = registros[i].Nivel(disc.ID, nivel.ID)
			}

			var linhaVals strings.Builder
			for _, v := range valores {
				p := 0.0
				if v != nil {
					p = escala100(*v)
				}
				fmt.Fprintf(&linhaVals, "%6.1f%%", p)
			}

			variacao := ""
			if len(valores) >= 2 && valores[0] != nil && valores[len(valores)-1] != nil {
				variacao = fmt.Sprintf("%+.2fpp", escala100(*valores[len(valores)-1])-escala100(*valores[0]))
			}
			fmt.Fprintf(b, "%18s %40s %s %10s\n", disc.Nome, nivel.Nome, linhaVals.String(), variacao)
		}
	}
}

// PARTE 2: comparativo com municípios semelhantes e Brasil
func escreverComparativoAprendizado(b *strings.Builder, mun, semelhantes, brasil *qedu.RegistroAprendizado) {
	fmt.Fprintf(b, "\n\n%s\nPARTE 2: COMPARATIVO COM MUNICÍPIOS SEMELHANTES E BRASIL\n%s\n", asteriscos, asteriscos)

	cabecalhoSem := "Estado"
	if semelhantes != nil {
		cabecalhoSem = "Municípios semelhantes"
	}

	fmt.Fprintf(b, "\nRESUMO - %% de Alunos com Aprendizado Adequado:\n\n")
	fmt.Fprintf(b, "%18s %10s %23s %7s %15s %10s\n",
		"Disciplina", "Município", cabecalhoSem, "Brasil", "vs Semelhantes", "vs Brasil")

	for _, disc := range constants.Disciplinas {
		vm := mun.Adequado(disc.ID)
		vs := semelhantes.Adequado(disc.ID)
		vb := brasil.Adequado(disc.ID)

		dSem, dBr := "", ""
		if d := diff(vm, vs); d != nil {
			dSem = fmt.Sprintf("%+.1fpp", escala100(*d))
		}
		if d := diff(vm, vb); d != nil {
			dBr = fmt.Sprintf("%+.1fpp", escala100(*d))
		}
		fmt.Fprintf(b, "%18s %10s %23s %7s %15s %10s\n",
			disc.Nome, pct(vm), pct(vs), pct(vb), dSem, dBr)
	}

	fmt.Fprintf(b, "\n\nDETALHAMENTO POR NÍVEL:\n\n")
	fmt.Fprintf(b, "%18s %40s %10s %23s %7s %15s %10s\n",
		"Disciplina", "Nível", "Município", cabecalhoSem, "Brasil", "vs Semelhantes", "vs Brasil")

	for _, disc := range constants.Disciplinas {
		for _, nivel := range constants.Niveis {
			vm := mun.Nivel(disc.ID, nivel.ID)
			vs := semelhantes.Nivel(disc.ID, nivel.ID)
			vb := brasil.Nivel(disc.ID, nivel.ID)

			dSem, dBr := "", ""
			if d := diff(vm, vs); d != nil {
				dSem = fmt.Sprintf("%+.1fpp", escala100(*d))
			}
			if d := diff(vm, vb); d != nil {
				dBr = fmt.Sprintf("%+.1fpp", escala100(*d))
			}
			fmt.Fprintf(b, "%18s %40s %10s %23s %7s %15s %10s\n",
				disc.Nome, nivel.Nome, pct(vm), pct(vs), pct(vb), dSem, dBr)
		}
	}
}

// PARTE 3: análise qualitativa, oportunidades e conclusão
func escreverAnaliseAprendizado(b *strings.Builder, territorio, ciclo string, registros []qedu.RegistroAprendizado, anos []int, ultimoMun, ultimoSem, ultimoBr *qedu.RegistroAprendizado) {
	fmt.Fprintf(b, "\n\n%s\nPARTE 3: ANÁLISE QUALITATIVA\n%s\n", asteriscos, asteriscos)
	fmt.Fprintf(b, "\n%s\nANÁLISE QUALITATIVA - EVOLUÇÃO DO APRENDIZADO\n%s\n", linha, linha)
	fmt.Fprintf(b, "\n📍 Território: %s\n🏫 Rede: Pública (todas as redes)\n", territorio)
	fmt.Fprintf(b, "📚 Ciclo: %s\n", ciclo)
	fmt.Fprintf(b, "📅 Período analisado: %d a %d\n", anos[0], anos[len(anos)-1])

	fmt.Fprintf(b, "\n%s\nDIAGNÓSTICO ATUAL POR DISCIPLINA\n%s\n", sublinha, sublinha)

	alertasCriticos := 0
	abaixoBrasil := 0
	type oportunidade struct {
		disciplina   string
		adequado     *float64
		insuficiente *float64
	}
	var oportunidades []oportunidade

	for _, disc := range constants.Disciplinas {
		adequado := ultimoMun.Adequado(disc.ID)
		classificacao, emoji := classificarDesempenho(adequado)

		proficiente := ultimoMun.Nivel(disc.ID, "proficiente")
		avancado := ultimoMun.Nivel(disc.ID, "avancado")
		basico := ultimoMun.Nivel(disc.ID, "basico")
		insuficiente := ultimoMun.Nivel(disc.ID, "insuficiente")
		inadequado := 0.0
		if basico != nil {
			inadequado += *basico
		}
		if insuficiente != nil {
			inadequado += *insuficiente
		}

		fmt.Fprintf(b, "\n📘 %s\n\n", strings.ToUpper(disc.Nome))
		fmt.Fprintf(b, "   %s Situação atual: %s\n", emoji, classificacao)
		fmt.Fprintf(b, "   • Alunos com aprendizado adequado: %s\n", pct(adequado))
		fmt.Fprintf(b, "      - Avançado: %s\n", pct(avancado))
		fmt.Fprintf(b, "      - Proficiente: %s\n", pct(proficiente))
		fmt.Fprintf(b, "   • Alunos com aprendizado inadequado: %s\n", pct(&inadequado))
		fmt.Fprintf(b, "      - Básico: %s\n", pct(basico))
		fmt.Fprintf(b, "      - Insuficiente: %s\n", pct(insuficiente))

		if primeiro := registros[0].Adequado(disc.ID); adequado != nil && primeiro != nil {
			variacao := escala100(*adequado) - escala100(*primeiro)
			evolucao := "➡️ Estável"
			if variacao > 0 {
				evolucao = "📈 Melhora"
			} else if variacao < 0 {
				evolucao = "📉 Piora"
			}
			fmt.Fprintf(b, "   • Evolução (%d-%d): %s (%+.1fpp)\n", anos[0], anos[len(anos)-1], evolucao, variacao)
		}

		if adequado != nil && escala100(*adequado) < 50 {
			alertasCriticos++
			oportunidades = append(oportunidades, oportunidade{disc.Nome, adequado, insuficiente})
		}
		if vb := ultimoBr.Adequado(disc.ID); adequado != nil && vb != nil && *adequado < *vb {
			abaixoBrasil++
		}
	}

	fmt.Fprintf(b, "\n%s\n🎯 OPORTUNIDADES IDENTIFICADAS\n%s\n", sublinha, sublinha)
	if len(oportunidades) == 0 {
		b.WriteString("\n   ✅ Sem oportunidades críticas identificadas.\n")
	}
	for _, op := range oportunidades {
		fmt.Fprintf(b, "\n   🔴 %s: Apenas %s com aprendizado adequado\n", op.disciplina, pct(op.adequado))
		fmt.Fprintf(b, "      → %s em nível insuficiente\n", pct(op.insuficiente))
		fmt.Fprintf(b, "      → Potencial para: reforço escolar, materiais de nivelamento\n")
	}

	escreverImpactoPandemia(b, registros)
	escreverComparativoQualitativo(b, territorio, ultimoMun, ultimoSem, ultimoBr, alertasCriticos, abaixoBrasil)
}

// escreverImpactoPandemia compara 2019/2021/2023 quando os três anos existem
func escreverImpactoPandemia(b *strings.Builder, registros []qedu.RegistroAprendizado) {
	porAno := map[int]*qedu.RegistroAprendizado{}
	for i := range registros {
		porAno[registros[i].Ano] = &registros[i]
	}
	r19, r21, r23 := porAno[2019], porAno[2021], porAno[2023]
	if r19 == nil || r21 == nil || r23 == nil {
		return
	}

	fmt.Fprintf(b, "\n%s\n📉 IMPACTO DA PANDEMIA E RECUPERAÇÃO\n%s\n", sublinha, sublinha)
	for _, disc := range constants.Disciplinas {
		a19, a21, a23 := r19.Adequado(disc.ID), r21.Adequado(disc.ID), r23.Adequado(disc.ID)
		if a19 == nil || a21 == nil || a23 == nil {
			continue
		}
		queda := escala100(*a21) - escala100(*a19)
		recuperacao := escala100(*a23) - escala100(*a21)
		saldo := escala100(*a23) - escala100(*a19)

		fmt.Fprintf(b, "\n   📘 %s:\n", disc.Nome)
		fmt.Fprintf(b, "      • 2019→2021 (pandemia): %+.1fpp\n", queda)
		fmt.Fprintf(b, "      • 2021→2023 (recuperação): %+.1fpp\n", recuperacao)
		fmt.Fprintf(b, "      • Saldo total (2019→2023): %+.1fpp\n", saldo)
		if *a23 >= *a19 {
			b.WriteString("      ✅ RECUPEROU o patamar pré-pandemia\n")
		} else {
			fmt.Fprintf(b, "      ⚠️ Ainda %.1fpp ABAIXO do nível pré-pandemia\n", -saldo)
		}
	}
}

func escreverComparativoQualitativo(b *strings.Builder, territorio string, ultimoMun, ultimoSem, ultimoBr *qedu.RegistroAprendizado, alertasCriticos, abaixoBrasil int) {
	fmt.Fprintf(b, "\n%s\nANÁLISE QUALITATIVA - COMPARATIVO COM SEMELHANTES E BRASIL\n%s\n", linha, linha)
	fmt.Fprintf(b, "\n📊 Comparação de %s com municípios semelhantes e média nacional\n", territorio)

	type item struct {
		disciplina string
		mun        *float64
		brasil     *float64
		semelhante *float64
	}
	var abaixoBr, abaixoSem, acima []item

	for _, disc := range constants.Disciplinas {
		vm := ultimoMun.Adequado(disc.ID)
		if vm == nil {
			continue
		}
		vb := ultimoBr.Adequado(disc.ID)
		vs := ultimoSem.Adequado(disc.ID)
		it := item{disc.Nome, vm, vb, vs}
		switch {
		case vb != nil && *vm < *vb:
			abaixoBr = append(abaixoBr, it)
		case vs != nil && *vm < *vs:
			abaixoSem = append(abaixoSem, it)
		default:
			acima = append(acima, it)
		}
	}

	fmt.Fprintf(b, "\n%s\n🔴 ABAIXO DA MÉDIA NACIONAL (BRASIL)\n%s\n", sublinha, sublinha)
	if len(abaixoBr) == 0 {
		b.WriteString("   ✅ Nenhum indicador abaixo da média nacional.\n")
	}
	for _, it := range abaixoBr {
		fmt.Fprintf(b, "\n   ❌ %s - Adequado\n", it.disciplina)
		fmt.Fprintf(b, "      Município: %s | Brasil: %s → %+.1fpp\n",
			pct(it.mun), pct(it.brasil), escala100(*it.mun)-escala100(*it.brasil))
	}

	fmt.Fprintf(b, "\n%s\n🟡 ABAIXO DE MUNICÍPIOS SEMELHANTES (mas acima do Brasil)\n%s\n", sublinha, sublinha)
	for _, it := range abaixoSem {
		fmt.Fprintf(b, "\n   ⚠️ %s - Adequado\n", it.disciplina)
		fmt.Fprintf(b, "      Município: %s | Semelhantes: %s → %+.1fpp\n",
			pct(it.mun), pct(it.semelhante), escala100(*it.mun)-escala100(*it.semelhante))
	}

	fmt.Fprintf(b, "\n%s\n🟢 ACIMA DAS MÉDIAS (Semelhantes e Brasil)\n%s\n", sublinha, sublinha)
	for _, it := range acima {
		fmt.Fprintf(b, "\n   ✅ %s - Adequado\n", it.disciplina)
		fmt.Fprintf(b, "      Município: %s | Semelhantes: %s | Brasil: %s\n",
			pct(it.mun), pct(it.semelhante), pct(it.brasil))
		dBr, dSem := 0.0, 0.0
		if it.brasil != nil {
			dBr = escala100(*it.mun) - escala100(*it.brasil)
		}
		if it.semelhante != nil {
			dSem = escala100(*it.mun) - escala100(*it.semelhante)
		}
		fmt.Fprintf(b, "      → %+.1fpp vs Brasil | %+.1fpp vs Semelhantes\n", dBr, dSem)
	}

	fmt.Fprintf(b, "\n%s\n📋 RESUMO COMPARATIVO\n%s\n\n", linha, linha)
	fmt.Fprintf(b, "   🔴 Abaixo do Brasil:          %d disciplina(s)\n", len(abaixoBr))
	fmt.Fprintf(b, "   🟡 Abaixo de Semelhantes:     %d disciplina(s)\n", len(abaixoSem))
	fmt.Fprintf(b, "   🟢 Acima de ambos:            %d disciplina(s)\n", len(acima))

	fmt.Fprintf(b, "\n%s\n💡 CONCLUSÃO E RECOMENDAÇÕES PARA ABORDAGEM COMERCIAL\n%s\n", linha, linha)
	fmt.Fprintf(b, "\n📍 %s\n", strings.ToUpper(territorio))
	switch {
	case alertasCriticos > 0 || abaixoBrasil > 0:
		b.WriteString("   🔴 SITUAÇÃO: CRÍTICA\n")
		b.WriteString("   POTENCIAL DE MERCADO: ALTO\n")
		b.WriteString("   → Recomendação: reforço escolar, recuperação, materiais de nivelamento\n")
	case len(abaixoSem) > 0:
		b.WriteString("   🟡 SITUAÇÃO: ATENÇÃO\n")
		b.WriteString("   POTENCIAL DE MERCADO: MÉDIO-ALTO\n")
		b.WriteString("   → Recomendação: soluções para alcançar patamar de municípios semelhantes\n")
	default:
		b.WriteString("   🟢 SITUAÇÃO: POSITIVA\n")
		b.WriteString("   POTENCIAL DE MERCADO: MÉDIO\n")
		b.WriteString("   → Recomendação: soluções de excelência e enriquecimento curricular\n")
	}
}
