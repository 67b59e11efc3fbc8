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

const tituloInfra = "RELATÓRIO DE INFRAESTRUTURA ESCOLAR - DADOS QEDU"

type itemInfra struct {
	label     string
	municipio float64
	estado    *float64
	brasil    *float64
}

// extrairItensInfra achata as seções do comparativo em itens com os valores
// de município, estado e Brasil. Para estados a API não traz a entidade
// "Municipio"; nesse caso o valor estadual vira o principal.
func extrairItensInfra(secoes []qedu.SecaoInfra) []itemInfra {
	extrair := func(entidadePrincipal string) []itemInfra {
		var itens []itemInfra
		for _, secao := range secoes {
			for _, item := range secao.Items {
				if len(item.Values) == 0 {
					continue
				}
				var principal, estado, brasil *float64
				for _, v := range item.Values {
					switch v.Entidade {
					case entidadePrincipal:
						principal = v.Value
					case "Estado":
						if entidadePrincipal != "Estado" {
							estado = v.Value
						}
					case "Brasil":
						brasil = v.Value
					}
				}
				if principal != nil {
					itens = append(itens, itemInfra{item.Label, *principal, estado, brasil})
				}
			}
		}
		return itens
	}

	itens := extrair("Municipio")
	if len(itens) == 0 {
		itens = extrair("Estado")
	}
	return itens
}

// filtrarItensRelevantes mantém os indicadores destacados; sem nenhum deles,
// usa os dez primeiros disponíveis.
func filtrarItensRelevantes(itens []itemInfra) []itemInfra {
	var relevantes []itemInfra
	for _, it := range itens {
		for _, label := range constants.ItensInfraRelevantes {
			if it.label == label {
				relevantes = append(relevantes, it)
				break
			}
		}
	}
	if len(relevantes) == 0 {
		if len(itens) > 10 {
			return itens[:10]
		}
		return itens
	}
	return relevantes
}

func gerarInfra(ctx context.Context, fonte FonteQEdu, anos *AnoResolver, ibge, territorio string, geradoEm time.Time) string {
	secoes, ano := fonte.Infra(ctx, ibge, constants.DependenciaMunicipal, anos.Candidatos())
	if secoes == nil {
		return cabecalho(tituloInfra, territorio, geradoEm, opcoesCabecalho{Ano: "N/D"}) +
			"\n  ⚠️ Sem dados.\n" + rodape("QEdu (qedu.org.br)")
	}

	itens := filtrarItensRelevantes(extrairItensInfra(secoes))

	var b strings.Builder
	b.WriteString(cabecalho(tituloInfra, territorio, geradoEm, opcoesCabecalho{
		Rede: "Municipal",
		Ano:  fmt.Sprint(ano),
	}))

	// PARTE 1: tabela comparativa
	fmt.Fprintf(&b, "\n\nPARTE 1: TABELA COMPARATIVA\n%s\n\n", sublinha)
	fmt.Fprintf(&b, "%20s %10s %7s %7s %10s %10s\n",
		"Indicador", "Município", "Estado", "Brasil", "vs Brasil", "vs Estado")
	for _, it := range itens {
		dBr, dEst := "", ""
		if it.brasil != nil {
			dBr = fmt.Sprintf("%+.1fpp", escala100(it.municipio)-escala100(*it.brasil))
		}
		if it.estado != nil {
			dEst = fmt.Sprintf("%+.1fpp", escala100(it.municipio)-escala100(*it.estado))
		}
		fmt.Fprintf(&b, "%20s %10s %7s %7s %10s %10s\n",
			it.label, pct(&it.municipio), pct(it.estado), pct(it.brasil), dBr, dEst)
	}

	// PANORAMA COMPARATIVO
	fmt.Fprintf(&b, "\n\n\n%s\nPANORAMA COMPARATIVO - ANÁLISE QUALITATIVA\n%s\n", linha, linha)
	fmt.Fprintf(&b, "\n📊 Análise comparativa de %s em relação ao Estado e Brasil\n", territorio)

	var abaixoBr, abaixoEst, acima []itemInfra
	for _, it := range itens {
		switch {
		case it.brasil != nil && it.municipio < *it.brasil:
			abaixoBr = append(abaixoBr, it)
		case it.brasil != nil && it.estado != nil && it.municipio < *it.estado:
			abaixoEst = append(abaixoEst, it)
		default:
			acima = append(acima, it)
		}
	}
	sort.Slice(abaixoBr, func(i, j int) bool {
		return abaixoBr[i].municipio-*abaixoBr[i].brasil < abaixoBr[j].municipio-*abaixoBr[j].brasil
	})

	fmt.Fprintf(&b, "\n%s\n🔴 INDICADORES ABAIXO DA MÉDIA NACIONAL (BRASIL)\n%s\n\n", sublinha, sublinha)
	if len(abaixoBr) == 0 {
		b.WriteString("   ✅ Nenhum indicador abaixo da média nacional.\n")
	}
	for _, it := range abaixoBr {
		fmt.Fprintf(&b, "\n   ❌ %s\n", it.label)
		fmt.Fprintf(&b, "      Município: %s | Estado: %s | Brasil: %s\n", pct(&it.municipio), pct(it.estado), pct(it.brasil))
		fmt.Fprintf(&b, "      → %+.1fpp vs Brasil\n", escala100(it.municipio)-escala100(*it.brasil))
	}

	fmt.Fprintf(&b, "\n%s\n🟡 INDICADORES ABAIXO DA MÉDIA ESTADUAL (mas acima do Brasil)\n%s\n\n", sublinha, sublinha)
	if len(abaixoEst) == 0 {
		b.WriteString("   ✅ Nenhum indicador abaixo da média estadual (que esteja acima da nacional).\n")
	}
	for _, it := range abaixoEst {
		fmt.Fprintf(&b, "\n   ⚠️ %s\n", it.label)
		fmt.Fprintf(&b, "      Município: %s | Estado: %s | Brasil: %s\n", pct(&it.municipio), pct(it.estado), pct(it.brasil))
	}

	fmt.Fprintf(&b, "\n%s\n🟢 INDICADORES ACIMA DAS MÉDIAS ESTADUAL E NACIONAL\n%s\n\n", sublinha, sublinha)
	for _, it := range acima {
		dBr, dEst := 0.0, 0.0
		if it.brasil != nil {
			dBr = escala100(it.municipio) - escala100(*it.brasil)
		}
		if it.estado != nil {
			dEst = escala100(it.municipio) - escala100(*it.estado)
		}
		fmt.Fprintf(&b, "   ✅ %s\n", it.label)
		fmt.Fprintf(&b, "      Município: %s | Estado: %s | Brasil: %s\n", pct(&it.municipio), pct(it.estado), pct(it.brasil))
		fmt.Fprintf(&b, "      → %+.1fpp vs Brasil | %+.1fpp vs Estado\n\n", dBr, dEst)
	}

	// Resumo e conclusão
	fmt.Fprintf(&b, "%s\n📋 RESUMO DO PANORAMA\n%s\n\n", linha, linha)
	fmt.Fprintf(&b, "   Total de indicadores analisados: %d\n\n", len(itens))
	fmt.Fprintf(&b, "   🔴 Abaixo do Brasil:           %d indicador(es)\n", len(abaixoBr))
	fmt.Fprintf(&b, "   🟡 Abaixo do Estado:           %d indicador(es)\n", len(abaixoEst))
	fmt.Fprintf(&b, "   🟢 Acima de ambos:             %d indicador(es)\n", len(acima))

	fmt.Fprintf(&b, "\n%s\n💬 CONCLUSÃO\n%s\n\n", sublinha, sublinha)
	switch {
	case len(abaixoBr) == 0 && len(abaixoEst) == 0:
		fmt.Fprintf(&b, "   %s apresenta EXCELENTE infraestrutura escolar nos indicadores\n", territorio)
		b.WriteString("   analisados, estando ACIMA das médias estadual e nacional em todos os itens.\n\n")
		b.WriteString("   💡 Recomendação: Focar em soluções de ATUALIZAÇÃO e MODERNIZAÇÃO,\n")
		b.WriteString("   já que a infraestrutura básica está bem estabelecida.\n")
	case len(abaixoBr) == 0:
		fmt.Fprintf(&b, "   %s apresenta BOA infraestrutura, acima da média nacional,\n", territorio)
		b.WriteString("   mas com oportunidade de alcançar o patamar estadual em alguns itens.\n\n")
		b.WriteString("   💡 Recomendação: Focar em equiparar ao patamar estadual.\n")
	case len(abaixoBr) <= 2:
		fmt.Fprintf(&b, "   %s apresenta infraestrutura PARCIALMENTE adequada,\n", territorio)
		fmt.Fprintf(&b, "   com %d indicador(es) abaixo da média nacional.\n\n", len(abaixoBr))
		b.WriteString("   💡 Recomendação: oportunidade de melhoria rápida.\n")
	default:
		fmt.Fprintf(&b, "   %s apresenta DÉFICIT significativo de infraestrutura,\n", territorio)
		fmt.Fprintf(&b, "   com %d indicadores abaixo da média nacional.\n\n", len(abaixoBr))
		b.WriteString("   💡 Recomendação: Priorizar INFRAESTRUTURA BÁSICA — grande potencial de mercado.\n")
	}

	b.WriteString(rodape("QEdu (qedu.org.br)"))
	return b.String()
}
