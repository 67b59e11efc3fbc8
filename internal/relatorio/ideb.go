package relatorio

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-educacao-relatorios/internal/constants"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/ideb"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/models"
)

const tituloIDEB = "RELATÓRIO DE ANÁLISE IDEB"

// serieIDEB é a série histórica de IDEB de um segmento, ordenada por ano
type serieIDEB struct {
	anos    []int
	valores []float64
}

// montarSerieIDEB filtra as linhas por esfera e segmento, mantendo só o
// indicador IDEB com valor presente, em ordem de ano.
func montarSerieIDEB(linhas []models.LinhaIDEB, esfera, segmento string) serieIDEB {
	type ponto struct {
		ano   int
		valor float64
	}
	var pontos []ponto
	for _, l := range linhas {
		if l.TipoIndicador != "IDEB" || l.Segmento != segmento || l.Valor == nil {
			continue
		}
		if esfera != "" && l.Esfera != esfera {
			continue
		}
		pontos = append(pontos, ponto{l.Ano, *l.Valor})
	}
	sort.Slice(pontos, func(i, j int) bool { return pontos[i].ano < pontos[j].ano })

	var s serieIDEB
	for _, p := range pontos {
		s.anos = append(s.anos, p.ano)
		s.valores = append(s.valores, p.valor)
	}
	return s
}

func (s serieIDEB) valorNoAno(ano int) *float64 {
	for i, a := range s.anos {
		if a == ano {
			return &s.valores[i]
		}
	}
	return nil
}

// tendenciaLinear retorna a inclinação da regressão linear em pontos/ano
func tendenciaLinear(anos []int, valores []float64) float64 {
	n := float64(len(anos))
	if n < 2 {
		return 0
	}
	var somaX, somaY, somaXY, somaXX float64
	for i, a := range anos {
		x := float64(a)
		somaX += x
		somaY += valores[i]
		somaXY += x * valores[i]
		somaXX += x * x
	}
	denominador := n*somaXX - somaX*somaX
	if denominador == 0 {
		return 0
	}
	return (n*somaXY - somaX*somaY) / denominador
}

// estatisticasSegmento resume a série de um segmento para o bloco de
// estatísticas adicionais.
type estatisticasSegmento struct {
	variacao  float64
	tendencia float64
	maximo    float64
	minimo    float64
	vsEstado  *float64
	vsBrasil  *float64
}

// passeIDEB descreve uma varredura de segmentos do relatório: qual filtro de
// esfera aplicar à série primária e se a tabela carrega a coluna do estado.
type passeIDEB struct {
	esfera    string
	segmentos []string
	comEstado bool
}

func gerarIDEB(store *ideb.Store, ibge, territorio, uf string, geradoEm time.Time) string {
	estado := constants.IsEstado(ibge)
	linhasPrimarias := store.LinhasMunicipio(ibge)
	if estado {
		linhasPrimarias = store.LinhasEstado(uf)
	}
	if len(linhasPrimarias) == 0 {
		return cabecalho(tituloIDEB, territorio, geradoEm, opcoesCabecalho{}) +
			"\n  ⚠️ Sem dados IDEB disponíveis.\n" + rodape("IDEB/SAEB - INEP/MEC")
	}
	linhasUF := store.LinhasEstado(uf)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", linha, tituloIDEB)
	fmt.Fprintf(&b, "Gerado em: %s\n%s\n", geradoEm.Format("02/01/2006 15:04"), linha)
	fmt.Fprintf(&b, "\n📍 ESCOPO DA ANÁLISE\n%s\n", strings.Repeat("-", 40))
	if estado {
		fmt.Fprintf(&b, "Estado: %s (%s)\n", territorio, uf)
		b.WriteString("Comparativo: Estado vs média e mediana dos estados\n")
	} else {
		fmt.Fprintf(&b, "Município: %s\nEstado: %s\n", territorio, uf)
		b.WriteString("Comparativo: Município vs Estado vs Brasil\n")
		b.WriteString("Nota: Ensino Médio usa dados da rede estadual (não há IDEB municipal para EM)\n")
	}

	passes := []passeIDEB{
		{esfera: "municipal", segmentos: constants.SegmentosIDEB, comEstado: true},
		{esfera: "estadual", segmentos: []string{"ensino medio"}},
	}
	if estado {
		// as linhas estaduais não têm esfera; a série da UF é a primária
		passes = []passeIDEB{{segmentos: constants.SegmentosIDEB}}
	}

	for _, passe := range passes {
		segmentos := passe.segmentos

		temDados := false
		for _, seg := range segmentos {
			if len(montarSerieIDEB(linhasPrimarias, passe.esfera, seg).anos) > 0 {
				temDados = true
				break
			}
		}
		if !temDados {
			continue
		}

		type insightSegmento struct {
			rotulo string
			linhas []string
			stats  estatisticasSegmento
		}
		var insights []insightSegmento

		fmt.Fprintf(&b, "\n📊 HISTÓRICO IDEB POR SEGMENTO\n%s\n", strings.Repeat("-", 40))

		for _, seg := range segmentos {
			serie := montarSerieIDEB(linhasPrimarias, passe.esfera, seg)
			if len(serie.anos) == 0 {
				continue
			}

			rotulo := constants.SegmentosDisplay[seg]
			if rotulo == "" {
				rotulo = strings.ToUpper(seg)
			}
			if passe.esfera == "estadual" && seg == "ensino medio" {
				rotulo = "ENSINO MEDIO (REDE ESTADUAL)"
			}

			serieUF := montarSerieIDEB(linhasUF, "", seg)

			fmt.Fprintf(&b, "\n▶ %s\n%s\n", rotulo, sublinha)
			if passe.comEstado {
				fmt.Fprintf(&b, "%-8s %-12s %-12s %-12s %-12s %-12s\n",
					"Ano", "Município", "Estado", "Brasil(M)", "vs Estado", "vs Brasil")
			} else {
				fmt.Fprintf(&b, "%-8s %-12s %-12s %-12s %-12s %-12s\n",
					"Ano", "Estado", "Brasil(M)", "Brasil(Md)", "vs Média", "vs Mediana")
			}
			fmt.Fprintf(&b, "%s\n", sublinha)

			var somaVsEstado, somaVsBrasil float64
			var nVsEstado, nVsBrasil int

			for i, ano := range serie.anos {
				vm := serie.valores[i]

				var mediaBr, medianaBr *float64
				if est, ok := store.EstatisticaBrasil("IDEB", ano, seg); ok {
					mediaBr, medianaBr = &est.Media, &est.Mediana
				}

				if passe.comEstado {
					ve := serieUF.valorNoAno(ano)
					dEst, dBr := "", ""
					if ve != nil {
						dEst = fmt.Sprintf("%+.2f", vm-*ve)
						somaVsEstado += vm - *ve
						nVsEstado++
					}
					if mediaBr != nil {
						dBr = fmt.Sprintf("%+.2f", vm-*mediaBr)
						somaVsBrasil += vm - *mediaBr
						nVsBrasil++
					}
					fmt.Fprintf(&b, "%-8d %-12s %-12s %-12s %-12s %-12s\n",
						ano, valor(&vm), valor(ve), valor(mediaBr), dEst, dBr)
				} else {
					dMedia, dMediana := "", ""
					if mediaBr != nil {
						dMedia = fmt.Sprintf("%+.2f", vm-*mediaBr)
						somaVsBrasil += vm - *mediaBr
						nVsBrasil++
					}
					if medianaBr != nil {
						dMediana = fmt.Sprintf("%+.2f", vm-*medianaBr)
					}
					fmt.Fprintf(&b, "%-8d %-12s %-12s %-12s %-12s %-12s\n",
						ano, valor(&vm), valor(mediaBr), valor(medianaBr), dMedia, dMediana)
				}
			}

			if len(serie.valores) < 2 {
				continue
			}

			variacao := 0.0
			if serie.valores[0] != 0 {
				variacao = (serie.valores[len(serie.valores)-1] - serie.valores[0]) / serie.valores[0] * 100
			}
			tendencia := tendenciaLinear(serie.anos, serie.valores)

			var linhasInsight []string
			stats := estatisticasSegmento{variacao: variacao, tendencia: tendencia}
			stats.maximo, stats.minimo = serie.valores[0], serie.valores[0]
			for _, v := range serie.valores {
				if v > stats.maximo {
					stats.maximo = v
				}
				if v < stats.minimo {
					stats.minimo = v
				}
			}

			if passe.comEstado && nVsEstado > 0 {
				diffEst := somaVsEstado / float64(nVsEstado)
				stats.vsEstado = &diffEst
				switch {
				case diffEst > 0.3:
					linhasInsight = append(linhasInsight, fmt.Sprintf("  ✅ Município supera média estadual em %.2f pontos", diffEst))
				case diffEst < -0.3:
					linhasInsight = append(linhasInsight, fmt.Sprintf("  ⚠️ Município está %.2f pontos abaixo do estado", -diffEst))
				default:
					linhasInsight = append(linhasInsight, fmt.Sprintf("  ➡️ Município próximo do estado (%+.2f pontos)", diffEst))
				}
			}
			if nVsBrasil > 0 {
				diffBr := somaVsBrasil / float64(nVsBrasil)
				stats.vsBrasil = &diffBr
				if passe.comEstado {
					if diffBr > 0.3 {
						linhasInsight = append(linhasInsight, fmt.Sprintf("  ✅ Município supera média nacional em %.2f pontos", diffBr))
					} else if diffBr < -0.3 {
						linhasInsight = append(linhasInsight, fmt.Sprintf("  ⚠️ Município está %.2f pontos abaixo da média nacional", -diffBr))
					}
				} else if diffBr > 0.3 {
					linhasInsight = append(linhasInsight, fmt.Sprintf("  ✅ Supera média nacional em %.2f pontos", diffBr))
				}
			}

			switch {
			case tendencia > 0.05:
				linhasInsight = append(linhasInsight, fmt.Sprintf("  📈 Tendência de crescimento (+%.3f/ano)", tendencia))
			case tendencia < -0.05:
				linhasInsight = append(linhasInsight, fmt.Sprintf("  📉 Tendência de queda (%.3f/ano)", tendencia))
			default:
				linhasInsight = append(linhasInsight, fmt.Sprintf("  ➡️ Tendência estável (%+.3f/ano)", tendencia))
			}

			if variacao > 20 {
				linhasInsight = append(linhasInsight, fmt.Sprintf("  🚀 Crescimento expressivo de %.1f%% no período", variacao))
			} else if variacao < -10 {
				linhasInsight = append(linhasInsight, fmt.Sprintf("  🔻 Queda de %.1f%% no período", -variacao))
			}

			// impacto da pandemia e recuperação, quando as safras existem
			if v2019, v2021 := serie.valorNoAno(2019), serie.valorNoAno(2021); v2019 != nil && v2021 != nil {
				dPan := *v2021 - *v2019
				if dPan < -0.3 {
					linhasInsight = append(linhasInsight, fmt.Sprintf("  🦠 Impacto da pandemia detectado (%+.1f pontos 2019→2021)", dPan))
				} else if dPan > 0.3 {
					linhasInsight = append(linhasInsight, fmt.Sprintf("  💪 Resiliência na pandemia (crescimento de %.1f pontos 2019→2021)", dPan))
				}
			}
			if v2021, v2023 := serie.valorNoAno(2021), serie.valorNoAno(2023); v2021 != nil && v2023 != nil {
				dRec := *v2023 - *v2021
				if dRec > 0.2 {
					linhasInsight = append(linhasInsight, fmt.Sprintf("  🔄 %s : Recuperação pós-pandemia (+%.1f pontos 2021→2023)", rotulo, dRec))
				} else if dRec < -0.2 {
					linhasInsight = append(linhasInsight, fmt.Sprintf("  ⚠️ %s : Continuidade de queda pós-pandemia (%+.1f pontos 2021→2023)", rotulo, dRec))
				}
			}

			insights = append(insights, insightSegmento{rotulo, linhasInsight, stats})
		}

		if len(insights) > 0 {
			fmt.Fprintf(&b, "\n\n💡 INSIGHTS E OBSERVAÇÕES\n%s\n", linha)
			for _, ins := range insights {
				fmt.Fprintf(&b, "\n▶ %s\n%s\n", ins.rotulo, strings.Repeat("-", 40))
				for _, l := range ins.linhas {
					b.WriteString(l + "\n")
				}
			}

			fmt.Fprintf(&b, "\n\n📈 ESTATÍSTICAS ADICIONAIS\n%s\n", linha)
			for _, ins := range insights {
				fmt.Fprintf(&b, "\n▶ %s\n%s\n", ins.rotulo, strings.Repeat("-", 40))
				fmt.Fprintf(&b, "  • Variação total (%%): %.2f\n", ins.stats.variacao)
				fmt.Fprintf(&b, "  • Tendência (pts/ano): %.2f\n", ins.stats.tendencia)
				if ins.stats.vsEstado != nil {
					fmt.Fprintf(&b, "  • Município vs Estado: %.2f\n", *ins.stats.vsEstado)
				}
				if ins.stats.vsBrasil != nil {
					rotuloVs := "Município vs Brasil"
					if estado {
						rotuloVs = "Estado vs Brasil"
					}
					fmt.Fprintf(&b, "  • %s: %.2f\n", rotuloVs, *ins.stats.vsBrasil)
				}
				fmt.Fprintf(&b, "  • Maior valor: %.2f\n", ins.stats.maximo)
				fmt.Fprintf(&b, "  • Menor valor: %.2f\n", ins.stats.minimo)
			}
		}
	}

	fmt.Fprintf(&b, "\n%s\nFim do Relatório\n", linha)
	return b.String()
}
