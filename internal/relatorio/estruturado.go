package relatorio

import (
	"context"
	"math"
	"strings"

	"github.com/prefeitura-rio/app-educacao-relatorios/internal/constants"
)

// arred2 arredonda para duas casas decimais
func arred2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentualEstruturado converte para a escala 0-100 e arredonda
func percentualEstruturado(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return arred2(escala100(*v)), true
}

// coletarDadosEstruturados monta o payload numérico que acompanha os textos.
// As consultas repetem as dos relatórios, então saem todas do cache do
// cliente.
func coletarDadosEstruturados(ctx context.Context, fonte FonteQEdu, anos *AnoResolver, ibge, territorio, uf, tipo string) map[string]any {
	dados := map[string]any{
		"entidade": territorio,
		"uf":       uf,
		"tipo":     tipo,
	}

	if aprendizado := coletarAprendizadoEstruturado(ctx, fonte, ibge); len(aprendizado) > 0 {
		dados["aprendizado"] = aprendizado
	}
	if censo := coletarCensoEstruturado(ctx, fonte, anos, ibge); censo != nil {
		dados["censo"] = censo
	}
	if infra := coletarInfraEstruturado(ctx, fonte, anos, ibge); infra != nil {
		dados["infra"] = infra
	}
	if taxa := coletarTaxaEstruturada(ctx, fonte, anos, ibge); len(taxa) > 0 {
		dados["taxa_rendimento"] = taxa
	}
	return dados
}

func coletarAprendizadoEstruturado(ctx context.Context, fonte FonteQEdu, ibge string) map[string]any {
	aprendizado := map[string]any{}
	for _, ciclo := range constants.Ciclos {
		grupos := fonte.Aprendizado(ctx, ibge, constants.DependenciaPublica, ciclo.ID)
		registrosMun, _, registrosBr := extrairTerritorios(grupos, ibge)
		ultimoMun := ultimoRegistro(registrosMun)
		if ultimoMun == nil {
			continue
		}
		ultimoBr := ultimoRegistro(registrosBr)

		disciplinas := map[string]any{}
		for _, disc := range constants.Disciplinas {
			entidade := map[string]float64{}
			brasil := map[string]float64{}
			for _, nivel := range constants.Niveis {
				if v, ok := percentualEstruturado(ultimoMun.Nivel(disc.ID, nivel.ID)); ok {
					entidade[nivel.ID] = v
				}
				if v, ok := percentualEstruturado(ultimoBr.Nivel(disc.ID, nivel.ID)); ok {
					brasil[nivel.ID] = v
				}
			}
			disciplinas[disc.Nome] = map[string]any{"entidade": entidade, "brasil": brasil}
		}
		aprendizado[ciclo.ID] = map[string]any{
			"ano":         ultimoMun.Ano,
			"disciplinas": disciplinas,
		}
	}
	return aprendizado
}

func coletarCensoEstruturado(ctx context.Context, fonte FonteQEdu, anos *AnoResolver, ibge string) map[string]any {
	censo, ano := fonte.Censo(ctx, ibge, constants.DependenciaMunicipal, anos.Candidatos())
	if censo == nil {
		return nil
	}
	matriculas := map[string]int{}
	total := 0
	for _, campo := range constants.CamposMatricula {
		if v, ok := censo.Matricula(campo.Campo); ok {
			matriculas[campo.Nome] = v
			total += v
		}
	}
	return map[string]any{
		"ano":              ano,
		"qtd_escolas":      censo.QtdEscolas,
		"matriculas":       matriculas,
		"total_matriculas": total,
	}
}

func coletarInfraEstruturado(ctx context.Context, fonte FonteQEdu, anos *AnoResolver, ibge string) map[string]any {
	secoes, ano := fonte.Infra(ctx, ibge, constants.DependenciaMunicipal, anos.Candidatos())
	if secoes == nil {
		return nil
	}
	indicadores := map[string]map[string]float64{}
	for _, secao := range secoes {
		for _, item := range secao.Items {
			for _, v := range item.Values {
				if v.Value == nil {
					continue
				}
				if indicadores[item.Label] == nil {
					indicadores[item.Label] = map[string]float64{}
				}
				indicadores[item.Label][strings.ToLower(v.Entidade)] = arred2(*v.Value * 100)
			}
		}
	}
	return map[string]any{"ano": ano, "indicadores": indicadores}
}

func coletarTaxaEstruturada(ctx context.Context, fonte FonteQEdu, anos *AnoResolver, ibge string) map[string]any {
	taxa := map[string]any{}
	for _, ciclo := range constants.Ciclos {
		comparacao, ano := fonte.Taxa(ctx, ibge, ciclo.ID, constants.DependenciaTodas, anos.Candidatos())
		if comparacao == nil {
			continue
		}
		reg := ultimoRegistroTaxa(comparacao.Municipio)
		if reg == nil {
			continue
		}
		rend := reg.Rend()
		entrada := map[string]any{"nome": ciclo.Nome, "ano": ano}
		if v, ok := percentualEstruturado(rend.Aprovados); ok {
			entrada["aprovacao_pct"] = v
		}
		if v, ok := percentualEstruturado(rend.Reprovados); ok {
			entrada["reprovacao_pct"] = v
		}
		if v, ok := percentualEstruturado(rend.Abandonos); ok {
			entrada["abandono_pct"] = v
		}
		taxa[ciclo.ID] = entrada
	}
	return taxa
}
