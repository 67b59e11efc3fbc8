// Package qedu implementa o cliente tipado da API pública do QEdu
// (qedu.org.br), fonte dos dados de aprendizado, censo, infraestrutura e
// taxa de rendimento. As consultas com fallback de ano tentam os anos
// candidatos em ordem e devolvem o primeiro com dados.
package qedu

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// headers obrigatórios: a API responde 403 sem identificação de navegador
var cabecalhosPadrao = map[string]string{
	"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Accept":     "application/json",
	"Referer":    "https://qedu.org.br/",
}

// Client consulta a API QEdu com retry e cache de respostas por geração.
type Client struct {
	http  *resty.Client
	cache *respostaCache
}

// Options controla endereço, timeout e cache do cliente
type Options struct {
	BaseURL         string
	Timeout         time.Duration
	Tentativas      int
	CacheCapacidade int
	CacheTTL        time.Duration
}

// NewClient cria o cliente da API QEdu
func NewClient(opts Options) *Client {
	if opts.Tentativas < 1 {
		opts.Tentativas = 3
	}
	httpClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeaders(cabecalhosPadrao).
		SetRetryCount(opts.Tentativas - 1).
		SetRetryWaitTime(500 * time.Millisecond)

	return &Client{
		http:  httpClient,
		cache: newRespostaCache(opts.CacheCapacidade, opts.CacheTTL),
	}
}

// buscarJSON executa um GET com cache. Erros de rede e status não-2xx contam
// como ausência de dados para o chamador, que segue para o próximo ano
// candidato ou degrada o relatório.
func (c *Client) buscarJSON(ctx context.Context, caminho string, params map[string]string) ([]byte, bool) {
	chave := chaveCache(caminho, params)
	if corpo, ok := c.cache.get(chave); ok {
		return corpo, true
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(caminho)
	if err != nil {
		log.Printf("qedu: falha ao consultar %s: %v", caminho, err)
		return nil, false
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		log.Printf("qedu: %s retornou status %d", caminho, resp.StatusCode())
		return nil, false
	}

	corpo := resp.Body()
	c.cache.set(chave, corpo)
	return corpo, true
}

func chaveCache(caminho string, params map[string]string) string {
	valores := url.Values{}
	for k, v := range params {
		valores.Set(k, v)
	}
	return caminho + "?" + valores.Encode() // Encode ordena as chaves
}

// Censo busca as matrículas do censo escolar, tentando os anos candidatos em
// ordem. Retorna também o ano em que encontrou dados (0 = nenhum).
func (c *Client) Censo(ctx context.Context, ibge string, dependencia int, anos []int) (*Censo, int) {
	for _, ano := range anos {
		corpo, ok := c.buscarJSON(ctx, "/censo/territorios/matriculas", map[string]string{
			"ibge_id":        ibge,
			"ano":            fmt.Sprint(ano),
			"dependencia_id": fmt.Sprint(dependencia),
			"localizacao_id": "0",
			"oferta_id":      "0",
		})
		if !ok {
			continue
		}
		var resposta censoResponse
		if err := json.Unmarshal(corpo, &resposta); err != nil || resposta.Censo == nil {
			continue
		}
		return resposta.Censo, ano
	}
	return nil, 0
}

// Infra busca o comparativo de infraestrutura, com fallback de anos.
func (c *Client) Infra(ctx context.Context, ibge string, dependencia int, anos []int) ([]SecaoInfra, int) {
	for _, ano := range anos {
		corpo, ok := c.buscarJSON(ctx, fmt.Sprintf("/infra/%s/comparativo", ibge), map[string]string{
			"dependencia_id": fmt.Sprint(dependencia),
			"ano":            fmt.Sprint(ano),
		})
		if !ok {
			continue
		}
		var secoes []SecaoInfra
		if err := json.Unmarshal(corpo, &secoes); err != nil {
			continue
		}
		if infraTemDados(secoes) {
			return secoes, ano
		}
	}
	return nil, 0
}

func infraTemDados(secoes []SecaoInfra) bool {
	for _, s := range secoes {
		for _, item := range s.Items {
			if len(item.Values) > 0 {
				return true
			}
		}
	}
	return false
}

// Aprendizado busca a série SAEB de um ciclo. O endpoint já devolve todos os
// anos disponíveis; a seleção de ano fica com o gerador.
func (c *Client) Aprendizado(ctx context.Context, ibge string, dependencia int, ciclo string) [][]RegistroAprendizado {
	corpo, ok := c.buscarJSON(ctx, fmt.Sprintf("/aprendizado/%s/ultimos-comparativo", ibge), map[string]string{
		"dependencia_id": fmt.Sprint(dependencia),
		"ciclo_id":       ciclo,
	})
	if !ok {
		return nil
	}
	var grupos [][]RegistroAprendizado
	if err := json.Unmarshal(corpo, &grupos); err != nil {
		return nil
	}
	return grupos
}

// Taxa busca a comparação de taxa de rendimento de um ciclo, com fallback de
// anos. O segundo retorno é o ano efetivo dos dados: a API às vezes ignora o
// parâmetro de ano, então o ano real é detectado nos registros.
func (c *Client) Taxa(ctx context.Context, ibge, ciclo string, dependencia int, anos []int) (*TaxaComparacao, int) {
	for _, ano := range anos {
		bruta, ok := c.buscarTaxa(ctx, ibge, ciclo, dependencia, ano)
		if !ok {
			continue
		}
		comparacao := bruta.normalizar()
		anoReal := comparacao.AnoMaisRecente()
		if anoReal == 0 {
			anoReal = ano
		}
		return comparacao, anoReal
	}
	return nil, 0
}

// TaxaHistorico coleta até maxAnos anos distintos de taxa para a evolução
// histórica, varrendo os anos candidatos.
func (c *Client) TaxaHistorico(ctx context.Context, ibge, ciclo string, dependencia int, anos []int, maxAnos int) map[int]*TaxaComparacao {
	resultados := make(map[int]*TaxaComparacao)
	for _, ano := range anos {
		bruta, ok := c.buscarTaxa(ctx, ibge, ciclo, dependencia, ano)
		if !ok {
			continue
		}
		resultados[ano] = bruta.normalizar()
		if len(resultados) >= maxAnos {
			break
		}
	}
	return resultados
}

func (c *Client) buscarTaxa(ctx context.Context, ibge, ciclo string, dependencia, ano int) (*taxaComparacaoBruta, bool) {
	corpo, ok := c.buscarJSON(ctx, fmt.Sprintf("/taxa-rendimento/taxa-rendimento/%s/comparacao", ibge), map[string]string{
		"dependencia_id": fmt.Sprint(dependencia),
		"ano":            fmt.Sprint(ano),
		"ciclo_id":       ciclo,
		"localizacao_id": "0",
	})
	if !ok {
		return nil, false
	}
	var bruta taxaComparacaoBruta
	if err := json.Unmarshal(corpo, &bruta); err != nil || !bruta.temDados() {
		return nil, false
	}
	return &bruta, true
}
