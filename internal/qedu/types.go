package qedu

import (
	"encoding/json"
	"strings"
)

// Territorio identifica a entidade dona de um registro da API (município,
// estado ou Brasil) e sua posição na hierarquia.
type Territorio struct {
	IbgeID   json.Number `json:"ibge_id"`
	ParentID *int        `json:"parent_id"`
	Nome     string      `json:"nome"`
	Sigla    string      `json:"sigla"`
	Parent   *Territorio `json:"parent"`
}

// ibgeBrasil é o ibge_id que a API usa para os agregados nacionais
const ibgeBrasil = "7"

// Brasil informa se o território é o agregado nacional.
func (t *Territorio) Brasil() bool {
	return t != nil && t.IbgeID.String() == ibgeBrasil
}

// RegistroAprendizado é um registro SAEB de um território em um ano.
// Os percentuais vêm na escala 0-1 e podem faltar individualmente.
type RegistroAprendizado struct {
	Ano        int         `json:"ano"`
	Territorio *Territorio `json:"territorio"`

	LpAdequado     *float64 `json:"lp_adequado"`
	LpAvancado     *float64 `json:"lp_avancado"`
	LpProficiente  *float64 `json:"lp_proficiente"`
	LpBasico       *float64 `json:"lp_basico"`
	LpInsuficiente *float64 `json:"lp_insuficiente"`

	MtAdequado     *float64 `json:"mt_adequado"`
	MtAvancado     *float64 `json:"mt_avancado"`
	MtProficiente  *float64 `json:"mt_proficiente"`
	MtBasico       *float64 `json:"mt_basico"`
	MtInsuficiente *float64 `json:"mt_insuficiente"`
}

// Nivel retorna o percentual de um nível para uma disciplina ("lp"/"mt").
// O nível "adequado" é derivado de proficiente + avançado quando a API não o
// envia pronto.
func (r *RegistroAprendizado) Nivel(disciplina, nivel string) *float64 {
	if r == nil {
		return nil
	}
	if nivel == "adequado" {
		return r.Adequado(disciplina)
	}
	switch disciplina + "_" + nivel {
	case "lp_avancado":
		return r.LpAvancado
	case "lp_proficiente":
		return r.LpProficiente
	case "lp_basico":
		return r.LpBasico
	case "lp_insuficiente":
		return r.LpInsuficiente
	case "mt_avancado":
		return r.MtAvancado
	case "mt_proficiente":
		return r.MtProficiente
	case "mt_basico":
		return r.MtBasico
	case "mt_insuficiente":
		return r.MtInsuficiente
	}
	return nil
}

// Adequado retorna o percentual adequado (proficiente + avançado)
func (r *RegistroAprendizado) Adequado(disciplina string) *float64 {
	if r == nil {
		return nil
	}
	var adequado, proficiente, avancado *float64
	switch disciplina {
	case "lp":
		adequado, proficiente, avancado = r.LpAdequado, r.LpProficiente, r.LpAvancado
	case "mt":
		adequado, proficiente, avancado = r.MtAdequado, r.MtProficiente, r.MtAvancado
	default:
		return nil
	}
	if adequado != nil {
		return adequado
	}
	if proficiente == nil && avancado == nil {
		return nil
	}
	soma := 0.0
	if proficiente != nil {
		soma += *proficiente
	}
	if avancado != nil {
		soma += *avancado
	}
	return &soma
}

// Censo é o bloco "censo" da resposta de matrículas. Os campos
// matriculas_* variam por território e ano, então são capturados em um mapa.
type Censo struct {
	QtdEscolas int
	Territorio *Territorio
	Matriculas map[string]int
}

// UnmarshalJSON captura os campos fixos e todo campo matriculas_* presente
func (c *Censo) UnmarshalJSON(data []byte) error {
	var bruto map[string]json.RawMessage
	if err := json.Unmarshal(data, &bruto); err != nil {
		return err
	}
	c.Matriculas = make(map[string]int)
	for chave, valor := range bruto {
		switch {
		case chave == "qtd_escolas":
			_ = json.Unmarshal(valor, &c.QtdEscolas)
		case chave == "territorio":
			_ = json.Unmarshal(valor, &c.Territorio)
		case strings.HasPrefix(chave, "matriculas_"):
			var n *int
			if err := json.Unmarshal(valor, &n); err == nil && n != nil {
				c.Matriculas[chave] = *n
			}
		}
	}
	return nil
}

// Matricula retorna o total de matrículas de um campo do censo, tratando a
// variação de grafia pre_escolar/pre_escola entre safras da API.
func (c *Censo) Matricula(campo string) (int, bool) {
	if c == nil {
		return 0, false
	}
	if v, ok := c.Matriculas[campo]; ok {
		return v, true
	}
	if campo == "matriculas_pre_escolar" {
		v, ok := c.Matriculas["matriculas_pre_escola"]
		return v, ok
	}
	return 0, false
}

type censoResponse struct {
	Censo *Censo `json:"censo"`
}

// SecaoInfra é uma seção do comparativo de infraestrutura
type SecaoInfra struct {
	Items []ItemInfra `json:"items"`
}

// ItemInfra é um indicador de infraestrutura com valores por entidade
type ItemInfra struct {
	Label  string       `json:"label"`
	Values []ValorInfra `json:"values"`
}

// ValorInfra é o valor (escala 0-1) de um indicador para uma entidade
// ("Municipio", "Estado" ou "Brasil")
type ValorInfra struct {
	Entidade string   `json:"entidade"`
	Value    *float64 `json:"value"`
}

// Rendimento traz as taxas de aprovação/reprovação/abandono de um registro
type Rendimento struct {
	Aprovados  *float64    `json:"aprovados"`
	Reprovados *float64    `json:"reprovados"`
	Abandonos  *float64    `json:"abandonos"`
	Territorio *Territorio `json:"territorio"`
}

// TaxaRegistro é um registro anual de taxa de rendimento. Algumas safras da
// API aninham o rendimento, outras o achatam no próprio registro.
type TaxaRegistro struct {
	Ano        int         `json:"ano"`
	Rendimento *Rendimento `json:"rendimento"`

	Aprovados  *float64    `json:"aprovados"`
	Reprovados *float64    `json:"reprovados"`
	Abandonos  *float64    `json:"abandonos"`
	Territorio *Territorio `json:"territorio"`
}

// Rend devolve o rendimento do registro, qualquer que seja o formato
func (t *TaxaRegistro) Rend() Rendimento {
	if t == nil {
		return Rendimento{}
	}
	if t.Rendimento != nil {
		return *t.Rendimento
	}
	return Rendimento{
		Aprovados:  t.Aprovados,
		Reprovados: t.Reprovados,
		Abandonos:  t.Abandonos,
		Territorio: t.Territorio,
	}
}

// taxaComparacaoBruta cobre as duas convenções de chave da API
// (entidade/parent vs municipio/estado)
type taxaComparacaoBruta struct {
	Entidade  []TaxaRegistro `json:"entidade"`
	Municipio []TaxaRegistro `json:"municipio"`
	Parent    []TaxaRegistro `json:"parent"`
	Estado    []TaxaRegistro `json:"estado"`
	Brasil    []TaxaRegistro `json:"brasil"`
}

// TaxaComparacao é a resposta de taxa de rendimento com as chaves
// padronizadas para municipio/estado/brasil.
type TaxaComparacao struct {
	Municipio []TaxaRegistro
	Estado    []TaxaRegistro
	Brasil    []TaxaRegistro
}

func (b *taxaComparacaoBruta) normalizar() *TaxaComparacao {
	n := &TaxaComparacao{
		Municipio: b.Entidade,
		Estado:    b.Parent,
		Brasil:    b.Brasil,
	}
	if len(n.Municipio) == 0 {
		n.Municipio = b.Municipio
	}
	if len(n.Estado) == 0 {
		n.Estado = b.Estado
	}
	return n
}

func (b *taxaComparacaoBruta) temDados() bool {
	return len(b.Entidade) > 0 || len(b.Municipio) > 0 || len(b.Brasil) > 0
}

// AnoMaisRecente retorna o maior ano presente nos registros (a API às vezes
// ignora o parâmetro de ano e devolve a série completa)
func (t *TaxaComparacao) AnoMaisRecente() int {
	maior := 0
	for _, grupo := range [][]TaxaRegistro{t.Municipio, t.Estado, t.Brasil} {
		for _, r := range grupo {
			if r.Ano > maior {
				maior = r.Ano
			}
		}
	}
	return maior
}
