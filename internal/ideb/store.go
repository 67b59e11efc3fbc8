package ideb

import (
	"math"
	"sort"

	"github.com/prefeitura-rio/app-educacao-relatorios/internal/constants"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/models"
)

// Store mantém as tabelas de indicadores em memória, indexadas por código de
// município e por sigla de UF. Somente leitura após a construção, portanto
// seguro para uso concorrente entre requisições.
type Store struct {
	porMunicipio map[string][]models.LinhaIDEB
	porUF        map[string][]models.LinhaIDEB
	referencia   map[string]models.Municipio
	brasil       map[chaveBrasil]models.EstatisticaBrasil
}

type chaveBrasil struct {
	tipo     string
	ano      int
	segmento string
}

func newStore(linhasMun, linhasUF []models.LinhaIDEB) *Store {
	s := &Store{
		porMunicipio: make(map[string][]models.LinhaIDEB),
		porUF:        make(map[string][]models.LinhaIDEB),
		referencia:   make(map[string]models.Municipio),
	}

	for _, l := range linhasMun {
		if l.CodigoIBGE == "" {
			continue
		}
		s.porMunicipio[l.CodigoIBGE] = append(s.porMunicipio[l.CodigoIBGE], l)
		if _, ok := s.referencia[l.CodigoIBGE]; !ok && l.Municipio != "" {
			s.referencia[l.CodigoIBGE] = models.Municipio{
				IBGE: l.CodigoIBGE,
				Nome: l.Municipio,
				UF:   l.UF,
			}
		}
	}

	for _, l := range linhasUF {
		if l.UF == "" {
			continue
		}
		s.porUF[l.UF] = append(s.porUF[l.UF], l)
	}

	s.brasil = agregarBrasil(linhasUF)
	return s
}

// Municipio resolve a identidade de um território pelo código IBGE.
// Códigos de 2 dígitos são estados e saem da tabela de UFs; códigos de
// município precisam existir no dataset de referência.
func (s *Store) Municipio(codigo string) (models.Municipio, bool) {
	if uf, ok := constants.UFPorCodigo[codigo]; ok {
		return models.Municipio{IBGE: codigo, Nome: uf.Nome, UF: uf.Sigla}, true
	}
	m, ok := s.referencia[codigo]
	return m, ok
}

// LinhasMunicipio retorna as linhas de indicadores de um município.
func (s *Store) LinhasMunicipio(codigo string) []models.LinhaIDEB {
	return s.porMunicipio[codigo]
}

// LinhasEstado retorna as linhas de indicadores de uma UF (pela sigla).
func (s *Store) LinhasEstado(sigla string) []models.LinhaIDEB {
	return s.porUF[sigla]
}

// EstatisticaBrasil retorna o agregado nacional de um indicador/ano/segmento.
func (s *Store) EstatisticaBrasil(tipo string, ano int, segmento string) (models.EstatisticaBrasil, bool) {
	e, ok := s.brasil[chaveBrasil{tipo: tipo, ano: ano, segmento: segmento}]
	return e, ok
}

// agregarBrasil calcula média, mediana, desvio, mínimo e máximo dos valores
// estaduais por (indicador, ano, segmento). É a referência "Brasil" dos
// relatórios, como nos datasets originais.
func agregarBrasil(linhasUF []models.LinhaIDEB) map[chaveBrasil]models.EstatisticaBrasil {
	valores := make(map[chaveBrasil][]float64)
	for _, l := range linhasUF {
		if l.Valor == nil || l.TipoIndicador == "" {
			continue
		}
		k := chaveBrasil{tipo: l.TipoIndicador, ano: l.Ano, segmento: l.Segmento}
		valores[k] = append(valores[k], *l.Valor)
	}

	agregados := make(map[chaveBrasil]models.EstatisticaBrasil, len(valores))
	for k, vs := range valores {
		sort.Float64s(vs)
		agregados[k] = models.EstatisticaBrasil{
			TipoIndicador: k.tipo,
			Ano:           k.ano,
			Segmento:      k.segmento,
			Media:         media(vs),
			Mediana:       mediana(vs),
			Desvio:        desvioPadrao(vs),
			Minimo:        vs[0],
			Maximo:        vs[len(vs)-1],
			Quantidade:    len(vs),
		}
	}
	return agregados
}

func media(vs []float64) float64 {
	soma := 0.0
	for _, v := range vs {
		soma += v
	}
	return soma / float64(len(vs))
}

// mediana assume o slice já ordenado
func mediana(vs []float64) float64 {
	n := len(vs)
	if n%2 == 1 {
		return vs[n/2]
	}
	return (vs[n/2-1] + vs[n/2]) / 2
}

// desvioPadrao amostral (divisor n-1)
func desvioPadrao(vs []float64) float64 {
	if len(vs) < 2 {
		return 0
	}
	m := media(vs)
	soma := 0.0
	for _, v := range vs {
		d := v - m
		soma += d * d
	}
	return math.Sqrt(soma / float64(len(vs)-1))
}
