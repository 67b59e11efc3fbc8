// Package ideb carrega os datasets de indicadores IDEB/SAEB (CSVs municipal
// e estadual) para tabelas em memória, consultadas pelos geradores de
// relatório. Os dados são imutáveis após a carga.
package ideb

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/prefeitura-rio/app-educacao-relatorios/internal/models"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/utils"
)

// colunas reconhecidas nos CSVs (após lower/trim do cabeçalho)
const (
	colCodigoIBGE = "codigo_ibge"
	colMunicipio  = "indicador_municipio"
	colUF         = "indicador_uf"
	colTipo       = "indicador_tipo_nome"
	colAno        = "ano"
	colSegmento   = "segmento"
	colEsfera     = "esfera"
	colValor      = "valor_numerico"
	colValorAlt   = "valor"
)

// Load lê os dois CSVs de referência e monta o Store. Qualquer falha aqui é
// fatal para o serviço: sem os datasets não há resolução de município nem
// relatório IDEB.
func Load(caminhoMunicipios, caminhoEstados string) (*Store, error) {
	linhasMun, err := lerCSV(caminhoMunicipios)
	if err != nil {
		return nil, fmt.Errorf("dataset municipal %s: %w", caminhoMunicipios, err)
	}
	linhasUF, err := lerCSV(caminhoEstados)
	if err != nil {
		return nil, fmt.Errorf("dataset estadual %s: %w", caminhoEstados, err)
	}
	if len(linhasMun) == 0 {
		return nil, fmt.Errorf("dataset municipal %s: nenhuma linha válida", caminhoMunicipios)
	}
	if len(linhasUF) == 0 {
		return nil, fmt.Errorf("dataset estadual %s: nenhuma linha válida", caminhoEstados)
	}
	return newStore(linhasMun, linhasUF), nil
}

// lerCSV lê um arquivo de indicadores, mapeando colunas pelo cabeçalho.
// O separador é detectado na primeira linha (o arquivo municipal usa vírgula,
// o estadual ponto e vírgula).
func lerCSV(caminho string) ([]models.LinhaIDEB, error) {
	f, err := os.Open(caminho)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sep, err := detectarSeparador(f)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(f)
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	registros, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(registros) < 2 {
		return nil, fmt.Errorf("arquivo sem linhas de dados")
	}

	indice := map[string]int{}
	for i, nome := range registros[0] {
		indice[strings.ToLower(strings.TrimSpace(nome))] = i
	}
	if _, ok := indice[colValor]; !ok {
		// planilha estadual traz a coluna como "valor"
		if alt, ok := indice[colValorAlt]; ok {
			indice[colValor] = alt
		}
	}

	campo := func(registro []string, nome string) string {
		i, ok := indice[nome]
		if !ok || i >= len(registro) {
			return ""
		}
		return strings.TrimSpace(registro[i])
	}

	linhas := make([]models.LinhaIDEB, 0, len(registros)-1)
	for _, registro := range registros[1:] {
		ano, err := strconv.Atoi(campo(registro, colAno))
		if err != nil {
			continue // linha sem ano não entra na tabela
		}
		linha := models.LinhaIDEB{
			CodigoIBGE:    campo(registro, colCodigoIBGE),
			Municipio:     campo(registro, colMunicipio),
			UF:            campo(registro, colUF),
			Esfera:        strings.ToLower(campo(registro, colEsfera)),
			Segmento:      utils.NormalizarSegmento(campo(registro, colSegmento)),
			TipoIndicador: campo(registro, colTipo),
			Ano:           ano,
		}
		if v, err := strconv.ParseFloat(strings.ReplaceAll(campo(registro, colValor), ",", "."), 64); err == nil {
			linha.Valor = &v
		}
		linhas = append(linhas, linha)
	}
	return linhas, nil
}

// detectarSeparador inspeciona a linha de cabeçalho e reposiciona o leitor.
func detectarSeparador(f *os.File) (rune, error) {
	buf := make([]byte, 4096)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return 0, err
	}
	cabecalho := string(buf[:n])
	if i := strings.IndexByte(cabecalho, '\n'); i >= 0 {
		cabecalho = cabecalho[:i]
	}
	if _, err := f.Seek(0, 0); err != nil {
		return 0, err
	}
	if strings.Count(cabecalho, ";") > strings.Count(cabecalho, ",") {
		return ';', nil
	}
	return ',', nil
}
