package models

// LinhaIDEB é uma linha dos CSVs de indicadores IDEB/SAEB, já normalizada
// (segmento canônico, valor numérico convertido). Imutável após a carga.
type LinhaIDEB struct {
	CodigoIBGE    string
	Municipio     string
	UF            string
	Esfera        string // "municipal" ou "estadual"
	Segmento      string // "anos iniciais", "anos finais", "ensino medio"
	TipoIndicador string // "IDEB", "SAEB", ...
	Ano           int
	Valor         *float64 // nil quando a célula está vazia ou não numérica
}

// EstatisticaBrasil agrega os valores estaduais de um indicador em um ano e
// segmento, servindo de referência nacional nos comparativos.
type EstatisticaBrasil struct {
	TipoIndicador string
	Ano           int
	Segmento      string
	Media         float64
	Mediana       float64
	Desvio        float64
	Minimo        float64
	Maximo        float64
	Quantidade    int
}
