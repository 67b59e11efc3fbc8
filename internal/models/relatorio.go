package models

import "time"

// RelatorioBundle agrupa os cinco relatórios gerados para um território.
// Arquivos sempre contém exatamente cinco chaves ({slug}_{tipo}.txt), mesmo
// quando uma categoria não tem dados — nesse caso o texto informa a ausência.
type RelatorioBundle struct {
	Municipio  Municipio
	Tipo       string // "municipio" ou "estado"
	GeradoEm   time.Time
	Arquivos   map[string]string // nome do arquivo -> conteúdo
	Relatorios map[string]string // tipo de relatório -> conteúdo
	Dados      map[string]any    // payload numérico estruturado
}

// RelatorioResponse é a resposta JSON do endpoint /gerar
type RelatorioResponse struct {
	Municipio       string            `json:"municipio"`
	UF              string            `json:"uf"`
	IBGE            string            `json:"ibge"`
	Tipo            string            `json:"tipo"`
	GeradoEm        string            `json:"gerado_em"`
	TotalRelatorios int               `json:"total_relatorios"`
	Arquivos        map[string]string `json:"arquivos"`
	Relatorios      map[string]string `json:"relatorios"`
	Dados           map[string]any    `json:"dados,omitempty"`
}
