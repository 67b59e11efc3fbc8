package models

// Municipio representa a identidade de um território (município ou estado)
// resolvida a partir dos dados de referência carregados na inicialização.
type Municipio struct {
	IBGE string `json:"ibge"`
	Nome string `json:"municipio"`
	UF   string `json:"uf"`
}

// MunicipioResponse é a resposta do endpoint /municipio
type MunicipioResponse struct {
	Municipio string `json:"municipio"`
	UF        string `json:"uf"`
	IBGE      string `json:"ibge"`
}

// ErroResponse é o corpo padrão de erro da API
type ErroResponse struct {
	Erro string `json:"erro"`
	IBGE string `json:"ibge,omitempty"`
}
