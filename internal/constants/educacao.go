package constants

// TiposRelatorio contém os cinco tipos de relatório gerados pelo sistema
var TiposRelatorio = []string{
	"aprendizado",
	"infra",
	"censo",
	"ideb",
	"taxa_rendimento",
}

// TipoRelatorioValido verifica se o tipo informado é um dos cinco suportados
func TipoRelatorioValido(tipo string) bool {
	for _, t := range TiposRelatorio {
		if t == tipo {
			return true
		}
	}
	return false
}

// Dependências administrativas usadas nas consultas à API QEdu
const (
	DependenciaTodas     = 0
	DependenciaFederal   = 1
	DependenciaEstadual  = 2
	DependenciaMunicipal = 3
	DependenciaPrivada   = 4
	DependenciaPublica   = 5
)

// Ciclo identifica uma etapa de ensino na API QEdu
type Ciclo struct {
	ID   string
	Nome string
}

// Ciclos na ordem em que aparecem nos relatórios
var Ciclos = []Ciclo{
	{"AI", "Anos Iniciais (1º ao 5º)"},
	{"AF", "Anos Finais (6º ao 9º)"},
	{"EM", "Ensino Médio"},
}

// Disciplina identifica uma disciplina avaliada pelo SAEB
type Disciplina struct {
	ID   string
	Nome string
}

var Disciplinas = []Disciplina{
	{"lp", "Língua Portuguesa"},
	{"mt", "Matemática"},
}

// Nivel identifica um nível de proficiência SAEB
type Nivel struct {
	ID   string
	Nome string
}

// Niveis na ordem de exibição; "adequado" é derivado (proficiente + avançado)
var Niveis = []Nivel{
	{"adequado", "Adequado (Proficiente + Avançado)"},
	{"avancado", "Avançado"},
	{"proficiente", "Proficiente"},
	{"basico", "Básico"},
	{"insuficiente", "Insuficiente"},
}

// ItensInfraRelevantes são os indicadores de infraestrutura destacados no relatório
var ItensInfraRelevantes = []string{
	"Biblioteca*",
	"Láb. Informática",
	"Láb. Ciências",
	"Sala de Leitura",
	"Quadra de Esportes",
	"Internet",
	"Banda Larga",
}

// CampoMatricula mapeia um campo do censo para o rótulo da etapa de ensino
type CampoMatricula struct {
	Campo string
	Nome  string
}

var CamposMatricula = []CampoMatricula{
	{"matriculas_creche", "Creche"},
	{"matriculas_pre_escolar", "Pré-Escola"},
	{"matriculas_anos_iniciais", "Anos Iniciais (1º ao 5º)"},
	{"matriculas_anos_finais", "Anos Finais (6º ao 9º)"},
	{"matriculas_ensino_medio", "Ensino Médio"},
	{"matriculas_eja", "EJA"},
	{"matriculas_educacao_especial", "Educação Especial"},
}

// CampoSerie mapeia um campo do censo para série/ano e ciclo
type CampoSerie struct {
	Campo string
	Serie string
	Ciclo string
}

var CamposSeries = []CampoSerie{
	{"matriculas_1ano", "1º Ano", "Anos Iniciais"},
	{"matriculas_2ano", "2º Ano", "Anos Iniciais"},
	{"matriculas_3ano", "3º Ano", "Anos Iniciais"},
	{"matriculas_4ano", "4º Ano", "Anos Iniciais"},
	{"matriculas_5ano", "5º Ano", "Anos Iniciais"},
	{"matriculas_6ano", "6º Ano", "Anos Finais"},
	{"matriculas_7ano", "7º Ano", "Anos Finais"},
	{"matriculas_8ano", "8º Ano", "Anos Finais"},
	{"matriculas_9ano", "9º Ano", "Anos Finais"},
}

// SegmentosIDEB são os segmentos (já normalizados) presentes nos CSVs de IDEB
var SegmentosIDEB = []string{"anos iniciais", "anos finais", "ensino medio"}

// SegmentosDisplay mapeia segmento normalizado para o rótulo de exibição
var SegmentosDisplay = map[string]string{
	"anos iniciais": "ANOS INICIAIS",
	"anos finais":   "ANOS FINAIS",
	"ensino medio":  "ENSINO MEDIO",
}
