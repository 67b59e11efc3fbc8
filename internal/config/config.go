// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP do serviço (default: 8080)
//
// ## QEdu
//   - QEDU_BASE_URL: URL base da API QEdu (default: https://api.qedu.org.br/v1)
//   - QEDU_TIMEOUT_SECONDS: Timeout por requisição em segundos (default: 30)
//   - QEDU_RETRIES: Tentativas por requisição (default: 3)
//   - QEDU_CACHE_MAX_SIZE: Tamanho máximo do cache de respostas (default: 1000)
//   - QEDU_CACHE_TTL_MINUTES: TTL do cache de respostas em minutos (default: 30)
//
// ## Datasets IDEB
//   - IDEB_MUNICIPIOS_CSV: Caminho do CSV municipal (default: data/ideb_municipios.csv)
//   - IDEB_ESTADOS_CSV: Caminho do CSV estadual (default: data/ideb_estados.csv)
//
// ## Saída
//   - OUTPUT_DIR: Diretório para gravar os TXT gerados (vazio = não grava)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita tracing OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint do collector (default: localhost:4317)
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// QEdu configuration
	QEduBaseURL         string
	QEduTimeout         time.Duration
	QEduRetries         int
	QEduCacheMaxSize    int
	QEduCacheTTLMinutes int

	// Datasets IDEB
	IDEBMunicipiosCSV string
	IDEBEstadosCSV    string

	// Saída em disco (opcional)
	OutputDir string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		// QEdu configuration
		QEduBaseURL:         getEnv("QEDU_BASE_URL", "https://api.qedu.org.br/v1"),
		QEduTimeout:         time.Duration(getEnvInt("QEDU_TIMEOUT_SECONDS", 30)) * time.Second,
		QEduRetries:         getEnvInt("QEDU_RETRIES", 3),
		QEduCacheMaxSize:    getEnvInt("QEDU_CACHE_MAX_SIZE", 1000),
		QEduCacheTTLMinutes: getEnvInt("QEDU_CACHE_TTL_MINUTES", 30),

		// Datasets IDEB
		IDEBMunicipiosCSV: getEnv("IDEB_MUNICIPIOS_CSV", "data/ideb_municipios.csv"),
		IDEBEstadosCSV:    getEnv("IDEB_ESTADOS_CSV", "data/ideb_estados.csv"),

		OutputDir: getEnv("OUTPUT_DIR", ""),

		// Tracing configuration
		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

// QEduCacheTTL converte o TTL configurado para time.Duration
func (c *Config) QEduCacheTTL() time.Duration {
	return time.Duration(c.QEduCacheTTLMinutes) * time.Minute
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
