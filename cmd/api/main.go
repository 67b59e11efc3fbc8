package main

import (
	"log"

	"github.com/jonboulle/clockwork"

	_ "github.com/prefeitura-rio/app-educacao-relatorios/docs"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/api/routes"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/config"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/ideb"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/observability"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/qedu"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/relatorio"
)

// @title           Relatórios Educacionais API
// @version         2.0
// @description     API que gera relatórios educacionais (SAEB, infraestrutura, censo escolar, IDEB e taxas de rendimento) para municípios e estados brasileiros a partir de dados públicos do QEdu e do INEP
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      services.staging.app.dados.rio/app-educacao-relatorios

func main() {

	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	store, err := ideb.Load(cfg.IDEBMunicipiosCSV, cfg.IDEBEstadosCSV)
	if err != nil {
		log.Fatalf("Erro ao carregar datasets IDEB: %v", err)
	}

	cliente := qedu.NewClient(qedu.Options{
		BaseURL:         cfg.QEduBaseURL,
		Timeout:         cfg.QEduTimeout,
		Tentativas:      cfg.QEduRetries,
		CacheCapacidade: cfg.QEduCacheMaxSize,
		CacheTTL:        cfg.QEduCacheTTL(),
	})

	gerador := relatorio.NewGerador(cliente, store, clockwork.NewRealClock(), cfg.OutputDir)

	r := routes.SetupRouter(cfg, gerador)

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	err = r.Run(":" + cfg.ServerPort)
	if err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
