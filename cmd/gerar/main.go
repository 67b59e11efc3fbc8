// Gera os cinco relatórios educacionais de um território direto em disco,
// sem subir o servidor HTTP.
//
// Uso: gerar -ibge 2304400 [-output ./relatorios]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/prefeitura-rio/app-educacao-relatorios/internal/config"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/ideb"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/qedu"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/relatorio"
)

var (
	codigoIBGE = flag.String("ibge", "", "Código IBGE (7 dígitos para município, 2 dígitos para estado)")
	outputDir  = flag.String("output", "", "Diretório de saída (default: OUTPUT_DIR ou ./relatorios)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Uso: %s -ibge <código> [opções]\n\nOpções:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *codigoIBGE == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.LoadConfig()

	dir := *outputDir
	if dir == "" {
		dir = cfg.OutputDir
	}
	if dir == "" {
		dir = "relatorios"
	}

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

	gerador := relatorio.NewGerador(cliente, store, clockwork.NewRealClock(), dir)

	fmt.Printf("\n🔄 Gerando relatórios para IBGE %s...\n", *codigoIBGE)
	bundle, err := gerador.Gerar(context.Background(), *codigoIBGE)
	if err != nil {
		log.Fatalf("Erro ao gerar relatórios: %v", err)
	}

	fmt.Printf("✅ %s (%s) - %d arquivos em %s/%s\n",
		bundle.Municipio.Nome, bundle.Municipio.UF, len(bundle.Arquivos), dir, *codigoIBGE)
	for nome := range bundle.Arquivos {
		fmt.Printf("   📄 %s\n", nome)
	}
}
