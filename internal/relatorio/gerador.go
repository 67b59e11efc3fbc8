// Package relatorio gera os cinco relatórios educacionais em texto de um
// município ou estado: aprendizado (SAEB), infraestrutura, censo escolar,
// IDEB e taxas de rendimento.
package relatorio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/prefeitura-rio/app-educacao-relatorios/internal/constants"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/ideb"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/models"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/utils"
)

// ErrMunicipioNaoEncontrado indica que o código IBGE não existe nos dados de
// referência.
var ErrMunicipioNaoEncontrado = errors.New("município não encontrado")

// Gerador orquestra a produção do pacote de relatórios de um território.
type Gerador struct {
	fonte     FonteQEdu
	store     *ideb.Store
	anos      *AnoResolver
	clock     clockwork.Clock
	outputDir string
}

// NewGerador cria o gerador. outputDir vazio desliga a escrita em disco.
func NewGerador(fonte FonteQEdu, store *ideb.Store, clock clockwork.Clock, outputDir string) *Gerador {
	return &Gerador{
		fonte:     fonte,
		store:     store,
		anos:      NewAnoResolver(clock),
		clock:     clock,
		outputDir: outputDir,
	}
}

// Gerar produz os cinco relatórios do território em paralelo e devolve o
// pacote completo. Categoria sem dados gera texto degradado, nunca ausência
// de chave.
func (g *Gerador) Gerar(ctx context.Context, ibge string) (*models.RelatorioBundle, error) {
	municipio, ok := g.store.Municipio(ibge)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMunicipioNaoEncontrado, ibge)
	}

	tipo := "municipio"
	if constants.IsEstado(ibge) {
		tipo = "estado"
	}

	geradoEm := g.clock.Now()
	relatorios := make(map[string]string, len(constants.TiposRelatorio))
	var mu sync.Mutex

	grupo, gctx := errgroup.WithContext(ctx)
	for _, tipoRel := range constants.TiposRelatorio {
		grupo.Go(func() error {
			texto := g.gerarUm(gctx, tipoRel, municipio, geradoEm)
			mu.Lock()
			relatorios[tipoRel] = texto
			mu.Unlock()
			return nil
		})
	}
	if err := grupo.Wait(); err != nil {
		return nil, err
	}

	slug := utils.SlugTerritorio(municipio.Nome)
	arquivos := make(map[string]string, len(relatorios))
	for tipoRel, texto := range relatorios {
		arquivos[fmt.Sprintf("%s_%s.txt", slug, tipoRel)] = texto
	}

	// dados estruturados reaproveitam o cache das consultas acima
	dados := coletarDadosEstruturados(ctx, g.fonte, g.anos, ibge, municipio.Nome, municipio.UF, tipo)

	if g.outputDir != "" {
		g.escreverArquivos(ibge, arquivos)
	}

	return &models.RelatorioBundle{
		Municipio:  municipio,
		Tipo:       tipo,
		GeradoEm:   geradoEm,
		Arquivos:   arquivos,
		Relatorios: relatorios,
		Dados:      dados,
	}, nil
}

// GerarUm produz um único relatório por tipo. O tipo deve ser um dos cinco
// suportados.
func (g *Gerador) GerarUm(ctx context.Context, ibge, tipoRel string) (*models.RelatorioBundle, string, error) {
	if !constants.TipoRelatorioValido(tipoRel) {
		return nil, "", fmt.Errorf("tipo de relatório inválido: %s", tipoRel)
	}
	municipio, ok := g.store.Municipio(ibge)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrMunicipioNaoEncontrado, ibge)
	}

	tipo := "municipio"
	if constants.IsEstado(ibge) {
		tipo = "estado"
	}

	geradoEm := g.clock.Now()
	texto := g.gerarUm(ctx, tipoRel, municipio, geradoEm)

	bundle := &models.RelatorioBundle{
		Municipio:  municipio,
		Tipo:       tipo,
		GeradoEm:   geradoEm,
		Relatorios: map[string]string{tipoRel: texto},
	}
	return bundle, texto, nil
}

// Municipio resolve só a identidade, sem gerar nada.
func (g *Gerador) Municipio(ibge string) (models.Municipio, bool) {
	return g.store.Municipio(ibge)
}

func (g *Gerador) gerarUm(ctx context.Context, tipoRel string, municipio models.Municipio, geradoEm time.Time) string {
	switch tipoRel {
	case "aprendizado":
		return gerarAprendizado(ctx, g.fonte, municipio.IBGE, municipio.Nome, geradoEm)
	case "infra":
		return gerarInfra(ctx, g.fonte, g.anos, municipio.IBGE, municipio.Nome, geradoEm)
	case "censo":
		return gerarCenso(ctx, g.fonte, g.anos, municipio.IBGE, municipio.Nome, geradoEm)
	case "ideb":
		return gerarIDEB(g.store, municipio.IBGE, municipio.Nome, municipio.UF, geradoEm)
	case "taxa_rendimento":
		return gerarTaxa(ctx, g.fonte, g.anos, municipio.IBGE, municipio.Nome, geradoEm)
	}
	return ""
}

// escreverArquivos grava os textos em {outputDir}/{ibge}/. Falha de escrita
// não derruba a geração, só é registrada.
func (g *Gerador) escreverArquivos(ibge string, arquivos map[string]string) {
	dir := filepath.Join(g.outputDir, ibge)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("relatorio: erro ao criar diretório %s: %v", dir, err)
		return
	}
	for nome, texto := range arquivos {
		if err := os.WriteFile(filepath.Join(dir, nome), []byte(texto), 0o644); err != nil {
			log.Printf("relatorio: erro ao gravar %s: %v", nome, err)
		}
	}
}
