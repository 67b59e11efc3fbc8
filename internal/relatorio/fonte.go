package relatorio

import (
	"context"

	"github.com/prefeitura-rio/app-educacao-relatorios/internal/qedu"
)

// FonteQEdu é a visão que os geradores têm do cliente QEdu. A interface
// permite substituir a API por dados fixos nos testes.
type FonteQEdu interface {
	Censo(ctx context.Context, ibge string, dependencia int, anos []int) (*qedu.Censo, int)
	Infra(ctx context.Context, ibge string, dependencia int, anos []int) ([]qedu.SecaoInfra, int)
	Aprendizado(ctx context.Context, ibge string, dependencia int, ciclo string) [][]qedu.RegistroAprendizado
	Taxa(ctx context.Context, ibge, ciclo string, dependencia int, anos []int) (*qedu.TaxaComparacao, int)
	TaxaHistorico(ctx context.Context, ibge, ciclo string, dependencia int, anos []int, maxAnos int) map[int]*qedu.TaxaComparacao
}
