package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/api/handlers"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/config"
	middlewares "github.com/prefeitura-rio/app-educacao-relatorios/internal/middleware"
	"github.com/prefeitura-rio/app-educacao-relatorios/internal/relatorio"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cfg *config.Config, gerador *relatorio.Gerador) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	if cfg.TracingEnabled {
		r.Use(middlewares.RequestTiming())
	}

	healthHandler := handlers.NewHealthHandler()
	relatorioHandler := handlers.NewRelatorioHandler(gerador)
	municipioHandler := handlers.NewMunicipioHandler(gerador)

	r.GET("/", healthHandler.Health)
	r.GET("/health", healthHandler.Health)

	r.GET("/gerar", relatorioHandler.GerarQuery)
	r.GET("/gerar/:ibge", relatorioHandler.GerarPath)
	r.POST("/gerar/:ibge", relatorioHandler.GerarPath)

	r.GET("/relatorio", relatorioHandler.RelatorioIndividual)

	r.GET("/municipio", municipioHandler.PorQuery)
	r.GET("/municipio/:ibge", municipioHandler.PorPath)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
