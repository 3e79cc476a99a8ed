package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appestoque "github.com/almoxeletrico/estoque-api/internal/application/estoque"
	appmaterial "github.com/almoxeletrico/estoque-api/internal/application/material"
	"github.com/almoxeletrico/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/almoxeletrico/estoque-api/internal/interfaces/http"
	"github.com/almoxeletrico/estoque-api/pkg/config"
	"github.com/almoxeletrico/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	materialUC := appmaterial.NewUseCase(materialRepo, log)
	registrarUC := appestoque.NewRegistrarMovimentacaoUseCase(movRepo, materialRepo, log)
	consultaUC := appestoque.NewConsultaUseCase(movRepo)
	saldoUC := appestoque.NewSaldoUseCase(movRepo)
	conciliacaoUC := appestoque.NewConciliacaoUseCase(movRepo)
	inventarioUC := appestoque.NewInventarioUseCase(txRunner, materialRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialUC:  materialUC,
		Registrar:   registrarUC,
		Consulta:    consultaUC,
		Saldo:       saldoUC,
		Conciliacao: conciliacaoUC,
		Inventario:  inventarioUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
