// seed prepara el almacenamiento del marketplace: crea índices/tablas y las diez categorías raíz.
//
// Uso: go run ./cmd/seed [-demo]
// Con -demo agrega una empresa de ejemplo (Acme Textiles).
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/application/usecase"
	"github.com/jhoicas/textile-market/internal/infrastructure/store"
	"github.com/jhoicas/textile-market/pkg/config"
	"github.com/jhoicas/textile-market/pkg/logger"
)

func main() {
	demo := flag.Bool("demo", false, "crear datos de ejemplo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.Store.Driver).
		Msg("iniciando seed")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento")
		}
	}()

	if err := st.EnsureSchema(ctx); err != nil {
		log.Error().Err(err).Msg("crear esquema")
		return
	}

	uc := st.UseCases(log, cfg.Security.BcryptCost)
	created, err := uc.Categories.SeedRoots(ctx)
	if err != nil {
		log.Error().Err(err).Msg("sembrar categorías raíz")
		return
	}
	log.Info().Int("creadas", len(created)).Msg("categorías raíz listas")

	if *demo {
		if err := seedDemo(ctx, uc, log); err != nil {
			log.Error().Err(err).Msg("datos de ejemplo")
			return
		}
	}
}

func seedDemo(ctx context.Context, uc *usecase.Module, log *logger.Logger) error {
	company, err := uc.Companies.Create(ctx, dto.CreateCompanyRequest{
		Name:            "Acme Textiles",
		BusinessType:    "Manufacturer",
		EstablishedYear: 1990,
		Address: dto.AddressDTO{
			Street:  "1 Mill Rd",
			City:    "Surat",
			State:   "Gujarat",
			Pincode: "395001",
		},
		AnnualTurnover: decimal.Zero,
		ContactInfo: dto.ContactInfoDTO{
			ContactPerson: "A",
			PhoneNumber:   "9876543210",
			Email:         "a@x.com",
		},
	})
	if err != nil {
		return err
	}
	log.Info().
		Str("company_id", company.ID).
		Bool("is_verified", company.IsVerified).
		Float64("rating", company.Rating).
		Msg("empresa de ejemplo creada")
	return nil
}
