// Command seeddemo loads a small demo crew and catalog into the database so
// the UI has something to show on a fresh install. Safe to re-run: it refuses
// to touch a database that already has data.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/config"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/infra"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/repository"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DataPath).Msg("failed to open database")
	}

	ctx := context.Background()
	crewRepo := repository.NewCrewRepository(db)
	productRepo := repository.NewProductRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	existing, err := crewRepo.List(ctx, true)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read crew")
	}
	if len(existing) > 0 {
		log.Warn().Int("crew", len(existing)).Msg("database already seeded, nothing to do")
		return
	}

	crew := []struct {
		name, rank, currency string
	}{
		{"J. Kowalski", "Master", model.CurrencyEUR},
		{"A. Fernandes", "Ch. Off", model.CurrencyEUR},
		{"R. Santos", "2nd Off", model.CurrencyUSD},
		{"M. Petrov", "Ch. Eng", model.CurrencyEUR},
		{"D. Cruz", "2nd Eng", model.CurrencyUSD},
		{"L. Reyes", "Cook", model.CurrencyUSD},
		{"P. Villanueva", "A.B", model.CurrencyUSD},
		{"S. Domingo", "O.S", model.CurrencyUSD},
	}
	for _, m := range crew {
		member := &model.CrewMember{
			ID: uuid.New(), Name: m.name, Rank: m.rank, IsActive: true, Currency: m.currency,
		}
		if err := crewRepo.Create(ctx, member); err != nil {
			log.Fatal().Err(err).Str("name", m.name).Msg("failed to seed crew member")
		}
	}

	products := []struct {
		name, category, unitType string
		price                    string
		packSize, initial        int
	}{
		{"Marlboro Red", "Cigarettes", "carton", "38.00", 10, 50},
		{"Camel Blue", "Cigarettes", "carton", "36.50", 10, 30},
		{"Coca-Cola 330ml", "Soft Drinks", "tray", "9.60", 24, 40},
		{"Fanta Orange 330ml", "Soft Drinks", "tray", "9.20", 24, 25},
		{"Still Water 1.5L", "Water", "pack", "3.00", 6, 100},
		{"Sparkling Water 0.5L", "Water", "pack", "4.20", 12, 60},
		{"Peanuts 200g", "Snacks", "pcs", "2.10", 1, 48},
		{"Chocolate Bar", "Snacks", "pcs", "1.50", 1, 72},
		{"Instant Coffee 200g", "Other", "pcs", "6.80", 1, 24},
	}
	for _, p := range products {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			log.Fatal().Err(err).Str("name", p.name).Msg("bad demo price")
		}
		prod := &model.Product{
			ID: uuid.New(), Name: p.name, Category: p.category, Price: price,
			UnitType: p.unitType, PackSize: p.packSize, InitialStock: p.initial,
		}
		if err := productRepo.Create(ctx, prod); err != nil {
			log.Fatal().Err(err).Str("name", p.name).Msg("failed to seed product")
		}
	}

	// Get creates the default settings row as a side effect.
	if _, err := settingsRepo.Get(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize settings")
	}

	log.Info().Int("crew", len(crew)).Int("products", len(products)).Msg("demo data seeded")
}
