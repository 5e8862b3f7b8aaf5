package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/decentraestate/marketd/internal/api"
	"github.com/decentraestate/marketd/internal/catalog"
	"github.com/decentraestate/marketd/internal/catalog/remote"
	"github.com/decentraestate/marketd/internal/configs"
	"github.com/decentraestate/marketd/internal/market"
	"github.com/decentraestate/marketd/internal/portfolio"
	"github.com/decentraestate/marketd/internal/seed"
	"github.com/decentraestate/marketd/internal/storage"
	"github.com/decentraestate/marketd/internal/valuation"
	"github.com/decentraestate/marketd/internal/valuation/mock"
	"github.com/decentraestate/marketd/internal/valuation/openai"
	"github.com/joho/godotenv"
)

var (
	flagconf string

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   true,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
)

func init() {
	flag.StringVar(&flagconf, "conf", "", "config path, eg: -conf config.json")
}

func main() {
	flag.Parse()

	// Load .env before reading overrides; missing file is fine.
	_ = godotenv.Load()

	config := configs.Default()
	if flagconf != "" {
		configFile, err := os.ReadFile(flagconf)
		if err != nil {
			log.Error("Error reading config file", "err", err)
			return
		}
		if err := json.Unmarshal(configFile, config); err != nil {
			log.Error("Error parsing config file", "err", err)
			return
		}
	}
	config.OverrideFromEnv()

	log.Debug("Loaded config", "addr", config.Server.Addr)

	ctx := context.Background()

	// Optional persistence. Without a connection string everything runs
	// in-memory, which is how the demo is meant to be used.
	var storager *storage.PostgresStorage
	if config.Database.ConnStr != "" {
		s, err := storage.NewPostgresStorage(config.Database.ConnStr)
		if err != nil {
			log.Error("Error creating storage", "err", err)
			return
		}
		defer s.Close()
		storager = s

		log.Debug("init storager")
	}

	// Build the property catalog. A configured remote endpoint wins, then
	// the persisted snapshot; the bundled seed data always backstops both.
	sources := []catalog.Source{}
	if config.Catalog.ListingsURL != "" {
		sources = append(sources, remote.NewSource(config.Catalog.ListingsURL))
	}
	if storager != nil {
		sources = append(sources, storager)
	}
	sources = append(sources, catalog.NewStaticSource(seed.Properties()))

	cat, err := catalog.Load(ctx, sources, log)
	if err != nil {
		log.Error("Error loading catalog", "err", err)
		return
	}

	log.Debug("init catalog", "properties", len(cat.Properties()))

	holdings := seed.Holdings()
	var sink portfolio.Sink
	var restored []portfolio.ClaimReceipt
	if storager != nil {
		if err := storager.SaveProperties(ctx, cat.Properties()); err != nil {
			log.Error("Error saving property snapshot", "err", err)
			return
		}

		stored, err := storager.GetHoldings(ctx)
		if err != nil {
			log.Error("Error loading holdings", "err", err)
			return
		}
		if len(stored) > 0 {
			holdings = stored
		} else if err := storager.SaveHoldings(ctx, holdings); err != nil {
			log.Error("Error seeding holdings", "err", err)
			return
		}

		restored, err = storager.GetClaimReceipts(ctx)
		if err != nil {
			log.Error("Error loading claim receipts", "err", err)
			return
		}
		sink = storager
	}

	provider := buildProvider(config)

	gateway := valuation.NewGateway(provider, log)

	log.Debug("init gateway")

	ledger, err := portfolio.NewLedger(holdings, cat, configs.Duration(config.Claims.SettleDelay, 0), sink, log)
	if err != nil {
		log.Error("Error creating ledger", "err", err)
		return
	}
	if len(restored) > 0 {
		ledger.RestoreReceipts(restored)
	}

	log.Debug("init ledger", "receipts", len(restored))

	book := market.NewBook(seed.Offers(), seed.History())

	server := api.NewServer(cat, ledger, book, gateway, log)

	log.Info("listening", "addr", config.Server.Addr)
	if err := http.ListenAndServe(config.Server.Addr, server.Router()); err != nil {
		log.Error("Server error", "err", err)
	}
}

// buildProvider selects the live analyst when an API key is configured and
// the canned one otherwise, mirroring the front end's capability check.
func buildProvider(config *configs.Config) valuation.Provider {
	if config.AIConfig.APIKey != "" {
		log.Debug("init analyzer", "model", config.AIConfig.ModelType)
		return openai.NewProvider(config.AIConfig.APIKey, config.AIConfig.ModelType)
	}

	log.Debug("init analyzer", "model", "mock")
	return mock.NewProvider(
		configs.Duration(config.AIConfig.ValuateLatency, 0),
		configs.Duration(config.AIConfig.DocumentLatency, 0),
	)
}
