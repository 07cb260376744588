package main

import (
	"log"

	httpapi "city-explorer/internal/api/http"
	"city-explorer/internal/config"
	"city-explorer/internal/service"
	"city-explorer/internal/storage"
)

func main() {
	cfg := config.Load()

	catalog, err := storage.LoadCatalog(cfg.CatalogPath, cfg.CityFilter)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}

	ledger := newLedger(cfg)

	var publisher service.RatingPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, "ratings")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	var board service.LeaderboardStore
	if cfg.RedisAddr != "" {
		rdb := config.MustInitRedis(cfg.RedisAddr)
		defer rdb.Close()
		board = storage.NewLeaderboard(rdb)
	}

	planner := service.NewPlannerService(catalog, nil)
	ledgerSvc := service.NewLedgerService(catalog, ledger, publisher)
	analytics := service.NewAnalyticsService(catalog, board, ledger)
	qr := service.DefaultQRGenerator{BaseURL: cfg.PublicURL}

	handler := httpapi.NewHandler(catalog, planner, ledgerSvc, analytics, qr)
	httpapi.StartServer(":"+cfg.AppPort, httpapi.NewRouter(handler))
}

func newLedger(cfg *config.Config) service.RatingLedger {
	switch cfg.LedgerBackend {
	case "postgres":
		db := config.MustInitPostgres()
		ledger := storage.NewPostgresLedger(db)
		if err := ledger.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		return ledger
	case "sheet":
		if cfg.SheetURL == "" {
			log.Fatal("SHEET_URL must be set for the sheet ledger backend")
		}
		return storage.NewSheetLedger(cfg.SheetURL, nil)
	case "csv":
		return storage.NewCSVLedger(cfg.LedgerCSVPath)
	default:
		log.Fatalf("Unknown ledger backend %q", cfg.LedgerBackend)
		return nil
	}
}
