package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/martgen/internal/config"
	"github.com/GlebRadaev/martgen/internal/domain"
	"github.com/GlebRadaev/martgen/internal/export"
	"github.com/GlebRadaev/martgen/internal/generator"
	"github.com/GlebRadaev/martgen/internal/generator/verticals"
	"github.com/GlebRadaev/martgen/internal/pg"
	"github.com/GlebRadaev/martgen/internal/repo"
	"github.com/GlebRadaev/martgen/pkg/logger"
)

type ApplicationI interface {
	Run(ctx context.Context) error
}

type Application struct {
	cfg *config.Config
}

func New() *Application {
	return &Application{}
}

// Run executes one full generation: build the dataset, export it to CSV
// and, when a DSN is configured, load it into PostgreSQL.
func (a *Application) Run(ctx context.Context) error {
	cfg := config.New()
	a.cfg = cfg

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	zap.L().Info("starting generation",
		zap.Int64("seed", cfg.Seed),
		zap.Int("consumers", cfg.Consumers),
		zap.Int("sellers", cfg.Sellers),
		zap.Int("commodities", cfg.Commodities),
		zap.Int("orders", cfg.Orders),
	)

	pipeline := generator.New(verticals.NewFileStore(cfg.VerticalsFile), generator.Params{
		Consumers:    cfg.Consumers,
		Sellers:      cfg.Sellers,
		Commodities:  cfg.Commodities,
		Orders:       cfg.Orders,
		AddressesMin: cfg.AddressesMin,
		AddressesMax: cfg.AddressesMax,
		CardsMin:     cfg.CardsMin,
		CardsMax:     cfg.CardsMax,
		MaxItems:     cfg.ItemsPerOrder,
		PriceMin:     cfg.PriceMin,
		PriceMax:     cfg.PriceMax,
		LookbackDays: cfg.LookbackDays,
		Now:          time.Now(),
		Rand:         rand.New(rand.NewSource(cfg.Seed)),
	})

	ds, err := pipeline.Run(ctx)
	if err != nil {
		zap.L().Error("generation failed", zap.Error(err))
		return fmt.Errorf("can't generate dataset: %w", err)
	}
	zap.L().Info("dataset generated",
		zap.Int("users", len(ds.Users)),
		zap.Int("addresses", len(ds.Addresses)),
		zap.Int("cards", len(ds.Cards)),
		zap.Int("commodities", len(ds.Commodities)),
		zap.Int("orders", len(ds.Orders)),
		zap.Int("order_lines", len(ds.OrderLines)),
		zap.Int("transactions", len(ds.Transactions)),
		zap.Int("reviews", len(ds.Reviews)),
		zap.Bool("degraded_catalog", ds.DegradedCatalog),
	)

	if err := export.NewCSV(cfg.OutputDir).Export(ctx, ds); err != nil {
		zap.L().Error("export failed", zap.Error(err))
		return fmt.Errorf("can't export dataset: %w", err)
	}
	zap.L().Info("export finished", zap.String("dir", cfg.OutputDir))

	if cfg.Database != "" {
		if err := a.loadDatabase(ctx, ds); err != nil {
			return err
		}
	}

	zap.L().Info("all done")
	return nil
}

func (a *Application) loadDatabase(ctx context.Context, ds *domain.Dataset) error {
	pool, err := pg.New(ctx, a.cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	defer pool.Close()

	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	if err := repo.New(pool).Load(ctx, ds); err != nil {
		zap.L().Error("database load failed", zap.Error(err))
		return fmt.Errorf("can't load dataset: %w", err)
	}
	zap.L().Info("database load finished")
	return nil
}
