package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Seed          int64   `env:"SEED"            envDefault:"42"`
	Consumers     int     `env:"NUM_CONSUMERS"   envDefault:"10000"`
	Sellers       int     `env:"NUM_SELLERS"     envDefault:"1000"`
	Commodities   int     `env:"NUM_COMMODITIES" envDefault:"50000"`
	Orders        int     `env:"NUM_ORDERS"      envDefault:"100000"`
	AddressesMin  int     `env:"ADDRESSES_MIN"   envDefault:"1"`
	AddressesMax  int     `env:"ADDRESSES_MAX"   envDefault:"3"`
	CardsMin      int     `env:"CARDS_MIN"       envDefault:"1"`
	CardsMax      int     `env:"CARDS_MAX"       envDefault:"3"`
	ItemsPerOrder int     `env:"ITEMS_PER_ORDER" envDefault:"5"`
	PriceMin      float64 `env:"PRICE_MIN"       envDefault:"5.0"`
	PriceMax      float64 `env:"PRICE_MAX"       envDefault:"2000.0"`
	LookbackDays  int     `env:"LOOKBACK_DAYS"   envDefault:"365"`
	OutputDir     string  `env:"OUTPUT_DIR"      envDefault:"csv_output"`
	VerticalsFile string  `env:"VERTICALS_FILE"  envDefault:"verticals_master.csv"`
	Database      string  `env:"DATABASE_URI"    envDefault:""`
	LogLvl        string  `env:"LOG_LVL"         envDefault:"info"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.Int64Var(&cfg.Seed, "s", cfg.Seed, "random seed for the run")
	flag.IntVar(&cfg.Orders, "n", cfg.Orders, "target number of orders")
	flag.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "directory for exported csv files")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN (empty skips the load step)")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	if cfg.AddressesMin < 1 {
		cfg.AddressesMin = 1
	}
	if cfg.AddressesMax < cfg.AddressesMin {
		cfg.AddressesMax = cfg.AddressesMin
	}
	if cfg.CardsMin < 1 {
		cfg.CardsMin = 1
	}
	if cfg.CardsMax < cfg.CardsMin {
		cfg.CardsMax = cfg.CardsMin
	}
	if cfg.ItemsPerOrder < 1 {
		cfg.ItemsPerOrder = 1
	}

	return cfg
}
