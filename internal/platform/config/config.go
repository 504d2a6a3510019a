package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Catalog settings
	CatalogRootGroups []string
	FallbackPriceList string

	// List endpoint default windows. The order/invoice lists and the ledger
	// historically disagree on their defaults, so each one is its own knob.
	OrderListWindowDays   int
	InvoiceListWindowDays int
	LedgerDefaultFilter   string
	LedgerWindowDays      int

	// Voucher types hidden from the ledger when no explicit type is requested.
	LedgerExcludedVoucherTypes []string

	// Order placement defaults
	DefaultOrderShift string

	// Scale ingestion
	ScaleRetentionDays   int
	ScaleCleanupInterval time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "bdf-mobile-backend")
	viper.SetDefault("CATALOG_ROOT_GROUPS", "Finished Goods,Trading")
	viper.SetDefault("FALLBACK_PRICE_LIST", "Standard Selling")
	viper.SetDefault("ORDER_LIST_WINDOW_DAYS", 7)
	viper.SetDefault("INVOICE_LIST_WINDOW_DAYS", 7)
	viper.SetDefault("LEDGER_DEFAULT_FILTER", "This Year")
	viper.SetDefault("LEDGER_WINDOW_DAYS", 30)
	viper.SetDefault("LEDGER_EXCLUDED_VOUCHER_TYPES", "Payment Ledger Entry")
	viper.SetDefault("DEFAULT_ORDER_SHIFT", "Morning")
	viper.SetDefault("SCALE_RETENTION_DAYS", 3)
	viper.SetDefault("SCALE_CLEANUP_INTERVAL", "1h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.CatalogRootGroups = splitList(viper.GetString("CATALOG_ROOT_GROUPS"))
	cfg.FallbackPriceList = viper.GetString("FALLBACK_PRICE_LIST")

	cfg.OrderListWindowDays = viper.GetInt("ORDER_LIST_WINDOW_DAYS")
	cfg.InvoiceListWindowDays = viper.GetInt("INVOICE_LIST_WINDOW_DAYS")
	cfg.LedgerDefaultFilter = viper.GetString("LEDGER_DEFAULT_FILTER")
	cfg.LedgerWindowDays = viper.GetInt("LEDGER_WINDOW_DAYS")
	cfg.LedgerExcludedVoucherTypes = splitList(viper.GetString("LEDGER_EXCLUDED_VOUCHER_TYPES"))
	cfg.DefaultOrderShift = viper.GetString("DEFAULT_ORDER_SHIFT")

	cfg.ScaleRetentionDays = viper.GetInt("SCALE_RETENTION_DAYS")

	cleanupIntervalStr := viper.GetString("SCALE_CLEANUP_INTERVAL")
	cleanupInterval, err := time.ParseDuration(cleanupIntervalStr)
	if err != nil {
		cleanupInterval = time.Hour
		log.Printf("Warning: Invalid value for SCALE_CLEANUP_INTERVAL ('%s'). Defaulting to %s.\n", cleanupIntervalStr, cleanupInterval.String())
	}
	cfg.ScaleCleanupInterval = cleanupInterval

	return cfg, nil
}

// splitList parses a comma separated env value into a trimmed string slice.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
