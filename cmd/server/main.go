package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	webAdapter "ledger-reports/internal/adapters/web"
	"ledger-reports/internal/core"
	"ledger-reports/internal/db"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	baseCurrency := os.Getenv("BASE_CURRENCY")
	if baseCurrency == "" {
		baseCurrency = "CZK"
	}

	postings := db.NewPostingStore(pool, baseCurrency, rateFuncFromEnv())
	accounts := db.NewAccountStore(pool)

	reports := core.NewReportingService(postings, accounts, taxConfigFromEnv())

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(reports, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// taxConfigFromEnv builds the tax configuration from CIT_RATE,
// NON_DEDUCTIBLE_ACCOUNTS (comma-separated account prefixes) and
// VAT_PREFIX, starting from the statutory defaults.
func taxConfigFromEnv() core.TaxConfig {
	cfg := core.DefaultTaxConfig()

	if v := os.Getenv("CIT_RATE"); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			log.Fatalf("invalid CIT_RATE %q: %v", v, err)
		}
		cfg.Rate = rate
	}
	if v := os.Getenv("NON_DEDUCTIBLE_ACCOUNTS"); v != "" {
		var prefixes []string
		for _, p := range strings.Split(v, ",") {
			if t := strings.TrimSpace(p); t != "" {
				prefixes = append(prefixes, t)
			}
		}
		cfg.NonDeductiblePrefixes = prefixes
	}
	if v := os.Getenv("VAT_PREFIX"); v != "" {
		cfg.VATPrefix = v
	}
	return cfg
}

// rateFuncFromEnv builds a conversion rate source from CURRENCY_RATES,
// a comma-separated list of CODE=rate pairs (e.g. "EUR=24.755,USD=22.5").
// Unset means the sync collaborator already converted every posting and
// the store passes amounts through unchanged.
func rateFuncFromEnv() core.RateFunc {
	v := os.Getenv("CURRENCY_RATES")
	if v == "" {
		return nil
	}

	rates := make(map[string]decimal.Decimal)
	for _, pair := range strings.Split(v, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, rate, ok := strings.Cut(pair, "=")
		if !ok {
			log.Fatalf("invalid CURRENCY_RATES entry %q: want CODE=rate", pair)
		}
		r, err := decimal.NewFromString(strings.TrimSpace(rate))
		if err != nil {
			log.Fatalf("invalid CURRENCY_RATES rate %q: %v", pair, err)
		}
		rates[strings.TrimSpace(code)] = r
	}
	return core.StaticRates(rates)
}
