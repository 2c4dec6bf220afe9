// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP         HTTP
	Log          Log
	Dynamo       Dynamo
	Report       Report
	Directory    Directory
	Payments     Payments
	Storage      Storage
	CustomFields CustomFields
	Search       Search
	Profit       Profit
}

type HTTP struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Dynamo mirrors the local-friendly defaults of DynamoDB Local.
type Dynamo struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`

	DealsTable         string `env:"DEALS_TABLE" envDefault:"deals"`
	StagesTable        string `env:"STAGES_TABLE" envDefault:"stages"`
	OrganizationsTable string `env:"ORGANIZATIONS_TABLE" envDefault:"organizations"`
	ContactsTable      string `env:"CONTACTS_TABLE" envDefault:"contacts"`
	CustomFieldsTable  string `env:"CUSTOM_FIELDS_TABLE" envDefault:"custom_fields"`
	CostSheetsTable    string `env:"COST_SHEETS_TABLE" envDefault:"cost_sheets"`
	NotesTable         string `env:"NOTES_TABLE" envDefault:"notes"`
	DoorsTable         string `env:"DOORS_TABLE" envDefault:"doors"`
	FilesTable         string `env:"FILES_TABLE" envDefault:"deal_files"`
	PaymentsTable      string `env:"PAYMENTS_TABLE" envDefault:"payments"`
}

type Report struct {
	BaseURL string        `env:"REPORT_BASE_URL"`
	Timeout time.Duration `env:"REPORT_TIMEOUT" envDefault:"30s"`
}

// Directory points at the legacy CRM whose organization/contact lookups are
// still authoritative for some tenants.
type Directory struct {
	Enabled bool          `env:"DIRECTORY_ENABLED" envDefault:"false"`
	BaseURL string        `env:"DIRECTORY_BASE_URL"`
	Token   string        `env:"DIRECTORY_TOKEN"`
	Timeout time.Duration `env:"DIRECTORY_TIMEOUT" envDefault:"5s"`
}

// Payments configures Mercado Pago. The test payer settings only apply to
// TEST- access tokens.
type Payments struct {
	AccessToken     string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock            bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
	Currency        string `env:"PAYMENT_CURRENCY" envDefault:"USD"`
	TestPayerEmail  string `env:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	TestPayerUserID string `env:"MERCADOPAGO_TEST_PAYER_USER_ID"`
}

// Sandbox reports whether the access token is a Mercado Pago test token.
func (p Payments) Sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(p.AccessToken), "TEST-")
}

type Storage struct {
	FilesDir      string `env:"FILES_DIR" envDefault:"./data/files"`
	MaxUploadSize int64  `env:"MAX_UPLOAD_SIZE" envDefault:"52428800"`
}

type CustomFields struct {
	CacheTTL    time.Duration `env:"CF_CACHE_TTL" envDefault:"10m"`
	Parallelism int           `env:"CF_PARALLELISM" envDefault:"8"`
}

type Search struct {
	Debounce time.Duration `env:"SEARCH_DEBOUNCE" envDefault:"300ms"`
	Limit    int           `env:"SEARCH_LIMIT" envDefault:"10"`
}

type Profit struct {
	SyncTolerance float64 `env:"PROFIT_SYNC_TOLERANCE" envDefault:"0.01"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.HTTP.Port))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format))
	}
	if c.Directory.Enabled && strings.TrimSpace(c.Directory.BaseURL) == "" {
		errs = append(errs, errors.New("DIRECTORY_BASE_URL is required when DIRECTORY_ENABLED is set"))
	}
	if c.CustomFields.Parallelism <= 0 {
		errs = append(errs, errors.New("CF_PARALLELISM must be positive"))
	}
	if c.Search.Debounce < 0 {
		errs = append(errs, errors.New("SEARCH_DEBOUNCE must not be negative"))
	}
	if c.Profit.SyncTolerance < 0 {
		errs = append(errs, errors.New("PROFIT_SYNC_TOLERANCE must not be negative"))
	}
	if c.Storage.MaxUploadSize <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_SIZE must be positive"))
	}

	return errors.Join(errs...)
}

func (h HTTP) Addr() string {
	return fmt.Sprintf(":%d", h.Port)
}
