package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"tournamentExport/internal/report"
)

const (
	ReportKindXLSX   = "xlsx"
	ReportKindSheets = "sheets"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local" validate:"oneof=local dev prod"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Export     Export     `yaml:"export"`
	Report     Report     `yaml:"report"`
	Tracing    Tracing    `yaml:"tracing"`
}

type Database struct {
	Host           string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost" validate:"required"`
	Port           int    `yaml:"port" env:"POSTGRES_PORT" env-default:"5432" validate:"gt=0"`
	User           string `yaml:"user" env:"POSTGRES_USER" env-default:"postgres" validate:"required"`
	Password       string `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName         string `yaml:"dbname" env:"POSTGRES_DB" env-default:"database" validate:"required"`
	SSLMode        string `yaml:"sslmode" env:"POSTGRES_SSLMODE" env-default:"disable"`
	MigrateOnStart bool   `yaml:"migrate_on_start" env:"POSTGRES_MIGRATE_ON_START" env-default:"false"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Export controls the server-side re-export loop. A zero interval disables it.
type Export struct {
	Interval time.Duration `yaml:"interval" env:"EXPORT_INTERVAL" env-default:"0s"`
}

type Report struct {
	Kind   string `yaml:"kind" env:"REPORT_KIND" env-default:"xlsx" validate:"oneof=xlsx sheets"`
	XLSX   XLSX   `yaml:"xlsx"`
	Sheets Sheets `yaml:"sheets"`
	Layout Layout `yaml:"layout"`
}

type XLSX struct {
	URL   string `yaml:"url" env:"REPORT_XLSX_URL" env-default:"report.xlsx"`
	Sheet string `yaml:"sheet" env-default:"Inscriptions"`
}

type Sheets struct {
	SpreadsheetID   string `yaml:"spreadsheet_id" env:"SPREADSHEET_ID"`
	Sheet           string `yaml:"sheet" env-default:"Inscriptions"`
	CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_CREDENTIALS_FILE" env-default:"credentials.json"`
}

// Layout mirrors report.Placement. Defaults match the registration worksheet
// used by the organizers.
type Layout struct {
	StartRow  int    `yaml:"start_row" env-default:"7"`
	Sequence  string `yaml:"sequence" env-default:"A"`
	Permit    string `yaml:"permit" env-default:"B"`
	LastName  string `yaml:"last_name" env-default:"D"`
	FirstName string `yaml:"first_name" env-default:"E"`
	Club      string `yaml:"club" env-default:"F"`
	Points    string `yaml:"points" env-default:"G"`
	Category  string `yaml:"category" env-default:"H"`
	Day1      string `yaml:"day1" env-default:"K"`
	Day1Width int    `yaml:"day1_width" env-default:"7"`
	Day2      string `yaml:"day2" env-default:"S"`
	Day2Width int    `yaml:"day2_width" env-default:"7"`
	Email     string `yaml:"email" env-default:"AC"`
}

type Tracing struct {
	Enabled     bool   `yaml:"enabled" env:"TRACING_ENABLED" env-default:"false"`
	Output      string `yaml:"output" env:"TRACING_OUTPUT"`
	ServiceName string `yaml:"service_name" env-default:"tournament-export"`
}

func MustLoad() *Config {
	// .env is optional: variables may come from the environment directly.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

// Load reads the YAML file at path, applying env overrides. An empty path
// reads the configuration from the environment only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Report.Kind == ReportKindSheets && c.Report.Sheets.SpreadsheetID == "" {
		return errors.New("invalid config: report.sheets.spreadsheet_id is required for the sheets report")
	}

	if err := c.Report.Layout.Placement().Validate(); err != nil {
		return fmt.Errorf("invalid config: report.layout: %w", err)
	}

	return nil
}

// DSN returns the key/value connection string understood by lib/pq.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

// URL returns the connection string in URL form, as expected by migrate.
func (d Database) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}

	return u.String()
}

func (l Layout) Placement() report.Placement {
	return report.Placement{
		StartRow:  l.StartRow,
		Sequence:  l.Sequence,
		Permit:    l.Permit,
		LastName:  l.LastName,
		FirstName: l.FirstName,
		Club:      l.Club,
		Points:    l.Points,
		Category:  l.Category,
		Day1:      l.Day1,
		Day1Width: l.Day1Width,
		Day2:      l.Day2,
		Day2Width: l.Day2Width,
		Email:     l.Email,
	}
}
