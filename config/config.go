package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string `yaml:"port"`
	DBDriver    string `yaml:"db_driver"` // sqlite or postgres
	DBPath      string `yaml:"db_path"`   // sqlite file, ":memory:" for throwaway stores
	DBUrl       string `yaml:"database_url"`
	LogLevel    string `yaml:"log_level"`
	FrontendURL string `yaml:"frontend_url"`
	// Session tokens
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
	// Seeding
	SeedOnStart bool  `yaml:"seed_on_start"`
	SeedRandom  int64 `yaml:"seed_random"` // 0 picks a time-based seed
	// Network simulation
	Simulator SimulatorConfig `yaml:"simulator"`
}

// SimulatorConfig controls artificial latency and failure injection.
type SimulatorConfig struct {
	MinDelay            time.Duration `yaml:"min_delay"`
	MaxDelay            time.Duration `yaml:"max_delay"`
	FailureRate         float64       `yaml:"failure_rate"`
	JobsReadDelay       time.Duration `yaml:"jobs_read_delay"`
	CandidatesReadDelay time.Duration `yaml:"candidates_read_delay"`
	AssessmentReadDelay time.Duration `yaml:"assessment_read_delay"`
	AuthDelay           time.Duration `yaml:"auth_delay"`
	SubmitDelay         time.Duration `yaml:"submit_delay"`
}

func Default() *Config {
	return &Config{
		Port:        "8080",
		DBDriver:    "sqlite",
		DBPath:      "talentflow.db",
		LogLevel:    "info",
		FrontendURL: "http://localhost:3000",
		JWTSecret:   "talentflow-dev-secret",
		TokenTTL:    24 * time.Hour,
		SeedOnStart: true,
		Simulator: SimulatorConfig{
			MinDelay:            200 * time.Millisecond,
			MaxDelay:            1200 * time.Millisecond,
			FailureRate:         0.07,
			JobsReadDelay:       300 * time.Millisecond,
			CandidatesReadDelay: 200 * time.Millisecond,
			AssessmentReadDelay: 150 * time.Millisecond,
			AuthDelay:           800 * time.Millisecond,
			SubmitDelay:         1000 * time.Millisecond,
		},
	}
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// and finally the environment (a local .env file is honoured).
func LoadConfig(path string) (*Config, error) {
	// Load .env file (only effective locally, ignored when the file is absent)
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.DBDriver == "postgres" && cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.DBDriver = strings.ToLower(getEnv("DB_DRIVER", c.DBDriver))
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	c.DBUrl = getEnv("DATABASE_URL", c.DBUrl)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	// Strip the trailing slash so origin comparison stays exact
	c.FrontendURL = strings.TrimRight(getEnv("FRONTEND_URL", c.FrontendURL), "/")
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.TokenTTL = getEnvDuration("TOKEN_TTL", c.TokenTTL)
	c.SeedOnStart = getEnvBool("SEED_ON_START", c.SeedOnStart)
	c.SeedRandom = getEnvInt64("SEED_RANDOM", c.SeedRandom)

	s := &c.Simulator
	s.MinDelay = getEnvDuration("SIM_MIN_DELAY", s.MinDelay)
	s.MaxDelay = getEnvDuration("SIM_MAX_DELAY", s.MaxDelay)
	s.FailureRate = getEnvFloat("SIM_FAILURE_RATE", s.FailureRate)
	s.JobsReadDelay = getEnvDuration("SIM_READ_DELAY_JOBS", s.JobsReadDelay)
	s.CandidatesReadDelay = getEnvDuration("SIM_READ_DELAY_CANDIDATES", s.CandidatesReadDelay)
	s.AssessmentReadDelay = getEnvDuration("SIM_READ_DELAY_ASSESSMENT", s.AssessmentReadDelay)
	s.AuthDelay = getEnvDuration("SIM_AUTH_DELAY", s.AuthDelay)
	s.SubmitDelay = getEnvDuration("SIM_SUBMIT_DELAY", s.SubmitDelay)
}

func (c *Config) validate() error {
	var errs []string
	switch c.DBDriver {
	case "sqlite":
		if c.DBPath == "" {
			errs = append(errs, "db_path is required for sqlite")
		}
	case "postgres":
	default:
		errs = append(errs, fmt.Sprintf("unsupported db_driver %q", c.DBDriver))
	}
	if c.JWTSecret == "" {
		errs = append(errs, "jwt_secret is required")
	}
	if c.Simulator.FailureRate < 0 || c.Simulator.FailureRate > 1 {
		errs = append(errs, "simulator.failure_rate must be between 0 and 1")
	}
	if c.Simulator.MaxDelay < c.Simulator.MinDelay {
		errs = append(errs, "simulator.max_delay must not be below min_delay")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt64 returns an integer environment variable or fallback if not set/invalid
func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("300ms") or plain milliseconds ("300")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
