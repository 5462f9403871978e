package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/matchday-schedule/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	StaticDir          string
	CORSAllowedOrigins []string
	SwaggerEnabled     bool
	LogLevel           logging.Level

	TheSportsDBBaseURL               string
	TheSportsDBKey                   string
	TheSportsDBTimeout               time.Duration
	TheSportsDBRatePerSec            int
	TheSportsDBCircuitEnabled        bool
	TheSportsDBCircuitFailureCount   int
	TheSportsDBCircuitOpenTimeout    time.Duration
	TheSportsDBCircuitHalfOpenMaxReq int

	ScheduleTimeOffsetMinutes int
	ScheduleMatchDuration     time.Duration
	ScheduleWindowDays        int
	ScheduleFetchWorkers      int

	CatalogPath  string
	CatalogWatch bool

	PrioritiesPath           string
	ChecklistTemplatePath    string
	ChecklistSubmissionsPath string

	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// minutesPerDay bounds the correction offset to less than one day either way.
const minutesPerDay = 24 * 60

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "matchday-schedule-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":3000"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		StaticDir:          strings.TrimSpace(getEnv("APP_STATIC_DIR", "")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:     swaggerEnabled,
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if err := loadTheSportsDB(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadSchedule(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadStorage(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadTheSportsDB(cfg *Config) error {
	cfg.TheSportsDBBaseURL = strings.TrimSpace(getEnv("THESPORTSDB_BASE_URL", "https://www.thesportsdb.com/api/v1/json"))
	cfg.TheSportsDBKey = strings.TrimSpace(getEnv("THESPORTSDB_KEY", "3"))

	timeout, err := getEnvAsDuration("THESPORTSDB_TIMEOUT", "10s")
	if err != nil {
		return err
	}
	if timeout <= 0 {
		return fmt.Errorf("THESPORTSDB_TIMEOUT must be > 0")
	}
	cfg.TheSportsDBTimeout = timeout

	ratePerSec, err := getEnvAsInt("THESPORTSDB_RATE_PER_SEC", 5)
	if err != nil {
		return fmt.Errorf("parse THESPORTSDB_RATE_PER_SEC: %w", err)
	}
	if ratePerSec < 0 {
		return fmt.Errorf("THESPORTSDB_RATE_PER_SEC must be >= 0")
	}
	cfg.TheSportsDBRatePerSec = ratePerSec

	circuitEnabled, err := strconv.ParseBool(getEnv("THESPORTSDB_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse THESPORTSDB_CIRCUIT_ENABLED: %w", err)
	}
	cfg.TheSportsDBCircuitEnabled = circuitEnabled

	failureCount, err := getEnvAsInt("THESPORTSDB_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return fmt.Errorf("parse THESPORTSDB_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if failureCount < 1 {
		return fmt.Errorf("THESPORTSDB_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	cfg.TheSportsDBCircuitFailureCount = failureCount

	openTimeout, err := getEnvAsDuration("THESPORTSDB_CIRCUIT_OPEN_TIMEOUT", "15s")
	if err != nil {
		return err
	}
	if openTimeout <= 0 {
		return fmt.Errorf("THESPORTSDB_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	cfg.TheSportsDBCircuitOpenTimeout = openTimeout

	halfOpenMaxReq, err := getEnvAsInt("THESPORTSDB_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return fmt.Errorf("parse THESPORTSDB_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if halfOpenMaxReq < 1 {
		return fmt.Errorf("THESPORTSDB_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	cfg.TheSportsDBCircuitHalfOpenMaxReq = halfOpenMaxReq

	return nil
}

func loadSchedule(cfg *Config) error {
	offset, err := getEnvAsInt("SCHEDULE_TIME_OFFSET_MINUTES", 60)
	if err != nil {
		return fmt.Errorf("parse SCHEDULE_TIME_OFFSET_MINUTES: %w", err)
	}
	if offset <= -minutesPerDay || offset >= minutesPerDay {
		return fmt.Errorf("SCHEDULE_TIME_OFFSET_MINUTES must be within (-1440, 1440)")
	}
	cfg.ScheduleTimeOffsetMinutes = offset

	duration, err := getEnvAsDuration("SCHEDULE_MATCH_DURATION", "120m")
	if err != nil {
		return err
	}
	if duration <= 0 {
		return fmt.Errorf("SCHEDULE_MATCH_DURATION must be > 0")
	}
	cfg.ScheduleMatchDuration = duration

	windowDays, err := getEnvAsInt("SCHEDULE_WINDOW_DAYS", 14)
	if err != nil {
		return fmt.Errorf("parse SCHEDULE_WINDOW_DAYS: %w", err)
	}
	if windowDays < 1 {
		return fmt.Errorf("SCHEDULE_WINDOW_DAYS must be >= 1")
	}
	cfg.ScheduleWindowDays = windowDays

	workers, err := getEnvAsInt("SCHEDULE_FETCH_WORKERS", 0)
	if err != nil {
		return fmt.Errorf("parse SCHEDULE_FETCH_WORKERS: %w", err)
	}
	if workers < 0 {
		return fmt.Errorf("SCHEDULE_FETCH_WORKERS must be >= 0")
	}
	cfg.ScheduleFetchWorkers = workers

	return nil
}

func loadStorage(cfg *Config) error {
	cfg.CatalogPath = strings.TrimSpace(getEnv("CATALOG_PATH", ""))
	catalogWatch, err := strconv.ParseBool(getEnv("CATALOG_WATCH", "true"))
	if err != nil {
		return fmt.Errorf("parse CATALOG_WATCH: %w", err)
	}
	cfg.CatalogWatch = catalogWatch && cfg.CatalogPath != ""

	cfg.PrioritiesPath = strings.TrimSpace(getEnv("PRIORITIES_PATH", "data/priorities.json"))
	cfg.ChecklistTemplatePath = strings.TrimSpace(getEnv("CHECKLIST_TEMPLATE_PATH", "data/checklist.default.json"))
	cfg.ChecklistSubmissionsPath = strings.TrimSpace(getEnv("CHECKLIST_SUBMISSIONS_PATH", "data/checklist/submissions.json"))
	return nil
}

func loadObservability(cfg *Config) error {
	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	cfg.PprofEnabled = pprofEnabled
	cfg.PprofAddr = pprofAddr

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	cfg.UptraceEnabled = uptraceEnabled
	cfg.UptraceDSN = uptraceDSN

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return err
	}
	if pyroscopeUploadRate <= 0 {
		return fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}
	cfg.PyroscopeEnabled = pyroscopeEnabled
	cfg.PyroscopeServerAddress = pyroscopeServerAddress
	cfg.PyroscopeUploadRate = pyroscopeUploadRate
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}

	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
