package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sevaops/temple-console/pkg/logging"

	"github.com/caarlos0/env/v11"
	"github.com/iota-uz/utils/fs"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if fs.FileExists(file) {
			existingFiles = append(existingFiles, file)
		}
	}
	if len(existingFiles) == 0 {
		return 0, nil
	}
	return len(existingFiles), godotenv.Load(existingFiles...)
}

// APIOptions configures the backend REST client. Every request targets
// BaseURL + PathPrefix.
type APIOptions struct {
	BaseURL    string        `env:"API_BASE_URL" envDefault:"http://localhost:8000"`
	PathPrefix string        `env:"API_PATH_PREFIX" envDefault:"/api/v1"`
	Timeout    time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
	RetryCount uint64        `env:"API_RETRY_COUNT" envDefault:"2"`
}

func (a *APIOptions) Validate() error {
	if !strings.HasPrefix(a.PathPrefix, "/") {
		return fmt.Errorf("API_PATH_PREFIX must start with '/', got %q", a.PathPrefix)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %s", a.Timeout)
	}
	return nil
}

type OpenTelemetryOptions struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	TempoURL    string `env:"OTEL_TEMPO_URL" envDefault:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"temple-console"`
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"false"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

type RateLimitOptions struct {
	Enabled   bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	GlobalRPS int    `env:"RATE_LIMIT_GLOBAL_RPS" envDefault:"1000"`
	Storage   string `env:"RATE_LIMIT_STORAGE" envDefault:"memory"` // memory or redis
	RedisURL  string `env:"RATE_LIMIT_REDIS_URL"`
}

func (r *RateLimitOptions) Validate() error {
	if r.GlobalRPS < 0 {
		return fmt.Errorf("rate limit GlobalRPS must be non-negative, got %d", r.GlobalRPS)
	}
	if r.Storage != "memory" && r.Storage != "redis" {
		return fmt.Errorf("rate limit Storage must be 'memory' or 'redis', got '%s'", r.Storage)
	}
	if r.Storage == "redis" && r.RedisURL == "" {
		return fmt.Errorf("rate limit RedisURL is required when Storage is 'redis'")
	}
	return nil
}

// ThemeOptions carries presentation defaults used by calendar cell
// coloring and avatar rendering.
type ThemeOptions struct {
	PrimaryColor   string `env:"THEME_PRIMARY_COLOR" envDefault:"#7c3aed"`
	HighActivity   string `env:"THEME_HIGH_ACTIVITY_COLOR" envDefault:"#16a34a"`
	MediumActivity string `env:"THEME_MEDIUM_ACTIVITY_COLOR" envDefault:"#eab308"`
	LowActivity    string `env:"THEME_LOW_ACTIVITY_COLOR" envDefault:"#e5e7eb"`
}

type Configuration struct {
	API           APIOptions
	OpenTelemetry OpenTelemetryOptions
	Prometheus    PrometheusOptions
	RateLimit     RateLimitOptions
	Theme         ThemeOptions

	ServerPort       int    `env:"PORT" envDefault:"3300"`
	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress    string `env:"-"`
	Domain           string `env:"DOMAIN" envDefault:"localhost"`
	Origin           string `env:"ORIGIN" envDefault:"http://localhost:3300"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"error"`
	LogPath          string `env:"LOG_PATH" envDefault:"./logs/app.log"`

	PageSize    int `env:"PAGE_SIZE" envDefault:"10"`
	MaxPageSize int `env:"MAX_PAGE_SIZE" envDefault:"100"`

	// DebounceDelay bounds backend request volume from search inputs.
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY" envDefault:"300ms"`

	// PageRefreshInterval is how often an active list page re-polls the
	// backend in the background. Zero disables background refresh.
	PageRefreshInterval time.Duration `env:"PAGE_REFRESH_INTERVAL" envDefault:"30s"`

	// Headers the console honors or generates per request.
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	RealIPHeader    string `env:"REAL_IP_HEADER" envDefault:"X-Real-IP"`

	// Cookie / storage key names.
	SidCookieKey   string `env:"SID_COOKIE_KEY" envDefault:"sid"`
	FlashCookieKey string `env:"FLASH_COOKIE_KEY" envDefault:"flash"`
	TokenCookieKey string `env:"TOKEN_COOKIE_KEY" envDefault:"authToken"`

	// PermissionPattern is the "<feature>.<screen>.<action>" template used
	// when composing permission strings for nav links.
	PermissionPattern string `env:"PERMISSION_PATTERN" envDefault:"%s.%s.%s"`

	// CurrencySymbols maps ISO currency codes to display symbols for
	// donation amounts.
	CurrencySymbols map[string]string `env:"CURRENCY_SYMBOLS" envDefault:"INR:₹,USD:$,EUR:€"`

	// DefaultEventCapacity seeds the capacity field on the event create form.
	DefaultEventCapacity int `env:"DEFAULT_EVENT_CAPACITY" envDefault:"50"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func (c *Configuration) Scheme() string {
	if c.GoAppEnvironment == Production {
		return "https"
	}
	return "http"
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}

	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api configuration error: %w", err)
	}
	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("rate limit configuration error: %w", err)
	}
	if c.PageSize <= 0 || c.PageSize > c.MaxPageSize {
		return fmt.Errorf("PAGE_SIZE must be in (0, %d], got %d", c.MaxPageSize, c.PageSize)
	}
	if c.DebounceDelay < 0 {
		return fmt.Errorf("DEBOUNCE_DELAY must be non-negative, got %s", c.DebounceDelay)
	}
	if c.PageRefreshInterval < 0 {
		return fmt.Errorf("PAGE_REFRESH_INTERVAL must be non-negative, got %s", c.PageRefreshInterval)
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger

	if c.GoAppEnvironment == Production {
		c.SocketAddress = fmt.Sprintf(":%d", c.ServerPort)
	} else {
		c.SocketAddress = fmt.Sprintf("localhost:%d", c.ServerPort)
	}

	if os.Getenv("ORIGIN") == "" {
		if c.GoAppEnvironment == "development" {
			c.Origin = fmt.Sprintf("%s://%s:%d", c.Scheme(), c.Domain, c.ServerPort)
		} else {
			c.Origin = fmt.Sprintf("%s://%s", c.Scheme(), c.Domain)
		}
	}

	return nil
}

// Unload handles a graceful shutdown.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}
