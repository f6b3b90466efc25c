// Load envs from .env
// Load YAML config
// Override with env vars
// Provide default values and validate

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "JOBHUNT_CONFIG"
	defaultConfigPath = "configs/config.yaml"

	FetcherBrowser = "browser"
	FetcherHTTP    = "http"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is read once at startup and never mutated afterwards.
// Components receive the fields they need at construction time.
type Config struct {
	//Site
	BaseURL   string
	SearchURL string
	UserAgent string

	//LLM
	OllamaBaseURL string
	OllamaModel   string
	LLMTimeout    time.Duration

	//Scraping
	MaxJobs              int
	Headless             bool
	Delay                time.Duration
	PageTimeout          time.Duration
	DetailFetcher        string
	DescriptionMinLength int

	//Filtering
	ExcludedKeywords []string
	MaxAgeDays       int
	MinAgeDays       int

	//Paths
	OutputFile    string
	LogFile       string
	CookiesPath   string
	ScreenshotDir string
	FreshOutput   bool

	//Notifications (optional)
	TelegramToken  string
	TelegramChatID int64
}

// fileConfig mirrors Config for YAML decoding. Pointers distinguish
// "not set" from zero values so defaults survive a partial file.
type fileConfig struct {
	BaseURL              string   `yaml:"base_url"`
	SearchURL            string   `yaml:"search_url"`
	UserAgent            string   `yaml:"user_agent"`
	OllamaBaseURL        string   `yaml:"ollama_base_url"`
	OllamaModel          string   `yaml:"ollama_model"`
	LLMTimeoutSeconds    *float64 `yaml:"llm_timeout_seconds"`
	MaxJobs              *int     `yaml:"max_jobs"`
	Headless             *bool    `yaml:"headless"`
	DelaySeconds         *float64 `yaml:"delay_seconds"`
	PageTimeoutSeconds   *float64 `yaml:"page_timeout_seconds"`
	DetailFetcher        string   `yaml:"detail_fetcher"`
	DescriptionMinLength *int     `yaml:"description_min_length"`
	ExcludedKeywords     []string `yaml:"excluded_keywords"`
	MaxAgeDays           *int     `yaml:"max_age_days"`
	MinAgeDays           *int     `yaml:"min_age_days"`
	OutputFile           string   `yaml:"output_file"`
	LogFile              string   `yaml:"log_file"`
	CookiesPath          string   `yaml:"cookies_path"`
	ScreenshotDir        string   `yaml:"screenshot_dir"`
	FreshOutput          *bool    `yaml:"fresh_output"`
	TelegramToken        string   `yaml:"telegram_token"`
	TelegramChatID       int64    `yaml:"telegram_chat_id"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		BaseURL:              "https://huntukvisasponsors.com",
		SearchURL:            "https://huntukvisasponsors.com/jobs?q=software+engineer",
		UserAgent:            "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		OllamaBaseURL:        "http://localhost:11434",
		OllamaModel:          "gemma3:latest",
		LLMTimeout:           120 * time.Second,
		MaxJobs:              50,
		Headless:             true,
		Delay:                2 * time.Second,
		PageTimeout:          10 * time.Second,
		DetailFetcher:        FetcherBrowser,
		DescriptionMinLength: 100,
		ExcludedKeywords:     []string{"senior", "staff", "lead", "principal", "head"},
		MaxAgeDays:           30,
		MinAgeDays:           0,
		OutputFile:           "suitable_jobs.csv",
		LogFile:              "job_analysis.log",
		ScreenshotDir:        "logs/screenshots",
	}
}

// Load builds the config from defaults, the optional YAML file and env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path := os.Getenv(configPathEnv)
	if path == "" {
		path = defaultConfigPath
	}
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	setString(&c.BaseURL, fc.BaseURL)
	setString(&c.SearchURL, fc.SearchURL)
	setString(&c.UserAgent, fc.UserAgent)
	setString(&c.OllamaBaseURL, fc.OllamaBaseURL)
	setString(&c.OllamaModel, fc.OllamaModel)
	setString(&c.DetailFetcher, fc.DetailFetcher)
	setString(&c.OutputFile, fc.OutputFile)
	setString(&c.LogFile, fc.LogFile)
	setString(&c.CookiesPath, fc.CookiesPath)
	setString(&c.ScreenshotDir, fc.ScreenshotDir)
	setString(&c.TelegramToken, fc.TelegramToken)

	if fc.LLMTimeoutSeconds != nil {
		c.LLMTimeout = seconds(*fc.LLMTimeoutSeconds)
	}
	if fc.MaxJobs != nil {
		c.MaxJobs = *fc.MaxJobs
	}
	if fc.Headless != nil {
		c.Headless = *fc.Headless
	}
	if fc.DelaySeconds != nil {
		c.Delay = seconds(*fc.DelaySeconds)
	}
	if fc.PageTimeoutSeconds != nil {
		c.PageTimeout = seconds(*fc.PageTimeoutSeconds)
	}
	if fc.DescriptionMinLength != nil {
		c.DescriptionMinLength = *fc.DescriptionMinLength
	}
	if len(fc.ExcludedKeywords) > 0 {
		c.ExcludedKeywords = fc.ExcludedKeywords
	}
	if fc.MaxAgeDays != nil {
		c.MaxAgeDays = *fc.MaxAgeDays
	}
	if fc.MinAgeDays != nil {
		c.MinAgeDays = *fc.MinAgeDays
	}
	if fc.FreshOutput != nil {
		c.FreshOutput = *fc.FreshOutput
	}
	if fc.TelegramChatID != 0 {
		c.TelegramChatID = fc.TelegramChatID
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.BaseURL, os.Getenv("BASE_URL"))
	setString(&c.SearchURL, os.Getenv("SEARCH_URL"))
	setString(&c.UserAgent, os.Getenv("USER_AGENT"))
	setString(&c.OllamaBaseURL, os.Getenv("OLLAMA_BASE_URL"))
	setString(&c.OllamaModel, os.Getenv("OLLAMA_MODEL"))
	setString(&c.DetailFetcher, strings.ToLower(os.Getenv("DETAIL_FETCHER")))
	setString(&c.OutputFile, os.Getenv("OUTPUT_FILE"))
	setString(&c.LogFile, os.Getenv("LOG_FILE"))
	setString(&c.CookiesPath, os.Getenv("COOKIES_PATH"))
	setString(&c.ScreenshotDir, os.Getenv("SCREENSHOT_DIR"))
	setString(&c.TelegramToken, os.Getenv("TELEGRAM_BOT_TOKEN"))

	if v := os.Getenv("EXCLUDED_KEYWORDS"); v != "" {
		c.ExcludedKeywords = splitList(v)
	}

	var err error
	if c.MaxJobs, err = envInt("MAX_JOBS_TO_PROCESS", c.MaxJobs); err != nil {
		return err
	}
	if c.MaxAgeDays, err = envInt("MAX_JOB_AGE_DAYS", c.MaxAgeDays); err != nil {
		return err
	}
	if c.MinAgeDays, err = envInt("MIN_JOB_AGE_DAYS", c.MinAgeDays); err != nil {
		return err
	}
	if c.DescriptionMinLength, err = envInt("DESCRIPTION_MIN_LENGTH", c.DescriptionMinLength); err != nil {
		return err
	}
	if c.Headless, err = envBool("HEADLESS_BROWSER", c.Headless); err != nil {
		return err
	}
	if c.FreshOutput, err = envBool("FRESH_OUTPUT", c.FreshOutput); err != nil {
		return err
	}
	if c.Delay, err = envSeconds("DELAY_BETWEEN_REQUESTS", c.Delay); err != nil {
		return err
	}
	if c.PageTimeout, err = envSeconds("PAGE_TIMEOUT_SECONDS", c.PageTimeout); err != nil {
		return err
	}
	if c.LLMTimeout, err = envSeconds("LLM_TIMEOUT_SECONDS", c.LLMTimeout); err != nil {
		return err
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: TELEGRAM_CHAT_ID %q: %v", ErrInvalidConfig, chatID, err)
		}
		c.TelegramChatID = id
	}
	return nil
}

// Validate checks the invariants the rest of the program relies on.
func (c *Config) Validate() error {
	if c.SearchURL == "" || c.BaseURL == "" {
		return fmt.Errorf("%w: search and base URL are required", ErrInvalidConfig)
	}
	if c.OllamaBaseURL == "" || c.OllamaModel == "" {
		return fmt.Errorf("%w: ollama base URL and model are required", ErrInvalidConfig)
	}
	if c.MaxJobs <= 0 {
		return fmt.Errorf("%w: max jobs must be positive, got %d", ErrInvalidConfig, c.MaxJobs)
	}
	if c.MinAgeDays < 0 || c.MaxAgeDays < 0 {
		return fmt.Errorf("%w: job age days must not be negative", ErrInvalidConfig)
	}
	if c.MinAgeDays > c.MaxAgeDays {
		return fmt.Errorf("%w: min age %d exceeds max age %d", ErrInvalidConfig, c.MinAgeDays, c.MaxAgeDays)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative", ErrInvalidConfig)
	}
	if c.PageTimeout <= 0 {
		return fmt.Errorf("%w: page timeout must be positive", ErrInvalidConfig)
	}
	if c.DetailFetcher != FetcherBrowser && c.DetailFetcher != FetcherHTTP {
		return fmt.Errorf("%w: unknown detail fetcher %q", ErrInvalidConfig, c.DetailFetcher)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("%w: output file is required", ErrInvalidConfig)
	}
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("%w: TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set", ErrInvalidConfig)
	}
	return nil
}

// NotificationsEnabled reports whether the Telegram notifier should run.
func (c *Config) NotificationsEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidConfig, key, v)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalidConfig, key, v)
}

func envSeconds(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number of seconds, got %q", ErrInvalidConfig, key, v)
	}
	return seconds(f), nil
}
