package lingo

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the environment-driven configuration surface. Every field has
// a working default, so an empty environment yields a usable engine.
type Config struct {
	Locales       []string `env:"LINGO_LOCALES" envDefault:"en" envSeparator:","`
	DefaultLocale string   `env:"LINGO_DEFAULT_LOCALE" envDefault:"en"`
	BaseDir       string   `env:"LINGO_BASE_DIR" envDefault:"locales"`
	Directory     string   `env:"LINGO_DIRECTORY" envDefault:"app"`
	JointDir      string   `env:"LINGO_JOINT_DIR"`
	QueryParam    string   `env:"LINGO_QUERY_PARAM" envDefault:"lang"`
	SessionKey    string   `env:"LINGO_SESSION_KEY" envDefault:"lang"`
	CookieName    string   `env:"LINGO_COOKIE_NAME" envDefault:"lang"`
	EnvVar        string   `env:"LINGO_ENV_VAR" envDefault:"LANG"`
	Order         []string `env:"LINGO_DETECTION_ORDER" envSeparator:","`
	Format        string   `env:"LINGO_FORMAT" envDefault:"json"`
	Indent        int      `env:"LINGO_INDENT" envDefault:"4"`
	CaseFolding   bool     `env:"LINGO_CASE_FOLDING" envDefault:"true"`
	AutoRegister  bool     `env:"LINGO_AUTO_REGISTER" envDefault:"true"`
}

// LoadConfig parses Config from the process environment. Optional .env
// files are loaded first; missing files are not an error so the same code
// runs in development and production.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("lingo: parse config from env: %w", err)
	}
	return cfg, nil
}

// Options converts the config into engine options.
func (c Config) Options() []Option {
	opts := []Option{
		WithLocales(c.Locales...),
		WithDefaultLocale(c.DefaultLocale),
		WithCaseFolding(c.CaseFolding),
		WithBaseDir(c.BaseDir),
		WithDirectory(c.Directory),
		WithJointDir(c.JointDir),
		WithQueryParam(c.QueryParam),
		WithSessionKey(c.SessionKey),
		WithCookieName(c.CookieName),
		WithEnvVar(c.EnvVar),
		WithFormat(c.Format),
		WithIndent(c.Indent),
	}

	if len(c.Order) > 0 {
		order := make([]Strategy, len(c.Order))
		for i, s := range c.Order {
			order[i] = Strategy(s)
		}
		opts = append(opts, WithDetectionOrder(order...))
	}
	if !c.AutoRegister {
		opts = append(opts, WithoutAutoRegister())
	}

	return opts
}

// NewFromEnv builds an Engine from the process environment. Extra options
// are applied after the environment-derived ones and take precedence.
func NewFromEnv(opts ...Option) (*Engine, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(append(cfg.Options(), opts...)...)
}
