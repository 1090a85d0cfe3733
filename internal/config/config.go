package config

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/mines"
)

const EnvPrefix = "MINEFIELD_"

// A zero Seed means a fresh random source per run.
type Config struct {
	Rows        int    `schema:"rows"`
	Columns     int    `schema:"columns"`
	Mines       int    `schema:"mines"`
	Seed        uint64 `schema:"seed"`
	LogLevel    string `schema:"log_level"`
	LogFile     string `schema:"log_file"`
	Development bool   `schema:"development"`
}

// Default is a 10x20 board with 30 mines. Load decodes on top of
// it, so explicit zero values survive.
func Default() Config {
	return Config{Rows: 10, Columns: 20, Mines: 30, LogLevel: "info"}
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// fromEnviron keeps MINEFIELD_* variables, keyed by the lowercased rest of
// the name.
func fromEnviron(environ []string) map[string][]string {
	src := make(map[string][]string)
	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		src[key] = append(src[key], value)
	}
	return src
}

// Load decodes a [Config] from environ, which has the form of
// [os.Environ].
func Load(environ []string) (*Config, error) {
	c := Default()
	if err := decoder.Decode(&c, fromEnviron(environ)); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level: %w", err)
	}
	if c.Development && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	return level, nil
}

func (c Config) Params() mines.GameParams {
	return mines.GameParams{Rows: c.Rows, Columns: c.Columns, MineCount: c.Mines}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"rows":        c.Rows,
		"columns":     c.Columns,
		"mines":       c.Mines,
		"seed":        c.Seed,
		"log_level":   c.LogLevel,
		"log_file":    c.LogFile,
		"development": c.Development,
	}
}
