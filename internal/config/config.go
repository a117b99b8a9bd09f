package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/tapcode/internal/gridfile"
	"github.com/danmuck/tapcode/internal/tapcode"
)

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = "tapcode.toml"

type Config struct {
	Alphabet  string       `toml:"alphabet"`
	TapMarker string       `toml:"tap_marker"`
	GridFile  string       `toml:"grid_file"`
	NoColor   bool         `toml:"no_color"`
	Server    ServerConfig `toml:"server"`
}

type ServerConfig struct {
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
	AdminToken  string   `toml:"admin_token"`
}

func Default() Config {
	return Config{
		Alphabet:  tapcode.DefaultAlphabet,
		TapMarker: string(tapcode.DefaultTapMarker),
		GridFile:  gridfile.DefaultFileName,
		Server: ServerConfig{
			Addr:        ":9300",
			CorsOrigins: []string{"http://localhost:3000"},
		},
	}
}

type fileConfig struct {
	Alphabet  string `toml:"alphabet"`
	TapMarker string `toml:"tap_marker"`
	GridFile  string `toml:"grid_file"`
	NoColor   bool   `toml:"no_color"`
	Server    struct {
		Addr        string   `toml:"addr"`
		CorsOrigins []string `toml:"cors_origins"`
		AdminToken  string   `toml:"admin_token"`
	} `toml:"server"`
}

// Load applies the keys defined in path over Default and validates the result.
// A missing file at DefaultPath yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	if meta.IsDefined("alphabet") {
		cfg.Alphabet = strings.TrimSpace(raw.Alphabet)
	}
	if meta.IsDefined("tap_marker") {
		cfg.TapMarker = raw.TapMarker
	}
	if meta.IsDefined("grid_file") {
		cfg.GridFile = strings.TrimSpace(raw.GridFile)
	}
	if meta.IsDefined("no_color") {
		cfg.NoColor = raw.NoColor
	}
	if meta.IsDefined("server", "addr") {
		cfg.Server.Addr = strings.TrimSpace(raw.Server.Addr)
	}
	if meta.IsDefined("server", "cors_origins") {
		cfg.Server.CorsOrigins = normalizeOrigins(raw.Server.CorsOrigins)
	}
	if meta.IsDefined("server", "admin_token") {
		cfg.Server.AdminToken = strings.TrimSpace(raw.Server.AdminToken)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if _, err := ParseMarker(cfg.TapMarker); err != nil {
		return err
	}
	if _, err := tapcode.New(cfg.Alphabet, tapcode.DefaultTapMarker); err != nil {
		return fmt.Errorf("alphabet: %w", err)
	}
	if strings.TrimSpace(cfg.GridFile) == "" {
		return fmt.Errorf("grid_file is required")
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return fmt.Errorf("server.addr is required")
	}
	for _, origin := range cfg.Server.CorsOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("server.cors_origins: %q must be \"*\" or start with http:// or https://", origin)
		}
	}
	return nil
}

// ValidateFile loads and validates the config at path. Unlike Load, a missing
// file is an error even when path is DefaultPath.
func ValidateFile(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	if _, err := Grid(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseMarker accepts exactly one rune that cannot collide with the tapcode grammar.
func ParseMarker(raw string) (rune, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("tap_marker must be a single character, got %q", raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	if unicode.IsSpace(r) || r == '|' {
		return 0, fmt.Errorf("tap_marker %q collides with the tapcode separators", raw)
	}
	return r, nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
