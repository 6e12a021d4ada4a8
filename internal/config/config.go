package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tile-grid-control/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envManifest   = "TILE_GRID_CONTROL_MANIFEST"
	envWidth      = "TILE_GRID_CONTROL_WIDTH"
	envHeight     = "TILE_GRID_CONTROL_HEIGHT"
	envGap        = "TILE_GRID_CONTROL_GAP"
	envShowFooter = "TILE_GRID_CONTROL_FOOTER"
	envWatch      = "TILE_GRID_CONTROL_WATCH"
	envVerbose    = "TILE_GRID_CONTROL_VERBOSE"
	envTrace      = "TILE_GRID_CONTROL_TRACE"
	envLogFile    = "TILE_GRID_CONTROL_LOG_FILE"
)

const defaultManifest = "tiles.yaml"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tile-grid-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	manifest := fs.String("manifest", envOrDefault(env, envManifest, defaultManifest), "path to the tile manifest")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "grid width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "grid height in rows (0 uses terminal height)")
	gap := fs.Int("gap", envOrInt(env, envGap, 2), "gap between tiles in cells")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, true), "reload the grid when the manifest changes")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show informational messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *gap < 0 {
		return Config{}, fmt.Errorf("gap must be >= 0 (got %d)", *gap)
	}

	cfg := Config{
		App: app.Config{
			ManifestPath: *manifest,
			Width:        *width,
			Height:       *height,
			Gap:          *gap,
			ShowFooter:   *footer,
			Watch:        *watch,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"manifest": *manifest,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"gap":      strconv.Itoa(*gap),
			"footer":   strconv.FormatBool(*footer),
			"watch":    strconv.FormatBool(*watch),
			"trace":    strconv.FormatBool(*trace),
			"verbose":  strconv.FormatBool(*verbose),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.ManifestPath) == "" {
		return fmt.Errorf("manifest path is required")
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
