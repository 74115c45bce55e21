// Package config parses the command line and environment into the
// settings main needs to start a session.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	engineinput "stonecrawl/pkg/engine/input"
	"stonecrawl/pkg/game/generator"
	"stonecrawl/pkg/game/locale"
	"stonecrawl/pkg/game/quest"
)

// Backends.
const (
	BackendEbiten = "ebiten"
	BackendTUI    = "tui"
)

// Environment fallbacks for flags left unset.
const (
	EnvSeed    = "STONECRAWL_SEED"
	EnvBackend = "STONECRAWL_BACKEND"
)

// Scale bounds for the ebiten window.
const (
	MinScale     = 1
	MaxScale     = 8
	DefaultScale = 4
)

var (
	// ErrUnknownBackend is returned for a backend other than ebiten or tui.
	ErrUnknownBackend = errors.New("unknown backend")
	// ErrBadScale is returned for a window scale out of range.
	ErrBadScale = errors.New("window scale out of range")
	// ErrUnknownQuest is returned for a -quest name that matches no quest.
	ErrUnknownQuest = errors.New("unknown quest")
	// ErrBadSeed is returned when the seed environment variable is not a number.
	ErrBadSeed = errors.New("invalid seed")
	// ErrBadBinding is returned for a -bind value that is not "Action=key".
	ErrBadBinding = errors.New("invalid key binding")
)

// Config is everything the command line controls.
type Config struct {
	// Seed drives every random choice. Zero picks one from the clock.
	Seed int64
	// Quest, when set, starts that quest immediately.
	Quest     quest.Type
	HasQuest  bool
	Backend   string
	Scale     int
	Locale    string
	Audio     bool
	LogFile   string
	Generator generator.Generator
	// DumpMap prints the first dungeon to stdout and exits.
	DumpMap bool
	// OutputDir receives screenshots and map dumps.
	OutputDir string
	Bindings  engineinput.Bindings
}

// Default returns the settings used when nothing is given.
func Default() Config {
	return Config{
		Backend:   BackendEbiten,
		Scale:     DefaultScale,
		Locale:    locale.DefaultLanguage,
		Audio:     true,
		Generator: generator.DefaultGenerator,
		OutputDir: ".",
		Bindings:  engineinput.DefaultBindings(),
	}
}

// Parse reads args (without the program name) and falls back to getenv for
// the seed and backend when their flags are absent.
func Parse(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("stonecrawl", flag.ContinueOnError)
	fs.SetOutput(output)

	seed := fs.Int64("seed", 0, "random seed (0 picks one; env "+EnvSeed+")")
	questName := fs.String("quest", "", "start straight into a quest: "+strings.Join(questNames(), ", "))
	backend := fs.String("backend", "", "frontend: ebiten or tui (env "+EnvBackend+")")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "window scale for the ebiten frontend")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message catalogue language")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "play a pulse when hit")
	fs.StringVar(&cfg.LogFile, "log-file", "", "write logs to this file instead of stderr")
	gen := fs.String("generator", cfg.Generator.Name(), "dungeon generator: "+strings.Join(generator.Names(), ", "))
	fs.BoolVar(&cfg.DumpMap, "dump-map", false, "print the first dungeon and exit")
	fs.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory for screenshots and map dumps")
	fs.Func("bind", `rebind an action, e.g. "Move Forward=i" (repeatable)`, func(v string) error {
		return bind(cfg.Bindings, v)
	})

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg.Seed = *seed
	if !set["seed"] {
		if v := getenv(EnvSeed); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return cfg, fmt.Errorf("%w: %s=%q", ErrBadSeed, EnvSeed, v)
			}
			cfg.Seed = n
		}
	}

	cfg.Backend = *backend
	if cfg.Backend == "" {
		cfg.Backend = getenv(EnvBackend)
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendEbiten
	}

	if *questName != "" {
		t, ok := quest.ParseType(*questName)
		if !ok {
			return cfg, fmt.Errorf("-quest: %w: %q", ErrUnknownQuest, *questName)
		}
		cfg.Quest, cfg.HasQuest = t, true
	}

	g, err := generator.Lookup(*gen)
	if err != nil {
		return cfg, fmt.Errorf("-generator: %w", err)
	}
	cfg.Generator = g

	return cfg, cfg.Validate()
}

// Validate checks the settings are usable.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendEbiten, BackendTUI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Scale < MinScale || c.Scale > MaxScale {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrBadScale, c.Scale, MinScale, MaxScale)
	}
	return nil
}

// FromOS parses the process's own arguments and environment.
func FromOS() (Config, error) {
	return Parse(os.Args[1:], os.Getenv, os.Stderr)
}

// bind applies one "Action Name=key" pair to b. An empty key unbinds
// everything but the reserved keys.
func bind(b engineinput.Bindings, v string) error {
	name, code, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadBinding, v)
	}
	action, ok := engineinput.ParseAction(strings.TrimSpace(name))
	if !ok {
		return fmt.Errorf("%w: unknown action %q", ErrBadBinding, name)
	}
	b.SetSingleBinding(action, strings.ToLower(strings.TrimSpace(code)))
	return nil
}

func questNames() []string {
	names := make([]string, 0, quest.NumTypes)
	for t := quest.Type(0); t < quest.NumTypes; t++ {
		names = append(names, t.String())
	}
	return names
}
