// Package config loads tagattr.toml.
//
// The file is looked up by walking from the working directory towards the
// filesystem root. Every key is optional; a missing key
// keeps its default. Flags passed on the command line win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up by Find.
const FileName = "tagattr.toml"

var (
	// ErrUnknownKey is wrapped when the file carries keys Load does not know.
	ErrUnknownKey = errors.New("unknown key")
	ErrBadValue   = errors.New("invalid value")
)

type Parse struct {
	MaxDepth int `toml:"max_depth"`
}

type Check struct {
	Tags       []string `toml:"tags"`
	Extensions []string `toml:"extensions"`
	Jobs       int      `toml:"jobs"`  // 0 → GOMAXPROCS
	Cache      bool     `toml:"cache"` // кэш результатов на диске
}

type Output struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type Config struct {
	Parse  Parse  `toml:"parse"`
	Check  Check  `toml:"check"`
	Output Output `toml:"output"`

	// Path of the file the values came from, empty for defaults.
	Path string `toml:"-"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Parse: Parse{MaxDepth: 128},
		Check: Check{
			Tags:       []string{"component", "fill", "slot", "provide", "html_attrs"},
			Extensions: []string{".html", ".djhtml", ".txt"},
			Cache:      true,
		},
		Output: Output{Format: "pretty", Color: "auto"},
	}
}

// Find walks up from startDir to locate tagattr.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	// пустой список тегов в файле: ошибка, а не "ничего не проверять"
	if meta.IsDefined("check", "tags") && len(cfg.Check.Tags) == 0 {
		return Config{}, fmt.Errorf("%s: %w: [check].tags is empty", path, ErrBadValue)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Discover loads the file given explicitly, or the nearest tagattr.toml
// above startDir, or returns the defaults.
func Discover(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

var (
	formats = []string{"pretty", "json", "yaml", "msgpack", "short", "sarif"}
	colors  = []string{"auto", "on", "off"}
)

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Parse.MaxDepth < 0 {
		return fmt.Errorf("%w: [parse].max_depth must not be negative, got %d", ErrBadValue, c.Parse.MaxDepth)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("%w: [check].jobs must not be negative, got %d", ErrBadValue, c.Check.Jobs)
	}
	for _, tag := range c.Check.Tags {
		if !isTagName(tag) {
			return fmt.Errorf("%w: [check].tags: %q is not a tag name", ErrBadValue, tag)
		}
	}
	for i, ext := range c.Check.Extensions {
		if !strings.HasPrefix(ext, ".") {
			c.Check.Extensions[i] = "." + ext
		}
	}
	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("%w: [output].format %q, want one of %s", ErrBadValue, c.Output.Format, strings.Join(formats, ", "))
	}
	if !slices.Contains(colors, c.Output.Color) {
		return fmt.Errorf("%w: [output].color %q, want one of %s", ErrBadValue, c.Output.Color, strings.Join(colors, ", "))
	}
	return nil
}

func isTagName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}
