package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"tagattr/internal/config"
	"tagattr/internal/diagfmt"
)

// globals хранит общие для всех подкоманд настройки: файл конфигурации,
// поверх него глобальные флаги.
type globals struct {
	cfg            config.Config
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
}

var (
	global   globals
	cleanups []func()
)

// setupRun runs before every subcommand: tracing, profiling, configuration.
func setupRun(cmd *cobra.Command, _ []string) error {
	stopTrace, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopTrace)

	session, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	if session != nil {
		cleanups = append(cleanups, func() {
			if err := session.Stop(); err != nil {
				fmt.Fprintf(os.Stderr, "profile: %v\n", err)
			}
		})
	}

	g, err := loadGlobals(cmd)
	if err != nil {
		return err
	}
	global = g
	return nil
}

// cleanupRun останавливает профили и трейсер; повторный вызов ничего не делает.
func cleanupRun() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
}

func loadGlobals(cmd *cobra.Command) (globals, error) {
	pf := cmd.Root().PersistentFlags()

	explicit, err := pf.GetString("config")
	if err != nil {
		return globals{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Discover(explicit, ".")
	if err != nil {
		return globals{}, fmt.Errorf("config: %w", err)
	}

	g := globals{cfg: cfg}
	colorMode := cfg.Output.Color
	if pf.Changed("color") {
		if colorMode, err = pf.GetString("color"); err != nil {
			return globals{}, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	switch colorMode {
	case "on":
		g.color = true
	case "off":
		g.color = false
	case "auto":
		g.color = isTerminal(os.Stderr)
	default:
		return globals{}, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorMode)
	}

	if g.quiet, err = pf.GetBool("quiet"); err != nil {
		return globals{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if g.timings, err = pf.GetBool("timings"); err != nil {
		return globals{}, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if g.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return globals{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return g, nil
}

// prettyOpts: вывод диагностик в stderr.
func (g *globals) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:       g.color,
		Context:     1,
		PathMode:    diagfmt.PathModeAuto,
		ShowNotes:   true,
		ShowFixes:   true,
		ShowPreview: true,
	}
}

// maxDepth: флаг команды, если задан, иначе [parse].max_depth.
func (g *globals) maxDepth(cmd *cobra.Command) (int, error) {
	if cmd.Flags().Lookup("max-depth") != nil && cmd.Flags().Changed("max-depth") {
		d, err := cmd.Flags().GetInt("max-depth")
		if err != nil {
			return 0, fmt.Errorf("failed to get max-depth flag: %w", err)
		}
		if d < 0 {
			return 0, fmt.Errorf("--max-depth must not be negative")
		}
		return d, nil
	}
	return g.cfg.Parse.MaxDepth, nil
}

// outputFormat: --format, иначе [output].format, если команда его знает,
// иначе первый из allowed.
func outputFormat(cmd *cobra.Command, allowed ...string) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "" {
		if !slices.Contains(allowed, format) {
			return "", fmt.Errorf("unknown format %q (expected %s)", format, strings.Join(allowed, "|"))
		}
		return format, nil
	}
	if slices.Contains(allowed, global.cfg.Output.Format) {
		return global.cfg.Output.Format, nil
	}
	return allowed[0], nil
}
