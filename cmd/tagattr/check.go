package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tagattr/internal/batch"
	"tagattr/internal/diag"
	"tagattr/internal/diagfmt"
	"tagattr/internal/driver"
	"tagattr/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [paths...]",
	Short: "Check tag attributes in template files",
	Long: `Check finds {% tag ... %} invocations of the configured tags in template
files, parses every attribute list and reports diagnostics positioned in the
templates. Directories are walked for files with the configured extensions.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "output format (pretty|json|short|sarif)")
	checkCmd.Flags().StringSlice("tags", nil, "tag names to check (default from config)")
	checkCmd.Flags().StringSlice("ext", nil, "file extensions to scan in directories (default from config)")
	checkCmd.Flags().Int("jobs", 0, "max parallel parse workers (0=from config, then GOMAXPROCS)")
	checkCmd.Flags().Int("max-depth", 0, "nesting limit (0 = from config)")
	checkCmd.Flags().Bool("no-cache", false, "do not read or write the on-disk result cache")
	checkCmd.Flags().Bool("clear-cache", false, "drop the on-disk result cache before checking")
	checkCmd.Flags().Bool("watch", false, "re-check when files change")
	checkCmd.Flags().String("ui", "off", "progress view (auto|on|off)")
	checkCmd.Flags().String("path-mode", "auto", "paths in output (auto|absolute|relative|basename)")
	checkCmd.Flags().Bool("with-notes", true, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", true, "include fix suggestions in output")
}

type checkOptions struct {
	format   string
	pathMode diagfmt.PathMode
	notes    bool
	fixes    bool
	exts     []string
	watch    bool
	ui       uiMode
}

func runCheck(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	copts, opts, err := readCheckFlags(cmd)
	if err != nil {
		return err
	}

	cache, err := openCheckCache(cmd)
	if err != nil {
		return err
	}
	opts.Disk = cache

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	if copts.watch {
		return watchCheck(ctx, cmd, paths, copts, opts)
	}

	files, err := batch.Collect(paths, copts.exts)
	if err != nil {
		return err
	}
	var res *batch.Result
	if shouldUseTUI(copts.ui) && len(files) > 0 {
		res, err = runCheckWithUI(ctx, files, opts)
	} else {
		res, err = batch.Check(ctx, files, opts)
	}
	if err != nil {
		if batch.IsCancelled(err) {
			return fmt.Errorf("check cancelled")
		}
		return err
	}
	if err := renderCheck(cmd, res, copts); err != nil {
		return err
	}
	return exitIfErrors(res.Bag)
}

func readCheckFlags(cmd *cobra.Command) (checkOptions, batch.Options, error) {
	cfg := global.cfg.Check
	var (
		copts checkOptions
		err   error
	)
	if copts.format, err = outputFormat(cmd, "pretty", "json", "short", "sarif"); err != nil {
		return copts, batch.Options{}, err
	}

	flags := cmd.Flags()
	tags := cfg.Tags
	if flags.Changed("tags") {
		if tags, err = flags.GetStringSlice("tags"); err != nil {
			return copts, batch.Options{}, fmt.Errorf("failed to get tags flag: %w", err)
		}
	}
	copts.exts = cfg.Extensions
	if flags.Changed("ext") {
		exts, err := flags.GetStringSlice("ext")
		if err != nil {
			return copts, batch.Options{}, fmt.Errorf("failed to get ext flag: %w", err)
		}
		copts.exts = copts.exts[:0:0]
		for _, e := range exts {
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			copts.exts = append(copts.exts, e)
		}
	}
	jobs := cfg.Jobs
	if flags.Changed("jobs") {
		if jobs, err = flags.GetInt("jobs"); err != nil {
			return copts, batch.Options{}, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	depth, err := global.maxDepth(cmd)
	if err != nil {
		return copts, batch.Options{}, err
	}

	pathMode, err := flags.GetString("path-mode")
	if err != nil {
		return copts, batch.Options{}, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	var ok bool
	if copts.pathMode, ok = diagfmt.ParsePathMode(pathMode); !ok {
		return copts, batch.Options{}, fmt.Errorf("invalid --path-mode value %q", pathMode)
	}
	if copts.notes, err = flags.GetBool("with-notes"); err != nil {
		return copts, batch.Options{}, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if copts.fixes, err = flags.GetBool("suggest"); err != nil {
		return copts, batch.Options{}, fmt.Errorf("failed to get suggest flag: %w", err)
	}
	if copts.watch, err = flags.GetBool("watch"); err != nil {
		return copts, batch.Options{}, fmt.Errorf("failed to get watch flag: %w", err)
	}
	uiFlag, err := flags.GetString("ui")
	if err != nil {
		return copts, batch.Options{}, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if copts.ui, err = readUIMode(uiFlag); err != nil {
		return copts, batch.Options{}, err
	}
	if copts.watch && copts.ui == uiModeOn {
		return copts, batch.Options{}, fmt.Errorf("--watch and --ui cannot be used together")
	}
	if copts.watch {
		copts.ui = uiModeOff
	}

	return copts, batch.Options{
		Tags:           tags,
		MaxDepth:       depth,
		MaxDiagnostics: global.maxDiagnostics,
		Jobs:           jobs,
		Timings:        global.timings,
	}, nil
}

// openCheckCache открывает дисковый кэш, если он не выключен. Сбой кэша
// не мешает проверке: печатаем предупреждение и работаем без него.
func openCheckCache(cmd *cobra.Command) (*driver.DiskCache, error) {
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if noCache || (!global.cfg.Check.Cache && !clearCache) {
		return nil, nil
	}
	cache, err := driver.OpenDiskCache("tagattr")
	if err != nil {
		if !global.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: result cache disabled: %v\n", err)
		}
		return nil, nil
	}
	if clearCache {
		if err := cache.DropAll(); err != nil {
			return nil, fmt.Errorf("clear cache: %w", err)
		}
	}
	if !global.cfg.Check.Cache {
		return nil, nil
	}
	return cache, nil
}

func watchCheck(ctx context.Context, cmd *cobra.Command, paths []string, copts checkOptions, opts batch.Options) error {
	opts.Memory = driver.NewMemCache(64)
	errOut := cmd.ErrOrStderr()
	if !global.quiet {
		fmt.Fprintf(errOut, "watching %s (Ctrl+C to stop)\n", strings.Join(paths, ", "))
	}
	return batch.Watch(ctx, paths, batch.WatchOptions{
		Check:      opts,
		Extensions: copts.exts,
		OnResult: func(res *batch.Result) {
			if !global.quiet {
				fmt.Fprintf(errOut, "\n[%s]\n", time.Now().Format(time.TimeOnly))
			}
			if err := renderCheck(cmd, res, copts); err != nil {
				fmt.Fprintf(errOut, "error: %v\n", err)
			}
		},
		OnError: func(err error) {
			fmt.Fprintf(errOut, "watch: %v\n", err)
		},
	})
}

// renderCheck печатает диагностики в stdout в выбранном формате и сводку в stderr.
func renderCheck(cmd *cobra.Command, res *batch.Result, copts checkOptions) error {
	out := cmd.OutOrStdout()
	bag := res.Bag
	var err error
	switch copts.format {
	case "json":
		err = diagfmt.JSON(out, bag, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         copts.pathMode,
			Max:              global.maxDiagnostics,
			IncludeNotes:     copts.notes,
			IncludeFixes:     copts.fixes,
			IncludePreviews:  copts.fixes,
		})
	case "sarif":
		err = diagfmt.Sarif(out, bag, res.FileSet, diagfmt.SarifRunMeta{
			ToolName:       "tagattr",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		})
	case "short":
		err = diagfmt.Short(out, bag, res.FileSet, copts.pathMode, global.maxDiagnostics, copts.notes)
	default:
		shown := limitBag(bag, global.maxDiagnostics)
		opts := global.prettyOpts()
		opts.PathMode = copts.pathMode
		opts.ShowNotes = copts.notes
		opts.ShowFixes = copts.fixes
		opts.ShowPreview = copts.fixes
		diagfmt.Pretty(out, shown, res.FileSet, opts)
		if hidden := bag.Len() - shown.Len(); hidden > 0 {
			fmt.Fprintf(out, "\n... %d more diagnostics not shown\n", hidden)
		}
	}
	if err != nil {
		return err
	}
	if !global.quiet {
		writeSummary(cmd.ErrOrStderr(), res.Summary())
	}
	return nil
}

func limitBag(bag *diag.Bag, max int) *diag.Bag {
	if max <= 0 || bag.Len() <= max {
		return bag
	}
	out := diag.NewBag(max)
	for _, d := range bag.Items() {
		if !out.Add(d) {
			break
		}
	}
	return out
}

func writeSummary(w io.Writer, s batch.Summary) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "checked %d files: %d tags, %d attributes", s.Files, s.Tags, s.Attrs)
	if s.Cached > 0 {
		p.Fprintf(w, ", %d cached", s.Cached)
	}
	if s.Errors > 0 {
		p.Fprintf(w, "; %d with errors\n", s.Errors)
		return
	}
	p.Fprintf(w, "; no errors\n")
}
