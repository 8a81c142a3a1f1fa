package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tagattr"
)

// benchInput это типичный вызов компонента: ключи, фильтры, перевод,
// вложенные коллекции и spread.
const benchInput = `"card" title=_("Welcome back") class="card {{ extra_class }}"
	items=[1, 2.5, *more]|join:", " attrs={'id': pk|stringformat:'d', **defaults}
	{# layout #} size=3 ...html_attrs disabled`

var benchCmd = &cobra.Command{
	Use:   "bench [flags] [text]",
	Short: "Parse an attribute list repeatedly and report throughput",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntP("iterations", "n", 10000, "number of parses")
	benchCmd.Flags().Int("max-depth", 0, "nesting limit (0 = from config)")
}

type benchResult struct {
	Iterations int
	Bytes      int
	Attrs      int
	Elapsed    time.Duration
}

func runBench(cmd *cobra.Command, args []string) error {
	n, err := cmd.Flags().GetInt("iterations")
	if err != nil {
		return fmt.Errorf("failed to get iterations flag: %w", err)
	}
	if n <= 0 {
		return fmt.Errorf("--iterations must be positive")
	}
	depth, err := global.maxDepth(cmd)
	if err != nil {
		return err
	}
	input := benchInput
	if len(args) > 0 {
		input = args[0]
	}

	res, err := benchParse(commandContext(cmd), input, n, tagattr.Options{MaxDepth: depth})
	if err != nil {
		return err
	}
	writeBench(cmd, res)
	return nil
}

func benchParse(ctx context.Context, input string, n int, opts tagattr.Options) (benchResult, error) {
	// первый разбор проверяет вход, чтобы не мерить путь ошибки
	attrs, err := tagattr.Parse(ctx, input, opts)
	if err != nil {
		return benchResult{}, fmt.Errorf("bench input does not parse: %w", err)
	}
	start := time.Now()
	for range n {
		if _, err := tagattr.Parse(ctx, input, opts); err != nil {
			return benchResult{}, err
		}
	}
	return benchResult{
		Iterations: n,
		Bytes:      n * len(input),
		Attrs:      len(attrs),
		Elapsed:    time.Since(start),
	}, nil
}

func writeBench(cmd *cobra.Command, r benchResult) {
	p := message.NewPrinter(language.English)
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		secs = 1e-9
	}
	out := cmd.OutOrStdout()
	p.Fprintf(out, "parsed %d tags of %d attributes (%d bytes) in %.1f ms\n",
		r.Iterations, r.Attrs, r.Bytes, float64(r.Elapsed)/float64(time.Millisecond))
	p.Fprintf(out, "%.0f tags/s, %.2f MB/s, %.0f ns/tag\n",
		float64(r.Iterations)/secs, float64(r.Bytes)/secs/1e6, float64(r.Elapsed.Nanoseconds())/float64(r.Iterations))
}
