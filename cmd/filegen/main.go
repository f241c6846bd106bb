package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yokitheyo/filegen/internal/cli"
	"github.com/yokitheyo/filegen/internal/config"
	"github.com/yokitheyo/filegen/internal/engine"
	"github.com/yokitheyo/filegen/internal/logging"
	"github.com/yokitheyo/filegen/internal/outdir"
)

// CLI flags
var (
	configFlag   string
	parallelFlag int
	values       cli.Values
)

var rootCmd = &cobra.Command{
	Use:   "filegen",
	Short: "Generate files of random size filled with random bytes",
	Long: `filegen writes a number of files filled with random bytes into a directory.
Each file is a whole number of megabytes, picked at random between --min and --max.

Any value not given as a flag is prompted for interactively.

Examples:
  filegen -d /tmp/out -e txt -n 5 --min 1 --max 10
  filegen -d ./data -e pdf -n 1 --size 50
  filegen  # Interactive mode`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.Flags().Changed)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to YAML config file (default $FILEGEN_CONFIG or "+config.DefaultPath+")")
	rootCmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 0, "Maximum files written at once (0 = use config)")
	rootCmd.Flags().StringVarP(&values.Dir, "dir", "d", "", "Destination directory")
	rootCmd.Flags().StringVarP(&values.Extension, "ext", "e", "", "File extension (txt, jpg, gif, doc, pdf)")
	rootCmd.Flags().IntVarP(&values.Count, "count", "n", 0, "Number of files to generate")
	rootCmd.Flags().IntVar(&values.MinSizeMB, "min", 0, "Minimum file size in MB")
	rootCmd.Flags().IntVar(&values.MaxSizeMB, "max", 0, "Maximum file size in MB")
	rootCmd.Flags().IntVar(&values.SizeMB, "size", 0, "Exact file size in MB (sets both --min and --max)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer, isSet func(string) bool) error {
	path := configFlag
	if path == "" {
		path = os.Getenv("FILEGEN_CONFIG")
	}
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logging.Init(cfg.LogLevel)

	v := values
	cli.NewPrompter(in, out).Fill(&v, isSet)
	if v.Count <= 0 {
		fmt.Fprintln(out, "Entered 0 or an invalid number of files, exiting.")
		return nil
	}

	job, notes := cli.NewNormalizer(cfg.Generation.AllowedExtensions, cfg.Generation.DefaultExtension).Job(v)
	for _, note := range notes {
		fmt.Fprintln(out, note)
	}

	dir, fellBack, err := outdir.Prepare(job.Dir, cfg.FallbackDir, log.Logger)
	if err != nil {
		return err
	}
	if fellBack {
		fmt.Fprintf(out, "Unable to create directory specified. Creating at default location: %q\n", dir)
	}
	job.Dir = dir

	maxParallel := cfg.Generation.MaxParallelOps
	if parallelFlag > 0 {
		maxParallel = parallelFlag
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.FormatPlan(job))

	eng := engine.New(engine.Options{MaxParallel: maxParallel, Logger: &log.Logger})
	report, err := eng.Run(ctx, job)
	if err != nil {
		return err
	}

	inv, err := outdir.Scan(job.Dir, job.Extension)
	if err != nil {
		log.Warn().Err(err).Str("path", job.Dir).Msg("failed to scan destination directory")
		inv = nil
	}
	fmt.Fprint(out, cli.FormatSummary(report, inv))
	return nil
}
