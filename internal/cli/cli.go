package cli

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"resxgen/internal/compiler"
	"resxgen/internal/host"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "resxgen",
		Short: "Compile .resx resource catalogs into strongly-typed accessor source",
		Long: `resxgen groups culture variants of .resx resource-description files,
resolves per-group configuration, merges entries across variants, and emits
one accessor artifact plus a name-constant catalog per group.`,
	}

	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <input-dir>",
		Short: "Compile every resource group found under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			workers, _ := cmd.Flags().GetInt("workers")
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return runGenerate(args[0], out, workers)
		},
	}

	cmd.Flags().String("out", "generated", "Output directory for emitted artifacts")
	cmd.Flags().Int("workers", runtime.NumCPU(), "Number of groups compiled concurrently")
	cmd.Flags().Bool("verbose", false, "Enable debug logging")

	return cmd
}

// runGenerate handles the `generate` command.
func runGenerate(inputDir, outDir string, workers int) error {
	ctx, cancel := setupContext()
	defer cancel()

	h, err := host.NewFS(inputDir, outDir)
	if err != nil {
		return err
	}

	inputs, err := h.Inputs()
	if err != nil {
		return err
	}

	return compiler.New(h, workers).Run(ctx, inputs)
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}
