package main

import (
	"context"
	"errors"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(HandleExitError(os.Stderr, NewRootCommand().ExecuteContext(context.Background())))
}

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sheetcells",
		Short:         "Spreadsheet cells API with formula evaluation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	var repository string
	var listenAddr string
	var lenient bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the cells API",
		Long: `Serve the cells API backed by the chosen repository.

Example: sheetcells serve -r bolt --listen :3000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			config, err := LoadConfig()
			if err != nil {
				return err
			}

			if repository != "" {
				config.Repository = RepositoryKind(repository)
			}
			if listenAddr != "" {
				config.ListenAddr = listenAddr
			}
			if lenient {
				config.EvaluationMode = LenientMode
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return RunApp(ctx, config, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&repository, "repository", "r", "", "Cell repository: bolt, postgres or firebase (env REPOSITORY)")
	cmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (env LISTEN_ADDR)")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Resolve failing referenced cells to 0 instead of failing")

	return cmd
}
