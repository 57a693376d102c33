package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/crewsearch/crewsearch"
	"github.com/crewsearch/crewsearch/config"
	"github.com/crewsearch/crewsearch/entity"
	"github.com/crewsearch/crewsearch/internal/mylog"
	"github.com/crewsearch/crewsearch/mcpserver"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootParams struct {
	crewFile   string
	logLevel   string
	logHandler string
}

func newCmd() *cobra.Command {
	params := &rootParams{}

	cmd := &cobra.Command{
		Use:   "crewsearch",
		Short: "Serve a crew-based web research tool over MCP stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			runtime, logger, err := newRuntime(params)
			if err != nil {
				return err
			}

			server := mcpserver.New(runtime, crewsearch.Version, logger)
			return server.Serve(ctx)
		},
	}

	cmd.PersistentFlags().StringVar(&params.crewFile, "crew-file", "", "YAML crew definition overriding the built-in research crew")
	cmd.PersistentFlags().StringVar(&params.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&params.logHandler, "log-handler", "", "log handler (default, json)")

	cmd.AddCommand(newRunCmd(params), newVersionCmd())

	return cmd
}

func newRunCmd(params *rootParams) *cobra.Command {
	return &cobra.Command{
		Use:   "run <query>",
		Short: "Run one research query and print the markdown answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runtime, _, err := newRuntime(params)
			if err != nil {
				return err
			}

			out, err := runtime.Research(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.Raw)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the crewsearch version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), crewsearch.Version)
		},
	}
}

func newRuntime(params *rootParams) (*crewsearch.Runtime, *mylog.Logger, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	logConfig := config.NewLogConfigFromEnv()
	if params.logLevel != "" {
		logConfig.LogLevel = params.logLevel
	}
	if params.logHandler != "" {
		logConfig.LogHandler = params.logHandler
	}
	logger := mylog.NewLogger(logConfig.LogLevel, logConfig.LogHandler)

	opts := []crewsearch.Option{
		crewsearch.WithLogger(logger),
		crewsearch.WithModelConfig(config.NewModelConfigFromEnv()),
		crewsearch.WithLinkupConfig(config.NewLinkupConfigFromEnv()),
	}

	if params.crewFile != "" {
		crewDef, err := entity.LoadCrewFromFile(params.crewFile)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("crew definition loaded", "file", params.crewFile, "crew", crewDef.Name)
		opts = append(opts, crewsearch.WithCrew(crewDef))
	}

	runtime, err := crewsearch.NewRuntime(opts...)
	if err != nil {
		return nil, nil, err
	}
	return runtime, logger, nil
}
