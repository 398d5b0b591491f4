package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"idx-scalping-sniper/internal/screener/config"
	"idx-scalping-sniper/internal/screener/delivery/cli"
	"idx-scalping-sniper/internal/screener/repository"
	"idx-scalping-sniper/internal/screener/search"
	"idx-scalping-sniper/internal/screener/service"
	"idx-scalping-sniper/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	configPath string
	rawOutput  bool
)

// newMenu wires the services behind the terminal front end.
func newMenu() (*cli.Menu, *logger.Logger) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The terminal is the user interface, keep the log quiet unless asked otherwise.
	level := cfg.Logger.Level
	if level == "" || level == "info" {
		level = "warn"
	}
	appLogger, err := logger.New(level, "console", logger.WithSuppressedMessages(cfg.Logger.Suppress...))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	marketDataRepo := repository.NewMarketDataRepository(cfg, appLogger)
	stockCodeRepo := repository.NewStockCodeRepository(cfg.Warrant.StockCodeFile)

	var analysisOpts []service.Option
	if stockIndex, err := search.Load(context.Background(), stockCodeRepo); err != nil {
		appLogger.Warn("Stock name search disabled", logger.ErrorField(err))
	} else {
		analysisOpts = append(analysisOpts, service.WithSymbolResolver(stockIndex))
	}

	menu := cli.NewMenu(os.Stdin, os.Stdout,
		service.NewScreeningService(cfg, appLogger, marketDataRepo),
		service.NewAnalysisService(appLogger, marketDataRepo, analysisOpts...),
		service.NewWarrantService(cfg, appLogger, marketDataRepo, stockCodeRepo),
		appLogger,
	)
	return menu, appLogger
}

func run(fn func(ctx context.Context, menu *cli.Menu) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		menu, appLogger := newMenu()
		defer func() { _ = appLogger.Sync() }()
		return fn(ctx, menu)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "sniper-cli",
		Short: "IDX momentum scalping screener",
		RunE: run(func(ctx context.Context, menu *cli.Menu) error {
			return menu.Run(ctx)
		}),
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-sniper.yaml", "Path to the configuration file")

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu",
		RunE:  rootCmd.RunE,
	}

	screenCmd := &cobra.Command{
		Use:   "screen",
		Short: "Run one momentum screening",
		RunE: run(func(ctx context.Context, menu *cli.Menu) error {
			menu.RunScreening(ctx)
			return nil
		}),
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze <symbol>",
		Short: "Show the trade plan of one stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, menu *cli.Menu) error {
				menu.RunAnalysis(ctx, args[0], rawOutput)
				return nil
			})(cmd, args)
		},
	}
	analyzeCmd.Flags().BoolVar(&rawOutput, "raw", false, "Print the upstream record instead of the trade plan")

	warrantCmd := &cobra.Command{
		Use:   "warrant",
		Short: "List active warrants",
		RunE: run(func(ctx context.Context, menu *cli.Menu) error {
			menu.RunWarrants(ctx)
			return nil
		}),
	}

	rootCmd.AddCommand(menuCmd, screenCmd, analyzeCmd, warrantCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing sniper-cli: %s\n", err)
		os.Exit(1)
	}
}
