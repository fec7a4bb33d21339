package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"message-parser/internal/cache"
	"message-parser/internal/config"
	"message-parser/internal/interpolation"
	"message-parser/internal/message"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "message-parser",
		Short:         "Parse and check interpolation templates in message catalogs",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log parser recoveries and debug output")

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(protectCmd())
	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(graphCmd())
	rootCmd.AddCommand(usagesCmd())

	return rootCmd
}

func newParser() *message.Parser {
	return message.New(message.WithLogger(log.Logger))
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <template>",
		Short: "Print the AST of a template as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := newParser().Parse(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(msg)
		},
	}
}

func protectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "protect <template>",
		Short: "Replace placeholders with tokens that survive machine translation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			safe, mappings := interpolation.Protect(args[0])
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, safe)
			for _, m := range mappings {
				fmt.Fprintf(out, "%s\t%s\n", m.Placeholder, m.Original)
			}
			return nil
		},
	}
}

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <source> <translation>",
		Short: "Report placeholder keys that differ between a template and its translation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := interpolation.Compare(newParser(), args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, k := range diff.Missing {
				fmt.Fprintf(out, "- %s\n", k)
			}
			for _, k := range diff.Extra {
				fmt.Fprintf(out, "+ %s\n", k)
			}
			if !diff.Empty() {
				return fmt.Errorf("translation keys differ: %d missing, %d extra", len(diff.Missing), len(diff.Extra))
			}
			return nil
		},
	}
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.Warn().Msg("Received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// loadConfig loads the configuration and applies its log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		zerolog.SetGlobalLevel(cfg.Level())
	}
	return cfg, nil
}

// initStore opens the configured persistent cache store. The returned
// store is nil for the memory backend.
func initStore(ctx context.Context, cfg *config.Config) (cache.Store, func(), error) {
	switch cfg.CacheBackend {
	case config.CachePostgres:
		pgPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect PostgreSQL: %w", err)
		}
		if err := pgPool.Ping(ctx); err != nil {
			pgPool.Close()
			return nil, nil, fmt.Errorf("ping PostgreSQL: %w", err)
		}
		log.Info().Msg("Connected to PostgreSQL")

		store := cache.NewPostgresStore(pgPool)
		if err := store.EnsureSchema(ctx); err != nil {
			pgPool.Close()
			return nil, nil, err
		}
		return store, pgPool.Close, nil

	case config.CacheRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("ping Redis: %w", err)
		}
		log.Info().Msg("Connected to Redis")

		return cache.NewRedisStore(client, 7*24*time.Hour), func() { client.Close() }, nil

	default:
		return nil, func() {}, nil
	}
}
