package cli

import (
	"context"
	"fmt"

	"message-parser/internal/cache"
	"message-parser/internal/config"
	"message-parser/internal/graph"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph <directory>",
		Short: "Export parameter usage of all catalog templates to Neo4j",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(args[0])
		},
	}
}

func usagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usages <key>",
		Short: "List messages in the usage graph that reference a parameter key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			driver, err := initNeo4j(ctx, cfg)
			if err != nil {
				return err
			}
			defer driver.Close(ctx)

			refs, err := graph.NewGraphQuerier(driver).MessagesUsing(ctx, args[0])
			if err != nil {
				return err
			}
			for _, r := range refs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", r.File, r.Key, r.Relation)
			}
			return nil
		},
	}
}

// runGraph handles the `graph` command.
func runGraph(root string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	driver, err := initNeo4j(ctx, cfg)
	if err != nil {
		return err
	}
	defer driver.Close(ctx)

	builder := graph.NewGraphBuilder(driver)
	if err := builder.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure graph schema: %w", err)
	}

	parsed, failed, err := parseCatalogs(ctx, afero.NewOsFs(), root, cfg.WorkerCount, cache.NewParseCache(newParser(), nil))
	if err != nil {
		return err
	}

	for _, p := range parsed {
		u := graph.Extract(p.Entry.Key, p.Entry.File, p.Message)
		if err := builder.AddUsage(ctx, u); err != nil {
			log.Warn().Err(err).Str("key", p.Entry.Key).Msg("Failed to add usage to graph")
		}
	}

	log.Info().
		Int("messages", len(parsed)).
		Int("skipped", failed).
		Msg("Usage graph export complete")
	return nil
}

func initNeo4j(ctx context.Context, cfg *config.Config) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI, neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""))
	if err != nil {
		return nil, fmt.Errorf("connect Neo4j: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("verify Neo4j connectivity: %w", err)
	}
	log.Info().Msg("Connected to Neo4j")

	return driver, nil
}
