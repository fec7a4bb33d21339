package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
)

// GraphBuilder writes message usage into Neo4j:
// (:Message)-[:USES]->(:Parameter), (:Message)-[:COUNTS_BY]->(:Parameter)
// and (:Parameter)-[:FORMATTED_BY]->(:Formatter).
type GraphBuilder struct {
	driver neo4j.DriverWithContext
}

// NewGraphBuilder creates a new graph builder.
func NewGraphBuilder(driver neo4j.DriverWithContext) *GraphBuilder {
	return &GraphBuilder{driver: driver}
}

// EnsureSchema creates constraints on the Neo4j database.
func (gb *GraphBuilder) EnsureSchema(ctx context.Context) error {
	session := gb.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	constraints := []string{
		"CREATE CONSTRAINT IF NOT EXISTS FOR (m:Message) REQUIRE m.id IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (p:Parameter) REQUIRE p.key IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (f:Formatter) REQUIRE f.name IS UNIQUE",
	}

	for _, c := range constraints {
		if _, err := session.Run(ctx, c, nil); err != nil {
			return fmt.Errorf("create constraint: %w", err)
		}
	}

	log.Info().Msg("Graph schema ensured")
	return nil
}

// AddUsage upserts a message node and its edges in one transaction.
func (gb *GraphBuilder) AddUsage(ctx context.Context, u Usage) error {
	session := gb.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, `
			MERGE (m:Message {id: $id})
			SET m.key = $key, m.file = $file
		`, map[string]any{
			"id":   messageID(u),
			"key":  u.MessageKey,
			"file": u.File,
		}); err != nil {
			return nil, fmt.Errorf("upsert message: %w", err)
		}

		for _, p := range u.Params {
			if _, err := tx.Run(ctx, `
				MATCH (m:Message {id: $id})
				MERGE (p:Parameter {key: $key})
				MERGE (m)-[r:USES]->(p)
				SET r.type = $type, r.optional = $optional, r.switchCase = $switchCase
			`, map[string]any{
				"id":         messageID(u),
				"key":        p.Key,
				"type":       p.Type,
				"optional":   p.Optional,
				"switchCase": p.SwitchCase,
			}); err != nil {
				return nil, fmt.Errorf("link parameter %s: %w", p.Key, err)
			}

			for _, f := range p.Formatters {
				if _, err := tx.Run(ctx, `
					MERGE (p:Parameter {key: $key})
					MERGE (f:Formatter {name: $name})
					MERGE (p)-[:FORMATTED_BY]->(f)
				`, map[string]any{"key": p.Key, "name": f}); err != nil {
					return nil, fmt.Errorf("link formatter %s: %w", f, err)
				}
			}
		}

		for _, k := range u.CountKeys {
			if _, err := tx.Run(ctx, `
				MATCH (m:Message {id: $id})
				MERGE (p:Parameter {key: $key})
				MERGE (m)-[:COUNTS_BY]->(p)
			`, map[string]any{"id": messageID(u), "key": k}); err != nil {
				return nil, fmt.Errorf("link count key %s: %w", k, err)
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("add usage %s: %w", u.MessageKey, err)
	}
	return nil
}

func messageID(u Usage) string {
	return u.File + "#" + u.MessageKey
}
