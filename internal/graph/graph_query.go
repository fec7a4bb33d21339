package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
)

// MessageRef identifies a message in the usage graph.
type MessageRef struct {
	Key      string
	File     string
	Relation string
}

// GraphQuerier reads the usage graph.
type GraphQuerier struct {
	driver neo4j.DriverWithContext
}

// NewGraphQuerier creates a new graph querier.
func NewGraphQuerier(driver neo4j.DriverWithContext) *GraphQuerier {
	return &GraphQuerier{driver: driver}
}

// MessagesUsing lists messages that reference a parameter key, either as a
// placeholder or as a plural count key.
func (gq *GraphQuerier) MessagesUsing(ctx context.Context, key string) ([]MessageRef, error) {
	session := gq.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (m:Message)-[r:USES|COUNTS_BY]->(:Parameter {key: $key})
		RETURN m.key AS key, m.file AS file, type(r) AS relation
		ORDER BY file, key
	`, map[string]any{"key": key})
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}

	var refs []MessageRef
	for result.Next(ctx) {
		record := result.Record()
		k, _ := record.Get("key")
		f, _ := record.Get("file")
		rel, _ := record.Get("relation")

		refs = append(refs, MessageRef{
			Key:      fmt.Sprintf("%v", k),
			File:     fmt.Sprintf("%v", f),
			Relation: fmt.Sprintf("%v", rel),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}

	log.Debug().Str("key", key).Int("messages", len(refs)).Msg("Graph query complete")
	return refs, nil
}
