package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"message-parser/internal/message"
	"message-parser/internal/textutil"

	"github.com/rs/zerolog/log"
)

// Store persists encoded parse results by template hash.
type Store interface {
	// Get returns the encoded message for hash and whether it was found.
	Get(ctx context.Context, hash string) ([]byte, bool, error)
	// Set stores the encoded message parsed from source.
	Set(ctx context.Context, hash, source string, encoded []byte) error
}

// ParseCache memoizes parsed templates in memory, backed by an optional Store.
// Failed parses are never cached.
type ParseCache struct {
	parser *message.Parser
	store  Store
	mu     sync.RWMutex
	memory map[string]message.ParsedMessage // hash → parsed message
}

// NewParseCache creates a cache around parser. store may be nil for a
// memory-only cache.
func NewParseCache(parser *message.Parser, store Store) *ParseCache {
	return &ParseCache{
		parser: parser,
		store:  store,
		memory: make(map[string]message.ParsedMessage),
	}
}

// Parse returns the parsed form of raw, parsing it at most once per cache.
func (c *ParseCache) Parse(ctx context.Context, raw string) (message.ParsedMessage, error) {
	hash := textutil.Hash(raw)

	// Check in-memory cache first.
	c.mu.RLock()
	if msg, ok := c.memory[hash]; ok {
		c.mu.RUnlock()
		return msg, nil
	}
	c.mu.RUnlock()

	if msg, ok := c.fromStore(ctx, hash); ok {
		c.remember(hash, msg)
		return msg, nil
	}

	msg, err := c.parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	c.remember(hash, msg)

	if c.store != nil {
		if err := c.persist(ctx, hash, raw, msg); err != nil {
			log.Warn().Err(err).Str("text", textutil.Truncate(raw, 30)).Msg("Failed to persist parsed message")
		}
	}
	return msg, nil
}

// Len returns the number of messages held in memory.
func (c *ParseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.memory)
}

func (c *ParseCache) fromStore(ctx context.Context, hash string) (message.ParsedMessage, bool) {
	if c.store == nil {
		return nil, false
	}
	data, ok, err := c.store.Get(ctx, hash)
	if err != nil {
		log.Warn().Err(err).Str("hash", hash).Msg("Parse cache lookup failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	msg, err := message.Decode(data)
	if err != nil {
		log.Warn().Err(err).Str("hash", hash).Msg("Discarding undecodable cache entry")
		return nil, false
	}
	return msg, true
}

func (c *ParseCache) persist(ctx context.Context, hash, raw string, msg message.ParsedMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode parsed message: %w", err)
	}
	if err := c.store.Set(ctx, hash, raw, data); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *ParseCache) remember(hash string, msg message.ParsedMessage) {
	c.mu.Lock()
	c.memory[hash] = msg
	c.mu.Unlock()
}
