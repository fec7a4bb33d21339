package cli

import (
	"context"
	"errors"
	"fmt"

	"message-parser/internal/cache"
	"message-parser/internal/catalog"
	"message-parser/internal/filewalker"
	"message-parser/internal/message"
	"message-parser/internal/textutil"
	"message-parser/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// parsedEntry is a catalog entry together with its AST.
type parsedEntry struct {
	Entry   catalog.Entry
	Message message.ParsedMessage
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <directory>",
		Short: "Parse every template in the catalogs under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, closeStore, err := initStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			parseCache := cache.NewParseCache(newParser(), store)
			_, failed, err := parseCatalogs(ctx, afero.NewOsFs(), args[0], cfg.WorkerCount, parseCache)
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d templates failed to parse", failed)
			}
			return nil
		},
	}
}

// parseCatalogs loads every catalog under root and parses all entries.
// It returns the parsed entries and the number of entries that failed;
// failures are logged with their location.
func parseCatalogs(ctx context.Context, fs afero.Fs, root string, workers int, parseCache *cache.ParseCache) ([]parsedEntry, int, error) {
	w := filewalker.NewWalker(fs)
	files, err := w.Walk(root)
	if err != nil {
		return nil, 0, fmt.Errorf("walk catalogs: %w", err)
	}

	loadPool := worker.NewPool[filewalker.FileEntry, *catalog.Catalog](workers, func(_ context.Context, f filewalker.FileEntry) (*catalog.Catalog, error) {
		return w.Load(f)
	})

	var (
		entries []catalog.Entry
		failed  int
	)
	for _, task := range loadPool.Execute(ctx, files) {
		if task.Err != nil {
			log.Error().Err(task.Err).Str("file", task.Input.Path).Msg("Load catalog failed")
			failed++
			continue
		}
		entries = append(entries, task.Result.Entries...)
	}
	if err := ctx.Err(); err != nil {
		return nil, failed, err
	}

	parsePool := worker.NewPool[catalog.Entry, message.ParsedMessage](workers, func(ctx context.Context, e catalog.Entry) (message.ParsedMessage, error) {
		return parseCache.Parse(ctx, e.Text)
	})

	var parsed []parsedEntry
	for _, task := range parsePool.Execute(ctx, entries) {
		if task.Err != nil {
			if errors.Is(task.Err, context.Canceled) {
				return nil, failed, task.Err
			}
			log.Error().
				Err(task.Err).
				Str("file", task.Input.File).
				Int("line", task.Input.Line).
				Str("key", task.Input.Key).
				Str("text", textutil.Truncate(task.Input.Text, 40)).
				Msg("Template failed to parse")
			failed++
			continue
		}
		parsed = append(parsed, parsedEntry{Entry: task.Input, Message: task.Result})
	}

	log.Info().
		Int("files", len(files)).
		Int("templates", len(entries)).
		Int("failed", failed).
		Int("unique", parseCache.Len()).
		Msg("Catalog check complete")

	return parsed, failed, nil
}
