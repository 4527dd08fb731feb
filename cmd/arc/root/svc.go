package root

import (
	"context"

	"go.uber.org/zap"

	"github.com/parthsharma232007/arc-ascension/internal/config"
	"github.com/parthsharma232007/arc-ascension/internal/engine"
	"github.com/parthsharma232007/arc-ascension/internal/generate"
	"github.com/parthsharma232007/arc-ascension/internal/storage"
)

func openService(ctx context.Context, log *zap.Logger) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	gen := generate.NewGeminiClient(generate.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.GenerationTimeout,
	}, log)

	return engine.NewService(storage.NewSQLiteStore(db), gen, log), cleanup, nil
}
