package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/parthsharma232007/arc-ascension/cmd/arc/root"
)

func main() {
	cfg := zap.NewProductionConfig()
	if os.Getenv("ARC_DEBUG") != "" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		// Keep the CLI quiet unless something goes wrong.
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	cfg.OutputPaths = []string{"stderr"}

	log, err := cfg.Build()
	if err != nil {
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()

	root.Execute(log)
}
