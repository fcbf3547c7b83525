package main

import (
	"context"

	"github.com/skynet2/starling-ynab-importer/pkg/processor"
)

type Syncer interface {
	Sync(ctx context.Context) (*processor.RunResult, error)
}

type Reporter interface {
	Report(ctx context.Context, result *processor.RunResult) string
}
