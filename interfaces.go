package cognigraph

import (
	"context"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/pipeline"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

// This file defines focused interfaces so consumers can depend on the
// smallest surface that meets their needs. The main CogniGraph interface is
// composed from these.

// Extractor processes documents into graph writes. The ingest worker
// depends on this interface only.
type Extractor interface {
	ProcessDocument(ctx context.Context, doc types.Document) (*pipeline.Result, error)
}

// Answerer answers questions against the graph. The HTTP server depends on
// this interface only.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// Closer releases shared resources at shutdown.
type Closer interface {
	Close(ctx context.Context) error
}

// Ensure CogniGraph composes the focused interfaces.
var _ interface {
	Extractor
	Answerer
	Closer
} = (CogniGraph)(nil)
