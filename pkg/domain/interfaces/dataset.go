package interfaces

//go:generate moq -out mocks/dataset_mock.go -pkg mocks . DatasetFetcher DatasetLoader

import (
	"context"

	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
)

// DatasetFetcher retrieves the raw workbook bytes
type DatasetFetcher interface {
	Fetch(ctx context.Context, url types.DatasetURL) ([]byte, error)
}

// DatasetLoader returns a parsed dataset, possibly from cache
type DatasetLoader interface {
	Load(ctx context.Context, url types.DatasetURL) (*model.Dataset, error)
}
