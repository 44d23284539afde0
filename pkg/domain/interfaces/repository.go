package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . DatasetCache

import (
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
)

// DatasetCache holds loaded datasets keyed by their source URL
type DatasetCache interface {
	// Get returns the cached dataset if it is younger than the cache TTL
	Get(url types.DatasetURL) (*model.Dataset, bool)
	// Put stores a dataset, replacing any previous entry for the URL
	Put(url types.DatasetURL, dataset *model.Dataset)
}
