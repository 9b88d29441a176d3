package storage

import (
	"fmt"

	"github.com/gravadigital/ideaboard/internal/config"
	"github.com/gravadigital/ideaboard/internal/storage/gormkv"
	"github.com/gravadigital/ideaboard/internal/storage/memory"
)

// StorageType represents the type of storage backend
type StorageType string

const (
	// StorageTypeSQLite represents the local SQLite-backed store
	StorageTypeSQLite StorageType = "sqlite"
	// StorageTypePostgres represents PostgreSQL storage
	StorageTypePostgres StorageType = "postgres"
	// StorageTypeMemory represents the in-process ephemeral store
	StorageTypeMemory StorageType = "memory"
)

// Factory provides a factory pattern for creating key-value stores
type Factory struct {
	storageType StorageType
}

// NewFactory creates a new storage factory
func NewFactory(storageType StorageType) *Factory {
	return &Factory{
		storageType: storageType,
	}
}

// CreateStore creates a key-value store based on the configured type
func (f *Factory) CreateStore(cfg *config.Config) (KeyValue, error) {
	switch f.storageType {
	case StorageTypeSQLite:
		return gormkv.OpenSQLite(cfg)
	case StorageTypePostgres:
		return gormkv.OpenPostgres(cfg)
	case StorageTypeMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", f.storageType)
	}
}

// GetSupportedTypes returns a list of supported storage types
func GetSupportedTypes() []StorageType {
	return []StorageType{
		StorageTypeSQLite,
		StorageTypePostgres,
		StorageTypeMemory,
	}
}

// ValidateStorageType validates if a storage type is supported
func ValidateStorageType(storageType string) (StorageType, error) {
	st := StorageType(storageType)

	for _, supported := range GetSupportedTypes() {
		if st == supported {
			return st, nil
		}
	}

	return "", fmt.Errorf("unsupported storage type: %s. Supported types: %v", storageType, GetSupportedTypes())
}

// DefaultFactory returns a factory configured with the default storage type
func DefaultFactory() *Factory {
	return NewFactory(StorageTypeSQLite)
}
