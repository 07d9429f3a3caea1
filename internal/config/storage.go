package config

import (
	"os"
	"sync"
)

type StorageConfig struct {
	DataDir string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		storageConfig = &StorageConfig{
			DataDir: dataDir,
		}
	})
	return storageConfig
}
