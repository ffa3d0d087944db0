package store

import (
	"context"
	. "github.com/half-nothing/simple-launch/internal/interfaces/catalog"
	"github.com/half-nothing/simple-launch/internal/interfaces/config"
	"github.com/half-nothing/simple-launch/internal/interfaces/global"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"os"
	"path/filepath"
)

type LocalSnapshotStore struct {
	logger log.LoggerInterface
	config *config.SnapshotStoreConfig
}

func NewLocalSnapshotStore(logger log.LoggerInterface, config *config.SnapshotStoreConfig) *LocalSnapshotStore {
	return &LocalSnapshotStore{logger: logger, config: config}
}

func (store *LocalSnapshotStore) SaveSnapshot(ctx context.Context, data []byte) (*SnapshotInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info := &SnapshotInfo{FileName: newSnapshotFileName(), Size: int64(len(data))}
	info.FilePath = filepath.Join(store.config.LocalStorePath, info.FileName)
	if err := os.MkdirAll(filepath.Clean(store.config.LocalStorePath), global.DefaultDirectoryPermission); err != nil {
		store.logger.ErrorF("LocalSnapshotStore.SaveSnapshot create directory error: %v", err)
		return nil, err
	}
	if err := os.WriteFile(info.FilePath, data, global.DefaultFilePermissions); err != nil {
		store.logger.ErrorF("LocalSnapshotStore.SaveSnapshot write file error: %v", err)
		return nil, err
	}
	return info, nil
}
