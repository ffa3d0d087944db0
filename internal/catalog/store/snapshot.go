// Package store archives raw catalog responses locally or in object storage
package store

import (
	"fmt"
	"github.com/google/uuid"
	. "github.com/half-nothing/simple-launch/internal/interfaces/catalog"
	"github.com/half-nothing/simple-launch/internal/interfaces/config"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"path/filepath"
	"strings"
)

// NewSnapshotStore returns nil when snapshots are disabled
func NewSnapshotStore(logger log.LoggerInterface, storeConfig *config.SnapshotStoreConfig) SnapshotStoreInterface {
	if storeConfig == nil || !storeConfig.Enabled {
		return nil
	}
	localStore := NewLocalSnapshotStore(logger, storeConfig)
	switch storeConfig.StoreType {
	case config.ALiYunOssStore:
		logger.Info("Catalog snapshots will be archived to aliyun oss")
		return NewALiYunOssSnapshotStore(logger, storeConfig, localStore)
	case config.TencentCosStore:
		logger.Info("Catalog snapshots will be archived to tencent cos")
		return NewTencentCosSnapshotStore(logger, storeConfig, localStore)
	default:
		logger.Info("Catalog snapshots will be archived locally")
		return localStore
	}
}

func newSnapshotFileName() string {
	return fmt.Sprintf("launches-%s.json", uuid.NewString())
}

func remotePath(config *config.SnapshotStoreConfig, fileName string) string {
	return strings.ReplaceAll(filepath.Join(config.RemoteStorePath, fileName), "\\", "/")
}
