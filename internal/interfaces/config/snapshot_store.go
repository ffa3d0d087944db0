// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-launch/internal/interfaces/global"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"os"
	"path/filepath"
)

type StoreType int

const (
	LocalStore StoreType = iota
	ALiYunOssStore
	TencentCosStore
)

type SnapshotStoreConfig struct {
	Enabled         bool      `json:"enabled"`
	StoreType       StoreType `json:"store_type"`        // 存储类型, 0: 本地存储, 1: 阿里云OSS存储, 2: 腾讯云对象存储
	Region          string    `json:"region"`            // 云存储地域
	Bucket          string    `json:"bucket"`            // 云存储桶名
	AccessId        string    `json:"access_id"`         // 访问id
	AccessKey       string    `json:"access_key"`        // 访问秘钥
	CdnDomain       string    `json:"cdn_domain"`        // 自定义加速域名
	UseInternalUrl  bool      `json:"use_internal_url"`  // 上传使用内部域名
	LocalStorePath  string    `json:"local_store_path"`  // 本地存储路径
	RemoteStorePath string    `json:"remote_store_path"` // 远程存储路径
}

func defaultSnapshotStoreConfig() *SnapshotStoreConfig {
	return &SnapshotStoreConfig{
		Enabled:         false,
		StoreType:       LocalStore,
		Region:          "",
		Bucket:          "",
		AccessId:        "",
		AccessKey:       "",
		CdnDomain:       "",
		UseInternalUrl:  false,
		LocalStorePath:  "snapshots",
		RemoteStorePath: "catalog",
	}
}

func (config *SnapshotStoreConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}
	if config.LocalStorePath == "" {
		return ValidFail(errors.New("invalid json field local_store_path, path cannot be empty"))
	}
	if err := os.MkdirAll(filepath.Clean(config.LocalStorePath), global.DefaultDirectoryPermission); err != nil {
		return ValidFailWith(fmt.Errorf("error while creating local store path(%s)", config.LocalStorePath), err)
	}
	switch config.StoreType {
	case LocalStore:
	case ALiYunOssStore, TencentCosStore:
		if config.Region == "" {
			return ValidFail(errors.New("invalid json field region, region cannot be empty"))
		}
		if config.Bucket == "" {
			return ValidFail(errors.New("invalid json field bucket, bucket cannot be empty"))
		}
		if config.AccessId == "" {
			return ValidFail(errors.New("invalid json field access_id, access_id cannot be empty"))
		}
		if config.AccessKey == "" {
			return ValidFail(errors.New("invalid json field access_key, access_key cannot be empty"))
		}
	default:
		return ValidFail(fmt.Errorf("invalid json field store_type %d, only support 0, 1, 2", config.StoreType))
	}
	return ValidPass()
}
