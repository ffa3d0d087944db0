package store

import (
	"bytes"
	"context"
	"fmt"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	. "github.com/half-nothing/simple-launch/internal/interfaces/catalog"
	"github.com/half-nothing/simple-launch/internal/interfaces/config"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"net/url"
	"strings"
)

// ALiYunOssSnapshotStore keeps a local copy and uploads the snapshot to an OSS bucket
type ALiYunOssSnapshotStore struct {
	logger     log.LoggerInterface
	localStore SnapshotStoreInterface
	config     *config.SnapshotStoreConfig
	endpoint   *url.URL
	client     *oss.Client
}

func NewALiYunOssSnapshotStore(
	logger log.LoggerInterface,
	config *config.SnapshotStoreConfig,
	localStore SnapshotStoreInterface,
) *ALiYunOssSnapshotStore {
	store := &ALiYunOssSnapshotStore{logger: logger, localStore: localStore, config: config}
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credentials.NewStaticCredentialsProvider(config.AccessId, config.AccessKey)).
		WithRegion(config.Region).
		WithUseInternalEndpoint(config.UseInternalUrl)
	store.client = oss.NewClient(cfg)
	if config.CdnDomain != "" {
		store.endpoint, _ = url.Parse(config.CdnDomain)
	} else if cfg.Endpoint != nil {
		store.endpoint, _ = url.Parse(strings.Replace(*cfg.Endpoint, "-internal", "", 1))
	} else {
		store.endpoint, _ = url.Parse(fmt.Sprintf("https://%s.oss-%s.aliyuncs.com", config.Bucket, config.Region))
	}
	return store
}

func (store *ALiYunOssSnapshotStore) SaveSnapshot(ctx context.Context, data []byte) (*SnapshotInfo, error) {
	info, err := store.localStore.SaveSnapshot(ctx, data)
	if err != nil {
		return nil, err
	}
	info.RemotePath = remotePath(store.config, info.FileName)

	putRequest := &oss.PutObjectRequest{
		Bucket:       oss.Ptr(store.config.Bucket),
		Key:          oss.Ptr(info.RemotePath),
		StorageClass: oss.StorageClassStandard,
		ContentType:  oss.Ptr("application/json"),
		Body:         bytes.NewReader(data),
	}
	if _, err := store.client.PutObject(ctx, putRequest); err != nil {
		store.logger.ErrorF("ALiYunOssSnapshotStore.SaveSnapshot upload snapshot to remote storage error: %v", err)
		return nil, err
	}
	if store.endpoint != nil {
		info.AccessUrl, _ = url.JoinPath(store.endpoint.String(), info.RemotePath)
	}
	return info, nil
}
