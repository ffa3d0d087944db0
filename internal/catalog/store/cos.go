package store

import (
	"bytes"
	"context"
	"fmt"
	. "github.com/half-nothing/simple-launch/internal/interfaces/catalog"
	"github.com/half-nothing/simple-launch/internal/interfaces/config"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"github.com/tencentyun/cos-go-sdk-v5"
	"net/http"
	"net/url"
	"strings"
)

// TencentCosSnapshotStore keeps a local copy and uploads the snapshot to a COS bucket
type TencentCosSnapshotStore struct {
	logger     log.LoggerInterface
	localStore SnapshotStoreInterface
	config     *config.SnapshotStoreConfig
	endpoint   *url.URL
	client     *cos.Client
}

func NewTencentCosSnapshotStore(
	logger log.LoggerInterface,
	config *config.SnapshotStoreConfig,
	localStore SnapshotStoreInterface,
) *TencentCosSnapshotStore {
	store := &TencentCosSnapshotStore{logger: logger, localStore: localStore, config: config}
	bucketUrl, _ := url.Parse(fmt.Sprintf("https://%s.cos.%s.myqcloud.com", config.Bucket, strings.ToLower(config.Region)))
	serviceUrl, _ := url.Parse(fmt.Sprintf("https://cos.%s.myqcloud.com", strings.ToLower(config.Region)))
	store.client = cos.NewClient(&cos.BaseURL{BucketURL: bucketUrl, ServiceURL: serviceUrl}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  config.AccessId,
			SecretKey: config.AccessKey,
		},
	})
	if config.CdnDomain != "" {
		store.endpoint, _ = url.Parse(config.CdnDomain)
	} else {
		store.endpoint = store.client.BaseURL.BucketURL
	}
	return store
}

func (store *TencentCosSnapshotStore) SaveSnapshot(ctx context.Context, data []byte) (*SnapshotInfo, error) {
	info, err := store.localStore.SaveSnapshot(ctx, data)
	if err != nil {
		return nil, err
	}
	info.RemotePath = remotePath(store.config, info.FileName)

	options := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{ContentType: "application/json"},
	}
	if _, err := store.client.Object.Put(ctx, info.RemotePath, bytes.NewReader(data), options); err != nil {
		store.logger.ErrorF("TencentCosSnapshotStore.SaveSnapshot upload snapshot to remote storage error: %v", err)
		return nil, err
	}
	if store.endpoint != nil {
		info.AccessUrl, _ = url.JoinPath(store.endpoint.String(), info.RemotePath)
	}
	return info, nil
}
