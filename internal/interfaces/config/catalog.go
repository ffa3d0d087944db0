// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-launch/internal/interfaces/global"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"net/url"
	"time"
)

type CatalogConfig struct {
	ImportOnStartup  bool                 `json:"import_on_startup"`
	ApiUrl           string               `json:"api_url"`
	RequestTimeout   string               `json:"request_timeout"`
	RequestDuration  time.Duration        `json:"-"`
	ImportTimeout    string               `json:"import_timeout"`
	ImportDuration   time.Duration        `json:"-"`
	ProgressInterval int                  `json:"progress_interval"` // 每导入多少条记录输出一次进度
	Snapshot         *SnapshotStoreConfig `json:"snapshot"`
	Email            *EmailConfig         `json:"email"`
}

func defaultCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		ImportOnStartup:  true,
		ApiUrl:           global.SpaceXLaunchQueryUrl,
		RequestTimeout:   "30s",
		ImportTimeout:    "10m",
		ProgressInterval: 50,
		Snapshot:         defaultSnapshotStoreConfig(),
		Email:            defaultEmailConfig(),
	}
}

func (config *CatalogConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if target, err := url.Parse(config.ApiUrl); err != nil {
		return ValidFailWith(errors.New("invalid json field api_url"), err)
	} else if target.Scheme != "http" && target.Scheme != "https" {
		return ValidFail(errors.New("invalid json field api_url, only http and https are supported"))
	}

	if duration, result := parseDuration("request_timeout", config.RequestTimeout); result.IsFail() {
		return result
	} else {
		config.RequestDuration = duration
	}

	if config.ImportTimeout == "" {
		config.ImportTimeout = defaultCatalogConfig().ImportTimeout
	}
	if duration, result := parseDuration("import_timeout", config.ImportTimeout); result.IsFail() {
		return result
	} else {
		config.ImportDuration = duration
	}

	if config.ProgressInterval < 0 {
		return ValidFail(errors.New("invalid json field progress_interval, must not be negative"))
	}

	if config.Snapshot == nil {
		config.Snapshot = defaultSnapshotStoreConfig()
	}
	if result := config.Snapshot.checkValid(logger); result.IsFail() {
		return result.Wrap("snapshot")
	}

	if config.Email == nil {
		config.Email = defaultEmailConfig()
	}
	if result := config.Email.checkValid(logger); result.IsFail() {
		return result.Wrap("email")
	}
	return ValidPass()
}
