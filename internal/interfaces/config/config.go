// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
)

type Config struct {
	ConfigVersion string            `json:"config_version"`
	HttpServer    *HttpServerConfig `json:"http_server"`
	Database      *DatabaseConfig   `json:"database"`
	Launch        *LaunchConfig     `json:"launch"`
	Catalog       *CatalogConfig    `json:"catalog"`
}

func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: ConfVersion.String(),
		HttpServer:    defaultHttpServerConfig(),
		Database:      defaultDatabaseConfig(),
		Launch:        defaultLaunchConfig(),
		Catalog:       defaultCatalogConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if version, err := newVersion(c.ConfigVersion); err != nil {
		return ValidFailWith(errors.New("version string parse fail"), err)
	} else if result := ConfVersion.checkVersion(version); result != AllMatch {
		return ValidFail(fmt.Errorf("config version mismatch, expected %s, got %s", ConfVersion.String(), version.String()))
	}
	if c.HttpServer == nil || c.Database == nil || c.Launch == nil || c.Catalog == nil {
		return ValidFail(errors.New("configuration file is missing one of http_server, database, launch or catalog"))
	}
	if result := c.Database.checkValid(logger); result.IsFail() {
		return result.Wrap("database")
	}
	if result := c.HttpServer.checkValid(logger); result.IsFail() {
		return result.Wrap("http_server")
	}
	if result := c.Launch.checkValid(logger); result.IsFail() {
		return result.Wrap("launch")
	}
	if result := c.Catalog.checkValid(logger); result.IsFail() {
		return result.Wrap("catalog")
	}
	return ValidPass()
}
