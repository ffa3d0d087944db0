// Package config
package config

import (
	"fmt"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"time"
)

type HttpServerConfig struct {
	Host            string        `json:"host"`
	Port            uint          `json:"port"`
	Address         string        `json:"-"`
	ProxyType       int           `json:"proxy_type"` // 0: 直连, 1: X-Forwarded-For, 2: X-Real-IP
	BodyLimit       string        `json:"body_limit"`
	RequestTimeout  string        `json:"request_timeout"`
	RequestDuration time.Duration `json:"-"`
	SSL             *SSLConfig    `json:"ssl"`
}

func defaultHttpServerConfig() *HttpServerConfig {
	return &HttpServerConfig{
		Host:           "0.0.0.0",
		Port:           8000,
		ProxyType:      0,
		BodyLimit:      "1MB",
		RequestTimeout: "30s",
		SSL:            defaultSSLConfig(),
	}
}

func (config *HttpServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if result := checkPort(config.Port); result.IsFail() {
		return result
	}

	config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)

	if config.ProxyType < 0 || config.ProxyType > 2 {
		return ValidFail(fmt.Errorf("invalid json field proxy_type %d, only support 0, 1, 2", config.ProxyType))
	}

	if config.BodyLimit == "" {
		logger.WarnF("body_limit is empty, where the length of the request body is not restricted. This is a very dangerous behavior")
	}

	if duration, result := parseDuration("request_timeout", config.RequestTimeout); result.IsFail() {
		return result
	} else {
		config.RequestDuration = duration
	}

	if config.SSL == nil {
		config.SSL = defaultSSLConfig()
	}
	return config.SSL.checkValid(logger)
}
