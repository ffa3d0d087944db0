// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"gopkg.in/gomail.v2"
	"net/mail"
)

type EmailConfig struct {
	Enabled     bool           `json:"enabled"`
	Host        string         `json:"host"`
	Port        int            `json:"port"`
	EmailServer *gomail.Dialer `json:"-"`
	Username    string         `json:"username"`
	Password    string         `json:"password"`
	Receivers   []string       `json:"receivers"` // 导入报告接收人
}

func defaultEmailConfig() *EmailConfig {
	return &EmailConfig{
		Enabled:   false,
		Host:      "smtp.example.com",
		Port:      465,
		Username:  "launch-control@example.com",
		Password:  "123456",
		Receivers: make([]string, 0),
	}
}

func (config *EmailConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}

	if len(config.Receivers) == 0 {
		return ValidFail(errors.New("invalid json field receivers, at least one receiver is required"))
	}
	for _, receiver := range config.Receivers {
		if _, err := mail.ParseAddress(receiver); err != nil {
			return ValidFailWith(errors.New("invalid json field receivers, malformed address "+receiver), err)
		}
	}

	config.EmailServer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dial, err := config.EmailServer.Dial()
	if err != nil {
		return ValidFailWith(errors.New("connecting to smtp server fail"), err)
	}
	_ = dial.Close()

	return ValidPass()
}
