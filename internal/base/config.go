package base

import (
	"encoding/json"
	"errors"
	. "github.com/half-nothing/simple-launch/internal/interfaces/config"
	"github.com/half-nothing/simple-launch/internal/interfaces/global"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"github.com/half-nothing/simple-launch/internal/utils"
	"os"
)

var ErrConfigCreated = errors.New("the configuration file does not exist and has been created, please edit it and start again")

func readConfig(logger log.LoggerInterface, path string) (*Config, *ValidResult) {
	config := DefaultConfig()

	bytes, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := saveConfig(path, config); err != nil {
			return nil, ValidFailWith(errors.New("fail to save configuration file while creating configuration file"), err)
		}
		return nil, ValidFail(ErrConfigCreated)
	case err != nil:
		return nil, ValidFailWith(errors.New("fail to read configuration file"), err)
	}

	if err := json.Unmarshal(bytes, config); err != nil {
		return nil, ValidFailWith(errors.New("the configuration file does not contain valid JSON"), err)
	}
	if result := config.CheckValid(logger); result.IsFail() {
		return nil, result
	}
	return config, ValidPass()
}

func saveConfig(path string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, global.DefaultFilePermissions)
}

// Manager loads the configuration file once and serves the cached result
type Manager struct {
	config *utils.CachedValue[Config]
	logger log.LoggerInterface
	path   string
}

func NewManager(logger log.LoggerInterface) *Manager {
	return NewManagerWithPath(logger, *global.ConfigFilePath)
}

func NewManagerWithPath(logger log.LoggerInterface, path string) *Manager {
	manager := &Manager{
		logger: logger,
		path:   path,
	}
	manager.config = utils.NewCachedValue(0, manager.getConfig)
	return manager
}

// Load reads and validates the configuration, it must succeed before Config is used
func (manager *Manager) Load() (*Config, *ValidResult) {
	config, result := readConfig(manager.logger, manager.path)
	if result.IsFail() {
		return nil, result
	}
	manager.config.SetValue(config)
	return config, result
}

func (manager *Manager) getConfig() *Config {
	config, result := readConfig(manager.logger, manager.path)
	if result.IsFail() {
		manager.logger.Fatal(result.Error().Error())
		panic(result.Error())
	}
	return config
}

func (manager *Manager) Config() *Config {
	return manager.config.GetValue()
}

func (manager *Manager) SaveConfig() error {
	return saveConfig(manager.path, manager.Config())
}
