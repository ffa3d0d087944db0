// Package global
package global

import (
	"flag"
)

var (
	DebugMode      = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath = flag.String("config", "./config.json", "Path to configuration file")
)

const (
	AppVersion    = "1.0.0"
	ConfigVersion = "1.0.0"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	SpaceXLaunchQueryUrl = "https://api.spacexdata.com/v4/launches/query"
	ApiVersionPrefix     = "/v1"
)
