// Package config
package config

import (
	"fmt"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"net/url"
	"slices"
	"time"
)

type DatabaseType string

const (
	MySQL      DatabaseType = "mysql"
	PostgreSQL DatabaseType = "postgres"
	SQLite     DatabaseType = "sqlite3"
	MongoDB    DatabaseType = "mongodb"
)

var allowedDatabaseType = []DatabaseType{MySQL, PostgreSQL, SQLite, MongoDB}

type DatabaseConfig struct {
	Type                 string        `json:"type"`
	DBType               DatabaseType  `json:"-"`
	Database             string        `json:"database"`
	Host                 string        `json:"host"`
	Port                 int           `json:"port"`
	Username             string        `json:"username"`
	Password             string        `json:"password"`
	EnableSSL            bool          `json:"enable_ssl"`
	ConnectIdleTimeout   string        `json:"connect_idle_timeout"` // 连接空闲超时时间
	ConnectIdleDuration  time.Duration `json:"-"`
	QueryTimeout         string        `json:"query_timeout"` // 每次查询超时时间
	QueryDuration        time.Duration `json:"-"`
	ServerMaxConnections int           `json:"server_max_connections"` // 最大连接池大小
}

func defaultDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Type:                 "sqlite3",
		Database:             "launches.db",
		Host:                 "",
		Port:                 0,
		Username:             "",
		Password:             "",
		EnableSSL:            false,
		ConnectIdleTimeout:   "1h",
		QueryTimeout:         "5s",
		ServerMaxConnections: 32,
	}
}

func (config *DatabaseConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	config.DBType = DatabaseType(config.Type)
	if !slices.Contains(allowedDatabaseType, config.DBType) {
		return ValidFail(fmt.Errorf("database type %s is not allowed, support database is %v, please check the configuration file", config.DBType, allowedDatabaseType))
	}

	if config.Database == "" {
		return ValidFail(fmt.Errorf("invalid json field database, database name cannot be empty"))
	}

	if config.ServerMaxConnections <= 0 {
		return ValidFail(fmt.Errorf("invalid json field server_max_connections, must be greater than zero"))
	}

	if duration, result := parseDuration("connect_idle_timeout", config.ConnectIdleTimeout); result.IsFail() {
		return result
	} else {
		config.ConnectIdleDuration = duration
	}

	if duration, result := parseDuration("query_timeout", config.QueryTimeout); result.IsFail() {
		return result
	} else {
		config.QueryDuration = duration
	}
	return ValidPass()
}

// GetConnection returns nil for MongoDB, which is not served through gorm
func (config *DatabaseConfig) GetConnection(logger log.LoggerInterface) gorm.Dialector {
	switch config.DBType {
	case MySQL:
		return mySQLConnection(logger, config)
	case PostgreSQL:
		return postgreSQLConnection(logger, config)
	case SQLite:
		return sqliteConnection(logger, config)
	default:
		return nil
	}
}

func (config *DatabaseConfig) MongoURI() string {
	uri := &url.URL{
		Scheme: "mongodb",
		Host:   fmt.Sprintf("%s:%d", config.Host, config.Port),
		Path:   "/",
	}
	if config.Username != "" {
		uri.User = url.UserPassword(config.Username, config.Password)
	}
	query := url.Values{}
	if config.EnableSSL {
		query.Set("tls", "true")
	}
	uri.RawQuery = query.Encode()
	return uri.String()
}

// MySQLDSN reports matched rows as affected so that re-aborting a launch still counts as a match
func (config *DatabaseConfig) MySQLDSN() string {
	var enableSSL string
	if config.EnableSSL {
		enableSSL = "true"
	} else {
		enableSSL = "false"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&clientFoundRows=true&tls=%s",
		url.QueryEscape(config.Username),
		url.QueryEscape(config.Password),
		config.Host,
		config.Port,
		config.Database,
		enableSSL,
	)
}

func mySQLConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	logger.DebugF("Mysql Connection DSN %s@tcp(%s:%d)/%s", db.Username, db.Host, db.Port, db.Database)
	return mysql.Open(db.MySQLDSN())
}

func postgreSQLConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	var enableSSL string
	if db.EnableSSL {
		enableSSL = "require"
	} else {
		enableSSL = "disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		db.Host,
		db.Username,
		db.Password,
		db.Database,
		db.Port,
		enableSSL,
	)
	logger.DebugF("PostgreSQL Connection host=%s user=%s dbname=%s port=%d", db.Host, db.Username, db.Database, db.Port)
	return postgres.Open(dsn)
}

func sqliteConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	logger.DebugF("SQLite database file %s", db.Database)
	return sqlite.Open(db.Database)
}
