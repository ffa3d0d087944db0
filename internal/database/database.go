package database

import (
	"context"
	"errors"
	"fmt"
	"github.com/half-nothing/simple-launch/internal/database/mongodb"
	c "github.com/half-nothing/simple-launch/internal/interfaces/config"
	"github.com/half-nothing/simple-launch/internal/interfaces/global"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type DatabaseShutdownCallback struct {
	logger log.LoggerInterface
	db     *gorm.DB
}

func NewDatabaseShutdownCallback(logger log.LoggerInterface, db *gorm.DB) *DatabaseShutdownCallback {
	return &DatabaseShutdownCallback{logger: logger, db: db}
}

func (dc *DatabaseShutdownCallback) Invoke(_ context.Context) error {
	dbPool, err := dc.db.DB()
	if err != nil {
		return err
	}
	dc.logger.Info("Closing database connection pool")
	return dbPool.Close()
}

// OpenDatabase opens the connection and migrates the launch schema
func OpenDatabase(dialector gorm.Dialector, debug bool) (*gorm.DB, error) {
	if dialector == nil {
		return nil, errors.New("unsupported database dialector")
	}

	connectionConfig := &gorm.Config{
		TranslateError: true,
		PrepareStmt:    true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	}
	if debug {
		connectionConfig.Logger = gormLogger.Default.LogMode(gormLogger.Info)
	}

	db, err := gorm.Open(dialector, connectionConfig)
	if err != nil {
		return nil, fmt.Errorf("error occured while connecting to database: %w", err)
	}

	if err := db.Migrator().AutoMigrate(&operation.Launch{}); err != nil {
		return nil, fmt.Errorf("error occured while migrating database: %w", err)
	}
	return db, nil
}

func ConnectDatabase(logger log.LoggerInterface, config *c.Config, debug bool) (global.Callable, *operation.DatabaseOperations, error) {
	dbConfig := config.Database

	if dbConfig.DBType == c.MongoDB {
		return mongodb.ConnectDatabase(logger, dbConfig)
	}

	db, err := OpenDatabase(dbConfig.GetConnection(logger), debug)
	if err != nil {
		return nil, nil, err
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating database pool: %w", err)
	}

	if dbConfig.DBType == c.SQLite {
		// sqlite allows a single writer, extra connections only produce SQLITE_BUSY
		dbPool.SetMaxOpenConns(1)
	} else {
		maxOpenConnections := float32(dbConfig.ServerMaxConnections) * 0.8 // 不超过数据库最大连接的80%
		maxIdleConnections := maxOpenConnections / 5                       // 空闲连接约为最大连接的20%
		dbPool.SetMaxIdleConns(max(int(maxIdleConnections), 1))
		dbPool.SetMaxOpenConns(max(int(maxOpenConnections), 1))
	}
	dbPool.SetConnMaxIdleTime(dbConfig.ConnectIdleDuration)

	ctx, cancel := context.WithTimeout(context.Background(), dbConfig.QueryDuration)
	defer cancel()
	if err := dbPool.PingContext(ctx); err != nil {
		return nil, nil, fmt.Errorf("error occured while pinging database: %w", err)
	}

	logger.InfoF("Connected to %s database %s", dbConfig.DBType, dbConfig.Database)

	launchOperation := NewLaunchOperation(db, dbConfig.QueryDuration)
	return NewDatabaseShutdownCallback(logger, db), operation.NewDatabaseOperations(launchOperation), nil
}
