// Package mongodb stores launches in a MongoDB collection, keyed by a unique flightNumber index
package mongodb

import (
	"context"
	"fmt"
	c "github.com/half-nothing/simple-launch/internal/interfaces/config"
	"github.com/half-nothing/simple-launch/internal/interfaces/global"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const launchCollection = "launches"

type DatabaseShutdownCallback struct {
	logger log.LoggerInterface
	client *mongo.Client
}

func NewDatabaseShutdownCallback(logger log.LoggerInterface, client *mongo.Client) *DatabaseShutdownCallback {
	return &DatabaseShutdownCallback{logger: logger, client: client}
}

func (dc *DatabaseShutdownCallback) Invoke(ctx context.Context) error {
	dc.logger.Info("Disconnecting from mongodb")
	return dc.client.Disconnect(ctx)
}

func ConnectDatabase(logger log.LoggerInterface, dbConfig *c.DatabaseConfig) (global.Callable, *operation.DatabaseOperations, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConfig.QueryDuration)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(dbConfig.MongoURI()).
		SetMaxPoolSize(uint64(dbConfig.ServerMaxConnections)).
		SetMaxConnIdleTime(dbConfig.ConnectIdleDuration)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("error occured while pinging mongodb: %w", err)
	}

	collection := client.Database(dbConfig.Database).Collection(launchCollection)
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "flightNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, index); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("error occured while creating flightNumber index: %w", err)
	}

	logger.InfoF("Connected to mongodb database %s", dbConfig.Database)

	launchOperation := NewLaunchOperation(collection, dbConfig.QueryDuration)
	return NewDatabaseShutdownCallback(logger, client), operation.NewDatabaseOperations(launchOperation), nil
}
