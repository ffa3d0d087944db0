package mongodb

import (
	"context"
	"errors"
	. "github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"time"
)

var _ LaunchOperationInterface = (*LaunchOperation)(nil)

type LaunchOperation struct {
	collection   *mongo.Collection
	queryTimeout time.Duration
}

func NewLaunchOperation(collection *mongo.Collection, queryTimeout time.Duration) *LaunchOperation {
	return &LaunchOperation{collection: collection, queryTimeout: queryTimeout}
}

func byFlightNumber(flightNumber int) bson.D {
	return bson.D{{Key: "flightNumber", Value: flightNumber}}
}

func (launchOperation *LaunchOperation) GetLaunches(ctx context.Context, skip, limit int) ([]*Launch, error) {
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "flightNumber", Value: 1}}).
		SetSkip(int64(max(skip, 0))).
		SetProjection(bson.D{{Key: "_id", Value: 0}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := launchOperation.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	documents := make([]*launchDocument, 0)
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}

	launches := make([]*Launch, 0, len(documents))
	for _, document := range documents {
		launches = append(launches, document.toLaunch())
	}
	return launches, nil
}

func (launchOperation *LaunchOperation) CountLaunches(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	return launchOperation.collection.CountDocuments(ctx, bson.D{})
}

func (launchOperation *LaunchOperation) findOne(ctx context.Context, filter bson.D, findOptions ...*options.FindOneOptions) (*Launch, error) {
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	document := &launchDocument{}
	err := launchOperation.collection.FindOne(ctx, filter, findOptions...).Decode(document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrLaunchNotFound
	}
	if err != nil {
		return nil, err
	}
	return document.toLaunch(), nil
}

func (launchOperation *LaunchOperation) GetLaunchByFlightNumber(ctx context.Context, flightNumber int) (*Launch, error) {
	return launchOperation.findOne(ctx, byFlightNumber(flightNumber))
}

func (launchOperation *LaunchOperation) GetLaunchBySignature(ctx context.Context, flightNumber int, rocket, mission string) (*Launch, error) {
	return launchOperation.findOne(ctx, bson.D{
		{Key: "flightNumber", Value: flightNumber},
		{Key: "rocket", Value: rocket},
		{Key: "mission", Value: mission},
	})
}

func (launchOperation *LaunchOperation) GetLatestFlightNumber(ctx context.Context) (int, error) {
	launch, err := launchOperation.findOne(ctx, bson.D{}, options.FindOne().
		SetSort(bson.D{{Key: "flightNumber", Value: -1}}).
		SetProjection(bson.D{{Key: "flightNumber", Value: 1}}))
	if err != nil {
		return 0, err
	}
	return launch.FlightNumber, nil
}

func (launchOperation *LaunchOperation) InsertLaunch(ctx context.Context, launch *Launch) error {
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	_, err := launchOperation.collection.InsertOne(ctx, newLaunchDocument(launch))
	if mongo.IsDuplicateKeyError(err) {
		return ErrFlightNumberTaken
	}
	return err
}

func (launchOperation *LaunchOperation) SaveLaunch(ctx context.Context, launch *Launch) error {
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	replaceOptions := options.Replace().SetUpsert(true)
	document := newLaunchDocument(launch)
	_, err := launchOperation.collection.ReplaceOne(ctx, byFlightNumber(launch.FlightNumber), document, replaceOptions)
	if mongo.IsDuplicateKeyError(err) {
		// two upserts raced on insert, the loser now finds the document and replaces it
		_, err = launchOperation.collection.ReplaceOne(ctx, byFlightNumber(launch.FlightNumber), document, replaceOptions)
	}
	return err
}

func (launchOperation *LaunchOperation) UpdateLaunchStatus(ctx context.Context, flightNumber int, status LaunchStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	result, err := launchOperation.collection.UpdateOne(ctx, byFlightNumber(flightNumber), bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "upcoming", Value: status.Upcoming},
			{Key: "success", Value: status.Success},
			{Key: "updatedAt", Value: time.Now()},
		}},
	})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}
