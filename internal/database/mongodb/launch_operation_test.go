package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func launchRecord(flightNumber int, mission string, upcoming bool) bson.D {
	return bson.D{
		{Key: "flightNumber", Value: flightNumber},
		{Key: "mission", Value: mission},
		{Key: "rocket", Value: "Explorer IS1"},
		{Key: "launchDate", Value: time.Date(2030, time.December, 27, 0, 0, 0, 0, time.UTC)},
		{Key: "target", Value: "Kepler-442 b"},
		{Key: "customers", Value: bson.A{"ZTM", "NASA"}},
		{Key: "upcoming", Value: upcoming},
		{Key: "success", Value: true},
	}
}

func duplicateKeyResponse() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error collection: launches index: flightNumber_1",
	})
}

func TestLaunchOperation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	launch := &operation.Launch{
		FlightNumber: 101,
		Mission:      "Kepler Exploration X",
		Rocket:       "Explorer IS1",
		LaunchDate:   time.Date(2030, time.December, 27, 0, 0, 0, 0, time.UTC),
		Target:       "Kepler-442 b",
		Customers:    []string{"ZTM", "NASA"},
		Upcoming:     true,
		Success:      true,
	}

	mt.Run("insert maps duplicate key to a taken flight number", func(mt *mtest.T) {
		launchOperation := NewLaunchOperation(mt.Coll, time.Second)
		mt.AddMockResponses(duplicateKeyResponse())

		err := launchOperation.InsertLaunch(ctx, launch)
		assert.ErrorIs(mt, err, operation.ErrFlightNumberTaken)
	})

	mt.Run("insert succeeds on a free flight number", func(mt *mtest.T) {
		launchOperation := NewLaunchOperation(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, launchOperation.InsertLaunch(ctx, launch))
	})

	mt.Run("save upserts a missing launch", func(mt *mtest.T) {
		launchOperation := NewLaunchOperation(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "upserted"}}}},
		))

		assert.NoError(mt, launchOperation.SaveLaunch(ctx, launch))
	})

	mt.Run("save retries once when a concurrent upsert won", func(mt *mtest.T) {
		launchOperation := NewLaunchOperation(mt.Coll, time.Second)
		mt.AddMockResponses(
			duplicateKeyResponse(),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		assert.NoError(mt, launchOperation.SaveLaunch(ctx, launch))
	})

	mt.Run("update status counts a launch that is already aborted", func(mt *mtest.T) {
		launchOperation := NewLaunchOperation(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}))

		matched, err := launchOperation.UpdateLaunchStatus(ctx, 101, operation.AbortedStatus)
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, matched)
	})

	mt.Run("update status reports no match for an unknown launch", func(mt *mtest.T) {
		launchOperation := NewLaunchOperation(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		matched, err := launchOperation.UpdateLaunchStatus(ctx, 999, operation.AbortedStatus)
		require.NoError(mt, err)
		assert.Zero(mt, matched)
	})

	mt.Run("latest flight number of an empty collection is not found", func(mt *mtest.T) {
		launchOperation := NewLaunchOperation(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := launchOperation.GetLatestFlightNumber(ctx)
		assert.ErrorIs(mt, err, operation.ErrLaunchNotFound)
	})

	mt.Run("latest flight number comes from the highest launch", func(mt *mtest.T) {
		launchOperation := NewLaunchOperation(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "flightNumber", Value: 120}}))

		flightNumber, err := launchOperation.GetLatestFlightNumber(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, 120, flightNumber)
	})

	mt.Run("get by flight number decodes the launch", func(mt *mtest.T) {
		launchOperation := NewLaunchOperation(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			launchRecord(101, "Kepler Exploration X", true)))

		found, err := launchOperation.GetLaunchByFlightNumber(ctx, 101)
		require.NoError(mt, err)
		assert.Equal(mt, 101, found.FlightNumber)
		assert.Equal(mt, "Kepler Exploration X", found.Mission)
		assert.Equal(mt, []string{"ZTM", "NASA"}, []string(found.Customers))
		assert.True(mt, found.Upcoming)
	})

	mt.Run("get by flight number of an unknown launch is not found", func(mt *mtest.T) {
		launchOperation := NewLaunchOperation(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := launchOperation.GetLaunchByFlightNumber(ctx, 999)
		assert.ErrorIs(mt, err, operation.ErrLaunchNotFound)
	})

	mt.Run("list and count launches", func(mt *mtest.T) {
		launchOperation := NewLaunchOperation(mt.Coll, time.Second)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
				launchRecord(100, "Kepler Exploration X", false),
				launchRecord(101, "Kepler Exploration XI", true)),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{{Key: "n", Value: 2}}),
		)

		launches, err := launchOperation.GetLaunches(ctx, 0, 10)
		require.NoError(mt, err)
		require.Len(mt, launches, 2)
		assert.Equal(mt, 100, launches[0].FlightNumber)
		assert.Equal(mt, 101, launches[1].FlightNumber)

		total, err := launchOperation.CountLaunches(ctx)
		require.NoError(mt, err)
		assert.EqualValues(mt, 2, total)
	})
}
