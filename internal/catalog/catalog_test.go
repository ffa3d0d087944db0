package catalog

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/half-nothing/simple-launch/internal/base"
	"github.com/half-nothing/simple-launch/internal/database"
	"github.com/half-nothing/simple-launch/internal/interfaces/config"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

const catalogFixture = `{
	"docs": [
		{
			"flight_number": 1,
			"name": "FalconSat",
			"date_local": "2006-03-25T10:30:00+12:00",
			"upcoming": false,
			"success": false,
			"rocket": {"name": "Falcon 1", "id": "5e9d0d95eda69955f709d1eb"},
			"payloads": [{"customers": ["DARPA"], "id": "5eb0e4b5b6c3bb0006eeb1e1"}]
		},
		{
			"flight_number": 2,
			"name": "DemoSat",
			"date_local": "2007-03-21T13:10:00+12:00",
			"upcoming": false,
			"success": false,
			"rocket": {"name": "Falcon 1"},
			"payloads": [{"customers": ["DARPA"]}, {"customers": ["NASA", "ORBCOMM"]}]
		},
		{
			"flight_number": 187,
			"name": "Crew-5",
			"date_local": "2022-10-05T12:00:00-04:00",
			"upcoming": true,
			"success": null,
			"rocket": {"name": "Falcon 9"},
			"payloads": []
		}
	],
	"totalDocs": 3
}`

func testLogger() log.LoggerInterface {
	return base.NewLoggerWithWriter(io.Discard)
}

func setupTestStore(t *testing.T) operation.LaunchOperationInterface {
	t.Helper()
	db, err := database.OpenDatabase(sqlite.Open(filepath.Join(t.TempDir(), "launches.db")), false)
	require.NoError(t, err)
	dbPool, err := db.DB()
	require.NoError(t, err)
	dbPool.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbPool.Close() })
	return database.NewLaunchOperation(db, 5*time.Second)
}

// catalogServer serves body with status and counts the requests it received
type catalogServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newCatalogServer(t *testing.T, status int, body string) *catalogServer {
	t.Helper()
	server := &catalogServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func testCatalogConfig(apiUrl string) *config.CatalogConfig {
	return &config.CatalogConfig{
		ApiUrl:           apiUrl,
		RequestTimeout:   "5s",
		RequestDuration:  5 * time.Second,
		ProgressInterval: 2,
	}
}

func countLaunches(t *testing.T, store operation.LaunchOperationInterface) int64 {
	t.Helper()
	total, err := store.CountLaunches(context.Background())
	require.NoError(t, err)
	return total
}
