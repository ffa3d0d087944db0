package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentToLaunch(t *testing.T) {
	response := &queryResponse{}
	require.NoError(t, json.Unmarshal([]byte(catalogFixture), response))
	require.Len(t, response.Docs, 3)

	t.Run("should map catalog fields", func(t *testing.T) {
		launch, err := response.Docs[0].ToLaunch()
		require.NoError(t, err)
		assert.Equal(t, 1, launch.FlightNumber)
		assert.Equal(t, "FalconSat", launch.Mission)
		assert.Equal(t, "Falcon 1", launch.Rocket)
		assert.Equal(t, []string{"DARPA"}, []string(launch.Customers))
		assert.False(t, launch.Upcoming)
		assert.False(t, launch.Success)
		assert.Empty(t, launch.Target)
		assert.True(t, launch.LaunchDate.Equal(time.Date(2006, time.March, 24, 22, 30, 0, 0, time.UTC)))
	})

	t.Run("should flatten customers of every payload in order", func(t *testing.T) {
		launch, err := response.Docs[1].ToLaunch()
		require.NoError(t, err)
		assert.Equal(t, []string{"DARPA", "NASA", "ORBCOMM"}, []string(launch.Customers))
	})

	t.Run("should treat null success as false and keep customers non nil", func(t *testing.T) {
		launch, err := response.Docs[2].ToLaunch()
		require.NoError(t, err)
		assert.True(t, launch.Upcoming)
		assert.False(t, launch.Success)
		assert.NotNil(t, launch.Customers)
		assert.Empty(t, launch.Customers)
	})

	t.Run("should keep a successful launch successful", func(t *testing.T) {
		success := true
		document := &Document{FlightNumber: 3, DateLocal: "2008-08-03T15:34:00+12:00", Success: &success}
		launch, err := document.ToLaunch()
		require.NoError(t, err)
		assert.True(t, launch.Success)
	})

	t.Run("should reject an unparsable date", func(t *testing.T) {
		document := &Document{FlightNumber: 4, DateLocal: "yesterday"}
		launch, err := document.ToLaunch()
		assert.Error(t, err)
		assert.Nil(t, launch)
	})

	t.Run("should skip missing payloads", func(t *testing.T) {
		document := &Document{Payloads: []*payloadDocument{nil, {Customers: []string{"SES"}}}}
		assert.Equal(t, []string{"SES"}, document.Customers())
	})
}
