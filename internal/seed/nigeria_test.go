package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStates_HaveCoordinates(t *testing.T) {
	require.Len(t, States, 37)

	for _, state := range States {
		point, ok := StateCoordinates[state]
		require.True(t, ok, "state %s has no centre point", state)
		assert.NotZero(t, point.Lon(), "state %s has a zero longitude", state)
		assert.NotZero(t, point.Lat(), "state %s has a zero latitude", state)
	}
}

func TestLocations_DatasetIsConsistent(t *testing.T) {
	require.GreaterOrEqual(t, len(Locations), 50)

	known := make(map[string]bool, len(States))
	for _, state := range States {
		known[state] = true
	}

	for _, location := range Locations {
		assert.NotEmpty(t, location.Name)
		assert.True(t, location.Type.IsValid(), "location %s has type %s", location.Name, location.Type)
		assert.True(t, known[location.State], "location %s references unknown state %s", location.Name, location.State)
		assert.True(t, location.IsActive, "location %s should seed as active", location.Name)

		// Nigeria sits roughly within 2.5-15E and 4-14N.
		assert.InDelta(t, 8.75, location.Point.Lon(), 6.25, "location %s longitude out of range", location.Name)
		assert.InDelta(t, 9.0, location.Point.Lat(), 5.0, "location %s latitude out of range", location.Name)
	}
}
