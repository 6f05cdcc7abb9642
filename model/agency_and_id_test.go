package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAgencyAndID(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected AgencyAndID
		wantErr  bool
	}{
		{name: "simple", input: "25_1234", expected: NewAgencyAndID("25", "1234")},
		{name: "underscore in local id", input: "1_trip_a_b", expected: NewAgencyAndID("1", "trip_a_b")},
		{name: "empty agency", input: "_abc", expected: NewAgencyAndID("", "abc")},
		{name: "no separator", input: "1234", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ParseAgencyAndID(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAgencyAndID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestAgencyAndIDString(t *testing.T) {
	assert.Equal(t, "25_1234", NewAgencyAndID("25", "1234").String())
	assert.Equal(t, "", AgencyAndID{}.String())

	id := NewAgencyAndID("1", "a_b")
	parsed, err := ParseAgencyAndID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestAgencyAndIDPredicates(t *testing.T) {
	assert.True(t, AgencyAndID{}.IsZero())
	assert.False(t, AgencyAndID{}.HasValues())
	assert.False(t, NewAgencyAndID("1", "").IsZero())
	assert.False(t, NewAgencyAndID("1", "").HasValues())
	assert.True(t, NewAgencyAndID("1", "x").HasValues())
}

func TestCompareAgencyAndID(t *testing.T) {
	assert.Less(t, CompareAgencyAndID(NewAgencyAndID("1", "z"), NewAgencyAndID("2", "a")), 0)
	assert.Less(t, CompareAgencyAndID(NewAgencyAndID("1", "a"), NewAgencyAndID("1", "b")), 0)
	assert.Equal(t, 0, CompareAgencyAndID(NewAgencyAndID("1", "a"), NewAgencyAndID("1", "a")))
}
