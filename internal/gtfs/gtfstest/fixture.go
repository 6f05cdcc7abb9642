// Package gtfstest builds small GTFS archives for tests.
package gtfstest

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// AgencyID is the agency every fixture entity is namespaced under.
const AgencyID = "25"

// Files is the default fixture: two routes, three stops and two trips. Trip
// t_1 lists its stop times out of sequence order.
var Files = map[string]string{
	"agency.txt": `agency_id,agency_name,agency_url,agency_timezone
25,Redding Area Bus Authority,http://www.rabaride.com/,America/Los_Angeles
`,
	"routes.txt": `route_id,agency_id,route_short_name,route_long_name,route_type
r1,25,1,Downtown Loop,3
r2,25,2,Airport Express,3
`,
	"stops.txt": `stop_id,stop_code,stop_name,stop_lat,stop_lon
s1,1001,Transit Center,40.5865,-122.3917
s2,1002,Market & Butte,40.5840,-122.3920
s3,1003,Airport,40.5090,-122.2930
`,
	"calendar.txt": `service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date
weekday,1,1,1,1,1,0,0,20250101,20251231
`,
	"trips.txt": `route_id,service_id,trip_id,trip_headsign,trip_short_name,direction_id,block_id
r1,weekday,t_1,Downtown,101,0,b1
r2,weekday,t_2,Airport,201,1,b2
`,
	"stop_times.txt": `trip_id,arrival_time,departure_time,stop_id,stop_sequence,stop_headsign,pickup_type,drop_off_type
t_1,08:10:00,08:10:00,s3,3,,0,0
t_1,08:00:00,08:00:30,s1,1,Downtown,0,0
t_1,08:05:00,08:05:00,s2,2,,1,0
t_2,09:00:00,09:00:00,s1,1,,0,0
t_2,09:30:00,09:30:00,s3,2,,0,1
`,
}

// WriteFeed writes files as a GTFS zip archive under t.TempDir and returns
// its path. A nil map writes Files.
func WriteFeed(t testing.TB, files map[string]string) string {
	t.Helper()
	if files == nil {
		files = Files
	}

	path := filepath.Join(t.TempDir(), "gtfs.zip")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := zip.NewWriter(f)
	for name, content := range files {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	return path
}

// ReadFeed returns the bytes of the archive WriteFeed produces.
func ReadFeed(t testing.TB, files map[string]string) []byte {
	t.Helper()
	b, err := os.ReadFile(WriteFeed(t, files))
	require.NoError(t, err)
	return b
}
