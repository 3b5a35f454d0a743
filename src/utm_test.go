package aprsobj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/coordconv"
	"pgregory.net/rapid"
)

func TestLLToUTMUPSKnown(t *testing.T) {
	var u = LLToUTMUPS(EllipsoidWGS84, 42.662139, -71.365553, PlainUTM)

	assert.Equal(t, "19T", u.Zone)
	assert.InDelta(t, 306130, u.Easting, 1.0)
	assert.InDelta(t, 4726010, u.Northing, 1.0)
	assert.False(t, u.IsPolar())
}

func TestLLToUTMUPSSouthern(t *testing.T) {
	var u = LLToUTMUPS(EllipsoidWGS84, -33.8688, 151.2093, PlainUTM)

	assert.Equal(t, "56H", u.Zone)
	assert.Greater(t, u.Northing, 6000000.0, "southern hemisphere uses the false northing")
}

func TestLLToUTMUPSPolar(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		zone string
	}{
		{"north pole east", 90, 0, "Z"},
		{"far north west", 85, -30, "Y"},
		{"south pole west", -90, -1, "A"},
		{"far south east", -81, 100, "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u = LLToUTMUPS(EllipsoidWGS84, tt.lat, tt.lon, PlainUTM)
			assert.Equal(t, tt.zone, u.Zone)
			assert.True(t, u.IsPolar())
		})
	}

	var pole = LLToUTMUPS(EllipsoidWGS84, 90, 0, PlainUTM)
	assert.InDelta(t, 2000000, pole.Easting, 0.001)
	assert.InDelta(t, 2000000, pole.Northing, 0.001)
}

func TestSpecialZones(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		plain   string
		special string
	}{
		{"southern Norway", 60, 5, "31V", "32V"},
		{"Svalbard 31", 78, 8, "32X", "31X"},
		{"Svalbard 33", 78, 10, "32X", "33X"},
		{"Svalbard 35", 78, 25, "35X", "35X"},
		{"Svalbard 37", 78, 35, "36X", "37X"},
		{"elsewhere", 42, -71, "19T", "19T"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.plain, LLToUTMUPS(EllipsoidWGS84, tt.lat, tt.lon, PlainUTM).Zone)
			assert.Equal(t, tt.special, LLToUTMUPS(EllipsoidWGS84, tt.lat, tt.lon, SpecialUTM).Zone)
			assert.Equal(t, tt.special, LLToUTMUPS(EllipsoidWGS84, tt.lat, tt.lon, MGRSMode).Zone)
		})
	}
}

func TestLongitudeNormalized(t *testing.T) {
	var a = LLToUTMUPS(EllipsoidWGS84, 10, -170, PlainUTM)
	var b = LLToUTMUPS(EllipsoidWGS84, 10, 190, PlainUTM)

	assert.Equal(t, a.Zone, b.Zone)
	assert.InDelta(t, a.Easting, b.Easting, 0.001)
	assert.InDelta(t, a.Northing, b.Northing, 0.001)
}

func TestParseZone(t *testing.T) {
	tests := []struct {
		zone      string
		number    int
		letter    byte
		expectErr bool
	}{
		{zone: "19T", number: 19, letter: 'T'},
		{zone: "19t", number: 19, letter: 'T'},
		{zone: " 5N ", number: 5, letter: 'N'},
		{zone: "60C", number: 60, letter: 'C'},
		{zone: "19", number: 19, letter: 'N'},
		{zone: "Z", number: 0, letter: 'Z'},
		{zone: "A", number: 0, letter: 'A'},
		{zone: "", expectErr: true},
		{zone: "0T", expectErr: true},
		{zone: "61T", expectErr: true},
		{zone: "19I", expectErr: true},
		{zone: "19O", expectErr: true},
		{zone: "19Y", expectErr: true},
		{zone: "T", expectErr: true},
		{zone: "19TT", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			number, letter, err := ParseZone(tt.zone)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.number, number)
			assert.Equal(t, tt.letter, letter)
		})
	}
}

func TestParseZoneMode(t *testing.T) {
	for _, m := range []ZoneMode{PlainUTM, SpecialUTM, MGRSMode} {
		got, err := ParseZoneMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseZoneMode("lambert")
	assert.Error(t, err)
}

func TestUTMUPSToLLBadZone(t *testing.T) {
	_, _, err := UTMUPSToLL(EllipsoidWGS84, 4726010, 306130, "99Q")
	assert.Error(t, err)
}

func TestLetterDesignatorMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var a = rapid.Float64Range(upsSouthLimit, upsNorthLimit).Draw(t, "a")
		var b = rapid.Float64Range(upsSouthLimit, upsNorthLimit).Draw(t, "b")
		if a > b {
			a, b = b, a
		}

		if UTMLetterDesignator(a, 0) > UTMLetterDesignator(b, 0) {
			t.Fatalf("letter for %v is after letter for %v", a, b)
		}
	})
}

func angleDiff(a, b float64) float64 {
	var d = math.Mod(a-b+540, 360) - 180
	return math.Abs(d)
}

func TestUTMUPSRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var lat = rapid.Float64Range(-89.5, 89.5).Draw(t, "lat")
		var lon = rapid.Float64Range(-180, 180).Draw(t, "lon")
		var mode = rapid.SampledFrom([]ZoneMode{PlainUTM, SpecialUTM}).Draw(t, "mode")

		var u = LLToUTMUPS(EllipsoidWGS84, lat, lon, mode)

		var lat2, lon2, err = UTMUPSToLL(EllipsoidWGS84, u.Northing, u.Easting, u.Zone)
		if err != nil {
			t.Fatalf("%s: %s", u, err)
		}

		if math.Abs(lat-lat2) > 1e-5 || angleDiff(lon, lon2) > 1e-5 {
			t.Fatalf("%v %v -> %s -> %v %v", lat, lon, u, lat2, lon2)
		}
	})
}

// Compare the projection with coordconv, away from the zone exceptions
// that only one side might apply.
func TestUTMAgainstCoordconv(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var lat = rapid.Float64Range(-79.5, 55.5).Draw(t, "lat")
		var lon = rapid.Float64Range(-179.5, 179.5).Draw(t, "lon")

		// Skip anything right on a zone boundary.
		if r := math.Mod(lon+180, 6); r < 1e-6 || r > 6-1e-6 {
			t.Skip("zone boundary")
		}

		// Hemisphere of a latitude that rounds to the equator is a coin toss.
		if math.Abs(lat) < 1e-6 {
			t.Skip("equator")
		}

		var ours = LLToUTMUPS(EllipsoidWGS84, lat, lon, PlainUTM)

		var theirs, err = coordconv.DefaultUTMConverter.ConvertFromGeodetic(LatLngFromDegrees(lat, lon), 0)
		if err != nil {
			t.Fatalf("coordconv: %s", err)
		}

		var number, letter, _ = ParseZone(ours.Zone)
		if number != theirs.Zone {
			t.Fatalf("%v %v: zone %d vs %d", lat, lon, number, theirs.Zone)
		}
		if HemisphereRuneToCoordconvHemisphere(IfThenElse(letter >= 'N', 'N', 'S')) != theirs.Hemisphere {
			t.Fatalf("%v %v: hemisphere differs", lat, lon)
		}
		if math.Abs(ours.Easting-theirs.Easting) > 0.5 || math.Abs(ours.Northing-theirs.Northing) > 0.5 {
			t.Fatalf("%v %v: %s vs %.1f %.1f", lat, lon, ours, theirs.Easting, theirs.Northing)
		}
	})
}

func TestZoneHemisphere(t *testing.T) {
	number, hemi, err := ZoneHemisphere("19T")
	require.NoError(t, err)
	assert.Equal(t, 19, number)
	assert.Equal(t, coordconv.HemisphereNorth, hemi)

	_, hemi, err = ZoneHemisphere("56H")
	require.NoError(t, err)
	assert.Equal(t, coordconv.HemisphereSouth, hemi)

	_, _, err = ZoneHemisphere("Z")
	assert.Error(t, err)
}
