package aprsobj

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTM2LLMain(t *testing.T) {
	withArgs(t, "utm2ll", "19T", "306130", "4726010")

	var out = CaptureOutput(t, UTM2LLMain)

	assert.Contains(t, out, "from UTM, latitude = 42.662")
	assert.Contains(t, out, "longitude = -71.365")
	assert.Contains(t, out, "APRS = 4239.72N 07121.93W")
}

func TestUTM2LLMainMGRS(t *testing.T) {
	withArgs(t, "utm2ll", "19TCH0613026010")

	var out = CaptureOutput(t, UTM2LLMain)

	assert.Contains(t, out, "from MGRS, latitude = 42.66")
	assert.Contains(t, out, "longitude = -71.36")
}

func TestUTM2LLMainPolar(t *testing.T) {
	var u = LLToUTMUPS(EllipsoidWGS84, -88, 45, PlainUTM)
	withArgs(t, "utm2ll", u.Zone, formatMeters(u.Easting), formatMeters(u.Northing))

	AssertOutputContains(t, UTM2LLMain, "from UTM, latitude = -8")
}

func formatMeters(m float64) string {
	return strconv.FormatFloat(m, 'f', 3, 64)
}

func TestUTM2LLMainErrors(t *testing.T) {
	var tests = []struct {
		name string
		args []string
		want string
	}{
		{"usage", []string{"utm2ll"}, "Usage:"},
		{"two args", []string{"utm2ll", "19T", "306130"}, "Usage:"},
		{"zone", []string{"utm2ll", "61T", "306130", "4726010"}, "Conversion from UTM failed"},
		{"numbers", []string{"utm2ll", "19T", "east", "4726010"}, "must be numbers"},
		{"mgrs", []string{"utm2ll", "nonsense"}, "Conversion from MGRS failed"},
		{"datum", []string{"utm2ll", "-d", "Atlantis", "19TCH0613026010"}, "Unknown datum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			AssertOutputContains(t, UTM2LLMain, tt.want)
		})
	}
}
