package aprsobj

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var testNow = time.Date(2026, 10, 16, 14, 5, 0, 0, time.UTC)

const testTimestamp = "161405z"

func testObject(t *testing.T, name string) *Object {
	t.Helper()

	var o = NewObject(name)
	var lat, lon, err = ParsePosition("4730.50N 12230.75W")
	require.NoError(t, err)
	o.Lat, o.Lon = lat, lon
	o.Symbol.Table = '/'
	o.Symbol.Code = '-'

	return o
}

func testItem(t *testing.T, name string) *Object {
	t.Helper()

	var o = testObject(t, name)
	o.Flags = FlagItem | FlagActive

	return o
}

func TestCreateObjectBasic(t *testing.T) {
	var o = testObject(t, "TEST")
	o.Course = "90"
	o.Speed = "15"
	o.Altitude = "500"

	var line, ok = CreateObjectItemTxString(o, TxOptions{Now: testNow})

	require.True(t, ok)
	assert.Equal(t, ";TEST     *"+testTimestamp+"4730.50N/12230.75W-090/015/A=000500", line)
}

func TestCreateObjectItemShapes(t *testing.T) {
	const posit = "4730.50N/12230.75W"
	const header = ";OBJ      *" + testTimestamp

	tests := []struct {
		name     string
		modify   func(o *Object)
		expected string
	}{
		{
			name:     "plain",
			modify:   func(o *Object) {},
			expected: header + posit + "-",
		},
		{
			name:     "comment",
			modify:   func(o *Object) { o.Comment = "net tonight" },
			expected: header + posit + "-net tonight",
		},
		{
			name: "overlay",
			modify: func(o *Object) {
				o.Symbol = Symbol{Table: '\\', Overlay: 'S', Code: '#', Area: AreaObject{Type: AreaNone}}
			},
			expected: header + "4730.50NS12230.75W#",
		},
		{
			name: "area line with corridor",
			modify: func(o *Object) {
				o.Symbol.Area = AreaObject{Type: AreaLine, Color: 5, SqrtLatOff: 3, SqrtLonOff: 4, CorridorWidth: 10}
				o.Comment = "route"
			},
			expected: header + `4730.50N\12230.75Wl103/504{10}route`,
		},
		{
			name: "area circle ignores corridor",
			modify: func(o *Object) {
				o.Symbol.Area = AreaObject{Type: AreaCircleFilled, Color: 12, SqrtLatOff: 15, SqrtLonOff: 15, CorridorWidth: 10}
			},
			expected: header + `4730.50N\12230.75Wl5151215`,
		},
		{
			name: "area beats everything else",
			modify: func(o *Object) {
				o.Symbol.Area = AreaObject{Type: AreaBox, Color: 0, SqrtLatOff: 1, SqrtLonOff: 2}
				o.Signpost = "55"
				o.SignalGain = "DFS2360"
				o.NRQ = "960"
				o.Course = "90"
			},
			expected: header + `4730.50N\12230.75Wl401/002`,
		},
		{
			name: "signpost",
			modify: func(o *Object) {
				o.Signpost = "55"
				o.Course = "90"
				o.Speed = "15"
				o.Altitude = "500"
			},
			expected: header + `4730.50N\12230.75Wm090/015/A=000500{55}`,
		},
		{
			name: "signpost beats DF",
			modify: func(o *Object) {
				o.Signpost = "55"
				o.SignalGain = "DFS2360"
			},
			expected: header + `4730.50N\12230.75Wm{55}`,
		},
		{
			name: "omni DF",
			modify: func(o *Object) {
				o.SignalGain = "DFS2360"
				o.Course = "90"
				o.Speed = "15"
			},
			expected: header + posit + `\090/015DFS2360/`,
		},
		{
			name: "omni DF beats beam",
			modify: func(o *Object) {
				o.SignalGain = "2360"
				o.NRQ = "960"
				o.Bearing = "88"
			},
			expected: header + posit + `\DFS2360/`,
		},
		{
			name: "beam DF without course gets zeros",
			modify: func(o *Object) {
				o.Bearing = "88"
				o.NRQ = "960"
			},
			expected: header + posit + `\000/000/088/960`,
		},
		{
			name: "beam DF",
			modify: func(o *Object) {
				o.Bearing = "88"
				o.NRQ = "960"
				o.Course = "90"
				o.Speed = "15"
				o.Altitude = "500"
			},
			expected: header + posit + `\090/015/A=000500/088/960`,
		},
		{
			name: "PHG when there's no course",
			modify: func(o *Object) {
				o.PowerGain = "PHG5132"
				o.Altitude = "500"
				o.Comment = "repeater"
			},
			expected: header + posit + "-PHG5132/A=000500repeater",
		},
		{
			name: "course pushes PHG out",
			modify: func(o *Object) {
				o.PowerGain = "PHG5132"
				o.Course = "90"
				o.Speed = "15"
			},
			expected: header + posit + "-090/015",
		},
		{
			name: "RNG",
			modify: func(o *Object) {
				o.PowerGain = "RNG0050"
			},
			expected: header + posit + "-RNG0050",
		},
		{
			name: "probability ring",
			modify: func(o *Object) {
				o.ProbabilityMin = "0.5"
				o.ProbabilityMax = "2.0"
				o.Comment = "lost hiker"
			},
			expected: header + posit + "-Pmin0.5,Pmax2.0,lost hiker",
		},
		{
			name: "leading brace gets a space",
			modify: func(o *Object) {
				o.Comment = "}odd"
			},
			expected: header + posit + "- }odd",
		},
		{
			name: "killed",
			modify: func(o *Object) {
				o.Kill()
			},
			expected: ";OBJ      _" + testTimestamp + posit + "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o = testObject(t, "OBJ")
			tt.modify(o)

			var line, ok = CreateObjectItemTxString(o, TxOptions{Now: testNow})

			require.True(t, ok)
			assert.Equal(t, tt.expected, line)
		})
	}
}

func TestCreateItem(t *testing.T) {
	var o = testItem(t, "AID#2")
	o.Course = "90"
	o.Speed = "15"
	o.Comment = "first aid"

	var line, ok = CreateObjectItemTxString(o, TxOptions{Now: testNow})
	require.True(t, ok)
	assert.Equal(t, ")AID#2!4730.50N/12230.75W-090/015first aid", line)

	o.Kill()
	line, ok = CreateObjectItemTxString(o, TxOptions{Now: testNow})
	require.True(t, ok)
	assert.Equal(t, ")AID#2_4730.50N/12230.75W-090/015first aid", line)
}

func TestCreateObjectItemBadNames(t *testing.T) {
	tests := []struct {
		name string
		item bool
	}{
		{"", false},
		{"TENLETTERS", false},
		{"BAD\x01", false},
		{"AB", true},
		{"TENLETTERS", true},
		{"HI!THERE", true},
		{"HI_THERE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			QuietLogger(t)

			var o = IfThenElse(tt.item, testItem(t, tt.name), testObject(t, tt.name))
			var line, ok = CreateObjectItemTxString(o, TxOptions{Now: testNow})
			assert.False(t, ok)
			assert.Empty(t, line)
		})
	}
}

func TestCreateObjectCompressed(t *testing.T) {
	var o = testObject(t, "TEST")
	o.Course = "90"
	o.Speed = "15"
	o.Altitude = "500"

	var line, ok = CreateObjectItemTxString(o, TxOptions{Now: testNow, Compressed: true})
	require.True(t, ok)

	var posit = CompressPosit(LatToString(o.Lat, FormatHPNoSpace), '/', LonToString(o.Lon, FormatHPNoSpace), '-', 90, 15, "")
	assert.Len(t, posit, 13)
	assert.Equal(t, ";TEST     *"+testTimestamp+posit+"/A=000500", line)
}

func TestCreateObjectCompressedPHG(t *testing.T) {
	var o = testObject(t, "TEST")
	o.PowerGain = "PHG5132"

	var line, ok = CreateObjectItemTxString(o, TxOptions{Now: testNow, Compressed: true})
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(line, "-{3C"), line)

	o.PowerGain = "RNG0050"
	line, ok = CreateObjectItemTxString(o, TxOptions{Now: testNow, Compressed: true})
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(line, "- RNG0050"), line)
}

func TestCommentTruncation(t *testing.T) {
	var long = strings.Repeat("x", 100)

	tests := []struct {
		name   string
		modify func(o *Object)
		opts   TxOptions
		room   int
	}{
		{"bare object", func(o *Object) {}, TxOptions{}, 43},
		{"course and altitude", func(o *Object) { o.Course = "90"; o.Speed = "5"; o.Altitude = "100" }, TxOptions{}, 43 - 16},
		{"item", func(o *Object) { o.Flags = FlagItem | FlagActive }, TxOptions{}, 43},
		{"compressed with course", func(o *Object) { o.Course = "90"; o.Speed = "5" }, TxOptions{Compressed: true}, 43},
		{"compressed, no course", func(o *Object) {}, TxOptions{Compressed: true}, 43},
		{"compressed, no course, altitude", func(o *Object) { o.Altitude = "100" }, TxOptions{Compressed: true}, 43 - 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o = testObject(t, "LONG")
			tt.modify(o)
			o.Comment = long

			tt.opts.Now = testNow
			var line, ok = CreateObjectItemTxString(o, tt.opts)
			require.True(t, ok)
			assert.True(t, strings.HasSuffix(line, strings.Repeat("x", tt.room)), line)
			assert.False(t, strings.HasSuffix(line, strings.Repeat("x", tt.room+1)), line)
		})
	}
}

func TestTimestampFormat(t *testing.T) {
	assert.Equal(t, "161405z", objectTimestamp(testNow, ""))
	assert.Equal(t, "140500h", objectTimestamp(testNow, "%H%M%Sh"))

	QuietLogger(t)
	assert.Equal(t, "161405z", objectTimestamp(testNow, "%Y"), "wrong length falls back")

	var local = testNow.In(time.FixedZone("EST", -5*3600))
	assert.Equal(t, "161405z", objectTimestamp(local, ""), "always UTC")
}

func TestCreateObjectDeadReckoning(t *testing.T) {
	var o = testObject(t, "MOVER")
	o.Course = "90"
	o.Speed = "60"
	o.FixTime = testNow.Add(-time.Hour)

	var opts = TxOptions{Now: testNow, DeadReckoner: GreatCircleDeadReckoner{MaxAge: 2 * time.Hour}}

	var line, ok = CreateObjectItemTxString(o, opts)
	require.True(t, ok)

	var moved, err = DecodeObjectItem(line)
	require.NoError(t, err)
	assert.InDelta(t, o.Lat.Latitude(), moved.Lat.Latitude(), 0.05)
	assert.InDelta(t, 111.12, DistanceKm(o.Lat, o.Lon, moved.Lat, moved.Lon), 1.0)
	assert.Greater(t, moved.Lon.Longitude(), o.Lon.Longitude(), "heading east")

	opts.MoveInProgress = true
	line, ok = CreateObjectItemTxString(o, opts)
	require.True(t, ok)
	assert.Contains(t, line, "4730.50N/12230.75W", "no dead reckoning while moving it by hand")

	opts.MoveInProgress = false
	o.Speed = ""
	line, ok = CreateObjectItemTxString(o, opts)
	require.True(t, ok)
	assert.Contains(t, line, "4730.50N/12230.75W", "not moving")
}

func TestReformatKilledObjectItemPacket(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
		changed  bool
	}{
		{"object", ";TEST     *161405z4730.50N/12230.75W-", ";TEST     _161405z4730.50N/12230.75W-", true},
		{"object already killed", ";TEST     _161405z4730.50N/12230.75W-", ";TEST     _161405z4730.50N/12230.75W-", false},
		{"item", ")AID#2!4730.50N/12230.75W-", ")AID#2_4730.50N/12230.75W-", true},
		{"item already killed", ")AID#2_4730.50N/12230.75W-", ")AID#2_4730.50N/12230.75W-", false},
		{"only the first bang", ")AID!4730.50N/12230.75W-hi!", ")AID_4730.50N/12230.75W-hi!", true},
		{"not an object", "!4730.50N/12230.75W-", "!4730.50N/12230.75W-", false},
		{"short", ";TE", ";TE", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var line, changed = ReformatKilledObjectItemPacket(tt.line)
			assert.Equal(t, tt.expected, line)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

// Whatever is asked for, an object packet never grows past the
// 43 character comment field, and it can be read back.
func TestCreateObjectBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var name = rapid.StringMatching(`[A-Z0-9]{3,9}`).Draw(t, "name")
		var item = rapid.Bool().Draw(t, "item")

		var o = IfThenElse(item, NewItem(name), NewObject(name))

		var lat = rapid.Float64Range(0.5, 80).Draw(t, "lat") * IfThenElse(rapid.Bool().Draw(t, "south"), -1.0, 1.0)
		var lon = rapid.Float64Range(0.5, 179).Draw(t, "lon") * IfThenElse(rapid.Bool().Draw(t, "west"), -1.0, 1.0)
		o.Lat, o.Lon = LatToCoord(lat), LonToCoord(lon)
		o.Symbol.Code = rapid.SampledFrom([]byte("->k[")).Draw(t, "symbol")

		o.Course = rapid.SampledFrom([]string{"", "0", "90", "359"}).Draw(t, "course")
		o.Speed = rapid.SampledFrom([]string{"", "5", "120"}).Draw(t, "speed")
		o.Altitude = rapid.SampledFrom([]string{"", "500", "99999"}).Draw(t, "altitude")
		o.PowerGain = rapid.SampledFrom([]string{"", "PHG5132", "RNG0050"}).Draw(t, "phg")
		o.Comment = rapid.StringMatching(`[ -~]{0,80}`).Draw(t, "comment")

		switch rapid.IntRange(0, 4).Draw(t, "shape") {
		case 1:
			o.Symbol.Area = AreaObject{Type: rapid.IntRange(0, 9).Draw(t, "area"), Color: 5, SqrtLatOff: 10, SqrtLonOff: 10, CorridorWidth: 5}
		case 2:
			o.Signpost = "55"
		case 3:
			o.SignalGain = "DFS2360"
		case 4:
			o.Bearing, o.NRQ = "88", "960"
		}

		if rapid.Bool().Draw(t, "killed") {
			o.Kill()
		}

		var compressed = rapid.Bool().Draw(t, "compressed")

		var line, ok = CreateObjectItemTxString(o, TxOptions{Now: testNow, Compressed: compressed})
		if !ok {
			t.Fatalf("couldn't build %q", name)
		}

		var limit = IfThenElse(item, 1+len(name)+1+19+commentBudget, 1+objectNameWidth+1+7+19+commentBudget)
		if len(line) > limit {
			t.Fatalf("%q is %d long, limit %d", line, len(line), limit)
		}

		var back, err = DecodeObjectItem(line)
		if err != nil {
			t.Fatalf("%q: %s", line, err)
		}
		if back.CallSign != name || back.IsItem() != item || back.IsActive() != o.IsActive() {
			t.Fatalf("%q came back as %+v", line, back)
		}

		if d := back.Lat - o.Lat; d > 60 || d < -60 {
			t.Fatalf("%q: latitude %d came back as %d", line, o.Lat, back.Lat)
		}
		if d := back.Lon - o.Lon; d > 60 || d < -60 {
			t.Fatalf("%q: longitude %d came back as %d", line, o.Lon, back.Lon)
		}
	})
}
