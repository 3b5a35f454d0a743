package aprsobj

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()

	var path = filepath.Join(t.TempDir(), "objects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	QuietLogger(t)

	var base = t.TempDir()
	var path = writeConfig(t, `
callsign: n0call-1
object_rate: 10m
object_check_rate: 30s
max_killed_retransmit: 5
compressed: true
coordinate_system: mgrs
datum: NAD27 Alaska
base_dir: `+base+`
timestamp_format: "%H%M%Sh"
objects:
  - name: TEST
    position: 4730.50N 12230.75W
    symbol: /-
    comment: hello
  - name: WATER
    item: true
    position: 47.5 -122.5
    symbol: \l
    area:
      type: 1
      color: 5
      lat_offset: 0.25
      lon_offset: 1
      corridor: 12
`)

	var cfg, err = LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "N0CALL-1", cfg.Callsign)
	assert.Equal(t, 10*time.Minute, cfg.ObjectRate)
	assert.Equal(t, 30*time.Second, cfg.ObjectCheckRate)
	assert.Equal(t, 5, cfg.MaxKilledRetransmit)
	assert.True(t, cfg.Compressed)
	assert.Equal(t, MGRSMode, cfg.ZoneMode)
	assert.Equal(t, "NAD27 Alaska", cfg.DatumID.String())
	assert.Equal(t, "%H%M%Sh", cfg.TimestampFormat)
	assert.Equal(t, filepath.Join(base, "config", "object.log"), cfg.ObjectLogPath())
	require.Len(t, cfg.Objects, 2)

	var o, objErr = cfg.Objects[0].ToObject()
	require.NoError(t, objErr)
	assert.Equal(t, "TEST", o.CallSign)
	assert.False(t, o.IsItem())
	assert.Equal(t, byte('/'), o.Symbol.Table)
	assert.Equal(t, byte('-'), o.Symbol.Code)
	assert.Equal(t, "hello", o.Comment)

	var area, areaErr = cfg.Objects[1].ToObject()
	require.NoError(t, areaErr)
	assert.True(t, area.IsItem())
	assert.Equal(t, AreaObject{Type: 1, Color: 5, SqrtLatOff: 5, SqrtLonOff: 10, CorridorWidth: 12}, area.Symbol.Area)
	assert.InDelta(t, 47.5, area.Lat.Latitude(), 1e-5)
	assert.InDelta(t, -122.5, area.Lon.Longitude(), 1e-5)
}

func TestLoadConfigDefaults(t *testing.T) {
	QuietLogger(t)

	var saved = ConfigSearchLocations
	t.Cleanup(func() { ConfigSearchLocations = saved })
	ConfigSearchLocations = []string{filepath.Join(t.TempDir(), "nothing.yaml")}

	var cfg, err = LoadConfig("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Callsign)
	assert.Equal(t, DefaultObjectRate, cfg.ObjectRate)
	assert.Equal(t, DefaultObjectCheckRate, cfg.ObjectCheckRate)
	assert.Equal(t, DefaultMaxKilledRetransmit, cfg.MaxKilledRetransmit)
	assert.Equal(t, PlainUTM, cfg.ZoneMode)
	assert.Equal(t, DatumWGS84, cfg.DatumID)
	assert.Equal(t, DefaultTimestampFormat, cfg.TimestampFormat)
}

func TestLoadConfigSearch(t *testing.T) {
	QuietLogger(t)

	var path = writeConfig(t, "callsign: W1AW\n")

	var saved = ConfigSearchLocations
	t.Cleanup(func() { ConfigSearchLocations = saved })
	ConfigSearchLocations = []string{filepath.Join(t.TempDir(), "nothing.yaml"), path}

	var cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "W1AW", cfg.Callsign)
}

func TestLoadConfigErrors(t *testing.T) {
	QuietLogger(t)

	var _, missing = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, missing)

	var tests = []struct {
		name string
		text string
	}{
		{"yaml", "callsign: [unterminated\n"},
		{"coordinate system", "coordinate_system: latlong\n"},
		{"datum", "datum: Atlantis 1066\n"},
		{"rates", "object_rate: 10s\nobject_check_rate: 20s\n"},
		{"duration", "object_rate: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var _, err = LoadConfig(writeConfig(t, tt.text))
			assert.Error(t, err)
		})
	}
}

func TestObjectConfigToObject(t *testing.T) {
	var tests = []struct {
		name    string
		oc      ObjectConfig
		wantErr bool
		check   func(t *testing.T, o *Object)
	}{
		{
			name: "overlay",
			oc:   ObjectConfig{Name: "CAR", Position: "4730.50N 12230.75W", Symbol: "3>"},
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, byte('\\'), o.Symbol.Table)
				assert.Equal(t, byte('3'), o.Symbol.Overlay)
				assert.Equal(t, byte('3'), o.Symbol.Group())
			},
		},
		{
			name: "default symbol",
			oc:   ObjectConfig{Name: "DOT", Position: "4730.50N 12230.75W"},
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, byte('.'), o.Symbol.Code)
				assert.Equal(t, AreaNone, o.Symbol.Area.Type)
			},
		},
		{
			name: "fields",
			oc: ObjectConfig{
				Name: "DF", Position: "4730.50N 12230.75W", Symbol: `/\`,
				Course: "90", Speed: "15", Altitude: "500", Bearing: "270", NRQ: "729",
				PHG: "PHG5130", DFS: "2360", PMin: "0.5", PMax: "2",
			},
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, "90", o.Course)
				assert.Equal(t, "15", o.Speed)
				assert.Equal(t, "500", o.Altitude)
				assert.Equal(t, "270", o.Bearing)
				assert.Equal(t, "729", o.NRQ)
				assert.Equal(t, "PHG5130", o.PowerGain)
				assert.Equal(t, "2360", o.SignalGain)
				assert.Equal(t, "0.5", o.ProbabilityMin)
				assert.Equal(t, "2", o.ProbabilityMax)
			},
		},
		{
			name: "dim area",
			oc:   ObjectConfig{Name: "AREA", Position: "4730.50N 12230.75W", Symbol: `\l`, Area: &AreaConfig{Type: 4, Color: 5, Dim: true}},
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, 13, o.Symbol.Area.Color)
				assert.Equal(t, 4, o.Symbol.Area.Type)
			},
		},
		{
			name: "power height gain",
			oc:   ObjectConfig{Name: "RPT", Position: "4730.50N 12230.75W", Power: 50, Height: 40, Gain: 6, Dir: "NE"},
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, "PHG7261", o.PowerGain)
			},
		},
		{name: "phg given twice", oc: ObjectConfig{Name: "X", Position: "4730.50N 12230.75W", PHG: "PHG5130", Power: 25}, wantErr: true},
		{name: "bad position", oc: ObjectConfig{Name: "X", Position: "somewhere"}, wantErr: true},
		{name: "bad symbol", oc: ObjectConfig{Name: "X", Position: "4730.50N 12230.75W", Symbol: "/--"}, wantErr: true},
		{name: "bad area type", oc: ObjectConfig{Name: "X", Position: "4730.50N 12230.75W", Area: &AreaConfig{Type: 10}}, wantErr: true},
		{name: "bad area color", oc: ObjectConfig{Name: "X", Position: "4730.50N 12230.75W", Area: &AreaConfig{Color: 16}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o, err = tt.oc.ToObject()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, o)
		})
	}
}
