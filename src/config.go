package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Read the object daemon configuration.
 *
 * Description:	A small YAML file.  Anything left out gets the usual
 *		default, and no file at all is the same as an empty one.
 *
 *		callsign: N0CALL-1
 *		object_rate: 30m
 *		object_check_rate: 20s
 *		max_killed_retransmit: 20
 *		compressed: false
 *		coordinate_system: utm		# utm, utm-special, mgrs
 *		datum: WGS 84
 *		base_dir: ~/.xastir
 *		timestamp_format: "%d%H%Mz"
 *		objects:
 *		  - name: TEST
 *		    position: 4730.50N 12230.75W
 *		    symbol: /-
 *		    power: 25		# or phg: PHG5130
 *		    height: 20
 *		    gain: 3
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type AreaConfig struct {
	Type      int     `yaml:"type"`
	Color     int     `yaml:"color"`
	Dim       bool    `yaml:"dim"`
	LatOffset float64 `yaml:"lat_offset"` // degrees
	LonOffset float64 `yaml:"lon_offset"`
	Corridor  int     `yaml:"corridor"`
}

type ObjectConfig struct {
	Name     string      `yaml:"name"`
	Item     bool        `yaml:"item"`
	Position string      `yaml:"position"`
	Symbol   string      `yaml:"symbol"` // table or overlay, then code
	Course   string      `yaml:"course"`
	Speed    string      `yaml:"speed"`
	Altitude string      `yaml:"altitude"`
	Comment  string      `yaml:"comment"`
	Signpost string      `yaml:"signpost"`
	PHG      string      `yaml:"phg"`
	Power    int         `yaml:"power"` // watts, with height, gain and dir instead of phg
	Height   int         `yaml:"height"`
	Gain     int         `yaml:"gain"`
	Dir      string      `yaml:"dir"`
	DFS      string      `yaml:"dfs"`
	Bearing  string      `yaml:"bearing"`
	NRQ      string      `yaml:"nrq"`
	PMin     string      `yaml:"pmin"`
	PMax     string      `yaml:"pmax"`
	Area     *AreaConfig `yaml:"area"`
}

type Config struct {
	Callsign            string         `yaml:"callsign"`
	ObjectRate          time.Duration  `yaml:"object_rate"`
	ObjectCheckRate     time.Duration  `yaml:"object_check_rate"`
	MaxKilledRetransmit int            `yaml:"max_killed_retransmit"`
	Compressed          bool           `yaml:"compressed"`
	CoordinateSystem    string         `yaml:"coordinate_system"`
	Datum               string         `yaml:"datum"`
	BaseDir             string         `yaml:"base_dir"`
	TimestampFormat     string         `yaml:"timestamp_format"`
	Objects             []ObjectConfig `yaml:"objects"`

	// Filled in by Validate.
	ZoneMode ZoneMode `yaml:"-"`
	DatumID  DatumID  `yaml:"-"`
}

// If search order is changed, update the usage text of objectd too.

var ConfigSearchLocations = []string{
	"objects.yaml",        // Current working directory
	"config/objects.yaml", // Beside the object log
	"~/.xastir/config/objects.yaml",
}

var ErrNoCallsign = errors.New("callsign is required")

func DefaultConfig() *Config {
	return &Config{
		ObjectRate:          DefaultObjectRate,
		ObjectCheckRate:     DefaultObjectCheckRate,
		MaxKilledRetransmit: DefaultMaxKilledRetransmit,
		CoordinateSystem:    PlainUTM.String(),
		Datum:               DatumWGS84.String(),
		BaseDir:             "~/.xastir",
		TimestampFormat:     DefaultTimestampFormat,
		ZoneMode:            PlainUTM,
		DatumID:             DatumWGS84,
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	var home, err = os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

/*------------------------------------------------------------------
 *
 * Function:	LoadConfig
 *
 * Inputs:	path	- Configuration file, or "" to try each of
 *			  ConfigSearchLocations.
 *
 * Returns:	The configuration, defaults filled in and checked.
 *		Only an explicitly named file has to exist.
 *
 *------------------------------------------------------------------*/

func LoadConfig(path string) (*Config, error) {
	var cfg = DefaultConfig()

	var fp *os.File
	if path != "" {
		var err error
		fp, err = os.Open(expandHome(path))
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	} else {
		for _, location := range ConfigSearchLocations {
			var f, err = os.Open(expandHome(location))
			if err == nil {
				fp = f
				break
			}
		}
	}

	if fp == nil {
		dw_printf(DW_COLOR_INFO, "No configuration file found, using defaults.\n")
		return cfg, cfg.Validate()
	}
	defer fp.Close()

	var data, readErr = io.ReadAll(fp)
	if readErr != nil {
		return nil, fmt.Errorf("reading config %s: %w", fp.Name(), readErr)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", fp.Name(), err)
	}

	dw_printf(DW_COLOR_INFO, "Configuration from %s\n", fp.Name())

	return cfg, cfg.Validate()
}

// Validate fills in defaults for zero values and resolves the names.
func (c *Config) Validate() error {
	var d = DefaultConfig()

	c.Callsign = strings.ToUpper(strings.TrimSpace(c.Callsign))

	if c.ObjectRate <= 0 {
		c.ObjectRate = d.ObjectRate
	}
	if c.ObjectCheckRate <= 0 {
		c.ObjectCheckRate = d.ObjectCheckRate
	}
	if c.MaxKilledRetransmit <= 0 {
		c.MaxKilledRetransmit = d.MaxKilledRetransmit
	}
	if c.TimestampFormat == "" {
		c.TimestampFormat = d.TimestampFormat
	}
	if c.BaseDir == "" {
		c.BaseDir = d.BaseDir
	}
	c.BaseDir = expandHome(c.BaseDir)

	if c.CoordinateSystem == "" {
		c.CoordinateSystem = d.CoordinateSystem
	}
	var mode, modeErr = ParseZoneMode(c.CoordinateSystem)
	if modeErr != nil {
		return fmt.Errorf("config: %w", modeErr)
	}
	c.ZoneMode = mode

	if c.Datum == "" {
		c.Datum = d.Datum
	}
	var datum, found = DatumByName(c.Datum)
	if !found {
		return fmt.Errorf("config: unknown datum %q", c.Datum)
	}
	c.DatumID = datum

	if c.ObjectCheckRate > c.ObjectRate {
		return fmt.Errorf("config: object_check_rate %s is longer than object_rate %s", c.ObjectCheckRate, c.ObjectRate)
	}

	return nil
}

// ObjectLogPath is where the object log goes for this configuration.
func (c *Config) ObjectLogPath() string {
	return filepath.Join(c.BaseDir, ObjectLogName)
}

/*------------------------------------------------------------------
 *
 * Function:	ToObject
 *
 * Purpose:	Turn one of the predefined objects into an Object.
 *
 *------------------------------------------------------------------*/

func (oc ObjectConfig) ToObject() (*Object, error) {
	var o = IfThenElse(oc.Item, NewItem(oc.Name), NewObject(oc.Name))

	var lat, lon, posErr = ParsePosition(oc.Position)
	if posErr != nil {
		return nil, fmt.Errorf("object %q: %w", oc.Name, posErr)
	}
	o.Lat, o.Lon = lat, lon

	if len(oc.Symbol) == 2 {
		setGroup(&o.Symbol, oc.Symbol[0])
		o.Symbol.Code = oc.Symbol[1]
	} else if oc.Symbol != "" {
		return nil, fmt.Errorf("object %q: symbol %q should be 2 characters", oc.Name, oc.Symbol)
	}

	o.Course = oc.Course
	o.Speed = oc.Speed
	o.Altitude = oc.Altitude
	o.Comment = oc.Comment
	o.Signpost = oc.Signpost
	o.PowerGain = oc.PHG
	if oc.Power > 0 || oc.Height > 0 || oc.Gain > 0 || oc.Dir != "" {
		if oc.PHG != "" {
			return nil, fmt.Errorf("object %q: give phg or power/height/gain/dir, not both", oc.Name)
		}
		o.PowerGain = PHGDataExtension(oc.Power, oc.Height, oc.Gain, oc.Dir)
	}
	o.SignalGain = oc.DFS
	o.Bearing = oc.Bearing
	o.NRQ = oc.NRQ
	o.ProbabilityMin = oc.PMin
	o.ProbabilityMax = oc.PMax

	if a := oc.Area; a != nil {
		if a.Type < 0 || a.Type > maxAreaType {
			return nil, fmt.Errorf("object %q: area type %d isn't 0 - %d", oc.Name, a.Type, maxAreaType)
		}
		var color = AreaColorFromString(FormatAreaColorFromDialog(a.Color, !a.Dim))
		if color < 0 {
			return nil, fmt.Errorf("object %q: area color %d isn't 0 - %d", oc.Name, a.Color, maxAreaColor)
		}
		o.Symbol.Area = AreaObject{
			Type:          a.Type,
			Color:         color,
			SqrtLatOff:    AreaOffset(a.LatOffset * 100),
			SqrtLonOff:    AreaOffset(a.LonOffset * 100),
			CorridorWidth: a.Corridor,
		}
	}

	return o, nil
}
