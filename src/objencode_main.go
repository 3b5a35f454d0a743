package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Main program for objencode, build or take apart
 *		object and item packets from the command line.
 *
 * Description:	objencode [options] NAME
 *
 *		prints the information part of one packet, ready to be
 *		handed to a TNC after "MYCALL>APRS:".
 *
 *		objencode --decode
 *
 *		reads packets, one per line, from stdin and explains
 *		each.  With --kill the killed form of each is printed
 *		instead.  --from gives a position to measure distance
 *		and bearing from.
 *
 *------------------------------------------------------------------*/

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

func ObjEncodeMain() {
	var flags = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)

	var oc ObjectConfig
	var area AreaConfig

	flags.BoolVarP(&oc.Item, "item", "i", false, "Make an item rather than an object.")
	flags.StringVarP(&oc.Position, "position", "p", "", "Position, e.g. \"4730.50N 12230.75W\", \"47.5 -122.5\" or a Maidenhead locator.")
	flags.StringVarP(&oc.Symbol, "symbol", "s", "/.", "Symbol table or overlay, then symbol code.")
	flags.StringVar(&oc.Course, "course", "", "Course in degrees.")
	flags.StringVar(&oc.Speed, "speed", "", "Speed in knots.")
	flags.StringVarP(&oc.Altitude, "altitude", "a", "", "Altitude in feet.")
	flags.StringVarP(&oc.Comment, "comment", "c", "", "Comment text.")
	flags.StringVar(&oc.Signpost, "signpost", "", "Signpost text, up to 3 characters.")
	flags.StringVar(&oc.PHG, "phg", "", "PHGphgd or RNGrrrr.")
	flags.IntVar(&oc.Power, "power", 0, "Transmitter power in watts, for PHG.")
	flags.IntVar(&oc.Height, "height", 0, "Antenna height above average terrain in feet, for PHG.")
	flags.IntVar(&oc.Gain, "gain", 0, "Antenna gain in dBi, for PHG.")
	flags.StringVar(&oc.Dir, "dir", "", "Antenna direction, N, NE, ... for PHG.  Empty for omni.")
	flags.StringVar(&oc.DFS, "dfs", "", "DF signal strength, height, gain, directivity: shgd.")
	flags.StringVar(&oc.Bearing, "bearing", "", "DF bearing in degrees.")
	flags.StringVar(&oc.NRQ, "nrq", "", "DF number / range / quality.")
	flags.StringVar(&oc.PMin, "pmin", "", "Probability ring, inner radius in miles.")
	flags.StringVar(&oc.PMax, "pmax", "", "Probability ring, outer radius in miles.")

	var areaType = flags.Int("area-type", AreaNone, "Area object shape 0 - 9.")
	flags.IntVar(&area.Color, "area-color", 0, "Area color 0 - 7.")
	flags.BoolVar(&area.Dim, "area-dim", false, "Use the dim version of the area color.")
	flags.Float64Var(&area.LatOffset, "lat-offset", 0, "Area extent, latitude degrees.")
	flags.Float64Var(&area.LonOffset, "lon-offset", 0, "Area extent, longitude degrees.")
	flags.IntVar(&area.Corridor, "corridor", 0, "Corridor width in miles for line areas.")

	var compressed = flags.BoolP("compressed", "z", false, "Use the compressed position format.")
	var kill = flags.BoolP("kill", "k", false, "Send the killed form.")
	var timestampFormat = flags.StringP("timestamp-format", "T", DefaultTimestampFormat, "'strftime' format for the object time stamp.")
	var at = flags.String("time", "", "Time for the time stamp, RFC 3339.  Default is now.")
	var decode = flags.BoolP("decode", "D", false, "Explain packets read from stdin instead.")
	var from = flags.StringP("from", "f", "", "With --decode, show distance and bearing from this position.")
	var help = flags.Bool("help", false, "Display help text.")

	flags.Usage = func() {
		fmt.Printf("%s - Build an APRS object or item packet.\n", os.Args[0])
		fmt.Printf("\n")
		fmt.Printf("Usage: %s [options] name\n", os.Args[0])
		fmt.Printf("       %s --decode [--kill] [--from position] < packets\n", os.Args[0])
		fmt.Printf("\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("%s\n", err)
		}
		return
	}

	if *help {
		flags.Usage()
		return
	}

	if *decode {
		var ref *reference
		if *from != "" {
			var lat, lon, err = ParsePosition(*from)
			if err != nil {
				fmt.Printf("%s\n", err)
				return
			}
			ref = &reference{lat: lat, lon: lon}
		}
		explainPackets(bufio.NewScanner(os.Stdin), *kill, ref)
		return
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return
	}
	oc.Name = flags.Arg(0)

	if *areaType != AreaNone {
		area.Type = *areaType
		oc.Area = &area
	}

	var now = time.Now()
	if *at != "" {
		var t, err = time.Parse(time.RFC3339, *at)
		if err != nil {
			fmt.Printf("Bad time \"%s\": %s\n", *at, err)
			return
		}
		now = t
	}

	var o, err = oc.ToObject()
	if err != nil {
		fmt.Printf("%s\n", err)
		return
	}
	if *kill {
		o.Kill()
	}

	var line, ok = CreateObjectItemTxString(o, TxOptions{
		Compressed:      *compressed,
		Now:             now,
		TimestampFormat: *timestampFormat,
	})
	if !ok {
		fmt.Printf("Can't build a packet for \"%s\".\n", oc.Name)
		return
	}

	fmt.Printf("%s\n", line)
}

// reference is where distances and bearings are measured from.
type reference struct {
	lat, lon Coord
}

func explainPackets(scanner *bufio.Scanner, kill bool, ref *reference) {
	for scanner.Scan() {
		var line = strings.TrimRight(scanner.Text(), "\r")
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		if kill {
			var killed, _ = ReformatKilledObjectItemPacket(line)
			fmt.Printf("%s\n", killed)
			continue
		}

		var o, err = DecodeObjectItem(line)
		if err != nil {
			fmt.Printf("%s\n  %s\n", line, err)
			continue
		}

		fmt.Printf("%s\n", line)
		fmt.Printf("  %s \"%s\", %s\n", IfThenElse(o.IsItem(), "Item", "Object"), o.CallSign, IfThenElse(o.IsActive(), "live", "killed"))
		fmt.Printf("  Position %s, symbol %c%c\n", APRSString(o.Lat, o.Lon), o.Symbol.Group(), o.Symbol.Code)
		if ref != nil {
			fmt.Printf("  %.1f km at %03.0f degrees\n",
				DistanceKm(ref.lat, ref.lon, o.Lat, o.Lon), BearingDeg(ref.lat, ref.lon, o.Lat, o.Lon))
		}
		if feet, ok := atofPrefix(o.Altitude); ok {
			fmt.Printf("  Altitude %.0f feet (%.0f m)\n", feet, FeetToMeters(feet))
		}

		for _, f := range []struct {
			label, value string
		}{
			{"Course", o.Course},
			{"Speed", o.Speed},
			{"Signpost", o.Signpost},
			{"Power/range", o.PowerGain},
			{"DF signal", o.SignalGain},
			{"Bearing", o.Bearing},
			{"NRQ", o.NRQ},
			{"Probability min", o.ProbabilityMin},
			{"Probability max", o.ProbabilityMax},
			{"Comment", o.Comment},
		} {
			if f.value != "" {
				fmt.Printf("  %s %s\n", f.label, f.value)
			}
		}

		if a := o.Symbol.Area; a.Type != AreaNone {
			fmt.Printf("  Area type %d, color %d, offsets %.2f / %.2f degrees",
				a.Type, a.Color, AreaOffsetDegrees(a.SqrtLatOff), AreaOffsetDegrees(a.SqrtLonOff))
			if a.CorridorWidth > 0 {
				fmt.Printf(", corridor %d miles", a.CorridorWidth)
			}
			fmt.Printf("\n")
		}
	}
}
