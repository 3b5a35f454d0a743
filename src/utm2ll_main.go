package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Main program for utm2ll, UTM / UPS or MGRS back to
 *		latitude and longitude.
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

func UTM2LLMain() {
	var flags = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	var datumName = flags.StringP("datum", "d", DatumWGS84.String(), "Datum the grid reference is on.")
	var help = flags.Bool("help", false, "Display help text.")

	flags.Usage = func() {
		utm2llUsage()
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("%s\n", err)
		}
		return
	}

	var datum, found = DatumByName(*datumName)
	if !found {
		fmt.Printf("Unknown datum \"%s\".\n", *datumName)
		return
	}

	var lat, lon float64
	var from string

	switch {
	case *help:
		flags.Usage()
		return

	case flags.NArg() == 3:
		from = "UTM"

		var easting, eErr = strconv.ParseFloat(flags.Arg(1), 64)
		var northing, nErr = strconv.ParseFloat(flags.Arg(2), 64)
		if eErr != nil || nErr != nil {
			fmt.Printf("Easting and northing must be numbers.\n")
			return
		}

		var err error
		lat, lon, err = UTMUPSToLL(datum.Datum().Ellipsoid, northing, easting, flags.Arg(0))
		if err != nil {
			fmt.Printf("Conversion from UTM failed:\n%s\n\n", err)
			return
		}
		lat, lon = WGS84DatumShift(false, lat, lon, datum)

	case flags.NArg() == 1:
		from = "MGRS"

		var err error
		lat, lon, err = MGRSToLL(flags.Arg(0))
		if err != nil {
			fmt.Printf("Conversion from MGRS failed:\n%s\n\n", err)
			return
		}

	default:
		flags.Usage()
		return
	}

	fmt.Printf("from %s, latitude = %.6f, longitude = %.6f\n", from, lat, lon)
	fmt.Printf("APRS = %s %s\n", LatitudeToString(lat), LongitudeToString(lon))
}

func utm2llUsage() {
	fmt.Println("UTM to Latitude / Longitude conversion")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("\tutm2ll  [options]  zone  easting  northing")
	fmt.Println("")
	fmt.Println("where,")
	fmt.Println("\tzone is UTM zone 1 thru 60 with optional latitudinal band,")
	fmt.Println("\t   or A, B, Y, Z for the polar regions.")
	fmt.Println("\teasting is x coordinate in meters")
	fmt.Println("\tnorthing is y coordinate in meters")
	fmt.Println("")
	fmt.Println("or:")
	fmt.Println("\tutm2ll  x")
	fmt.Println("")
	fmt.Println("where,")
	fmt.Println("\tx is USNG or MGRS location.")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("\tutm2ll 19T 306130 4726010")
	fmt.Println("\tutm2ll 19TCH06132600")
	fmt.Println("")
}
