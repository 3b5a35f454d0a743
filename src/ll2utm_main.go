package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Main program for ll2utm, latitude / longitude to UTM,
 *		UPS and MGRS.
 *
 * Description:	Our own projection is printed first.  Where coordconv
 *		can do the same job (UTM band, WGS 84) its answer is
 *		printed under it for comparison.
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/tzneal/coordconv"
)

func LL2UTMMain() {
	var flags = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	var datumName = flags.StringP("datum", "d", DatumWGS84.String(), "Datum to show the result in.")
	var system = flags.StringP("coordinate-system", "s", PlainUTM.String(), "utm, utm-special or mgrs.")
	var help = flags.Bool("help", false, "Display help text.")

	flags.Usage = func() {
		ll2utmUsage()
		flags.PrintDefaults()
	}

	if err := flags.Parse(negativeNumbersAsArgs(os.Args[1:])); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("%s\n", err)
		}
		return
	}

	if *help || flags.NArg() < 1 {
		flags.Usage()
		return
	}

	var lat, lon, posErr = ParsePosition(strings.Join(flags.Args(), " "))
	if posErr != nil {
		fmt.Printf("%s\n", posErr)
		return
	}

	var mode, modeErr = ParseZoneMode(*system)
	if modeErr != nil {
		fmt.Printf("%s\n", modeErr)
		return
	}

	var datum, found = DatumByName(*datumName)
	if !found {
		fmt.Printf("Unknown datum \"%s\".\n", *datumName)
		return
	}

	var dlat, dlon = lat.Latitude(), lon.Longitude()

	fmt.Printf("APRS = %s\n", APRSString(lat, lon))

	var slat, slon = WGS84DatumShift(true, dlat, dlon, datum)
	var utm = LLToUTMUPS(datum.Datum().Ellipsoid, slat, slon, IfThenElse(mode == MGRSMode, PlainUTM, mode))
	fmt.Printf("%s zone = %s, easting = %.0f, northing = %.0f (%s)\n",
		IfThenElse(utm.IsPolar(), "UPS", "UTM"), utm.Zone, utm.Easting, utm.Northing, datum)

	var m = LLToMGRS(slat, slon)
	fmt.Printf("MGRS =")
	for digits := 1; digits <= 5; digits++ {
		fmt.Printf("  %s", m.Compact(digits))
	}
	fmt.Printf("\n")

	if datum != DatumWGS84 || utm.IsPolar() {
		return
	}

	var check, checkErr = coordconv.DefaultUTMConverter.ConvertFromGeodetic(LatLngFromDegrees(dlat, dlon), 0)
	if checkErr != nil {
		fmt.Printf("coordconv: %s\n", checkErr)
		return
	}
	fmt.Printf("coordconv zone = %d, hemisphere = %c, easting = %.0f, northing = %.0f\n",
		check.Zone, HemisphereToRune(check.Hemisphere), check.Easting, check.Northing)
}

// negativeNumbersAsArgs stops flag parsing at the first negative number
// so "-71.365553" is a longitude rather than a bundle of short options.
func negativeNumbersAsArgs(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if strings.HasPrefix(a, "-") {
			if _, err := strconv.ParseFloat(a, 64); err == nil {
				return slices.Concat(args[:i], []string{"--"}, args[i:])
			}
		}
	}
	return args
}

func ll2utmUsage() {
	fmt.Printf("Latitude / Longitude to UTM conversion\n")
	fmt.Printf("\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("\tll2utm  [options]  latitude  longitude\n")
	fmt.Printf("\n")
	fmt.Printf("where,\n")
	fmt.Printf("\tLatitude and longitude are in decimal degrees,\n")
	fmt.Printf("\t   negative for south or west, or APRS style\n")
	fmt.Printf("\t   like 4239.73N 07121.93W.  A Maidenhead\n")
	fmt.Printf("\t   locator is accepted too.\n")
	fmt.Printf("\n")
	fmt.Printf("Example:\n")
	fmt.Printf("\tll2utm 42.662139 -71.365553\n")
	fmt.Printf("\n")
}
