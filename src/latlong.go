package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:   	Various functions for dealing with latitude and longitude
 *		in decimal degrees: wire strings, great circle distance,
 *		bearing and destination, Maidenhead locators.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

/*------------------------------------------------------------------
 *
 * Name:        LatitudeToString, LongitudeToString
 *
 * Purpose:     Convert decimal degrees to the fixed width wire form.
 *
 * Inputs:      dlat		- Floating point degrees.
 *
 * Returns:	"ddmm.mmN" (8 characters) or "dddmm.mmW" (9).
 *
 * Description:	Goes through the internal coordinate so the result
 *		matches what LatToString gives for the same point.
 *
 *----------------------------------------------------------------*/

func LatitudeToString(dlat float64) string {
	if dlat < -90. {
		dw_printf(DW_COLOR_ERROR, "Latitude is less than -90.  Changing to -90.\n")
		dlat = -90.
	}
	if dlat > 90. {
		dw_printf(DW_COLOR_ERROR, "Latitude is greater than 90.  Changing to 90.\n")
		dlat = 90.
	}

	return LatToString(LatToCoord(dlat), FormatLPNoSpace)
}

func LongitudeToString(dlong float64) string {
	if dlong < -180. {
		dw_printf(DW_COLOR_ERROR, "Longitude is less than -180.  Changing to -180.\n")
		dlong = -180.
	}
	if dlong > 180. {
		dw_printf(DW_COLOR_ERROR, "Longitude is greater than 180.  Changing to 180.\n")
		dlong = 180.
	}

	return LonToString(LonToCoord(dlong), FormatLPNoSpace)
}

// base91Four writes v as 4 base 91 digits, most significant first.
func base91Four(v int) string {
	var b [4]byte
	for i := 3; i >= 0; i-- {
		b[i] = byte(v%91) + B91_MIN
		v /= 91
	}
	return string(b[:])
}

/*------------------------------------------------------------------
 *
 * Name:        latitude_to_comp_str, longitude_to_comp_str
 *
 * Purpose:     Convert numeric latitude / longitude to the 4 byte
 *		compressed form.
 *
 *----------------------------------------------------------------*/

func latitude_to_comp_str(dlat float64) string {
	dlat = math.Max(-90., math.Min(90., dlat))

	return base91Four(int(math.Round(380926. * (90. - dlat))))
}

func longitude_to_comp_str(dlong float64) string {
	dlong = math.Max(-180., math.Min(180., dlong))

	return base91Four(int(math.Round(190463. * (180. + dlong))))
}

/*------------------------------------------------------------------
 *
 * Function:	ll_distance_km
 *
 * Purpose:	Calculate distance between two locations.
 *
 * Inputs:	lat1, lon1	- One location, in degrees.
 *		lat2, lon2	- other location
 *
 * Returns:	Distance in km.
 *
 * Description:	The Ubiquitous Haversine formula.
 *
 *------------------------------------------------------------------*/

const R_KM = 6371

func ll_distance_km(lat1, lon1, lat2, lon2 float64) float64 {
	lat1 = D2R(lat1)
	lon1 = D2R(lon1)
	lat2 = D2R(lat2)
	lon2 = D2R(lon2)

	var a = math.Pow(math.Sin((lat2-lat1)/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin((lon2-lon1)/2), 2)

	return R_KM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

/*------------------------------------------------------------------
 *
 * Function:	ll_bearing_deg
 *
 * Purpose:	Initial bearing from one location to another.
 *
 * Returns:	0 to 360 degrees.
 *
 *------------------------------------------------------------------*/

func ll_bearing_deg(lat1, lon1, lat2, lon2 float64) float64 {
	lat1 = D2R(lat1)
	lon1 = D2R(lon1)
	lat2 = D2R(lat2)
	lon2 = D2R(lon2)

	var b = R2D(math.Atan2(math.Sin(lon2-lon1)*math.Cos(lat2),
		math.Cos(lat1)*math.Sin(lat2)-math.Sin(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1)))

	if b < 0 {
		b += 360
	}

	return b
}

/*------------------------------------------------------------------
 *
 * Function:	ll_dest
 *
 * Purpose:	Calculate the destination location given a starting point,
 *		distance, and bearing.
 *
 * Inputs:	lat1, lon1	- starting location, in degrees.
 *		dist		- distance in km.
 *		bearing		- direction in degrees.
 *
 * Returns:	New latitude and longitude, longitude folded into +-180.
 *
 *------------------------------------------------------------------*/

func ll_dest(lat1, lon1, dist, bearing float64) (float64, float64) {
	lat1 = D2R(lat1)
	lon1 = D2R(lon1)
	bearing = D2R(bearing)

	var lat2 = math.Asin(math.Sin(lat1)*math.Cos(dist/R_KM) + math.Cos(lat1)*math.Sin(dist/R_KM)*math.Cos(bearing))

	var lon2 = lon1 + math.Atan2(math.Sin(bearing)*math.Sin(dist/R_KM)*math.Cos(lat1), math.Cos(dist/R_KM)-math.Sin(lat1)*math.Sin(lat2))

	return R2D(lat2), normalizeLongitude(R2D(lon2))
}

/*------------------------------------------------------------------
 *
 * Function:	ll_from_grid_square
 *
 * Purpose:	Convert Maidenhead locator to latitude and longitude.
 *
 * Inputs:	maidenhead	- 2, 4, 6, 8, 10, or 12 character grid square locator.
 *
 * Returns:	Center of the square.
 *
 *------------------------------------------------------------------*/

const MH_MIN_PAIR = 1
const MH_MAX_PAIR = 6
const MH_UNITS = (18 * 10 * 24 * 10 * 24 * 10 * 2)

type mhPair struct {
	position string
	min_ch   byte
	max_ch   byte
	value    int
}

var MHPairs = []*mhPair{
	{"first", 'A', 'R', 10 * 24 * 10 * 24 * 10 * 2},
	{"second", '0', '9', 24 * 10 * 24 * 10 * 2},
	{"third", 'A', 'X', 10 * 24 * 10 * 2},
	{"fourth", '0', '9', 24 * 10 * 2},
	{"fifth", 'A', 'X', 10 * 2},
	{"sixth", '0', '9', 2},
} // Even so we can get center of square.

func ll_from_grid_square(maidenhead string) (float64, float64, error) {
	var np = len(maidenhead) / 2 /* Number of pairs of characters. */

	if len(maidenhead)%2 != 0 || np < MH_MIN_PAIR || np > MH_MAX_PAIR {
		return 0, 0, fmt.Errorf("maidenhead locator %q must be 1 to %d pairs of characters", maidenhead, MH_MAX_PAIR)
	}

	var mh = strings.ToUpper(maidenhead)

	var ilat, ilon int
	for n := 0; n < np; n++ {
		if mh[2*n] < MHPairs[n].min_ch || mh[2*n] > MHPairs[n].max_ch ||
			mh[2*n+1] < MHPairs[n].min_ch || mh[2*n+1] > MHPairs[n].max_ch {
			return 0, 0, fmt.Errorf("the %s pair of characters in maidenhead locator %q must be in range of %c thru %c",
				MHPairs[n].position, maidenhead, MHPairs[n].min_ch, MHPairs[n].max_ch)
		}

		ilon += int(mh[2*n]-MHPairs[n].min_ch) * MHPairs[n].value
		ilat += int(mh[2*n+1]-MHPairs[n].min_ch) * MHPairs[n].value

		if n == np-1 { // If last pair, take center of square.
			ilon += MHPairs[n].value / 2
			ilat += MHPairs[n].value / 2
		}
	}

	var dlat = float64(ilat)/MH_UNITS*180. - 90.
	var dlon = float64(ilon)/MH_UNITS*360. - 180.

	return dlat, dlon, nil
}

var errNoPosition = errors.New("no position given")

// ParsePosition accepts what a person types for an object position:
// "4730.50N 12230.75W", "47.5084 -122.5125" or a Maidenhead locator.
func ParsePosition(s string) (Coord, Coord, error) {
	var fields = strings.Fields(s)

	switch len(fields) {
	case 0:
		return 0, 0, errNoPosition

	case 1:
		var dlat, dlon, err = ll_from_grid_square(fields[0])
		if err != nil {
			return 0, 0, fmt.Errorf("can't make sense of position %q: %w", s, err)
		}
		return LatToCoord(dlat), LonToCoord(dlon), nil

	case 2:
		var lat, latOK = ParseLat(fields[0])
		var lon, lonOK = ParseLon(fields[1])
		if latOK && lonOK {
			return lat, lon, nil
		}

		var dlat, latErr = strconv.ParseFloat(fields[0], 64)
		var dlon, lonErr = strconv.ParseFloat(fields[1], 64)
		if latErr != nil || lonErr != nil || math.Abs(dlat) > 90 || math.Abs(dlon) > 180 {
			return 0, 0, fmt.Errorf("can't make sense of position %q", s)
		}
		return LatToCoord(dlat), LonToCoord(dlon), nil

	default:
		return 0, 0, fmt.Errorf("can't make sense of position %q", s)
	}
}
