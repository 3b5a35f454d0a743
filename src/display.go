package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Show a position the way the operator asked for it.
 *
 * Description:	Positions are kept in WGS 84.  For display they are
 *		shifted to the chosen datum first and then projected
 *		on that datum's ellipsoid.  MGRS letters are always
 *		worked out on WGS 84.
 *
 *------------------------------------------------------------------*/

import "fmt"

func GridString(lat, lon float64, mode ZoneMode, datum DatumID) string {
	lat, lon = WGS84DatumShift(true, lat, lon, datum)

	if mode == MGRSMode {
		return LLToMGRS(lat, lon).String()
	}

	return LLToUTMUPS(datum.Datum().Ellipsoid, lat, lon, mode).String()
}

// APRSString is the usual "DDMM.MMN DDDMM.MMW" form.
func APRSString(lat, lon Coord) string {
	return fmt.Sprintf("%s %s", LatToString(lat, FormatLPNoSpace), LonToString(lon, FormatLPNoSpace))
}
