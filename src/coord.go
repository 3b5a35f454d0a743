package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Internal fixed point coordinates and their string forms.
 *
 * Description:	Positions are kept as integer hundredths of a second
 *		of arc, measured from the north pole for latitude and
 *		from 180W for longitude:
 *
 *			latitude	0 = 90N	   64,800,000 = 90S
 *			longitude	0 = 180W  129,600,000 = 180E
 *
 *		All of the formatting below works on the integer value
 *		so there is no floating point roundoff at the boundary
 *		between one hundredth of a minute and the next.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"math"
	"strings"
)

type Coord int64

const (
	coordPerDegree = 360000 // hundredths of a second
	coordPerMinute = 6000

	LatCoordNorthPole Coord = 0
	LatCoordEquator   Coord = 90 * coordPerDegree
	LatCoordSouthPole Coord = 180 * coordPerDegree

	LonCoord180West       Coord = 0
	LonCoordPrimeMeridian Coord = 180 * coordPerDegree
	LonCoord180East       Coord = 360 * coordPerDegree
)

// LatToCoord converts decimal degrees, negative for south.
func LatToCoord(lat float64) Coord {
	return clampCoord(Coord(math.Round((90-lat)*coordPerDegree)), LatCoordSouthPole)
}

// LonToCoord converts decimal degrees, negative for west.
func LonToCoord(lon float64) Coord {
	return clampCoord(Coord(math.Round((lon+180)*coordPerDegree)), LonCoord180East)
}

func clampCoord(c Coord, limit Coord) Coord {
	if c < 0 {
		return 0
	}
	if c > limit {
		return limit
	}
	return c
}

// Latitude in decimal degrees, negative for south.
func (c Coord) Latitude() float64 {
	return 90 - float64(c)/coordPerDegree
}

// Longitude in decimal degrees, negative for west.
func (c Coord) Longitude() float64 {
	return float64(c)/coordPerDegree - 180
}

/*------------------------------------------------------------------
 *
 * Name:	PositionDefined
 *
 * Purpose:	Distinguish a real position from "never set".
 *
 * Description:	Zero in both coordinates (90N 180W) is what an unset
 *		position looks like, so it is never accepted.  In strict
 *		mode 0N 0E is rejected too, because that's what a
 *		receiver without a fix often reports.
 *
 *----------------------------------------------------------------*/

func PositionDefined(lat, lon Coord, strict bool) bool {
	if strict && lat == LatCoordEquator && lon == LonCoordPrimeMeridian {
		return false
	}

	if lat == 0 && lon == 0 {
		return false
	}

	return true
}

type CoordFormat int

const (
	FormatLPNoSpace  CoordFormat = iota // DDMM.MMN
	FormatLPNormal                      // DD MM.MMN
	FormatHPNoSpace                     // DDMM.MMMN
	FormatHPNormal                      // DD MM.MMMN
	FormatVHPNoSpace                    // DDMM.MMMMN
	FormatTrackLog                      // NDD MM.MMMM
	FormatDecDeg                        // DD.DDDDDN
	FormatDMS                           // DD MM SS.SN
)

func (f CoordFormat) String() string {
	switch f {
	case FormatLPNoSpace:
		return "lp-nosp"
	case FormatLPNormal:
		return "lp"
	case FormatHPNoSpace:
		return "hp-nosp"
	case FormatHPNormal:
		return "hp"
	case FormatVHPNoSpace:
		return "vhp-nosp"
	case FormatTrackLog:
		return "track"
	case FormatDecDeg:
		return "decdeg"
	case FormatDMS:
		return "dms"
	default:
		return fmt.Sprintf("CoordFormat(%d)", int(f))
	}
}

// formatAngle does the work for both axes.  off is hundredths of a second from
// the equator or prime meridian, already made positive; width is 2 or 3.
func formatAngle(off int64, width int, hemi byte, format CoordFormat) string {
	var deg = off / coordPerDegree
	var rem = off % coordPerDegree // hundredths of a second within the degree

	switch format {
	case FormatLPNoSpace, FormatLPNormal:
		var hmin = rem / 60 // hundredths of a minute
		var sep = IfThenElse(format == FormatLPNormal, " ", "")
		return fmt.Sprintf("%0*d%s%02d.%02d%c", width, deg, sep, hmin/100, hmin%100, hemi)

	case FormatHPNoSpace, FormatHPNormal:
		var tmin = rem / 6 // thousandths of a minute
		var sep = IfThenElse(format == FormatHPNormal, " ", "")
		return fmt.Sprintf("%0*d%s%02d.%03d%c", width, deg, sep, tmin/1000, tmin%1000, hemi)

	case FormatVHPNoSpace:
		var qmin = rem * 5 / 3 // ten thousandths of a minute
		return fmt.Sprintf("%0*d%02d.%04d%c", width, deg, qmin/10000, qmin%10000, hemi)

	case FormatTrackLog:
		var qmin = rem * 5 / 3
		return fmt.Sprintf("%c%0*d %02d.%04d", hemi, width, deg, qmin/10000, qmin%10000)

	case FormatDecDeg:
		var frac = rem * 5 / 18 // hundred thousandths of a degree
		return fmt.Sprintf("%0*d.%05d%c", width, deg, frac, hemi)

	case FormatDMS:
		var mins = rem / coordPerMinute
		var tenths = (rem % coordPerMinute) / 10
		return fmt.Sprintf("%0*d %02d %02d.%d%c", width, deg, mins, tenths/10, tenths%10, hemi)

	default:
		return ""
	}
}

/*------------------------------------------------------------------
 *
 * Name:	LatToString, LonToString
 *
 * Purpose:	Internal coordinate to one of the string formats.
 *
 * Description:	The equator is shown as N, the prime meridian as E.
 *		Digits are truncated, never rounded, so a value never
 *		spills into the next minute or degree.
 *
 *----------------------------------------------------------------*/

func LatToString(lat Coord, format CoordFormat) string {
	lat = clampCoord(lat, LatCoordSouthPole)

	var off = int64(lat - LatCoordEquator)
	var hemi = byte('N')
	if off > 0 {
		hemi = 'S'
	} else {
		off = -off
	}

	return formatAngle(off, 2, hemi, format)
}

func LonToString(lon Coord, format CoordFormat) string {
	lon = clampCoord(lon, LonCoord180East)

	var off = int64(lon - LonCoordPrimeMeridian)
	var hemi = byte('E')
	if off < 0 {
		hemi = 'W'
		off = -off
	}

	return formatAngle(off, 3, hemi, format)
}

// prepareCoordString removes blanks and moves a leading hemisphere letter
// (track log style) to the end.
func prepareCoordString(s string, hemis string) string {
	var t = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if len(t) > 1 && strings.IndexByte(hemis, t[0]) >= 0 {
		t = t[1:] + t[:1]
	}
	return t
}

// parseAngle handles "D..DMM.F[F[F]]H" once degree width is known.
// Returns hundredths of a second and the hemisphere letter.
func parseAngle(t string, width int, maxDeg int64, hemis string) (int64, byte, bool) {
	var n = len(t)
	var dot = width + 2

	// 2, 3 or 4 fractional digits.
	if n < dot+4 || n > dot+6 {
		return 0, 0, false
	}
	if t[dot] != '.' {
		return 0, 0, false
	}

	var hemi = t[n-1]
	if strings.IndexByte(hemis, hemi) < 0 {
		return 0, 0, false
	}

	var degStr = t[:width]
	var minStr = t[width:dot]
	var fracStr = t[dot+1 : n-1]
	if !isAllDigits(degStr) || !isAllDigits(minStr) || !isAllDigits(fracStr) {
		return 0, 0, false
	}

	var deg, mins, frac int64
	for i := 0; i < len(degStr); i++ {
		deg = deg*10 + int64(degStr[i]-'0')
	}
	mins = int64(minStr[0]-'0')*10 + int64(minStr[1]-'0')

	var scale int64 = 1
	for i := 0; i < len(fracStr); i++ {
		frac = frac*10 + int64(fracStr[i]-'0')
		scale *= 10
	}

	if mins >= 60 || deg > maxDeg || (deg == maxDeg && (mins != 0 || frac != 0)) {
		return 0, 0, false
	}

	var v = deg*coordPerDegree + mins*coordPerMinute + (frac*coordPerMinute+scale/2)/scale

	return v, hemi, true
}

/*------------------------------------------------------------------
 *
 * Name:	ParseLat, ParseLon
 *
 * Purpose:	String to internal coordinate, strict.
 *
 * Inputs:	"DDMM.MM[M[M]]N" for latitude, "DDDMM.MM[M[M]]W" for
 *		longitude.  Blanks are ignored so the spaced formats
 *		are accepted, as is the track log form with the
 *		hemisphere in front.
 *
 * Returns:	ok false for anything else.
 *
 *----------------------------------------------------------------*/

func ParseLat(s string) (Coord, bool) {
	var t = prepareCoordString(s, "NS")

	var v, hemi, ok = parseAngle(t, 2, 90, "NS")
	if !ok {
		return 0, false
	}

	if hemi == 'N' {
		return LatCoordEquator - Coord(v), true
	}
	return LatCoordEquator + Coord(v), true
}

func ParseLon(s string) (Coord, bool) {
	var t = prepareCoordString(s, "EW")

	var v, hemi, ok = parseAngle(t, 3, 180, "EW")
	if !ok {
		return 0, false
	}

	if hemi == 'W' {
		return LonCoordPrimeMeridian - Coord(v), true
	}
	return LonCoordPrimeMeridian + Coord(v), true
}

// StringToLat returns 0 for anything it can't parse, the same as an
// undefined position.  Use ParseLat when the difference matters.
func StringToLat(s string) Coord {
	var c, _ = ParseLat(s)
	return c
}

// StringToLon is the longitude counterpart of StringToLat.
func StringToLon(s string) Coord {
	var c, _ = ParseLon(s)
	return c
}
