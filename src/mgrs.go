package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Military Grid Reference System 100 km square letters.
 *
 * Description:	MGRS is UTM/UPS with the easting and northing
 *		millions and hundred-thousands replaced by two letters.
 *
 *		UTM: columns cycle through 24 letters, 8 per zone, over
 *		three zones.  Rows cycle through 20 letters, offset by 5
 *		in even zones.
 *
 *		UPS: each polar zone has its own column alphabet (never
 *		D, E, I, M, N, O, V, W) and row alphabet starting at a
 *		fixed false easting/northing.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
)

const (
	mgrsColumnLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ" // 3 zones x 8
	mgrsRowLetters    = "ABCDEFGHJKLMNPQRSTUV"     // 20

	upsNorthRowLetters = "ABCDEFGHJKLMNP"           // 14
	upsSouthRowLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ" // 24

	upsWestColumnLetters      = "JKLPQRSTUXYZ" // zones A and Y
	upsSouthEastColumnLetters = "ABCFGHJKLPQR" // zone B
	upsNorthEastColumnLetters = "ABCFGHJ"      // zone Z

	mgrsSquare = 100000
)

// MGRS is a grid reference split into its parts.
type MGRS struct {
	Zone     string // "19T" or polar "A", "B", "Y", "Z"
	Column   byte   // East-west 100 km square letter
	Row      byte   // North-south 100 km square letter
	Easting  int    // meters within the square
	Northing int    // meters within the square
}

// String gives the spaced form, e.g. "19T CH 06130 26010".
func (m MGRS) String() string {
	return fmt.Sprintf("%s %c%c %05d %05d", m.Zone, m.Column, m.Row, m.Easting, m.Northing)
}

// Compact gives the unspaced form at 1 to 5 digits per axis.
func (m MGRS) Compact(digits int) string {
	if digits < 1 {
		digits = 1
	}
	if digits > 5 {
		digits = 5
	}

	var div = 1
	for i := digits; i < 5; i++ {
		div *= 10
	}

	return fmt.Sprintf("%s%c%c%0*d%0*d", m.Zone, m.Column, m.Row, digits, m.Easting/div, digits, m.Northing/div)
}

func letterAt(alphabet string, index int) byte {
	if index < 0 {
		index = 0
	}
	if index >= len(alphabet) {
		index = len(alphabet) - 1
	}
	return alphabet[index]
}

// LLToMGRS converts WGS 84 decimal degrees.
func LLToMGRS(lat, lon float64) MGRS {
	var u = LLToUTMUPS(EllipsoidWGS84, lat, lon, MGRSMode)

	var easting = int(u.Easting)
	var northing = int(u.Northing)

	var m = MGRS{
		Zone:     u.Zone,
		Easting:  easting % mgrsSquare,
		Northing: northing % mgrsSquare,
	}

	switch u.Zone {
	case "A":
		m.Column = letterAt(upsWestColumnLetters, (easting-800000)/mgrsSquare)
		m.Row = letterAt(upsSouthRowLetters, (northing-800000)/mgrsSquare)
	case "B":
		m.Column = letterAt(upsSouthEastColumnLetters, (easting-2000000)/mgrsSquare)
		m.Row = letterAt(upsSouthRowLetters, (northing-800000)/mgrsSquare)
	case "Y":
		m.Column = letterAt(upsWestColumnLetters, (easting-800000)/mgrsSquare)
		m.Row = letterAt(upsNorthRowLetters, (northing-1300000)/mgrsSquare)
	case "Z":
		m.Column = letterAt(upsNorthEastColumnLetters, (easting-2000000)/mgrsSquare)
		m.Row = letterAt(upsNorthRowLetters, (northing-1300000)/mgrsSquare)
	default:
		var zoneNumber, _, _ = ParseZone(u.Zone)

		var set = (zoneNumber - 1) % 3
		var column = easting/mgrsSquare - 1 // 1..8 -> 0..7
		if column < 0 {
			column = 0
		}
		if column > 7 {
			column = 7
		}
		m.Column = mgrsColumnLetters[set*8+column]

		var row = (northing % 2000000) / mgrsSquare
		if zoneNumber%2 == 0 {
			row += 5
		}
		m.Row = mgrsRowLetters[row%len(mgrsRowLetters)]
	}

	return m
}

// CoordToMGRS is LLToMGRS for internal coordinates.
func CoordToMGRS(lat, lon Coord) MGRS {
	return LLToMGRS(lat.Latitude(), lon.Longitude())
}
