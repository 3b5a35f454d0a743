package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Convert latitude / longitude between datums.
 *
 * Description:	Every conversion goes through WGS 84.  Each step takes
 *		the point to geocentric coordinates on the input
 *		ellipsoid, applies the datum origin offset, and comes
 *		back through the geocentric latitude of the output
 *		ellipsoid.  Height above the ellipsoid is ignored.
 *
 *		The special cases for latitude 0/+-90 and longitude +-90
 *		avoid tan(90) in the formulas.  They compare with == on
 *		purpose; the generic formulas are fine a hair away.
 *
 *---------------------------------------------------------------*/

import (
	"math"
)

/*------------------------------------------------------------------
 *
 * Name:	WGS84DatumShift
 *
 * Inputs:	fromWGS84	- true to go from WGS 84 to datum,
 *				  false to go from datum to WGS 84.
 *		lat, lon	- Decimal degrees.
 *		datum		- Index into the datum table.  Must be valid.
 *
 * Returns:	Shifted lat, lon in decimal degrees.
 *
 *----------------------------------------------------------------*/

func WGS84DatumShift(fromWGS84 bool, lat, lon float64, datum DatumID) (float64, float64) {
	if datum == DatumWGS84 {
		return lat, lon
	}

	var d = datums[datum]
	var dx, dy, dz = d.DX, d.DY, d.DZ

	var phi = D2R(lat)
	var lambda = D2R(lon)

	var e0, e1 Ellipsoid // input and output reference ellipsoids

	if fromWGS84 {
		e0 = ellipsoids[EllipsoidWGS84]
		e1 = ellipsoids[d.Ellipsoid]
	} else {
		e0 = ellipsoids[d.Ellipsoid]
		e1 = ellipsoids[EllipsoidWGS84]
		dx = -dx
		dy = -dy
		dz = -dz
	}

	var a0 = e0.SemiMajorAxis
	var b0 = e0.SemiMinorAxis()
	var es0 = e0.EccentricitySquared()
	var es1 = e1.EccentricitySquared()

	/* Geodetic latitude to geocentric latitude. */

	var psi float64
	if lat == 0.0 || lat == 90.0 || lat == -90.0 {
		psi = phi
	} else {
		psi = math.Atan((1 - es0) * math.Tan(phi))
	}

	/* x and y with respect to the original ellipsoid. */

	var x, y float64
	if lon == 90.0 || lon == -90.0 {
		x = 0.0
		y = math.Abs(a0 * b0 / math.Sqrt(b0*b0+a0*a0*math.Pow(math.Tan(psi), 2.0)))
	} else {
		x = math.Abs((a0 * b0) / math.Sqrt((1+math.Pow(math.Tan(lambda), 2.0))*(b0*b0+a0*a0*math.Pow(math.Tan(psi), 2.0))))
		y = math.Abs(x * math.Tan(lambda))
	}

	if lon < -90.0 || lon > 90.0 {
		x = -x
	}
	if lon < 0.0 {
		y = -y
	}

	/* z with respect to the original ellipsoid. */

	var z float64
	switch lat {
	case 90.0:
		z = b0
	case -90.0:
		z = -b0
	default:
		z = math.Tan(psi) * math.Sqrt((a0*a0*b0*b0)/(b0*b0+a0*a0*math.Pow(math.Tan(psi), 2.0)))
	}

	/* Geocentric latitude with respect to the new ellipsoid, then back to geodetic. */

	var psi1 = math.Atan((z - dz) / math.Sqrt((x-dx)*(x-dx)+(y-dy)*(y-dy)))

	var outLat = R2D(math.Atan(math.Tan(psi1) / (1 - es1)))

	var outLon = R2D(math.Atan((y - dy) / (x - dx)))

	// atan only covers +-90; put it back in the right half.
	if x-dx < 0.0 {
		if y-dy > 0.0 {
			outLon = 180.0 + outLon
		} else {
			outLon = -180.0 + outLon
		}
	}

	return outLat, outLon
}

// DatumShift converts lat/lon in decimal degrees from one datum to another.
func DatumShift(lat, lon float64, from, to DatumID) (float64, float64) {
	lat, lon = WGS84DatumShift(false, lat, lon, from)
	return WGS84DatumShift(true, lat, lon, to)
}
