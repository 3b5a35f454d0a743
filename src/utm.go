package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Latitude / longitude to and from UTM or UPS.
 *
 * Description:	UTM uses the transverse Mercator series from Snyder,
 *		"Map Projections - A Working Manual", USGS Professional
 *		Paper 1395.  Above 84N and below 80S, where UTM is not
 *		defined, we switch to Universal Polar Stereographic.
 *
 *		Zone letters C..X (no I or O) mark the 8 degree latitude
 *		bands.  The polar areas are A/B (south) and Y/Z (north),
 *		split by the sign of the longitude.  A polar zone has no
 *		zone number.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ZoneMode selects how zone numbers are chosen.
type ZoneMode int

const (
	// PlainUTM always uses the naive 6 degree bands.
	PlainUTM ZoneMode = iota
	// SpecialUTM applies the Norway and Svalbard exceptions.
	SpecialUTM
	// MGRSMode is SpecialUTM, used when building MGRS references.
	MGRSMode
)

func (m ZoneMode) String() string {
	switch m {
	case PlainUTM:
		return "utm"
	case SpecialUTM:
		return "utm-special"
	case MGRSMode:
		return "mgrs"
	default:
		return fmt.Sprintf("ZoneMode(%d)", int(m))
	}
}

// ParseZoneMode accepts the names produced by ZoneMode.String.
func ParseZoneMode(s string) (ZoneMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utm":
		return PlainUTM, nil
	case "utm-special", "special":
		return SpecialUTM, nil
	case "mgrs":
		return MGRSMode, nil
	default:
		return PlainUTM, fmt.Errorf("unknown coordinate system %q", s)
	}
}

const (
	utmScaleFactor = 0.9996
	upsScaleFactor = 0.994

	utmFalseEasting      = 500000.0
	utmFalseNorthingS    = 10000000.0
	upsFalseEastNorthing = 2000000.0

	upsNorthLimit = 84.0
	upsSouthLimit = -80.0
)

type UTMCoord struct {
	Northing float64
	Easting  float64
	Zone     string // "19T", or a single letter A, B, Y, Z for UPS.
}

func (u UTMCoord) String() string {
	return fmt.Sprintf("%s %07.0f %07.0f", u.Zone, u.Easting, u.Northing)
}

// IsPolar reports whether the coordinate is UPS rather than UTM.
func (u UTMCoord) IsPolar() bool {
	return len(u.Zone) == 1 && isPolarLetter(u.Zone[0])
}

func isPolarLetter(c byte) bool {
	return c == 'A' || c == 'B' || c == 'Y' || c == 'Z'
}

/*------------------------------------------------------------------
 *
 * Name:	UTMLetterDesignator
 *
 * Purpose:	Latitude band letter for a position.
 *
 * Returns:	'C' thru 'X' for 80S..84N.  X is 12 degrees tall.
 *		'Y'/'Z' north of 84, 'A'/'B' south of 80, with the
 *		first letter of each pair used for west longitudes.
 *
 *----------------------------------------------------------------*/

func UTMLetterDesignator(lat, lon float64) byte {
	switch {
	case lat > upsNorthLimit:
		return IfThenElse[byte](lon < 0, 'Y', 'Z')
	case lat >= 72:
		return 'X'
	case lat >= 64:
		return 'W'
	case lat >= 56:
		return 'V'
	case lat >= 48:
		return 'U'
	case lat >= 40:
		return 'T'
	case lat >= 32:
		return 'S'
	case lat >= 24:
		return 'R'
	case lat >= 16:
		return 'Q'
	case lat >= 8:
		return 'P'
	case lat >= 0:
		return 'N'
	case lat >= -8:
		return 'M'
	case lat >= -16:
		return 'L'
	case lat >= -24:
		return 'K'
	case lat >= -32:
		return 'J'
	case lat >= -40:
		return 'H'
	case lat >= -48:
		return 'G'
	case lat >= -56:
		return 'F'
	case lat >= -64:
		return 'E'
	case lat >= -72:
		return 'D'
	case lat >= upsSouthLimit:
		return 'C'
	default:
		return IfThenElse[byte](lon < 0, 'A', 'B')
	}
}

// normalizeLongitude maps any longitude into [-180, 180).
func normalizeLongitude(lon float64) float64 {
	var l = math.Mod(lon+180, 360)
	if l < 0 {
		l += 360
	}
	return l - 180
}

func utmZoneNumber(lat, lon float64, mode ZoneMode) int {
	var zone = int((lon+180)/6) + 1
	if zone > 60 {
		zone = 60
	}

	if mode == SpecialUTM || mode == MGRSMode {
		// Southern Norway.
		if lat >= 56.0 && lat < 64.0 && lon >= 3.0 && lon < 12.0 {
			zone = 32
		}

		// Svalbard.
		if lat >= 72.0 && lat < 84.0 {
			switch {
			case lon >= 0.0 && lon < 9.0:
				zone = 31
			case lon >= 9.0 && lon < 21.0:
				zone = 33
			case lon >= 21.0 && lon < 33.0:
				zone = 35
			case lon >= 33.0 && lon < 42.0:
				zone = 37
			}
		}
	}

	return zone
}

/*------------------------------------------------------------------
 *
 * Name:	LLToUTMUPS
 *
 * Purpose:	Project a geodetic position.
 *
 * Inputs:	ellipsoid	- Reference ellipsoid, WGS 84 normally.
 *		lat, lon	- Decimal degrees.  Longitude may be outside
 *				  +-180; it is normalized first.
 *		mode		- Zone selection rules.
 *
 * Returns:	Northing and easting in meters and the zone string.
 *
 *----------------------------------------------------------------*/

func LLToUTMUPS(ellipsoid EllipsoidID, lat, lon float64, mode ZoneMode) UTMCoord {
	var e = ellipsoids[ellipsoid]
	var a = e.SemiMajorAxis
	var eccSquared = e.EccentricitySquared()

	var longTemp = normalizeLongitude(lon)
	var latRad = D2R(lat)
	var longRad = D2R(longTemp)

	var letter = UTMLetterDesignator(lat, longTemp)

	if isPolarLetter(letter) {
		var northing, easting = llToUPS(a, eccSquared, latRad, longRad, letter == 'Y' || letter == 'Z')
		return UTMCoord{Northing: northing, Easting: easting, Zone: string(letter)}
	}

	var zoneNumber = utmZoneNumber(lat, longTemp, mode)

	var longOrigin = float64((zoneNumber-1)*6 - 180 + 3) // +3 puts origin in middle of zone
	var longOriginRad = D2R(longOrigin)

	var eccPrimeSquared = eccSquared / (1 - eccSquared)

	var sinLat = math.Sin(latRad)
	var cosLat = math.Cos(latRad)
	var tanLat = math.Tan(latRad)

	var N = a / math.Sqrt(1-eccSquared*sinLat*sinLat)
	var T = tanLat * tanLat
	var C = eccPrimeSquared * cosLat * cosLat
	var A = cosLat * (longRad - longOriginRad)

	var e2 = eccSquared
	var e4 = e2 * e2
	var e6 = e4 * e2

	var M = a * ((1-e2/4-3*e4/64-5*e6/256)*latRad -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*latRad) +
		(15*e4/256+45*e6/1024)*math.Sin(4*latRad) -
		(35*e6/3072)*math.Sin(6*latRad))

	var easting = utmScaleFactor*N*(A+(1-T+C)*A*A*A/6+
		(5-18*T+T*T+72*C-58*eccPrimeSquared)*A*A*A*A*A/120) + utmFalseEasting

	var northing = utmScaleFactor * (M + N*tanLat*(A*A/2+(5-T+9*C+4*C*C)*A*A*A*A/24+
		(61-58*T+T*T+600*C-330*eccPrimeSquared)*A*A*A*A*A*A/720))

	if lat < 0 {
		northing += utmFalseNorthingS
	}

	return UTMCoord{
		Northing: northing,
		Easting:  easting,
		Zone:     fmt.Sprintf("%d%c", zoneNumber, letter),
	}
}

// Polar stereographic, true scale at the pole scaled by 0.994.
func llToUPS(a, eccSquared, latRad, longRad float64, north bool) (float64, float64) {
	var e = math.Sqrt(eccSquared)
	var sinLat = math.Sin(latRad)

	var t float64
	if north {
		t = math.Tan(math.Pi/4-latRad/2) / math.Pow((1-e*sinLat)/(1+e*sinLat), e/2)
	} else {
		t = math.Tan(math.Pi/4+latRad/2) / math.Pow((1+e*sinLat)/(1-e*sinLat), e/2)
	}

	var rho = 2 * a * upsScaleFactor * t / math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e))

	var easting = upsFalseEastNorthing + rho*math.Sin(longRad)
	var northing float64
	if north {
		northing = upsFalseEastNorthing - rho*math.Cos(longRad)
	} else {
		northing = upsFalseEastNorthing + rho*math.Cos(longRad)
	}

	return northing, easting
}

var errBadZone = errors.New("bad UTM/UPS zone")

// ParseZone splits "19T" into 19 and 'T'.  A polar zone is a lone A, B, Y or Z
// and has zone number 0.  A zone number with no letter is taken as northern.
func ParseZone(zone string) (int, byte, error) {
	var z = strings.ToUpper(strings.TrimSpace(zone))
	if z == "" {
		return 0, 0, fmt.Errorf("%w: empty", errBadZone)
	}

	var i = 0
	for i < len(z) && z[i] >= '0' && z[i] <= '9' {
		i++
	}

	var number = 0
	if i > 0 {
		var n, err = strconv.Atoi(z[:i])
		if err != nil || n < 1 || n > 60 {
			return 0, 0, fmt.Errorf("%w: %q", errBadZone, zone)
		}
		number = n
	}

	var rest = z[i:]
	switch {
	case rest == "" && number > 0:
		return number, 'N', nil
	case len(rest) != 1:
		return 0, 0, fmt.Errorf("%w: %q", errBadZone, zone)
	}

	var letter = rest[0]
	if isPolarLetter(letter) {
		if number != 0 {
			return 0, 0, fmt.Errorf("%w: %q has a zone number with a polar letter", errBadZone, zone)
		}
		return 0, letter, nil
	}

	if number == 0 || !strings.ContainsRune(utmBandLetters, rune(letter)) {
		return 0, 0, fmt.Errorf("%w: %q", errBadZone, zone)
	}

	return number, letter, nil
}

const utmBandLetters = "CDEFGHJKLMNPQRSTUVWX"

/*------------------------------------------------------------------
 *
 * Name:	UTMUPSToLL
 *
 * Purpose:	Inverse of LLToUTMUPS.
 *
 * Inputs:	ellipsoid	- Reference ellipsoid.
 *		northing,
 *		easting		- Meters.
 *		zone		- "19T" etc. or polar letter.
 *
 * Returns:	Latitude and longitude in decimal degrees.
 *		Error only when the zone string can't be understood.
 *
 *----------------------------------------------------------------*/

func UTMUPSToLL(ellipsoid EllipsoidID, northing, easting float64, zone string) (float64, float64, error) {
	var zoneNumber, letter, err = ParseZone(zone)
	if err != nil {
		return 0, 0, err
	}

	var e = ellipsoids[ellipsoid]
	var a = e.SemiMajorAxis
	var eccSquared = e.EccentricitySquared()

	if isPolarLetter(letter) {
		var lat, lon = upsToLL(a, eccSquared, northing, easting, letter == 'Y' || letter == 'Z')
		return lat, lon, nil
	}

	var e1 = (1 - math.Sqrt(1-eccSquared)) / (1 + math.Sqrt(1-eccSquared))

	var x = easting - utmFalseEasting
	var y = northing

	if letter < 'N' {
		y -= utmFalseNorthingS
	}

	var longOrigin = float64((zoneNumber-1)*6 - 180 + 3)

	var eccPrimeSquared = eccSquared / (1 - eccSquared)

	var M = y / utmScaleFactor
	var mu = M / (a * (1 - eccSquared/4 - 3*eccSquared*eccSquared/64 - 5*eccSquared*eccSquared*eccSquared/256))

	// Footprint latitude.
	var phi1Rad = mu + (3*e1/2-27*e1*e1*e1/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*e1*e1*e1*e1/32)*math.Sin(4*mu) +
		(151*e1*e1*e1/96)*math.Sin(6*mu)

	var sinPhi1 = math.Sin(phi1Rad)
	var cosPhi1 = math.Cos(phi1Rad)
	var tanPhi1 = math.Tan(phi1Rad)

	var N1 = a / math.Sqrt(1-eccSquared*sinPhi1*sinPhi1)
	var T1 = tanPhi1 * tanPhi1
	var C1 = eccPrimeSquared * cosPhi1 * cosPhi1
	var R1 = a * (1 - eccSquared) / math.Pow(1-eccSquared*sinPhi1*sinPhi1, 1.5)
	var D = x / (N1 * utmScaleFactor)

	var lat = phi1Rad - (N1*tanPhi1/R1)*(D*D/2-(5+3*T1+10*C1-4*C1*C1-9*eccPrimeSquared)*D*D*D*D/24+
		(61+90*T1+298*C1+45*T1*T1-252*eccPrimeSquared-3*C1*C1)*D*D*D*D*D*D/720)

	var lon = (D - (1+2*T1+C1)*D*D*D/6 + (5-2*C1+28*T1-3*C1*C1+8*eccPrimeSquared+24*T1*T1)*D*D*D*D*D/120) / cosPhi1

	return R2D(lat), longOrigin + R2D(lon), nil
}

func upsToLL(a, eccSquared, northing, easting float64, north bool) (float64, float64) {
	var e = math.Sqrt(eccSquared)

	var x = easting - upsFalseEastNorthing
	var y = northing - upsFalseEastNorthing

	var rho = math.Sqrt(x*x + y*y)
	var t = rho * math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e)) / (2 * a * upsScaleFactor)

	var lat = R2D(calcPhi(e, t))

	var lon float64
	if rho == 0 {
		lon = 0 // At the pole; any longitude will do.
	} else if north {
		lon = R2D(math.Atan2(x, -y))
	} else {
		lon = R2D(math.Atan2(x, y))
	}

	if !north {
		lat = -lat
	}

	return lat, lon
}

// calcPhi finds latitude from the isometric t by fixed point iteration.
func calcPhi(e, t float64) float64 {
	var phi = math.Pi/2 - 2*math.Atan(t)
	var old = 1e99

	for i := 0; i < 20 && math.Abs((phi-old)/phi) > 1e-8; i++ {
		old = phi
		var esin = e * math.Sin(phi)
		phi = math.Pi/2 - 2*math.Atan(t*math.Pow((1-esin)/(1+esin), e/2))
	}

	return phi
}
