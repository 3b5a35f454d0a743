package aprsobj

// Utilities for working with https://github.com/tzneal/coordconv

import (
	"fmt"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

func HemisphereRuneToCoordconvHemisphere(_hemi rune) coordconv.Hemisphere {
	switch _hemi {
	case 'N':
		return coordconv.HemisphereNorth
	case 'S':
		return coordconv.HemisphereSouth
	default:
		return coordconv.HemisphereInvalid
	}
}

func HemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return '!'
	default:
		return '?'
	}
}

// LatLngFromDegrees builds the s2 value coordconv wants.
func LatLngFromDegrees(lat, lon float64) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(D2R(lat)),
		Lng: s1.Angle(D2R(lon)),
	}
}

// DegreesFromLatLng is the reverse of LatLngFromDegrees.
func DegreesFromLatLng(ll s2.LatLng) (float64, float64) {
	return ll.Lat.Degrees(), ll.Lng.Degrees()
}

// ZoneHemisphere gives the coordconv hemisphere for one of our UTM zone
// strings.  A missing band letter means north, as it does for utm2ll.
func ZoneHemisphere(zone string) (int, coordconv.Hemisphere, error) {
	var number, letter, err = ParseZone(zone)
	if err != nil {
		return 0, coordconv.HemisphereInvalid, err
	}

	if number == 0 {
		return 0, coordconv.HemisphereInvalid, fmt.Errorf("%q is a polar zone: %w", zone, errBadZone)
	}

	return number, HemisphereRuneToCoordconvHemisphere(IfThenElse(letter >= 'N', 'N', 'S')), nil
}

/*------------------------------------------------------------------
 *
 * Name:	MGRSToLL
 *
 * Purpose:	Decode an MGRS or USNG grid reference.
 *
 * Inputs:	s	- e.g. "19TCH06132600" or "19T CH 0613 2600".
 *			  Spaces are ignored.
 *
 * Returns:	WGS 84 latitude and longitude in decimal degrees.
 *
 * Description:	We only ever produce MGRS ourselves; reading it back is
 *		left to coordconv.
 *
 *----------------------------------------------------------------*/

func MGRSToLL(s string) (float64, float64, error) {
	var compact = strings.ToUpper(strings.Join(strings.Fields(s), ""))

	var ll, err = coordconv.DefaultMGRSConverter.ConvertToGeodetic(compact)
	if err != nil {
		return 0, 0, fmt.Errorf("MGRS %q: %w", s, err)
	}

	var lat, lon = DegreesFromLatLng(ll)

	return lat, lon, nil
}
