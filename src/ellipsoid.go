package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Reference ellipsoids.
 *
 * Description:	Semi-major axis in meters and inverse flattening.
 *		Values are those published in NIMA TR8350.2 and used
 *		by most GPS receivers for their datum menus.
 *
 *---------------------------------------------------------------*/

import (
	"math"
)

type EllipsoidID int

type Ellipsoid struct {
	Name              string
	SemiMajorAxis     float64 // meters
	InverseFlattening float64
}

const (
	EllipsoidAiry1830 EllipsoidID = iota
	EllipsoidModifiedAiry
	EllipsoidAustralianNational
	EllipsoidBessel1841
	EllipsoidBessel1841Namibia
	EllipsoidClarke1866
	EllipsoidClarke1880
	EllipsoidEverestIndia1830
	EllipsoidEverestSabahSarawak
	EllipsoidEverestIndia1956
	EllipsoidEverestMalaysia1969
	EllipsoidEverestMalaySing1948
	EllipsoidEverestPakistan
	EllipsoidModifiedFischer1960
	EllipsoidHelmert1906
	EllipsoidHough1960
	EllipsoidIndonesian1974
	EllipsoidInternational1924
	EllipsoidKrassovsky1940
	EllipsoidGRS80
	EllipsoidSouthAmerican1969
	EllipsoidWGS72
	EllipsoidWGS84
	EllipsoidGRS67
	EllipsoidFischer1960Mercury
	EllipsoidFischer1968
	EllipsoidWarOffice
	EllipsoidStruve1860

	numEllipsoids
)

var ellipsoids = [numEllipsoids]Ellipsoid{
	EllipsoidAiry1830:             {"Airy 1830", 6377563.396, 299.3249646},
	EllipsoidModifiedAiry:         {"Modified Airy", 6377340.189, 299.3249646},
	EllipsoidAustralianNational:   {"Australian National", 6378160.0, 298.25},
	EllipsoidBessel1841:           {"Bessel 1841", 6377397.155, 299.1528128},
	EllipsoidBessel1841Namibia:    {"Bessel 1841 (Namibia)", 6377483.865, 299.1528128},
	EllipsoidClarke1866:           {"Clarke 1866", 6378206.4, 294.9786982},
	EllipsoidClarke1880:           {"Clarke 1880", 6378249.145, 293.465},
	EllipsoidEverestIndia1830:     {"Everest (India 1830)", 6377276.345, 300.8017},
	EllipsoidEverestSabahSarawak:  {"Everest (Sabah Sarawak)", 6377298.556, 300.8017},
	EllipsoidEverestIndia1956:     {"Everest (India 1956)", 6377301.243, 300.8017},
	EllipsoidEverestMalaysia1969:  {"Everest (Malaysia 1969)", 6377295.664, 300.8017},
	EllipsoidEverestMalaySing1948: {"Everest (Malay. & Sing. 1948)", 6377304.063, 300.8017},
	EllipsoidEverestPakistan:      {"Everest (Pakistan)", 6377309.613, 300.8017},
	EllipsoidModifiedFischer1960:  {"Modified Fischer 1960", 6378155.0, 298.3},
	EllipsoidHelmert1906:          {"Helmert 1906", 6378200.0, 298.3},
	EllipsoidHough1960:            {"Hough 1960", 6378270.0, 297.0},
	EllipsoidIndonesian1974:       {"Indonesian 1974", 6378160.0, 298.247},
	EllipsoidInternational1924:    {"International 1924", 6378388.0, 297.0},
	EllipsoidKrassovsky1940:       {"Krassovsky 1940", 6378245.0, 298.3},
	EllipsoidGRS80:                {"GRS 80", 6378137.0, 298.257222101},
	EllipsoidSouthAmerican1969:    {"South American 1969", 6378160.0, 298.25},
	EllipsoidWGS72:                {"WGS 72", 6378135.0, 298.26},
	EllipsoidWGS84:                {"WGS 84", 6378137.0, 298.257223563},
	EllipsoidGRS67:                {"GRS 67", 6378160.0, 298.247167427},
	EllipsoidFischer1960Mercury:   {"Fischer 1960 (Mercury)", 6378166.0, 298.3},
	EllipsoidFischer1968:          {"Fischer 1968", 6378150.0, 298.3},
	EllipsoidWarOffice:            {"War Office", 6378300.583, 296.0},
	EllipsoidStruve1860:           {"Struve 1860", 6378298.3, 294.73},
}

func (id EllipsoidID) Valid() bool {
	return id >= 0 && id < numEllipsoids
}

func (id EllipsoidID) Ellipsoid() Ellipsoid {
	return ellipsoids[id]
}

func (id EllipsoidID) String() string {
	if !id.Valid() {
		return "invalid ellipsoid"
	}
	return ellipsoids[id].Name
}

// Flattening returns f = 1/invf.
func (e Ellipsoid) Flattening() float64 {
	return 1 / e.InverseFlattening
}

// SemiMinorAxis returns b = a(1-f).
func (e Ellipsoid) SemiMinorAxis() float64 {
	return e.SemiMajorAxis * (1 - e.Flattening())
}

// EccentricitySquared returns e² = 2f - f².
func (e Ellipsoid) EccentricitySquared() float64 {
	var f = e.Flattening()
	return 2*f - f*f
}

func (e Ellipsoid) Eccentricity() float64 {
	return math.Sqrt(e.EccentricitySquared())
}

// Ellipsoids returns a copy of the ellipsoid table.
func Ellipsoids() []Ellipsoid {
	var out = make([]Ellipsoid, len(ellipsoids))
	copy(out, ellipsoids[:])
	return out
}
