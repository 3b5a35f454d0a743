package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Dead reckoning for moving objects.
 *
 * Description:	An object with a speed is assumed to keep going in a
 *		straight line (great circle) from where it was last put.
 *		After MaxAge it's assumed to have stopped.
 *
 *---------------------------------------------------------------*/

import (
	"time"
)

// DefaultDeadReckoningTimeout is how long an object keeps moving
// after its position was last set.
const DefaultDeadReckoningTimeout = 10 * time.Minute

type GreatCircleDeadReckoner struct {
	MaxAge time.Duration
}

func (dr GreatCircleDeadReckoner) CurrentPosition(o *Object, now time.Time) (Coord, Coord) {
	if o.FixTime.IsZero() || !now.After(o.FixTime) {
		return o.Lat, o.Lon
	}

	var speed, speedOK = atofPrefix(o.Speed)
	if !speedOK || speed <= 0 {
		return o.Lat, o.Lon
	}

	var course, _ = atofPrefix(o.Course)

	var elapsed = now.Sub(o.FixTime)
	var maxAge = dr.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultDeadReckoningTimeout
	}
	elapsed = min(elapsed, maxAge)

	var km = KnotsToKmh(speed) * elapsed.Hours()

	var lat, lon = ll_dest(o.Lat.Latitude(), o.Lon.Longitude(), km, course)

	dw_printf(DW_COLOR_DEBUG, "Dead reckoning %s %.2f km on %.0f degrees.\n", o.CallSign, km, course)

	return LatToCoord(lat), LonToCoord(lon)
}

// DistanceKm is the great circle distance between two positions.
func DistanceKm(lat1, lon1, lat2, lon2 Coord) float64 {
	return ll_distance_km(lat1.Latitude(), lon1.Longitude(), lat2.Latitude(), lon2.Longitude())
}

// BearingDeg is the initial bearing from the first position to the second, 0 - 360.
func BearingDeg(lat1, lon1, lat2, lon2 Coord) float64 {
	return ll_bearing_deg(lat1.Latitude(), lon1.Longitude(), lat2.Latitude(), lon2.Longitude())
}
