package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Small formatters for the optional fields of an object
 *		or item packet.
 *
 * Description:	Each one takes what the operator typed and returns the
 *		token to put on the air, or "" if the input isn't usable.
 *		An empty token simply means the field is left out.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"math"
	"strings"
)

const (
	maxCourse   = 360
	maxSpeed    = 999
	maxAltitude = 99999
	placeholder = "..."
)

/*------------------------------------------------------------------
 *
 * Name:	FormatCourseSpeed
 *
 * Inputs:	course	- Degrees, 0 to 360.
 *		speed	- Knots, 0 to 999.
 *
 * Returns:	"CCC/SSS" with "..." standing in for a missing or bad
 *		half, or "" when both halves are missing.
 *		Also the numeric course and speed, 0 when missing, for
 *		the compressed form.
 *
 *----------------------------------------------------------------*/

func FormatCourseSpeed(course, speed string) (string, int, int) {
	var courseTok, speedTok = placeholder, placeholder
	var c, s int

	if strings.TrimSpace(course) != "" {
		if n, ok := atoiPrefix(course); ok && n >= 0 && n <= maxCourse {
			c = n
			courseTok = fmt.Sprintf("%03d", n)
		}
	}

	if strings.TrimSpace(speed) != "" {
		if n, ok := atoiPrefix(speed); ok && n >= 0 && n <= maxSpeed {
			s = n
			speedTok = fmt.Sprintf("%03d", n)
		}
	}

	if courseTok == placeholder && speedTok == placeholder {
		return "", 0, 0
	}

	return courseTok + "/" + speedTok, c, s
}

// FormatAltitude gives "/A=FFFFFF" for 0 to 99999 feet.
func FormatAltitude(feet string) string {
	if strings.TrimSpace(feet) == "" {
		return ""
	}

	var n, ok = atoiPrefix(feet)
	if !ok || n < 0 || n > maxAltitude {
		return ""
	}

	return fmt.Sprintf("/A=%06d", n)
}

// AreaColorFromString reads the two character color of an area object,
// "/0" thru "/9" or "10" thru "15".  -1 if it's neither.
func AreaColorFromString(s string) int {
	if len(s) != 2 {
		return -1
	}

	var tens byte
	switch s[0] {
	case '/', '0':
		tens = 0
	case '1':
		tens = 10
	default:
		return -1
	}

	if s[1] < '0' || s[1] > '9' {
		return -1
	}

	var color = int(tens) + int(s[1]-'0')
	if color > maxAreaColor {
		return -1
	}

	return color
}

// FormatAreaColorFromNumeric is the reverse of AreaColorFromString.
// A leading zero is sent as '/'.
func FormatAreaColorFromNumeric(color int) string {
	if color < 0 || color > maxAreaColor {
		return ""
	}

	var b = []byte(fmt.Sprintf("%02d", color))
	if b[0] == '0' {
		b[0] = '/'
	}

	return string(b)
}

// FormatAreaColorFromDialog takes one of the 8 hues plus brightness.
// Colors 0 - 7 are bright, 8 - 15 the dim versions of the same.
func FormatAreaColorFromDialog(color int, bright bool) string {
	if color < 0 || color > maxAreaColor {
		return ""
	}

	if bright && color >= areaColorBrightOffset {
		color -= areaColorBrightOffset
	} else if !bright && color < areaColorBrightOffset {
		color += areaColorBrightOffset
	}

	return FormatAreaColorFromNumeric(color)
}

// AreaOffset squeezes an extent in hundredths of a degree into
// the two digit form: the square root, truncated, at most 99.
func AreaOffset(hundredths float64) int {
	if hundredths <= 0 {
		return 0
	}

	return min(int(math.Sqrt(hundredths)), maxAreaOffset)
}

// AreaOffsetDegrees is roughly the reverse of AreaOffset.
func AreaOffsetDegrees(off int) float64 {
	return float64(off*off) / 100.0
}

func isLineArea(areaType int) bool {
	return areaType == AreaLine || areaType == AreaLineRight
}

// FormatAreaCorridor gives "{www}" for a line with a width of 1 to 999 miles.
func FormatAreaCorridor(areaType int, width int) string {
	if !isLineArea(areaType) {
		return ""
	}

	if width <= 0 || width >= 1000 {
		return ""
	}

	return fmt.Sprintf("{%d}", width)
}

// FormatSignpost gives "{xxx}" for 1 to 3 characters of sign text.
func FormatSignpost(text string) string {
	if len(text) == 0 || len(text) > 3 || !isPrintableASCII(text) {
		return ""
	}

	return "{" + text + "}"
}

// FormatProbabilityRing puts the probability circle radii in front of the
// comment: "Pmin0.5,Pmax2.0,comment".
func FormatProbabilityRing(pmin, pmax, comment string) string {
	var parts []string

	if pmin = strings.TrimSpace(pmin); pmin != "" {
		parts = append(parts, "Pmin"+pmin)
	}
	if pmax = strings.TrimSpace(pmax); pmax != "" {
		parts = append(parts, "Pmax"+pmax)
	}

	if len(parts) == 0 {
		return comment
	}

	return strings.Join(parts, ",") + "," + comment
}

// PrependRngPhg puts a PHG or RNG token in front of the comment.
// It's trusted as is.
func PrependRngPhg(phg, comment string) string {
	return phg + comment
}

// shgdDigits pulls the 4 digits out of "DFSshgd", "SHGshgd" or "shgd".
func shgdDigits(signalGain string) string {
	var s = strings.TrimSpace(signalGain)
	s = strings.TrimPrefix(s, "DFS")
	s = strings.TrimPrefix(s, "SHG")

	if len(s) < 4 || !isAllDigits(s[:4]) {
		return ""
	}

	return s[:4]
}

// threeDigits gives a zero padded 3 digit field, "" if s isn't a
// number from 0 to limit.
func threeDigits(s string, limit int) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	var n, ok = atoiPrefix(s)
	if !ok || n < 0 || n > limit {
		return ""
	}

	return fmt.Sprintf("%03d", n)
}

/*------------------------------------------------------------------
 *
 * Name:        PHGDataExtension
 *
 * Purpose:     Build the power/height/gain token from real units.
 *
 * Inputs: 	power	- Watts.
 *		height	- Feet above average terrain.
 *		gain	- dBi.
 *		dir	- Directivity: N, NE, etc.  Empty for omni.
 *
 * Returns:	"PHGphgd".
 *
 *----------------------------------------------------------------*/

func PHGDataExtension(power, height, gain int, dir string) string {
	var p = byte(min(max(math.Round(math.Sqrt(float64(max(power, 0)))), 0), 9)) + '0'

	var h = byte('0')
	if height > 0 {
		/* Result can go beyond '9'. */
		h = byte(max(math.Round(math.Log2(float64(height)/10.0)), 0)) + '0'
	}

	var g = byte('0')
	if gain > 0 && gain <= 9 {
		g = byte(gain) + '0'
	}

	var d = byte('0')
	switch strings.ToUpper(dir) {
	case "NE":
		d = '1'
	case "E":
		d = '2'
	case "SE":
		d = '3'
	case "S":
		d = '4'
	case "SW":
		d = '5'
	case "W":
		d = '6'
	case "NW":
		d = '7'
	case "N":
		d = '8'
	}

	return fmt.Sprintf("PHG%c%c%c%c", p, h, g, d)
}
