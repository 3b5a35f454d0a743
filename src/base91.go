package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Base 91 compressed position reports.
 *
 * Description:	Compressed posit layout:
 *
 *			/YYYYXXXX$csT
 *
 *		/	symbol table or overlay.  Overlay digits become
 *			a thru j since a digit can't go in this position.
 *		YYYY	latitude, 4 base 91 digits.
 *		XXXX	longitude, 4 base 91 digits.
 *		$	symbol code.
 *		cs	course/speed, or '{' and a range for PHG.
 *		T	compression type.  We always send 'C'.
 *
 *		When there's neither course/speed nor PHG, csT collapses
 *		to a single space.
 *
 *---------------------------------------------------------------*/

import (
	"math"
)

/* Range of digits for Base 91 representation. */

const B91_MIN = '!'
const B91_MAX = '{'

const compressionType = 'C'

func isdigit91(c byte) bool {
	return c >= B91_MIN && c <= B91_MAX
}

// base91Value decodes a run of base 91 digits, most significant first.
func base91Value(s string) (int, bool) {
	var result int

	for i := 0; i < len(s); i++ {
		if !isdigit91(s[i]) {
			dw_printf(DW_COLOR_DEBUG, "\"%c\" is not a valid character for base 91 data.\n", s[i])
			return 0, false
		}
		result = result*91 + int(s[i]-B91_MIN)
	}

	return result, true
}

// wireDegrees reads "DDMM.MM[M[M]]H" loosely, the way sscanf would: digits
// for degrees, then whatever number follows as minutes, then the hemisphere.
func wireDegrees(s string, width int, negative byte) float64 {
	if len(s) < width {
		return 0
	}

	var deg, _ = atoiPrefix(s[:width])
	var rest = s[width:]
	var minutes, _ = atofPrefix(rest)

	var v = float64(deg) + minutes/60.0

	for i := 0; i < len(rest); i++ {
		if rest[i] >= 'A' && rest[i] <= 'Z' {
			if rest[i] == negative {
				v = -v
			}
			break
		}
	}

	return v
}

/*------------------------------------------------------------------
 *
 * Name:	phgRangeByte
 *
 * Purpose:	Squeeze a PHG string into the compressed range byte.
 *
 * Inputs:	phg	- "PHGphgd", at least 6 characters.
 *
 * Returns:	Range byte, already offset by 33.
 *
 * Description:	power = p squared watts, height = 10 * 2^h feet,
 *		gain = g dB.  Range in miles is
 *		sqrt(2 * height * sqrt(power/10 * gain/2)) and the
 *		compressed byte is log(range/2) / log(1.08).
 *
 *----------------------------------------------------------------*/

func phgRangeByte(phg string) byte {
	var power = float64(int(phg[3]-'0') * int(phg[3]-'0'))
	var height = 10.0 * math.Pow(2.0, float64(phg[4]-'0'))
	var gain = math.Pow(10.0, float64(phg[5]-'0')/10.0)

	var rng = math.Sqrt(2.0 * height * math.Sqrt((power/10.0)*(gain/2.0)))

	var s = math.Log(rng/2.0) / math.Log(1.08)
	if s < 0 || math.IsNaN(s) {
		s = 0
	}
	if s > 89 {
		s = 89
	}

	return byte(int(s+0.5) + 33)
}

/*------------------------------------------------------------------
 *
 * Name:	CompressPosit
 *
 * Purpose:	Build the compressed position block of a packet.
 *
 * Inputs:	lat	- "DDMM.MMN" or a higher precision variant.
 *		group	- Symbol table or overlay character.
 *		lon	- "DDDMM.MMW" or a higher precision variant.
 *		symbol	- Symbol code.
 *		course	- Degrees, 0 for none.  360 is sent as north.
 *		speed	- Knots, 0 for none.
 *		phg	- "PHGphgd" or empty.  Only used without course/speed.
 *
 * Returns:	13 characters with the csT extension or 11 without.
 *
 *----------------------------------------------------------------*/

func CompressPosit(lat string, group byte, lon string, symbol byte, course, speed int, phg string) string {
	var dlat = wireDegrees(lat, 2, 'S')
	var dlon = wireDegrees(lon, 3, 'W')

	if group >= '0' && group <= '9' {
		group = 'a' + (group - '0')
	}

	var out = make([]byte, 0, 13)
	out = append(out, group)
	out = append(out, latitude_to_comp_str(dlat)...)
	out = append(out, longitude_to_comp_str(dlon)...)
	out = append(out, symbol)

	course = max(course, 0)
	speed = max(speed, 0)

	switch {
	case course > 0 || speed > 0:
		var c = (course % 360) / 4
		var s = int(math.Round(math.Log(float64(speed)+1) / math.Log(1.08)))
		if s > 89 {
			s = 89
		}
		out = append(out, byte(c+33), byte(s+33), compressionType)

	case len(phg) >= 6:
		out = append(out, '{', phgRangeByte(phg), compressionType)

	default:
		out = append(out, ' ')
	}

	return string(out)
}

/*------------------------------------------------------------------
 *
 * Name:	DecompressPosit
 *
 * Purpose:	Undo CompressPosit, as far as it can be undone.
 *
 * Returns:	lat, lon in degrees, group with overlay letters turned
 *		back into digits, symbol, course and speed (0 when
 *		absent), and the number of bytes used.
 *
 *----------------------------------------------------------------*/

type CompressedPosit struct {
	Lat, Lon float64
	Group    byte
	Symbol   byte
	Course   int
	Speed    int
	HasCS    bool
	Range    float64 // miles, when cs held '{' instead of a course
	Length   int
}

func DecompressPosit(s string) (CompressedPosit, bool) {
	var p CompressedPosit

	if len(s) < 11 {
		return p, false
	}

	var y, yOK = base91Value(s[1:5])
	var x, xOK = base91Value(s[5:9])
	if !yOK || !xOK {
		return p, false
	}

	p.Group = s[0]
	if p.Group >= 'a' && p.Group <= 'j' {
		p.Group = '0' + (p.Group - 'a')
	}
	p.Lat = 90.0 - float64(y)/380926.0
	p.Lon = -180.0 + float64(x)/190463.0
	p.Symbol = s[9]

	if s[10] == ' ' || len(s) < 13 {
		p.Length = 11
		return p, true
	}

	p.Length = 13
	var c, sp = s[10], s[11]
	switch {
	case c == '{':
		p.Range = 2.0 * math.Pow(1.08, float64(sp-33))
	case isdigit91(c) && c <= 'z':
		p.Course = int(c-33) * 4
		p.Speed = int(math.Round(math.Pow(1.08, float64(sp-33)) - 1))
		p.HasCS = true
	}

	return p, true
}
