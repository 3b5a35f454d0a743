package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Take apart the object and item packets that
 *		CreateObjectItemTxString makes.
 *
 * Description:	This is what reloads the object log.  It understands
 *		the object/item data types and the extensions we send;
 *		anything else ends up in the comment.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotObjectItem = errors.New("not an object or item")
var ErrMalformedObjectItem = errors.New("malformed object or item")

const uncompressedPositLen = 19

func malformed(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedObjectItem, fmt.Sprintf(format, a...))
}

/*------------------------------------------------------------------
 *
 * Name:	DecodeObjectItem
 *
 * Inputs:	info	- Information part of the packet, starting with
 *			  ';' or ')'.
 *
 * Returns:	A new Object, or an error if the packet doesn't hold
 *		a usable name and position.  A bad position is an error,
 *		not a position of zero.
 *
 *----------------------------------------------------------------*/

func DecodeObjectItem(info string) (*Object, error) {
	info = strings.TrimRight(info, "\r\n")

	if len(info) == 0 {
		return nil, ErrNotObjectItem
	}

	var o *Object
	var rest string

	switch info[0] {
	case ';':
		if len(info) < 1+objectNameWidth+1+7 {
			return nil, malformed("object packet too short: %q", info)
		}

		o = NewObject(strings.TrimRight(info[1:1+objectNameWidth], " "))

		switch info[1+objectNameWidth] {
		case '*':
		case '_':
			o.Kill()
		default:
			return nil, malformed("object %q has no live/killed marker", o.CallSign)
		}

		// Timestamp isn't kept.
		rest = info[1+objectNameWidth+1+7:]

	case ')':
		var end = strings.IndexAny(info[1:], "!_")
		if end < 0 {
			return nil, malformed("item packet without end of name: %q", info)
		}
		end++

		o = NewItem(info[1:end])
		if info[end] == '_' {
			o.Kill()
		}

		rest = info[end+1:]

	default:
		return nil, ErrNotObjectItem
	}

	if strings.TrimSpace(o.CallSign) == "" {
		return nil, malformed("empty name")
	}

	if len(rest) == 0 {
		return nil, malformed("%q has no position", o.CallSign)
	}

	var compressed bool
	if rest[0] >= '0' && rest[0] <= '9' {
		var err error
		if rest, err = decodeUncompressedPosit(o, rest); err != nil {
			return nil, err
		}
	} else {
		var p, ok = DecompressPosit(rest)
		if !ok {
			return nil, malformed("%q has a bad compressed position", o.CallSign)
		}

		compressed = true
		o.Lat = LatToCoord(p.Lat)
		o.Lon = LonToCoord(p.Lon)
		setGroup(&o.Symbol, p.Group)
		o.Symbol.Code = p.Symbol

		if p.HasCS {
			o.Course = fmt.Sprintf("%03d", p.Course)
			o.Speed = fmt.Sprintf("%03d", p.Speed)
		} else if p.Range > 0 {
			o.PowerGain = fmt.Sprintf("RNG%04d", int(p.Range+0.5))
		}

		rest = rest[p.Length:]
	}

	if !PositionDefined(o.Lat, o.Lon, true) {
		return nil, malformed("%q has no usable position", o.CallSign)
	}

	decodeExtensions(o, rest, compressed)

	return o, nil
}

func setGroup(s *Symbol, group byte) {
	if group == '/' || group == '\\' {
		s.Table = group
		s.Overlay = 0
		return
	}

	s.Table = '\\'
	s.Overlay = group
}

func decodeUncompressedPosit(o *Object, s string) (string, error) {
	if len(s) < uncompressedPositLen {
		return "", malformed("%q position too short", o.CallSign)
	}

	var lat, latOK = ParseLat(s[0:8])
	var lon, lonOK = ParseLon(s[9:18])
	if !latOK || !lonOK {
		return "", malformed("%q has a bad position %q", o.CallSign, s[:uncompressedPositLen])
	}

	o.Lat = lat
	o.Lon = lon
	setGroup(&o.Symbol, s[8])
	o.Symbol.Code = s[18]

	return s[uncompressedPositLen:], nil
}

// courseSpeedField reads "CCC/SSS" where either half may be "...".
func courseSpeedField(s string) (string, string, bool) {
	if len(s) < 7 || s[3] != '/' {
		return "", "", false
	}

	var c, sp = s[0:3], s[4:7]
	if (c != placeholder && !isAllDigits(c)) || (sp != placeholder && !isAllDigits(sp)) {
		return "", "", false
	}
	if c == placeholder && sp == placeholder {
		return "", "", false
	}

	return IfThenElse(c == placeholder, "", c), IfThenElse(sp == placeholder, "", sp), true
}

func altitudeField(s string) (string, int) {
	if len(s) >= 9 && strings.HasPrefix(s, "/A=") && isAllDigits(s[3:9]) {
		return s[3:9], 9
	}
	return "", 0
}

// bracedField reads "{...}" at the front of s.
func bracedField(s string) (string, int) {
	if len(s) < 2 || s[0] != '{' {
		return "", 0
	}

	var end = strings.IndexByte(s, '}')
	if end < 0 {
		return "", 0
	}

	return s[1:end], end + 1
}

func decodeExtensions(o *Object, rest string, compressed bool) {
	var table = IfThenElse(o.Symbol.Overlay != 0, byte('\\'), o.Symbol.Table)

	// Area objects.
	if table == '\\' && o.Symbol.Code == 'l' && len(rest) >= 7 &&
		rest[0] >= '0' && rest[0] <= '9' && isAllDigits(rest[1:3]) && isAllDigits(rest[5:7]) {
		var color = AreaColorFromString(rest[3:5])
		if color >= 0 {
			var area = &o.Symbol.Area
			area.Type = int(rest[0] - '0')
			area.SqrtLatOff = int(rest[1]-'0')*10 + int(rest[2]-'0')
			area.Color = color
			area.SqrtLonOff = int(rest[5]-'0')*10 + int(rest[6]-'0')
			rest = rest[7:]

			if isLineArea(area.Type) {
				if w, n := bracedField(rest); n > 0 {
					if width, ok := atoiPrefix(w); ok && isAllDigits(w) {
						area.CorridorWidth = width
						rest = rest[n:]
					}
				}
			}

			o.Comment = commentText(rest)
			return
		}
	}

	var sawCourseSpeed bool
	if !compressed {
		if c, s, ok := courseSpeedField(rest); ok {
			o.Course, o.Speed = c, s
			rest = rest[7:]
			sawCourseSpeed = true
		}
	}

	if !sawCourseSpeed && len(rest) >= 7 && (strings.HasPrefix(rest, "PHG") || strings.HasPrefix(rest, "RNG")) {
		o.PowerGain = rest[:7]
		rest = rest[7:]
	}

	if alt, n := altitudeField(rest); n > 0 {
		o.Altitude = alt
		rest = rest[n:]
	}

	switch {
	case table == '\\' && o.Symbol.Code == 'm':
		if text, n := bracedField(rest); n > 0 {
			o.Signpost = text
			rest = rest[n:]
		}

	case table == '/' && o.Symbol.Code == '\\':
		if len(rest) >= 8 && strings.HasPrefix(rest, "DFS") && isAllDigits(rest[3:7]) && rest[7] == '/' {
			o.SignalGain = "DFS" + rest[3:7]
			rest = rest[8:]
		} else if len(rest) >= 8 && rest[0] == '/' && rest[4] == '/' && isAllDigits(rest[1:4]) && isAllDigits(rest[5:8]) {
			o.Bearing = rest[1:4]
			o.NRQ = rest[5:8]
			rest = rest[8:]
		}
	}

	rest = probabilityRing(o, rest)

	o.Comment = commentText(rest)
}

// probabilityRing takes "Pmin...,Pmax...," off the front of the comment.
func probabilityRing(o *Object, rest string) string {
	for _, p := range []struct {
		prefix string
		dst    *string
	}{
		{"Pmin", &o.ProbabilityMin},
		{"Pmax", &o.ProbabilityMax},
	} {
		if !strings.HasPrefix(rest, p.prefix) {
			continue
		}
		var comma = strings.IndexByte(rest, ',')
		if comma < 0 {
			break
		}
		*p.dst = rest[len(p.prefix):comma]
		rest = rest[comma+1:]
	}

	return rest
}

// commentText undoes the space put in front of a leading '}'.
func commentText(rest string) string {
	if strings.HasPrefix(rest, " }") {
		return rest[1:]
	}
	return rest
}
