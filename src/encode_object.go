package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Construct the information part of object and item
 *		packets.
 *
 * Description:	There are five shapes, tried in this order:
 *
 *			area		Tyy/Cxx[{w}]
 *			signpost	CSE/SPD/A=FFFFFF{xxx}
 *			omni DF		CSE/SPD/A=FFFFFFDFSshgd/
 *			beam DF		CSE/SPD/A=FFFFFF/BRG/NRQ
 *			normal		CSE/SPD/A=FFFFFF or PHG, probability ring
 *
 *		Each comes in object and item flavors, with a compressed
 *		or uncompressed position.  With a compressed position the
 *		course and speed travel in the csT bytes instead.
 *
 *		A killed object goes out with '_' in place of the '*'
 *		(or '!' for items).
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

const (
	commentBudget          = 43 // after sigil, name, liveness, timestamp and position
	objectNameWidth        = 9
	DefaultTimestampFormat = "%d%H%Mz"
)

// DeadReckoner supplies where a moving object should be by now.
type DeadReckoner interface {
	CurrentPosition(o *Object, now time.Time) (Coord, Coord)
}

type TxOptions struct {
	Compressed bool

	// Now is used for the object timestamp and dead reckoning.
	// Zero means the wall clock.
	Now time.Time

	// strftime pattern for the object timestamp.  Empty means DDHHMMz.
	TimestampFormat string

	DeadReckoner DeadReckoner

	// Set while the operator is dragging the object around, so the
	// stored position is used as is.
	MoveInProgress bool
}

func (opts TxOptions) now() time.Time {
	if opts.Now.IsZero() {
		return time.Now()
	}
	return opts.Now
}

// objectTimestamp gives the 7 character DDHHMMz time.
func objectTimestamp(t time.Time, format string) string {
	if format == "" {
		format = DefaultTimestampFormat
	}

	var s, err = strftime.Format(format, t.UTC())
	if err != nil || len(s) != 7 {
		dw_printf(DW_COLOR_ERROR, "Timestamp format \"%s\" doesn't give DDHHMMz, using the default.\n", format)
		return t.UTC().Format("021504z")
	}

	return s
}

func speedIsSet(speed string) bool {
	var v, ok = atofPrefix(speed)
	return ok && v > 0
}

// posit is the position block, in whichever form was asked for.
type posit struct {
	text       string
	compressed bool
}

func makePosit(lat, lon Coord, group, symbol byte, compressed bool, course, speed int, phg string) posit {
	if compressed {
		return posit{
			text: CompressPosit(LatToString(lat, FormatHPNoSpace), group,
				LonToString(lon, FormatHPNoSpace), symbol, course, speed, phg),
			compressed: true,
		}
	}

	return posit{
		text: LatToString(lat, FormatLPNoSpace) + string(group) + LonToString(lon, FormatLPNoSpace) + string(symbol),
	}
}

/*------------------------------------------------------------------
 *
 * Name:	CreateObjectItemTxString
 *
 * Purpose:	Build the packet for an object or item.
 *
 * Inputs:	o	- The object.  Not modified.
 *		opts	- Compression, clock, dead reckoning.
 *
 * Returns:	The information part of the packet and true, or
 *		"" and false if the name won't do.  Nothing should be
 *		sent in that case.
 *
 *----------------------------------------------------------------*/

func CreateObjectItemTxString(o *Object, opts TxOptions) (string, bool) {
	var name = strings.TrimSpace(o.CallSign)
	var isItem = o.IsItem()

	if isItem {
		if !ValidItem(name) {
			return "", false
		}
	} else if !ValidObject(name) {
		return "", false
	}

	var now = opts.now()

	var lat, lon = o.Lat, o.Lon
	if opts.DeadReckoner != nil && !opts.MoveInProgress && speedIsSet(o.Speed) {
		lat, lon = opts.DeadReckoner.CurrentPosition(o, now)
	}

	var header string
	if isItem {
		header = ")" + name + "!"
	} else {
		var ts = objectTimestamp(now, opts.TimestampFormat)
		header = fmt.Sprintf(";%-*s*%s", objectNameWidth, name, ts)
	}

	var courseSpeed, course, speed = FormatCourseSpeed(o.Course, o.Speed)
	var altitude = FormatAltitude(o.Altitude)
	var group = o.Symbol.Group()
	var comment = o.Comment

	var p posit
	var ext string

	switch {
	case o.Symbol.Area.Type != AreaNone:
		var area = o.Symbol.Area
		var areaType = min(max(area.Type, 0), maxAreaType)
		var color = FormatAreaColorFromNumeric(area.Color)
		if color == "" {
			color = FormatAreaColorFromNumeric(0)
		}

		p = makePosit(lat, lon, '\\', 'l', opts.Compressed, 0, 0, "")
		ext = fmt.Sprintf("%1d%02d%s%02d", areaType,
			min(max(area.SqrtLatOff, 0), maxAreaOffset), color,
			min(max(area.SqrtLonOff, 0), maxAreaOffset))
		ext += FormatAreaCorridor(areaType, area.CorridorWidth)

	case strings.TrimSpace(o.Signpost) != "":
		p = makePosit(lat, lon, '\\', 'm', opts.Compressed, course, speed, "")
		ext = IfThenElse(p.compressed, "", courseSpeed) + altitude + FormatSignpost(strings.TrimSpace(o.Signpost))

	case strings.TrimSpace(o.SignalGain) != "":
		p = makePosit(lat, lon, '/', '\\', opts.Compressed, course, speed, "")
		ext = IfThenElse(p.compressed, "", courseSpeed) + altitude
		if shgd := shgdDigits(o.SignalGain); shgd != "" {
			ext += "DFS" + shgd + "/"
		}

	case strings.TrimSpace(o.NRQ) != "":
		p = makePosit(lat, lon, '/', '\\', opts.Compressed, course, speed, "")
		if !p.compressed {
			// Bearing and NRQ only mean something after a course/speed.
			ext = IfThenElse(courseSpeed == "", "000/000", courseSpeed)
		}
		ext += altitude
		var bearing = threeDigits(o.Bearing, 360)
		var nrq = threeDigits(o.NRQ, 999)
		if bearing != "" && nrq != "" {
			ext += "/" + bearing + "/" + nrq
		}

	default:
		var phg = strings.TrimSpace(o.PowerGain)
		var compressPHG = IfThenElse(strings.HasPrefix(phg, "PHG"), phg, "")

		p = makePosit(lat, lon, group, o.Symbol.Code, opts.Compressed, course, speed, compressPHG)

		comment = FormatProbabilityRing(o.ProbabilityMin, o.ProbabilityMax, comment)

		// PHG or RNG takes the data extension slot when nothing else has it.
		if p.compressed {
			ext = altitude
			if phg != "" && compressPHG == "" {
				ext = PrependRngPhg(phg, ext)
			}
		} else {
			ext = courseSpeed + altitude
			if courseSpeed == "" && phg != "" {
				ext = PrependRngPhg(phg, ext)
			}
		}
	}

	var line = header + p.text + ext

	line = appendComment(line, comment, len(header)+len(p.text))

	if !o.IsActive() {
		line, _ = ReformatKilledObjectItemPacket(line)
	}

	dw_printf(DW_COLOR_DEBUG, "Object/item packet: %s\n", line)

	return line, true
}

// appendComment adds as much of the comment as the 43 byte comment field
// allows after whatever extensions are already there.  fixed is the
// length of the header and position (19, 13 or 11 bytes), which don't
// count.
func appendComment(line, comment string, fixed int) string {
	if comment == "" {
		return line
	}

	var used = len(line) - fixed
	var room = commentBudget - used

	// A '}' right after the data would be taken for a multipoint polygon.
	if comment[0] == '}' {
		if room <= 1 {
			return line
		}
		line += " "
		room--
	}

	if room <= 0 {
		return line
	}

	if len(comment) > room {
		comment = comment[:room]
	}

	return line + comment
}

/*------------------------------------------------------------------
 *
 * Name:	ReformatKilledObjectItemPacket
 *
 * Purpose:	Mark a packet as killed.
 *
 * Description:	Objects: the '*' after the 9 character name.
 *		Items: the first '!' or '_' after the name.
 *
 * Returns:	The new packet and whether anything was changed.
 *
 *----------------------------------------------------------------*/

func ReformatKilledObjectItemPacket(line string) (string, bool) {
	if len(line) == 0 {
		return line, false
	}

	var b = []byte(line)

	switch b[0] {
	case ';':
		const liveness = 1 + objectNameWidth
		if len(b) > liveness && b[liveness] == '*' {
			b[liveness] = '_'
			return string(b), true
		}

	case ')':
		var i = strings.IndexAny(line[1:], "!_")
		if i >= 0 {
			i++
			if b[i] == '!' {
				b[i] = '_'
				return string(b), true
			}
		}
	}

	return line, false
}
