package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	The object / item record that packets are built from.
 *
 * Description:	An Object is created from whatever the operator typed,
 *		used to render one packet, and thrown away.  The same
 *		record also lives in the Store for objects we own, where
 *		the scheduler fields at the bottom are kept up to date.
 *
 *---------------------------------------------------------------*/

import (
	"strings"
	"time"
)

type ObjectFlags uint8

const (
	FlagObject ObjectFlags = 1 << iota
	FlagItem
	FlagActive
)

// Area object shapes.
const (
	AreaNone              = -1
	AreaCircle            = 0
	AreaLine              = 1
	AreaEllipse           = 2
	AreaTriangle          = 3
	AreaBox               = 4
	AreaCircleFilled      = 5
	AreaLineRight         = 6
	AreaEllipseFilled     = 7
	AreaTriangleFilled    = 8
	AreaBoxFilled         = 9
	maxAreaType           = 9
	maxAreaOffset         = 99
	maxAreaColor          = 15
	areaColorBrightOffset = 8
)

type AreaObject struct {
	Type          int // AreaNone when this isn't an area object
	Color         int // 0 - 15
	SqrtLatOff    int // sqrt of latitude offset in hundredths of a degree
	SqrtLonOff    int
	CorridorWidth int // miles, line types only
}

type Symbol struct {
	Table   byte // '/' or '\\'
	Code    byte
	Overlay byte // 0-9 or A-Z replaces the table character, 0 for none
	Area    AreaObject
}

// Group is the character sent in the table position.
func (s Symbol) Group() byte {
	if s.Overlay != 0 {
		return s.Overlay
	}
	if s.Table == 0 {
		return '/'
	}
	return s.Table
}

type Object struct {
	CallSign string
	Lat, Lon Coord
	Flags    ObjectFlags
	Symbol   Symbol

	Course   string
	Speed    string
	Altitude string // feet
	Comment  string

	Signpost       string
	PowerGain      string // "PHGphgd" or "RNGrrrr"
	SignalGain     string // "DFSshgd" or just "shgd"
	Bearing        string
	NRQ            string
	ProbabilityMin string
	ProbabilityMax string

	// Where and when the position was last set, for dead reckoning.
	FixTime time.Time

	// Owner.  Only objects from our own callsign get retransmitted.
	Origin string

	// Retransmission state.
	ObjectRetransmit      int // killed countdown, -1 until the kill is first seen
	TransmitTimeIncrement time.Duration
	LastTransmitTime      time.Time
}

// NewObject gives an active object with no area and no kill countdown.
func NewObject(name string) *Object {
	return &Object{
		CallSign:         name,
		Flags:            FlagObject | FlagActive,
		Symbol:           Symbol{Table: '/', Code: '.', Area: AreaObject{Type: AreaNone}},
		ObjectRetransmit: -1,
	}
}

// NewItem is NewObject for items.
func NewItem(name string) *Object {
	var o = NewObject(name)
	o.Flags = FlagItem | FlagActive
	return o
}

func (o *Object) IsItem() bool {
	return o.Flags&FlagItem != 0
}

func (o *Object) IsActive() bool {
	return o.Flags&FlagActive != 0
}

// Kill clears the active flag.  The next packet built carries the kill marker.
func (o *Object) Kill() {
	o.Flags &^= FlagActive
}

// Clone copies o, so a Store entry can be handed out without sharing it.
func (o *Object) Clone() *Object {
	var c = *o
	return &c
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

/*------------------------------------------------------------------
 *
 * Name:	ValidObject, ValidItem
 *
 * Purpose:	Check a name before building a packet with it.
 *
 * Description:	Object names are 1 to 9 printable characters.
 *		Item names are 3 to 9, and can't contain '!' or '_'
 *		because those terminate the name on the air.
 *
 *----------------------------------------------------------------*/

func ValidObject(name string) bool {
	if len(name) == 0 || len(name) > 9 {
		dw_printf(DW_COLOR_ERROR, "Object name \"%s\" must be 1 to 9 characters.\n", name)
		return false
	}

	if !isPrintableASCII(name) {
		dw_printf(DW_COLOR_ERROR, "Object name \"%s\" contains unprintable characters.\n", name)
		return false
	}

	return true
}

func ValidItem(name string) bool {
	if len(name) < 3 || len(name) > 9 {
		dw_printf(DW_COLOR_ERROR, "Item name \"%s\" must be 3 to 9 characters.\n", name)
		return false
	}

	if !isPrintableASCII(name) || strings.ContainsAny(name, "!_") {
		dw_printf(DW_COLOR_ERROR, "Item name \"%s\" contains characters not allowed in an item name.\n", name)
		return false
	}

	return true
}
