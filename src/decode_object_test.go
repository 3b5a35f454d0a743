package aprsobj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeObject(t *testing.T) {
	var o, err = DecodeObjectItem(";TEST     *161405z4730.50N/12230.75W-090/015/A=000500Hello\r\n")
	require.NoError(t, err)

	assert.Equal(t, "TEST", o.CallSign)
	assert.False(t, o.IsItem())
	assert.True(t, o.IsActive())
	assert.InDelta(t, 47.508333, o.Lat.Latitude(), 1e-5)
	assert.InDelta(t, -122.5125, o.Lon.Longitude(), 1e-5)
	assert.Equal(t, byte('/'), o.Symbol.Table)
	assert.Equal(t, byte('-'), o.Symbol.Code)
	assert.Equal(t, AreaNone, o.Symbol.Area.Type)
	assert.Equal(t, "090", o.Course)
	assert.Equal(t, "015", o.Speed)
	assert.Equal(t, "000500", o.Altitude)
	assert.Equal(t, "Hello", o.Comment)
}

func TestDecodeObjectItemExtensions(t *testing.T) {
	const header = ";OBJ      *161405z"

	tests := []struct {
		name  string
		info  string
		check func(t *testing.T, o *Object)
	}{
		{
			name: "half a course/speed",
			info: header + "4730.50N/12230.75W-270/...",
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, "270", o.Course)
				assert.Equal(t, "", o.Speed)
			},
		},
		{
			name: "overlay",
			info: header + "4730.50NS12230.75W#",
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, byte('\\'), o.Symbol.Table)
				assert.Equal(t, byte('S'), o.Symbol.Overlay)
				assert.Equal(t, byte('S'), o.Symbol.Group())
				assert.Equal(t, byte('#'), o.Symbol.Code)
			},
		},
		{
			name: "area line",
			info: header + `4730.50N\12230.75Wl103/504{10}route`,
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, AreaObject{Type: AreaLine, Color: 5, SqrtLatOff: 3, SqrtLonOff: 4, CorridorWidth: 10}, o.Symbol.Area)
				assert.Equal(t, "route", o.Comment)
			},
		},
		{
			name: "area with bright color",
			info: header + `4730.50N\12230.75Wl5151215`,
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, AreaObject{Type: AreaCircleFilled, Color: 12, SqrtLatOff: 15, SqrtLonOff: 15}, o.Symbol.Area)
			},
		},
		{
			name: "signpost",
			info: header + `4730.50N\12230.75Wm090/015/A=000500{55}`,
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, "55", o.Signpost)
				assert.Equal(t, "090", o.Course)
				assert.Equal(t, "000500", o.Altitude)
				assert.Equal(t, "", o.Comment)
			},
		},
		{
			name: "omni DF",
			info: header + `4730.50N/12230.75W\090/015DFS2360/found it`,
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, "DFS2360", o.SignalGain)
				assert.Equal(t, "found it", o.Comment)
			},
		},
		{
			name: "beam DF",
			info: header + `4730.50N/12230.75W\000/000/088/960`,
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, "088", o.Bearing)
				assert.Equal(t, "960", o.NRQ)
			},
		},
		{
			name: "PHG then altitude",
			info: header + "4730.50N/12230.75W-PHG5132/A=000500repeater",
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, "PHG5132", o.PowerGain)
				assert.Equal(t, "000500", o.Altitude)
				assert.Equal(t, "repeater", o.Comment)
			},
		},
		{
			name: "probability ring",
			info: header + "4730.50N/12230.75W-Pmin0.5,Pmax2.0,lost hiker",
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, "0.5", o.ProbabilityMin)
				assert.Equal(t, "2.0", o.ProbabilityMax)
				assert.Equal(t, "lost hiker", o.Comment)
			},
		},
		{
			name: "brace comment",
			info: header + "4730.50N/12230.75W- }odd",
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, "}odd", o.Comment)
			},
		},
		{
			name: "killed",
			info: ";OBJ      _161405z4730.50N/12230.75W-",
			check: func(t *testing.T, o *Object) {
				assert.False(t, o.IsActive())
			},
		},
		{
			name: "compressed with course",
			info: header + "/5L!!<*e8>7PC/A=000500",
			check: func(t *testing.T, o *Object) {
				assert.InDelta(t, 49.5, o.Lat.Latitude(), 1e-4)
				assert.InDelta(t, -72.75, o.Lon.Longitude(), 1e-4)
				assert.Equal(t, byte('>'), o.Symbol.Code)
				assert.Equal(t, "088", o.Course)
				assert.Equal(t, "036", o.Speed)
				assert.Equal(t, "000500", o.Altitude)
			},
		},
		{
			name: "compressed with range",
			info: header + "d5L!!<*e8>{3Cclub",
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, byte('3'), o.Symbol.Overlay)
				assert.Equal(t, "RNG0008", o.PowerGain)
				assert.Equal(t, "club", o.Comment)
			},
		},
		{
			name: "compressed without extension",
			info: header + "/5L!!<*e8> RNG0050",
			check: func(t *testing.T, o *Object) {
				assert.Equal(t, "RNG0050", o.PowerGain)
				assert.Equal(t, "", o.Course)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o, err = DecodeObjectItem(tt.info)
			require.NoError(t, err)
			assert.Equal(t, "OBJ", o.CallSign)
			tt.check(t, o)
		})
	}
}

func TestDecodeItem(t *testing.T) {
	var o, err = DecodeObjectItem(")AID#2!4730.50N/12230.75W-090/015first aid")
	require.NoError(t, err)

	assert.Equal(t, "AID#2", o.CallSign)
	assert.True(t, o.IsItem())
	assert.True(t, o.IsActive())
	assert.Equal(t, "first aid", o.Comment)

	o, err = DecodeObjectItem(")AID#2_4730.50N/12230.75W-")
	require.NoError(t, err)
	assert.False(t, o.IsActive())
}

func TestDecodeObjectItemErrors(t *testing.T) {
	tests := []struct {
		name string
		info string
		want error
	}{
		{"empty", "", ErrNotObjectItem},
		{"position report", "!4730.50N/12230.75W-", ErrNotObjectItem},
		{"object too short", ";TEST     *1614", ErrMalformedObjectItem},
		{"no live marker", ";TEST     X161405z4730.50N/12230.75W-", ErrMalformedObjectItem},
		{"blank name", ";         *161405z4730.50N/12230.75W-", ErrMalformedObjectItem},
		{"no position", ";TEST     *161405z", ErrMalformedObjectItem},
		{"short position", ";TEST     *161405z4730.50N/122", ErrMalformedObjectItem},
		{"bad minutes", ";TEST     *161405z4760.50N/12230.75W-", ErrMalformedObjectItem},
		{"null island", ";TEST     *161405z0000.00N/00000.00E-", ErrMalformedObjectItem},
		{"bad compressed", ";TEST     *161405z/5L |<*e8> ", ErrMalformedObjectItem},
		{"item without end of name", ")ABC4730.50N/12230.75W-", ErrMalformedObjectItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			QuietLogger(t)

			var o, err = DecodeObjectItem(tt.info)
			assert.Nil(t, o)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// The log is read back with DecodeObjectItem, so whatever we build has to
// come back the same.
func TestEncodeThenDecodeKeepsFields(t *testing.T) {
	var o = testObject(t, "SHELTER")
	o.Course = "45"
	o.Speed = "3"
	o.Altitude = "1200"
	o.Comment = "open 24h"

	var line, ok = CreateObjectItemTxString(o, TxOptions{Now: testNow})
	require.True(t, ok)

	var back, err = DecodeObjectItem(line)
	require.NoError(t, err)

	assert.Equal(t, o.CallSign, back.CallSign)
	assert.Equal(t, o.Lat, back.Lat)
	assert.Equal(t, o.Lon, back.Lon)
	assert.Equal(t, o.Symbol, back.Symbol)
	assert.Equal(t, "045", back.Course)
	assert.Equal(t, "003", back.Speed)
	assert.Equal(t, "001200", back.Altitude)
	assert.Equal(t, o.Comment, back.Comment)

	// And building it again gives the same packet.
	var again, _ = CreateObjectItemTxString(back, TxOptions{Now: testNow})
	assert.Equal(t, line, again)
}
