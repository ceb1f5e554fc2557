package exif

import (
	"encoding/binary"
	"math"
)

// Rational is an unsigned TIFF RATIONAL: two 32-bit integers, numerator
// then denominator. Values are stored as given and never reduced.
type Rational struct {
	Num, Den uint32
}

func (r Rational) appendTo(b []byte) []byte {
	b = binary.LittleEndian.AppendUint32(b, r.Num)
	return binary.LittleEndian.AppendUint32(b, r.Den)
}

// tenths encodes v with one decimal digit of precision, e.g. an aperture
// of 2.8 becomes 28/10.
func tenths(v float64) Rational {
	return Rational{Num: uint32(v * 10), Den: 10}
}

// exposure encodes a shutter speed in seconds. Sub-second speeds become
// 1/n, everything else n/1.
func exposure(sec float64) Rational {
	if sec < 1 {
		return Rational{Num: 1, Den: uint32(1 / sec)}
	}
	return Rational{Num: uint32(sec), Den: 1}
}

// dms converts decimal degrees to the degree/minute/second triple used by
// the GPS tags. Seconds carry a fixed denominator of 100, so coordinate
// precision is 1/100 of a second of arc. The sign is dropped; hemisphere
// is expressed by the corresponding reference tag.
func dms(deg float64) [3]Rational {
	a := math.Abs(deg)
	d := math.Floor(a)
	m := math.Floor((a - d) * 60)
	s := (a - d - m/60) * 3600
	return [3]Rational{
		{Num: uint32(d), Den: 1},
		{Num: uint32(m), Den: 1},
		{Num: uint32(s * 100), Den: 100},
	}
}
