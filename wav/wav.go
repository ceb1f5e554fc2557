// Package wav synthesizes small PCM WAV files for audio fixtures.
package wav

import (
	"encoding/binary"
	"math"
	"time"
)

// HeaderSize is the byte length of the RIFF/fmt/data preamble.
const HeaderSize = 44

const (
	formatPCM     = 1
	channels      = 1
	bitsPerSample = 16

	// amplitude leaves generous headroom below full scale.
	amplitude = 16000
)

// Tone renders a mono 16-bit sine tone as a complete WAV file. The whole
// file is materialized in memory; the caller writes it once.
func Tone(freq float64, d time.Duration, sampleRate int) []byte {
	samples := int(float64(sampleRate) * d.Seconds())
	dataSize := samples * channels * bitsPerSample / 8

	buf := make([]byte, HeaderSize, HeaderSize+dataSize)
	copy(buf[0:], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:], uint32(36+dataSize))
	copy(buf[8:], "WAVE")

	copy(buf[12:], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:], 16)
	binary.LittleEndian.PutUint16(buf[20:], formatPCM)
	binary.LittleEndian.PutUint16(buf[22:], channels)
	binary.LittleEndian.PutUint32(buf[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:], uint32(sampleRate*channels*bitsPerSample/8))
	binary.LittleEndian.PutUint16(buf[32:], channels*bitsPerSample/8)
	binary.LittleEndian.PutUint16(buf[34:], bitsPerSample)

	copy(buf[36:], "data")
	binary.LittleEndian.PutUint32(buf[40:], uint32(dataSize))

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		v := amplitude * math.Sin(2*math.Pi*freq*t)
		buf = binary.LittleEndian.AppendUint16(buf, uint16(clamp16(v)))
	}
	return buf
}

func clamp16(v float64) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}
