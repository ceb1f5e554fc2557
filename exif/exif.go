// Package exif assembles minimal TIFF/EXIF metadata segments from scratch.
//
// The output is a complete JPEG APP1 marker segment: marker, big-endian
// length, the "Exif\0\0" identifier, and a little-endian TIFF stream
// holding a primary IFD, an EXIF sub-IFD, and (when coordinates are given)
// a GPS sub-IFD. Directory layout is a two-pass problem: IFD0 contains
// pointer entries whose values are the absolute offsets of the sub-IFDs,
// which are only known once IFD0 itself has been sized. The builder
// serializes each directory with zeroed pointer slots, records where each
// slot lives, and patches the real offsets in one finalize step.
package exif

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNonASCII reports a string field that cannot be stored in an
	// ASCII tag.
	ErrNonASCII = errors.New("exif: non-ASCII string")

	// ErrPartialGPS reports GPS input with a latitude but no longitude.
	// Coordinates are encoded as a unit or not at all.
	ErrPartialGPS = errors.New("exif: partial GPS coordinates")

	// ErrSegmentTooLarge reports metadata that overflows the APP1
	// segment's 16-bit length field. Nothing is truncated.
	ErrSegmentTooLarge = errors.New("exif: segment exceeds APP1 size limit")

	// ErrUnrepresentable reports a numeric field that cannot be encoded
	// as an unsigned TIFF rational.
	ErrUnrepresentable = errors.New("exif: value not representable as an unsigned rational")
)

// tiffHeaderSize is the byte length of the TIFF header preceding IFD0:
// byte-order marker, magic, and the offset to the first directory.
const tiffHeaderSize = 8

// maxSegment is the largest legal APP1 segment, marker included. The
// length field counts itself plus the payload and is a big-endian uint16.
const maxSegment = 2 + 0xFFFF

// Metadata describes one photo. String fields must be ASCII. Lat and Lon
// are nil when the capture location is unknown; setting Lat without Lon is
// rejected rather than encoded partially. Rational fields are unsigned:
// ExposureTime must be positive, and FocalLength, FNumber, and Altitude
// must be non-negative and finite.
type Metadata struct {
	Make             string
	Model            string
	Orientation      uint16 // TIFF orientation, 0 means top-left (1)
	Width            uint16 // pixel dimensions of the carrying image
	Height           uint16
	DateTimeOriginal time.Time
	ExposureTime     float64 // seconds
	FNumber          float64
	ISO              uint16
	FocalLength      float64 // millimeters
	Flash            bool
	Lens             string // optional
	Lat              *float64
	Lon              *float64
	Altitude         float64 // meters, used only when coordinates are set
}

// Build assembles the APP1 segment for meta. The returned buffer begins
// with the 0xFFE1 marker and is ready to splice into a JPEG stream right
// after the start-of-image marker. If Build returns a buffer, the buffer
// is structurally valid; every representation failure is an error.
func Build(meta Metadata) ([]byte, error) {
	ifd0, exifDir, gpsDir, err := directories(meta)
	if err != nil {
		return nil, err
	}

	// IFD0's byte length is fixed by its entry count alone, so it can be
	// serialized before the sub-IFD offsets exist.
	ifd0Bytes, ifd0Data, patches, err := ifd0.serialize(tiffHeaderSize)
	if err != nil {
		return nil, err
	}

	exifBase := uint32(tiffHeaderSize + len(ifd0Bytes) + len(ifd0Data))
	exifBytes, exifData, _, err := exifDir.serialize(exifBase)
	if err != nil {
		return nil, err
	}
	pos, ok := patches[tagExifIFD]
	if !ok {
		return nil, errors.New("exif: EXIF pointer entry missing from IFD0")
	}
	patch(ifd0Bytes, pos, exifBase)
	delete(patches, tagExifIFD)

	var gpsBytes, gpsData []byte
	if gpsDir != nil {
		gpsBase := exifBase + uint32(len(exifBytes)+len(exifData))
		gpsBytes, gpsData, _, err = gpsDir.serialize(gpsBase)
		if err != nil {
			return nil, err
		}
		pos, ok := patches[tagGPSIFD]
		if !ok {
			return nil, errors.New("exif: GPS pointer entry missing from IFD0")
		}
		patch(ifd0Bytes, pos, gpsBase)
		delete(patches, tagGPSIFD)
	}
	if len(patches) != 0 {
		// A pointer entry with no target directory would leave a zero
		// offset behind and corrupt the container.
		return nil, fmt.Errorf("exif: %d unresolved directory pointers", len(patches))
	}

	tiff := make([]byte, 0, tiffHeaderSize+len(ifd0Bytes)+len(ifd0Data)+
		len(exifBytes)+len(exifData)+len(gpsBytes)+len(gpsData))
	tiff = append(tiff, 'I', 'I')
	tiff = binary.LittleEndian.AppendUint16(tiff, 0x002A)
	tiff = binary.LittleEndian.AppendUint32(tiff, tiffHeaderSize)
	tiff = append(tiff, ifd0Bytes...)
	tiff = append(tiff, ifd0Data...)
	tiff = append(tiff, exifBytes...)
	tiff = append(tiff, exifData...)
	tiff = append(tiff, gpsBytes...)
	tiff = append(tiff, gpsData...)

	return wrapAPP1(tiff)
}

// wrapAPP1 prefixes a TIFF stream with the EXIF identifier, the segment
// length, and the APP1 marker.
func wrapAPP1(tiff []byte) ([]byte, error) {
	payload := len("Exif\x00\x00") + len(tiff)
	if 2+2+payload > maxSegment {
		return nil, fmt.Errorf("%w: %d bytes", ErrSegmentTooLarge, payload)
	}
	seg := make([]byte, 0, 4+payload)
	seg = append(seg, 0xFF, 0xE1)
	seg = binary.BigEndian.AppendUint16(seg, uint16(payload+2))
	seg = append(seg, "Exif\x00\x00"...)
	return append(seg, tiff...), nil
}

// validateNumeric rejects numeric fields the unsigned rational encodings
// cannot carry. A zero or negative shutter speed has no 1/n form, and the
// remaining rational fields are unsigned magnitudes.
func validateNumeric(meta Metadata, hasGPS bool) error {
	if !(meta.ExposureTime > 0) || math.IsInf(meta.ExposureTime, 1) {
		return fmt.Errorf("%w: exposure time %v", ErrUnrepresentable, meta.ExposureTime)
	}
	if !nonNegative(meta.FocalLength) {
		return fmt.Errorf("%w: focal length %v", ErrUnrepresentable, meta.FocalLength)
	}
	if !nonNegative(meta.FNumber) {
		return fmt.Errorf("%w: f-number %v", ErrUnrepresentable, meta.FNumber)
	}
	if hasGPS && !nonNegative(meta.Altitude) {
		return fmt.Errorf("%w: altitude %v", ErrUnrepresentable, meta.Altitude)
	}
	return nil
}

// nonNegative is false for negatives, NaN, and +Inf.
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func directories(meta Metadata) (ifd0, exifDir, gpsDir *directory, err error) {
	hasGPS := meta.Lat != nil
	if hasGPS && meta.Lon == nil {
		return nil, nil, nil, ErrPartialGPS
	}
	if err := validateNumeric(meta, hasGPS); err != nil {
		return nil, nil, nil, err
	}

	ifd0 = &directory{}
	ifd0.addShort(tagImageWidth, meta.Width)
	ifd0.addShort(tagImageHeight, meta.Height)
	if err := ifd0.addString(tagMake, meta.Make); err != nil {
		return nil, nil, nil, err
	}
	if err := ifd0.addString(tagModel, meta.Model); err != nil {
		return nil, nil, nil, err
	}
	orientation := meta.Orientation
	if orientation == 0 {
		orientation = 1
	}
	ifd0.addShort(tagOrientation, orientation)
	ifd0.addPointer(tagExifIFD)
	if hasGPS {
		ifd0.addPointer(tagGPSIFD)
	}

	exifDir = &directory{}
	if err := exifDir.addString(tagDateTimeOriginal, meta.DateTimeOriginal.Format("2006:01:02 15:04:05")); err != nil {
		return nil, nil, nil, err
	}
	exifDir.addRationals(tagFocalLength, tenths(meta.FocalLength))
	exifDir.addRationals(tagFNumber, tenths(meta.FNumber))
	exifDir.addRationals(tagExposureTime, exposure(meta.ExposureTime))
	exifDir.addShort(tagISO, meta.ISO)
	var flash uint16
	if meta.Flash {
		flash = 1
	}
	exifDir.addShort(tagFlash, flash)
	if meta.Lens != "" {
		if err := exifDir.addString(tagLensModel, meta.Lens); err != nil {
			return nil, nil, nil, err
		}
	}
	exifDir.addUndefined(tagExifVersion, []byte("0232"))

	if !hasGPS {
		return ifd0, exifDir, nil, nil
	}

	gpsDir = &directory{}
	latRef, lonRef := "N", "E"
	if *meta.Lat < 0 {
		latRef = "S"
	}
	if *meta.Lon < 0 {
		lonRef = "W"
	}
	if err := gpsDir.addString(tagGPSLatitudeRef, latRef); err != nil {
		return nil, nil, nil, err
	}
	lat := dms(*meta.Lat)
	gpsDir.addRationals(tagGPSLatitude, lat[:]...)
	if err := gpsDir.addString(tagGPSLongitudeRef, lonRef); err != nil {
		return nil, nil, nil, err
	}
	lon := dms(*meta.Lon)
	gpsDir.addRationals(tagGPSLongitude, lon[:]...)
	gpsDir.addByte(tagGPSAltitudeRef, 0)
	gpsDir.addRationals(tagGPSAltitude, tenths(meta.Altitude))
	return ifd0, exifDir, gpsDir, nil
}
