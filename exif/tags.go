package exif

// TIFF field types (TIFF 6.0, section 2).
type fieldType uint16

const (
	typeByte      fieldType = 1
	typeASCII     fieldType = 2
	typeShort     fieldType = 3
	typeLong      fieldType = 4
	typeRational  fieldType = 5
	typeUndefined fieldType = 7
)

// typeSize is the byte width of a single unit of each field type. A value
// whose total size (count * unit) fits in 4 bytes is stored inline in the
// directory entry; anything larger goes to the directory's data area.
var typeSize = map[fieldType]uint32{
	typeByte:      1,
	typeASCII:     1,
	typeShort:     2,
	typeLong:      4,
	typeRational:  8,
	typeUndefined: 1,
}

// IFD0 tags.
const (
	tagImageWidth  = 0x0100
	tagImageHeight = 0x0101
	tagMake        = 0x010F
	tagModel       = 0x0110
	tagOrientation = 0x0112
	tagExifIFD     = 0x8769
	tagGPSIFD      = 0x8825
)

// EXIF sub-IFD tags.
const (
	tagExposureTime     = 0x829A
	tagFNumber          = 0x829D
	tagISO              = 0x8827
	tagExifVersion      = 0x9000
	tagDateTimeOriginal = 0x9003
	tagFlash            = 0x9209
	tagFocalLength      = 0x920A
	tagLensModel        = 0xA434
)

// GPS sub-IFD tags.
const (
	tagGPSLatitudeRef  = 0x0001
	tagGPSLatitude     = 0x0002
	tagGPSLongitudeRef = 0x0003
	tagGPSLongitude    = 0x0004
	tagGPSAltitudeRef  = 0x0005
	tagGPSAltitude     = 0x0006
)
