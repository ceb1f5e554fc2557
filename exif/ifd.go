package exif

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// entry is a single 12-byte IFD record. A nil value marks a forward
// reference: the 4-byte value slot is emitted as zero and must be patched
// with the target directory's offset before the segment is finalized.
type entry struct {
	tag   uint16
	typ   fieldType
	count uint32
	value []byte
}

// directory accumulates entries for one IFD. Entries are sorted by tag
// number at serialization time; some readers reject directories that are
// not tag-ordered.
type directory struct {
	entries []entry
}

func (d *directory) addString(tag uint16, s string) error {
	if !isASCII(s) {
		return fmt.Errorf("%w: tag 0x%04X value %q", ErrNonASCII, tag, s)
	}
	val := append([]byte(s), 0)
	d.entries = append(d.entries, entry{tag: tag, typ: typeASCII, count: uint32(len(val)), value: val})
	return nil
}

func (d *directory) addShort(tag uint16, v uint16) {
	d.entries = append(d.entries, entry{
		tag: tag, typ: typeShort, count: 1,
		value: binary.LittleEndian.AppendUint16(nil, v),
	})
}

func (d *directory) addRationals(tag uint16, rs ...Rational) {
	var val []byte
	for _, r := range rs {
		val = r.appendTo(val)
	}
	d.entries = append(d.entries, entry{tag: tag, typ: typeRational, count: uint32(len(rs)), value: val})
}

func (d *directory) addByte(tag uint16, v byte) {
	d.entries = append(d.entries, entry{tag: tag, typ: typeByte, count: 1, value: []byte{v}})
}

func (d *directory) addUndefined(tag uint16, val []byte) {
	d.entries = append(d.entries, entry{tag: tag, typ: typeUndefined, count: uint32(len(val)), value: val})
}

// addPointer declares a LONG entry whose value is the offset of another
// directory, not yet known.
func (d *directory) addPointer(tag uint16) {
	d.entries = append(d.entries, entry{tag: tag, typ: typeLong, count: 1, value: nil})
}

// size is the byte length of the fixed directory region: a 2-byte entry
// count, 12 bytes per entry, and the 4-byte next-IFD pointer. It depends
// only on the entry count, so it is known before any offsets are.
func (d *directory) size() int {
	return 2 + 12*len(d.entries) + 4
}

// serialize lays the directory out at the given base offset (measured from
// the start of the TIFF header). Out-of-line values are appended to the
// returned data area, which begins immediately after the fixed region.
// Pointer entries are written as zero; patches maps each pointer tag to
// the byte position of its value slot within the returned fixed region.
func (d *directory) serialize(base uint32) (ifd, data []byte, patches map[uint16]int, err error) {
	sort.SliceStable(d.entries, func(i, j int) bool {
		return d.entries[i].tag < d.entries[j].tag
	})

	ifd = make([]byte, 0, d.size())
	patches = make(map[uint16]int)
	dataStart := base + uint32(d.size())

	ifd = binary.LittleEndian.AppendUint16(ifd, uint16(len(d.entries)))
	for _, e := range d.entries {
		ifd = binary.LittleEndian.AppendUint16(ifd, e.tag)
		ifd = binary.LittleEndian.AppendUint16(ifd, uint16(e.typ))
		ifd = binary.LittleEndian.AppendUint32(ifd, e.count)

		if e.value == nil {
			patches[e.tag] = len(ifd)
			ifd = binary.LittleEndian.AppendUint32(ifd, 0)
			continue
		}

		total := e.count * typeSize[e.typ]
		if int(total) != len(e.value) {
			return nil, nil, nil, fmt.Errorf("exif: tag 0x%04X declares %d bytes, has %d", e.tag, total, len(e.value))
		}
		if total <= 4 {
			var inline [4]byte
			copy(inline[:], e.value)
			ifd = append(ifd, inline[:]...)
		} else {
			ifd = binary.LittleEndian.AppendUint32(ifd, dataStart+uint32(len(data)))
			data = append(data, e.value...)
		}
	}

	// Next-IFD pointer. Sub-IFDs are reached through pointer tags, never
	// through the chain, so this is always zero.
	ifd = binary.LittleEndian.AppendUint32(ifd, 0)
	return ifd, data, patches, nil
}

// patch writes a resolved directory offset into a pointer entry's value
// slot.
func patch(ifd []byte, pos int, offset uint32) {
	binary.LittleEndian.PutUint32(ifd[pos:pos+4], offset)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
