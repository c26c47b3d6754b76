package priofile

import (
	"encoding/binary"

	julerrors "github.com/graphworks/julienne/errors"
)

// magic identifies a julienne priority file. Written little-endian, its
// bytes on disk read "PRJ1".
const magic = uint32(0x314a5250)

// version is the current format version.
const version = uint16(0x0001)

// headerSize is the exact size of the serialized header.
//
// Layout:
//
//	Offset  Size  Field      Type
//	0       4     Magic      0x314a5250 (bytes "PRJ1")
//	4       2     Version    uint16_le
//	6       2     Reserved   [2]byte (zero)
//	8       8     Count      uint64_le — number of uint32 priorities that follow
const headerSize = 16

type header struct {
	Count uint64
}

func (h *header) encodeTo(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], magic)
	binary.LittleEndian.PutUint16(buf[4:6], version)
	binary.LittleEndian.PutUint64(buf[8:16], h.Count)
}

func decodeHeader(buf []byte) (*header, error) {
	if len(buf) < headerSize {
		return nil, julerrors.ErrTruncatedFile
	}
	if binary.LittleEndian.Uint32(buf[0:4]) != magic {
		return nil, julerrors.ErrInvalidMagic
	}
	if binary.LittleEndian.Uint16(buf[4:6]) != version {
		return nil, julerrors.ErrInvalidVersion
	}
	return &header{Count: binary.LittleEndian.Uint64(buf[8:16])}, nil
}
