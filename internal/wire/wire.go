package wire

import "math"

// Safety limits guarding against adversarial length prefixes.
const (
	MaxStringBytes = 1 << 30 // 1 GB max string payload
	MaxSequenceLen = 1 << 27 // 128M max elements
	MaxAlloc       = 1 << 30 // 1 GB max single allocation
)

// AlignTo returns the smallest multiple of align that is >= offset.
// align must be a power of two from {1, 2, 4, 8}.
func AlignTo(offset, align int) int {
	return (offset + align - 1) &^ (align - 1)
}

// Padding returns the number of bytes needed to bring offset up to align.
func Padding(offset, align int) int {
	return AlignTo(offset, align) - offset
}

// SafeMul multiplies two non-negative ints, reporting overflow.
func SafeMul(a, b int) (int, bool) {
	if b != 0 && a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// SafeAdd adds two non-negative ints, reporting overflow.
func SafeAdd(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// PointField datatype codes from sensor_msgs/msg/PointField.
const (
	DatatypeInt8    = 1
	DatatypeUint8   = 2
	DatatypeInt16   = 3
	DatatypeUint16  = 4
	DatatypeInt32   = 5
	DatatypeUint32  = 6
	DatatypeFloat32 = 7
	DatatypeFloat64 = 8
)

// DatatypeSize returns the byte width of a PointField datatype code,
// or 0 for unknown codes.
func DatatypeSize(datatype uint8) int {
	switch datatype {
	case DatatypeInt8, DatatypeUint8:
		return 1
	case DatatypeInt16, DatatypeUint16:
		return 2
	case DatatypeInt32, DatatypeUint32, DatatypeFloat32:
		return 4
	case DatatypeFloat64:
		return 8
	default:
		return 0
	}
}
