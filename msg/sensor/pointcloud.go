package sensor

import (
	"encoding/binary"
	"math"

	"github.com/edgefirst/schemas-go/errors"
	"github.com/edgefirst/schemas-go/internal/wire"
)

// Point is one decoded point from a PointCloud2. The x, y and z channels
// and the cluster id are lifted into fields; every other channel lands in
// Extra keyed by its field name.
type Point struct {
	X     float64
	Y     float64
	Z     float64
	ID    int
	Extra map[string]float64
}

// DecodePoints unpacks a PointCloud2's packed byte layout into one Point
// per cell, walking height rows of width points. Channels with an unknown
// datatype code are skipped.
func DecodePoints(pcd *PointCloud2) ([]Point, error) {
	if pcd == nil {
		return nil, errors.InvalidArgument(errors.PhaseDecode, "point cloud is nil")
	}
	total, ok := wire.SafeMul(int(pcd.Height), int(pcd.Width))
	if !ok {
		return nil, errors.Malformed(nil, "point cloud dimensions overflow")
	}

	points := make([]Point, 0, total)
	for i := uint32(0); i < pcd.Height; i++ {
		for j := uint32(0); j < pcd.Width; j++ {
			start := uint64(i)*uint64(pcd.RowStep) + uint64(j)*uint64(pcd.PointStep)
			end := start + uint64(pcd.PointStep)
			if end > uint64(len(pcd.Data)) {
				return nil, errors.Malformed(nil, "point cloud data shorter than its step layout")
			}
			p, err := parsePoint(pcd.Fields, pcd.Data[start:end], pcd.IsBigendian)
			if err != nil {
				return nil, err
			}
			points = append(points, p)
		}
	}
	return points, nil
}

func parsePoint(fields []PointField, data []byte, bigendian bool) (Point, error) {
	var order binary.ByteOrder = binary.LittleEndian
	if bigendian {
		order = binary.BigEndian
	}

	p := Point{Extra: map[string]float64{}}
	for _, f := range fields {
		size := wire.DatatypeSize(f.Datatype)
		if size == 0 {
			continue
		}
		start := int(f.Offset)
		if start+size > len(data) {
			return Point{}, errors.OutOfBounds(errors.PhaseDecode, []string{f.Name}, start+size, len(data))
		}
		raw := data[start : start+size]

		var val float64
		switch f.Datatype {
		case PointFieldInt8:
			val = float64(int8(raw[0]))
		case PointFieldUint8:
			val = float64(raw[0])
		case PointFieldInt16:
			val = float64(int16(order.Uint16(raw)))
		case PointFieldUint16:
			val = float64(order.Uint16(raw))
		case PointFieldInt32:
			val = float64(int32(order.Uint32(raw)))
		case PointFieldUint32:
			val = float64(order.Uint32(raw))
		case PointFieldFloat32:
			val = float64(math.Float32frombits(order.Uint32(raw)))
		case PointFieldFloat64:
			val = math.Float64frombits(order.Uint64(raw))
		}

		switch f.Name {
		case "x":
			p.X = val
		case "y":
			p.Y = val
		case "z":
			p.Z = val
		case "cluster_id":
			p.ID = int(val)
		default:
			p.Extra[f.Name] = val
		}
	}
	return p, nil
}
