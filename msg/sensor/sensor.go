// Package sensor holds the sensor_msgs message types: camera calibration,
// images, IMU, satellite fixes and point clouds.
package sensor

import (
	"github.com/edgefirst/schemas-go/msg/geometry"
	"github.com/edgefirst/schemas-go/msg/std"
	"github.com/edgefirst/schemas-go/schema"
)

type RegionOfInterest struct {
	XOffset   uint32
	YOffset   uint32
	Height    uint32
	Width     uint32
	DoRectify bool
}

// CameraInfo carries the intrinsic calibration of a camera. K, R and P
// are row-major 3x3, 3x3 and 3x4 matrices.
type CameraInfo struct {
	Header          std.Header
	Height          uint32
	Width           uint32
	DistortionModel string
	D               []float64
	K               [9]float64
	R               [9]float64
	P               [12]float64
	BinningX        uint32
	BinningY        uint32
	ROI             RegionOfInterest
}

type CompressedImage struct {
	Header std.Header
	Format string
	Data   []byte
}

type Image struct {
	Header      std.Header
	Height      uint32
	Width       uint32
	Encoding    string
	IsBigendian uint8
	Step        uint32
	Data        []byte
}

type IMU struct {
	Header                       std.Header
	Orientation                  geometry.Quaternion
	OrientationCovariance        [9]float64
	AngularVelocity              geometry.Vector3
	AngularVelocityCovariance    [9]float64
	LinearAcceleration           geometry.Vector3
	LinearAccelerationCovariance [9]float64
}

// NavSatStatus status values.
const (
	StatusNoFix   int8 = -1
	StatusFix     int8 = 0
	StatusSbasFix int8 = 1
	StatusGbasFix int8 = 2
)

// NavSatStatus service bitmask values.
const (
	ServiceGPS     uint16 = 1
	ServiceGlonass uint16 = 2
	ServiceCompass uint16 = 4
	ServiceGalileo uint16 = 8
)

type NavSatStatus struct {
	Status  int8
	Service uint16
}

// NavSatFix position covariance types.
const (
	CovarianceTypeUnknown       uint8 = 0
	CovarianceTypeApproximated  uint8 = 1
	CovarianceTypeDiagonalKnown uint8 = 2
	CovarianceTypeKnown         uint8 = 3
)

type NavSatFix struct {
	Header                 std.Header
	Status                 NavSatStatus
	Latitude               float64
	Longitude              float64
	Altitude               float64
	PositionCovariance     [9]float64
	PositionCovarianceType uint8
}

// PointField datatype codes.
const (
	PointFieldInt8    uint8 = 1
	PointFieldUint8   uint8 = 2
	PointFieldInt16   uint8 = 3
	PointFieldUint16  uint8 = 4
	PointFieldInt32   uint8 = 5
	PointFieldUint32  uint8 = 6
	PointFieldFloat32 uint8 = 7
	PointFieldFloat64 uint8 = 8
)

// PointField describes one channel in a PointCloud2's packed point layout.
type PointField struct {
	Name     string
	Offset   uint32
	Datatype uint8
	Count    uint32
}

type PointCloud2 struct {
	Header      std.Header
	Height      uint32
	Width       uint32
	Fields      []PointField
	IsBigendian bool
	PointStep   uint32
	RowStep     uint32
	Data        []byte
	IsDense     bool
}

func init() {
	schema.MustRegister("sensor_msgs/msg/CameraInfo", CameraInfo{})
	schema.MustRegister("sensor_msgs/msg/CompressedImage", CompressedImage{})
	schema.MustRegister("sensor_msgs/msg/Image", Image{})
	schema.MustRegister("sensor_msgs/msg/Imu", IMU{})
	schema.MustRegister("sensor_msgs/msg/NavSatFix", NavSatFix{})
	schema.MustRegister("sensor_msgs/msg/NavSatStatus", NavSatStatus{})
	schema.MustRegister("sensor_msgs/msg/PointCloud2", PointCloud2{})
	schema.MustRegister("sensor_msgs/msg/PointField", PointField{})
	schema.MustRegister("sensor_msgs/msg/RegionOfInterest", RegionOfInterest{})
}
