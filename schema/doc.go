// Package schema describes message shapes as declarative descriptor trees
// and maintains the process-wide registry of named schemas.
//
// A descriptor (Type) is pure data: field names, wire kinds, element types.
// It carries no encoding logic and no Go-specific layout; the cdr package
// pairs a descriptor with a concrete Go struct type to build an executable
// codec. Deriving one generic engine from descriptors replaces the
// per-shape hand-written codecs a foreign binding would otherwise repeat
// for every message.
//
// The registry maps ROS2-style schema names (package/msg/Type, for example
// "sensor_msgs/msg/Image") to descriptors and Go types. The wire format
// itself carries no schema tag: pairing bytes with the right shape is the
// caller's job, typically via a topic name carried out of band.
package schema
