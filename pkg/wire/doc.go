// Package wire defines the CBOR wire format for measures.
//
// Readings are exchanged as CBOR (RFC 8949) maps with integer keys for
// compactness. A reading carries the domain, the unit enumeration name and
// the value; analog readings may also carry their physical scale.
//
// # CBOR Integer Keys
//
//	Reading:  1 domain, 2 unit, 3 value, 4 scale
//	Scale:    1 low, 2 high, 3 label
//	Snapshot: 1 timestamp, 2 source, 3 readings
//
// # Absent Scale
//
// An analog reading without key 4 decodes to an unscaled measure; only the
// signal units are valid for it.
package wire
