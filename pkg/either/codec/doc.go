// Package codec encodes Either values in a compact binary form: one tag byte
// (0 for Left, 1 for Right) followed by the payload in the form chosen by the
// codec for that side.
//
// Payload codecs for booleans, fixed-width integers (including 128-bit),
// strings and byte slices are provided; Func adapts any other encoding. The
// layout matches the Borsh format, so values round-trip with other Borsh
// implementations.
package codec
