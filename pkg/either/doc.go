// Package either provides Either[L, R], a value that is exactly one of an L
// (the left side) or an R (the right side).
//
// The core operations never fail:
// - Left/Right: construct on a side
// - IsLeft/IsRight/Side: inspect the side
// - Left()/Right()/LeftOr/RightOr: extract the payload
// - Fold: eliminate with one function per side
// - MapLeft/MapRight/MapEither/Flip: transform while keeping (or swapping) sides
// - Compare/CompareOrdered/Less/Equal: Left sorts before Right
//
// When both sides share a capability, a wrapper lets the Either stand in for
// whichever value it holds: Reader, BufReader, ReadCloser, Writer, BufWriter
// and Error. Iteration lives in package seq and binary encoding in package
// codec.
//
// FromOutcome/ToOutcome and FromPair/ToPair convert against outcomes with
// Left as failure and Right as success.
package either
