// Package partition provides integer partitions: the non-increasing sequences
// of positive integers that describe Young-diagram shapes.
//
// # Overview
//
// A [Partition] lists row lengths from top to bottom. The empty partition is
// valid and describes the empty diagram. Every other package in this module
// takes partitions as input, so the checks here are the first line of
// validation for user-supplied shapes.
//
// # Text Format
//
// Partitions are written as comma-separated positive integers with optional
// surrounding whitespace, for example "3, 2, 1". [Parse] turns text into a
// sequence without checking monotonicity; [Validate] parses and checks:
//
//	p, err := partition.Validate("4,2,2,1")
//	if err != nil {
//	    // errors.Is(err, errors.ErrCodeInvalidPartition)
//	}
//
// # Transposition
//
// [Transpose] reflects a diagram in its main diagonal: column x of the
// original becomes row x of the result. Transposing twice returns the
// original partition.
package partition
