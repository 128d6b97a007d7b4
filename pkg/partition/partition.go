package partition

import (
	"strconv"
	"strings"

	"github.com/matzehuels/domino/pkg/errors"
)

// Partition is a non-increasing sequence of positive integers, listing the
// row lengths of a Young diagram from top to bottom.
type Partition []int

// IsPartition reports whether seq is a valid partition: every value is
// positive and no value exceeds its predecessor. The empty sequence is valid.
func IsPartition(seq []int) bool {
	for i, v := range seq {
		if v <= 0 {
			return false
		}
		if i > 0 && v > seq[i-1] {
			return false
		}
	}
	return true
}

// Parse splits text on commas, drops empty tokens, and parses each remaining
// token as an integer. The result is not checked for monotonicity or
// positivity; use [Validate] or [IsPartition] for that.
//
// A token that is not an integer is an error, since there is no integer
// value that could stand in for it.
func Parse(text string) ([]int, error) {
	var seq []int
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPartition, err, "%q is not a whole number", tok)
		}
		seq = append(seq, n)
	}
	return seq, nil
}

// Validate parses text and checks that the result is a partition.
// Failures carry [errors.ErrCodeInvalidPartition].
func Validate(text string) (Partition, error) {
	seq, err := Parse(text)
	if err != nil {
		return nil, err
	}
	if !IsPartition(seq) {
		return nil, errors.New(errors.ErrCodeInvalidPartition,
			"%q is not a partition: parts must be positive and non-increasing", strings.TrimSpace(text))
	}
	return Partition(seq), nil
}

// MustParse is like [Validate] but panics on invalid input.
// It is intended for tests and package-level fixtures.
func MustParse(text string) Partition {
	p, err := Validate(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Transpose returns the partition of the transposed diagram: entry x counts
// the rows of p that are longer than x.
func Transpose(p Partition) Partition {
	if len(p) == 0 {
		return Partition{}
	}
	t := make(Partition, p[0])
	for _, row := range p {
		for x := 0; x < row; x++ {
			t[x]++
		}
	}
	return t
}

// Valid reports whether p satisfies the partition invariant.
func (p Partition) Valid() bool { return IsPartition(p) }

// Size returns the number of cells in the diagram.
func (p Partition) Size() int {
	n := 0
	for _, v := range p {
		n += v
	}
	return n
}

// At returns row y's length, or 0 when y is outside the diagram.
func (p Partition) At(y int) int {
	if y < 0 || y >= len(p) {
		return 0
	}
	return p[y]
}

// Clone returns an independent copy of p.
func (p Partition) Clone() Partition {
	out := make(Partition, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and q have the same parts.
func (p Partition) Equal(q Partition) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// String formats p in the comma-separated text format, e.g. "3,2,1".
// The empty partition formats as "".
func (p Partition) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Compare orders partitions lexicographically with larger parts first:
// it returns -1 when p sorts before q, +1 when after, and 0 when equal.
// A partition sorts before any of its proper prefixes, so [3,1] precedes [3].
func Compare(p, q Partition) int {
	for i := 0; i < len(p) && i < len(q); i++ {
		switch {
		case p[i] > q[i]:
			return -1
		case p[i] < q[i]:
			return 1
		}
	}
	switch {
	case len(p) > len(q):
		return -1
	case len(p) < len(q):
		return 1
	}
	return 0
}

// Trim drops trailing zero rows. Shapes shrink to zero-length rows while
// dominoes are peeled off, and the result must stay a partition.
func Trim(p Partition) Partition {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}
	return p[:n]
}
