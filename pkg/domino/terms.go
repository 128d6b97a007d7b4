package domino

import (
	"strconv"
	"strings"

	"github.com/matzehuels/domino/pkg/errors"
	"github.com/matzehuels/domino/pkg/partition"
	"github.com/matzehuels/domino/pkg/tableau"
)

// Term is a shape with a multiplicity, one summand of a sum of Schur
// functions such as the output of a Littlewood-Richardson calculation.
type Term struct {
	Shape       partition.Partition `json:"shape"`
	Coefficient int                 `json:"coefficient"`
}

// CombinedTerm is one type-D tableau built from a pair of terms.
type CombinedTerm struct {
	Left        partition.Partition
	Right       partition.Partition
	Coefficient int
	Tableau     *tableau.Tableau
}

// CombineTerms pairs every left term with every right term, in that order,
// and combines their diagrams. The coefficient of each result is the product
// of the two input coefficients. Terms with a zero coefficient are skipped.
func CombineTerms(left, right []Term) ([]CombinedTerm, error) {
	var out []CombinedTerm
	for _, l := range left {
		for _, r := range right {
			coeff := l.Coefficient * r.Coefficient
			if coeff == 0 {
				continue
			}
			t, err := Combine(tableau.Diagram(l.Shape), tableau.Diagram(r.Shape))
			if err != nil {
				return nil, err
			}
			out = append(out, CombinedTerm{Left: l.Shape, Right: r.Shape, Coefficient: coeff, Tableau: t})
		}
	}
	return out, nil
}

// ParseTerms reads one term per line (semicolons also separate terms).
// A term is either a partition, meaning coefficient 1, or "count:partition":
//
//	2:3,1
//	2,2
//
// Blank lines are ignored.
func ParseTerms(text string) ([]Term, error) {
	var terms []Term
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == ';' })
	for _, line := range fields {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		coeff := 1
		shapeText := line
		if before, after, ok := strings.Cut(line, ":"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(before))
			if err != nil || n < 0 {
				return nil, errors.New(errors.ErrCodeInvalidTerm, "invalid coefficient in term %q", line)
			}
			coeff, shapeText = n, after
		}
		p, err := partition.Validate(shapeText)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTerm, err, "invalid shape in term %q", line)
		}
		terms = append(terms, Term{Shape: p, Coefficient: coeff})
	}
	return terms, nil
}

// FormatTerms writes terms in the format read by [ParseTerms].
func FormatTerms(terms []Term) string {
	lines := make([]string, len(terms))
	for i, t := range terms {
		if t.Coefficient == 1 {
			lines[i] = t.Shape.String()
			continue
		}
		lines[i] = strconv.Itoa(t.Coefficient) + ":" + t.Shape.String()
	}
	return strings.Join(lines, "\n")
}
