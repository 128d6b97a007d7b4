package cli

import (
	"io"

	"github.com/matzehuels/domino/pkg/errors"
)

// hints follow the error line for codes a user can act on.
var hints = map[errors.Code]string{
	errors.ErrCodeInvalidPartition:  "a partition is a weakly decreasing list of positive integers, e.g. 4,2,1",
	errors.ErrCodeInvalidTerm:       "terms look like 2:3,1 (coefficient:partition), separated by ; or newlines",
	errors.ErrCodeNotDominoTileable: "the corners and holes of the shape must pair up; try a shape such as 4,2",
	errors.ErrCodeLimitExceeded:     "raise the [limits] section of the config file (see domino config path)",
	errors.ErrCodeInvalidConfig:     "domino config show prints the settings in effect",
	errors.ErrCodeUnsupported:       "SVG output needs no external tools; PNG and PDF need rsvg-convert",
}

// ReportError prints err as a styled error line, followed by a hint when
// its code has one.
func ReportError(w io.Writer, err error) {
	printError(w, "%s", errors.UserMessage(err))
	if hint, ok := hints[errors.GetCode(err)]; ok {
		printDetail(w, "%s", hint)
	}
}
