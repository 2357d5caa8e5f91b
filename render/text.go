// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvmat/matrix"
)

const (
	textField = "%3.0f" // min width 3, no decimals
	textSep   = " "
)

// renderErrorf tags err with the renderer name.
func renderErrorf(tag string, err error) error {
	return fmt.Errorf("render: %s: %w", tag, err)
}

// Text writes m to w one row per line.
// Each element is formatted %3.0f; fields are joined by a single space with
// no trailing space, and every line, the last included, ends in '\n'.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil or released m.
//   - matrix.ErrInvalidDimension for a zero-sized m.
//   - any accessor or writer error, wrapped.
func Text(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateOperand(m); err != nil {
		return renderErrorf("Text", err)
	}

	rows, cols := m.Rows(), m.Cols()
	var line strings.Builder
	var i, j uint32
	for i = 0; i < rows; i++ {
		line.Reset()
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return renderErrorf("Text", err)
			}
			if j > 0 {
				line.WriteString(textSep)
			}
			fmt.Fprintf(&line, textField, v)
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return renderErrorf("Text", err)
		}
	}

	return nil
}
