// SPDX-License-Identifier: MIT

// Package matrix: rendering.

package matrix

import (
	"strconv"
	"strings"
)

// Row rendering delimiters (stable output contract).
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// String renders the LOGICAL matrix row-wise: one "[v, v, v]" line per row,
// entries in %g form at the core's configured precision. Views render their
// post-transform values, never the raw storage layout.
// Determinism: fixed traversal order; stable delimiters.
// Complexity: O(r·c) time and formatting space. Not for hot paths.
func (m *Matrix) String() string {
	if m == nil || m.core == nil {
		return "<nil>"
	}

	var b strings.Builder
	rows, cols := m.Shape()
	prec := m.core.opts.renderPrec
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen) // open row
		for j = 0; j < cols; j++ {
			b.WriteString(strconv.FormatFloat(m.at(i, j), 'g', prec, 64))
			if j+1 < cols {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
