/*
Package console prints segment trees to terminals, one line per tree level.

This is a debugging aid. Every node is shown with its value and the range of
indices it covers, e.g.

	L0  60[0,4]
	L1  33[0,2]  27[3,4]
	L2  21[0,1]  12[2,2]  13[3,3]  14[4,4]
	L3  10[0,0]  11[1,1]

Columns are aligned by display width (following UAX#11), so values whose
string form contains wide East Asian characters line up as well. Levels are
colored if the output device supports it.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
