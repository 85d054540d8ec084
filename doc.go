/*
Package segtree implements a generic segment tree over a fixed-length sequence
of values.

Segment Trees

A segment tree stores a sequence of n values in the leaves of a balanced binary
tree. Every inner node holds the aggregate of the leaves below it, where the
aggregation is given by a monoid: an identity element plus an associative
binary operation. With this layout, the aggregate of any contiguous range
of the sequence is available in O(log n), and modifications of a range touch
only the paths from the affected leaves to the root.

The tree is not a graph of nodes. It lives in a single flat slice, indexed like
a binary heap: node p has children 2p and 2p+1, the root is node 1 (stored at
slice offset 0).

Monoids

Clients select the aggregation by handing a Monoid to New:

	tree := segtree.New([]int{10, 11, 12, 13, 14}, segtree.Sum[int]{})
	v, ok := tree.Query(segtree.Span(1, 4)) // v = 36, ok = true

Monoids need not be commutative. The tree always combines the result of a
left subtree with the result of its right sibling, never the other way round,
so order-sensitive operations like matrix products or string concatenation
are supported.

Besides stateless monoids like Sum or Product, there are adapters for types
carrying their own arithmetic (Additive, Multiplicative) and a monoid holding
an arbitrary function (Func).

Ranges

Query and Update accept a Range, which is an expression over indices with
inclusive, exclusive or missing bounds (see Span, Closed, From, To, All).
A range which is empty or reaches beyond the end of the sequence yields no
result and causes no modification.

Updates

Update does not overwrite values. It folds a value into every element of a
range using the monoid's operation, i.e. for a sum monoid, Update adds a delta
to every element. Clients wanting to overwrite elements use Set.

The tree is not safe for concurrent use. Clients sharing a tree between
goroutines have to protect it with a single lock.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
