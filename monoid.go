package segtree

import "cmp"

// Monoid defines how values are aggregated up the tree.
//
// For values a, b, c, Combine must be associative:
//
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
//
// and Identity must be the neutral element:
//
//	Combine(Identity(), a) == a == Combine(a, Identity())
//
// Combine need not be commutative. The tree calls it with the left operand
// covering lower indices than the right one.
type Monoid[T any] interface {
	Identity() T
	Combine(left, right T) T
}

// Number is a constraint for Go's built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds numbers.
type Sum[T Number] struct{}

// Identity returns 0.
func (Sum[T]) Identity() T { return 0 }

// Combine returns left + right.
func (Sum[T]) Combine(left, right T) T { return left + right }

// Product multiplies numbers.
type Product[T Number] struct{}

// Identity returns 1.
func (Product[T]) Identity() T { return 1 }

// Combine returns left * right.
func (Product[T]) Combine(left, right T) T { return left * right }

// Min selects the smaller of two values. Top is the identity and has to be
// greater than or equal to every value stored, e.g. math.MaxInt or +Inf.
type Min[T cmp.Ordered] struct {
	Top T
}

// Identity returns m.Top.
func (m Min[T]) Identity() T { return m.Top }

// Combine returns the smaller value.
func (Min[T]) Combine(left, right T) T { return min(left, right) }

// Max selects the greater of two values. Bottom is the identity and has to be
// less than or equal to every value stored.
type Max[T cmp.Ordered] struct {
	Bottom T
}

// Identity returns m.Bottom.
func (m Max[T]) Identity() T { return m.Bottom }

// Combine returns the greater value.
func (Max[T]) Combine(left, right T) T { return max(left, right) }

// --- Adapters for types with arithmetic methods ----------------------------

// Adder is implemented by value types with an addition method whose zero
// value is the additive identity, e.g. decimal.Decimal.
type Adder[T any] interface {
	Add(T) T
}

// Additive aggregates values by calling their Add method.
type Additive[T Adder[T]] struct{}

// Identity returns the zero value of T.
func (Additive[T]) Identity() T {
	var zero T
	return zero
}

// Combine returns left.Add(right).
func (Additive[T]) Combine(left, right T) T { return left.Add(right) }

// Multiplier is implemented by value types with a multiplication method.
type Multiplier[T any] interface {
	Mul(T) T
}

// Multiplicative aggregates values by calling their Mul method. As the zero
// value of a type rarely is its multiplicative identity, clients have to
// provide it as One.
type Multiplicative[T Multiplier[T]] struct {
	One T
}

// Identity returns m.One.
func (m Multiplicative[T]) Identity() T { return m.One }

// Combine returns left.Mul(right).
func (Multiplicative[T]) Combine(left, right T) T { return left.Mul(right) }

// --- Dynamic monoids -------------------------------------------------------

// Func is a monoid made from an identity value and an operation chosen at
// runtime. Op must be associative with Zero as its neutral element.
type Func[T any] struct {
	Zero T
	Op   func(left, right T) T
}

// MonoidOf creates a monoid from an identity and an operation.
func MonoidOf[T any](zero T, op func(left, right T) T) Func[T] {
	return Func[T]{Zero: zero, Op: op}
}

// Identity returns f.Zero.
func (f Func[T]) Identity() T { return f.Zero }

// Combine returns f.Op(left, right).
func (f Func[T]) Combine(left, right T) T { return f.Op(left, right) }

// Tuple is the value type of a Pair monoid.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Pair aggregates tuples component-wise, using one monoid per component.
// This lets a single tree answer two kinds of queries at once, e.g. sum and
// maximum of a range.
type Pair[A, B any] struct {
	First  Monoid[A]
	Second Monoid[B]
}

// PairOf creates a product monoid from two monoids.
func PairOf[A, B any](first Monoid[A], second Monoid[B]) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Identity returns the tuple of both identities.
func (p Pair[A, B]) Identity() Tuple[A, B] {
	return Tuple[A, B]{First: p.First.Identity(), Second: p.Second.Identity()}
}

// Combine combines both components independently.
func (p Pair[A, B]) Combine(left, right Tuple[A, B]) Tuple[A, B] {
	return Tuple[A, B]{
		First:  p.First.Combine(left.First, right.First),
		Second: p.Second.Combine(left.Second, right.Second),
	}
}

var (
	_ Monoid[int]             = Sum[int]{}
	_ Monoid[float64]         = Product[float64]{}
	_ Monoid[int]             = Min[int]{}
	_ Monoid[string]          = Max[string]{}
	_ Monoid[uint32]          = Func[uint32]{}
	_ Monoid[Tuple[int, int]] = Pair[int, int]{}
)
