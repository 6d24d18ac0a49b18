package lang

import "fmt"

// Visitor is a typed, post-order dispatch over the polynomial node variants.
// Eval walks a Node bottom-up, folding each subtree into a T before handing
// it to the combinator for the parent — the same "switch on concrete type,
// recurse into children first" dispatch the rest of this codebase uses for
// tree walks, generalized so that a pass over the tree (such as codegen's
// degree pass) need not repeat the recursion. Codegen's lowering pass does
// not use it: it keeps its own type switch so it can memoize by node
// identity.
type Visitor[T any] interface {
	Num(c complex128) T
	Arg() T
	Val() T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Neg(a T) T
	Pow(a T, k int) T
}

// Eval runs v over n in post-order: children are folded before the node
// that owns them.
func Eval[T any](n Node, v Visitor[T]) T {
	switch x := n.(type) {
	case *Num:
		return v.Num(x.V)
	case *Arg:
		return v.Arg()
	case *Val:
		return v.Val()
	case *Add:
		return v.Add(Eval(x.A, v), Eval(x.B, v))
	case *Sub:
		return v.Sub(Eval(x.A, v), Eval(x.B, v))
	case *Mul:
		return v.Mul(Eval(x.A, v), Eval(x.B, v))
	case *Neg:
		return v.Neg(Eval(x.A, v))
	case *Pow:
		return v.Pow(Eval(x.A, v), x.K)
	default:
		panic(fmt.Sprintf("lang: unhandled node type %T", n))
	}
}
