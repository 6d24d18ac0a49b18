// Package codegen compiles a polynomial expression tree (pkg/lang) into a
// Kernel: a pure, concurrency-safe function computing the triple
// (F, dF/dw, d2F/dw2) at a given (z, w), plus the polynomial's degree in w.
//
// This targets strategy (b) of the two conforming codegen strategies: no
// JIT, no cgo. The tree is lowered once, in post-order, into a flat slice
// of three-address instructions (one slot per distinct DAG node, shared
// subtrees compiled once) that a small interpreter replays for every pixel.
// This mirrors the two-stage shape of the teacher compiler this package is
// adapted from (compiler.Generate emits text, a separate pass assembles and
// runs it) without needing a second textual representation: the
// instruction slice already IS the compiled artifact.
package codegen

import (
	"fmt"

	"github.com/mistarro/complex-plot/pkg/lang"
)

type opcode int

const (
	opConst opcode = iota
	opArg
	opVal
	opAdd
	opSub
	opMul
	opNeg
	opPow
)

// instr is one three-address instruction: it reads zero, one, or two prior
// slots (a, b) and writes its own slot (its own index in Kernel.instrs).
type instr struct {
	op opcode
	a  int
	b  int
	c  complex128 // literal value, opConst only
	k  int        // exponent, opPow only
}

// triple is the (value, first derivative, second derivative) carried
// through evaluation, derivatives taken with respect to w.
type triple struct {
	v, d1, d2 complex128
}

// Kernel is the compiled, stateless evaluator for F(z,w), dF/dw and
// d2F/dw2. It holds no mutable state after Compile returns and is safe for
// concurrent use by multiple goroutines.
type Kernel struct {
	instrs []instr
	result int
	Degree int
}

// CompileError reports that the code generator could not produce a Kernel
// for an otherwise-valid tree. The interpreted backend has no data-dependent
// failure modes; this exists for the resource-exhaustion case the
// specification reserves (and to convert an unexpected node type, which
// would be a bug in pkg/lang, into a catchable error instead of a panic).
type CompileError struct {
	Reason string
}

func (e *CompileError) Error() string { return fmt.Sprintf("codegen: %s", e.Reason) }

// Compile lowers a polynomial expression tree into a Kernel.
func Compile(tree lang.Node) (k *Kernel, err error) {
	defer func() {
		if r := recover(); r != nil {
			k = nil
			err = &CompileError{Reason: fmt.Sprintf("%v", r)}
		}
	}()

	c := &compiler{slots: make(map[lang.Node]int)}
	result := c.compile(tree)
	degree := lang.Eval[int](tree, degreeVisitor{})

	return &Kernel{instrs: c.instrs, result: result, Degree: degree}, nil
}

// compiler holds the lowering state for one Compile call: the growing
// instruction list and a memo table keyed by node identity so that shared
// DAG nodes (canonical singletons, folded constants, any other shared
// subexpression) are compiled exactly once.
type compiler struct {
	instrs []instr
	slots  map[lang.Node]int
}

func (c *compiler) compile(n lang.Node) int {
	if slot, ok := c.slots[n]; ok {
		return slot
	}

	var in instr
	switch x := n.(type) {
	case *lang.Num:
		in = instr{op: opConst, c: x.V}
	case *lang.Arg:
		in = instr{op: opArg}
	case *lang.Val:
		in = instr{op: opVal}
	case *lang.Add:
		in = instr{op: opAdd, a: c.compile(x.A), b: c.compile(x.B)}
	case *lang.Sub:
		in = instr{op: opSub, a: c.compile(x.A), b: c.compile(x.B)}
	case *lang.Mul:
		in = instr{op: opMul, a: c.compile(x.A), b: c.compile(x.B)}
	case *lang.Neg:
		in = instr{op: opNeg, a: c.compile(x.A)}
	case *lang.Pow:
		in = instr{op: opPow, a: c.compile(x.A), k: x.K}
	default:
		panic(fmt.Sprintf("codegen: unhandled node type %T", n))
	}

	slot := len(c.instrs)
	c.instrs = append(c.instrs, in)
	c.slots[n] = slot
	return slot
}

// Eval computes (F, dF/dw, d2F/dw2) at the given z and w. It allocates a
// fresh scratch slice per call and touches no shared state, so concurrent
// callers never need external synchronization.
func (k *Kernel) Eval(z, w complex128) (d0, d1, d2 complex128) {
	slots := make([]triple, len(k.instrs))
	for i, in := range k.instrs {
		switch in.op {
		case opConst:
			slots[i] = triple{in.c, 0, 0}
		case opArg:
			slots[i] = triple{z, 0, 0}
		case opVal:
			slots[i] = triple{w, 1, 0}
		case opAdd:
			a, b := slots[in.a], slots[in.b]
			slots[i] = triple{a.v + b.v, a.d1 + b.d1, a.d2 + b.d2}
		case opSub:
			a, b := slots[in.a], slots[in.b]
			slots[i] = triple{a.v - b.v, a.d1 - b.d1, a.d2 - b.d2}
		case opMul:
			a, b := slots[in.a], slots[in.b]
			slots[i] = triple{
				a.v*b.v,
				a.v*b.d1 + a.d1*b.v,
				a.d2*b.v + 2*a.d1*b.d1 + a.v*b.d2,
			}
		case opNeg:
			a := slots[in.a]
			slots[i] = triple{-a.v, -a.d1, -a.d2}
		case opPow:
			slots[i] = evalPow(slots[in.a], in.k)
		}
	}
	r := slots[k.result]
	return r.v, r.d1, r.d2
}

// evalPow applies the closed-form Pow differentiation rule. k is always >=
// 2 here: NewPow folds k==0 to One and k==1 to the base before a *lang.Pow
// node can exist. The scalar powers a.v^(k-1) and a.v^(k-2) are each formed
// by binary exponentiation (see cpow), never by k-1 or k-2 repeated
// multiplications.
func evalPow(a triple, k int) triple {
	akm1 := cpow(a.v, k-1)
	akm2 := cpow(a.v, k-2)
	kk := complex(float64(k), 0)

	v := akm1 * a.v
	d1 := kk * akm1 * a.d1
	d2 := kk * akm2 * (complex(float64(k-1), 0)*a.d1*a.d1 + a.v*a.d2)
	return triple{v, d1, d2}
}

// cpow computes v^k for a non-negative integer k by binary exponentiation.
func cpow(v complex128, k int) complex128 {
	result := complex128(1)
	base := v
	for k > 0 {
		if k&1 == 1 {
			result *= base
		}
		base *= base
		k >>= 1
	}
	return result
}
