package codegen

// degreeVisitor implements lang.Visitor[int], computing the polynomial
// degree in w per the table in §4.3: Num/Arg are constant in w, Val is
// degree 1, Add/Sub take the max of their operands' degrees, Mul sums
// them, and Pow(a,k) multiplies a's degree by k.
type degreeVisitor struct{}

func (degreeVisitor) Num(complex128) int { return 0 }
func (degreeVisitor) Arg() int           { return 0 }
func (degreeVisitor) Val() int           { return 1 }
func (degreeVisitor) Add(a, b int) int   { return max(a, b) }
func (degreeVisitor) Sub(a, b int) int   { return max(a, b) }
func (degreeVisitor) Mul(a, b int) int   { return a + b }
func (degreeVisitor) Neg(a int) int      { return a }
func (degreeVisitor) Pow(a int, k int) int { return k * a }
