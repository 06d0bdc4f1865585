package geom

// Mat2 is a 2x2 integer matrix stored row-major:
//
//	| A B |
//	| C D |
type Mat2 struct {
	A, B, C, D int
}

// Identity is the 2x2 identity matrix.
var Identity = Mat2{A: 1, D: 1}

// RowMajor builds a matrix from its entries in row order.
func RowMajor(a, b, c, d int) Mat2 {
	return Mat2{A: a, B: b, C: c, D: d}
}

// Apply returns the matrix-vector product m*p.
func (m Mat2) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.C*p.X + m.D*p.Y,
	}
}

// Mul returns the matrix product m*n.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Det returns the determinant of m.
func (m Mat2) Det() int {
	return m.A*m.D - m.B*m.C
}
