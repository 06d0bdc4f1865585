package geom

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, -2)
	q := Pt(1, 5)
	if got := p.Add(q); got != Pt(4, 3) {
		t.Errorf("Add = %v, want (4,3)", got)
	}
	if got := p.Sub(q); got != Pt(2, -7) {
		t.Errorf("Sub = %v, want (2,-7)", got)
	}
	if got := p.SqrMagnitude(); got != 13 {
		t.Errorf("SqrMagnitude = %d, want 13", got)
	}
}

func TestMat2Apply(t *testing.T) {
	cases := []struct {
		name string
		m    Mat2
		in   Point
		want Point
	}{
		{"identity", Identity, Pt(3, 1), Pt(3, 1)},
		{"swap axes", RowMajor(0, 1, 1, 0), Pt(3, 1), Pt(1, 3)},
		{"rotate", RowMajor(0, -1, 1, 0), Pt(3, 1), Pt(-1, 3)},
		{"negate", RowMajor(-1, 0, 0, -1), Pt(3, 1), Pt(-3, -1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.Apply(tc.in); got != tc.want {
				t.Errorf("%v.Apply(%v) = %v, want %v", tc.m, tc.in, got, tc.want)
			}
		})
	}
}

func TestMat2MulAndDet(t *testing.T) {
	rot := RowMajor(0, -1, 1, 0)
	if got := rot.Mul(rot).Mul(rot).Mul(rot); got != Identity {
		t.Errorf("four quarter turns = %v, want identity", got)
	}
	if rot.Det() != 1 {
		t.Errorf("rotation det = %d, want 1", rot.Det())
	}
	if RowMajor(0, 1, 1, 0).Det() != -1 {
		t.Error("reflection det should be -1")
	}
}
