package astroplan

import "fmt"

// Matrix is the observability matrix: one row per target, one column per
// time. Boolean constraints store 0/1 and set the boolean flag; continuous
// constraints store scores in [0, 1]. Every Constraint must return exactly
// the (targets × times) shape of its inputs.
type Matrix struct {
	rows, cols int
	data       []float64
	boolean    bool
}

func newBoolMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols), boolean: true}
}

func newFloatMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// NumTargets returns the number of rows (targets).
func (m *Matrix) NumTargets() int { return m.rows }

// NumTimes returns the number of columns (times).
func (m *Matrix) NumTimes() int { return m.cols }

// Boolean reports whether the matrix holds 0/1 values.
func (m *Matrix) Boolean() bool { return m.boolean }

// At returns the value for target i at time j.
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.cols+j] }

// BoolAt reports the value for target i at time j as a truth value; any
// nonzero score counts as satisfied, matching AND-reduction semantics.
func (m *Matrix) BoolAt(i, j int) bool { return m.data[i*m.cols+j] != 0 }

func (m *Matrix) set(i, j int, v float64) { m.data[i*m.cols+j] = v }

func (m *Matrix) setBool(i, j int, v bool) {
	if v {
		m.data[i*m.cols+j] = 1
	} else {
		m.data[i*m.cols+j] = 0
	}
}

// and combines m with o elementwise by logical AND, in place. The result is
// boolean. Shapes must match exactly.
func (m *Matrix) and(o *Matrix) error {
	if m.rows != o.rows || m.cols != o.cols {
		return fmt.Errorf("%w: (%d×%d) vs (%d×%d)",
			ErrShapeMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	for i := range m.data {
		if m.data[i] != 0 && o.data[i] != 0 {
			m.data[i] = 1
		} else {
			m.data[i] = 0
		}
	}
	m.boolean = true
	return nil
}

// anyPerTarget OR-reduces across the time axis.
func (m *Matrix) anyPerTarget() []bool {
	out := make([]bool, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.BoolAt(i, j) {
				out[i] = true
				break
			}
		}
	}
	return out
}

// allPerTarget AND-reduces across the time axis.
func (m *Matrix) allPerTarget() []bool {
	out := make([]bool, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = true
		for j := 0; j < m.cols; j++ {
			if !m.BoolAt(i, j) {
				out[i] = false
				break
			}
		}
	}
	return out
}

// fractionPerTarget returns count(true)/num_times per target.
func (m *Matrix) fractionPerTarget() []float64 {
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		n := 0
		for j := 0; j < m.cols; j++ {
			if m.BoolAt(i, j) {
				n++
			}
		}
		out[i] = float64(n) / float64(m.cols)
	}
	return out
}
