package intmat

// SmithNormalForm reduces m (destructively, on a private clone) to
// diagonal form via integer row/column operations and returns the
// resulting diagonal entries in the order they were pivoted, each
// non-negative. The entries divide one another in sequence
// (d[0] | d[1] | ... ) as guaranteed by the elimination strategy
// below: at each step the globally-smallest nonzero entry of the
// remaining submatrix is chosen as pivot, which is the textbook
// (if not the fastest) Smith normal form algorithm.
//
// Complexity: O((rows*cols)^2) in the worst case — adequate for the
// small boundary matrices (tens to low hundreds of simplices) the
// triangulation properties cache builds; not intended for large-scale
// homological algebra.
func SmithNormalForm(m *Matrix) []int64 {
	a := m.Clone()
	var diag []int64

	t := 0
	for t < a.Rows && t < a.Cols {
		if !reducePivot(a, t) {
			break
		}
		diag = append(diag, abs64(a.At(t, t)))
		t++
	}

	return diag
}

// reducePivot arranges for a[t][t] to become a valid Smith pivot for
// the submatrix rows/cols >= t (nonzero and dividing every other entry
// in that submatrix), or reports false if the submatrix is entirely
// zero.
func reducePivot(a *Matrix, t int) bool {
	for {
		if !bringMinNonzeroToPivot(a, t) {
			return false
		}
		if eliminateRowAndColumn(a, t) {
			continue // a smaller remainder appeared; re-pivot
		}
		if !pivotDividesSubmatrix(a, t) {
			continue // row t now has a non-divisible entry; re-pivot
		}

		return true
	}
}

// bringMinNonzeroToPivot finds the entry of smallest absolute value in
// the submatrix rows/cols >= t and swaps it into position (t,t).
// Reports false if every entry in that submatrix is zero.
func bringMinNonzeroToPivot(a *Matrix, t int) bool {
	bestI, bestJ := -1, -1
	var best int64
	for i := t; i < a.Rows; i++ {
		for j := t; j < a.Cols; j++ {
			v := a.At(i, j)
			if v == 0 {
				continue
			}
			av := abs64(v)
			if bestI == -1 || av < best {
				best, bestI, bestJ = av, i, j
			}
		}
	}
	if bestI == -1 {
		return false
	}
	a.SwapRows(t, bestI)
	a.SwapCols(t, bestJ)

	return true
}

// eliminateRowAndColumn zeroes every entry below and to the right of
// the pivot using truncating integer division against the pivot.
// Reports true if any entry could not be zeroed exactly (i.e. a
// smaller nonzero remainder was produced), signalling the caller to
// re-select the pivot.
func eliminateRowAndColumn(a *Matrix, t int) bool {
	pivot := a.At(t, t)
	changed := false

	for i := t + 1; i < a.Rows; i++ {
		v := a.At(i, t)
		if v == 0 {
			continue
		}
		q := v / pivot
		a.AddRow(i, t, -q)
		if a.At(i, t) != 0 {
			changed = true
		}
	}

	for j := t + 1; j < a.Cols; j++ {
		v := a.At(t, j)
		if v == 0 {
			continue
		}
		q := v / pivot
		a.AddCol(j, t, -q)
		if a.At(t, j) != 0 {
			changed = true
		}
	}

	return changed
}

// pivotDividesSubmatrix checks whether a[t][t] divides every entry of
// the strict submatrix rows/cols > t. If it finds a violation at
// (i,j), it folds row i into row t (so the violating value appears in
// row t, column j) and reports false so the caller restarts pivoting;
// this is the standard "pivot doesn't yet divide everything" repair
// step of the naive Smith normal form algorithm.
func pivotDividesSubmatrix(a *Matrix, t int) bool {
	pivot := a.At(t, t)
	for i := t + 1; i < a.Rows; i++ {
		for j := t + 1; j < a.Cols; j++ {
			if a.At(i, j)%pivot != 0 {
				a.AddRow(t, i, 1)

				return false
			}
		}
	}

	return true
}
