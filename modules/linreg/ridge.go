package linreg

import (
	"errors"
	"fmt"
	"math"
)

// Ridge is a fitted L2-regularized linear regression model. It is stored as
// a msgpack object.
type Ridge struct {
	Features []string  `msgpack:"features"`
	Weights  []float64 `msgpack:"weights"`
	Bias     float64   `msgpack:"bias"`
	Alpha    float64   `msgpack:"alpha"`
}

// FitRidge fits weights and intercept by solving the centered normal
// equations (XᵀX + αI)w = Xᵀy. The intercept is not penalized.
func FitRidge(X [][]float64, y []float64, alpha float64) (Ridge, error) {
	n := len(X)
	if n == 0 {
		return Ridge{}, errors.New("no samples to fit")
	}
	if len(y) != n {
		return Ridge{}, fmt.Errorf("have %d samples but %d targets", n, len(y))
	}
	if alpha < 0 {
		return Ridge{}, fmt.Errorf("alpha must be non-negative, got %g", alpha)
	}
	p := len(X[0])

	xMean := make([]float64, p)
	yMean := 0.0
	for i, row := range X {
		if len(row) != p {
			return Ridge{}, fmt.Errorf("row %d has %d features, want %d", i, len(row), p)
		}
		for j, v := range row {
			xMean[j] += v
		}
		yMean += y[i]
	}
	for j := range xMean {
		xMean[j] /= float64(n)
	}
	yMean /= float64(n)

	// Augmented system [A | b] with A = XcᵀXc + αI and b = Xcᵀyc.
	a := make([][]float64, p)
	for j := range a {
		a[j] = make([]float64, p+1)
	}
	for i, row := range X {
		yc := y[i] - yMean
		for j := 0; j < p; j++ {
			xj := row[j] - xMean[j]
			for k := j; k < p; k++ {
				a[j][k] += xj * (row[k] - xMean[k])
			}
			a[j][p] += xj * yc
		}
	}
	for j := 0; j < p; j++ {
		for k := 0; k < j; k++ {
			a[j][k] = a[k][j]
		}
		a[j][j] += alpha
	}

	w, err := solve(a)
	if err != nil {
		return Ridge{}, err
	}

	bias := yMean
	for j := range w {
		bias -= w[j] * xMean[j]
	}
	return Ridge{Weights: w, Bias: bias, Alpha: alpha}, nil
}

// Predict returns one prediction per row.
func (m Ridge) Predict(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		sum := m.Bias
		for j, v := range row {
			sum += m.Weights[j] * v
		}
		out[i] = sum
	}
	return out
}

// R2 returns the coefficient of determination of the predictions.
func R2(yTrue, yPred []float64) float64 {
	mean := 0.0
	for _, v := range yTrue {
		mean += v
	}
	mean /= float64(len(yTrue))

	var ssRes, ssTot float64
	for i := range yTrue {
		ssRes += (yTrue[i] - yPred[i]) * (yTrue[i] - yPred[i])
		ssTot += (yTrue[i] - mean) * (yTrue[i] - mean)
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}

// solve runs Gaussian elimination with partial pivoting on an augmented
// p×(p+1) matrix, in place.
func solve(a [][]float64) ([]float64, error) {
	p := len(a)
	for col := 0; col < p; col++ {
		pivot := col
		for r := col + 1; r < p; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, errors.New("singular system; increase alpha")
		}
		a[col], a[pivot] = a[pivot], a[col]

		for r := col + 1; r < p; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c <= p; c++ {
				a[r][c] -= f * a[col][c]
			}
		}
	}

	x := make([]float64, p)
	for r := p - 1; r >= 0; r-- {
		sum := a[r][p]
		for c := r + 1; c < p; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}
	return x, nil
}
