// Package underlay pins a reference image (an aerial photo or a scanned
// survey drawing) under the field diagram. Calibration fits the affine
// transform that carries image pixels into field meters from a handful
// of user-placed control pairs.
package underlay

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/pesislab/kentta/pkg/geom"
)

// ControlPair matches one spot on the underlay image with the same spot
// on the field.
type ControlPair struct {
	Image geom.Point // pixel position in the underlay
	Field geom.Point // position on the field, meters
}

// Calibrate fits the image-to-field affine transform. Three pairs give
// an exact solve, more give a least-squares fit. When the pairs do not
// constrain a full affine, typically because they sit on one painted
// line, the fit falls back to rotation plus translation.
func Calibrate(pairs []ControlPair) (geom.Affine, error) {
	if len(pairs) < 3 {
		return geom.Affine{}, fmt.Errorf("need at least 3 control pairs, got %d", len(pairs))
	}

	var tr geom.Affine
	var err error
	if len(pairs) == 3 {
		tr, err = solveExact(pairs)
	} else {
		tr, err = solveLeastSquares(pairs)
	}
	if err == nil {
		return tr, nil
	}

	rigid, rerr := CalibrateRigid(pairs)
	if rerr != nil {
		return geom.Affine{}, fmt.Errorf("control pairs are degenerate: %w", err)
	}
	return rigid, nil
}

// CalibrateRANSAC fits the transform while tolerating mis-placed pairs.
// Random 3-pair samples vote, the largest consensus wins, and the final
// transform is refit from its inliers. threshold is the residual in
// meters beyond which a pair counts as an outlier. Returns the inlier
// indices alongside the transform.
func CalibrateRANSAC(pairs []ControlPair, iterations int, threshold float64) (geom.Affine, []int, error) {
	if len(pairs) < 3 {
		return geom.Affine{}, nil, fmt.Errorf("need at least 3 control pairs, got %d", len(pairs))
	}
	if iterations < 1 {
		iterations = 1
	}

	n := len(pairs)
	bestInliers := []int{}
	var bestTransform geom.Affine

	for iter := 0; iter < iterations; iter++ {
		indices := rand.Perm(n)[:3]

		sample := make([]ControlPair, 3)
		for i, idx := range indices {
			sample[i] = pairs[idx]
		}
		tr, err := solveExact(sample)
		if err != nil {
			continue
		}

		var inliers []int
		for i, pair := range pairs {
			if tr.Apply(pair.Image).DistanceTo(pair.Field) < threshold {
				inliers = append(inliers, i)
			}
		}
		if len(inliers) > len(bestInliers) {
			bestInliers = inliers
			bestTransform = tr
		}
	}

	if len(bestInliers) < 3 {
		return geom.Affine{}, nil, fmt.Errorf("no consensus among control pairs")
	}

	inlierPairs := make([]ControlPair, len(bestInliers))
	for i, idx := range bestInliers {
		inlierPairs[i] = pairs[idx]
	}
	final, err := solveLeastSquares(inlierPairs)
	if err != nil {
		return bestTransform, bestInliers, nil
	}
	return final, bestInliers, nil
}

// CalibrateRigid fits rotation plus translation only. Two pairs
// suffice, and collinear pairs stay well posed.
func CalibrateRigid(pairs []ControlPair) (geom.Affine, error) {
	if len(pairs) < 2 {
		return geom.Affine{}, fmt.Errorf("need at least 2 control pairs, got %d", len(pairs))
	}

	n := float64(len(pairs))
	var srcCx, srcCy, dstCx, dstCy float64
	for _, p := range pairs {
		srcCx += p.Image.X
		srcCy += p.Image.Y
		dstCx += p.Field.X
		dstCy += p.Field.Y
	}
	srcCx /= n
	srcCy /= n
	dstCx /= n
	dstCy /= n

	var dotSum, crossSum float64
	for _, p := range pairs {
		sx, sy := p.Image.X-srcCx, p.Image.Y-srcCy
		dx, dy := p.Field.X-dstCx, p.Field.Y-dstCy
		dotSum += sx*dx + sy*dy
		crossSum += sx*dy - sy*dx
	}
	if dotSum == 0 && crossSum == 0 {
		return geom.Affine{}, fmt.Errorf("control pairs are coincident")
	}

	theta := math.Atan2(crossSum, dotSum)
	cosT := math.Cos(theta)
	sinT := math.Sin(theta)

	tx := dstCx - (cosT*srcCx - sinT*srcCy)
	ty := dstCy - (sinT*srcCx + cosT*srcCy)

	return geom.Affine{
		A: cosT, B: -sinT, TX: tx,
		C: sinT, D: cosT, TY: ty,
	}, nil
}

// MeanError reports the mean residual of the pairs under the transform,
// in meters.
func MeanError(pairs []ControlPair, tr geom.Affine) float64 {
	if len(pairs) == 0 {
		return math.Inf(1)
	}
	var total float64
	for _, p := range pairs {
		total += tr.Apply(p.Image).DistanceTo(p.Field)
	}
	return total / float64(len(pairs))
}

// solveExact solves the six transform parameters from exactly three
// pairs.
func solveExact(pairs []ControlPair) (geom.Affine, error) {
	if len(pairs) != 3 {
		return geom.Affine{}, fmt.Errorf("need exactly 3 pairs")
	}

	// Two rows per pair: x' = a*x + b*y + tx and y' = c*x + d*y + ty.
	A := mat.NewDense(6, 6, nil)
	B := mat.NewVecDense(6, nil)
	for i, p := range pairs {
		A.Set(i*2, 0, p.Image.X)
		A.Set(i*2, 1, p.Image.Y)
		A.Set(i*2, 2, 1)
		B.SetVec(i*2, p.Field.X)

		A.Set(i*2+1, 3, p.Image.X)
		A.Set(i*2+1, 4, p.Image.Y)
		A.Set(i*2+1, 5, 1)
		B.SetVec(i*2+1, p.Field.Y)
	}

	var params mat.VecDense
	if err := params.SolveVec(A, B); err != nil {
		return geom.Affine{}, err
	}
	return affineFromParams(&params), nil
}

// solveLeastSquares fits the parameters to an overdetermined system via
// QR decomposition.
func solveLeastSquares(pairs []ControlPair) (geom.Affine, error) {
	n := len(pairs)
	if n < 3 {
		return geom.Affine{}, fmt.Errorf("need at least 3 pairs")
	}

	A := mat.NewDense(n*2, 6, nil)
	B := mat.NewVecDense(n*2, nil)
	for i, p := range pairs {
		A.Set(i*2, 0, p.Image.X)
		A.Set(i*2, 1, p.Image.Y)
		A.Set(i*2, 2, 1)
		B.SetVec(i*2, p.Field.X)

		A.Set(i*2+1, 3, p.Image.X)
		A.Set(i*2+1, 4, p.Image.Y)
		A.Set(i*2+1, 5, 1)
		B.SetVec(i*2+1, p.Field.Y)
	}

	var qr mat.QR
	qr.Factorize(A)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, B); err != nil {
		return geom.Affine{}, err
	}
	return affineFromParams(&params), nil
}

func affineFromParams(params *mat.VecDense) geom.Affine {
	return geom.Affine{
		A:  params.AtVec(0),
		B:  params.AtVec(1),
		TX: params.AtVec(2),
		C:  params.AtVec(3),
		D:  params.AtVec(4),
		TY: params.AtVec(5),
	}
}
