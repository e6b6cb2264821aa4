package underlay

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pesislab/kentta/pkg/geom"
)

// DefaultOpacity is the opacity a freshly loaded underlay starts with.
const DefaultOpacity = 0.5

// Underlay is a reference image together with its calibration state.
type Underlay struct {
	Path      string
	Image     image.Image
	Transform geom.Affine // image pixels to field meters
	Pairs     []ControlPair
	Opacity   float64
	Visible   bool
}

// Load reads a PNG or JPEG reference image. The transform starts as
// identity; call Recalibrate once control pairs are placed.
func Load(path string) (*Underlay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening underlay: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding underlay %s: %w", path, err)
	}

	return &Underlay{
		Path:      path,
		Image:     img,
		Transform: geom.IdentityAffine(),
		Opacity:   DefaultOpacity,
		Visible:   true,
	}, nil
}

// Recalibrate refits the transform from the stored control pairs.
func (u *Underlay) Recalibrate() error {
	tr, err := Calibrate(u.Pairs)
	if err != nil {
		return err
	}
	u.Transform = tr
	return nil
}

// AddPair appends a control pair and refits once enough pairs exist.
func (u *Underlay) AddPair(pair ControlPair) error {
	u.Pairs = append(u.Pairs, pair)
	if len(u.Pairs) < 3 {
		return nil
	}
	return u.Recalibrate()
}

// ResidualError reports the current mean calibration residual in
// meters.
func (u *Underlay) ResidualError() float64 {
	return MeanError(u.Pairs, u.Transform)
}
