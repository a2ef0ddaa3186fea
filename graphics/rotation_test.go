// seehuhn.de/go/pdfdraw - drawing primitives and barcodes for PDF pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package graphics

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func newTestRotation() (*Rotation, *Recorder) {
	rec := &Recorder{}
	return NewRotation(rec, testSpace{100, 1}), rec
}

func TestRotateTokens(t *testing.T) {
	r, rec := newTestRotation()
	r.Rotate(90, vec.Vec2{X: 10, Y: 20})
	r.Rotate(0, vec.Vec2{})

	want := []string{
		"q",
		"0 1 -1 0 10 80 cm",
		"1 0 0 1 -10 -80 cm",
		"Q",
	}
	if diff := cmp.Diff(rec.Tokens(), want); diff != "" {
		t.Errorf("tokens (-got +want):\n%s", diff)
	}
}

func TestRotateStates(t *testing.T) {
	r, rec := newTestRotation()
	if r.State() != RotationIdle {
		t.Fatalf("new rotation is %v", r.State())
	}

	r.Rotate(30, vec.Vec2{X: 5, Y: 5})
	if r.State() != RotationActive || r.Angle() != 30 {
		t.Errorf("after Rotate(30): %v, angle %g", r.State(), r.Angle())
	}
	if a, ok := r.Anchor(); !ok || a != (vec.Vec2{X: 5, Y: 5}) {
		t.Errorf("Anchor() = %v, %t", a, ok)
	}

	// a second rotation first restores the saved state
	rec.Reset()
	r.Rotate(45, vec.Vec2{X: 5, Y: 5})
	tokens := rec.Tokens()
	if len(tokens) != 4 || tokens[0] != "Q" || tokens[1] != "q" {
		t.Errorf("re-rotation: got %q", tokens)
	}

	r.EndPage()
	if r.State() != RotationIdle || r.Angle() != 0 {
		t.Errorf("after EndPage: %v, angle %g", r.State(), r.Angle())
	}

	// nothing to restore on an idle page
	rec.Reset()
	r.EndPage()
	r.Rotate(0, vec.Vec2{})
	if rec.Len() != 0 {
		t.Errorf("idle rotation emitted %q", rec.Tokens())
	}
}

func TestRotationBalance(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for run := 0; run < 100; run++ {
		r, rec := newTestRotation()
		n := rng.Intn(10)
		for i := 0; i < n; i++ {
			angle := float64(rng.Intn(4) * 30)
			r.Rotate(angle, vec.Vec2{X: rng.Float64() * 100, Y: rng.Float64() * 100})

			// never more than one unmatched "q"
			depth := 0
			for _, tok := range rec.Tokens() {
				switch tok {
				case "q":
					depth++
				case "Q":
					depth--
				}
				if depth < 0 || depth > 1 {
					t.Fatalf("run %d: invalid nesting depth %d", run, depth)
				}
			}
		}
		r.EndPage()

		saves, restores := 0, 0
		for _, tok := range rec.Tokens() {
			switch tok {
			case "q":
				saves++
			case "Q":
				restores++
			}
		}
		if saves != restores {
			t.Errorf("run %d: %d saves, %d restores", run, saves, restores)
		}
		if r.State() != RotationIdle {
			t.Errorf("run %d: state %v after EndPage", run, r.State())
		}
	}
}

func TestRotatedDraw(t *testing.T) {
	r, rec := newTestRotation()
	errDraw := errors.New("draw failed")

	err := r.RotatedDraw(90, vec.Vec2{X: 10, Y: 20}, func() error {
		rec.AppendRaw("BT ET")
		if r.State() != RotationActive {
			t.Error("rotation not active inside RotatedDraw")
		}
		return errDraw
	})
	if !errors.Is(err, errDraw) {
		t.Errorf("got error %v", err)
	}
	tokens := rec.Tokens()
	if tokens[len(tokens)-1] != "Q" {
		t.Errorf("state not restored: %q", tokens)
	}
	if r.State() != RotationIdle {
		t.Errorf("state %v after RotatedDraw", r.State())
	}
}

func TestRotationMatrix(t *testing.T) {
	r, _ := newTestRotation()
	m := r.Matrix()
	if m != matrix.Identity {
		t.Errorf("idle rotation has matrix %v", m)
	}

	r.Rotate(90, vec.Vec2{X: 10, Y: 20})
	m = r.Matrix()
	apply := func(x, y float64) (float64, float64) {
		return x*m[0] + y*m[2] + m[4], x*m[1] + y*m[3] + m[5]
	}

	// the anchor, at (10, 80) in device space, stays fixed
	x, y := apply(10, 80)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-80) > 1e-9 {
		t.Errorf("anchor maps to (%g, %g)", x, y)
	}

	// a quarter turn counterclockwise in device space
	x, y = apply(11, 80)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-81) > 1e-9 {
		t.Errorf("(11, 80) maps to (%g, %g), want (10, 81)", x, y)
	}
}

func TestRotateInvalid(t *testing.T) {
	r, rec := newTestRotation()
	cases := []struct {
		angle  float64
		anchor vec.Vec2
	}{
		{math.NaN(), vec.Vec2{X: 10, Y: 20}},
		{math.Inf(1), vec.Vec2{X: 10, Y: 20}},
		{90, vec.Vec2{X: math.NaN(), Y: 20}},
		{90, vec.Vec2{X: 10, Y: math.Inf(-1)}},
	}
	for _, c := range cases {
		err := r.Rotate(c.angle, c.anchor)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Rotate(%g, %v): got error %v", c.angle, c.anchor, err)
		}
	}
	if rec.Len() != 0 {
		t.Errorf("invalid rotations emitted %q", rec.Tokens())
	}
	if r.State() != RotationIdle {
		t.Errorf("state %v after invalid rotations", r.State())
	}

	// an active rotation survives an invalid one
	r.Rotate(30, vec.Vec2{X: 5, Y: 5})
	rec.Reset()
	if err := r.Rotate(math.NaN(), vec.Vec2{}); err == nil {
		t.Error("NaN angle accepted")
	}
	if rec.Len() != 0 || r.State() != RotationActive || r.Angle() != 30 {
		t.Errorf("after invalid re-rotation: %q, %v, angle %g",
			rec.Tokens(), r.State(), r.Angle())
	}

	called := false
	err := r.RotatedDraw(math.NaN(), vec.Vec2{}, func() error {
		called = true
		return nil
	})
	if err == nil || called {
		t.Errorf("RotatedDraw with NaN angle: err=%v, called=%t", err, called)
	}
}

// TestRotationMatrixTokens checks that Matrix agrees with the "cm"
// operators written to the content stream.
func TestRotationMatrixTokens(t *testing.T) {
	for _, angle := range []float64{30, 90, -45, 180} {
		r, rec := newTestRotation()
		r.Rotate(angle, vec.Vec2{X: 12, Y: 34})

		ctm := matrix.Identity
		for _, tok := range rec.Tokens() {
			if !strings.HasSuffix(tok, " cm") {
				continue
			}
			var m matrix.Matrix
			for i, f := range strings.Fields(tok)[:6] {
				x, err := strconv.ParseFloat(f, 64)
				if err != nil {
					t.Fatal(err)
				}
				m[i] = x
			}
			ctm = m.Mul(ctm)
		}

		got := r.Matrix()
		for i := range got {
			if math.Abs(got[i]-ctm[i]) > 1e-2 {
				t.Errorf("angle %g: Matrix() = %v, content stream has %v", angle, got, ctm)
				break
			}
		}
	}
}
