package nxncube

import (
	"testing"
)

func cubesEqual(a, b *Cube) bool {
	if a.Size() != b.Size() {
		return false
	}
	n := a.Size()
	for _, f := range AllFaces {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				if a.ColorAt(f, r, c) != b.ColorAt(f, r, c) {
					return false
				}
			}
		}
	}
	return true
}

func TestNewCubeIsSolved(t *testing.T) {
	for n := 2; n <= 7; n++ {
		c := NewCube(n)
		if !c.IsSolved() {
			t.Errorf("new %dx%d cube should be solved", n, n)
		}
		if !c.CentersReduced() {
			t.Errorf("new %dx%d cube should have reduced centers", n, n)
		}
	}
}

func TestFaceTurnPeriodFour(t *testing.T) {
	for n := 2; n <= 7; n++ {
		for _, f := range AllFaces {
			c := NewCube(n)
			for i := 0; i < 4; i++ {
				c.Apply(NewFaceTurn(f, 1))
			}
			if !c.IsSolved() {
				t.Errorf("%s x 4 on %dx%d should return to solved", f, n, n)
				t.Log(c.String())
			}
		}
	}
}

func TestSliceTurnPeriodFour(t *testing.T) {
	for n := 4; n <= 7; n++ {
		for _, s := range []SliceName{SliceM, SliceE, SliceS} {
			for i := 1; i <= n-2; i++ {
				c := NewCube(n)
				for k := 0; k < 4; k++ {
					c.Apply(NewSliceTurn(s, i, 1))
				}
				if !c.IsSolved() {
					t.Errorf("%d%s x 4 on %dx%d should return to solved", i, s, n, n)
					t.Log(c.String())
				}
			}
		}
	}
}

func TestCubeRotationPeriodFour(t *testing.T) {
	for n := 2; n <= 7; n++ {
		for _, a := range []Axis{AxisX, AxisY, AxisZ} {
			c := NewCube(n)
			for i := 0; i < 4; i++ {
				c.Apply(NewCubeRotation(a, 1))
			}
			if !c.IsSolved() {
				t.Errorf("%s x 4 on %dx%d should return to solved", a, n, n)
			}
		}
	}
}

func TestCubeRotationKeepsSolved(t *testing.T) {
	c := NewCube(5)
	c.Apply(X)
	c.Apply(Y)
	c.Apply(Z)
	if !c.IsSolved() {
		t.Error("whole-cube rotations should keep a solved cube solved")
	}
}

func TestHalfTurnTwiceIsIdentity(t *testing.T) {
	c := NewCube(5)
	c.Apply(R2)
	c.Apply(R2)
	if !c.IsSolved() {
		t.Error("R2 R2 should return to solved")
	}
}

func TestSexyMoveSixTimes(t *testing.T) {
	c := NewCube(4)
	alg, err := ParseAlg("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 6; i++ {
		c.ApplyAlg(alg)
	}
	if !c.IsSolved() {
		t.Error("(R U R' U') x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestScrambleInverseRestoresSolved(t *testing.T) {
	for n := 2; n <= 7; n++ {
		c := NewCube(n)
		alg := Scramble(n, 99, 50)
		c.ApplyAlg(alg)
		c.ApplyAlg(alg.Inverse())
		if !c.IsSolved() {
			t.Errorf("scramble + inverse on %dx%d should return to solved", n, n)
		}
	}
}

func TestColorCountsInvariant(t *testing.T) {
	for n := 3; n <= 6; n++ {
		c := NewCube(n)
		want := c.ColorCounts()
		c.ApplyAlg(Scramble(n, 7, 80))
		got := c.ColorCounts()
		for _, color := range AllColors {
			if got[color] != want[color] {
				t.Errorf("%dx%d: %s count changed %d -> %d", n, n, color, want[color], got[color])
			}
			if want[color] != n*n {
				t.Errorf("%dx%d: expected %d stickers of %s, got %d", n, n, n*n, color, want[color])
			}
		}
	}
}

func TestModCountPerMove(t *testing.T) {
	c := NewCube(4)
	before := c.ModCount()
	c.Apply(R)
	c.Apply(NewSliceTurn(SliceM, 1, -1))
	c.Apply(X2)
	if c.ModCount() != before+3 {
		t.Errorf("expected mod count %d, got %d", before+3, c.ModCount())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewCube(4)
	c.ApplyAlg(Scramble(4, 3, 20))
	clone := c.Clone()
	if !cubesEqual(c, clone) {
		t.Fatal("clone should equal original")
	}
	clone.Apply(R)
	if cubesEqual(c, clone) {
		t.Error("mutating the clone should not affect the original")
	}
}

func TestCloneCopiesTags(t *testing.T) {
	c := NewCube(4)
	c.CenterSticker(FaceU, Coord{0, 0}).SetTag(TagProbe, "p")
	clone := c.Clone()
	if v, ok := clone.CenterSticker(FaceU, Coord{0, 0}).Tag(TagProbe); !ok || v != "p" {
		t.Error("clone should carry sticker tags")
	}
	clone.CenterSticker(FaceU, Coord{0, 0}).ClearTag(TagProbe)
	if _, ok := c.CenterSticker(FaceU, Coord{0, 0}).Tag(TagProbe); !ok {
		t.Error("clearing a tag on the clone should not affect the original")
	}
}

func TestTagsTravelWithSticker(t *testing.T) {
	c := NewCube(5)
	c.CenterSticker(FaceF, Coord{0, 0}).SetTag(TagProbe, "x")
	c.Apply(NewFaceTurn(FaceF, 1))
	found := 0
	for _, f := range AllFaces {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				if v, ok := c.CenterSticker(f, Coord{r, col}).Tag(TagProbe); ok && v == "x" {
					found++
					if f != FaceF {
						t.Errorf("tag left face F, found on %s", f)
					}
				}
			}
		}
	}
	if found != 1 {
		t.Errorf("expected exactly one tagged sticker, found %d", found)
	}
}

func TestCenterMonochrome(t *testing.T) {
	c := NewCube(5)
	if color, ok := c.CenterMonochrome(FaceF); !ok || color != Green {
		t.Errorf("solved F center should be monochrome green, got %s %v", color, ok)
	}
	c.Apply(NewSliceTurn(SliceM, 1, 1))
	if _, ok := c.CenterMonochrome(FaceF); ok {
		t.Error("F center should not be monochrome after an M turn")
	}
}

func TestMiddleColorFixedOnOddCube(t *testing.T) {
	c := NewCube(5)
	c.ApplyAlg(Scramble(5, 11, 100))
	// Middles move between faces but the set of middle colors is fixed.
	seen := make(map[Color]bool)
	for _, f := range AllFaces {
		seen[c.MiddleColor(f)] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 distinct middle colors, got %d", len(seen))
	}
}

func TestEdgeAndCornerDescriptors(t *testing.T) {
	c := NewCube(5)
	if len(c.Edges()) != 12 {
		t.Fatalf("expected 12 edges, got %d", len(c.Edges()))
	}
	if len(c.Corners()) != 8 {
		t.Fatalf("expected 8 corners, got %d", len(c.Corners()))
	}
	// On a solved cube every wing shows the solved colors of its two faces.
	for _, e := range c.Edges() {
		for w := 0; w < e.Wings(c.Size()); w++ {
			got := c.EdgeWingColors(e, w)
			want := [2]Color{SolvedColor(e.A.Face), SolvedColor(e.B.Face)}
			if got != want {
				t.Errorf("edge %s wing %d: got %v want %v", e.Name, w, got, want)
			}
		}
	}
	for _, cr := range c.Corners() {
		got := c.CornerColors(cr)
		for i, cell := range cr.Cells {
			if got[i] != SolvedColor(cell.Face) {
				t.Errorf("corner %s sticker %d: got %s want %s", cr.Name, i, got[i], SolvedColor(cell.Face))
			}
		}
	}
}

func TestEdgePiecesStayPaired(t *testing.T) {
	// Wherever a wing travels, its two sticker cells always address one
	// physical piece: the pair of colors must always be a valid edge pair
	// (two non-opposite colors).
	c := NewCube(5)
	c.ApplyAlg(Scramble(5, 23, 120))
	for _, e := range c.Edges() {
		for w := 0; w < e.Wings(c.Size()); w++ {
			got := c.EdgeWingColors(e, w)
			if got[0] == got[1] {
				t.Errorf("edge %s wing %d shows the same color twice: %v", e.Name, w, got)
			}
			if OppositeColor(got[0]) == got[1] {
				t.Errorf("edge %s wing %d shows opposite colors: %v", e.Name, w, got)
			}
		}
	}
}
