package hcube

import (
	"errors"
	"testing"
)

func TestRotateClockwiseConcrete(t *testing.T) {
	p := FromIndex(0b10)
	got := p.RotateClockwise()
	if got != FromIndex(0b100000) {
		t.Errorf("rotate 0b10 clockwise = %#b, want 0b100000", got.Index())
	}
}

func TestFlipConcrete(t *testing.T) {
	p := FromIndex(0b10)
	got := p.Flip()
	if got != FromIndex(0b1000000000000000) {
		t.Errorf("flip 0b10 = %#b, want bit 15", got.Index())
	}
}

func TestRotateClockwise4Times_ReturnsOriginal(t *testing.T) {
	for n := 0; n < RawPieceCount; n++ {
		p := FromIndex(uint16(n))
		q := p.RotateClockwise().RotateClockwise().RotateClockwise().RotateClockwise()
		if q != p {
			t.Fatalf("4 clockwise turns of %d gave %d", n, q.Index())
		}
	}
}

func TestRotateCounterClockwiseIsInverse(t *testing.T) {
	for n := 0; n < RawPieceCount; n++ {
		p := FromIndex(uint16(n))
		if got := p.RotateClockwise().RotateCounterClockwise(); got != p {
			t.Fatalf("CW then CCW of %d gave %d", n, got.Index())
		}
		if got := p.RotateCounterClockwise().RotateClockwise(); got != p {
			t.Fatalf("CCW then CW of %d gave %d", n, got.Index())
		}
	}
}

func TestFlipTwice_ReturnsOriginal(t *testing.T) {
	for n := 0; n < RawPieceCount; n++ {
		p := FromIndex(uint16(n))
		if got := p.Flip().Flip(); got != p {
			t.Fatalf("flip flip of %d gave %d", n, got.Index())
		}
	}
}

func TestOperationsDoNotMutate(t *testing.T) {
	p := FromIndex(0x1234)
	_ = p.RotateClockwise()
	_ = p.RotateCounterClockwise()
	_ = p.Flip()
	_ = p.Transform(FlipRot270)
	if p.Index() != 0x1234 {
		t.Errorf("receiver changed to %#x", p.Index())
	}
}

func TestTransformMatchesNamedOperations(t *testing.T) {
	for n := 0; n < RawPieceCount; n += 37 {
		p := FromIndex(uint16(n))
		if p.Transform(Identity) != p {
			t.Errorf("identity moved %d", n)
		}
		if p.Transform(Rot90) != p.RotateClockwise() {
			t.Errorf("rot90 != RotateClockwise for %d", n)
		}
		if p.Transform(Rot270) != p.RotateCounterClockwise() {
			t.Errorf("rot270 != RotateCounterClockwise for %d", n)
		}
		if p.Transform(Flip) != p.Flip() {
			t.Errorf("flip symmetry != Flip for %d", n)
		}
		if p.Transform(FlipRot90) != p.Flip().RotateClockwise() {
			t.Errorf("flip+rot90 should flip first for %d", n)
		}
	}
}

func TestHasAndSize(t *testing.T) {
	p := FromIndex(0b1000_0000_0010_0001)
	for _, pos := range []int{0, 5, 15} {
		if !p.Has(pos) {
			t.Errorf("expected position %d to be set", pos)
		}
	}
	if p.Has(1) || p.Has(-1) || p.Has(16) {
		t.Error("unexpected set position")
	}
	if p.Size() != 3 {
		t.Errorf("Size = %d, want 3", p.Size())
	}
}

func TestOrbitAndStabilizer(t *testing.T) {
	tests := []struct {
		index     uint16
		orbitSize int
	}{
		{0x0000, 1},
		{0xFFFF, 1},
		{0x1111, 1}, // the four corners
		{0x0101, 2}, // two opposite corners on the mirror axis
		{0x0001, 4},
		{0x0003, 8},
	}
	for _, tt := range tests {
		p := FromIndex(tt.index)
		orbit := p.Orbit()
		if len(orbit) != tt.orbitSize {
			t.Errorf("orbit of %#04x has %d members, want %d", tt.index, len(orbit), tt.orbitSize)
		}
		if got := len(orbit) * len(p.Stabilizer()); got != SymmetryCount {
			t.Errorf("orbit-stabilizer product for %#04x = %d", tt.index, got)
		}
	}
}

func TestOrbitIsSortedAndContainsPiece(t *testing.T) {
	for n := 0; n < RawPieceCount; n += 101 {
		p := FromIndex(uint16(n))
		orbit := p.Orbit()
		found := false
		for i, q := range orbit {
			if q == p {
				found = true
			}
			if i > 0 && orbit[i-1].Index() >= q.Index() {
				t.Fatalf("orbit of %d not strictly ascending", n)
			}
		}
		if !found {
			t.Fatalf("orbit of %d does not contain it", n)
		}
		if orbit[0] != p.Canonical() {
			t.Fatalf("canonical of %d is %d, orbit min %d", n, p.Canonical().Index(), orbit[0].Index())
		}
	}
}

func TestCanonicalIsSharedAcrossOrbit(t *testing.T) {
	for n := 0; n < RawPieceCount; n++ {
		p := FromIndex(uint16(n))
		c := p.Canonical()
		for _, s := range Symmetries() {
			if got := p.Transform(s).Canonical(); got != c {
				t.Fatalf("%v of %d has canonical %d, want %d", s, n, got.Index(), c.Index())
			}
		}
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
	}{
		{"0", 0},
		{"65535", 65535},
		{"0x8000", 0x8000},
		{"0b10", 2},
		{" 42 ", 42},
		{"0o17", 15},
	}
	for _, tt := range tests {
		p, err := ParseIndex(tt.in)
		if err != nil {
			t.Errorf("ParseIndex(%q) error: %v", tt.in, err)
			continue
		}
		if p.Index() != tt.want {
			t.Errorf("ParseIndex(%q) = %d, want %d", tt.in, p.Index(), tt.want)
		}
	}

	for _, in := range []string{"", "65536", "-1", "abc", "0x1FFFF"} {
		if _, err := ParseIndex(in); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("ParseIndex(%q) error = %v, want ErrInvalidIndex", in, err)
		}
	}
}

func TestString(t *testing.T) {
	p := FromIndex(0b1000_0000_0010_0001)
	want := "# . . . .\n" +
		"#       #\n" +
		".       .\n" +
		".       .\n" +
		". . . . ."
	if got := p.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestSymmetriesReturnsCopy(t *testing.T) {
	s := Symmetries()
	s[0] = Rot180
	if Symmetries()[0] != Identity {
		t.Error("Symmetries exposed internal state")
	}
}

func TestNewSymmetry(t *testing.T) {
	p := FromIndex(0b10)
	if p.Transform(NewSymmetry(false, 1)) != p.RotateClockwise() {
		t.Error("one quarter turn should match RotateClockwise")
	}
	if p.Transform(NewSymmetry(false, -1)) != p.RotateCounterClockwise() {
		t.Error("negative turn should match RotateCounterClockwise")
	}
	if p.Transform(NewSymmetry(true, 2)) != p.Flip().RotateClockwise().RotateClockwise() {
		t.Error("flip should be applied before rotating")
	}
}
