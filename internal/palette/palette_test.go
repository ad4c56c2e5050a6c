package palette

import "testing"

func TestColorForSignSplit(t *testing.T) {
	tests := []struct {
		value float64
		want  ColorToken
	}{
		{0.96, Gold},
		{0.0, Gold},
		{-0.09, Loss},
		{-100, Loss},
	}
	for _, tt := range tests {
		if got := ColorFor(tt.value, SignSplit); got != tt.want {
			t.Errorf("ColorFor(%v, SignSplit) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestColorsForKDA(t *testing.T) {
	values := []float64{18.05, 35.17, 50.96, 65.43, 82.69}
	want := []ColorToken{Loss, Loss, Accent, Accent, Accent}

	got := ColorsFor(values, HalfSplit)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestColorForBoundary(t *testing.T) {
	if got := ColorFor(50, HalfSplit); got != Accent {
		t.Errorf("50 should be at/above the cut, got %q", got)
	}
	if got := ColorFor(49.999, HalfSplit); got != Loss {
		t.Errorf("49.999 should be below the cut, got %q", got)
	}
}

func TestResolve(t *testing.T) {
	p := Default()
	if p.Resolve(Gold) != "#c8aa6e" {
		t.Errorf("gold = %q", p.Resolve(Gold))
	}
	if p.Resolve(Accent) != "#0ac8b9" {
		t.Errorf("accent = %q", p.Resolve(Accent))
	}
	if p.Resolve(Loss) != "#ff4e50" {
		t.Errorf("loss = %q", p.Resolve(Loss))
	}
	if p.Resolve(Success) != "#2ecc71" {
		t.Errorf("success = %q", p.Resolve(Success))
	}
	if p.Resolve("bogus") != p.Text {
		t.Errorf("unknown token should resolve to text color")
	}
}
