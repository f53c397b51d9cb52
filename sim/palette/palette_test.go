package palette

import (
	"testing"

	"orrery/sim/orbitgl"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		key  orbitgl.ColorKey
		want orbitgl.Color
	}{
		{"#FFFF00", orbitgl.RGB(0xFF, 0xFF, 0x00)},
		{"#deb887", orbitgl.RGB(0xDE, 0xB8, 0x87)},
		{"#0f0", orbitgl.RGB(0x00, 0xFF, 0x00)},
		{"burlywood", orbitgl.RGB(0xDE, 0xB8, 0x87)},
		{" DarkBlue ", orbitgl.RGB(0x00, 0x00, 0x8B)},
	}
	for _, tt := range tests {
		got, err := Lookup(tt.key)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.key, err)
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestResolveFallback(t *testing.T) {
	p := New()
	if got := p.Resolve("not-a-colour"); got != p.Fallback {
		t.Fatalf("Resolve(bad) = %v, want fallback %v", got, p.Fallback)
	}
	if _, err := Lookup("not-a-colour"); err == nil {
		t.Fatal("Lookup(bad) err = nil, want error")
	}
}

func TestReferenceKeysResolve(t *testing.T) {
	if _, err := Lookup(orbitgl.ReferenceCentral.Color); err != nil {
		t.Fatalf("central colour: %v", err)
	}
	for _, b := range orbitgl.ReferenceBodies() {
		if _, err := Lookup(b.Color); err != nil {
			t.Fatalf("%s colour: %v", b.Name, err)
		}
	}
}

func TestBlend(t *testing.T) {
	black := orbitgl.RGB(0, 0, 0)
	if got := Blend(orbitgl.RGB(10, 20, 30), black); got != orbitgl.RGB(10, 20, 30) {
		t.Fatalf("Blend(opaque) = %v, want unchanged", got)
	}
	if got := Blend(orbitgl.RGBA(200, 200, 200, 0), black); got != black {
		t.Fatalf("Blend(transparent) = %v, want background", got)
	}
	got := Blend(orbitgl.RGBA(100, 100, 100, 100), black)
	if got.A != 0xFF || got.R < 38 || got.R > 40 || got.R != got.G || got.G != got.B {
		t.Fatalf("Blend(ring over black) = %v, want opaque grey near 39", got)
	}
}
