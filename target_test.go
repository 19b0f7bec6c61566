package astroplan

import "testing"

func TestTargetAt(t *testing.T) {
	tgt := TargetAt(279.235, 38.784)
	if tgt.Name != "J2000 279.2350+38.7840" {
		t.Errorf("generated name = %q", tgt.Name)
	}
	south := TargetAt(10, -5.5)
	if south.Name != "J2000 10.0000-5.5000" {
		t.Errorf("generated name = %q", south.Name)
	}
}

func TestTargetKeyIdentity(t *testing.T) {
	a := NewFixedTarget("Vega", 279.235, 38.784)
	b := NewFixedTarget("Vega", 279.235, 38.784)
	if a.key() != b.key() {
		t.Error("equal targets have different cache identities")
	}

	renamed := NewFixedTarget("Not Vega", 279.235, 38.784)
	moved := NewFixedTarget("Vega", 279.236, 38.784)
	if a.key() == renamed.key() || a.key() == moved.key() {
		t.Error("distinct targets share a cache identity")
	}
}
