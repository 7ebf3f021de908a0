package core

import "testing"

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	if a.IsEmpty() || b.IsEmpty() {
		t.Fatal("new IDs must not be empty")
	}
	if a == b {
		t.Error("consecutive IDs must differ")
	}
	if len(a.String()) != 36 {
		t.Errorf("expected UUID string form, got %q", a.String())
	}
}

func TestConfigID(t *testing.T) {
	id := ConfigID(NewID())
	if id.String() == "" {
		t.Error("config id must round-trip through String")
	}
}
