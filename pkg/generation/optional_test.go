package generation

import "testing"

func TestOptional(t *testing.T) {
	absent := None[string]()
	if absent.Present() {
		t.Error("None reports present")
	}
	if absent.OrNil() != nil {
		t.Errorf("None.OrNil() = %v, want nil", absent.OrNil())
	}

	set := Some("value")
	if !set.Present() {
		t.Error("Some reports absent")
	}
	v, ok := set.Get()
	if !ok || v != "value" {
		t.Errorf("Get() = %q, %v", v, ok)
	}
	if set.OrNil() != "value" {
		t.Errorf("OrNil() = %v", set.OrNil())
	}
}
