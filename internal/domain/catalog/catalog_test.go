package catalog

import "testing"

func TestIdentity(t *testing.T) {
	e := Entity{OwnerID: "p1", Name: "Red Shoes"}
	got := e.Identity()
	if got.OwnerID != "p1" || got.Name != "Red Shoes" {
		t.Errorf("Identity() = %+v", got)
	}
}

func TestIdentity_Unnamed(t *testing.T) {
	a := Entity{OwnerID: "p1"}
	b := Entity{OwnerID: "p1", Name: UnnamedEntity}
	if a.Identity() != b.Identity() {
		t.Errorf("blank name should collapse to %q: %+v vs %+v", UnnamedEntity, a.Identity(), b.Identity())
	}

	other := Entity{OwnerID: "p2"}
	if a.Identity() == other.Identity() {
		t.Error("identities of different owners must differ")
	}
}

func TestFields(t *testing.T) {
	e := Entity{Name: "n", Description: "d", Details: "x"}
	f := e.Fields()
	if f[0] != "n" || f[1] != "d" || f[2] != "x" {
		t.Errorf("Fields() = %v", f)
	}
}
