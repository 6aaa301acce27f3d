package dividend

import "testing"

func TestMoneyArithmetic(t *testing.T) {
	a := M(100.5, "TWD")
	b := M(49.5, "TWD")

	if got := a.Add(b).InexactFloat64(); got != 150 {
		t.Errorf("Add = %v, want 150", got)
	}
	if got := a.Sub(b).InexactFloat64(); got != 51 {
		t.Errorf("Sub = %v, want 51", got)
	}
	if got := M(1.5, "TWD").Mul(Q(1000)).InexactFloat64(); got != 1500 {
		t.Errorf("Mul = %v, want 1500", got)
	}
	if got := M(2050, "TWD").Div(Q(6)).InexactFloat64(); got < 341.66 || got > 341.67 {
		t.Errorf("Div = %v, want about 341.67", got)
	}
}

func TestMoneyDisplay(t *testing.T) {
	if got := M(2050, "TWD").Display(); got != "NT$ 2,050.00" {
		t.Errorf("Display = %q, want NT$ 2,050.00", got)
	}
	if got := M(25, "USD").Display(); got != "US$ 25.00" {
		t.Errorf("Display = %q, want US$ 25.00", got)
	}
}

func TestQuantityComparisons(t *testing.T) {
	if !Q(5).GreaterThan(Q(3)) || Q(3).GreaterThan(Q(5)) {
		t.Error("GreaterThan is wrong")
	}
	if !Q(0).IsZero() || Q(1).IsZero() {
		t.Error("IsZero is wrong")
	}
	if !Q(-1).IsNegative() || Q(-1).IsPositive() {
		t.Error("sign checks are wrong")
	}
	if got := Q(2).Min(Q(7)); got.InexactFloat64() != 2 {
		t.Errorf("Min = %v, want 2", got)
	}
}
