package valuation

import "testing"

func fp(v float64) *float64 { return &v }

func TestMovingAverageKeepsLength(t *testing.T) {
	for _, n := range []int{0, 1, 5, 59, 60, 250} {
		prices := make([]*float64, n)
		for i := range prices {
			prices[i] = fp(float64(i + 1))
		}
		out := ComputeMovingAverage(prices, ShortWindow)
		if len(out) != n {
			t.Fatalf("n=%d: got length %d", n, len(out))
		}
	}
}

func TestMovingAverageEarlyPassthrough(t *testing.T) {
	prices := []*float64{fp(10), nil, fp(30)}
	out := ComputeMovingAverage(prices, 5)
	if out[0] != 10 {
		t.Fatalf("index 0: got %v, want raw price", out[0])
	}
	if out[1] != 0 {
		t.Fatalf("index 1: got %v, want 0 for absent price", out[1])
	}
	if out[2] != 30 {
		t.Fatalf("index 2: got %v, want raw price", out[2])
	}
}

func TestMovingAverageSkipsAbsentValues(t *testing.T) {
	// window 3 over [nil nil 10 12 14]
	prices := []*float64{nil, nil, fp(10), fp(12), fp(14)}
	out := ComputeMovingAverage(prices, 3)

	if out[2] != 10 {
		t.Fatalf("index 2: got %v, want 10 (only present value in window)", out[2])
	}
	if out[3] != 11 {
		t.Fatalf("index 3: got %v, want 11 (mean of 10,12)", out[3])
	}
	if out[4] != 12 {
		t.Fatalf("index 4: got %v, want 12 (mean of 10,12,14)", out[4])
	}
}

func TestMovingAverageFullWindowMean(t *testing.T) {
	prices := []*float64{fp(1), fp(2), fp(3), fp(4), fp(5), fp(6)}
	out := ComputeMovingAverage(prices, 3)
	want := []float64{1, 2, 2, 3, 4, 5}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, out[i], want[i])
		}
	}
}

func TestMovingAverageAllAbsentWindow(t *testing.T) {
	prices := []*float64{nil, nil, nil, nil}
	out := ComputeMovingAverage(prices, 3)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("index %d: got %v, want 0", i, v)
		}
	}
}

func TestMovingAverageEmptyInput(t *testing.T) {
	out := ComputeMovingAverage(nil, LongWindow)
	if len(out) != 0 {
		t.Fatalf("got length %d, want 0", len(out))
	}
}
