package xrand

import (
	"math"
	"testing"
)

func TestInt64Distribution(t *testing.T) {
	for _, tt := range []struct {
		n       int
		epsilon float64
	}{
		{1000000, 0.012},
		{100000, 0.035},
		{10000, 0.14},
	} {
		var (
			bucketsLen = 10
			exp        = tt.n / bucketsLen
			min        = exp - int(float64(exp)*tt.epsilon)
			max        = exp + int(float64(exp)*tt.epsilon)
			buckets    = make([]int, bucketsLen)
			r          = New(WithSeed(42))
		)
		for i := 0; i < tt.n; i++ {
			buckets[r.Int64(int64(bucketsLen))]++
		}
		for i, v := range buckets {
			if v < min || v > max {
				t.Errorf("%+v: buckets[%d] = %d (delta = %f)", tt, i, v, math.Abs(float64(exp-v))/float64(exp))
			}
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := New(WithSeed(7), WithLock())
	b := New(WithSeed(7))
	for i := 0; i < 100; i++ {
		if x, y := a.Int(1000), b.Int(1000); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}
