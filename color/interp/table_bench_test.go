package interp

import "testing"

func BenchmarkTableResample(b *testing.B) {
	x := make([]float64, 401)
	y := make([]float64, len(x))
	for i := range x {
		x[i] = 380 + float64(i)
		y[i] = float64(i % 17)
	}
	tab, err := NewTable(x, [][]float64{y, y, y})
	if err != nil {
		b.Fatal(err)
	}
	q := make([]float64, 1000)
	for i := range q {
		q[i] = 370 + 0.43*float64(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tab.Resample(q)
	}
}
