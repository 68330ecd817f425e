package ecc

import (
	"context"
	"testing"
)

func BenchmarkFieldMul(b *testing.B) {
	x := fe(b, 0xdeadbeefcafebabe, largestPrime64)
	y := fe(b, 0x0123456789abcdef, largestPrime64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Mul(y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFieldDiv(b *testing.B) {
	x := fe(b, 0xdeadbeefcafebabe, largestPrime64)
	y := fe(b, 0x0123456789abcdef, largestPrime64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Div(y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScalarMul(b *testing.B) {
	b.Run("p223", func(b *testing.B) {
		p := newCurve(b, 0, 7, prime223).pt(b, 47, 71)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := p.ScalarMul(20); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("p64", func(b *testing.B) {
		p := newCurve(b, 0, 1, largestPrime64).pt(b, 2, 3)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := p.ScalarMul(1<<64 - 1); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkScalarMulBatch(b *testing.B) {
	c := newCurve(b, 0, 7, prime223)
	points := make([]Point, 64)
	coefficients := make([]uint64, 64)
	for i := range points {
		points[i] = c.pt(b, 47, 71)
		coefficients[i] = uint64(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ScalarMulBatch(context.Background(), points, coefficients); err != nil {
			b.Fatal(err)
		}
	}
}
