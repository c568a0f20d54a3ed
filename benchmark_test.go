package rast

import "testing"

// BenchmarkFillCircle benchmarks the full fill pipeline on a curved path.
func BenchmarkFillCircle(b *testing.B) {
	p := NewPath()
	p.Circle(128, 128, 100)
	img := NewPixmap(256, 256)
	paint := SolidPaint(Red)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FillPath(img, p, paint, Identity(), FillRuleNonZero)
	}
}

// BenchmarkFillRectExact benchmarks the non-antialiased exact path.
func BenchmarkFillRectExact(b *testing.B) {
	p := NewPath()
	p.Rect(16, 16, 224, 224)
	img := NewPixmap(256, 256)
	paint := SolidPaint(Red)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FillPath(img, p, paint, Identity(), FillRuleNonZero)
	}
}

// BenchmarkStrokeDashed benchmarks stroke expansion with dashes.
func BenchmarkStrokeDashed(b *testing.B) {
	p := NewPath()
	p.Circle(128, 128, 100)
	img := NewPixmap(256, 256)
	paint := SolidPaint(Red)
	s := DefaultStroke().WithWidth(4).WithDash(8, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		StrokePath(img, p, paint, Identity(), s)
	}
}

// BenchmarkFillMask benchmarks coverage output without color blending.
func BenchmarkFillMask(b *testing.B) {
	p := NewPath()
	p.Ellipse(128, 128, 110, 70)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FillMask(p, 256, 256, FillRuleNonZero)
	}
}

// BenchmarkParsePath benchmarks the textual path parser.
func BenchmarkParsePath(b *testing.B) {
	const text = "M10 10 C20 0 40 0 50 10 S80 20 90 10 Q95 5 100 10 T110 10 A5 5 0 0 1 120 10 Z"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParsePath(text); err != nil {
			b.Fatal(err)
		}
	}
}
