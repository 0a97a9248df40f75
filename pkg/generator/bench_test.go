package generator

import (
	"testing"
	"time"
)

func BenchmarkSynthesize(b *testing.B) {
	for _, d := range []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, time.Second} {
		b.Run(d.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Synthesize(DefaultFrequency, d, DefaultFormat()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSchedule(b *testing.B) {
	morse := "... --- ...     .- -... -.-.     ..--.. .-.-.-"
	for i := 0; i < b.N; i++ {
		Schedule(morse, DefaultProfile())
	}
}
