package covering_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/katalvlaran/lvlopt/coverage"
	"github.com/katalvlaran/lvlopt/covering"
	"github.com/katalvlaran/lvlopt/linprog"
)

// benchStore builds a synthetic instance with nd demand units and nf
// facilities of one type, each demand covered by a small rolling window of
// facilities. Strength 1 keeps the store valid for binary models.
func benchStore(b *testing.B, kind coverage.Kind, nd, nf int) *coverage.Store {
	b.Helper()
	s := coverage.NewStore(kind)
	for f := 0; f < nf; f++ {
		if err := s.AddFacility("Fire", fmt.Sprintf("F%04d", f), nil); err != nil {
			b.Fatalf("AddFacility failed: %v", err)
		}
	}
	strength := 1.0
	if kind == coverage.Partial {
		strength = 0.5
	}
	for d := 0; d < nd; d++ {
		id := fmt.Sprintf("D%04d", d)
		if err := s.AddDemand(id, float64(1+d%97)); err != nil {
			b.Fatalf("AddDemand failed: %v", err)
		}
		for k := 0; k < 5; k++ {
			fid := fmt.Sprintf("F%04d", (d+k)%nf)
			if err := s.SetCoverage(id, "Fire", fid, strength); err != nil {
				b.Fatalf("SetCoverage failed: %v", err)
			}
		}
	}

	return s
}

// BenchmarkMCLP_Small measures model construction on 100 demands, 20 sites.
func BenchmarkMCLP_Small(b *testing.B) {
	s := benchStore(b, coverage.Binary, 100, 20)
	limits := covering.FacilityLimits{Total: 5}
	opts := covering.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := covering.MCLP(s, limits, opts); err != nil {
			b.Fatalf("MCLP failed: %v", err)
		}
	}
}

// BenchmarkMCLP_Medium measures model construction on 2000 demands, 200 sites.
func BenchmarkMCLP_Medium(b *testing.B) {
	s := benchStore(b, coverage.Binary, 2000, 200)
	limits := covering.FacilityLimits{Total: 20}
	opts := covering.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := covering.MCLP(s, limits, opts); err != nil {
			b.Fatalf("MCLP failed: %v", err)
		}
	}
}

// BenchmarkBCLPCC_Medium measures the heaviest per-demand builder, which adds
// five chained rows per unit.
func BenchmarkBCLPCC_Medium(b *testing.B) {
	s := benchStore(b, coverage.Partial, 2000, 200)
	limits := covering.FacilityLimits{Total: 20}
	opts := covering.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := covering.BCLPCC(s, limits, 0.5, opts); err != nil {
			b.Fatalf("BCLPCC failed: %v", err)
		}
	}
}

// BenchmarkWrite_Medium measures LP emission of a built medium model.
func BenchmarkWrite_Medium(b *testing.B) {
	s := benchStore(b, coverage.Binary, 2000, 200)
	p, err := covering.MCLP(s, covering.FacilityLimits{Total: 20}, covering.DefaultOptions())
	if err != nil {
		b.Fatalf("MCLP failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := linprog.Write(io.Discard, p); err != nil {
			b.Fatalf("Write failed: %v", err)
		}
	}
}
