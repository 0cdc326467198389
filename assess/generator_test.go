package assess

import (
	"testing"
)

// scriptedSource replays a fixed list of draws.
type scriptedSource struct {
	draws []int
	pos   int
}

func (s *scriptedSource) IntN(n int) int {
	if s.pos >= len(s.draws) {
		panic("scripted source exhausted")
	}
	d := s.draws[s.pos]
	s.pos++
	if d < 0 || d >= n {
		panic("scripted draw out of range")
	}
	return d
}

func TestSeverityApply(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		base     int
		expected int
	}{
		{"minor scales down", Minor, 10000, 7000},
		{"minor floors", Minor, 9999, 6999},
		{"minor floors odd", Minor, 5001, 3500},
		{"moderate passes through", Moderate, 10000, 10000},
		{"severe scales up", Severe, 10000, 15000},
		{"severe floors", Severe, 5001, 7501},
		{"severe on catalog minimum", Severe, 3000, 4500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.severity.Apply(tt.base)
			if got != tt.expected {
				t.Errorf("Apply(%d) = %d, expected %d", tt.base, got, tt.expected)
			}
		})
	}
}

func TestGenerateScripted(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}

	// Headlight (index 6, 5000-12000), Severe, base offset 5000 -> base 10000.
	src := &scriptedSource{draws: []int{6, 2, 5000}}
	gen := NewGenerator(catalog, src)

	result := gen.Generate()
	if result.Category.Name != "Headlight" {
		t.Errorf("category = %q, expected Headlight", result.Category.Name)
	}
	if result.Severity != Severe {
		t.Errorf("severity = %q, expected Severe", result.Severity)
	}
	if result.BaseCost != 10000 {
		t.Errorf("base cost = %d, expected 10000", result.BaseCost)
	}
	if result.FinalCost != 15000 {
		t.Errorf("final cost = %d, expected 15000", result.FinalCost)
	}
	if result.FormattedCost != "₹15,000" {
		t.Errorf("formatted cost = %q, expected ₹15,000", result.FormattedCost)
	}
}

func TestGenerateBounds(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}
	gen := NewGenerator(catalog, nil)

	severities := map[Severity]bool{Minor: true, Moderate: true, Severe: true}

	for i := 0; i < 500; i++ {
		result := gen.Generate()

		if !severities[result.Severity] {
			t.Fatalf("unexpected severity %q", result.Severity)
		}
		if result.BaseCost < result.Category.MinCost || result.BaseCost > result.Category.MaxCost {
			t.Fatalf("base cost %d outside [%d, %d] for %s",
				result.BaseCost, result.Category.MinCost, result.Category.MaxCost, result.Category.Name)
		}

		low := result.Category.MinCost * 7 / 10
		high := result.Category.MaxCost * 3 / 2
		if result.FinalCost < low || result.FinalCost > high {
			t.Fatalf("final cost %d outside [%d, %d] for %s",
				result.FinalCost, low, high, result.Category.Name)
		}
		if result.FinalCost != result.Severity.Apply(result.BaseCost) {
			t.Fatalf("final cost %d does not match %s multiplier on base %d",
				result.FinalCost, result.Severity, result.BaseCost)
		}
	}
}
