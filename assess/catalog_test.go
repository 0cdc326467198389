package assess

import (
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}
	if len(catalog.Categories) != 10 {
		t.Fatalf("catalog has %d categories, expected 10", len(catalog.Categories))
	}

	seen := make(map[string]bool)
	for _, cat := range catalog.Categories {
		if cat.MinCost <= 0 {
			t.Errorf("%s: min cost %d must be positive", cat.Name, cat.MinCost)
		}
		if cat.MaxCost < cat.MinCost {
			t.Errorf("%s: max cost %d below min cost %d", cat.Name, cat.MaxCost, cat.MinCost)
		}
		if cat.Description == "" || cat.Location == "" {
			t.Errorf("%s: missing description or location", cat.Name)
		}
		if seen[cat.Name] {
			t.Errorf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true
	}

	expected := map[string][2]int{
		"Front Bumper": {10000, 20000},
		"Rear Bumper":  {10000, 20000},
		"Left Door":    {15000, 30000},
		"Right Door":   {15000, 30000},
		"Hood":         {20000, 40000},
		"Trunk":        {18000, 35000},
		"Headlight":    {5000, 12000},
		"Taillight":    {5000, 12000},
		"Windshield":   {8000, 25000},
		"Side Mirror":  {3000, 8000},
	}
	for _, cat := range catalog.Categories {
		bounds, ok := expected[cat.Name]
		if !ok {
			t.Errorf("unexpected category %q", cat.Name)
			continue
		}
		if cat.MinCost != bounds[0] || cat.MaxCost != bounds[1] {
			t.Errorf("%s: cost range [%d, %d], expected [%d, %d]",
				cat.Name, cat.MinCost, cat.MaxCost, bounds[0], bounds[1])
		}
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount   int
		expected string
	}{
		{900, "₹900"},
		{2100, "₹2,100"},
		{15000, "₹15,000"},
		{23140, "₹23,140"},
		{60000, "₹60,000"},
	}

	for _, tt := range tests {
		if got := FormatINR(tt.amount); got != tt.expected {
			t.Errorf("FormatINR(%d) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}
