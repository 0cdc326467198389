package assess

import (
	"github.com/vahanscan/vahanscan/util/random"
)

// Severity grades how bad the simulated damage is.
type Severity string

const (
	Minor    Severity = "Minor"
	Moderate Severity = "Moderate"
	Severe   Severity = "Severe"
)

// Severities lists the grades drawn with equal probability.
var Severities = [...]Severity{Minor, Moderate, Severe}

// Apply scales the base cost by the severity multiplier. Multiplication
// happens before the integer division so the result is the floor of the
// scaled value: Minor x0.7, Moderate x1.0, Severe x1.5.
func (s Severity) Apply(base int) int {
	switch s {
	case Minor:
		return base * 7 / 10
	case Severe:
		return base * 3 / 2
	default:
		return base
	}
}

// Source yields uniform integers in [0, n). The default source draws from
// crypto/rand; tests inject a scripted source to pin the outcome.
type Source interface {
	IntN(n int) int
}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	return random.Num(n)
}

// Result is one simulated assessment before it is persisted.
type Result struct {
	Category      Category
	Severity      Severity
	BaseCost      int
	FinalCost     int
	FormattedCost string
}

// Generator produces simulated damage assessments. It has no side effects
// and touches no store; it is pure given its random source.
type Generator struct {
	catalog *Catalog
	src     Source
}

// NewGenerator builds a generator over the given catalog. A nil source
// selects the crypto/rand backed default.
func NewGenerator(catalog *Catalog, src Source) *Generator {
	if src == nil {
		src = cryptoSource{}
	}
	return &Generator{catalog: catalog, src: src}
}

// Generate draws a category, a severity and a base cost, each uniformly and
// independently, then applies the severity multiplier. No two calls are
// required to agree.
func (g *Generator) Generate() Result {
	category := g.catalog.Categories[g.src.IntN(len(g.catalog.Categories))]
	severity := Severities[g.src.IntN(len(Severities))]
	base := category.MinCost + g.src.IntN(category.MaxCost-category.MinCost+1)
	final := severity.Apply(base)

	return Result{
		Category:      category,
		Severity:      severity,
		BaseCost:      base,
		FinalCost:     final,
		FormattedCost: FormatINR(final),
	}
}
