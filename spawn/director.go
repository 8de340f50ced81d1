package spawn

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Obstacle variants a director may choose.
const (
	VariantSingle = "single"
	VariantDouble = "double"
	VariantMoving = "moving"
)

const directorDispatchScript = `
__variant = choose(__roll_a, __roll_b)
`

// Director picks the obstacle variant for each spawn. Levels may supply a
// tengo script defining `choose := func(roll_a, roll_b) { ... }`, which is
// called with two uniform rolls in [0, 1) and returns a variant name.
type Director struct {
	name     string
	compiled *tengo.Compiled
}

// NewDirector compiles src. An empty source yields a director that always
// answers VariantSingle.
func NewDirector(name string, src []byte) (*Director, error) {
	d := &Director{name: name}
	if strings.TrimSpace(string(src)) == "" {
		return d, nil
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + directorDispatchScript))
	_ = script.Add("__roll_a", 0.0)
	_ = script.Add("__roll_b", 0.0)
	_ = script.Add("__variant", VariantSingle)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawn: compile director %s: %w", name, err)
	}
	d.compiled = compiled
	return d, nil
}

// Choose draws two rolls from r and returns the scripted variant. Script
// failures and unknown answers fall back to VariantSingle.
func (d *Director) Choose(r Rand) string {
	rollA := r.Float64()
	rollB := r.Float64()
	if d == nil || d.compiled == nil {
		return VariantSingle
	}

	variant, err := d.run(rollA, rollB)
	if err != nil {
		log.Printf("spawn: director %s: %v", d.name, err)
		return VariantSingle
	}
	switch variant {
	case VariantSingle, VariantDouble, VariantMoving:
		return variant
	default:
		log.Printf("spawn: director %s: unknown variant %q", d.name, variant)
		return VariantSingle
	}
}

func (d *Director) run(rollA, rollB float64) (string, error) {
	if err := d.compiled.Set("__roll_a", rollA); err != nil {
		return "", err
	}
	if err := d.compiled.Set("__roll_b", rollB); err != nil {
		return "", err
	}
	if err := d.compiled.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(d.compiled.Get("__variant").String()), nil
}
