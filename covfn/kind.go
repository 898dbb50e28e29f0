// SPDX-License-Identifier: MIT

package covfn

import (
	"fmt"
	"strings"
)

// Kind selects the point correlation function.
type Kind int

const (
	// Markov is the anisotropic exponential ρ = exp(−2·√((τx/θx)² + (τy/θy)²)).
	Markov Kind = iota
	// MarkovSeparable is ρ = exp(−2|τx|/θx)·exp(−2|τy|/θy).
	MarkovSeparable
	// Gaussian is ρ = exp(−π(τx/θx)²)·exp(−π(τy/θy)²).
	Gaussian
)

var kindNames = [...]string{
	Markov:          "markov",
	MarkovSeparable: "markov-separable",
	Gaussian:        "gaussian",
}

// String returns the selector name accepted by ParseKind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Separable reports whether ρ factors into 1-D correlations.
func (k Kind) Separable() bool { return k == MarkovSeparable || k == Gaussian }

// ParseKind maps a case-insensitive selector name to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}
