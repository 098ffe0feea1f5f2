package submission

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/soundness/internal/errors"
)

// ProvingSystem identifies the prover that produced a proof.
// It implements pflag.Value so it can be bound directly to a flag.
type ProvingSystem string

const (
	SP1      ProvingSystem = "sp1"
	Circom   ProvingSystem = "circom"
	RISC0    ProvingSystem = "risc0"
	Starknet ProvingSystem = "starknet"
)

// DefaultProvingSystem is used when none is given.
const DefaultProvingSystem = SP1

// ProvingSystems lists every supported proving system.
var ProvingSystems = []ProvingSystem{SP1, Circom, RISC0, Starknet}

// ParseProvingSystem matches s case-insensitively against the supported systems.
func ParseProvingSystem(s string) (ProvingSystem, error) {
	candidate := ProvingSystem(strings.ToLower(strings.TrimSpace(s)))
	for _, ps := range ProvingSystems {
		if candidate == ps {
			return ps, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of %s)", kerrors.ErrInvalidProvingSystem, s, provingSystemList())
}

// String implements pflag.Value.
func (p *ProvingSystem) String() string {
	if p == nil || *p == "" {
		return string(DefaultProvingSystem)
	}
	return string(*p)
}

// Set implements pflag.Value.
func (p *ProvingSystem) Set(s string) error {
	parsed, err := ParseProvingSystem(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type implements pflag.Value.
func (p *ProvingSystem) Type() string {
	return "proving-system"
}

func provingSystemList() string {
	names := make([]string, len(ProvingSystems))
	for i, ps := range ProvingSystems {
		names[i] = string(ps)
	}
	return strings.Join(names, ", ")
}
