package chain

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/subnetstack/anchor/types"
)

// Chain is the deployment configuration of the anchor contract. The
// operator set is fixed here for the lifetime of the deployment; rotating
// operators requires a new deployment.
type Chain struct {
	Name string

	// Operators is the fixed set of principals allowed to commit subnet
	// blocks and drive peg acknowledgments and approvals
	Operators []types.Address

	// Premine seeds initial layer-1 account balances
	Premine []PremineAccount
}

// PremineAccount is an account seeded with a balance at deployment
type PremineAccount struct {
	Address types.Address
	Balance uint64
}

type chainYAML struct {
	Name      string   `yaml:"name"`
	Operators []string `yaml:"operators"`
	Premine   []struct {
		Address string `yaml:"address"`
		Balance uint64 `yaml:"balance"`
	} `yaml:"premine,omitempty"`
}

// ImportFromFile imports a chain configuration from a yaml file
func ImportFromFile(filename string) (*Chain, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return importChain(data)
}

func importChain(content []byte) (*Chain, error) {
	raw := &chainYAML{}
	if err := yaml.Unmarshal(content, raw); err != nil {
		return nil, fmt.Errorf("failed to parse chain config: %w", err)
	}

	var errs error

	chain := &Chain{Name: raw.Name}

	for _, op := range raw.Operators {
		addr, err := types.ParseAddress(op)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("invalid operator address %q: %w", op, err))

			continue
		}

		chain.Operators = append(chain.Operators, addr)
	}

	for _, acc := range raw.Premine {
		addr, err := types.ParseAddress(acc.Address)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("invalid premine address %q: %w", acc.Address, err))

			continue
		}

		chain.Premine = append(chain.Premine, PremineAccount{
			Address: addr,
			Balance: acc.Balance,
		})
	}

	if err := chain.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}

	if errs != nil {
		return nil, errs
	}

	return chain, nil
}

// Validate checks the configuration invariants, collecting every violation
func (c *Chain) Validate() error {
	var errs error

	if len(c.Operators) == 0 {
		errs = multierror.Append(errs, errors.New("operator set must not be empty"))
	}

	seen := map[types.Address]struct{}{}

	for _, op := range c.Operators {
		if op == types.ZeroAddress {
			errs = multierror.Append(errs, errors.New("operator address must not be zero"))

			continue
		}

		if op == types.AnchorContract {
			errs = multierror.Append(errs,
				fmt.Errorf("operator %s is the reserved contract address", op))

			continue
		}

		if _, ok := seen[op]; ok {
			errs = multierror.Append(errs, fmt.Errorf("duplicate operator %s", op))
		}

		seen[op] = struct{}{}
	}

	for _, acc := range c.Premine {
		if acc.Address == types.ZeroAddress {
			errs = multierror.Append(errs, errors.New("premine address must not be zero"))
		}

		if acc.Address == types.AnchorContract {
			errs = multierror.Append(errs, errors.New("cannot premine the reserved contract address"))
		}
	}

	return errs
}
