package anchor

import (
	"github.com/subnetstack/anchor/types"
)

// OperatorSet is the fixed set of principals authorized to commit subnet
// blocks and drive peg acknowledgments and approvals. The set is immutable
// once constructed; membership changes require a new deployment.
type OperatorSet struct {
	members map[types.Address]struct{}
	order   []types.Address
}

// NewOperatorSet constructs the registry from the deployment configuration
func NewOperatorSet(operators []types.Address) OperatorSet {
	members := make(map[types.Address]struct{}, len(operators))
	order := make([]types.Address, 0, len(operators))

	for _, op := range operators {
		if _, ok := members[op]; ok {
			continue
		}

		members[op] = struct{}{}
		order = append(order, op)
	}

	return OperatorSet{
		members: members,
		order:   order,
	}
}

// IsOperator checks set membership for the given principal
func (o OperatorSet) IsOperator(addr types.Address) bool {
	_, ok := o.members[addr]

	return ok
}

// Len returns the cardinality of the set
func (o OperatorSet) Len() int {
	return len(o.order)
}

// Operators returns the members in deployment order
func (o OperatorSet) Operators() []types.Address {
	out := make([]types.Address, len(o.order))
	copy(out, o.order)

	return out
}
