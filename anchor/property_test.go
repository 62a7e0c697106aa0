package anchor

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/subnetstack/anchor/chain"
	"github.com/subnetstack/anchor/storage/memory"
	"github.com/subnetstack/anchor/types"
)

// TestProperty_EscrowInvariant drives random valid operation sequences and
// checks that the acknowledged escrow always equals the sum of
// acknowledged deposits minus the sum of settled withdrawals, and that no
// funds are created or destroyed anywhere in the system.
func TestProperty_EscrowInvariant(t *testing.T) {
	t.Parallel()

	const initialBalance = uint64(1_000_000)

	users := []types.Address{userU, userX}

	rapid.Check(t, func(tt *rapid.T) {
		premine := make([]chain.PremineAccount, 0, len(users))
		for _, user := range users {
			premine = append(premine, chain.PremineAccount{Address: user, Balance: initialBalance})
		}

		config := &chain.Chain{
			Name:      "property-test",
			Operators: []types.Address{operatorA, operatorB},
			Premine:   premine,
		}

		a, err := NewAnchor(hclog.NewNullLogger(), memory.NewMemoryStorage(), config, NilMetrics())
		require.NoError(tt, err)

		defer a.Close()

		// model state
		var (
			ackedSum       uint64
			settledSum     uint64
			pendingAcks    []DepositID
			requested      []WithdrawalID
			approved       []WithdrawalID
			requestAmounts = map[WithdrawalID]uint64{}
		)

		numOps := rapid.IntRange(1, 200).Draw(tt, "number of operations")

		for i := 0; i < numOps; i++ {
			user := users[rapid.IntRange(0, len(users)-1).Draw(tt, "user")]
			operator := operatorA
			if rapid.Bool().Draw(tt, "use second operator") {
				operator = operatorB
			}

			switch rapid.IntRange(0, 4).Draw(tt, "operation") {
			case 0: // deposit
				amount := rapid.Uint64Range(1, 10_000).Draw(tt, "deposit amount")

				balance, err := a.BalanceOf(user)
				require.NoError(tt, err)

				id, err := a.Deposit(TxContext{Sender: user}, amount)
				if balance < amount {
					require.ErrorIs(tt, err, ErrInsufficientFunds)

					continue
				}

				require.NoError(tt, err)
				pendingAcks = append(pendingAcks, id)

			case 1: // acknowledge a pending deposit
				if len(pendingAcks) == 0 {
					continue
				}

				id := pendingAcks[0]
				pendingAcks = pendingAcks[1:]

				require.NoError(tt, a.AckDeposit(TxContext{Sender: operator}, id))

				deposit, exists, err := a.GetDeposit(id)
				require.NoError(tt, err)
				require.True(tt, exists)

				ackedSum += deposit.Amount

			case 2: // request a withdrawal
				amount := rapid.Uint64Range(1, 10_000).Draw(tt, "withdrawal amount")

				id, err := a.RequestWithdrawal(TxContext{Sender: user}, amount)
				require.NoError(tt, err)

				requested = append(requested, id)
				requestAmounts[id] = amount

			case 3: // approve a requested withdrawal
				if len(requested) == 0 {
					continue
				}

				id := requested[0]
				requested = requested[1:]

				info, err := a.GetEscrowInfo()
				require.NoError(tt, err)

				err = a.ApproveWithdrawal(TxContext{Sender: operator}, id)
				if requestAmounts[id] > info.Escrow-info.Reserved {
					require.ErrorIs(tt, err, ErrInsufficientEscrow)

					continue
				}

				require.NoError(tt, err)
				approved = append(approved, id)

			case 4: // settle an approved withdrawal
				if len(approved) == 0 {
					continue
				}

				id := approved[0]
				approved = approved[1:]

				require.NoError(tt, a.SettleWithdrawal(TxContext{Sender: user}, id))

				settledSum += requestAmounts[id]
			}

			// the global invariant must hold after every operation
			info, err := a.GetEscrowInfo()
			require.NoError(tt, err)
			require.Equal(tt, ackedSum-settledSum, info.Escrow,
				"escrow must equal acknowledged deposits minus settled withdrawals")
			require.LessOrEqual(tt, info.Reserved, info.Escrow)
			require.LessOrEqual(tt, info.Escrow, info.Held)

			// conservation: no funds created or destroyed
			total := info.Held
			for _, user := range users {
				balance, err := a.BalanceOf(user)
				require.NoError(tt, err)

				total += balance
			}
			require.Equal(tt, initialBalance*uint64(len(users)), total)
		}
	})
}
