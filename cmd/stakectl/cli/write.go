package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/degenerous-dao/potentials-staking/internal/domain"
)

func approveCmd(a *app) *cobra.Command {
	var revoke bool

	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Approve the staking contract to move the wallet's Potentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := a.signer(cmd.Context())
			if err != nil {
				return err
			}

			receipt, err := a.service.Approve(cmd.Context(), signer, !revoke)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), mapReceipt(receipt))
		},
	}

	cmd.Flags().BoolVar(&revoke, "revoke", false, "Revoke the approval instead of granting it")

	return cmd
}

func stakeCmd(a *app) *cobra.Command {
	var tokenIDs []uint
	var months []uint

	cmd := &cobra.Command{
		Use:   "stake --tokens 1,2 --months 3,6",
		Short: "Stake tokens, each with the lock period code at the same position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lockMonths, err := toLockMonths(months)
			if err != nil {
				return err
			}

			signer, err := a.signer(cmd.Context())
			if err != nil {
				return err
			}

			receipt, err := a.service.Stake(cmd.Context(), signer, toTokenIDs(tokenIDs), lockMonths)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), mapReceipt(receipt))
		},
	}

	cmd.Flags().UintSliceVar(&tokenIDs, "tokens", nil, "Token ids to stake")
	cmd.Flags().UintSliceVar(&months, "months", nil, "Lock period code per token")

	return cmd
}

func unstakeCmd(a *app) *cobra.Command {
	var tokenIDs []uint

	cmd := &cobra.Command{
		Use:   "unstake --tokens 1,2",
		Short: "Unstake tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := a.signer(cmd.Context())
			if err != nil {
				return err
			}

			receipt, err := a.service.Unstake(cmd.Context(), signer, toTokenIDs(tokenIDs))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), mapReceipt(receipt))
		},
	}

	cmd.Flags().UintSliceVar(&tokenIDs, "tokens", nil, "Token ids to unstake")

	return cmd
}

func toTokenIDs(values []uint) []uint64 {
	ids := make([]uint64, 0, len(values))
	for _, v := range values {
		ids = append(ids, uint64(v))
	}
	return ids
}

// toLockMonths narrows flag values to the contract's uint8 codes
func toLockMonths(values []uint) ([]uint8, error) {
	months := make([]uint8, 0, len(values))
	for _, v := range values {
		if v > 255 {
			return nil, fmt.Errorf("%w: lock months %d does not fit uint8", domain.ErrInvalidArgument, v)
		}
		months = append(months, uint8(v))
	}
	return months, nil
}
