package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alitto/pond/v2"
	"github.com/spf13/cobra"

	"github.com/degenerous-dao/potentials-staking/internal/api/rest/dto"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/portal"
)

func ownedCmd(a *app) *cobra.Command {
	var supply, batchSize int

	cmd := &cobra.Command{
		Use:   "owned <address>",
		Short: "List the Potentials held by an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("supply") {
				supply = a.cfg.Scan.TotalSupply
			}
			if !cmd.Flags().Changed("batch-size") {
				batchSize = a.cfg.Scan.BatchSize
			}

			set, err := a.service.GetOwnedTokens(cmd.Context(), args[0], supply, batchSize)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), dto.OwnedTokensResponse{
				Address:     args[0],
				TotalSupply: supply,
				BatchSize:   batchSize,
				TokenIDs:    set.IDs,
			})
		},
	}

	cmd.Flags().IntVar(&supply, "supply", domain.DEFAULT_TOTAL_SUPPLY, "Highest token id to scan (default from config)")
	cmd.Flags().IntVar(&batchSize, "batch-size", domain.DEFAULT_BATCH_SIZE, "Token ids per multicall batch (default from config)")

	return cmd
}

func approvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "approval <address>",
		Short: "Show whether the staking contract may move the Potentials of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			approved, err := a.service.IsApproved(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), dto.ApprovalResponse{
				Address:  args[0],
				Operator: a.service.Settings().StakingAddress,
				Approved: approved,
			})
		},
	}
}

func pausedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paused",
		Short: "Show whether staking is paused",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paused, err := a.service.IsStakingPaused(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.PausedResponse{Paused: paused})
		},
	}
}

// STAKE_INFO_CONCURRENCY bounds the parallel getStakeInfo calls of one stake-info run
const STAKE_INFO_CONCURRENCY = 4

func stakeInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stake-info <token-id>...",
		Short: "Show the on-chain stake record of one or more tokens",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenIDs := make([]uint64, 0, len(args))
			for _, arg := range args {
				tokenID, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("%w: invalid token id %q", domain.ErrInvalidArgument, arg)
				}
				tokenIDs = append(tokenIDs, tokenID)
			}

			if len(tokenIDs) == 1 {
				info, err := a.service.GetStakeInfo(cmd.Context(), tokenIDs[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.MapStakeInfo(info))
			}

			infos, err := fetchStakeInfos(cmd.Context(), a.service, tokenIDs)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), infos)
		},
	}
}

// fetchStakeInfos looks the tokens up on a bounded pool, results keep the order of tokenIDs
func fetchStakeInfos(ctx context.Context, service portal.Service, tokenIDs []uint64) ([]dto.StakeInfoResponse, error) {
	pool := pond.NewResultPool[dto.StakeInfoResponse](min(len(tokenIDs), STAKE_INFO_CONCURRENCY), pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, tokenID := range tokenIDs {
		group.SubmitErr(func() (dto.StakeInfoResponse, error) {
			info, err := service.GetStakeInfo(ctx, tokenID)
			if err != nil {
				return dto.StakeInfoResponse{}, fmt.Errorf("token %d: %w", tokenID, err)
			}
			return dto.MapStakeInfo(info), nil
		})
	}

	return group.Wait()
}

func ownerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "owner <token-id>",
		Short: "Show the current holder of a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: invalid token id %q", domain.ErrInvalidArgument, args[0])
			}

			owner, err := a.service.GetTokenOwner(cmd.Context(), tokenID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.MapTokenOwner(tokenID, owner, a.service.Settings().StakingAddress))
		},
	}
}

func userCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "user <address>",
		Short: "Show staked tokens, voting power and points of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			staking, err := a.service.GetUserStaking(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.MapUserStaking(args[0], staking))
		},
	}
}

func statsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show network-wide staking totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.service.GetGlobalStats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.MapGlobalStats(stats))
		},
	}
}
