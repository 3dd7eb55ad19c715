package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Method names used by the clients
const (
	MethodSetApprovalForAll = "setApprovalForAll"
	MethodOwnerOf           = "ownerOf"
	MethodIsApprovedForAll  = "isApprovedForAll"

	MethodStake           = "stake"
	MethodUnstake         = "unstake"
	MethodGetStakeInfo    = "getStakeInfo"
	MethodIsStakingPaused = "isStakingPaused"

	MethodAggregate3 = "aggregate3"
)

// PotentialsABIJSON covers the ERC721 subset the portal calls on the Potentials collection
const PotentialsABIJSON = `[
  {"name":"setApprovalForAll","type":"function","stateMutability":"nonpayable",
   "inputs":[{"name":"operator","type":"address"},{"name":"approved","type":"bool"}],"outputs":[]},
  {"name":"ownerOf","type":"function","stateMutability":"view",
   "inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
  {"name":"isApprovedForAll","type":"function","stateMutability":"view",
   "inputs":[{"name":"owner","type":"address"},{"name":"operator","type":"address"}],"outputs":[{"name":"","type":"bool"}]}
]`

// StakingABIJSON covers the staking contract entry points
const StakingABIJSON = `[
  {"name":"stake","type":"function","stateMutability":"nonpayable",
   "inputs":[{"name":"tokenIds","type":"uint256[]"},{"name":"lockMonths","type":"uint8[]"}],"outputs":[]},
  {"name":"unstake","type":"function","stateMutability":"nonpayable",
   "inputs":[{"name":"tokenIds","type":"uint256[]"}],"outputs":[]},
  {"name":"getStakeInfo","type":"function","stateMutability":"view",
   "inputs":[{"name":"tokenId","type":"uint256"}],
   "outputs":[{"name":"startTime","type":"uint40"},{"name":"unlockTime","type":"uint40"},{"name":"lockMonths","type":"uint8"},{"name":"owner","type":"address"}]},
  {"name":"isStakingPaused","type":"function","stateMutability":"view",
   "inputs":[],"outputs":[{"name":"","type":"bool"}]}
]`

// Multicall3ABIJSON is the aggregate3 entry point of the canonical Multicall3 deployment
const Multicall3ABIJSON = `[
  {"name":"aggregate3","type":"function","stateMutability":"payable",
   "inputs":[{"name":"calls","type":"tuple[]","components":[
     {"name":"target","type":"address"},{"name":"allowFailure","type":"bool"},{"name":"callData","type":"bytes"}]}],
   "outputs":[{"name":"returnData","type":"tuple[]","components":[
     {"name":"success","type":"bool"},{"name":"returnData","type":"bytes"}]}]}
]`

var (
	PotentialsABI = mustParse(PotentialsABIJSON)
	StakingABI    = mustParse(StakingABIJSON)
	Multicall3ABI = mustParse(Multicall3ABIJSON)
)

func mustParse(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}
