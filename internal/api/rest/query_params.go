package rest

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// MAX_SCAN_SUPPLY bounds the token id range a single ownership scan may cover
const MAX_SCAN_SUPPLY = 100_000

// OwnedTokensQueryParams holds query parameters for GET /users/:address/potentials
type OwnedTokensQueryParams struct {
	Supply    *int `form:"supply"`
	BatchSize *int `form:"batch_size"`
}

// Resolve fills missing values with the configured scan defaults and checks bounds
func (p *OwnedTokensQueryParams) Resolve(defaultSupply, defaultBatchSize int) (supply int, batchSize int, err error) {
	supply = defaultSupply
	if p.Supply != nil {
		supply = *p.Supply
	}
	batchSize = defaultBatchSize
	if p.BatchSize != nil {
		batchSize = *p.BatchSize
	}

	if supply < 0 || supply > MAX_SCAN_SUPPLY {
		return 0, 0, fmt.Errorf("supply must be between 0 and %d", MAX_SCAN_SUPPLY)
	}
	if batchSize <= 0 {
		return 0, 0, fmt.Errorf("batch_size must be greater than 0")
	}
	if supply > 0 {
		batchSize = min(batchSize, supply)
	}
	return supply, batchSize, nil
}

// ParseOwnedTokensQuery parses query parameters for GET /users/:address/potentials
func ParseOwnedTokensQuery(c *gin.Context) (*OwnedTokensQueryParams, error) {
	var params OwnedTokensQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// parseAddressParam reads and checks the :address path parameter
func parseAddressParam(c *gin.Context) (string, bool) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "Address is required")
		return "", false
	}
	if !common.IsHexAddress(address) {
		respondBadRequest(c, "Invalid address", address)
		return "", false
	}
	return address, true
}

// parseTokenIDParam reads and checks the :id path parameter
func parseTokenIDParam(c *gin.Context) (uint64, bool) {
	raw := c.Param("id")
	tokenID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid token ID", raw)
		return 0, false
	}
	return tokenID, true
}
