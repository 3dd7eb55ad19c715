package cli

import (
	"encoding/json"
	"io"

	"github.com/ethereum/go-ethereum/core/types"
)

// receiptResponse is the summary printed after a write
type receiptResponse struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber string `json:"block_number"`
	Status      uint64 `json:"status"`
	GasUsed     uint64 `json:"gas_used"`
}

func mapReceipt(receipt *types.Receipt) receiptResponse {
	resp := receiptResponse{
		TxHash:  receipt.TxHash.Hex(),
		Status:  receipt.Status,
		GasUsed: receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		resp.BlockNumber = receipt.BlockNumber.String()
	}
	return resp
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
