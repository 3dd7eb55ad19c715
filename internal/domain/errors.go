package domain

import (
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

var (
	// ErrInvalidArgument is returned when caller input fails local validation
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoTokensSelected is returned when a stake or unstake call has no token ids
	ErrNoTokensSelected = errors.New("no tokens selected")

	// ErrLengthMismatch is returned when token ids and lock months differ in length
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrGraphQLRequest is returned when the indexer answers with a non-2xx status
	ErrGraphQLRequest = errors.New("graphql request failed")

	// ErrGraphQLResponse is returned when the indexer payload carries an errors array
	ErrGraphQLResponse = errors.New("graphql response contains errors")

	// ErrTransactionReverted is returned when a mined transaction has a failed status
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrWalletNotConnected is returned when a write is attempted without a connected wallet
	ErrWalletNotConnected = errors.New("wallet not connected")
)

// RequestError describes a non-2xx answer from the indexer endpoint
type RequestError struct {
	StatusCode int
	StatusText string
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("GraphQL request failed: %s", e.StatusText)
}

func (e *RequestError) Unwrap() error {
	return ErrGraphQLRequest
}

// GraphQLError wraps the errors array of an indexer payload
type GraphQLError struct {
	Errors gqlerror.List
	Raw    string
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("GraphQL errors: %s", e.Raw)
}

func (e *GraphQLError) Unwrap() error {
	return ErrGraphQLResponse
}
