package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/providers/ethereum"
)

// Account is what a connector hands to the session
type Account struct {
	Signer ethereum.Signer
	// Source names the connector for logs
	Source string
}

// Connector produces a signing account
//
//go:generate mockgen -source=connector.go -destination=../mocks/wallet_connector.go -package=mocks -mock_names=Connector=MockConnector
type Connector interface {
	Connect(ctx context.Context) (Account, error)
}

// PrivateKeyConnector signs with a raw hex private key
type PrivateKeyConnector struct {
	PrivateKey string
	ChainID    int64
}

func (c PrivateKeyConnector) Connect(ctx context.Context) (Account, error) {
	if c.ChainID <= 0 {
		return Account{}, fmt.Errorf("%w: chain id must be positive", domain.ErrInvalidArgument)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(c.PrivateKey), "0x"))
	if err != nil {
		return Account{}, fmt.Errorf("%w: invalid private key", domain.ErrInvalidArgument)
	}
	return Account{
		Signer: &keySigner{key: key, chainID: big.NewInt(c.ChainID)},
		Source: "private_key",
	}, nil
}

type keySigner struct {
	key     *ecdsa.PrivateKey
	chainID *big.Int
}

func (s *keySigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

func (s *keySigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

// KeystoreConnector unlocks an account from a go-ethereum keystore directory
type KeystoreConnector struct {
	Dir        string
	Address    string
	Passphrase string
	ChainID    int64
}

func (c KeystoreConnector) Connect(ctx context.Context) (Account, error) {
	if c.ChainID <= 0 {
		return Account{}, fmt.Errorf("%w: chain id must be positive", domain.ErrInvalidArgument)
	}
	if !common.IsHexAddress(c.Address) {
		return Account{}, fmt.Errorf("%w: invalid keystore address %q", domain.ErrInvalidArgument, c.Address)
	}

	ks := keystore.NewKeyStore(c.Dir, keystore.StandardScryptN, keystore.StandardScryptP)
	account, err := ks.Find(accounts.Account{Address: common.HexToAddress(c.Address)})
	if err != nil {
		return Account{}, fmt.Errorf("failed to find account %s in %s: %w", c.Address, c.Dir, err)
	}
	if err := ks.Unlock(account, c.Passphrase); err != nil {
		return Account{}, fmt.Errorf("failed to unlock account %s: %w", c.Address, err)
	}

	return Account{
		Signer: &keystoreSigner{ks: ks, account: account, chainID: big.NewInt(c.ChainID)},
		Source: "keystore",
	}, nil
}

type keystoreSigner struct {
	ks      *keystore.KeyStore
	account accounts.Account
	chainID *big.Int
}

func (s *keystoreSigner) Address() common.Address {
	return s.account.Address
}

func (s *keystoreSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyStoreTransactorWithChainID(s.ks, s.account, s.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}
