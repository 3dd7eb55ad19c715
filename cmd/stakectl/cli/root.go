package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/degenerous-dao/potentials-staking/internal/config"
	"github.com/degenerous-dao/potentials-staking/internal/domain"
	"github.com/degenerous-dao/potentials-staking/internal/logger"
	"github.com/degenerous-dao/potentials-staking/internal/portal"
	"github.com/degenerous-dao/potentials-staking/internal/providers/ethereum"
	"github.com/degenerous-dao/potentials-staking/internal/wallet"
)

// Opener builds the portal for cfg and returns a func releasing its resources
type Opener func(ctx context.Context, cfg *config.CLIConfig) (portal.Service, func(), error)

// DefaultOpener dials the configured RPC endpoint
func DefaultOpener(ctx context.Context, cfg *config.CLIConfig) (portal.Service, func(), error) {
	svc, ethClient, err := portal.Open(ctx, cfg.PortalConfig, portal.DefaultDependencies(cfg.PortalConfig))
	if err != nil {
		return nil, nil, err
	}
	return svc, ethClient.Close, nil
}

// app carries what every subcommand needs once the root pre-run has finished
type app struct {
	opener     Opener
	configFile string
	envPath    string
	debug      bool

	cfg     *config.CLIConfig
	service portal.Service
	session *wallet.Session
	release func()
}

// Execute runs stakectl with args and releases the portal whatever the outcome
func Execute(ctx context.Context, opener Opener, args []string, stdout, stderr io.Writer) error {
	a := &app{opener: opener}
	defer a.teardown()

	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return rootCmd.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "stakectl",
		Short:        "Inspect and manage Potentials staking from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return a.setup(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&a.envPath, "env", "config/", "Path to environment files")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		ownedCmd(a),
		approvalCmd(a),
		pausedCmd(a),
		stakeInfoCmd(a),
		ownerCmd(a),
		userCmd(a),
		statsCmd(a),
		approveCmd(a),
		stakeCmd(a),
		unstakeCmd(a),
	)

	return rootCmd
}

func (a *app) setup(ctx context.Context) error {
	config.ChdirRepoRoot()
	cfg, err := config.LoadCLIConfig(a.configFile, a.envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug || a.debug,
		Service:         "stakectl",
		Environment:     cfg.Environment,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	service, release, err := a.opener(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize portal: %w", err)
	}
	a.service = service

	// every session change drops cached reads
	a.session = wallet.NewSession()
	unbind := a.service.BindSession(a.session)
	a.release = func() {
		unbind()
		if release != nil {
			release()
		}
	}

	return nil
}

func (a *app) teardown() {
	if a.release != nil {
		a.release()
		a.release = nil
	}
	logger.Flush(2 * time.Second)
}

// signer connects the configured wallet and returns its signer
func (a *app) signer(ctx context.Context) (ethereum.Signer, error) {
	connector, err := connectorFromConfig(a.cfg.Wallet, a.cfg.Chain.ChainID)
	if err != nil {
		return nil, err
	}

	state, err := a.session.Connect(ctx, connector)
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Signing as", zap.String("address", state.Address), zap.String("username", state.Username))

	return a.session.Signer()
}

// connectorFromConfig picks the private key connector when a key is set, the keystore otherwise
func connectorFromConfig(cfg config.WalletConfig, chainID int64) (wallet.Connector, error) {
	switch {
	case cfg.PrivateKey != "":
		return wallet.PrivateKeyConnector{PrivateKey: cfg.PrivateKey, ChainID: chainID}, nil
	case cfg.KeystoreDir != "":
		return wallet.KeystoreConnector{
			Dir:        cfg.KeystoreDir,
			Address:    cfg.KeystoreAddress,
			Passphrase: cfg.KeystorePassphrase,
			ChainID:    chainID,
		}, nil
	default:
		return nil, fmt.Errorf("%w: set wallet.private_key or wallet.keystore_dir", domain.ErrWalletNotConnected)
	}
}
