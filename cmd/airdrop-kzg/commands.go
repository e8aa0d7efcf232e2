package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goairdropkzg "github.com/crate-crypto/go-kzg-airdrop"
	"github.com/crate-crypto/go-kzg-airdrop/dataset"
	"github.com/crate-crypto/go-kzg-airdrop/serialization"
	"github.com/crate-crypto/go-kzg-airdrop/trustedsetup"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errProofRejected = errors.New("proof rejected")

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	configPath    string
	srsPath       string
	dataPath      string
	numGoRoutines int
	logLevel      string

	cfg    Config
	logger *zap.Logger
}

// openingJSON is the output of the open command.
type openingJSON struct {
	Index uint64        `json:"index"`
	Value hexutil.Bytes `json:"value"`
	Proof hexutil.Bytes `json:"proof"`
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "airdrop-kzg",
		Short:         "Commit to airdrop allocations and prove individual entries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file.")
	flags.StringVar(&a.srsPath, "srs", "", "Trusted setup JSON file, overrides srsPath.")
	flags.StringVar(&a.dataPath, "data", "", "Allocation CSV file, overrides dataPath.")
	flags.IntVar(&a.numGoRoutines, "num-go-routines", 0, "Go routines per multi exponentiation, overrides numGoRoutines.")
	flags.StringVar(&a.logLevel, "log-level", "", "Minimum log level, overrides logger.level.")

	rootCmd.AddCommand(a.commitCmd(), a.openCmd(), a.verifyCmd())
	return rootCmd
}

// load reads the configuration file and applies flag overrides.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("srs") {
		cfg.SRSPath = a.srsPath
	}
	if flags.Changed("data") {
		cfg.DataPath = a.dataPath
	}
	if flags.Changed("num-go-routines") {
		cfg.NumGoRoutines = a.numGoRoutines
	}
	if flags.Changed("log-level") {
		cfg.Logger.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("could not create logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Info("configuration loaded",
		zap.String("srsPath", cfg.SRSPath),
		zap.String("dataPath", cfg.DataPath),
		zap.Int("numGoRoutines", cfg.NumGoRoutines),
	)
	return nil
}

// loadScheme reads the trusted setup and the allocations and sets up the
// commitment scheme over them.
//
// Only the first len(values) powers of the setup are used.
func (a *app) loadScheme() (*goairdropkzg.Scheme, error) {
	start := time.Now()

	setup, err := trustedsetup.Load(a.cfg.SRSPath)
	if err != nil {
		a.logger.Error("could not load trusted setup", zap.String("path", a.cfg.SRSPath), zap.Error(err))
		return nil, err
	}
	values, err := dataset.LoadFieldElements(a.cfg.DataPath)
	if err != nil {
		a.logger.Error("could not load allocations", zap.String("path", a.cfg.DataPath), zap.Error(err))
		return nil, err
	}

	numValues := len(values)
	if numValues > setup.Size() {
		err := fmt.Errorf("%w: %d allocations, trusted setup has %d G1 points", goairdropkzg.ErrSetupSize, numValues, setup.Size())
		a.logger.Error("trusted setup too small", zap.Error(err))
		return nil, err
	}

	scheme, err := goairdropkzg.SetupFromValues(values, setup.G1[:numValues], setup.G2, goairdropkzg.WithNumGoRoutines(a.cfg.NumGoRoutines))
	if err != nil {
		a.logger.Error("could not set up commitment scheme", zap.Error(err))
		return nil, err
	}

	a.logger.Info("commitment scheme ready",
		zap.Int("allocations", numValues),
		zap.Duration("took", time.Since(start)),
	)
	return scheme, nil
}

func (a *app) commitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit",
		Short: "Print the commitment to the allocation file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := a.loadScheme()
			if err != nil {
				return err
			}
			commitment, err := scheme.Commit()
			if err != nil {
				return err
			}
			serComm := goairdropkzg.SerializeCommitment(commitment)
			fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(serComm[:]))
			return nil
		},
	}
}

func (a *app) openCmd() *cobra.Command {
	var index uint64
	var all bool

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Print the opening proof for one or every allocation as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && !cmd.Flags().Changed("index") {
				return errors.New("one of --index or --all is required")
			}

			scheme, err := a.loadScheme()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if all {
				proofs, err := scheme.OpenAll()
				if err != nil {
					return err
				}
				out := make([]openingJSON, len(proofs))
				for i := range proofs {
					out[i] = toOpeningJSON(&proofs[i])
				}
				return enc.Encode(out)
			}

			proof, err := scheme.Open(index)
			if err != nil {
				return err
			}
			return enc.Encode(toOpeningJSON(&proof))
		},
	}

	cmd.Flags().Uint64Var(&index, "index", 0, "Index of the allocation to open.")
	cmd.Flags().BoolVar(&all, "all", false, "Open every allocation.")
	cmd.MarkFlagsMutuallyExclusive("index", "all")
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	var index uint64
	var commitmentHex, valueHex, proofHex string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an opening proof, exits non-zero if it is rejected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serComm, opening, err := decodeOpening(commitmentHex, valueHex, proofHex, index)
			if err != nil {
				return err
			}

			scheme, err := a.loadScheme()
			if err != nil {
				return err
			}

			ok, err := scheme.VerifySerialized(serComm, opening)
			if err != nil {
				return err
			}
			if !ok {
				// A rejected proof is a normal outcome
				a.logger.Info("proof rejected", zap.Uint64("index", index))
				return errProofRejected
			}

			a.logger.Info("proof accepted", zap.Uint64("index", index))
			fmt.Fprintln(cmd.OutOrStdout(), "proof accepted")
			return nil
		},
	}

	cmd.Flags().Uint64Var(&index, "index", 0, "Index of the allocation.")
	cmd.Flags().StringVar(&commitmentHex, "commitment", "", "Hex encoded commitment.")
	cmd.Flags().StringVar(&valueHex, "value", "", "Hex encoded claimed value.")
	cmd.Flags().StringVar(&proofHex, "proof", "", "Hex encoded proof.")
	for _, name := range []string{"index", "commitment", "value", "proof"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func toOpeningJSON(proof *goairdropkzg.OpeningProof) openingJSON {
	ser := proof.Serialize()
	return openingJSON{
		Index: ser.Index,
		Value: ser.Value[:],
		Proof: ser.Proof[:],
	}
}

func decodeOpening(commitmentHex, valueHex, proofHex string, index uint64) (serialization.KZGCommitment, goairdropkzg.SerializedOpening, error) {
	fail := func(name string, err error) (serialization.KZGCommitment, goairdropkzg.SerializedOpening, error) {
		return serialization.KZGCommitment{}, goairdropkzg.SerializedOpening{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	commBytes, err := hexutil.Decode(commitmentHex)
	if err != nil {
		return fail("commitment", err)
	}
	serComm, err := serialization.G1PointFromSlice(commBytes)
	if err != nil {
		return fail("commitment", err)
	}

	valueBytes, err := hexutil.Decode(valueHex)
	if err != nil {
		return fail("value", err)
	}
	value, err := serialization.ScalarFromSlice(valueBytes)
	if err != nil {
		return fail("value", err)
	}

	proofBytes, err := hexutil.Decode(proofHex)
	if err != nil {
		return fail("proof", err)
	}
	proof, err := serialization.G1PointFromSlice(proofBytes)
	if err != nil {
		return fail("proof", err)
	}

	return serComm, goairdropkzg.SerializedOpening{Index: index, Value: value, Proof: proof}, nil
}
