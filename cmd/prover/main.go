package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourorg/healthproof/internal/config"
	"github.com/yourorg/healthproof/internal/logger"
	"github.com/yourorg/healthproof/pkg/profile"
	"github.com/yourorg/healthproof/pkg/proof"
	"github.com/yourorg/healthproof/pkg/prover"
	"github.com/yourorg/healthproof/pkg/qr"
	"github.com/yourorg/healthproof/pkg/verifier"
)

// contextKey is a custom type for context keys to avoid conflicts
type contextKey string

const startTimeKey contextKey = "start"

func main() {
	var (
		envFile    string
		userID     string
		kindS      string
		latency    time.Duration
		verify     bool
		qrOut      string
		qrTerminal bool
		asJSON     bool
	)

	rootCmd := &cobra.Command{
		Use:   "prover",
		Short: "Generate a mock TACEO health proof for a demo profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("latency") {
				cfg.ProofLatency = latency
			}
			lg := logger.New(cfg.Log)

			user, err := profile.Lookup(userID)
			if err != nil {
				return err
			}
			kind, err := proof.ParseKind(kindS)
			if err != nil {
				return err
			}

			// -----------------------------------------------------------------
			// Services, built once for this run
			// -----------------------------------------------------------------
			gen := proof.NewGenerator(proof.WithNetworkFee(cfg.NetworkFeeWei))
			proofSvc := prover.New(gen,
				prover.WithLatency(cfg.ProofLatency),
				prover.WithLogger(lg),
			)
			verifyOpts := []verifier.Option{
				verifier.WithLatency(cfg.VerifyLatency),
				verifier.WithLogger(lg),
			}
			if cfg.StrictPairing {
				verifyOpts = append(verifyOpts, verifier.WithStrictPairing())
			}
			verifySvc := verifier.New(verifyOpts...)
			encoder := qr.New(qr.WithSize(cfg.QRSize), qr.WithMargin(cfg.QRMargin))

			// -----------------------------------------------------------------
			// Generate
			// -----------------------------------------------------------------
			ctx := cmd.Context()
			out := proofSvc.GenerateHealthProof(ctx, user, kind)

			report := struct {
				Outcome      prover.Outcome   `json:"outcome"`
				Verification *verifier.Result `json:"verification,omitempty"`
				QRText       string           `json:"qrText,omitempty"`
			}{Outcome: out}

			if out.Success {
				// -------------------------------------------------------------
				// Verify
				// -------------------------------------------------------------
				if verify {
					v := verifySvc.VerifyProof(ctx, out.Proof.ProofID, out.Proof.VerificationKey)
					report.Verification = &v
				}

				// -------------------------------------------------------------
				// QR
				// -------------------------------------------------------------
				if qrOut != "" || qrTerminal {
					payload := encoder.FromResult(*out.Proof)
					report.QRText = qr.EncodeText(payload)

					if qrOut != "" {
						img, err := encoder.RenderImage(ctx, payload)
						if err != nil {
							// rendering faults leave the proof output intact
							lg.Error().Err(err).Msg("qr.render.failed")
						} else if err := os.WriteFile(qrOut, img.PNG, 0o644); err != nil {
							return fmt.Errorf("write %s: %w", qrOut, err)
						}
					}
					if qrTerminal {
						s, err := encoder.RenderTerminal(payload)
						if err != nil {
							lg.Error().Err(err).Msg("qr.terminal.failed")
						} else {
							fmt.Fprint(cmd.OutOrStdout(), s)
						}
					}
				}
			}

			// -----------------------------------------------------------------
			// Outputs
			// -----------------------------------------------------------------
			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				printOutcome(w, user, kind, out)
				if report.Verification != nil {
					printVerification(w, *report.Verification)
				}
				if report.QRText != "" {
					fmt.Fprintf(w, "qr text: %s\n", report.QRText)
				}
			}
			fmt.Fprintf(w, "done in %s\n", time.Since(cmd.Context().Value(startTimeKey).(time.Time)).Round(time.Millisecond))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Optional dotenv file")
	rootCmd.Flags().StringVar(&userID, "user", "alice", "Demo profile id")
	rootCmd.Flags().StringVar(&kindS, "kind", string(proof.KindVaccination), "Proof kind: vaccination, age or health")
	rootCmd.Flags().DurationVar(&latency, "latency", prover.DefaultLatency, "Simulated proof latency")
	rootCmd.Flags().BoolVar(&verify, "verify", false, "Verify the proof after generating it")
	rootCmd.Flags().StringVar(&qrOut, "qr-out", "", "Write the proof QR code as PNG to this path")
	rootCmd.Flags().BoolVar(&qrTerminal, "qr-terminal", false, "Print the proof QR code to the terminal")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(profilesCmd(), circuitsCmd())

	rootCmd.SetContext(context.WithValue(context.Background(), startTimeKey, time.Now()))
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
