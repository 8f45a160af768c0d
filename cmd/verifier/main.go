package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/yourorg/healthproof/internal/config"
	"github.com/yourorg/healthproof/internal/logger"
	"github.com/yourorg/healthproof/pkg/qr"
	"github.com/yourorg/healthproof/pkg/verifier"
)

func main() {
	var (
		envFile, proofID, vk, qrText string
		strict, asJSON               bool
	)

	cmd := &cobra.Command{
		Use:   "verifier",
		Short: "Verify a mock TACEO proof from its id and key, or from scanned QR text",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			lg := logger.New(cfg.Log)

			if qrText != "" {
				p, err := qr.ParseText(qrText)
				if err != nil {
					return err
				}
				proofID, vk = p.ProofID, p.VerificationKey
				lg.Debug().Int64("qr_timestamp", p.Timestamp).Msg("qr.parsed")
			}
			if proofID == "" || vk == "" {
				return fmt.Errorf("--qr-text or both --proof-id and --vk are required")
			}

			opts := []verifier.Option{
				verifier.WithLatency(cfg.VerifyLatency),
				verifier.WithLogger(lg),
			}
			if strict || cfg.StrictPairing {
				opts = append(opts, verifier.WithStrictPairing())
			}
			res := verifier.New(opts...).VerifyProof(cmd.Context(), proofID, vk)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s / %s: %s\n",
					res.Details.VerificationStatus, res.Details.SystemStatus, res.Message)
			}

			if !res.Verified {
				return fmt.Errorf("verification failed: %s", res.Details.VerificationStatus)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "proof verified ✅")
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env", ".env", "Optional dotenv file")
	cmd.Flags().StringVar(&proofID, "proof-id", "", "Proof identifier")
	cmd.Flags().StringVar(&vk, "vk", "", "Verification key")
	cmd.Flags().StringVar(&qrText, "qr-text", "", "Scanned TACEO_PROOF:<id>:<key>:<ts> text")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject keys not derived from the proof id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.MarkFlagsMutuallyExclusive("qr-text", "proof-id")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
