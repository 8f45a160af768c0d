package main

import (
	"fmt"
	"io"
	"time"

	"github.com/yourorg/healthproof/pkg/profile"
	"github.com/yourorg/healthproof/pkg/proof"
	"github.com/yourorg/healthproof/pkg/prover"
	"github.com/yourorg/healthproof/pkg/verifier"
)

func printOutcome(w io.Writer, p profile.Profile, k proof.Kind, out prover.Outcome) {
	d := proof.DescriptorFor(k)
	fmt.Fprintf(w, "%s for %s (%s)\n", d.DisplayName, p.Name, p.Description)

	if !out.Success {
		fmt.Fprintf(w, "FAILED: %s\n", out.Message)
		return
	}

	fmt.Fprintf(w, "OK: %s\n", out.Message)
	fmt.Fprintln(w, "private data hidden:")
	for _, s := range out.Details.PrivateDataHidden {
		fmt.Fprintf(w, "  - %s\n", s)
	}
	fmt.Fprintln(w, "public verification:")
	for _, s := range out.Details.PublicVerification {
		fmt.Fprintf(w, "  - %s\n", s)
	}
	fmt.Fprintf(w, "proof id:         %s\n", out.Proof.ProofID)
	fmt.Fprintf(w, "verification key: %s\n", out.Proof.VerificationKey)
	fmt.Fprintf(w, "proof data:       %s\n", out.Proof.ProofData)
	fmt.Fprintf(w, "circuit:          %s, %d constraints, %s\n",
		out.Details.Circuit.Name, out.Details.Circuit.Constraints, out.Details.Circuit.ProvingTime)
	fmt.Fprintf(w, "network:          %s, %s, fee %s\n",
		out.Details.Network.InfrastructureStatus, out.Details.Network.ProcessingTime, out.Details.Network.NetworkFee)
}

func printVerification(w io.Writer, v verifier.Result) {
	fmt.Fprintf(w, "verification:     %s / %s in %s\n",
		v.Details.VerificationStatus, v.Details.SystemStatus, v.VerificationTime.Round(time.Millisecond))
	fmt.Fprintf(w, "                  %s\n", v.Message)
}
