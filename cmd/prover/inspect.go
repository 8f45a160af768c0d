package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yourorg/healthproof/circuits"
	"github.com/yourorg/healthproof/pkg/profile"
	"github.com/yourorg/healthproof/pkg/proof"
	"github.com/yourorg/healthproof/pkg/witness"
)

func profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the demo profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tAGE\tVACCINATED\tHEALTH\tDESCRIPTION")
			for _, p := range profile.Catalog() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%s\t%s\n",
					p.ID, p.Name, p.Age, p.Vaccinated, p.HealthStatus, p.Description)
			}
			return tw.Flush()
		},
	}
}

func circuitsCmd() *cobra.Command {
	var checkUser string

	cmd := &cobra.Command{
		Use:   "circuits",
		Short: "Show circuit descriptors next to their compiled constraint systems",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var user *profile.Profile
			if checkUser != "" {
				p, err := profile.Lookup(checkUser)
				if err != nil {
					return err
				}
				user = &p
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			header := "KIND\tCIRCUIT\tDISPLAYED\tCOMPILED\tPROCESSING"
			if user != nil {
				header += "\tSOLVED(" + user.ID + ")"
			}
			fmt.Fprintln(tw, header)

			for _, k := range proof.Kinds() {
				d := proof.DescriptorFor(k)
				n, err := circuits.ConstraintCount(k)
				if err != nil {
					return err
				}
				row := fmt.Sprintf("%s\t%s\t%d\t%d\t%s", k, d.Name, d.Constraints, n, d.ProcessingTime)

				if user != nil {
					b, err := witness.Build(proof.NewRequest(*user, k))
					if err != nil {
						return fmt.Errorf("witness for %s: %w", k, err)
					}
					row += fmt.Sprintf("\t%t", circuits.Check(k, b.Full) == nil)
				}
				fmt.Fprintln(tw, row)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&checkUser, "check", "", "Run the constraint solver for this profile")
	return cmd
}
