package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/trialloc/report"
	"github.com/arloliu/trialloc/source"
	"github.com/arloliu/trialloc/types"
)

var checkCmd = &cobra.Command{
	Use:   "check <allocation.yaml>",
	Short: "Run the randomization check over a saved allocation",
	Long: `Reads an allocation document (a YAML mapping from group name to the
list of assigned participants, as printed by 'trialloc allocate'), prints the
per-group sizes, and optionally verifies exact coverage against a participant
universe file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args[0])
	},
}

func init() {
	checkCmd.Flags().String("universe", "", "Participant list file to verify coverage against")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read allocation %s: %w", path, err)
	}

	// Accept both a bare allocation document and the allocate command's
	// output envelope.
	var envelope struct {
		Groups types.Allocation `yaml:"groups"`
	}
	if err := yaml.Unmarshal(data, &envelope); err != nil || envelope.Groups == nil {
		var alloc types.Allocation
		if err := yaml.Unmarshal(data, &alloc); err != nil {
			return fmt.Errorf("parse allocation %s: %w", path, err)
		}
		envelope.Groups = alloc
	}

	rep := report.New(report.WithLogger(newLogger(cmd)))
	sizes, err := rep.Check(envelope.Groups)
	if err != nil {
		return err
	}

	for _, group := range envelope.Groups.Groups() {
		fmt.Printf("%s: %d\n", group, sizes[group])
	}
	fmt.Printf("total: %d, spread: %d\n", sizes.Total(), sizes.Spread())

	if universePath, _ := cmd.Flags().GetString("universe"); universePath != "" {
		universe, err := source.NewFile(universePath).List(cmd.Context())
		if err != nil {
			return err
		}
		if err := rep.VerifyCoverage(envelope.Groups, universe); err != nil {
			return fmt.Errorf("coverage check failed: %w", err)
		}
		fmt.Println("coverage: ok")
	}

	return nil
}
