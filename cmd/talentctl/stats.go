package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the public dashboard counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := newClient(cmd).Statistics(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}

		fmt.Fprintf(out, "Talents:     %d\n", stats.TotalTalents)
		fmt.Fprintf(out, "Skills:      %d\n", stats.TotalSkills)
		fmt.Fprintf(out, "Experiences: %d\n", stats.TotalExperiences)
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("json", false, "output counters as JSON")
	rootCmd.AddCommand(statsCmd)
}
