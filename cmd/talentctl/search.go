package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"go-talent-directory/internal/domain"
	"go-talent-directory/internal/search"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the public talent directory",
	Long: `Search queries the public directory by name, NIM, study program, headline
or skill. Without arguments it starts an interactive session that re-queries
as you type a new line, debounced the same way the web frontend debounces
keystrokes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient(cmd)

		if len(args) == 0 {
			return runInteractiveSearch(cmd, c)
		}

		talents, err := c.SearchTalents(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printTalents(cmd, talents)
	},
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// runInteractiveSearch reads queries line by line and prints each settled
// result set. The debouncer drops superseded lines and out-of-order
// responses, so pasting many lines at once only queries the last one.
func runInteractiveSearch(cmd *cobra.Command, searcher search.Searcher) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Type a query and press enter (empty line clears, Ctrl+D quits).")

	d := search.NewDebouncer(searcher, search.WithNotify(func(snap search.Snapshot) {
		switch snap.State {
		case search.StateIdle:
			fmt.Fprintln(out, "(cleared)")
		case search.StateSettled:
			if snap.Err != nil {
				fmt.Fprintf(out, "search %q failed: %v\n", snap.Query, snap.Err)
				return
			}
			if len(snap.Results) == 0 {
				fmt.Fprintf(out, "no talents match %q\n", snap.Query)
				return
			}
			for _, t := range snap.Results {
				fmt.Fprintf(out, "  %d\t%s\t%s\t%s\n", t.ID, t.UserFullName, t.Prodi, t.Headline)
			}
		}
	}))
	defer d.Close()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		d.SetQuery(scanner.Text())
	}
	return scanner.Err()
}

func printTalents(cmd *cobra.Command, talents []domain.TalentProfile) error {
	out := cmd.OutOrStdout()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(talents)
	}

	if len(talents) == 0 {
		fmt.Fprintln(out, "no talents found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRODI\tANGKATAN\tHEADLINE")
	for _, t := range talents {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.UserFullName, t.Prodi, t.Angkatan, t.Headline)
	}
	return w.Flush()
}
