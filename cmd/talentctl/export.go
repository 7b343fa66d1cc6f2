package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go-talent-directory/internal/document"
	"go-talent-directory/internal/domain"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [talent-id]",
	Short: "Export a talent profile as a PDF",
	Long: `Export fetches a profile and renders it to the same PDF layout the web
frontend produces. Pass a talent ID for a public profile, or --me together
with a token to export your own profile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		me, _ := cmd.Flags().GetBool("me")
		if me == (len(args) == 1) {
			return fmt.Errorf("pass either a talent ID or --me")
		}

		c := newClient(cmd)

		var profile *domain.TalentProfile
		var err error
		if me {
			profile, err = c.MyProfile(cmd.Context())
		} else {
			var id int64
			id, err = strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid talent ID %q", args[0])
			}
			profile, err = c.Talent(cmd.Context(), id)
		}
		if err != nil {
			return err
		}

		// The API serves photo paths relative to its own host.
		if profile.Photo != nil && !strings.HasPrefix(*profile.Photo, "http") {
			abs := strings.TrimRight(apiBaseURL(cmd), "/") + "/" + strings.TrimLeft(*profile.Photo, "/")
			profile.Photo = &abs
		}

		pdf, err := document.NewGenerator().Generate(cmd.Context(), profile)
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" {
			outPath = document.Filename(profile)
		}
		if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", outPath, len(pdf))
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("me", false, "export the authenticated user's own profile")
	exportCmd.Flags().StringP("output", "o", "", "output file (default Data_Diri_<name>.pdf)")
	rootCmd.AddCommand(exportCmd)
}
