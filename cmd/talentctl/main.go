// Package main is the entry point for the talentctl CLI. It talks to a
// running talent directory API: searching the public directory, exporting
// profile PDFs and printing dashboard statistics.
package main

import (
	"os"

	"go-talent-directory/pkg/client"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "talentctl",
	Short: "Command line client for the student talent directory",
	Long: `talentctl is a command line client for the student talent directory API.

It covers the read side of the directory: searching public profiles (one-shot
or interactively with the same debounce behavior the web frontend uses),
exporting a profile as a PDF and printing the dashboard counters.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(func() {
		// Optional, same convention as the API server.
		_ = godotenv.Load()
	})

	rootCmd.PersistentFlags().String("api", "", "base URL of the API (default $TALENT_API_URL or http://localhost:8080)")
	rootCmd.PersistentFlags().String("token", "", "access token for authenticated calls (default $TALENT_API_TOKEN)")
}

// apiBaseURL resolves the base URL from the flag, then the environment.
func apiBaseURL(cmd *cobra.Command) string {
	if api, _ := cmd.Flags().GetString("api"); api != "" {
		return api
	}
	if api := os.Getenv("TALENT_API_URL"); api != "" {
		return api
	}
	return "http://localhost:8080"
}

// newClient builds an API client from the persistent flags.
func newClient(cmd *cobra.Command) *client.Client {
	c := client.New(apiBaseURL(cmd))
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = os.Getenv("TALENT_API_TOKEN")
	}
	if token != "" {
		c.SetToken(token)
	}
	return c
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
