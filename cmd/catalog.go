package cmd

import (
	"fmt"
	"strings"

	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/scoring"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the keyword catalog used by the heuristic scorers",
	Run: func(_ *cobra.Command, _ []string) {
		catalog := scoring.Default()
		fmt.Printf("keywords (%d):\n", catalog.Len())
		for _, keyword := range catalog.Keywords() {
			fmt.Printf("  %s\n", keyword)
		}
		fmt.Printf("action verbs:\n  %s\n", strings.Join(catalog.ActionVerbs(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
