package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobhunter/internal/model"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List providers and their credential status",
	Long:  "Reads the config and prints a table of every provider, whether it is searched by default, and whether its credentials are configured.",
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	defaults := model.NewSourceSet(cfg.Search.DefaultSources...)

	fmt.Printf("%-12s %-9s %s\n", "Provider", "Default", "Credentials")
	fmt.Println(strings.Repeat("─", 40))

	ready := 0
	for _, src := range model.AllSources {
		isDefault := "no"
		if defaults.Has(src) {
			isDefault = "yes"
		}
		fmt.Printf("%-12s %-9s %s\n", src, isDefault, credentialStatus(src, cfg.Credentials))
		if cfg.Credentials.Satisfies(src) {
			ready++
		}
	}

	fmt.Printf("\nTotal: %d providers (%d usable without request credentials)\n", len(model.AllSources), ready)
	return nil
}

func credentialStatus(src model.Source, creds model.Credentials) string {
	switch {
	case src != model.SourceAdzuna && src != model.SourceReed:
		return "not required"
	case creds.Satisfies(src):
		return "configured"
	default:
		return "missing (pass per request)"
	}
}
