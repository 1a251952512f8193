// Command dossier generates a character sheet offline and prints it to
// stdout, without any Discord credentials. Useful for tuning the catalog.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shinobirpg/shinobi-bot-discord/internal/catalog"
	"github.com/shinobirpg/shinobi-bot-discord/internal/generator"
	"github.com/shinobirpg/shinobi-bot-discord/internal/render"
)

var (
	catalogPath string
	format      string
	seed        int64
)

var rootCmd = &cobra.Command{
	Use:   "dossier",
	Short: "Generate a random shinobi dossier from the rule catalog",
	RunE:  run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "DATABASE.md", "path to the rule catalog")
	rootCmd.Flags().StringVar(&format, "format", "text", "output format: text or html")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "generator seed; 0 picks a random one")
}

func run(cmd *cobra.Command, args []string) error {
	loader := catalog.NewLoader()
	rules, err := loader.Load(catalogPath)
	if err != nil {
		return err
	}

	effectiveSeed := seed
	if effectiveSeed == 0 {
		effectiveSeed = time.Now().UnixNano()
	}

	svc := generator.NewService(&generator.ServiceConfig{
		Catalog: rules,
		Rand:    rand.New(rand.NewSource(effectiveSeed)),
	})

	sheet, err := svc.Generate()
	if err != nil {
		return err
	}

	switch format {
	case "text":
		fmt.Println(render.Text(sheet))
	case "html":
		fmt.Println(render.HTML(sheet))
	default:
		return fmt.Errorf("unknown format %q (want text or html)", format)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
