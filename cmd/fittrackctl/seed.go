package main

import (
	"fmt"
	"os"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/profile"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add the muscle/exercise catalog and the configured profile",
	Long: `Adds the muscles and library exercises that are not in the database yet, matched
by name. Existing rows are never changed, so running it twice is harmless.

Without --file the catalog built into the binary is used. A catalog file looks like:

  categories:
    - name: Push
      muscles:
        - name: Chest
          exercises: [Bench Press, Incline Dumbbell Press]`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := commandContext(cmd)

		seed, err := loadSeed(seedFile)
		if err != nil {
			return err
		}

		p, err := profile.FromConfig(cfg.Profile)
		if err != nil {
			return err
		}
		if err := profile.NewRepo(dbPool).Seed(ctx, p); err != nil {
			return err
		}

		res, err := catalog.NewRepo(dbPool).ApplySeed(ctx, seed)
		if err != nil {
			return err
		}

		color.Green("✓ catalog seeded")
		fmt.Printf("  muscles added:   %d\n", res.MusclesAdded)
		fmt.Printf("  exercises added: %d\n", res.ExercisesAdded)
		if res.MusclesAdded == 0 && res.ExercisesAdded == 0 {
			fmt.Println(color.New(color.Faint).Sprint("  nothing new, catalog already complete"))
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML catalog file (default: built-in catalog)")
}

func loadSeed(path string) (*catalog.Seed, error) {
	if path == "" {
		return catalog.DefaultSeed()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return catalog.LoadSeed(f)
}
