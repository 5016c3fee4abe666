package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/spahost/internal/app"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the bundle is deployed",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths, err := app.NewPathsFromExecutable()
	if err != nil {
		return err
	}

	if err := paths.Verify(); err != nil {
		return fmt.Errorf("bundle not deployed: %w", err)
	}

	count, err := paths.AssetCount()
	if err != nil {
		return err
	}

	fmt.Printf("⚡ bundle deployed at %s (%d assets)\n", paths.AssetRoot, count)
	return nil
}
