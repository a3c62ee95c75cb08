package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trabajitos-sv/trabajitos-api/internal/db"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/repos"
)

func init() {
	statusCmd.AddCommand(listStatusesCmd)
	statusCmd.AddCommand(seedStatusesCmd)
}

var statusCmd = &cobra.Command{
	Use:   "statuses",
	Short: "Manage the status taxonomy",
}

// GetStatusesCmd returns the statuses command
func GetStatusesCmd() *cobra.Command {
	return statusCmd
}

var listStatusesCmd = &cobra.Command{
	Use:   "list",
	Short: "List status taxonomy entries",
	RunE: func(_ *cobra.Command, _ []string) error {
		repo := repos.NewStatusRepository(database)
		statuses, err := repo.List(context.Background())
		if err != nil {
			return fmt.Errorf("error fetching statuses: %w", err)
		}

		prettyJSON, err := json.MarshalIndent(statuses, "", "  ")
		if err != nil {
			return fmt.Errorf("error formatting response: %w", err)
		}
		fmt.Println(string(prettyJSON))
		return nil
	},
}

var seedStatusesCmd = &cobra.Command{
	Use:   "seed",
	Short: "Ensure the default status taxonomy exists",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := db.SeedStatuses(database); err != nil {
			return fmt.Errorf("error seeding statuses: %w", err)
		}
		fmt.Println("status taxonomy seeded")
		return nil
	},
}
