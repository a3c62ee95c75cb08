package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trabajitos-sv/trabajitos-api/internal/auth"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/repos"
)

func init() {
	userCmd.AddCommand(listUsersCmd)
	userCmd.AddCommand(createSysadminCmd)

	createSysadminCmd.Flags().StringP("name", "n", "", "name of the administrator")
	createSysadminCmd.Flags().StringP("email", "e", "", "email of the administrator")
	createSysadminCmd.Flags().StringP("phone", "p", "", "phone of the administrator")
	createSysadminCmd.Flags().String("password", "", "password of the administrator")
	_ = createSysadminCmd.MarkFlagRequired("name")
	_ = createSysadminCmd.MarkFlagRequired("email")
	_ = createSysadminCmd.MarkFlagRequired("password")
}

var userCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
}

// GetUsersCmd returns the users command
func GetUsersCmd() *cobra.Command {
	return userCmd
}

// listUsersCmd represents the command to list users
var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(_ *cobra.Command, _ []string) error {
		repo := repos.NewUserRepository(database)
		page, err := repo.List(context.Background(), &models.ListOptions{PageSize: models.MaxPageSize})
		if err != nil {
			return fmt.Errorf("error fetching users: %w", err)
		}

		prettyJSON, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return fmt.Errorf("error formatting response: %w", err)
		}
		fmt.Println(string(prettyJSON))
		return nil
	},
}

// createSysadminCmd represents the command to bootstrap an administrator
var createSysadminCmd = &cobra.Command{
	Use:   "create-sysadmin",
	Short: "Create a sysadmin user",
	Long:  "Create an administrator account directly in the database.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		password, _ := cmd.Flags().GetString("password")

		hashed, err := auth.HashPassword(password)
		if err != nil {
			return err
		}

		user := &models.User{
			Name:           name,
			Email:          email,
			Phone:          phone,
			HashedPassword: hashed,
			Role:           models.UserRoleSysadmin,
		}

		repo := repos.NewUserRepository(database)
		if err := repo.Create(context.Background(), user); err != nil {
			return fmt.Errorf("error creating sysadmin: %w", err)
		}
		fmt.Printf("created sysadmin %q (id %d)\n", user.Email, user.ID)
		return nil
	},
}
