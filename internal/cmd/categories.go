package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := buildRuntime()
		listed, err := rt.categories.List()
		if err != nil {
			return err
		}
		for _, category := range listed {
			fmt.Printf("%s  %s\n", category.ID, category.Name)
		}
		return nil
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := authenticatedRuntime()
		if err != nil {
			return err
		}
		category, err := rt.categories.Create(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Created category %s\n", category.ID)
		return nil
	},
}

var categoriesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := authenticatedRuntime()
		if err != nil {
			return err
		}
		if err := rt.categories.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted category %s\n", args[0])
		return nil
	},
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd, categoriesAddCmd, categoriesRemoveCmd)
	rootCmd.AddCommand(categoriesCmd)
}
