package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage tags",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := buildRuntime()
		listed, err := rt.tags.List()
		if err != nil {
			return err
		}
		for _, tag := range listed {
			fmt.Printf("%s  %s\n", tag.ID, tag.Name)
		}
		return nil
	},
}

var tagsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := authenticatedRuntime()
		if err != nil {
			return err
		}
		tag, err := rt.tags.Create(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Created tag %s\n", tag.ID)
		return nil
	},
}

var tagsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := authenticatedRuntime()
		if err != nil {
			return err
		}
		if err := rt.tags.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted tag %s\n", args[0])
		return nil
	},
}

func init() {
	tagsCmd.AddCommand(tagsListCmd, tagsAddCmd, tagsRemoveCmd)
	rootCmd.AddCommand(tagsCmd)
}
