package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage stored drafts",
	Long:  `Create, list, view, update or delete drafts kept in local storage.`,
}

var draftNewCmd = &cobra.Command{
	Use:   "new [file]",
	Short: "Store a new draft",
	Long:  `Store a new draft from a markup file, or from stdin when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDraftNew,
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored drafts",
	Args:  cobra.NoArgs,
	RunE:  runDraftList,
}

var draftGetCmd = &cobra.Command{
	Use:   "get [draft-id]",
	Short: "Print a draft's markup source",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftGet,
}

var draftUpdateCmd = &cobra.Command{
	Use:   "update [draft-id] [file]",
	Short: "Replace a draft's body",
	Long:  `Replace a draft's body from a markup file, or from stdin when no file is given.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runDraftUpdate,
}

var draftDeleteCmd = &cobra.Command{
	Use:   "delete [draft-id]",
	Short: "Delete a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftDelete,
}

var draftTagsCmd = &cobra.Command{
	Use:   "tags [draft-id]",
	Short: "Suggest tags for a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftTags,
}

// tagLimit is a flag for the tags command.
var tagLimit int

func init() {
	draftTagsCmd.Flags().IntVarP(&tagLimit, "limit", "n", 0, "Maximum number of suggestions (default 5)")

	draftCmd.AddCommand(draftNewCmd)
	draftCmd.AddCommand(draftListCmd)
	draftCmd.AddCommand(draftGetCmd)
	draftCmd.AddCommand(draftUpdateCmd)
	draftCmd.AddCommand(draftDeleteCmd)
	draftCmd.AddCommand(draftTagsCmd)
	rootCmd.AddCommand(draftCmd)
}

func runDraftNew(cmd *cobra.Command, args []string) error {
	if err := ensureDraftService(); err != nil {
		return err
	}

	source, err := readSource(args)
	if err != nil {
		return err
	}

	draft, err := draftService.Create(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}

	cmd.Printf("Created draft %s\n", draft.ID)
	cmd.Printf("  Title: %s\n", draft.Title)
	return nil
}

func runDraftList(cmd *cobra.Command, _ []string) error {
	if err := ensureDraftService(); err != nil {
		return err
	}

	drafts, err := draftService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list drafts: %w", err)
	}

	if len(drafts) == 0 {
		cmd.Println("No drafts stored.")
		return nil
	}

	for i := range drafts {
		cmd.Printf("  %s\n", drafts[i].ID)
		cmd.Printf("    Title:   %s\n", drafts[i].Title)
		cmd.Printf("    Updated: %s\n", drafts[i].UpdatedAt.Format("2006-01-02 15:04"))
		if len(drafts[i].Tags) > 0 {
			cmd.Printf("    Tags:    %v\n", drafts[i].Tags)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d drafts\n", len(drafts))
	return nil
}

func runDraftGet(cmd *cobra.Command, args []string) error {
	if err := ensureDraftService(); err != nil {
		return err
	}

	draft, err := draftService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get draft: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), draft.Body)
	return nil
}

func runDraftUpdate(cmd *cobra.Command, args []string) error {
	if err := ensureDraftService(); err != nil {
		return err
	}

	source, err := readSource(args[1:])
	if err != nil {
		return err
	}

	draft, err := draftService.Update(cmd.Context(), args[0], source)
	if err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}

	cmd.Printf("Updated draft %s\n", draft.ID)
	cmd.Printf("  Title: %s\n", draft.Title)
	return nil
}

func runDraftDelete(cmd *cobra.Command, args []string) error {
	if err := ensureDraftService(); err != nil {
		return err
	}

	if err := draftService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	cmd.Printf("Deleted draft %s\n", args[0])
	return nil
}

func runDraftTags(cmd *cobra.Command, args []string) error {
	if err := ensureDraftService(); err != nil {
		return err
	}

	tags, err := draftService.SuggestTags(cmd.Context(), args[0], tagLimit)
	if err != nil {
		return fmt.Errorf("failed to suggest tags: %w", err)
	}

	if len(tags) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}

	for _, tag := range tags {
		cmd.Printf("  %-20s %.2f\n", tag.Name, tag.Score)
	}
	return nil
}
