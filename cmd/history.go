package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history <user-id>",
	Short: "Show a user's reading history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user ID: %s", args[0])
		}

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		items, err := appInstance.HistoryService.ListHistory(cmd.Context(), userID, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No reading history found.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Article ID", "Read At", "Category", "Title"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, item := range items {
			category, title := "-", "(deleted)"
			if item.Article != nil {
				category = item.Article.Category
				title = item.Article.Title
			}
			table.Append([]string{
				fmt.Sprintf("%d", item.Entry.ArticleID),
				item.Entry.ReadAt.Format("2006-01-02 15:04"),
				category,
				title,
			})
		}
		table.Render()
		return nil
	},
}

var markReadCmd = &cobra.Command{
	Use:   "mark-read <user-id> <article-id>",
	Short: "Record that a user read an article",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user ID: %s", args[0])
		}
		articleID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid article ID: %s", args[1])
		}

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		entry, err := appInstance.HistoryService.RecordRead(cmd.Context(), userID, articleID)
		if err != nil {
			return fmt.Errorf("failed to record read: %w", err)
		}
		fmt.Printf("Recorded: user %d read article %d at %s.\n",
			entry.UserID, entry.ArticleID, entry.ReadAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(markReadCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 50, "Maximum number of entries to display")
}
