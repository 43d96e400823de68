package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"newsdesk/internal/clix"
	"newsdesk/internal/services"
)

var (
	listLimit    int
	listOffset   int
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored articles",
	Long: `Displays stored articles, newest first. Supports pagination and
filtering by category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pagination, err := clix.ParsePagination(cmd.Flags())
		if err != nil {
			return err
		}
		category, err := clix.ParseCategory(cmd.Flags())
		if err != nil {
			return err
		}

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app from context: %w", err)
		}
		defer appInstance.Close()

		articles, err := appInstance.ArticleService.ListArticles(cmd.Context(), services.ListArticlesParams{
			Limit:    pagination.Limit,
			Offset:   pagination.Offset,
			Category: category,
		})
		if err != nil {
			return fmt.Errorf("failed to list articles: %w", err)
		}

		if len(articles) == 0 {
			fmt.Println("No articles found.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Category", "Conf", "Source", "Title"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, a := range articles {
			title := a.Title
			if len(title) > 70 {
				title = title[:67] + "..."
			}
			table.Append([]string{
				fmt.Sprintf("%d", a.ID),
				a.Category,
				fmt.Sprintf("%.0f", a.Confidence),
				a.SourceName,
				title,
			})
		}
		table.Render()
		fmt.Printf("\nDisplayed %d articles.\n", len(articles))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 20, "Number of articles to display per page")
	listCmd.Flags().IntVarP(&listOffset, "offset", "o", 0, "Number of articles to skip (for pagination)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category (e.g., Technology, Sports)")
}
