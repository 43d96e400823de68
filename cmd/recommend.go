package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var recommendLimit int

var recommendCmd = &cobra.Command{
	Use:   "recommend <user-id>",
	Short: "Recommend unread articles for a user",
	Long: `Suggests articles the user has not read yet, ranked by topic similarity
to their recent reading history.`,
	Args: cobra.ExactArgs(1),
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

		recs, err := appInstance.RecommendationService.Recommend(cmd.Context(), userID, recommendLimit)
		if err != nil {
			return fmt.Errorf("failed to build recommendations: %w", err)
		}

		if len(recs) == 0 {
			fmt.Println("No recommendations available.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Score", "Category", "Title"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, r := range recs {
			table.Append([]string{
				fmt.Sprintf("%d", r.Article.ID),
				fmt.Sprintf("%.3f", r.Score),
				r.Article.Category,
				r.Article.Title,
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "l", 0, "Maximum number of recommendations (0 uses the configured default)")
}
