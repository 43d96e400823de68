package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	fetchCategory string
	fetchEnqueue  bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and classify news articles",
	Long: `Fetches top headlines from the configured sources, classifies them and
stores the results. With --enqueue the fetch runs as a background job
instead of in-process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		if fetchEnqueue {
			if err := appInstance.JobClient.EnqueueFetchJob(cmd.Context(), fetchCategory); err != nil {
				return fmt.Errorf("failed to enqueue fetch job: %w", err)
			}
			fmt.Println("Fetch job enqueued.")
			return nil
		}

		if fetchCategory != "" {
			result, err := appInstance.FetchService.FetchTopic(cmd.Context(), fetchCategory)
			if err != nil {
				return fmt.Errorf("fetch failed: %w", err)
			}
			printFetchResult(result.Fetched, result.Stored, result.Duplicates, result.Skipped)
			return nil
		}

		result, err := appInstance.FetchService.FetchAllTopics(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}
		printFetchResult(result.Fetched, result.Stored, result.Duplicates, result.Skipped)
		return nil
	},
}

func printFetchResult(fetched, stored, duplicates, skipped int) {
	fmt.Printf("Fetched %d articles: %d stored, %d duplicates, %d skipped.\n",
		fetched, stored, duplicates, skipped)
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchCategory, "category", "c", "", "Fetch a single topic instead of all configured ones")
	fetchCmd.Flags().BoolVar(&fetchEnqueue, "enqueue", false, "Enqueue the fetch as a background job")
}
