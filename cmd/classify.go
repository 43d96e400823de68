package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"newsdesk/pkg/classifier"
)

var classifyFile string

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify a piece of text into a news category",
	Long: `Runs the keyword classifier over the given text (or a file with --file)
and prints the ranked category distribution. Works without a database.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if classifyFile != "" {
			data, err := os.ReadFile(classifyFile)
			if err != nil {
				return fmt.Errorf("read %s: %w", classifyFile, err)
			}
			text = string(data)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("no text given: pass it as arguments or via --file")
		}

		res, err := classifier.New().Classify(text)
		if err != nil {
			return fmt.Errorf("classification failed: %w", err)
		}

		fmt.Printf("Category: %s (%.1f%% confidence)\n\n",
			color.GreenString(res.Category.String()), res.Confidence)

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Category", "Confidence"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, p := range res.Predictions {
			table.Append([]string{p.Category.String(), fmt.Sprintf("%.1f", p.Confidence)})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVarP(&classifyFile, "file", "f", "", "Read the text to classify from a file")
}
