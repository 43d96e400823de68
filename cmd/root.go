package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newsdesk/internal/app"
	"newsdesk/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "newsdesk",
	Short: "Newsdesk CLI",
	Long: `Newsdesk fetches news articles, classifies them into topics with a
keyword-based classifier and serves them over a REST API with reading
history and recommendations.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that don't touch the database or Redis skip app
		// initialization; classify only needs the in-process classifier.
		switch cmd.Name() {
		case "help", "version", "classify", "completion":
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		appInstance, err := app.NewApp(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Custom context key type to avoid collisions.
type contextKey string

const appKey contextKey = "app"

func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check database connectivity and other diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		fmt.Println("Checking primary database connectivity...")
		if err := appInstance.ArticleStore.Ping(ctx); err != nil {
			return fmt.Errorf("primary database ping failed: %w", err)
		}

		fmt.Println("Checking topic vector store connectivity...")
		if err := appInstance.VectorStore.Ping(ctx); err != nil {
			return fmt.Errorf("vector store ping failed: %w", err)
		}

		fmt.Println("All checks passed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
