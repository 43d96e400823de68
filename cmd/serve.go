package cmd

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"newsdesk/internal/apihandlers"
)

var (
	serveAddr string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the newsdesk HTTP API server",
	Long: `Starts an HTTP server exposing articles, classification, reading
history and recommendations via a RESTful API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		router := gin.Default()
		apiHandler := apihandlers.NewAPIHandler(appInstance)

		v1 := router.Group("/api/v1")
		{
			authGroup := v1.Group("/auth")
			{
				authGroup.POST("/register", apiHandler.RegisterHandler)
				authGroup.POST("/login", apiHandler.LoginHandler)
				authGroup.POST("/logout", apiHandler.LogoutHandler)
			}

			articleGroup := v1.Group("/articles")
			{
				articleGroup.GET("", apiHandler.ListArticlesHandler)
				articleGroup.GET("/:id", apiHandler.GetArticleHandler)
				articleGroup.DELETE("/:id", apiHandler.DeleteArticleHandler)
				articleGroup.POST("/:id/read", apiHandler.AuthMiddleware(), apiHandler.RecordReadHandler)
			}

			v1.POST("/classify", apiHandler.ClassifyHandler)
			v1.POST("/fetch", apiHandler.FetchHandler)

			authed := v1.Group("")
			authed.Use(apiHandler.AuthMiddleware())
			{
				authed.GET("/history", apiHandler.ListHistoryHandler)
				authed.GET("/recommendations", apiHandler.RecommendationsHandler)
			}
		}

		router.GET("/health", func(c *gin.Context) {
			if err := appInstance.ArticleStore.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		listenAddr := fmt.Sprintf("%s:%s", serveAddr, servePort)
		log.Infof("starting newsdesk API server on http://%s", listenAddr)

		if err := router.Run(listenAddr); err != nil {
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost", "Address to listen on (e.g., '0.0.0.0' for all interfaces)")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")
}
