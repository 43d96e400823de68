package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"newsdesk/internal/config"
	"newsdesk/internal/newsapi"
	"newsdesk/internal/rss"
	"newsdesk/internal/scraper"
	"newsdesk/internal/services"
	"newsdesk/internal/store"
	"newsdesk/internal/store/primary"
	"newsdesk/internal/store/vector"
)

// App holds the initialized stores and services. It is built once at startup
// and handed to the CLI commands, the HTTP handlers and the worker.
type App struct {
	Config *config.Config

	// Store interfaces, all backed by the primary Postgres store except the
	// topic vectors which live behind pgvector.
	ArticleStore store.ArticleStore
	UserStore    store.UserStore
	SessionStore store.SessionStore
	HistoryStore store.HistoryStore
	JobStore     store.JobStore
	VectorStore  store.TopicVectorStore
	JobClient    store.JobClient

	ClassificationService *services.ClassificationService
	ArticleService        *services.ArticleService
	FetchService          *services.FetchService
	AuthService           *services.AuthService
	HistoryService        *services.HistoryService
	RecommendationService *services.RecommendationService
	SummaryService        services.SummaryService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initPrimaryStore(ctx); err != nil {
		return nil, err
	}
	if err := app.initVectorStore(ctx); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	if err := app.initJobClient(); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	if err := app.initSummaryService(ctx); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	app.initCoreServices()

	log.Debug("application initialization complete")
	return app, nil
}

func (a *App) initPrimaryStore(ctx context.Context) error {
	ps, err := primary.NewPrimaryStore(ctx, a.Config.Database.Primary.DSN)
	if err != nil {
		return fmt.Errorf("init primary store: %w", err)
	}
	a.ArticleStore = ps
	a.UserStore = ps
	a.SessionStore = ps
	a.HistoryStore = ps
	a.JobStore = ps
	return nil
}

func (a *App) initVectorStore(ctx context.Context) error {
	dsn := a.Config.Database.Vector.DSN
	if dsn == "" {
		// The vector store may share the primary database.
		dsn = a.Config.Database.Primary.DSN
	}
	vs, err := vector.NewStore(ctx, dsn)
	if err != nil {
		return fmt.Errorf("init topic vector store: %w", err)
	}
	a.VectorStore = vs
	return nil
}

func (a *App) initJobClient() error {
	cfg := a.Config
	jc, err := store.NewAsynqJobClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, a.JobStore)
	if err != nil {
		return fmt.Errorf("init job client: %w", err)
	}
	a.JobClient = jc
	return nil
}

func (a *App) initSummaryService(ctx context.Context) error {
	cfg := a.Config
	if !cfg.Summarization.Enabled {
		return nil
	}

	switch cfg.Summarization.Provider {
	case "openai":
		a.SummaryService = services.NewOpenAISummaryService(
			cfg.Summarization.OpenaiAPIKey,
			cfg.Summarization.Model,
			cfg.Summarization.Prompt,
		)
	case "gemini":
		svc, err := services.NewGeminiSummaryService(
			ctx,
			cfg.Summarization.GoogleAPIKey,
			cfg.Summarization.Model,
			cfg.Summarization.Prompt,
		)
		if err != nil {
			return fmt.Errorf("init Gemini summary service: %w", err)
		}
		a.SummaryService = svc
	default:
		log.Warnf("unsupported summarization provider %q, summarization disabled", cfg.Summarization.Provider)
	}
	return nil
}

func (a *App) initCoreServices() {
	cfg := a.Config

	a.ClassificationService = services.NewClassificationService()
	a.ArticleService = services.NewArticleService(services.ArticleServiceDeps{
		ArticleStore:   a.ArticleStore,
		VectorStore:    a.VectorStore,
		Classification: a.ClassificationService,
		JobClient:      a.JobClient,
		Config:         cfg,
	})

	var headlines services.HeadlineSource
	if cfg.NewsAPI.APIKey != "" {
		client, err := newsapi.NewClient(cfg.NewsAPI.APIKey, cfg.NewsAPI.BaseURL, cfg.NewsAPI.ProxyURL)
		if err != nil {
			log.Warnf("init news API client: %v, relying on feed fallback", err)
		} else {
			headlines = client
		}
	}
	var feeds services.FeedSource
	if len(cfg.RSS.Feeds) > 0 {
		feeds = rss.NewFetcher(cfg.RSS.Feeds)
	}
	var bodies services.BodyScraper
	if cfg.Scraper.Enabled {
		bodies = scraper.New()
	}
	a.FetchService = services.NewFetchService(services.FetchServiceDeps{
		Headlines: headlines,
		Feeds:     feeds,
		Scraper:   bodies,
		Articles:  a.ArticleService,
		Config:    cfg,
	})

	a.AuthService = services.NewAuthService(a.UserStore, a.SessionStore, cfg)
	a.HistoryService = services.NewHistoryService(a.HistoryStore, a.ArticleStore)
	a.RecommendationService = services.NewRecommendationService(a.HistoryStore, a.ArticleStore, a.VectorStore, cfg)
}

func (a *App) cleanupPartialInit() {
	if a.JobClient != nil {
		a.JobClient.Close()
	}
	if a.VectorStore != nil {
		a.VectorStore.Close()
	}
}

// Close releases the app's connections.
func (a *App) Close() {
	if a.JobClient != nil {
		if err := a.JobClient.Close(); err != nil {
			log.Warnf("close job client: %v", err)
		}
	}
	if a.VectorStore != nil {
		if err := a.VectorStore.Close(); err != nil {
			log.Warnf("close vector store: %v", err)
		}
	}
	if cs, ok := a.SummaryService.(interface{ Close() error }); ok {
		if err := cs.Close(); err != nil {
			log.Warnf("close summary service: %v", err)
		}
	}
}
