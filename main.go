package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"video-studio/domain/repository"
	"video-studio/infrastructure/cache"
	openaiclient "video-studio/infrastructure/clients/openai"
	"video-studio/infrastructure/configuration"
	"video-studio/infrastructure/logger"
	"video-studio/infrastructure/persistence"
	"video-studio/infrastructure/providers"
	"video-studio/infrastructure/pubsub"
	"video-studio/infrastructure/servicebus"
	httpHandler "video-studio/interfaces/http"
	"video-studio/server"
	"video-studio/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	// Durable job store: Mongo when reachable, in-memory otherwise.
	var jobRepository repository.IJob
	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB not available - using in-memory job store")
		mongoDb = nil
	} else if err := mongoDb.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB ping failed - using in-memory job store")
		mongoDb = nil
	}
	if mongoDb != nil {
		jobRepository = persistence.NewJobRepositoryMongo(mongoDb)
		logger.GetLogger().Info("MongoDB connected successfully")
	} else {
		jobRepository = persistence.NewJobRepositoryMemory()
	}

	// Revenue snapshots need PostgreSQL; the aggregator works without them.
	var snapshotRepository repository.IRevenueSnapshot
	psqlDb, err := persistence.NewPostgreSQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("PostgreSQL not available - revenue snapshots disabled")
	} else {
		if err := persistence.EnsureRevenueSchema(psqlDb); err != nil {
			logger.GetLogger().WithField("error", err).Error("failed ensuring revenue snapshot schema")
		}
		snapshotRepository = persistence.NewRevenueSnapshotRepository(psqlDb)
	}

	pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Pub/Sub not available - continuing without Pub/Sub features")
		pubSubClient = nil
	}

	azServiceBusClient, err := servicebus.NewServiceBus(ctx, configuration.C.ServiceBus.Namespace)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without Service Bus features")
		azServiceBusClient = nil
	}

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	var jobCache cache.IJobCache
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without job cache")
	} else {
		jobCache = cache.NewJobCache(redisClient)
		logger.GetLogger().Info("Redis client initialized successfully.")
	}

	registry := providers.NewRegistry(configuration.C.Video)
	uploadRegistry := providers.NewUploadRegistry()

	videoUC := usecase.NewVideoUsecase(registry, uploadRegistry, jobRepository)
	if jobCache != nil {
		videoUC = videoUC.WithCache(jobCache)
	}

	webhookUC := usecase.NewWebhookUsecase(jobRepository)
	if jobCache != nil {
		webhookUC = webhookUC.WithCache(jobCache)
	}
	if pubSubClient != nil {
		webhookUC = webhookUC.WithPubSub(pubsub.NewJobEvents(pubSubClient, configuration.C.Pubsub.Topic))
	}
	if azServiceBusClient != nil {
		webhookUC = webhookUC.WithServiceBus(servicebus.NewJobEvents(azServiceBusClient, configuration.C.ServiceBus.Queue))
	}

	monetizationUC := usecase.NewMonetizationUsecase(configuration.C.Monetization.SimulationMode).
		WithFallbackCredentials(
			configuration.C.Monetization.YouTubeAPIKey,
			configuration.C.Monetization.YouTubeChannelID,
			configuration.C.Monetization.TikTokAccessToken,
			configuration.C.Monetization.PatreonAccessToken,
		)
	if snapshotRepository != nil {
		monetizationUC = monetizationUC.WithSnapshots(snapshotRepository)
	}

	scriptClient := openaiclient.NewClient(configuration.C.OpenAI.APIKey, configuration.C.OpenAI.Model)
	scriptUC := usecase.NewScriptUsecase(scriptClient)

	videoHandler := httpHandler.NewVideoHandler(videoUC)
	webhookHandler := httpHandler.NewWebhookHandler(webhookUC)
	scriptHandler := httpHandler.NewScriptHandler(scriptUC)
	monetizationHandler := httpHandler.NewMonetizationHandler(monetizationUC)
	testHandler := httpHandler.NewTestHandler()

	router := server.InitiateRouter(videoHandler, webhookHandler, scriptHandler, monetizationHandler, testHandler)

	port := app.Port
	logger.GetLogger().WithFields(map[string]interface{}{"port": port, "tls": app.TLSEnabled}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if app.TLSEnabled {
			cert := app.TLSCertFile
			key := app.TLSKeyFile
			if cert == "" || key == "" {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
				if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			} else {
				logger.GetLogger().WithFields(map[string]interface{}{"cert": cert, "key": key}).Info("Serving HTTPS")
				if err := httpServer.ListenAndServeTLS(cert, key); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			}
		} else {
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
