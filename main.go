package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	mongoAdapter "vinews/internal/adapter/mongo"
	"vinews/internal/adapter/vnexpress"
	"vinews/internal/handler/httpapi"
	"vinews/internal/repository"
	"vinews/internal/usecase"
)

// loadEnv loads environment variables from .env when present.
func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables from the system")
	}
}

func main() {
	loadEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer logger.Sync()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	searcher, err := vnexpress.New(vnexpress.DefaultConfig(), vnexpress.WithLogger(logger))
	if err != nil {
		logger.Fatal("build searcher", zap.Error(err))
	}
	service := usecase.NewSearchService(searcher)

	ctx := context.Background()

	var store repository.ArticleStore
	if mongoURI := os.Getenv("MONGO_URI"); mongoURI != "" {
		dbName := os.Getenv("DB_NAME")
		collectionName := os.Getenv("COLLECTION_NAME")
		if dbName == "" || collectionName == "" {
			logger.Fatal("MONGO_URI is set but DB_NAME or COLLECTION_NAME is missing")
		}

		mongoClient, err := mongoAdapter.NewClient(ctx, mongoURI)
		if err != nil {
			logger.Fatal("connect to MongoDB", zap.Error(err))
		}
		defer func() {
			if err := mongoClient.Disconnect(ctx); err != nil {
				logger.Warn("disconnect from MongoDB", zap.Error(err))
			}
		}()

		store = mongoAdapter.NewStore(mongoClient.Database(dbName).Collection(collectionName))
		logger.Info("article store enabled",
			zap.String("database", dbName),
			zap.String("collection", collectionName),
		)
	} else {
		logger.Info("MONGO_URI not set, articles will not be persisted")
	}

	handler := httpapi.NewSearchHandler(service, store, logger)
	mux := http.NewServeMux()
	handler.Register(mux)

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("listening", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
