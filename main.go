package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"buspass/internal/client"
	intconfig "buspass/internal/config"
	"buspass/internal/db"
	"buspass/internal/flow"
	router "buspass/internal/http"
	"buspass/internal/http/handlers"
	"buspass/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	sqlDB, err := intconfig.ConnectDB(env.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer intconfig.CloseDB()

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 15*time.Second)
	if err := db.EnsureSchema(schemaCtx, sqlDB); err != nil {
		cancelSchema()
		log.Fatalf("failed to prepare schema: %v", err)
	}
	cancelSchema()

	store, closeStore := sessionStore(env)
	defer closeStore()

	app := handlers.AppHandlers{
		Flow: flow.Flow{
			API:          client.New(env.APIBaseURL, env.APITimeout),
			PaymentDelay: env.PaymentDelay,
		},
		Store:        store,
		SessionTTL:   env.SessionTTL,
		SecureCookie: env.GinMode == gin.ReleaseMode,
	}
	r := router.NewRouter(env, router.Deps{App: app})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped")
}

// sessionStore uses Redis when REDIS_ADDR is set and falls back to process memory.
func sessionStore(env intconfig.Env) (session.Store, func()) {
	if env.RedisAddr == "" {
		log.Printf("session store: memory (ttl=%s)", env.SessionTTL)
		return session.NewMemoryStore(env.SessionTTL), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rdb, err := session.NewRedisClient(ctx, session.RedisConfig{
		Addr:     env.RedisAddr,
		Password: env.RedisPassword,
		DB:       env.RedisDB,
	})
	if err != nil {
		log.Fatalf("failed to connect to redis at %s: %v", env.RedisAddr, err)
	}
	log.Printf("session store: redis %s (ttl=%s)", env.RedisAddr, env.SessionTTL)
	return session.NewRedisStore(rdb, env.SessionTTL), func() { _ = rdb.Close() }
}
