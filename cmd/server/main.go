package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/board"
	"github.com/Noor-Digital-LLC/minaret/internal/clock"
	"github.com/Noor-Digital-LLC/minaret/internal/db"
	"github.com/Noor-Digital-LLC/minaret/internal/http/middleware"
	"github.com/Noor-Digital-LLC/minaret/internal/model"
	"github.com/Noor-Digital-LLC/minaret/internal/redis"
)

// nopSink is used when no MQTT broker is configured; boards poll
// /api/board/state instead.
type nopSink struct{}

func (nopSink) Publish(model.DisplayState) {}

func main() {
	env := LoadEnvironment()

	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore()

	useRedis := env.RedisAddress != ""
	if useRedis {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	src := board.NewStoreSource(store, useRedis)

	var sink board.Sink = nopSink{}
	if env.MQTTBrokerURL != "" {
		middleware.SetBrokerURL(env.MQTTBrokerURL)
		client, err := middleware.CreateMQTTClient("minaret-server")
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt connect")
		}
		defer client.Disconnect(250)
		sink = middleware.NewDisplayPublisher(client, env.MQTTTopic)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := board.New(src, clock.Real{}, sink)
	go sched.Run(ctx)

	storageSystem := InitStorage(env)

	r := gin.Default()
	RegisterRoutes(r, env, store, storageSystem, src, sched)

	srv := &http.Server{
		Addr:    env.ServerAddress,
		Handler: r,
	}

	go func() {
		log.Info().Str("address", env.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
