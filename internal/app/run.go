package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/max-lang05/RandomWeatherAPI/internal/config"
	"github.com/max-lang05/RandomWeatherAPI/internal/db"
	"github.com/max-lang05/RandomWeatherAPI/internal/httpapi"
	"github.com/max-lang05/RandomWeatherAPI/internal/migrate"
	weather "github.com/max-lang05/RandomWeatherAPI/internal/modules/weather"
	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/repository"
	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/service"
	weatherviews "github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/views"
	"github.com/max-lang05/RandomWeatherAPI/internal/mqtt"
)

const (
	feedConnectTimeout = 5 * time.Second
	shutdownTimeout    = 10 * time.Second
)

// Run opens the store, serves HTTP until ctx is cancelled and then shuts
// down gracefully.
func Run(ctx context.Context, cfg config.Config) error {
	slog.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"sqliteDriver", cfg.SQLiteDriver,
		"sqlitePath", cfg.SQLitePath,
		"sqliteMaxOpenConns", cfg.SQLiteMaxOpenConns,
		"sqliteMaxIdleConns", cfg.SQLiteMaxIdleConns,
		"sqliteConnMaxLifetime", cfg.SQLiteConnMaxLifetime,
		"sqliteLogQueries", cfg.SQLiteLogQueries,
		"mqttBroker", cfg.MQTTBroker,
		"mqttPort", cfg.MQTTPort,
		"mqttTopic", cfg.MQTTTopic,
	)

	dbConn, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(dbConn); closeErr != nil {
			slog.Error("db close", "error", closeErr)
		}
	}()

	if err := migrate.Run(ctx, dbConn); err != nil {
		return err
	}

	var ok int
	if err := dbConn.QueryRowContext(ctx, `SELECT 1`).Scan(&ok); err != nil {
		return fmt.Errorf("database check: %w", err)
	}
	if ok != 1 {
		return errors.New("database connection failed")
	}
	slog.Info("database connection successful")

	if err := weatherviews.LoadTemplates(); err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	// Left as a nil interface when the feed is off.
	var publisher service.ObservationPublisher
	if cfg.FeedEnabled() {
		feed := mqtt.NewPublisher(cfg, slog.Default())
		defer feed.Disconnect()

		connectCtx, connectCancel := context.WithTimeout(ctx, feedConnectTimeout)
		err := feed.Connect(connectCtx)
		connectCancel()
		if err != nil {
			slog.Warn("mqtt connection failed (continuing without feed until reconnect)", "error", err)
		}
		publisher = feed
	} else {
		slog.Info("observation feed disabled")
	}

	mux := httpapi.NewMux(dbConn, repository.NewRepository(dbConn))
	weather.RegisterFeature(mux, dbConn, publisher)

	srv := httpapi.NewServer(cfg, mux)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err = <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
