package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"topgreen/internal/changefeed"
	"topgreen/internal/config"
	"topgreen/internal/filestore"
	"topgreen/internal/http-server/handlers/auth/login"
	"topgreen/internal/http-server/handlers/blog/createPost"
	"topgreen/internal/http-server/handlers/blog/deletePost"
	"topgreen/internal/http-server/handlers/blog/getAllPosts"
	"topgreen/internal/http-server/handlers/blog/getPost"
	"topgreen/internal/http-server/handlers/blog/updatePost"
	"topgreen/internal/http-server/handlers/booking/createBooking"
	"topgreen/internal/http-server/handlers/booking/getAllBookings"
	"topgreen/internal/http-server/handlers/booking/printTicket"
	"topgreen/internal/http-server/handlers/booking/setBookingStatus"
	"topgreen/internal/http-server/handlers/booking/validateBooking"
	"topgreen/internal/http-server/handlers/event/createEvent"
	"topgreen/internal/http-server/handlers/event/deleteEvent"
	"topgreen/internal/http-server/handlers/event/getAllEvents"
	"topgreen/internal/http-server/handlers/event/getEventInfo"
	"topgreen/internal/http-server/handlers/event/updateEvent"
	"topgreen/internal/http-server/handlers/hero/deleteHeroItem"
	"topgreen/internal/http-server/handlers/hero/getHeroContent"
	"topgreen/internal/http-server/handlers/hero/saveHeroItem"
	"topgreen/internal/http-server/handlers/upload/uploadImage"
	"topgreen/internal/http-server/middleware/mwauth"
	"topgreen/internal/http-server/middleware/mwlogger"
	"topgreen/internal/lib/logger/handlers/slogpretty"
	"topgreen/internal/lib/logger/sl"
	"topgreen/internal/notifier"
	"topgreen/internal/realtime"
	"topgreen/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting top of the green", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	hub := realtime.NewHub()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var feed changefeed.Publisher
	if cfg.Redis.Enabled {
		rfeed, err := changefeed.NewRedis(cfg.Redis.Address, log)
		if err != nil {
			log.Error("failed to connect to redis", sl.Err(err))
			os.Exit(1)
		}
		defer rfeed.Close()

		go rfeed.Listen(ctx, hub)

		feed = rfeed
	} else {
		feed = changefeed.Local{B: hub}
	}

	var notify createBooking.Notifier
	if cfg.Notifier.Endpoint != "" {
		notify = notifier.NewWebhook(cfg.Notifier.Endpoint, cfg.Notifier.Timeout)
	} else {
		notify = notifier.Noop{}
	}

	store := filestore.New(cfg.Uploads.Dir, cfg.Uploads.BaseURL, cfg.Uploads.MaxBytes)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir(cfg.Uploads.Dir))
	router.Handle(cfg.Uploads.BaseURL+"/*", http.StripPrefix(cfg.Uploads.BaseURL+"/", fs))

	router.Get("/events", getAllEvents.New(log, storage, false))
	router.Get("/events/{id}", getEventInfo.New(log, storage))
	router.Post("/events/{id}/book", createBooking.New(log, storage, notify, feed, cfg.Booking.ValidationBaseURL))
	router.Get("/bookings/validate", validateBooking.New(log, storage))
	router.Get("/bookings/{code}/ticket", printTicket.New(log, storage, cfg.Booking.ValidationBaseURL))
	router.Get("/blog", getAllPosts.New(log, storage, true))
	router.Get("/blog/{id}", getPost.New(log, storage, true))
	router.Get("/hero", getHeroContent.New(log, storage, true))
	router.Post("/auth/login", login.New(log, cfg.Auth))
	router.Get("/ws/{topic}", hub.Handler(log))

	router.Route("/admin", func(r chi.Router) {
		r.Use(mwauth.Admin(log, cfg.Auth.Secret))

		r.Get("/events", getAllEvents.New(log, storage, true))
		r.Post("/events", createEvent.New(log, storage, feed))
		r.Put("/events/{id}", updateEvent.New(log, storage, feed))
		r.Delete("/events/{id}", deleteEvent.New(log, storage, feed))

		r.Get("/bookings", getAllBookings.New(log, storage))
		r.Patch("/bookings/{id}/status", setBookingStatus.New(log, storage, feed))

		r.Get("/blog", getAllPosts.New(log, storage, false))
		r.Get("/blog/{id}", getPost.New(log, storage, false))
		r.Post("/blog", createPost.New(log, storage, feed))
		r.Put("/blog/{id}", updatePost.New(log, storage, feed))
		r.Delete("/blog/{id}", deletePost.New(log, storage, feed))

		r.Get("/hero", getHeroContent.New(log, storage, false))
		r.Post("/hero/{kind}", saveHeroItem.New(log, storage, feed))
		r.Delete("/hero/{kind}/{id}", deleteHeroItem.New(log, storage, feed))

		r.Post("/uploads/{bucket}", uploadImage.New(log, store))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				completed, err := storage.CompletePastBookings()
				if err != nil {
					log.Error("failed to complete past bookings", sl.Err(err))
					continue
				}
				if completed > 0 {
					log.Info("past bookings completed", slog.Int64("count", completed))
					feed.TableChanged("bookings")
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
