package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	gin "github.com/gin-gonic/gin"

	"pinelodge/internal/app/commands"
	appoutbox "pinelodge/internal/app/outbox"
	"pinelodge/internal/app/queries"

	availabilityapp "pinelodge/internal/app/handlers/availability"
	bookingapp "pinelodge/internal/app/handlers/booking"
	cabinsapp "pinelodge/internal/app/handlers/cabins"
	changerequestapp "pinelodge/internal/app/handlers/changerequest"
	promoapp "pinelodge/internal/app/handlers/promo"
	visitorsapp "pinelodge/internal/app/handlers/visitors"

	domainbooking "pinelodge/internal/domain/booking"
	domaincabins "pinelodge/internal/domain/cabins"
	domainchange "pinelodge/internal/domain/changerequest"
	domainpromo "pinelodge/internal/domain/promo"
	domainvisitors "pinelodge/internal/domain/visitors"

	"pinelodge/internal/infra/broker/kafka"
	"pinelodge/internal/infra/config"
	mongodb "pinelodge/internal/infra/db/mongo"
	ginserver "pinelodge/internal/infra/http/gin"
	"pinelodge/internal/infra/obs"
	infraoutbox "pinelodge/internal/infra/outbox"
	"pinelodge/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	app, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("application bootstrap failed", "error", err)
		os.Exit(1)
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: app.ready,
	}, app.handlers)

	if err := app.loadCabinFixtures(ctx, fixturePath(cfg.CabinFixtures, "cabins.json"), logger); err != nil {
		logger.Warn("cabin fixtures load failed", "error", err)
	}
	if err := app.loadPromoFixtures(ctx, fixturePath(cfg.PromoFixtures, "promos.json"), logger); err != nil {
		logger.Warn("promo fixtures load failed", "error", err)
	}

	if app.worker != nil {
		go func() {
			if err := app.worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("outbox worker stopped", "error", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	worker   *infraoutbox.Worker
	ready    func() error
	repos    struct {
		cabins domaincabins.Repository
		promos domainpromo.Repository
	}
}

func buildApplication(ctx context.Context, cfg config.Config, logger *slog.Logger) (application, error) {
	var (
		bookings  domainbooking.Repository
		cabins    domaincabins.Repository
		settings  domaincabins.SettingsRepository
		promos    domainpromo.Repository
		requests  domainchange.Repository
		visitors  domainvisitors.Repository
		box       appoutbox.Outbox
		worker    *infraoutbox.Worker
		readiness func() error
	)

	switch cfg.StorageMode {
	case "mongo":
		client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return application{}, fmt.Errorf("mongo connect: %w", err)
		}
		if err := client.Ping(ctx); err != nil {
			return application{}, fmt.Errorf("mongo ping: %w", err)
		}
		bookings = mongodb.NewBookingRepository(client.DB)
		cabins = mongodb.NewCabinRepository(client.DB)
		settings = mongodb.NewSettingsStore(client.DB)
		promos = mongodb.NewPromoRepository(client.DB)
		requests = mongodb.NewChangeRequestRepository(client.DB)
		visitors = mongodb.NewVisitorRepository(client.DB)
		readiness = func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx)
		}

		store := infraoutbox.NewStore(client.DB)
		box = store
		if len(cfg.KafkaBrokers) > 0 {
			producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
			if err != nil {
				return application{}, fmt.Errorf("kafka producer: %w", err)
			}
			worker = &infraoutbox.Worker{
				Store:       store,
				Producer:    producer,
				Logger:      logger,
				Interval:    cfg.OutboxPollInterval,
				TopicPrefix: cfg.KafkaTopicPrefix,
				Backoff:     cfg.RetryBackoff,
			}
		} else {
			logger.Warn("no kafka brokers configured, outbox events will accumulate")
		}
	default:
		bookings = memory.NewBookingRepository()
		cabins = memory.NewCabinRepository()
		settings = memory.NewSettingsStore()
		promos = memory.NewPromoRepository()
		requests = memory.NewChangeRequestRepository()
		visitors = memory.NewVisitorRepository()
		box = memory.NewOutbox()
	}

	encoder := appoutbox.JSONEventEncoder{}

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, bookingapp.RequestBookingCommand{}.Key(), &bookingapp.RequestBookingHandler{
		Bookings: bookings,
		Cabins:   cabins,
		Settings: settings,
		Promos:   promos,
		Outbox:   box,
		Encoder:  encoder,
	})
	commands.RegisterHandler(commandBus, bookingapp.CancelBookingCommand{}.Key(), &bookingapp.CancelBookingHandler{
		Bookings: bookings,
		Outbox:   box,
		Encoder:  encoder,
	})
	commands.RegisterHandler(commandBus, bookingapp.AttachGuestMessageCommand{}.Key(), &bookingapp.AttachGuestMessageHandler{
		Bookings: bookings,
	})
	commands.RegisterHandler(commandBus, changerequestapp.SubmitChangeRequestCommand{}.Key(), &changerequestapp.SubmitChangeRequestHandler{
		Bookings: bookings,
		Requests: requests,
		Outbox:   box,
		Encoder:  encoder,
	})
	commands.RegisterHandler(commandBus, visitorsapp.RecordVisitCommand{}.Key(), &visitorsapp.RecordVisitHandler{
		Visitors: visitors,
	})
	commands.RegisterHandler(commandBus, cabinsapp.UpdateCabinCommand{}.Key(), &cabinsapp.UpdateCabinHandler{
		Cabins: cabins,
	})
	commands.RegisterHandler(commandBus, cabinsapp.UpdateSettingsCommand{}.Key(), &cabinsapp.UpdateSettingsHandler{
		Settings: settings,
	})

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, bookingapp.LookupBookingQuery{}.Key(), &bookingapp.LookupBookingHandler{
		Bookings: bookings,
	})
	queries.RegisterHandler(queryBus, bookingapp.ListGuestBookingsQuery{}.Key(), &bookingapp.ListGuestBookingsHandler{
		Bookings: bookings,
	})
	queries.RegisterHandler(queryBus, availabilityapp.OccupiedDatesQuery{}.Key(), &availabilityapp.OccupiedDatesHandler{
		Cabins:   cabins,
		Bookings: bookings,
	})
	queries.RegisterHandler(queryBus, promoapp.ValidatePromoQuery{}.Key(), &promoapp.ValidatePromoHandler{
		Promos: promos,
	})
	queries.RegisterHandler(queryBus, cabinsapp.ListCabinsQuery{}.Key(), &cabinsapp.ListCabinsHandler{
		Cabins: cabins,
	})
	queries.RegisterHandler(queryBus, cabinsapp.GetSettingsQuery{}.Key(), &cabinsapp.GetSettingsHandler{
		Settings: settings,
	})
	queries.RegisterHandler(queryBus, changerequestapp.ListChangeRequestsQuery{}.Key(), &changerequestapp.ListChangeRequestsHandler{
		Bookings: bookings,
		Requests: requests,
	})

	identity := ginserver.IdentityMiddleware{GatewaySecret: cfg.GatewaySecret, Logger: logger}

	app := application{
		handlers: ginserver.Handlers{
			Booking:            ginserver.BookingHandler{Commands: commandBus, Queries: queryBus, Logger: logger},
			Availability:       ginserver.AvailabilityHandler{Queries: queryBus, Logger: logger},
			Promo:              ginserver.PromoHandler{Queries: queryBus, Logger: logger},
			ChangeRequest:      ginserver.ChangeRequestHandler{Commands: commandBus, Queries: queryBus, Logger: logger},
			Visitor:            ginserver.VisitorHandler{Commands: commandBus, Logger: logger},
			Cabin:              ginserver.CabinHandler{Commands: commandBus, Queries: queryBus, Logger: logger},
			IdentityMiddleware: func(c *gin.Context) { identity.Handle(c) },
		},
		worker: worker,
		ready:  readiness,
	}
	app.repos.cabins = cabins
	app.repos.promos = promos
	return app, nil
}

type cabinFixture struct {
	Name         string `json:"name"`
	MaxCapacity  int    `json:"max_capacity"`
	RegularPrice int64  `json:"regular_price_cents"`
	Discount     int64  `json:"discount_cents"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
}

func (a application) loadCabinFixtures(ctx context.Context, path string, logger *slog.Logger) error {
	var fixtures []cabinFixture
	ok, err := readFixtures(path, &fixtures, logger)
	if err != nil || !ok {
		return err
	}
	for _, fx := range fixtures {
		cabin := domaincabins.Cabin{
			ID:                domaincabins.CabinID(domaincabins.CanonicalName(fx.Name)),
			Name:              fx.Name,
			MaxCapacity:       fx.MaxCapacity,
			RegularPriceCents: fx.RegularPrice,
			DiscountCents:     fx.Discount,
			Description:       fx.Description,
			ImageURL:          fx.ImageURL,
		}
		if err := cabin.Validate(); err != nil {
			logger.Error("cabin fixture invalid", "cabin", fx.Name, "error", err)
			continue
		}
		if err := a.repos.cabins.Save(ctx, &cabin); err != nil {
			logger.Error("cannot store cabin fixture", "cabin", fx.Name, "error", err)
			continue
		}
		logger.Info("cabin fixture imported", "cabin", cabin.Name)
	}
	return nil
}

type promoFixture struct {
	Code          string `json:"code"`
	Description   string `json:"description"`
	DiscountType  string `json:"discount_type"`
	DiscountValue int64  `json:"discount_value"`
	Active        bool   `json:"active"`
	ValidUntil    string `json:"valid_until"`
	MaxUses       *int64 `json:"max_uses"`
}

func (a application) loadPromoFixtures(ctx context.Context, path string, logger *slog.Logger) error {
	var fixtures []promoFixture
	ok, err := readFixtures(path, &fixtures, logger)
	if err != nil || !ok {
		return err
	}
	for _, fx := range fixtures {
		code := domainpromo.PromoCode{
			Code:          domainpromo.Canonical(fx.Code),
			Description:   fx.Description,
			DiscountType:  domainpromo.DiscountType(fx.DiscountType),
			DiscountValue: fx.DiscountValue,
			Active:        fx.Active,
			MaxUses:       fx.MaxUses,
		}
		if strings.TrimSpace(fx.ValidUntil) != "" {
			t, err := time.Parse(time.RFC3339, fx.ValidUntil)
			if err != nil {
				logger.Error("promo fixture has bad valid_until", "code", fx.Code, "error", err)
				continue
			}
			code.ValidUntil = &t
		}
		if err := code.Validate(); err != nil {
			logger.Error("promo fixture invalid", "code", fx.Code, "error", err)
			continue
		}
		if err := a.repos.promos.Save(ctx, &code); err != nil {
			logger.Error("cannot store promo fixture", "code", fx.Code, "error", err)
			continue
		}
		logger.Info("promo fixture imported", "code", code.Code)
	}
	return nil
}

func readFixtures(path string, out any, logger *slog.Logger) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("fixtures file not found, skipping", "path", path)
			return false, nil
		}
		return false, fmt.Errorf("read fixtures: %w", err)
	}
	if len(data) == 0 {
		logger.Warn("fixtures file empty", "path", path)
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode fixtures: %w", err)
	}
	return true, nil
}

func fixturePath(configured, filename string) string {
	if configured != "" {
		return configured
	}
	return filepath.Join("data", filename)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
