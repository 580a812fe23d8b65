package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/felino/storefront/config"
	"github.com/felino/storefront/internal/adapter/catalog"
	"github.com/felino/storefront/internal/adapter/httphandler"
	"github.com/felino/storefront/internal/adapter/kafka"
	"github.com/felino/storefront/internal/adapter/storage"
	"github.com/felino/storefront/internal/core/domain"
	"github.com/felino/storefront/internal/core/service"
	"github.com/felino/storefront/pkg/retry"
	"github.com/felino/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type serdes struct {
	product      schema.Serde
	notification schema.Serde
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	serdes     serdes
	sqldb      storage.SQLDB
	notifier   kafka.NotificationsProducer
	consumer   kafka.CatalogConsumer
	catalogSvc *service.CatalogService
	cartSvc    *service.CartService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initStorage()
	app.initNotifier()
	app.initCoreServices()
	app.initCatalogConsumer()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs
	ctx := app.ctx

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	productSubject := app.cfg.Broker.Topics.CatalogProducts + "-value"
	productSerde, err := schema.NewSerdeProductV1(
		ctx,
		schema.SubjectOpt(productSubject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	notificationSubject := app.cfg.Broker.Topics.CartNotifications + "-value"
	notificationSerde, err := schema.NewSerdeNotificationV1(
		ctx,
		schema.SubjectOpt(notificationSubject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.product = productSerde
	app.serdes.notification = notificationSerde
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqldb = sqldb
}

func (app *App) initNotifier() {
	const op = "App.initNotifier"

	notifier, err := kafka.NewNotificationsProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.Topics.CartNotifications,
		),
		kafka.ProducerEncoderOpt(app.serdes.notification),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.notifier = notifier
}

func (app *App) initCoreServices() {
	cartStorage := storage.NewCartSessionsRepository(app.sqldb)

	app.catalogSvc = service.NewCatalogService()
	app.cartSvc = service.NewCartService(
		app.ctx, cartStorage, app.notifier, app.cfg.Cart.StorageKey,
	)
}

func (app *App) initCatalogConsumer() {
	const op = "App.initCatalogConsumer"

	consumer, err := kafka.NewCatalogConsumer(
		kafka.ConsumerClientOpt(
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.Topics.CatalogProducts,
			app.cfg.Broker.Consumers.CatalogGroup,
		),
		kafka.ConsumerDecoderOpt(app.serdes.product),
		kafka.ConsumerUpdaterOpt(app.catalogSvc),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.consumer = consumer
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.catalogSvc)
	httphandler.RegisterCart(mux, app.cartSvc, app.catalogSvc)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)
	go app.consumer.Run(app.ctx)
	go app.loadCatalog()

	slog.Info("application is running")
}

// loadCatalog performs the initial asynchronous catalog load. The
// generation reserved up front keeps a late completion from clobbering
// catalog state applied in the meantime.
func (app *App) loadCatalog() {
	const op = "App.loadCatalog"
	log := slog.With("op", op)

	gen := app.catalogSvc.BeginLoad()
	src := catalog.NewSeedCatalog(
		app.cfg.Catalog.SeedPath, app.cfg.Catalog.LoadDelay,
	)

	retryCfg := retry.Config{MaxAttempts: 3}
	ps, err := retry.DoWithResult(app.ctx, retryCfg,
		func() ([]domain.Product, error) {
			return src.Fetch(app.ctx)
		})
	if err != nil {
		log.Error("failed to load catalog", "err", err)
		return
	}

	app.catalogSvc.ReplaceCatalog(app.ctx, gen, ps)
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.consumer.Close()
	app.notifier.Close()
	app.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
