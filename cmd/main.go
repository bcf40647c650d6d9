package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/vendyafrica/vendly-sub001/docs"
	"github.com/vendyafrica/vendly-sub001/internal/app"
	"github.com/vendyafrica/vendly-sub001/internal/config"
	"github.com/vendyafrica/vendly-sub001/internal/events"
	"github.com/vendyafrica/vendly-sub001/internal/handler"
	"github.com/vendyafrica/vendly-sub001/internal/momo"
	"github.com/vendyafrica/vendly-sub001/internal/notify"
	"github.com/vendyafrica/vendly-sub001/internal/postgres"
	"github.com/vendyafrica/vendly-sub001/internal/qstash"
	"github.com/vendyafrica/vendly-sub001/internal/repo"
	"github.com/vendyafrica/vendly-sub001/internal/service"
	"github.com/vendyafrica/vendly-sub001/internal/whatsapp"
	"github.com/vendyafrica/vendly-sub001/pkg/dedupe"
	"github.com/vendyafrica/vendly-sub001/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Vendly Order Reconciliation API
// @version         1.0
// @description     Payment webhooks, storefront payment endpoints and chat command processing.
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	dedupeStore := dedupe.NewMemoryStore()

	waClient := whatsapp.New(conf.WhatsApp)
	momoClient := momo.New(conf.Momo)
	queue := qstash.New(logger, conf.QStash, dedupeStore, conf.Dedupe.TTL)
	receiver := qstash.NewReceiver(conf.QStash)

	dispatcher := notify.NewDispatcher(logger, orderRepo, dedupeStore, queue, waClient, notify.Config{
		DefaultCountryCode: conf.Phone.DefaultCountryCode,
		TTL:                conf.Dedupe.TTL,
		DailyTTL:           conf.Dedupe.DailyTTL,
	})

	// With brokers configured, reconcilers hand events off through Kafka
	// and the consumer drives the dispatcher; without, the dispatcher runs
	// in-line.
	var sink events.Sink = dispatcher
	var publisher *events.KafkaPublisher
	if conf.Kafka.Enabled() {
		publisher = events.NewKafkaPublisher(conf.Kafka)
		defer publisher.Close()
		sink = publisher
	}

	orderService := service.NewOrderService(logger, txManager, orderRepo, sink)
	momoService := service.NewMomoService(logger, orderRepo, momoClient, orderService)
	chatService := service.NewChatService(logger, orderRepo, orderService, waClient, dedupeStore,
		conf.Phone.DefaultCountryCode, conf.Dedupe.TTL)

	application := app.New(logger, conf)
	application.SetHTTPHandlers(
		handler.NewPaystackHandler(logger, conf.Paystack.SecretKey, orderService),
		handler.NewMomoHandler(logger, momoService),
		handler.NewWhatsAppHandler(logger, conf.WhatsApp, chatService),
		handler.NewQueueHandler(logger, receiver, waClient),
	)
	if conf.Kafka.Enabled() {
		application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, dispatcher))
	}
	application.SetStarters(dedupeStore)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
