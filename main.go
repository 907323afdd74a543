package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eauctionbuyer/internal/bidaudit"
	"eauctionbuyer/internal/catalog"
	"eauctionbuyer/internal/config"
	"eauctionbuyer/internal/database/db_client"
	"eauctionbuyer/internal/database/repository"
	"eauctionbuyer/internal/database/schema"
	"eauctionbuyer/internal/http/http_server"
	"eauctionbuyer/internal/models"
	"eauctionbuyer/internal/redis/redis_client"
	"eauctionbuyer/internal/redis/redis_functions"
	"eauctionbuyer/internal/sequence"
	"eauctionbuyer/internal/services/bid"
	"eauctionbuyer/internal/services/bidflow"
	"eauctionbuyer/internal/services/buyer"
	"eauctionbuyer/internal/syncseq"

	"go.uber.org/zap"
)

var (
	Log, _ = zap.NewDevelopment()
)

//	@title			E-Auction Buyer API
//	@version		1.0
//	@description	Buyers place and amend bids on seller products.
//	@BasePath		/e-auction/api/v1/buyer
func main() {
	defer Log.Sync()
	zap.ReplaceGlobals(Log)

	// 1. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		Log.Fatal("Failed to load configuration", zap.Error(err))
	}
	Log.Debug("Configuration loaded successfully", zap.Any("config", cfg))

	// 2. Context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	// 3. Redis: id sequences and the audit stream
	redisClient, err := redis_client.NewRedisClient(ctx, cfg.RedisHost, int(cfg.RedisPort))
	if err != nil {
		Log.Fatal("Failed to create Redis client", zap.Error(err))
	}
	defer redisClient.Close()

	libs, err := redis_functions.LoadAll(ctx, redisClient)
	if err != nil {
		Log.Fatal("load-redis-funcs", zap.Error(err))
	}
	Log.Debug("Redis functions loaded", zap.Strings("libraries", libs))

	// 4. Postgres: buyers, bids and the audit table
	pgDb, err := db_client.Open(ctx, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDb)
	if err != nil {
		Log.Fatal("pg-open", zap.Error(err))
	}
	defer pgDb.Close()

	if err := schema.Apply(ctx, pgDb); err != nil {
		Log.Fatal("pg-schema", zap.Error(err))
	}

	buyerRepo := repository.NewPostgresBuyerRepository(pgDb)
	bidRepo := repository.NewPostgresBidRepository(pgDb)

	// 5. Sequences, raised above whatever Postgres already holds
	seq := sequence.NewSequenceService(redisClient)
	if err := syncseq.Run(ctx, seq, cfg.SequenceSyncInterval,
		syncseq.Source{Sequence: models.BuyerSequenceName, Table: buyerRepo},
		syncseq.Source{Sequence: models.BidSequenceName, Table: bidRepo},
	); err != nil {
		Log.Fatal("sequence-sync", zap.Error(err))
	}

	// 6. Services
	products := catalog.NewProductCatalog(catalog.Options{
		Scheme:        cfg.SellerServiceScheme,
		Host:          cfg.SellerServiceHost,
		Port:          cfg.SellerServicePort,
		ProductSearch: cfg.SellerServiceProductSearch,
		Timeout:       cfg.SellerServiceTimeout,
	})
	loc := cfg.Location()
	now := func() time.Time { return time.Now().In(loc) }

	buyerService := buyer.NewBuyerService(buyerRepo, seq)
	bidService := bid.NewBidService(bidRepo, seq, products, now)
	flowService := bidflow.NewBidFlowService(buyerService, bidService, bidaudit.NewAuditLog(redisClient, pgDb))

	// 7. Background: audit stream -> Postgres
	bidaudit.Run(ctx, redisClient, pgDb)

	// 8. HTTP server
	httpServer := http_server.NewHttpServer(ctx, cfg.HttpServerPort, flowService)
	go func() {
		<-ctx.Done()
		_ = httpServer.Dispose()
	}()
	if err := httpServer.Start(); err != nil {
		Log.Fatal("Failed to start HTTP server", zap.Error(err))
	}
	Log.Info("http_stopped")
}
