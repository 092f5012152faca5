package routes

import (
	"context"
	"database/sql"
	_ "geds_checkout/docs" // This will be auto-generated
	"geds_checkout/internal/adapter/http/handlers"
	repository2 "geds_checkout/internal/adapter/persistence/repository"
	"geds_checkout/internal/config"
	"geds_checkout/internal/domain/artifacts"
	"geds_checkout/internal/infrastructure/database"
	"geds_checkout/internal/infrastructure/ledger"
	"geds_checkout/internal/infrastructure/observability"
	"geds_checkout/internal/infrastructure/receipt"
	"geds_checkout/internal/infrastructure/scheduler"
	"geds_checkout/internal/usecase"
	"geds_checkout/internal/usecase/interfaces"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators the router is built from.
type Dependencies struct {
	Checkout usecase.ICheckoutUseCase
	Ledger   interfaces.IHistoryLedger
	NewRelic *newrelic.Application
}

// NewRouter builds the gin engine with every public route under /v1.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps.NewRelic)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout)
	historyHandler := handlers.NewHistoryHandler(deps.Ledger)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler)
	addHistoryRoutes(v1, historyHandler)
	return router
}

// Run will start the server
func Run() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	nrApp := observability.NewRelicApp(cfg.NewRelic)

	var redisClient *redis.Client
	if cfg.Ledger.Store == config.LedgerStoreRedis {
		var err error
		redisClient, err = database.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Connected to Redis")
	}

	store, db := recordStore(ctx, cfg, nrApp)
	if db != nil {
		defer db.Close()
	}

	releaser := &sessionReleaser{}
	redirects := scheduler.NewRedirectScheduler(releaser.onRedirect)
	defer redirects.Stop()

	historyLedger := usecase.NewHistoryLedger(ledgerSlot(cfg, redisClient), cfg.Ledger.Capacity, cfg.Ledger.Location())
	checkoutUseCase := usecase.NewCheckoutUseCase(
		repository2.NewCheckoutSessionMemoryRepository(),
		historyLedger,
		usecase.NewPaymentRecorder(store, cfg.Checkout.DemoUserEmail),
		nil,
		receipt.NewPDFExporter(),
		redirects,
		checkoutConfig(cfg.Checkout),
	)
	releaser.checkout = checkoutUseCase

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepIdleSessions(sweepCtx, checkoutUseCase, cfg.Checkout.SessionIdleTTL, cfg.Checkout.SessionSweepInterval)

	router := NewRouter(Dependencies{Checkout: checkoutUseCase, Ledger: historyLedger, NewRelic: nrApp})
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if nrApp != nil {
		nrApp.Shutdown(cfg.Server.ShutdownTimeout)
	}
	log.Println("Server exited")
}

// recordStore picks the external payment store from RECORD_STORE. A nil store
// makes every persistence attempt report "skipped".
func recordStore(ctx context.Context, cfg *config.Config, nrApp *newrelic.Application) (interfaces.IRecordStore, *sql.DB) {
	switch cfg.RecordStore {
	case config.RecordStoreDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx)
		if err != nil {
			log.Printf("[checkout][routes] dynamodb record store unavailable: %v", err)
			return nil, nil
		}
		return repository2.NewRecordStoreDynamoRepository(ddb), nil
	case config.RecordStorePostgres:
		db, err := database.NewPostgres(ctx, cfg.Database, nrApp)
		if err != nil {
			log.Printf("[checkout][routes] postgres record store unavailable: %v", err)
			return nil, nil
		}
		return repository2.NewRecordStorePostgresRepository(db), db
	default:
		log.Printf("[checkout][routes] record store disabled store=%q", cfg.RecordStore)
		return nil, nil
	}
}

func ledgerSlot(cfg *config.Config, redisClient *redis.Client) interfaces.ILedgerSlot {
	if redisClient != nil {
		return ledger.NewRedisSlot(redisClient, cfg.Ledger.Key)
	}
	return ledger.NewMemorySlot()
}

func checkoutConfig(c config.CheckoutConfig) usecase.CheckoutConfig {
	return usecase.CheckoutConfig{
		Organization:   c.Organization,
		Merchant:       artifacts.PixMerchant{Key: c.PixKey, Name: c.PixName, City: c.PixCity},
		RedirectTarget: c.RedirectTarget,
		RedirectDelay:  c.RedirectDelay,
		PixCopiedFor:   c.PixCopiedFor,
	}
}

func setMiddlewares(router *gin.Engine, nrApp *newrelic.Application) {
	if nrApp != nil {
		router.Use(nrgin.Middleware(nrApp))
	}
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
