package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "freight_crm/docs" // generated by swag init
	"freight_crm/internal/adapter/http/handlers"
	"freight_crm/internal/adapter/http/middleware"
	repository2 "freight_crm/internal/adapter/persistence/repository"
	"freight_crm/internal/config"
	"freight_crm/internal/infrastructure/database"
	"freight_crm/internal/infrastructure/directory"
	"freight_crm/internal/infrastructure/logging"
	"freight_crm/internal/infrastructure/metrics"
	"freight_crm/internal/infrastructure/payments"
	"freight_crm/internal/infrastructure/reports"
	"freight_crm/internal/infrastructure/storage"
	"freight_crm/internal/usecase"
	"freight_crm/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const PathV1 = "/v1"

// Handlers is every HTTP handler the API serves.
type Handlers struct {
	Deals        *handlers.DealHandler
	Parties      *handlers.PartyHandler
	CustomFields *handlers.CustomFieldHandler
	CostSheets   *handlers.CostSheetHandler
	Activity     *handlers.ActivityHandler
	Files        *handlers.FileHandler
	Search       *handlers.SearchHandler
	Reports      *handlers.ReportHandler
	Payments     *handlers.DealPaymentHandler
}

// Run will start the server and block until SIGINT or SIGTERM, then shut it
// down gracefully.
func Run(cfg config.Config, logger *zap.Logger) error {
	logger = logging.OrNop(logger)
	gin.SetMode(cfg.HTTP.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	h, cleanup, err := getHandlers(ctx, cfg, logger, m)
	if err != nil {
		return err
	}
	defer cleanup()

	router := NewRouter(h, m, logger)

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http] server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// NewRouter mounts the middlewares, the operational endpoints and every /v1
// route on a fresh engine.
func NewRouter(h Handlers, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group(PathV1)
	addPingRoutes(v1)
	addStageRoutes(v1, h.Deals)
	addDealRoutes(v1, h)
	addPartyRoutes(v1, h.Parties)
	addCustomFieldRoutes(v1, h.CustomFields)
	addSearchRoutes(v1, h.Search)
	addPaymentRoutes(v1, h.Payments)

	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics, logger *zap.Logger) {
	router.Use(logging.GinRecovery(logger))
	router.Use(logging.GinLogger(logger))
	router.Use(m.Middleware())
	router.Use(middleware.Session())
}

// getHandlers connects the backends and builds the use cases. Optional
// integrations that are not configured are left nil and their operations
// report themselves unavailable.
func getHandlers(ctx context.Context, cfg config.Config, logger *zap.Logger, m *metrics.Metrics) (Handlers, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
	if err != nil {
		return Handlers{}, nil, fmt.Errorf("connect dynamodb: %w", err)
	}

	blobs, err := storage.NewLocalBlobStore(cfg.Storage.FilesDir)
	if err != nil {
		return Handlers{}, nil, fmt.Errorf("open file store: %w", err)
	}
	cleanup := func() {
		if err := blobs.Close(); err != nil {
			logger.Warn("[storage] close failed", zap.Error(err))
		}
	}

	tables := cfg.Dynamo
	dealRepo := repository2.NewDealDynamoRepository(ddb, tables.DealsTable)
	stageRepo := repository2.NewStageDynamoRepository(ddb, tables.StagesTable)
	orgRepo := repository2.NewOrganizationDynamoRepository(ddb, tables.OrganizationsTable)
	contactRepo := repository2.NewContactDynamoRepository(ddb, tables.ContactsTable)
	customFieldRepo := repository2.NewCustomFieldDynamoRepository(ddb, tables.CustomFieldsTable)
	costSheetRepo := repository2.NewCostSheetDynamoRepository(ddb, tables.CostSheetsTable)
	noteRepo := repository2.NewNoteDynamoRepository(ddb, tables.NotesTable)
	doorRepo := repository2.NewDoorDynamoRepository(ddb, tables.DoorsTable)
	fileRepo := repository2.NewDealFileDynamoRepository(ddb, tables.FilesTable)
	paymentRepo := repository2.NewDealPaymentDynamoRepository(ddb, tables.PaymentsTable)

	var dir interfaces.IDirectory
	if client, err := directory.NewClient(cfg.Directory, logger); err != nil {
		logger.Info("[directory] lookups disabled", zap.Error(err))
	} else {
		dir = client
	}

	var renderer interfaces.IReportRenderer
	if client, err := reports.NewClient(cfg.Report, logger, m); err != nil {
		logger.Warn("[reports] renderer not configured", zap.Error(err))
	} else {
		renderer = client
	}

	var gateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.Payments, logger); err != nil {
		logger.Warn("[payments] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mp
	}

	customFieldUseCase := usecase.NewCustomFieldUseCase(customFieldRepo, cfg.CustomFields, logger, m)
	dealUseCase := usecase.NewDealUseCase(dealRepo, stageRepo, orgRepo, contactRepo, customFieldUseCase, logger)
	stageUseCase := usecase.NewStageUseCase(stageRepo)
	orgUseCase := usecase.NewOrganizationUseCase(orgRepo, dir, cfg.Search.Limit, logger)
	contactUseCase := usecase.NewContactUseCase(contactRepo, orgRepo, dir, cfg.Search.Limit, logger)
	costSheetUseCase := usecase.NewCostSheetUseCase(costSheetRepo, dealRepo, cfg.Profit, logger, m)
	noteUseCase := usecase.NewNoteUseCase(noteRepo, dealRepo, fileRepo, customFieldUseCase, logger)
	doorUseCase := usecase.NewDoorUseCase(doorRepo, dealRepo, logger)
	fileUseCase := usecase.NewFileUseCase(fileRepo, dealRepo, blobs, customFieldUseCase, cfg.Storage.MaxUploadSize, logger)
	searchUseCase := usecase.NewSearchUseCase(dealRepo, orgUseCase, contactUseCase, cfg.Search.Limit, logger)
	reportUseCase := usecase.NewReportUseCase(renderer, dealRepo, logger)
	paymentUseCase := usecase.NewDealPaymentUseCase(paymentRepo, dealRepo, costSheetRepo, gateway, cfg.Payments, logger)

	return Handlers{
		Deals:        handlers.NewDealHandler(dealUseCase, stageUseCase, logger),
		Parties:      handlers.NewPartyHandler(orgUseCase, contactUseCase, logger),
		CustomFields: handlers.NewCustomFieldHandler(customFieldUseCase, logger),
		CostSheets:   handlers.NewCostSheetHandler(costSheetUseCase, logger),
		Activity:     handlers.NewActivityHandler(noteUseCase, doorUseCase, logger),
		Files:        handlers.NewFileHandler(fileUseCase, logger),
		Search:       handlers.NewSearchHandler(searchUseCase, cfg.Search.Debounce, logger),
		Reports:      handlers.NewReportHandler(reportUseCase, logger),
		Payments:     handlers.NewDealPaymentHandler(paymentUseCase, logger),
	}, cleanup, nil
}
