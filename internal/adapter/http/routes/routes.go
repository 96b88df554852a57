package routes

import (
	"log"

	_ "fac_gateway/docs"
	"fac_gateway/internal/adapter/http/handlers"
	"fac_gateway/internal/infrastructure/config"
	"fac_gateway/internal/infrastructure/logger"
	"fac_gateway/internal/infrastructure/payments/fac"
	"fac_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	setMiddlewares(zl)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, zl)

	zl.Info("[payment][http] starting server", zap.String("port", cfg.Port), zap.Bool("fac_live", cfg.FAC.Live))
	if err := router.Run(":" + cfg.Port); err != nil {
		zl.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(cfg config.Config, zl *zap.Logger) {
	gateway := newGateway(cfg.FAC, zl)
	if cfg.FAC.MerchantID == "" || cfg.FAC.Password == "" {
		zl.Warn("[payment][http] FAC credentials missing, charges will fail validation")
	}

	chargeUseCase := usecase.NewChargeUseCase(gateway, zl)
	chargeHandler := handlers.NewChargeHandler(chargeUseCase, zl)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addChargeRoutes(v1, chargeHandler)
}

func newGateway(cfg config.FACConfig, zl *zap.Logger) *fac.Gateway {
	opts := []fac.Option{
		fac.WithAcquirerID(cfg.AcquirerID),
		fac.WithHTTPTimeout(cfg.HTTPTimeout),
		fac.WithLogger(zl),
	}
	if cfg.Mock {
		zl.Warn("[payment][gateway] mock mode enabled, charges are approved without calling FAC")
		opts = append(opts, fac.WithTransport(fac.NewStubTransport(zl)))
	}
	return fac.NewGateway(cfg.MerchantID, cfg.Password, cfg.Live, opts...)
}

func setMiddlewares(zl *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zl.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
