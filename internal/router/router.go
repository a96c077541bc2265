package router

import (
	"github.com/CammeCommerce/Backend-sub000/internal/config"
	"github.com/CammeCommerce/Backend-sub000/internal/handler"
	"github.com/CammeCommerce/Backend-sub000/internal/middleware"
	"github.com/CammeCommerce/Backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires services into handlers.
func SetupRouter(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	matching := service.NewMatchingService(db)
	orders := service.NewOrderService(db, matching)
	deposits := service.NewDepositService(db, matching)
	withdrawals := service.NewWithdrawalService(db, matching)
	online := service.NewOnlineService(db)
	profitLoss := service.NewProfitLossService(db)
	columnConfig := service.NewColumnConfigService(db)
	reference := service.NewReferenceService(db)

	api := r.Group("/api")
	api.Use(middleware.AuditMiddleware(db, log))

	orderHandler := handler.NewOrderHandler(orders, columnConfig, cfg.App.MaxUploadBytes)
	api.POST("/orders", orderHandler.CreateOrder)
	api.GET("/orders", orderHandler.ListOrders)
	api.PUT("/orders/:id", orderHandler.ModifyOrder)
	api.DELETE("/orders/:id", orderHandler.DeleteOrder)
	api.POST("/orders/import", orderHandler.ImportOrders)
	api.GET("/orders/export", orderHandler.ExportOrders)

	depositHandler := handler.NewDepositHandler(deposits)
	api.POST("/deposits", depositHandler.CreateDeposit)
	api.GET("/deposits", depositHandler.ListDeposits)
	api.PUT("/deposits/:id", depositHandler.ModifyDeposit)
	api.DELETE("/deposits/:id", depositHandler.DeleteDeposit)

	withdrawalHandler := handler.NewWithdrawalHandler(withdrawals)
	api.POST("/withdrawals", withdrawalHandler.CreateWithdrawal)
	api.GET("/withdrawals", withdrawalHandler.ListWithdrawals)
	api.PUT("/withdrawals/:id", withdrawalHandler.ModifyWithdrawal)
	api.DELETE("/withdrawals/:id", withdrawalHandler.DeleteWithdrawal)

	onlineHandler := handler.NewOnlineHandler(online)
	api.POST("/online", onlineHandler.CreateOnline)
	api.GET("/online", onlineHandler.ListOnline)
	api.PUT("/online/:id", onlineHandler.ModifyOnline)
	api.DELETE("/online/:id", onlineHandler.DeleteOnline)

	matchingHandler := handler.NewMatchingHandler(matching)
	api.POST("/matchings/order", matchingHandler.CreateOrderMatching)
	api.GET("/matchings/order", matchingHandler.ListOrderMatchings)
	api.DELETE("/matchings/order/:id", matchingHandler.DeleteOrderMatching)
	api.POST("/matchings/deposit", matchingHandler.CreateDepositMatching)
	api.GET("/matchings/deposit", matchingHandler.ListDepositMatchings)
	api.DELETE("/matchings/deposit/:id", matchingHandler.DeleteDepositMatching)
	api.POST("/matchings/withdrawal", matchingHandler.CreateWithdrawalMatching)
	api.GET("/matchings/withdrawal", matchingHandler.ListWithdrawalMatchings)
	api.DELETE("/matchings/withdrawal/:id", matchingHandler.DeleteWithdrawalMatching)

	uploadHandler := handler.NewUploadHandler(orders, deposits, withdrawals, columnConfig, cfg.App.MaxUploadBytes)
	api.POST("/upload/orders", uploadHandler.UploadOrders)
	api.POST("/upload/deposits", uploadHandler.UploadDeposits)
	api.POST("/upload/withdrawals", uploadHandler.UploadWithdrawals)
	api.POST("/columns/order", uploadHandler.SaveOrderColumns)
	api.GET("/columns/order", uploadHandler.GetOrderColumns)
	api.POST("/columns/deposit", uploadHandler.SaveDepositColumns)
	api.GET("/columns/deposit", uploadHandler.GetDepositColumns)
	api.POST("/columns/withdrawal", uploadHandler.SaveWithdrawalColumns)
	api.GET("/columns/withdrawal", uploadHandler.GetWithdrawalColumns)

	profitLossHandler := handler.NewProfitLossHandler(profitLoss)
	api.GET("/profit-loss", profitLossHandler.GetProfitLoss)

	referenceHandler := handler.NewReferenceHandler(reference)
	api.POST("/mediums", referenceHandler.CreateMedium)
	api.GET("/mediums", referenceHandler.ListMediums)
	api.PUT("/mediums/:id", referenceHandler.RenameMedium)
	api.DELETE("/mediums/:id", referenceHandler.DeleteMedium)
	api.POST("/settlement-companies", referenceHandler.CreateSettlementCompany)
	api.GET("/settlement-companies", referenceHandler.ListSettlementCompanies)
	api.PUT("/settlement-companies/:id", referenceHandler.RenameSettlementCompany)
	api.DELETE("/settlement-companies/:id", referenceHandler.DeleteSettlementCompany)

	auditHandler := handler.NewAuditHandler(db)
	api.GET("/logs", auditHandler.ListAuditLogs)

	return r
}
