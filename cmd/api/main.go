package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "rentdesk-backend/internal/adapter/http"
	"rentdesk-backend/internal/adapter/middleware"
	"rentdesk-backend/internal/adapter/repository/gormrepo"
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/infrastructure/cache"
	"rentdesk-backend/internal/infrastructure/db"
	approvaluc "rentdesk-backend/internal/usecase/approval"
	billinguc "rentdesk-backend/internal/usecase/billing"
	contractuc "rentdesk-backend/internal/usecase/contract"
	propertyuc "rentdesk-backend/internal/usecase/property"
	"rentdesk-backend/internal/usecase/replay"
	tenantuc "rentdesk-backend/internal/usecase/tenant"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}

	rdb, err := cache.OpenOptional(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	properties := gormrepo.NewPropertyRepository(gdb)
	units := gormrepo.NewUnitRepository(gdb)
	tenants := gormrepo.NewTenantRepository(gdb)
	contracts := gormrepo.NewContractRepository(gdb)
	invoices := gormrepo.NewInvoiceRepository(gdb)
	payments := gormrepo.NewPaymentRepository(gdb)
	approvals := gormrepo.NewApprovalRepository(gdb)
	users := gormrepo.NewDirectoryRepository(gdb)
	unit := gormrepo.NewGormUoW(gdb)

	// usecases
	propertyUC := propertyuc.NewUsecase(properties, units, contracts)
	tenantUC := tenantuc.NewUsecase(tenants, contracts, approvals)
	contractUC := contractuc.NewUsecase(contracts, units, tenants, invoices, approvals, unit)
	billingUC := billinguc.NewUsecase(invoices, payments, contracts, tenants, approvals, unit)
	dispatcher := replay.NewDispatcher(tenantUC, contractUC, billingUC)
	approvalUC := approvaluc.NewUsecase(approvals, users, dispatcher)

	// handlers
	h := httpadp.NewHandler()
	propertyH := httpadp.NewPropertyHandler(propertyUC)
	tenantH := httpadp.NewTenantHandler(tenantUC)
	contractH := httpadp.NewContractHandler(contractUC)
	billingH := httpadp.NewBillingHandler(billingUC)
	approvalH := httpadp.NewApprovalHandler(approvalUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	if rdb != nil {
		e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	// routes
	e.GET("/health", h.Health)

	e.POST("/properties", propertyH.CreateProperty)
	e.GET("/properties", propertyH.ListProperties)
	e.GET("/properties/:property_id", propertyH.GetProperty)
	e.PATCH("/properties/:property_id", propertyH.UpdateProperty)
	e.DELETE("/properties/:property_id", propertyH.DeleteProperty)

	e.POST("/units", propertyH.CreateUnit)
	e.GET("/units", propertyH.ListUnits)
	e.GET("/units/:unit_id", propertyH.GetUnit)
	e.PATCH("/units/:unit_id", propertyH.UpdateUnit)
	e.DELETE("/units/:unit_id", propertyH.DeleteUnit)

	e.POST("/tenants", tenantH.CreateTenant)
	e.GET("/tenants", tenantH.ListTenants)
	e.GET("/tenants/:tenant_id", tenantH.GetTenant)
	e.PATCH("/tenants/:tenant_id", tenantH.UpdateTenant)
	e.DELETE("/tenants/:tenant_id", tenantH.DeleteTenant)

	e.POST("/contracts", contractH.CreateContract)
	e.GET("/contracts", contractH.ListContracts)
	e.GET("/contracts/:contract_id", contractH.GetContract)
	e.PATCH("/contracts/:contract_id", contractH.UpdateContract)
	e.POST("/contracts/:contract_id/terminate", contractH.TerminateContract)
	e.GET("/contracts/:contract_id/invoices", billingH.ListContractInvoices)

	e.GET("/invoices/:invoice_id", billingH.GetInvoice)
	e.PATCH("/invoices/:invoice_id", billingH.UpdateInvoice)
	e.GET("/invoices/:invoice_id/payments", billingH.ListInvoicePayments)
	e.GET("/invoices/:invoice_id/reminder-links", billingH.ReminderLinks)
	e.POST("/invoices/overdue-sweep", billingH.OverdueSweep)

	e.POST("/payments", billingH.CreatePayment)
	e.DELETE("/payments/:payment_id", billingH.DeletePayment)

	e.GET("/approval-requests", approvalH.ListRequests)
	e.PATCH("/approval-requests/:request_id", approvalH.UpdateRequestData)
	e.POST("/approval-requests/:request_id/approve", approvalH.ApproveRequest)
	e.POST("/approval-requests/:request_id/reject", approvalH.RejectRequest)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
