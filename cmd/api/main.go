package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/auth"
	authStore "github.com/justinjeff517/jefstore-gasstations-backend/internal/auth/store"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/config"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/database"
	jefstoreHttp "github.com/justinjeff517/jefstore-gasstations-backend/internal/http"
	authHandler "github.com/justinjeff517/jefstore-gasstations-backend/internal/http/auth"
	inventoryHandler "github.com/justinjeff517/jefstore-gasstations-backend/internal/http/inventory"
	invoiceHandler "github.com/justinjeff517/jefstore-gasstations-backend/internal/http/invoice"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/inventory"
	inventoryStore "github.com/justinjeff517/jefstore-gasstations-backend/internal/inventory/store"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/invoice"
	invoiceStore "github.com/justinjeff517/jefstore-gasstations-backend/internal/invoice/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := database.New(ctx, cfg.Mongo.URI, cfg.Mongo.SelectionTimeout)
	if err != nil {
		slog.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}

	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			slog.Error("failed to disconnect from mongodb", "error", err)
		}
	}()

	db := client.Database(cfg.Mongo.Database)

	var (
		inventoryService = inventory.NewService(inventoryStore.New(db))
		invoiceService   = invoice.NewService(invoiceStore.New(db))
		authService      = auth.NewService(authStore.New(db), cfg.Auth.JWTSecret)
	)

	var (
		inventoriesH = inventoryHandler.NewHandler(inventoryService)
		invoicesH    = invoiceHandler.NewHandler(invoiceService)
		authH        = authHandler.NewHandler(authService)
	)

	router := jefstoreHttp.New(inventoriesH, invoicesH, authH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr, "database", cfg.Mongo.Database)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
