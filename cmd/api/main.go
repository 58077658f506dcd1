package main

import (
	config "checkout-gateway/configs"
	"checkout-gateway/internal/pkg/crossmint"
	"checkout-gateway/internal/pkg/logger"
	"checkout-gateway/internal/pkg/validation"
	serverApp "checkout-gateway/internal/server"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
)

// @title           Checkout Gateway API
// @version         1.0
// @description     Order-creation proxy and checkout-session API over Crossmint's embedded checkout

// @BasePath        /api
func main() {
	logger.Setup()

	env, err := config.GetEnv()
	if err != nil {
		logger.Error.Println("Error getting environment", err)
		panic(err)
	}

	var wg sync.WaitGroup
	ctx, cancel := context.WithCancel(context.Background())

	// Setup Crossmint client
	cm := setupCrossmint(env)
	if !cm.HasServerKey() {
		logger.Warning.Println("CROSSMINT_SERVER_API_KEY not set; order creation will fail until configured")
	}

	// Setup Server
	setupServer(&config.SetupServerDto{
		Env:    env,
		Ctx:    &ctx,
		Cancel: cancel,
		Wg:     &wg,
		Cm:     cm,
	})
}

func setupCrossmint(env *config.Config) *crossmint.Client {
	return crossmint.Setup(&crossmint.Config{
		ServerAPIKey: env.CrossmintServerAPIKey,
		Environment:  env.CrossmintEnv,
		ChainID:      env.ChainID,
		TokenMint:    env.USDCTokenMint,
	})
}

func setupServer(payload *config.SetupServerDto) {
	env := payload.Env
	ctx := payload.Ctx
	cancel := payload.Cancel
	wg := payload.Wg
	cm := payload.Cm

	defer func() {
		cancel()
		wg.Wait()
	}()

	err := validation.Setup()
	if err != nil {
		logger.Error.Println("Failed to setup validation")
		panic(err)
	}

	e := gin.Default()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", env.AppPort),
		Handler: e,
	}

	serverApp.Setup(e, *ctx, wg, cm)

	go func() {
		logger.HTTP.Println("========= Server Started =========")
		logger.HTTP.Println("=========", env.AppPort, "=========")
		if err := server.ListenAndServe(); err != nil {
			logger.Error.Println("Server error:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	logger.HTTP.Println("========= Server Shutting Down =========")
	_ = server.Shutdown(*ctx)
}
