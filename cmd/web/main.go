package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/jabbaspizza/accounts/internal/logging"
	pb "github.com/jabbaspizza/accounts/internal/proto"
	"github.com/jabbaspizza/accounts/internal/server/config"
	"github.com/jabbaspizza/accounts/internal/server/creds"
	"github.com/jabbaspizza/accounts/internal/web"
)

func main() {

	cfg := config.LoadConfig()

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	tc, err := creds.ClientCredentials(cfg.CertsDir)
	if err != nil {
		log.Printf("tls init error: %v", err)
		return
	}

	conn, err := grpc.NewClient(cfg.EndpointAddrGRPC, grpc.WithTransportCredentials(tc))
	if err != nil {
		log.Printf("grpc client error: %v", err)
		return
	}
	defer conn.Close()

	h := web.NewHandler(pb.NewAccountServiceClient(conn), logger, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:    cfg.EndpointAddrHTTP,
		Handler: web.NewRouter(h),
	}

	ctx := context.Background()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "Shutdown error", "error", err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP front door", "address", cfg.EndpointAddrHTTP)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(ctx, "Server error", "error", err.Error())
	}
}
