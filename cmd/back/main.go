package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "rizoma/api/proto/v1"
	"rizoma/cmd/back/internal/api"
	"rizoma/cmd/back/internal/cache"
	"rizoma/cmd/back/internal/producer"
	"rizoma/cmd/back/internal/program"
	"rizoma/cmd/back/internal/repo"
	"rizoma/internal/logger"
	"rizoma/internal/rabbitmq"
	"rizoma/internal/record"
	"rizoma/migrations"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/validator"
	grpc_run "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	configPath := flag.String("config", envOr("RIZOMA_CONFIG", "./config.yaml"), "path to the yaml config")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log, logFile := logger.New(logger.Options{
		Level:      slog.Level(cfg.LogLevel),
		File:       cfg.LogFile,
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 28,
	})
	defer logFile.Close()

	if err := run(cfg, log); err != nil {
		log.Error(err.Error())
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg Config, log *slog.Logger) error {
	ctxParent := logger.NewContext(context.Background(), log)

	ctx, cancel := signal.NotifyContext(ctxParent, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	defer cancel()

	rowSQLConn, err := repo.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return err
	}
	defer rowSQLConn.Close()

	if err := migrations.Up(rowSQLConn, cfg.Driver, cfg.MigrateDir); err != nil {
		return err
	}

	repository := repo.NewRepository(rowSQLConn)
	processor := program.NewProcessor(repository, cfg.Rent)

	redisClientRecords := cache.NewRedisClient(cfg.AddrCache, cfg.PasswordCache, cfg.DBCacheRecords)
	if err := redisClientRecords.Connect(ctx); err != nil {
		log.Error("RedisRecords - not connected", "error", err)
	} else {
		log.Warn("RedisRecords - connected")
	}
	defer redisClientRecords.Close()

	var publisher api.Producer = producer.Discard{}
	if cfg.HostRBMQ != "" {
		rabbit, err := rabbitmq.NewRabbitMQClient(cfg.HostRBMQ, cfg.PortRBMQ, cfg.UserNameRBMQ, cfg.PasswordRBMQ, cfg.VHostRBMQ)
		if err != nil {
			return err
		}
		defer rabbit.Close()
		publisher = producer.NewProducer(rabbit.Ch)
	} else {
		log.Warn("RabbitMQ - disabled, record.stored events are dropped")
	}

	recordStoreServer := api.GrpcServer{
		Program:      processor,
		Database:     repository,
		CacheRecords: redisClientRecords,
		CacheTTL:     cfg.CacheTTL,
		Producer:     publisher,
		FaucetLimit:  cfg.FaucetLamports,
	}

	ln, err := net.Listen("tcp", cfg.HostGRPC)
	if err != nil {
		return err
	}

	loggingOpts := []logging.Option{
		logging.WithLogOnEvents(
			logging.StartCall,
			logging.FinishCall,
		),
	}

	server := grpc.NewServer(
		grpc.Creds(insecure.NewCredentials()),
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(interceptorLogger(log), loggingOpts...),
			api.MetricsInterceptor(),
			validator.UnaryServerInterceptor(),
			api.AuthInterceptor(record.ProgramID),
			contextLogger(log),
		),
	)
	pb.RegisterRecordStoreServer(server, recordStoreServer)

	log.Warn("GRPC server - started", "addr", cfg.HostGRPC, "program", record.ProgramID)
	go func() {
		if err := server.Serve(ln); err != nil {
			log.Error(err.Error())
		}
	}()

	conn, err := grpc.NewClient(cfg.HostGRPC,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return err
	}
	defer conn.Close()

	// HTTP сервер (gRPC-gateway) с middleware
	gw := grpc_run.NewServeMux(grpc_run.WithIncomingHeaderMatcher(api.GatewayHeaderMatcher))
	if err := pb.RegisterRecordStoreHandler(ctx, gw, conn); err != nil {
		return err
	}

	gwServer := &http.Server{
		Addr:              cfg.Host,
		Handler:           api.MetricsMiddleware(gw),
		ReadHeaderTimeout: cfg.TimeOut,
	}
	metricsServer := startMetricsServer(log, cfg.HostMetrics)

	go func() {
		log.Warn("GRPC-GW server - started", "addr", cfg.Host)
		if err := gwServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err.Error())
			cancel()
		}
	}()

	<-ctx.Done()
	log.Warn("shutting down")
	go forceShutdown(log, cfg.ShutdownTimeout)

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stop()

	if err := gwServer.Shutdown(shutdownCtx); err != nil {
		log.Error("GRPC-GW shutdown", "error", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("metrics shutdown", "error", err)
	}
	server.GracefulStop()

	return nil
}

func interceptorLogger(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// contextLogger attaches the process logger to every request context.
func contextLogger(l *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		return handler(logger.NewContext(ctx, l.With("method", info.FullMethod)), req)
	}
}

func startMetricsServer(log *slog.Logger, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Warn("metrics server - started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "error", err)
		}
	}()
	return srv
}

func forceShutdown(log *slog.Logger, delay time.Duration) {
	time.Sleep(delay + time.Second)

	log.Error("failed to graceful shutdown")
	os.Exit(1)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
