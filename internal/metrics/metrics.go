package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// gRPC
	GrpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grpc_requests_total",
		Help: "Total number of gRPC requests",
	}, []string{"method", "status"})

	GrpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "grpc_request_duration_seconds",
		Help:    "Duration of gRPC requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	// HTTP (gateway)
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// Ledger
	RecordsStoredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "records_stored_total",
		Help: "Total number of records written",
	})

	RecordStoreRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "record_store_rejections_total",
		Help: "Store calls rejected, by reason",
	}, []string{"reason"})

	LamportsLockedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lamports_locked_total",
		Help: "Lamports moved from payers into record accounts",
	})

	AirdropLamportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airdrop_lamports_total",
		Help: "Lamports credited by the faucet",
	})
)
