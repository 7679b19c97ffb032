package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	pb "rizoma/api/proto/v1"
	"rizoma/cmd/back/internal/app"
	"rizoma/cmd/back/internal/cache"
	"rizoma/cmd/back/internal/program"
	"rizoma/internal/keys"
	"rizoma/internal/logger"
	"rizoma/internal/metrics"
	"rizoma/internal/rabbitmq"
	"rizoma/internal/record"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// RecordStored is published after every successful store.
type RecordStored struct {
	Address   keys.PublicKey `json:"address"`
	Owner     keys.PublicKey `json:"owner"`
	Lamports  uint64         `json:"lamports"`
	CreatedAt time.Time      `json:"created_at"`
}

type Processor interface {
	StoreMessage(ctx context.Context, in program.StoreMessage) (app.Record, error)
}

type Repository interface {
	GetAccount(ctx context.Context, address keys.PublicKey) (app.Account, error)
	Credit(ctx context.Context, address keys.PublicKey, lamports uint64) (app.Account, error)
}

type CacheRecords interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

type Producer interface {
	PublishJSON(ctx context.Context, routingKey string, message interface{}) error
}

type GrpcServer struct {
	Program      Processor
	Database     Repository
	CacheRecords CacheRecords
	CacheTTL     time.Duration
	Producer     Producer
	FaucetLimit  uint64
}

var _ pb.RecordStoreServer = GrpcServer{}

func (s GrpcServer) StoreMessage(ctx context.Context, request *pb.StoreMessageRequest) (*pb.StoreMessageResponse, error) {
	log := logger.FromContext(ctx)

	text := request.GetText()
	if !utf8.ValidString(text) {
		metrics.RecordStoreRejectionsTotal.WithLabelValues(reasonDidNotSerialize).Inc()
		return nil, invalidArgument("text", record.ErrInvalidText)
	}

	address, err := keys.ParsePublicKey(request.GetRecord())
	if err != nil {
		metrics.RecordStoreRejectionsTotal.WithLabelValues(reasonInvalidAddress).Inc()
		return nil, invalidArgument("record", err)
	}

	signer, claims, err := GetSignerFromContext(ctx)
	if err != nil {
		return nil, s.unauthenticated(err)
	}
	recordSigner, recordClaims, err := GetRecordSignerFromContext(ctx)
	if err != nil {
		return nil, s.unauthenticated(err)
	}

	if err := claims.Covers(signer, address, text); err != nil {
		return nil, s.unauthenticated(err)
	}
	if err := recordClaims.Covers(signer, address, text); err != nil {
		return nil, s.unauthenticated(fmt.Errorf("record: %w", err))
	}

	rec, err := s.Program.StoreMessage(ctx, program.StoreMessage{
		Signer:       signer,
		Record:       address,
		RecordSigner: recordSigner,
		Text:         text,
	})
	if err != nil {
		st := toStatus(err)
		metrics.RecordStoreRejectionsTotal.WithLabelValues(reason(err)).Inc()
		if st.Code() == codes.Internal {
			log.Error("store message", "record", address, "signer", signer, "error", err)
		}
		return nil, st.Err()
	}

	metrics.RecordsStoredTotal.Inc()
	metrics.LamportsLockedTotal.Add(float64(rec.Lamports))
	log.Info("record stored", "record", rec.Address, "signer", rec.Owner, "lamports", rec.Lamports)

	s.cacheRecord(ctx, rec)

	event := RecordStored{Address: rec.Address, Owner: rec.Owner, Lamports: rec.Lamports, CreatedAt: rec.CreatedAt}
	if err := s.Producer.PublishJSON(ctx, rabbitmq.RecordStoredQueue, event); err != nil {
		log.Warn("publish record.stored", "record", rec.Address, "error", err)
	}

	return &pb.StoreMessageResponse{}, nil
}

func (s GrpcServer) unauthenticated(err error) error {
	metrics.RecordStoreRejectionsTotal.WithLabelValues(reasonMissingSignature).Inc()
	return toStatus(fmt.Errorf("%w: %w", app.ErrMissingSignature, err)).Err()
}

func (s GrpcServer) GetRecord(ctx context.Context, request *pb.GetRecordRequest) (*pb.GetRecordResponse, error) {
	log := logger.FromContext(ctx)

	address, err := keys.ParsePublicKey(request.GetAddress())
	if err != nil {
		return nil, invalidArgument("address", err)
	}

	cached, err := s.CacheRecords.Get(ctx, cache.RecordKey(address.String()))
	if err == nil {
		var rec app.Record
		if err := json.Unmarshal([]byte(cached), &rec); err == nil {
			return &pb.GetRecordResponse{Record: toRecord(rec)}, nil
		}
		log.Warn("decode cached record", "record", address, "error", err)
	} else if !cache.IsMiss(err) {
		log.Warn("read record cache", "record", address, "error", err)
	}

	acc, err := s.Database.GetAccount(ctx, address)
	if err != nil {
		return nil, toStatus(err).Err()
	}
	rec, err := app.RecordFromAccount(acc)
	if err != nil {
		return nil, toStatus(err).Err()
	}

	s.cacheRecord(ctx, rec)

	return &pb.GetRecordResponse{Record: toRecord(rec)}, nil
}

func (s GrpcServer) GetBalance(ctx context.Context, request *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	address, err := keys.ParsePublicKey(request.GetAddress())
	if err != nil {
		return nil, invalidArgument("address", err)
	}

	acc, err := s.Database.GetAccount(ctx, address)
	if errors.Is(err, app.ErrAccountNotFound) {
		return &pb.GetBalanceResponse{}, nil
	}
	if err != nil {
		return nil, toStatus(err).Err()
	}
	return &pb.GetBalanceResponse{Lamports: acc.Lamports}, nil
}

func (s GrpcServer) Airdrop(ctx context.Context, request *pb.AirdropRequest) (*pb.AirdropResponse, error) {
	if s.FaucetLimit == 0 {
		return nil, status.Error(codes.PermissionDenied, "faucet is disabled")
	}

	address, err := keys.ParsePublicKey(request.GetAddress())
	if err != nil {
		return nil, invalidArgument("address", err)
	}
	lamports := request.GetLamports()
	if lamports == 0 || lamports > s.FaucetLimit {
		return nil, status.Errorf(codes.InvalidArgument, "lamports must be between 1 and %d", s.FaucetLimit)
	}

	acc, err := s.Database.Credit(ctx, address, lamports)
	if err != nil {
		return nil, toStatus(err).Err()
	}

	metrics.AirdropLamportsTotal.Add(float64(lamports))
	logger.FromContext(ctx).Info("airdrop", "address", address, "lamports", lamports, "balance", acc.Lamports)

	return &pb.AirdropResponse{Lamports: acc.Lamports}, nil
}

// cacheRecord is best effort: records never change, so any cached copy stays valid.
func (s GrpcServer) cacheRecord(ctx context.Context, rec app.Record) {
	log := logger.FromContext(ctx)

	recJSON, err := json.Marshal(rec)
	if err != nil {
		log.Warn("encode record for cache", "record", rec.Address, "error", err)
		return
	}
	if err := s.CacheRecords.Set(ctx, cache.RecordKey(rec.Address.String()), recJSON, s.CacheTTL); err != nil {
		log.Warn("write record cache", "record", rec.Address, "error", err)
	}
}

func toRecord(r app.Record) *pb.Record {
	return &pb.Record{
		Address:   r.Address.String(),
		Owner:     r.Owner.String(),
		Text:      r.Text,
		Lamports:  r.Lamports,
		Data:      r.Data,
		CreatedAt: timestamppb.New(r.CreatedAt),
	}
}
