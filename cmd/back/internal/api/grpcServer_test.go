package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	pb "rizoma/api/proto/v1"
	"rizoma/cmd/back/internal/app"
	"rizoma/cmd/back/internal/program"
	"rizoma/cmd/back/internal/repo"
	"rizoma/internal/auth"
	"rizoma/internal/keys"
	"rizoma/internal/record"
	"rizoma/migrations"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/validator"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protojson"
)

type memCache struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}}
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	}
	return nil
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	v, ok := c.data[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (c *memCache) snapshot() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.data))
	for k, v := range c.data {
		out[k] = v
	}
	return out
}

func (c *memCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = map[string]string{}
}

type published struct {
	key     string
	message interface{}
}

type memProducer struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (p *memProducer) PublishJSON(_ context.Context, routingKey string, message interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{routingKey, message})
	return p.err
}

func (p *memProducer) published() []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]published(nil), p.events...)
}

type harness struct {
	conn     *grpc.ClientConn
	client   pb.RecordStoreClient
	repo     *repo.Repository
	cache    *memCache
	producer *memProducer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db, err := repo.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Up(db, "sqlite3", ""))

	r := repo.NewRepository(db)
	h := &harness{repo: r, cache: newMemCache(), producer: &memProducer{}}

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		MetricsInterceptor(),
		validator.UnaryServerInterceptor(),
		AuthInterceptor(record.ProgramID),
	))
	pb.RegisterRecordStoreServer(server, GrpcServer{
		Program:      program.NewProcessor(r, record.DefaultRent),
		Database:     r,
		CacheRecords: h.cache,
		CacheTTL:     time.Hour,
		Producer:     h.producer,
		FaucetLimit:  5_000_000_000,
	})
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	h.conn = conn
	h.client = pb.NewRecordStoreClient(conn)
	return h
}

func newKeypair(t *testing.T) keys.Keypair {
	t.Helper()
	kp, err := keys.Generate()
	require.NoError(t, err)
	return kp
}

func (h *harness) airdrop(t *testing.T, wallet keys.PublicKey, lamports uint64) {
	t.Helper()
	_, err := h.client.Airdrop(context.Background(), &pb.AirdropRequest{Address: wallet.String(), Lamports: lamports})
	require.NoError(t, err)
}

func signed(t *testing.T, payer, slot keys.Keypair, text string) context.Context {
	t.Helper()
	payerToken, recordToken, err := auth.SignStore(payer, slot, record.ProgramID, text, time.Now(), auth.DefaultTTL)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(),
		auth.Header, auth.Scheme+payerToken,
		auth.RecordHeader, auth.Scheme+recordToken,
	)
}

func (h *harness) store(t *testing.T, payer, slot keys.Keypair, text string) error {
	t.Helper()
	_, err := h.client.StoreMessage(signed(t, payer, slot, text), &pb.StoreMessageRequest{Record: slot.Public.String(), Text: text})
	return err
}

func errorReason(t *testing.T, err error) string {
	t.Helper()
	for _, d := range status.Convert(err).Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.Reason
		}
	}
	return ""
}

func TestStoreMessage_HelloWorld(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	signer := newKeypair(t)
	h.airdrop(t, signer.Public, 1_000_000_000)

	first := newKeypair(t)
	require.NoError(t, h.store(t, signer, first, "hello"))

	second := newKeypair(t)
	require.NoError(t, h.store(t, signer, second, "world"))

	h.cache.clear()

	got1, err := h.client.GetRecord(ctx, &pb.GetRecordRequest{Address: first.Public.String()})
	require.NoError(t, err)
	assert.Equal(t, signer.Public.String(), got1.Record.Owner)
	assert.Equal(t, "hello", got1.Record.Text)
	assert.Len(t, got1.Record.Data, record.Space)

	got2, err := h.client.GetRecord(ctx, &pb.GetRecordRequest{Address: second.Public.String()})
	require.NoError(t, err)
	assert.Equal(t, signer.Public.String(), got2.Record.Owner)
	assert.Equal(t, "world", got2.Record.Text)

	bal, err := h.client.GetBalance(ctx, &pb.GetBalanceRequest{Address: signer.Public.String()})
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000_000-2*3_145_920), bal.Lamports)

	events := h.producer.published()
	require.Len(t, events, 2)
	assert.Equal(t, "record.stored", events[0].key)
	event := events[0].message.(RecordStored)
	assert.Equal(t, first.Public, event.Address)
	assert.Equal(t, signer.Public, event.Owner)
}

func TestStoreMessage_CachesRecord(t *testing.T) {
	h := newHarness(t)
	signer := newKeypair(t)
	h.airdrop(t, signer.Public, 1_000_000_000)
	slot := newKeypair(t)

	require.NoError(t, h.store(t, signer, slot, "cached"))
	assert.Contains(t, h.cache.snapshot()["record:"+slot.Public.String()], `"text":"cached"`)

	got, err := h.client.GetRecord(context.Background(), &pb.GetRecordRequest{Address: slot.Public.String()})
	require.NoError(t, err)
	assert.Equal(t, "cached", got.Record.Text)
}

func TestStoreMessage_SideEffectFailuresDoNotFail(t *testing.T) {
	h := newHarness(t)
	h.cache.mu.Lock()
	h.cache.err = errors.New("redis down")
	h.cache.mu.Unlock()
	h.producer.mu.Lock()
	h.producer.err = errors.New("broker down")
	h.producer.mu.Unlock()
	signer := newKeypair(t)
	h.airdrop(t, signer.Public, 1_000_000_000)
	slot := newKeypair(t)

	require.NoError(t, h.store(t, signer, slot, "hello"))

	got, err := h.client.GetRecord(context.Background(), &pb.GetRecordRequest{Address: slot.Public.String()})
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Record.Text)
}

func TestStoreMessage_Unsigned(t *testing.T) {
	h := newHarness(t)
	slot := newKeypair(t)

	_, err := h.client.StoreMessage(context.Background(), &pb.StoreMessageRequest{Record: slot.Public.String(), Text: "hello"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := metadata.AppendToOutgoingContext(context.Background(), auth.Header, "Bearer garbage")
	_, err = h.client.StoreMessage(ctx, &pb.StoreMessageRequest{Record: slot.Public.String(), Text: "hello"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.client.GetRecord(context.Background(), &pb.GetRecordRequest{Address: slot.Public.String()})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestStoreMessage_TokenMustCoverRequest(t *testing.T) {
	h := newHarness(t)
	signer := newKeypair(t)
	h.airdrop(t, signer.Public, 1_000_000_000)
	slot := newKeypair(t)

	ctx := signed(t, signer, slot, "hello")
	_, err := h.client.StoreMessage(ctx, &pb.StoreMessageRequest{Record: slot.Public.String(), Text: "tampered"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	other := newKeypair(t)
	_, err = h.client.StoreMessage(ctx, &pb.StoreMessageRequest{Record: other.Public.String(), Text: "hello"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestStoreMessage_TooLong(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	signer := newKeypair(t)
	h.airdrop(t, signer.Public, 1_000_000_000)
	slot := newKeypair(t)

	err := h.store(t, signer, slot, strings.Repeat("x", record.MaxTextLen+1))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	var violation *errdetails.BadRequest
	for _, d := range status.Convert(err).Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			violation = br
		}
	}
	require.NotNil(t, violation)
	assert.Equal(t, "text", violation.FieldViolations[0].Field)

	_, err = h.client.GetRecord(ctx, &pb.GetRecordRequest{Address: slot.Public.String()})
	assert.Equal(t, codes.NotFound, status.Code(err))

	bal, err := h.client.GetBalance(ctx, &pb.GetBalanceRequest{Address: signer.Public.String()})
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000_000), bal.Lamports)
}

func TestStoreMessage_MaxLength(t *testing.T) {
	h := newHarness(t)
	signer := newKeypair(t)
	h.airdrop(t, signer.Public, 1_000_000_000)
	slot := newKeypair(t)
	text := strings.Repeat("y", record.MaxTextLen)

	require.NoError(t, h.store(t, signer, slot, text))

	got, err := h.client.GetRecord(context.Background(), &pb.GetRecordRequest{Address: slot.Public.String()})
	require.NoError(t, err)
	assert.Equal(t, text, got.Record.Text)
}

func TestStoreMessage_InsufficientFunds(t *testing.T) {
	h := newHarness(t)
	signer := newKeypair(t)
	h.airdrop(t, signer.Public, 1_000)

	err := h.store(t, signer, newKeypair(t), "hello")
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Equal(t, reasonInsufficientFund, errorReason(t, err))

	unfunded := newKeypair(t)
	err = h.store(t, unfunded, newKeypair(t), "hello")
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestStoreMessage_ReusedSlot(t *testing.T) {
	h := newHarness(t)
	signer := newKeypair(t)
	h.airdrop(t, signer.Public, 1_000_000_000)
	slot := newKeypair(t)

	require.NoError(t, h.store(t, signer, slot, "hello"))

	err := h.store(t, signer, slot, "again")
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
	assert.Equal(t, reasonAccountInUse, errorReason(t, err))

	intruder := newKeypair(t)
	h.airdrop(t, intruder.Public, 1_000_000_000)
	err = h.store(t, intruder, slot, "mine now")
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	got, err := h.client.GetRecord(context.Background(), &pb.GetRecordRequest{Address: slot.Public.String()})
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Record.Text)
	assert.Equal(t, signer.Public.String(), got.Record.Owner)
}

func TestStoreMessage_InvalidAddress(t *testing.T) {
	h := newHarness(t)
	signer := newKeypair(t)

	ctx := signed(t, signer, newKeypair(t), "hello")
	_, err := h.client.StoreMessage(ctx, &pb.StoreMessageRequest{Record: "not-base58!", Text: "hello"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestStoreMessage_RecordNotCosigned(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	attacker := newKeypair(t)
	h.airdrop(t, attacker.Public, 1_000_000_000)
	victimSlot := newKeypair(t)
	req := &pb.StoreMessageRequest{Record: victimSlot.Public.String(), Text: "squat"}

	payerToken, err := auth.Sign(attacker, record.ProgramID, attacker.Public, victimSlot.Public, req.GetText(), time.Now(), auth.DefaultTTL)
	require.NoError(t, err)
	forged, err := auth.Sign(attacker, record.ProgramID, attacker.Public, victimSlot.Public, req.GetText(), time.Now(), auth.DefaultTTL)
	require.NoError(t, err)

	payerOnly := metadata.AppendToOutgoingContext(ctx, auth.Header, auth.Scheme+payerToken)
	_, err = h.client.StoreMessage(payerOnly, req)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	selfSigned := metadata.AppendToOutgoingContext(ctx,
		auth.Header, auth.Scheme+payerToken,
		auth.RecordHeader, auth.Scheme+forged,
	)
	_, err = h.client.StoreMessage(selfSigned, req)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, reasonMissingSignature, errorReason(t, err))

	_, err = h.client.GetRecord(ctx, &pb.GetRecordRequest{Address: victimSlot.Public.String()})
	assert.Equal(t, codes.NotFound, status.Code(err))
	bal, err := h.client.GetBalance(ctx, &pb.GetBalanceRequest{Address: attacker.Public.String()})
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000_000), bal.GetLamports())

	victim := newKeypair(t)
	h.airdrop(t, victim.Public, 1_000_000_000)
	require.NoError(t, h.store(t, victim, victimSlot, "mine"))
}

func TestStoreMessage_RecordTokenForOtherPayer(t *testing.T) {
	h := newHarness(t)
	payer := newKeypair(t)
	h.airdrop(t, payer.Public, 1_000_000_000)
	slot := newKeypair(t)

	payerToken, err := auth.Sign(payer, record.ProgramID, payer.Public, slot.Public, "hello", time.Now(), auth.DefaultTTL)
	require.NoError(t, err)
	recordToken, err := auth.Sign(slot, record.ProgramID, newKeypair(t).Public, slot.Public, "hello", time.Now(), auth.DefaultTTL)
	require.NoError(t, err)

	ctx := metadata.AppendToOutgoingContext(context.Background(),
		auth.Header, auth.Scheme+payerToken,
		auth.RecordHeader, auth.Scheme+recordToken,
	)
	_, err = h.client.StoreMessage(ctx, &pb.StoreMessageRequest{Record: slot.Public.String(), Text: "hello"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestStoreMessage_InvalidUTF8(t *testing.T) {
	slot := newKeypair(t)
	text := "bad \xff"

	// No tokens in the context: the text is rejected before any signature check.
	_, err := GrpcServer{}.StoreMessage(context.Background(), &pb.StoreMessageRequest{Record: slot.Public.String(), Text: text})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	var violation *errdetails.BadRequest
	for _, d := range status.Convert(err).Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			violation = br
		}
	}
	require.NotNil(t, violation)
	assert.Equal(t, "text", violation.FieldViolations[0].Field)

	h := newHarness(t)
	payer := newKeypair(t)
	h.airdrop(t, payer.Public, 1_000_000_000)
	assert.Error(t, h.store(t, payer, slot, text))

	_, err = h.client.GetRecord(context.Background(), &pb.GetRecordRequest{Address: slot.Public.String()})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestStoreMessage_ConcurrentSameSlot(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	payer := newKeypair(t)
	h.airdrop(t, payer.Public, 1_000_000_000)
	slot := newKeypair(t)

	const n = 8
	ctxs := make([]context.Context, n)
	for i := range ctxs {
		ctxs[i] = signed(t, payer, slot, strings.Repeat("r", i+1))
	}

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = h.client.StoreMessage(ctxs[i], &pb.StoreMessageRequest{Record: slot.Public.String(), Text: strings.Repeat("r", i+1)})
		}(i)
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		if err == nil {
			won++
			continue
		}
		assert.Equal(t, codes.AlreadyExists, status.Code(err))
		assert.Equal(t, reasonAccountInUse, errorReason(t, err))
	}
	assert.Equal(t, 1, won)

	bal, err := h.client.GetBalance(ctx, &pb.GetBalanceRequest{Address: payer.Public.String()})
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000_000-3_145_920), bal.GetLamports())
	assert.Len(t, h.producer.published(), 1)
}

func TestGateway_StoreWithCosignature(t *testing.T) {
	h := newHarness(t)
	payer := newKeypair(t)
	h.airdrop(t, payer.Public, 1_000_000_000)
	slot := newKeypair(t)

	mux := runtime.NewServeMux(runtime.WithIncomingHeaderMatcher(GatewayHeaderMatcher))
	require.NoError(t, pb.RegisterRecordStoreHandler(context.Background(), mux, h.conn))
	gw := httptest.NewServer(mux)
	t.Cleanup(gw.Close)

	payerToken, recordToken, err := auth.SignStore(payer, slot, record.ProgramID, "via http", time.Now(), auth.DefaultTTL)
	require.NoError(t, err)
	body, err := protojson.Marshal(&pb.StoreMessageRequest{Record: slot.Public.String(), Text: "via http"})
	require.NoError(t, err)

	post := func(withRecord bool) int {
		req, err := http.NewRequest(http.MethodPost, gw.URL+"/v1/records", bytes.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Authorization", auth.Scheme+payerToken)
		if withRecord {
			req.Header.Set("X-Record-Authorization", auth.Scheme+recordToken)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusUnauthorized, post(false))
	assert.Equal(t, http.StatusOK, post(true))

	resp, err := http.Get(gw.URL + "/v1/records/" + slot.Public.String())
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var got pb.GetRecordResponse
	require.NoError(t, protojson.Unmarshal(raw, &got))
	assert.Equal(t, "via http", got.GetRecord().GetText())
	assert.Equal(t, payer.Public.String(), got.GetRecord().GetOwner())
}

func TestGatewayHeaderMatcher(t *testing.T) {
	key, ok := GatewayHeaderMatcher("X-Record-Authorization")
	assert.True(t, ok)
	assert.Equal(t, auth.RecordHeader, key)

	_, ok = GatewayHeaderMatcher("X-Unrelated")
	assert.False(t, ok)
}

func TestGetRecord_Wallet(t *testing.T) {
	h := newHarness(t)
	wallet := newKeypair(t).Public
	h.airdrop(t, wallet, 10)

	_, err := h.client.GetRecord(context.Background(), &pb.GetRecordRequest{Address: wallet.String()})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Equal(t, reasonNotOwned, errorReason(t, err))
}

func TestGetBalance_Unknown(t *testing.T) {
	h := newHarness(t)

	bal, err := h.client.GetBalance(context.Background(), &pb.GetBalanceRequest{Address: newKeypair(t).Public.String()})
	require.NoError(t, err)
	assert.Zero(t, bal.Lamports)

	_, err = h.client.GetBalance(context.Background(), &pb.GetBalanceRequest{Address: "???"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAirdrop(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	wallet := newKeypair(t).Public

	resp, err := h.client.Airdrop(ctx, &pb.AirdropRequest{Address: wallet.String(), Lamports: 100})
	require.NoError(t, err)
	assert.Equal(t, uint64(100), resp.Lamports)

	resp, err = h.client.Airdrop(ctx, &pb.AirdropRequest{Address: wallet.String(), Lamports: 50})
	require.NoError(t, err)
	assert.Equal(t, uint64(150), resp.Lamports)

	_, err = h.client.Airdrop(ctx, &pb.AirdropRequest{Address: wallet.String(), Lamports: 0})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.Airdrop(ctx, &pb.AirdropRequest{Address: wallet.String(), Lamports: 5_000_000_001})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAirdrop_Disabled(t *testing.T) {
	s := GrpcServer{}
	_, err := s.Airdrop(context.Background(), &pb.AirdropRequest{Address: record.SystemProgramID, Lamports: 1})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{app.ErrMissingSignature, codes.Unauthenticated},
		{app.ErrInsufficientFunds, codes.FailedPrecondition},
		{app.ErrAccountInUse, codes.AlreadyExists},
		{app.ErrAccountDidNotSerialize, codes.InvalidArgument},
		{app.ErrAccountNotOwned, codes.FailedPrecondition},
		{app.ErrAccountNotFound, codes.NotFound},
		{errors.New("disk on fire"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			st := toStatus(tt.err)
			assert.Equal(t, tt.code, st.Code())
		})
	}

	assert.Equal(t, "internal error", toStatus(errors.New("secret detail")).Message())
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "/v1/records/{address}", sanitizePath("/v1/records/Hac29kvvQ3vMEu3CzsALtciEwKYULtYuKcifebNFFhrE"))
	assert.Equal(t, "/v1/accounts/{address}/balance", sanitizePath("/v1/accounts/abc/balance?x=1"))
	assert.Equal(t, "/v1/records", sanitizePath("/v1/records"))
}
