package recordstorev1

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/validator"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	programAddr = "Hac29kvvQ3vMEu3CzsALtciEwKYULtYuKcifebNFFhrE"
	walletAddr  = "11111111111111111111111111111111"
)

type echoServer struct {
	UnimplementedRecordStoreServer
	lastAuth string
}

func (s *echoServer) StoreMessage(ctx context.Context, req *StoreMessageRequest) (*StoreMessageResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get("authorization"); len(v) > 0 {
		s.lastAuth = v[0]
	}
	if req.GetText() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty")
	}
	return &StoreMessageResponse{}, nil
}

func (s *echoServer) GetRecord(_ context.Context, req *GetRecordRequest) (*GetRecordResponse, error) {
	if req.GetAddress() == walletAddr {
		return nil, status.Error(codes.NotFound, "account not found")
	}
	return &GetRecordResponse{Record: &Record{
		Address:   req.GetAddress(),
		Owner:     walletAddr,
		Text:      "hello",
		Lamports:  3_145_920,
		Data:      []byte{1, 2, 3},
		CreatedAt: timestamppb.New(time.Unix(1_700_000_000, 0)),
	}}, nil
}

func (s *echoServer) GetBalance(_ context.Context, req *GetBalanceRequest) (*GetBalanceResponse, error) {
	return &GetBalanceResponse{Lamports: uint64(len(req.GetAddress()))}, nil
}

func (s *echoServer) Airdrop(_ context.Context, req *AirdropRequest) (*AirdropResponse, error) {
	return &AirdropResponse{Lamports: req.GetLamports()}, nil
}

func startServer(t *testing.T, srv RecordStoreServer) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(validator.UnaryServerInterceptor()))
	RegisterRecordStoreServer(s, srv)
	go s.Serve(lis)
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := NewRecordStoreClient(startServer(t, &echoServer{}))

	resp, err := client.GetRecord(ctx, &GetRecordRequest{Address: programAddr})
	require.NoError(t, err)
	assert.True(t, proto.Equal(&Record{
		Address:   programAddr,
		Owner:     walletAddr,
		Text:      "hello",
		Lamports:  3_145_920,
		Data:      []byte{1, 2, 3},
		CreatedAt: timestamppb.New(time.Unix(1_700_000_000, 0)),
	}, resp.GetRecord()))

	_, err = client.GetRecord(ctx, &GetRecordRequest{Address: walletAddr})
	assert.Equal(t, codes.NotFound, status.Code(err))

	bal, err := client.Airdrop(ctx, &AirdropRequest{Address: programAddr, Lamports: 42})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), bal.GetLamports())
}

func TestClient_ValidationRejected(t *testing.T) {
	ctx := context.Background()
	client := NewRecordStoreClient(startServer(t, &echoServer{}))

	tests := []struct {
		name string
		call func() error
	}{
		{"short address", func() error {
			_, err := client.GetBalance(ctx, &GetBalanceRequest{Address: "abcd"})
			return err
		}},
		{"non base58 address", func() error {
			_, err := client.GetRecord(ctx, &GetRecordRequest{Address: strings.Repeat("0", 32)})
			return err
		}},
		{"zero airdrop", func() error {
			_, err := client.Airdrop(ctx, &AirdropRequest{Address: programAddr})
			return err
		}},
		{"missing record address", func() error {
			_, err := client.StoreMessage(ctx, &StoreMessageRequest{Text: "hi"})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, codes.InvalidArgument, status.Code(tt.call()))
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	assert.NoError(t, (&StoreMessageRequest{Record: programAddr}).Validate())
	assert.NoError(t, (&GetRecordResponse{Record: &Record{}}).ValidateAll())

	err := (&AirdropRequest{Address: "0OIl"}).ValidateAll()
	var multi AirdropRequestMultiError
	require.ErrorAs(t, err, &multi)
	assert.Len(t, multi.AllErrors(), 3)

	err = (&GetBalanceRequest{Address: "abcd"}).Validate()
	var single GetBalanceRequestValidationError
	require.ErrorAs(t, err, &single)
	assert.Equal(t, "Address", single.Field())
	assert.Contains(t, err.Error(), "between 32 and 44 runes")
}

func newGateway(t *testing.T, srv RecordStoreServer) *httptest.Server {
	t.Helper()
	mux := runtime.NewServeMux()
	require.NoError(t, RegisterRecordStoreHandler(context.Background(), mux, startServer(t, srv)))
	gw := httptest.NewServer(mux)
	t.Cleanup(gw.Close)
	return gw
}

func decode(t *testing.T, resp *http.Response, m proto.Message) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, protojson.Unmarshal(body, m))
}

func TestGateway_StoreForwardsAuthorization(t *testing.T) {
	srv := &echoServer{}
	gw := newGateway(t, srv)

	body := `{"record":"` + programAddr + `","text":"hello"}`
	req, err := http.NewRequest(http.MethodPost, gw.URL+"/v1/records", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer token", srv.lastAuth)
}

func TestGateway_ErrorStatus(t *testing.T) {
	gw := newGateway(t, &echoServer{})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"empty text", http.MethodPost, "/v1/records", `{"record":"` + programAddr + `","text":""}`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/v1/records", `{not json`, http.StatusBadRequest},
		{"unknown record", http.MethodGet, "/v1/records/" + walletAddr, "", http.StatusNotFound},
		{"invalid address", http.MethodGet, "/v1/records/abc", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, gw.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestGateway_Routes(t *testing.T) {
	gw := newGateway(t, &echoServer{})

	resp, err := http.Get(gw.URL + "/v1/accounts/" + programAddr + "/balance")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var bal GetBalanceResponse
	decode(t, resp, &bal)
	assert.Equal(t, uint64(len(programAddr)), bal.GetLamports())

	resp2, err := http.Post(gw.URL+"/v1/accounts/"+programAddr+"/airdrop", "application/json", strings.NewReader(`{"lamports":"7"}`))
	require.NoError(t, err)
	defer resp2.Body.Close()
	var drop AirdropResponse
	decode(t, resp2, &drop)
	assert.Equal(t, uint64(7), drop.GetLamports())

	resp3, err := http.Get(gw.URL + "/v1/records/" + programAddr)
	require.NoError(t, err)
	defer resp3.Body.Close()
	var rec GetRecordResponse
	decode(t, resp3, &rec)
	assert.Equal(t, []byte{1, 2, 3}, rec.GetRecord().GetData())
	assert.Equal(t, int64(1_700_000_000), rec.GetRecord().GetCreatedAt().AsTime().Unix())
}
