package etherman

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	ethermanconfig "github.com/orbitbridge/depositkit/etherman/config"
	"github.com/stretchr/testify/require"
)

func TestNewRPCClient(t *testing.T) {
	ctx := context.Background()

	_, err := NewRPCClient(ctx, ethermanconfig.RPCClientConfig{})
	require.ErrorContains(t, err, "empty RPC URL")

	_, err = NewRPCClient(ctx, ethermanconfig.RPCClientConfig{URL: "noproto://localhost"})
	require.Error(t, err)

	client, err := NewRPCClient(ctx, ethermanconfig.RPCClientConfig{URL: "http://localhost:1234"})
	require.NoError(t, err)
	require.NotNil(t, client)
	client.Close()
}

func TestNewRPCClientSendsHeaders(t *testing.T) {
	var gotAuth, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get(userAgentHeader)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req struct {
			ID json.RawMessage `json:"id"`
		}
		require.NoError(t, json.Unmarshal(body, &req))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":"0x66eee"}`))
	}))
	defer srv.Close()

	client, err := NewRPCClient(context.Background(), ethermanconfig.RPCClientConfig{
		URL:         srv.URL,
		HTTPHeaders: map[string]string{"Authorization": "Bearer token"},
	})
	require.NoError(t, err)
	defer client.Close()

	chainID, err := client.ChainID(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(421614), chainID.Uint64())
	require.Equal(t, "Bearer token", gotAuth)
	require.Contains(t, gotAgent, "depositkit/")
}
