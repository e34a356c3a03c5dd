package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/linkdash/internal/client/client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	printed := capturePrintln(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.Write([]byte(`{"status":"healthy"}`))
		default:
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"Admin access required"}`))
		}
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	metrics, err := client.NewMetrics(reg)
	require.NoError(t, err)
	api := client.New(srv.URL, srv.Client(), metrics, nil)

	ctx := context.Background()
	_, err = api.Health(ctx)
	require.NoError(t, err)
	_, err = api.Health(ctx)
	require.NoError(t, err)
	_, err = api.ListUsers(ctx)
	require.Error(t, err)

	ta := newTestApp(t, "")
	ta.gatherer = reg

	families, err := reg.Gather()
	require.NoError(t, err)
	rows := collectStats(families)
	require.Len(t, rows, 2)
	assert.Equal(t, "health", rows[0].Endpoint)
	assert.Equal(t, uint64(2), rows[0].Success)
	assert.Equal(t, uint64(2), rows[0].Calls)
	assert.Equal(t, "users.list", rows[1].Endpoint)
	assert.Equal(t, uint64(1), rows[1].AppErrors)

	require.NoError(t, ta.Stats(ctx))
	assert.Contains(t, ta.buf.String(), "ENDPOINT")
	assert.Contains(t, ta.buf.String(), "users.list")
	assert.Empty(t, *printed)
}

func TestStats_Empty(t *testing.T) {
	printed := capturePrintln(t)
	ta := newTestApp(t, "")
	ta.gatherer = prometheus.NewRegistry()

	require.NoError(t, ta.Stats(context.Background()))
	assert.True(t, contains(*printed, "No API requests yet"))
}

func TestEndpointStats_Average(t *testing.T) {
	assert.Zero(t, endpointStats{}.Average())
	assert.Equal(t, "5ms", endpointStats{Calls: 2, TotalTimeMS: 10}.Average().String())
}
