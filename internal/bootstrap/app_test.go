package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lookia/lookia/internal/infra/config"
)

func TestResourcesCloseInReverseOrder(t *testing.T) {
	var order []int
	res := NewResources()
	res.Add(func() { order = append(order, 1) })
	res.Add(nil)
	res.Add(func() { order = append(order, 2) })

	res.Close()
	res.Close()
	require.Equal(t, []int{2, 1}, order)
}

func TestRunStopsOnCancel(t *testing.T) {
	closed := false
	res := NewResources()
	res.Add(func() { closed = true })

	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "127.0.0.1:0"}}
	server := &http.Server{Addr: cfg.HTTP.Address, Handler: http.NotFoundHandler()}
	app := NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), server, res)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, app.Run(ctx))
	require.True(t, closed)
}
