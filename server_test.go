package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"blogpost/app/config"
	"blogpost/app/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	listener, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func waitForServer(t *testing.T, url string) {
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond)
}

func TestServerGracefulShutdown(t *testing.T) {
	port := freePort(t)
	srv := &http.Server{
		Addr: fmt.Sprintf("localhost:%d", port),
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Simulate work.
			time.Sleep(100 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServer(ctx, srv, time.Second) }()

	waitForServer(t, fmt.Sprintf("http://localhost:%d/", port))

	inFlight := make(chan int, 1)
	go func() {
		resp, err := http.Get(fmt.Sprintf("http://localhost:%d/", port))
		if err != nil {
			inFlight <- 0
			return
		}
		resp.Body.Close()
		inFlight <- resp.StatusCode
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, http.StatusOK, <-inFlight)
}

func TestRunServerListenError(t *testing.T) {
	listener, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	defer listener.Close()

	srv := &http.Server{Addr: listener.Addr().String()}
	err = runServer(context.Background(), srv, time.Second)
	assert.Error(t, err)
}

func TestServe(t *testing.T) {
	port := freePort(t)
	cfg, err := config.LoadFrom(map[string]string{
		"PORT":         fmt.Sprint(port),
		"DATABASE_URL": t.TempDir(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg, zerolog.Nop()) }()

	base := fmt.Sprintf("http://localhost:%d", port)
	waitForServer(t, base+"/healthz")

	resp, err := http.Post(base+"/blogpost", "application/json", strings.NewReader(
		`{"title":"The Blah","content":"Yup Yup","author":{"firstName":"Darth","lastName":"Vader"}}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.BlogPostResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Darth Vader", created.Author)

	cancel()
	require.NoError(t, <-done)
}
