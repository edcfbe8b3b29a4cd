package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestServeDrainsInFlightUpload(t *testing.T) {
	inFlight := make(chan struct{})
	finish := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		close(inFlight)
		<-finish
		_, _ = w.Write([]byte(`{"skin_tone":"dark"}`))
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to create listener: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, &http.Server{Handler: mux}, listener, 2*time.Second, zap.NewNop())
	}()

	type result struct {
		body string
		err  error
	}
	resCh := make(chan result, 1)
	go func() {
		resp, err := http.Post("http://"+listener.Addr().String()+"/upload", "text/plain", nil)
		if err != nil {
			resCh <- result{err: err}
			return
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		resCh <- result{body: string(body), err: err}
	}()

	select {
	case <-inFlight:
	case <-time.After(2 * time.Second):
		t.Fatal("upload never reached the handler")
	}

	cancel()
	time.Sleep(50 * time.Millisecond)
	close(finish)

	select {
	case res := <-resCh:
		if res.err != nil {
			t.Fatalf("in-flight upload failed: %v", res.err)
		}
		if res.body != `{"skin_tone":"dark"}` {
			t.Fatalf("unexpected body %q", res.body)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("in-flight upload did not complete")
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return after shutdown")
	}
}

func TestServeReturnsListenerError(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to create listener: %v", err)
	}
	listener.Close()

	err = serve(context.Background(), &http.Server{Handler: http.NewServeMux()}, listener, time.Second, zap.NewNop())
	if err == nil {
		t.Fatal("expected error from closed listener")
	}
}
