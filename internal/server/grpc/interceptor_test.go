package grpc

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc"

	"github.com/jabbaspizza/accounts/internal/logging"
)

type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (c *captureLogger) add(msg string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	parts := []string{msg}
	for _, a := range args {
		if s, ok := a.(string); ok {
			parts = append(parts, s)
		}
	}
	c.lines = append(c.lines, strings.Join(parts, " "))
}

func (c *captureLogger) Info(_ context.Context, msg string, args ...any)  { c.add(msg, args...) }
func (c *captureLogger) Warn(_ context.Context, msg string, args ...any)  { c.add(msg, args...) }
func (c *captureLogger) Error(_ context.Context, msg string, args ...any) { c.add(msg, args...) }
func (c *captureLogger) With(args ...any) logging.Logger {
	// flatten the pairs into every line for easy assertions
	kv := make([]string, 0, len(args))
	for _, a := range args {
		if s, ok := a.(string); ok {
			kv = append(kv, s)
		}
	}
	return &prefixedLogger{parent: c, prefix: strings.Join(kv, " ")}
}

type prefixedLogger struct {
	parent *captureLogger
	prefix string
}

func (p *prefixedLogger) Info(_ context.Context, msg string, args ...any) {
	p.parent.add(p.prefix+" "+msg, args...)
}
func (p *prefixedLogger) Warn(_ context.Context, msg string, args ...any) {
	p.parent.add(p.prefix+" "+msg, args...)
}
func (p *prefixedLogger) Error(_ context.Context, msg string, args ...any) {
	p.parent.add(p.prefix+" "+msg, args...)
}
func (p *prefixedLogger) With(args ...any) logging.Logger {
	kv := make([]string, 0, len(args))
	for _, a := range args {
		if s, ok := a.(string); ok {
			kv = append(kv, s)
		}
	}
	return &prefixedLogger{parent: p.parent, prefix: p.prefix + " " + strings.Join(kv, " ")}
}

func (c *captureLogger) contains(substr string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestInterceptor_LogsRequestAndResponse(t *testing.T) {
	log := &captureLogger{}
	s := &GRPCServer{logger: log}

	info := &grpc.UnaryServerInfo{FullMethod: "/accounts.AccountService/GetAccount"}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.requestLoggingInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if !log.contains("Received request") || !log.contains("/accounts.AccountService/GetAccount") {
		t.Fatalf("incoming request not logged: %v", log.lines)
	}
	if !log.contains("Request completed") {
		t.Fatalf("completion not logged: %v", log.lines)
	}
}

func TestInterceptor_LogsFailure(t *testing.T) {
	log := &captureLogger{}
	s := &GRPCServer{logger: log}

	info := &grpc.UnaryServerInfo{FullMethod: "/accounts.AccountService/CreateAccount"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, errors.New("boom")
	}

	_, err := s.requestLoggingInterceptor(context.Background(), nil, info, h)
	if err == nil {
		t.Fatal("expected handler error to propagate")
	}
	if !log.contains("Request failed") || !log.contains("boom") {
		t.Fatalf("failure not logged: %v", log.lines)
	}
}
