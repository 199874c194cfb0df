package cluster

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/version"
	fakediscovery "k8s.io/client-go/discovery/fake"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/client-go/rest"
	k8stesting "k8s.io/client-go/testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		contextName string
		restConfig  *rest.Config
		wantErr     bool
	}{
		{
			name:        "valid config",
			contextName: "test-context",
			restConfig: &rest.Config{
				Host: "https://localhost:6443",
			},
			wantErr: false,
		},
		{
			name:        "nil rest config",
			contextName: "test-context",
			restConfig:  nil,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.contextName, tt.restConfig, testLogger())

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client == nil {
				t.Fatal("expected client, got nil")
			}

			if client.Context != tt.contextName {
				t.Errorf("expected context %s, got %s", tt.contextName, client.Context)
			}
			if client.Dynamic == nil {
				t.Error("expected dynamic client to be initialized")
			}
			if client.Healthy {
				t.Error("expected Healthy to be false initially")
			}
		})
	}
}

func TestClient_HealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		setup   func() *Client
		wantErr bool
	}{
		{
			name: "successful health check",
			setup: func() *Client {
				fakeClient := fake.NewSimpleClientset()
				if fd, ok := fakeClient.Discovery().(*fakediscovery.FakeDiscovery); ok {
					fd.FakedServerVersion = &version.Info{Major: "1", Minor: "31"}
				}
				return &Client{Context: "test", Clientset: fakeClient}
			},
			wantErr: false,
		},
		{
			name: "failing discovery",
			setup: func() *Client {
				fakeClient := fake.NewSimpleClientset()
				fakeClient.Discovery().(*fakediscovery.FakeDiscovery).PrependReactor("get", "version",
					func(action k8stesting.Action) (bool, runtime.Object, error) {
						return true, nil, errors.New("server unavailable")
					})
				return &Client{Context: "test", Clientset: fakeClient}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := tt.setup()
			err := client.HealthCheck(context.Background())

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if client.IsHealthy() {
					t.Error("client should not be healthy after failed check")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !client.IsHealthy() {
				t.Error("client should be healthy after successful check")
			}
		})
	}
}
