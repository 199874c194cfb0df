package util

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNamespaceError(t *testing.T) {
	base := errors.New("connection refused")
	err := WrapNamespaceError("team-a", base)

	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !strings.Contains(err.Error(), "team-a") {
		t.Errorf("expected error to contain namespace, got %q", err.Error())
	}

	if !errors.Is(err, base) {
		t.Error("expected wrapped error to match with errors.Is")
	}

	var nsErr *NamespaceError
	if !errors.As(err, &nsErr) {
		t.Fatal("expected errors.As to find NamespaceError")
	}
	if nsErr.Namespace != "team-a" {
		t.Errorf("expected namespace team-a, got %q", nsErr.Namespace)
	}
}

func TestWrapNamespaceError_Nil(t *testing.T) {
	if err := WrapNamespaceError("team-a", nil); err != nil {
		t.Errorf("expected nil for nil error, got %v", err)
	}
}

func TestIsListingFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "direct sentinel",
			err:  ErrNamespaceListing,
			want: true,
		},
		{
			name: "wrapped sentinel",
			err:  fmt.Errorf("querying control plane: %w", ErrNamespaceListing),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsListingFailure(tt.err); got != tt.want {
				t.Errorf("IsListingFailure(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "nil error",
			err:      nil,
			contains: "",
		},
		{
			name:     "listing failure",
			err:      fmt.Errorf("oops: %w", ErrNamespaceListing),
			contains: "list namespaces",
		},
		{
			name:     "no namespaces",
			err:      ErrNoNamespaces,
			contains: "Nothing to audit",
		},
		{
			name:     "timeout",
			err:      fmt.Errorf("fetch: %w", ErrTimeout),
			contains: "timed out",
		},
		{
			name:     "unknown error passes through",
			err:      errors.New("something odd"),
			contains: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FriendlyError(tt.err)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("expected empty message, got %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("expected message to contain %q, got %q", tt.contains, got)
			}
		})
	}
}

func TestWrapErrorf(t *testing.T) {
	base := errors.New("base")
	err := WrapErrorf(base, "fetching routes for %s", "team-a")

	if !errors.Is(err, base) {
		t.Error("expected wrapped error to match base")
	}
	if !strings.Contains(err.Error(), "team-a") {
		t.Errorf("expected formatted context in error, got %q", err.Error())
	}

	if WrapErrorf(nil, "ignored") != nil {
		t.Error("expected nil for nil error")
	}
}
