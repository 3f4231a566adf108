package configuration

import (
	"testing"
	"time"

	"github.com/sevaops/temple-console/pkg/apiclient"
)

func TestAPIOptions_Validate(t *testing.T) {
	cases := []struct {
		name    string
		opts    APIOptions
		wantErr bool
	}{
		{"valid", APIOptions{BaseURL: "http://localhost:8000", PathPrefix: "/api/v1", Timeout: 15 * time.Second, RetryCount: 2}, false},
		{"prefix without slash", APIOptions{PathPrefix: "api/v1", Timeout: time.Second}, true},
		{"zero timeout", APIOptions{PathPrefix: "/api/v1"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestAPIOptions_MapsToClientOptions(t *testing.T) {
	conf := APIOptions{
		BaseURL:    "http://localhost:8000",
		PathPrefix: "/api/v1",
		Timeout:    15 * time.Second,
		RetryCount: 3,
	}
	opts := apiclient.Options{
		BaseURL:    conf.BaseURL,
		PathPrefix: conf.PathPrefix,
		Timeout:    conf.Timeout,
		RetryCount: conf.RetryCount,
	}
	if opts.RetryCount != 3 {
		t.Fatalf("retry count did not carry over: got %d", opts.RetryCount)
	}
}

func TestRateLimitOptions_Validate(t *testing.T) {
	valid := RateLimitOptions{Enabled: true, GlobalRPS: 100, Storage: "memory"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	badStorage := RateLimitOptions{Storage: "disk"}
	if err := badStorage.Validate(); err == nil {
		t.Fatal("expected error for unknown storage")
	}

	redisWithoutURL := RateLimitOptions{Storage: "redis"}
	if err := redisWithoutURL.Validate(); err == nil {
		t.Fatal("expected error for redis storage without URL")
	}
}
