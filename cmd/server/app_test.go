// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/speedofwater/internal/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{Backend: "memory"},
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 0, Timeout: 5 * time.Second},
		API: config.APIConfig{
			SearchLimit:       20,
			DefaultTopLimit:   10,
			MaxTopLimit:       100,
			DefaultMonthsBack: 12,
			MaxMonthsBack:     240,
			CacheTTL:          time.Minute,
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"http://localhost:3000"},
			RateLimitDisabled: true,
		},
	}
}

func TestNewApp_MemoryBackend(t *testing.T) {
	a, err := newApp(context.Background(), memoryConfig())
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	defer a.close()

	tests := []struct {
		path     string
		wantCode int
		contains string
	}{
		{"/api/v1/health/ready", http.StatusOK, `"ready":true`},
		{"/api/v1/systems?q=arvin", http.StatusOK, "CA1510005"},
		{"/api/water-systems-by-county?name=Kern", http.StatusOK, "waterSystems"},
		{"/swagger/doc.json", http.StatusOK, "Speed of Water API"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body %s", w.Code, tt.wantCode, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("body %s does not contain %q", w.Body.String(), tt.contains)
			}
		})
	}
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := openStore(context.Background(), config.DatabaseConfig{Backend: "postgres"})
	if err == nil || !strings.Contains(err.Error(), "postgres") {
		t.Fatalf("openStore() error = %v, want unknown backend", err)
	}
}

func TestOpenStore_Memory(t *testing.T) {
	t.Parallel()

	rs, err := openStore(context.Background(), config.DatabaseConfig{Backend: "memory"})
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	if err := rs.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
