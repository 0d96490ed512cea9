package backend

import (
	"strings"
	"testing"

	"financas/internal/config"
)

func TestTypeIsValid(t *testing.T) {
	tests := []struct {
		bt   Type
		want bool
	}{
		{SQLiteBackend, true},
		{MemoryBackend, true},
		{Type("sheets"), false},
		{Type(""), false},
	}

	for _, tt := range tests {
		if got := tt.bt.IsValid(); got != tt.want {
			t.Errorf("Type(%q).IsValid() = %v, want %v", tt.bt, got, tt.want)
		}
	}
}

func TestFromAppConfig(t *testing.T) {
	appCfg := &config.Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: "./data/test.db",
		AMQPURL:      "amqp://localhost:5672/",
		AMQPExchange: "financas",
		AMQPQueue:    "sync_transactions",
	}

	cfg, err := FromAppConfig(appCfg)
	if err != nil {
		t.Fatalf("FromAppConfig() error = %v", err)
	}
	if cfg.Type != SQLiteBackend {
		t.Errorf("Type = %q, want sqlite", cfg.Type)
	}
	if cfg.SQLiteDBPath != "./data/test.db" {
		t.Errorf("SQLiteDBPath = %q, want ./data/test.db", cfg.SQLiteDBPath)
	}
}

func TestFromAppConfigRejectsUnknownBackend(t *testing.T) {
	_, err := FromAppConfig(&config.Config{DataBackend: "sheets"})
	if err == nil || !strings.Contains(err.Error(), "invalid backend type") {
		t.Errorf("FromAppConfig() error = %v, want invalid backend type", err)
	}
}

func TestFromAppConfigNil(t *testing.T) {
	if _, err := FromAppConfig(nil); err == nil {
		t.Error("FromAppConfig(nil) error = nil, want error")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Type: SQLiteBackend}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() error = nil, want error for missing db path")
	}

	cfg.SQLiteDBPath = "./data/test.db"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	if err := (Config{Type: MemoryBackend}).Validate(); err != nil {
		t.Errorf("memory Validate() error = %v, want nil", err)
	}
}
