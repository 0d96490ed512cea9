package amqp

import (
	"testing"
	"time"
)

func TestTransactionSyncMessageRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		id     int64
		action SyncAction
	}{
		{"upsert", 42, ActionUpsert},
		{"delete", 7, ActionDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewTransactionSyncMessage(tt.id, tt.action)

			data, err := msg.ToJSON()
			if err != nil {
				t.Fatalf("ToJSON() error = %v", err)
			}

			got, err := TransactionSyncMessageFromJSON(data)
			if err != nil {
				t.Fatalf("TransactionSyncMessageFromJSON() error = %v", err)
			}

			if got.ID != tt.id {
				t.Errorf("ID = %d, want %d", got.ID, tt.id)
			}
			if got.Action != tt.action {
				t.Errorf("Action = %q, want %q", got.Action, tt.action)
			}
			if got.Timestamp.IsZero() {
				t.Error("Timestamp should not be zero")
			}
			if time.Since(got.Timestamp) > time.Minute {
				t.Errorf("Timestamp = %v, too old", got.Timestamp)
			}
		})
	}
}

func TestTransactionSyncMessageFromJSONRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{not json`},
		{"unknown action", `{"id":1,"action":"reticulate","timestamp":"2026-01-01T00:00:00Z"}`},
		{"missing action", `{"id":1,"timestamp":"2026-01-01T00:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TransactionSyncMessageFromJSON([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
