package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

// SyncAction names the mutation that produced a sync message.
type SyncAction string

const (
	ActionUpsert SyncAction = "upsert"
	ActionDelete SyncAction = "delete"
)

// TransactionSyncMessage is the lightweight event published after every
// store mutation. It carries only the id and action; the worker fetches
// the full record from the database when it needs one.
type TransactionSyncMessage struct {
	ID        int64      `json:"id"`
	Action    SyncAction `json:"action"`
	Timestamp time.Time  `json:"timestamp"`
}

func NewTransactionSyncMessage(id int64, action SyncAction) *TransactionSyncMessage {
	return &TransactionSyncMessage{
		ID:        id,
		Action:    action,
		Timestamp: time.Now(),
	}
}

func (m *TransactionSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionSyncMessageFromJSON(data []byte) (*TransactionSyncMessage, error) {
	var msg TransactionSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	switch msg.Action {
	case ActionUpsert, ActionDelete:
	default:
		return nil, fmt.Errorf("unknown sync action: %q", msg.Action)
	}
	return &msg, nil
}
