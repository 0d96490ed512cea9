package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldTxID        = "transaction_id"
	FieldTxTitle     = "transaction_title"
	FieldTxType      = "transaction_type"
	FieldAmountCents = "amount_cents"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentHTTP   = "http"
	ComponentWorker = "worker"
)

// Operations defines standard operation names
const (
	OpSave     = "save"
	OpDelete   = "delete"
	OpToggle   = "toggle"
	OpValidate = "validate"
)
