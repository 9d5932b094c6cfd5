// Package jobs contains background task definitions and the Asynq worker.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskVendorPayablesRefresh recomputes a vendor's payables balance
	// from its financial transactions.
	TaskVendorPayablesRefresh = "vendor:payables_refresh"
	// TaskSessionsPrune removes expired session records from postgres.
	TaskSessionsPrune = "sessions:prune"
)

// VendorPayablesPayload identifies the vendor to refresh. A zero VendorID
// refreshes every vendor.
type VendorPayablesPayload struct {
	VendorID int64 `json:"vendor_id"`
}

// NewVendorPayablesTask constructs an Asynq task for a payables refresh.
func NewVendorPayablesTask(payload VendorPayablesPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskVendorPayablesRefresh, data), nil
}

// NewSessionsPruneTask constructs an Asynq task for session pruning.
func NewSessionsPruneTask() *asynq.Task {
	return asynq.NewTask(TaskSessionsPrune, nil)
}
