// Package storage defines the key-value persistence gateway the application
// state is durably stored behind. Values are self-contained JSON documents
// held under a fixed set of namespaced keys.
package storage

import "context"

// Well-known storage keys. Each key holds one whole collection or record.
const (
	KeyProfitPlan       = "profit_plan"
	KeyExpenses         = "expenses"
	KeyLearningProgress = "learning_progress"
	KeyPriceAlerts      = "price_alerts"
	KeyUserPreferences  = "user_preferences"
)

// Gateway is the durable key-value store. Set serializes the value to JSON
// and overwrites the key. Get deserializes into out and reports whether the
// key held a usable document; corrupt or unreadable payloads are treated as
// absent, not surfaced as errors. Write failures are returned so callers
// that care can react, but implementations must leave prior data intact.
type Gateway interface {
	Set(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string, out any) (bool, error)
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
