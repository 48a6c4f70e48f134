package accounts

import "fmt"

// Registry holds account IDs in registration order. The order matters:
// the scheduler's cap fallback takes the first under-cap account in this
// order, so iteration must be deterministic.
type Registry struct {
	ids  []string
	byID map[string]bool
}

// NewRegistry creates a registry of n sequentially numbered accounts
// ("ACC-00001" through "ACC-<n>").
func NewRegistry(n int) *Registry {
	ids := make([]string, n)
	byID := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("ACC-%05d", i+1)
		byID[ids[i]] = true
	}
	return &Registry{ids: ids, byID: byID}
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int {
	return len(r.ids)
}

// At returns the account at position i in registration order.
func (r *Registry) At(i int) string {
	return r.ids[i]
}

// All returns all account IDs in registration order.
func (r *Registry) All() []string {
	return r.ids
}

// Exists reports whether an account ID is registered.
func (r *Registry) Exists(id string) bool {
	return r.byID[id]
}
