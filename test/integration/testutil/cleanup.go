//go:build integration

package testutil

import (
	"context"
	"time"
)

// CleanCustomers truncates the account and ledger tables. The seeded
// catalogue tables are left intact, tests treat them as read-only.
func (env *TestEnv) CleanCustomers() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tables := []string{
		"event_outbox",
		"returns",
		"purchases",
		"customers",
	}

	for _, table := range tables {
		if _, err := env.Pool.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			env.t.Fatalf("CleanCustomers: truncate %s: %v", table, err)
		}
	}
}
