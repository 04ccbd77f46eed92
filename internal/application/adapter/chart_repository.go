// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"iter"

	"github.com/google/uuid"

	"github.com/chart-of-accounts/backend/internal/domain/entity"
)

// Charts is the registry of charts of accounts.
type Charts interface {
	// Iterate yields every chart ordered by ascending ID. Each range over the
	// returned sequence starts a fresh traversal of the store.
	Iterate(ctx context.Context) iter.Seq2[Chart, error]

	// Size returns the total number of charts.
	Size(ctx context.Context) (int64, error)

	// Get retrieves a chart by its ID.
	Get(ctx context.Context, id int64) (Chart, error)

	// Add creates an ACTIVE chart and returns it with its assigned ID.
	Add(ctx context.Context, chartType entity.ChartType, version string, entityID uuid.UUID) (Chart, error)

	// Remove deletes a chart together with all its accounts.
	Remove(ctx context.Context, id int64) error
}

// Chart is a chart of accounts aggregate. Accessors read the snapshot taken
// when the chart was retrieved; mutations through this handle refresh it.
type Chart interface {
	ID() int64
	Name() string
	Type() entity.ChartType
	Policy() entity.ChartPolicy
	Version() string
	State() entity.ChartState
	Entity() uuid.UUID

	// Iterate returns at most limit accounts ordered by code, skipping the
	// first start matches. A non-empty filter keeps accounts whose code or
	// name contains it, ignoring case.
	Iterate(ctx context.Context, start, limit int, filter string) ([]Account, error)

	// Size returns the number of accounts in the chart.
	Size(ctx context.Context) (int64, error)

	// Count returns the number of accounts matching filter.
	Count(ctx context.Context, filter string) (int64, error)

	// Contains reports whether an account with code exists.
	Contains(ctx context.Context, code string) (bool, error)

	// Get retrieves an account by code.
	Get(ctx context.Context, code string) (Account, error)

	// Add creates an account with reconciliation disallowed and not deprecated.
	Add(ctx context.Context, code, name string) (Account, error)

	// AddAccount creates an account with the code, name and flags of account
	// in a single write. account.ChartID is ignored.
	AddAccount(ctx context.Context, account entity.Account) (Account, error)

	// Remove deletes an account.
	Remove(ctx context.Context, code string) error

	// Activate moves the chart to ACTIVE when enable is true, INACTIVE otherwise.
	Activate(ctx context.Context, enable bool) error
}

// Account is a general-ledger account of a chart. Accessors read the
// handle's snapshot; a failed mutation leaves it unchanged.
type Account interface {
	Code() string
	Name() string
	IsReconciliationAllowed() bool
	IsDeprecated() bool

	// Update changes both code and name.
	Update(ctx context.Context, code, name string) error

	// ChangeCode re-codes the account; the new code must be free in the chart.
	ChangeCode(ctx context.Context, code string) error

	// Rename changes the account name.
	Rename(ctx context.Context, name string) error

	// Depreciate sets or clears the deprecated flag.
	Depreciate(ctx context.Context, enable bool) error

	// AllowReconciliation sets or clears the reconciliation flag.
	AllowReconciliation(ctx context.Context, enable bool) error

	// Apply writes every non-nil field of changes in one transaction.
	Apply(ctx context.Context, changes AccountChanges) error

	// Clone creates a new account of the same chart carrying this account's flags.
	Clone(ctx context.Context, code, name string) (Account, error)
}

// AccountChanges selects the account fields to change. Nil fields are kept.
type AccountChanges struct {
	Code                  *string
	Name                  *string
	Deprecated            *bool
	ReconciliationAllowed *bool
}

// IsEmpty reports whether no field is selected.
func (c AccountChanges) IsEmpty() bool {
	return c.Code == nil && c.Name == nil && c.Deprecated == nil && c.ReconciliationAllowed == nil
}

// ChartCache caches chart descriptors by ID.
type ChartCache interface {
	// Get returns the cached chart, or false on a miss.
	Get(ctx context.Context, id int64) (*entity.Chart, bool, error)

	// Set stores a chart descriptor.
	Set(ctx context.Context, chart *entity.Chart) error

	// Invalidate drops a chart descriptor.
	Invalidate(ctx context.Context, id int64) error

	// Ping checks the cache backend.
	Ping(ctx context.Context) error
}
