package store

import (
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrInvalidTenant is returned when a tenant identifier would not form a
// safe database name.
var ErrInvalidTenant = errors.New("invalid tenant identifier")

// Tenant identifiers are interpolated into database names, so they are
// restricted to characters that cannot change the namespace structure.
var tenantPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Router resolves tenant identifiers to tenant-scoped database handles.
// An empty tenant selects the base database; tenant "t" selects
// "<base>_t". Unknown tenants are not an error: the store creates the
// namespace transparently on first write.
type Router struct {
	client *mongo.Client
	base   string
}

func NewRouter(client *mongo.Client, base string) *Router {
	return &Router{
		client: client,
		base:   base,
	}
}

// DatabaseName maps a tenant identifier to its database name.
func (r *Router) DatabaseName(tenant string) (string, error) {
	if tenant == "" {
		return r.base, nil
	}
	if !tenantPattern.MatchString(tenant) {
		return "", ErrInvalidTenant
	}
	return r.base + "_" + tenant, nil
}

// Resolve returns a database handle scoped to the tenant's database.
func (r *Router) Resolve(tenant string) (*mongo.Database, error) {
	name, err := r.DatabaseName(tenant)
	if err != nil {
		return nil, err
	}
	return r.client.Database(name), nil
}
