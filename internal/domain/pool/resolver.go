package pool

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// RevisionPoolName is the pool that receives damage-report reminders.
const RevisionPoolName = "revision_areas"

// DefaultRevisionPool guarantees delivery continuity when the configured
// pool is missing, empty, or unreadable.
var DefaultRevisionPool = []string{
	"planeacion.eventos@costaricacc.com",
	"luis.arvizu@costaricacc.com",
	"yoxsy.chaves@costaricacc.com",
	"seguridad@costaricacc.com",
	"infra@costaricacc.com",
	"silvia.navarro@costaricacc.com",
	"centralseguridad@costaricacc.com",
}

// Resolver turns a pool name into a usable recipient list. It never fails:
// any problem with the stored value degrades to the fallback list.
type Resolver struct {
	repo     Repository
	fallback []string
	logger   *logrus.Logger
}

func NewResolver(repo Repository, fallback []string, logger *logrus.Logger) *Resolver {
	return &Resolver{repo: repo, fallback: fallback, logger: logger}
}

// Resolve returns the recipient list for the named pool, or the fallback
// when the pool cannot be read or normalizes to nothing.
func (r *Resolver) Resolve(ctx context.Context, name string) []string {
	value, err := r.repo.Get(ctx, name)
	if err != nil {
		r.logger.Warnf("Could not read recipient pool %q, using fallback list: %v", name, err)
		return append([]string(nil), r.fallback...)
	}
	if resolved := Normalize(value); len(resolved) > 0 {
		return resolved
	}
	return append([]string(nil), r.fallback...)
}

// Normalize coerces a stored pool value into a clean address list. Arrays
// pass through minus empty entries; comma-separated strings are split and
// trimmed; any other shape yields nil.
func Normalize(value any) []string {
	switch v := value.(type) {
	case []string:
		var out []string
		for _, addr := range v {
			if addr != "" {
				out = append(out, addr)
			}
		}
		return out
	case []any:
		var out []string
		for _, item := range v {
			if addr, ok := item.(string); ok && addr != "" {
				out = append(out, addr)
			}
		}
		return out
	case string:
		var out []string
		for _, part := range strings.Split(v, ",") {
			if addr := strings.TrimSpace(part); addr != "" {
				out = append(out, addr)
			}
		}
		return out
	}
	return nil
}
