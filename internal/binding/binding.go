// Package binding implements route model binding: resolving a route
// path parameter into a persisted entity before the handler runs.
//
// A Descriptor is registered per route at route-registration time and
// statically maps a path parameter name to an entity model name and a
// lookup function. The middleware produced by Middleware performs a
// single lookup per matching request: on success the entity is stored
// in the request context for the handler to read via Bound; on absence
// the handler is never invoked and a *NotFoundError is returned to the
// global error funnel, which renders it as a 404.
//
// There is no reflection and no caching; each request resolves
// independently against the persistence layer.
package binding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// ErrNoResult is the sentinel a Resolver returns when the key does not
// identify any entity. Keys that cannot be parsed into the entity's key
// type are equivalent to absent keys and map to ErrNoResult as well.
//
// Any other error returned by a Resolver is treated as an
// infrastructure failure and propagates to the 500 funnel untouched.
var ErrNoResult = errors.New("binding: no result")

// Resolver looks up an entity by the raw string key extracted from the
// URL path. It returns the entity, or ErrNoResult when the key does not
// resolve.
type Resolver func(ctx context.Context, key string) (any, error)

// Descriptor statically binds a route path parameter to an entity model
// and its lookup function. Descriptors are immutable after route
// registration.
type Descriptor struct {
	// Param is the path parameter name, by convention the lowercase
	// entity name (":student", ":course").
	Param string

	// Model is the entity model name used in the not-found message
	// ("Student", "Course").
	Model string

	// Resolve performs the lookup.
	Resolve Resolver
}

// NotFoundError is the resolution outcome for an absent entity. The
// global error funnel renders it as HTTP 404 with the body
//
//	{"message": "No query results for model [<Model>] <key>"}
//
// which preserves the documented wire format.
type NotFoundError struct {
	Model string
	Key   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No query results for model [%s] %s", e.Model, e.Key)
}

// contextKey namespaces bound entities in the echo context so a bound
// "student" cannot collide with unrelated c.Set calls.
func contextKey(param string) string {
	return "binding:" + param
}

// Middleware returns route middleware that resolves d's path parameter
// before the handler runs.
//
// Exactly one resolution outcome is produced per matching request:
//   - found: the entity is stored in the request context and the
//     handler is invoked. The handler must not re-fetch it.
//   - not found (ErrNoResult, pgx.ErrNoRows or sql.ErrNoRows): the
//     handler is NOT invoked; a *NotFoundError is returned.
//   - any other resolver error propagates unchanged (infrastructure
//     failures surface as 500 via the global error handler).
func Middleware(d Descriptor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Param(d.Param)

			entity, err := d.Resolve(c.Request().Context(), key)
			if err != nil {
				if errors.Is(err, ErrNoResult) || errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
					return &NotFoundError{Model: d.Model, Key: key}
				}
				return err
			}

			c.Set(contextKey(d.Param), entity)
			return next(c)
		}
	}
}

// Bound retrieves the entity resolved for param from the request
// context. The second return is false when no entity was bound under
// that name or it has a different type.
//
// Repeated calls within the same request return the identical entity
// snapshot; the middleware stores it once and never mutates it.
func Bound[T any](c echo.Context, param string) (T, bool) {
	entity, ok := c.Get(contextKey(param)).(T)
	return entity, ok
}

// Int64Key adapts a numeric-keyed lookup into a Resolver. A raw key
// that does not parse as a base-10 int64 cannot identify any row, so it
// maps to ErrNoResult rather than a client error.
func Int64Key(resolve func(ctx context.Context, id int64) (any, error)) Resolver {
	return func(ctx context.Context, key string) (any, error) {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric key %q", ErrNoResult, key)
		}
		return resolve(ctx, id)
	}
}
