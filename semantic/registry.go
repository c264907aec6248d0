package semantic

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// registry is the package-level, goroutine-safe store of named transforms
// and resolvers. The CLI resolves its --fn and --resolver flags here.
var registry struct {
	mu         sync.RWMutex
	transforms map[string]TransformFunc
	resolvers  map[string]Resolver
}

func init() {
	registry.transforms = map[string]TransformFunc{
		"identity": func(v Value) (Value, error) { return v, nil },
		"upper":    mapString(strings.ToUpper),
		"lower":    mapString(strings.ToLower),
		"double":   mapNumber(func(v Value) (Value, error) { return Mul(v, Int(2)) }),
		"negate":   mapNumber(func(v Value) (Value, error) { return Sub(Int(0), v) }),
	}
	registry.resolvers = map[string]Resolver{
		"first": func(_ string, self, _ Value) (Value, error) { return self, nil },
		"last":  func(_ string, _, other Value) (Value, error) { return other, nil },
		"max":   pick(func(c int) bool { return c >= 0 }),
		"min":   pick(func(c int) bool { return c <= 0 }),
		"sum":   func(_ string, self, other Value) (Value, error) { return Add(self, other) },
	}
}

// mapString applies fn to string values and passes every other kind through.
func mapString(fn func(string) string) TransformFunc {
	return func(v Value) (Value, error) {
		if s, ok := v.AsString(); ok {
			return String(fn(s)), nil
		}
		return v, nil
	}
}

// mapNumber applies fn to Int and Float values and passes every other kind
// through.
func mapNumber(fn TransformFunc) TransformFunc {
	return func(v Value) (Value, error) {
		if !v.IsNumeric() {
			return v, nil
		}
		return fn(v)
	}
}

// pick keeps self when keepSelf(Compare(self, other)) holds, other otherwise.
func pick(keepSelf func(int) bool) Resolver {
	return func(key string, self, other Value) (Value, error) {
		c, err := Compare(self, other)
		if err != nil {
			return Null(), fmt.Errorf("key %q: %w", key, err)
		}
		if keepSelf(c) {
			return self, nil
		}
		return other, nil
	}
}

// RegisterTransform adds a named transform to the global registry.
// If a transform with that name already exists it is replaced.
// Safe to call from multiple goroutines.
//
//	semantic.RegisterTransform("trim", func(v semantic.Value) (semantic.Value, error) {
//	    if s, ok := v.AsString(); ok {
//	        return semantic.String(strings.TrimSpace(s)), nil
//	    }
//	    return v, nil
//	})
func RegisterTransform(name string, fn TransformFunc) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.transforms[name] = fn
}

// LookupTransform returns the transform registered under name, or
// [ErrTransformNotFound].
func LookupTransform(name string) (TransformFunc, error) {
	registry.mu.RLock()
	fn, ok := registry.transforms[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTransformNotFound, name)
	}
	return fn, nil
}

// TransformNames returns the registered transform names, sorted.
func TransformNames() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return sortedNames(registry.transforms)
}

// RegisterResolver adds a named merge resolver to the global registry.
// If a resolver with that name already exists it is replaced.
// Safe to call from multiple goroutines.
func RegisterResolver(name string, r Resolver) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.resolvers[name] = r
}

// LookupResolver returns the resolver registered under name, or
// [ErrResolverNotFound].
func LookupResolver(name string) (Resolver, error) {
	registry.mu.RLock()
	r, ok := registry.resolvers[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrResolverNotFound, name)
	}
	return r, nil
}

// ResolverNames returns the registered resolver names, sorted.
func ResolverNames() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return sortedNames(registry.resolvers)
}

func sortedNames[F any](m map[string]F) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
