package pkgreg

import (
	"fmt"
	"sync"

	"github.com/prateekvishnu/goscript/vm"
)

// Registry is the program-wide table of loaded packages, keyed by
// import path.
type Registry struct {
	mu       sync.Mutex
	packages map[string]*vm.Package
}

// NewRegistry constructs an empty package registry.
func NewRegistry() *Registry {
	return &Registry{packages: make(map[string]*vm.Package)}
}

// Register adds pkg to the registry under its own key. Panics on a
// duplicate key, which indicates a loader bug (double-registration of
// the same import path).
func (r *Registry) Register(pkg *vm.Package) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.packages[pkg.Key()]; exists {
		panic(fmt.Sprintf("pkgreg: package %q already registered", pkg.Key()))
	}
	r.packages[pkg.Key()] = pkg
}

// Get resolves an import path to its package. The ok result is false if
// the path was never registered (a loader/linker bug by the time IMPORT
// executes, since imports are resolved at load time).
func (r *Registry) Get(key string) (*vm.Package, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.packages[key]
	return p, ok
}

// NeedsInit reports whether key's package has not yet run its init
// functions — IMPORT's boolean result, consulted by the caller to decide
// whether to invoke the package's init functions before proceeding.
func (r *Registry) NeedsInit(key string) bool {
	p, ok := r.Get(key)
	return ok && !p.Initialized()
}
