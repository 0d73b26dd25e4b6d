// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/cpu"
	"gonum.org/v1/gonum/blas/gonum"
)

// EnvBackend names the environment variable read once to pick the process
// default backend. Empty or unknown values fall back to DefaultBackend.
const EnvBackend = "SPX_KERNEL"

// DefaultBackend is used when EnvBackend is unset.
const DefaultBackend = NameGonum

// ErrUnknownBackend is returned when a backend name is not registered.
var ErrUnknownBackend = errors.New("kernel: unknown backend")

var (
	mu       sync.RWMutex
	backends = map[string]Kernels{
		NameReference: Reference{},
		NameGonum:     NewBLAS(NameGonum, gonum.Implementation{}),
		NameBLAS64:    newGlobalBLAS(),
	}
	current  Kernels
	initOnce sync.Once
)

// Register adds (or replaces) a backend under k.Name().
func Register(k Kernels) {
	if k == nil {
		panic("kernel: Register of nil Kernels")
	}
	mu.Lock()
	backends[k.Name()] = k
	mu.Unlock()
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Kernels, error) {
	mu.RLock()
	k, ok := backends[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownBackend)
	}

	return k, nil
}

// Names lists registered backends in lexical order.
func Names() []string {
	mu.RLock()
	out := make([]string, 0, len(backends))
	for name := range backends {
		out = append(out, name)
	}
	mu.RUnlock()
	sort.Strings(out)

	return out
}

// Default returns the process default backend. The first call resolves
// EnvBackend; matrices built without an explicit backend capture this value.
func Default() Kernels {
	initOnce.Do(selectFromEnv)
	mu.RLock()
	defer mu.RUnlock()

	return current
}

// Use installs k as the process default backend.
func Use(k Kernels) {
	if k == nil {
		panic("kernel: Use of nil Kernels")
	}
	initOnce.Do(selectFromEnv)
	mu.Lock()
	current = k
	mu.Unlock()
	log.Trace().Str("backend", k.Name()).Msg("kernel: default backend installed")
}

// Select installs the registered backend called name as the default.
func Select(name string) error {
	k, err := Lookup(name)
	if err != nil {
		return err
	}
	Use(k)

	return nil
}

// selectFromEnv runs once; it must not call Use (initOnce is held).
func selectFromEnv() {
	k, err := resolveBackend(os.Getenv)
	if err != nil {
		log.Warn().Err(err).Str("fallback", DefaultBackend).Msg("kernel: backend from environment ignored")
	}
	mu.Lock()
	current = k
	mu.Unlock()

	log.Trace().
		Str("backend", k.Name()).
		Bool("avx2", cpu.X86.HasAVX2).
		Bool("fma", cpu.X86.HasFMA).
		Bool("avx512f", cpu.X86.HasAVX512F).
		Bool("asimd", cpu.ARM64.HasASIMD).
		Msg("kernel: backend selected")
}

// resolveBackend maps getenv(EnvBackend) to a registered backend. An
// unknown name yields the DefaultBackend together with ErrUnknownBackend.
func resolveBackend(getenv func(string) string) (Kernels, error) {
	name := strings.TrimSpace(getenv(EnvBackend))
	if name == "" {
		name = DefaultBackend
	}
	k, err := Lookup(name)
	if err != nil {
		fallback, _ := Lookup(DefaultBackend)
		return fallback, err
	}

	return k, nil
}
