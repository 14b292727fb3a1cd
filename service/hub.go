package service

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Hub owns service instances and drives their lifecycle in dependency order
type Hub struct {
	mu       sync.Mutex
	services map[string]Service
	order    []string // Dependency order, resolved by InitAll
	started  []string // Rollback and shutdown list
	log      zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		services: make(map[string]Service),
		log:      log,
	}
}

// Register adds a service; names are unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, dup := h.services[name]; dup {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.services[name] = svc
	h.order = nil
	return nil
}

// MustGet returns the named service as T, panicking when absent or mistyped
func MustGet[T any](h *Hub, name string) T {
	h.mu.Lock()
	svc, ok := h.services[name]
	h.mu.Unlock()

	typed, isT := svc.(T)
	if !ok || !isT {
		panic(fmt.Sprintf("service %s: want %T, have %T", name, typed, svc))
	}
	return typed
}

// InitAll calls Init in dependency order with the args keyed by service name
// On failure every already-initialized service is stopped in reverse order
func (h *Hub) InitAll(args map[string][]any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.order == nil {
		order, err := h.resolve()
		if err != nil {
			return err
		}
		h.order = order
	}

	for i, name := range h.order {
		if err := h.services[name].Init(args[name]...); err != nil {
			h.unwind(h.order[:i])
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
	}
	return nil
}

// StartAll calls Start in dependency order, rolling back on failure
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = h.started[:0]
	for _, name := range h.order {
		if err := h.services[name].Start(); err != nil {
			h.unwind(h.started)
			h.started = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
		h.log.Debug().Str("service", name).Msg("Service started")
	}
	return nil
}

// StopAll stops started services in reverse order; errors are logged, never returned
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.unwind(h.started)
	h.started = nil
}

func (h *Hub) unwind(names []string) {
	for i := len(names) - 1; i >= 0; i-- {
		if err := h.services[names[i]].Stop(); err != nil {
			h.log.Warn().Err(err).Str("service", names[i]).Msg("Service stop failed")
		}
	}
}

// resolve orders services depth-first so dependencies precede dependents
// Independent services come out in name order
func (h *Hub) resolve() ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)

	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	sort.Strings(names)

	state := make(map[string]int, len(names))
	order := make([]string, 0, len(names))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("circular dependency through service %s", name)
		}
		state[name] = visiting

		deps := append([]string(nil), h.services[name].Dependencies()...)
		sort.Strings(deps)
		for _, dep := range deps {
			if _, ok := h.services[dep]; !ok {
				return fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
