// Package shutdown coordinates an orderly stop of registered components on
// OS signals or window close.
package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"solarsim/internal/logger"
)

const componentTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

type Manager struct {
	mu         sync.Mutex
	components []Shutdownable
	log        logger.Logger
	done       chan struct{}
	once       sync.Once
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		log:  log,
		done: make(chan struct{}),
	}
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, component)
}

// Listen triggers a shutdown on SIGINT or SIGTERM.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.log.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
	}()
}

// Shutdown stops every registered component in reverse registration order,
// giving each a bounded amount of time. Safe to call more than once.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		m.mu.Lock()
		components := make([]Shutdownable, len(m.components))
		copy(components, m.components)
		m.mu.Unlock()

		m.log.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
			"components": len(components),
		})

		for i := len(components) - 1; i >= 0; i-- {
			finished := make(chan struct{})
			go func(c Shutdownable) {
				defer close(finished)
				c.Shutdown()
			}(components[i])

			select {
			case <-finished:
			case <-time.After(componentTimeout):
				m.log.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
					"component_index": i,
				})
			}
		}

		close(m.done)
		m.log.Info("ShutdownManager", "shutdown sequence completed", nil)
	})
}

// Done is closed once the shutdown sequence has finished.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
