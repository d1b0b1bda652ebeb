package scene

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/traject/internal/engine"
)

const trailCapacity = 256

// UpdateFunc receives the pose produced by each animation frame.
type UpdateFunc func(name string, tr Transform)

type loop struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Manager registers objects and runs one animation loop per object. Loops
// are strictly sequential per object; distinct objects animate on separate
// goroutines with no shared generator state.
type Manager struct {
	mu      sync.Mutex
	objects map[string]*Object
	loops   map[string]*loop

	trails *engine.TrailPool
	log    *zap.Logger
}

func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		objects: make(map[string]*Object),
		loops:   make(map[string]*loop),
		trails:  engine.NewTrailPool(trailCapacity),
		log:     log,
	}
}

func (m *Manager) Add(obj *Object) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.objects[obj.Name()]; exists {
		return fmt.Errorf("object already registered: %s", obj.Name())
	}
	m.objects[obj.Name()] = obj
	m.log.Info("object added", zap.String("name", obj.Name()))
	return nil
}

// Remove stops the object's animation, waits for its loop to exit, and
// unregisters it.
func (m *Manager) Remove(name string) error {
	m.Stop(name)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.objects[name]; !exists {
		return fmt.Errorf("unknown object: %s", name)
	}
	delete(m.objects, name)
	m.log.Info("object removed", zap.String("name", name))
	return nil
}

func (m *Manager) Get(name string) (*Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[name]
	return obj, ok
}

func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.objects))
	for name := range m.objects {
		names = append(names, name)
	}
	return names
}

// Start launches the object's animation loop at the given frame rate. The
// loop feeds wall-clock frame deltas as both t and dt and reports each new
// pose through onUpdate. Starting a running object is an error.
func (m *Manager) Start(ctx context.Context, name string, fps int, onUpdate UpdateFunc) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	m.mu.Lock()
	obj, ok := m.objects[name]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("unknown object: %s", name)
	}
	if _, running := m.loops[name]; running {
		m.mu.Unlock()
		return fmt.Errorf("animation already running: %s", name)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	l := &loop{cancel: cancel, done: make(chan struct{})}
	m.loops[name] = l
	obj.attachTrail(m.trails.Get())
	m.mu.Unlock()

	m.log.Info("animation started",
		zap.String("name", name),
		zap.Int("fps", fps),
	)

	go m.animate(loopCtx, obj, l, fps, onUpdate)
	return nil
}

func (m *Manager) animate(ctx context.Context, obj *Object, l *loop, fps int, onUpdate UpdateFunc) {
	defer close(l.done)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			m.mu.Lock()
			delete(m.loops, obj.Name())
			m.mu.Unlock()
			m.trails.Put(obj.detachTrail())
			m.log.Info("animation stopped", zap.String("name", obj.Name()))
			return
		case now := <-ticker.C:
			t := now.Sub(last).Seconds()
			last = now

			tr := obj.advance(t, t)
			if onUpdate != nil {
				onUpdate(obj.Name(), tr)
			}
		}
	}
}

// Stop cancels the object's animation loop and waits for it to exit.
// Returns false if no loop was running.
func (m *Manager) Stop(name string) bool {
	m.mu.Lock()
	l, running := m.loops[name]
	m.mu.Unlock()

	if !running {
		return false
	}
	l.cancel()
	<-l.done
	return true
}

// StopAll stops every running animation.
func (m *Manager) StopAll() {
	m.mu.Lock()
	active := make([]string, 0, len(m.loops))
	for name := range m.loops {
		active = append(active, name)
	}
	m.mu.Unlock()

	for _, name := range active {
		m.Stop(name)
	}
}

// Running reports whether the object's animation loop is active.
func (m *Manager) Running(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, running := m.loops[name]
	return running
}
