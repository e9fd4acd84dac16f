package gate

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dgnsrekt/guardrail/history"
	"github.com/dgnsrekt/guardrail/internal/diag"
	"github.com/dgnsrekt/guardrail/kind"
)

// Rule decides whether a candidate value may be stored in a field.
type Rule func(kind.Value) bool

// Config controls a Gate's audit trail.
type Config struct {
	// TrailCapacity bounds the audit trail. Non-positive falls back to
	// the default.
	TrailCapacity int64
}

// DefaultConfig keeps the last 512 accepted writes.
func DefaultConfig() Config {
	return Config{TrailCapacity: 512}
}

type field struct {
	rule  Rule
	value kind.Value
}

// Gate holds named fields behind validation rules. Writes that fail a
// field's rule are dropped without an error; the field simply keeps its
// last accepted value. All methods are safe for concurrent use.
type Gate struct {
	mu     sync.Mutex
	fields map[string]*field
	order  []string
	trail  *history.Log[Entry]
}

// New creates an empty gate.
func New(cfg Config) *Gate {
	capacity := cfg.TrailCapacity
	if capacity <= 0 {
		capacity = DefaultConfig().TrailCapacity
	}
	g := &Gate{
		fields: make(map[string]*field),
		trail:  history.New[Entry](),
	}
	g.trail.SetCapacity(float64(capacity))
	return g
}

// Define registers a field guarded by rule, starting at initial. The
// initial value is stored as given; only later writes pass through the
// rule. A nil rule accepts everything. Redefining a name replaces its
// rule and value without changing its position in Fields.
func (g *Gate) Define(name string, rule Rule, initial kind.Value) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.fields[name]; !ok {
		g.order = append(g.order, name)
	}
	g.fields[name] = &field{rule: rule, value: initial}
}

// Set offers a candidate value to a named field and returns the field's
// effective value afterwards. An accepted candidate replaces the
// current value and is recorded in the audit trail; a rejected one
// leaves the field untouched. A rule that panics is contained and
// counts as rejection. Offering to an unknown field returns Absent.
func (g *Gate) Set(name string, v kind.Value) kind.Value {
	g.mu.Lock()
	defer g.mu.Unlock()

	f, ok := g.fields[name]
	if !ok {
		setsRejected.WithLabelValues(name).Inc()
		diag.Debug("Rejected write to unknown field", "field", name)
		return kind.Absent()
	}
	if !accepts(f.rule, v) {
		setsRejected.WithLabelValues(name).Inc()
		diag.Debug("Rejected field write", "field", name, "value", v)
		return f.value
	}

	f.value = v
	setsAccepted.WithLabelValues(name).Inc()
	g.record(name, v)
	return f.value
}

// accepts runs the rule with panic containment.
func accepts(rule Rule, v kind.Value) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			diag.Fault("gate.Set", r)
		}
	}()

	if rule == nil {
		return true
	}
	return rule(v)
}

// record appends an audit entry, counting any eviction the capacity
// bound forces.
func (g *Gate) record(name string, v kind.Value) {
	before := g.trail.Len()
	after := g.trail.Append(Entry{
		ID:    uuid.NewString(),
		Field: name,
		Value: v,
		At:    time.Now(),
	})
	if evicted := before + 1 - after; evicted > 0 {
		trailEvictions.Add(float64(evicted))
	}
}

// Get returns a field's current value. Unknown fields read as Absent.
func (g *Gate) Get(name string) kind.Value {
	g.mu.Lock()
	defer g.mu.Unlock()

	if f, ok := g.fields[name]; ok {
		return f.value
	}
	return kind.Absent()
}

// Fields lists the defined field names in definition order.
func (g *Gate) Fields() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Trail returns a copy of the audit trail, oldest first.
func (g *Gate) Trail() Trail {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Trail(g.trail.Snapshot())
}

// TrailCapacity returns the audit trail's current bound.
func (g *Gate) TrailCapacity() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.trail.Capacity()
}

// SetTrailCapacity adjusts the audit trail's bound and returns the
// effective one; invalid bounds leave it unchanged. Lowering the bound
// drops the oldest entries immediately.
func (g *Gate) SetTrailCapacity(n float64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	before := g.trail.Len()
	capacity := g.trail.SetCapacity(n)
	if evicted := before - g.trail.Len(); evicted > 0 {
		trailEvictions.Add(float64(evicted))
	}
	return capacity
}

// ResetTrail clears the audit trail, keeping its capacity.
func (g *Gate) ResetTrail() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.trail.Reset()
}
