package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shpandrak/shpancursor/cursor"
)

const defaultNamespace = "shpancursor"

type Option func(*config)

type config struct {
	registerer  prometheus.Registerer
	namespace   string
	constLabels prometheus.Labels
}

// WithRegisterer registers the collectors with r instead of the default prometheus registerer
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *config) {
		c.registerer = r
	}
}

func WithNamespace(namespace string) Option {
	return func(c *config) {
		c.namespace = namespace
	}
}

// WithConstLabels adds labels to every collected series, e.g. the service name
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *config) {
		c.constLabels = labels
	}
}

// Registry holds the counters updated by instrumented streams.
// Create one per process, registering the same namespace twice with a registerer panics.
type Registry struct {
	moves       *prometheus.CounterVec
	repositions *prometheus.CounterVec
}

func NewRegistry(options ...Option) *Registry {
	c := config{
		registerer: prometheus.DefaultRegisterer,
		namespace:  defaultNamespace,
	}
	for _, option := range options {
		option(&c)
	}
	factory := promauto.With(c.registerer)
	return &Registry{
		moves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   c.namespace,
			Name:        "cursor_moves_total",
			Help:        "Number of single slot cursor moves, by stream and direction.",
			ConstLabels: c.constLabels,
		}, []string{"stream", "direction"}),
		repositions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   c.namespace,
			Name:        "cursor_repositions_total",
			Help:        "Number of cursor jumps to the beginning or end, by stream and target.",
			ConstLabels: c.constLabels,
		}, []string{"stream", "target"}),
	}
}

// Instrument returns a stream behaving exactly like s, that counts its moves and repositions under the given name.
// Moves made directly on s are not counted.
func Instrument[T any](reg *Registry, name string, s cursor.Stream[T]) cursor.Stream[T] {
	return cursor.NewStream[T](&instrumentedNavigator[T]{
		inner:    s,
		forward:  reg.moves.WithLabelValues(name, "forward"),
		backward: reg.moves.WithLabelValues(name, "backward"),
		toBegin:  reg.repositions.WithLabelValues(name, "begin"),
		toEnd:    reg.repositions.WithLabelValues(name, "end"),
	})
}

type instrumentedNavigator[T any] struct {
	inner    cursor.Stream[T]
	forward  prometheus.Counter
	backward prometheus.Counter
	toBegin  prometheus.Counter
	toEnd    prometheus.Counter
}

func (in *instrumentedNavigator[T]) AtBeginning() bool {
	return in.inner.AtBeginning()
}

func (in *instrumentedNavigator[T]) AtEnd() bool {
	return in.inner.AtEnd()
}

func (in *instrumentedNavigator[T]) Forward() T {
	in.forward.Inc()
	v, _ := in.inner.Forward()
	return v
}

func (in *instrumentedNavigator[T]) Backward() T {
	in.backward.Inc()
	v, _ := in.inner.Backward()
	return v
}

func (in *instrumentedNavigator[T]) Current() T {
	v, _ := in.inner.Current()
	return v
}

func (in *instrumentedNavigator[T]) Peek() T {
	v, _ := in.inner.Peek()
	return v
}

func (in *instrumentedNavigator[T]) SetToBegin() {
	in.toBegin.Inc()
	in.inner.SetToBegin()
}

func (in *instrumentedNavigator[T]) SetToEnd() {
	in.toEnd.Inc()
	in.inner.SetToEnd()
}

func (in *instrumentedNavigator[T]) Err() error {
	return in.inner.Err()
}

func (in *instrumentedNavigator[T]) Close() {
	in.inner.Close()
}
