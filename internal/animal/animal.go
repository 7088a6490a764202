// Package animal defines the Animal entity: a named creature with a hunger
// counter that can be fed and released.
package animal

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oklog/ulid/v2"
)

// HungerThreshold is the hunger level above which an animal is hungry.
const HungerThreshold = 30

// Animal is a named creature with a hunger counter.
//
// The zero value is a valid animal with an empty name and zero hunger that
// writes to os.Stdout. Fields are unexported so that types built on top of
// Animal in other packages go through its methods.
type Animal struct {
	name   string
	hunger int

	id       string
	out      io.Writer
	logger   *slog.Logger
	released bool
}

// Option configures an Animal at construction.
type Option func(*Animal)

// WithOutput sets the writer that receives the animal's messages.
func WithOutput(w io.Writer) Option {
	return func(a *Animal) { a.out = w }
}

// WithLogger sets the logger used for lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(a *Animal) { a.logger = l }
}

// New creates an animal with an empty name and zero hunger.
func New(opts ...Option) *Animal {
	return NewWithHunger("", 0, opts...)
}

// NewNamed creates an animal with the given name and zero hunger.
func NewNamed(name string, opts ...Option) *Animal {
	return NewWithHunger(name, 0, opts...)
}

// NewWithHunger creates an animal with the given name and hunger.
// Unlike SetHunger, the hunger value is taken as-is, negative included.
func NewWithHunger(name string, hunger int, opts ...Option) *Animal {
	a := &Animal{
		name:   name,
		hunger: hunger,
		id:     ulid.Make().String(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log().Debug("animal created", "id", a.id, "name", a.name, "hunger", a.hunger)
	return a
}

// ID returns the instance identifier. It is empty for zero-value animals.
func (a *Animal) ID() string {
	return a.id
}

// Name returns the animal's name.
func (a *Animal) Name() string {
	return a.name
}

// SetName updates the animal's name.
func (a *Animal) SetName(value string) {
	a.name = value
}

// SetHunger updates hunger if value is non-negative. Negative values are
// ignored and the previous hunger is kept.
func (a *Animal) SetHunger(value int) {
	if value < 0 {
		a.log().Debug("hunger rejected", "id", a.id, "name", a.name, "value", value)
		return
	}
	a.hunger = value
}

// IsHungry reports whether hunger is above HungerThreshold.
func (a *Animal) IsHungry() bool {
	return a.hunger > HungerThreshold
}

// Eat reduces hunger by value, never going below zero. The animal eats
// whether or not it is hungry; only the messages differ.
func (a *Animal) Eat(value int) {
	if !a.IsHungry() {
		a.printf("Animal('%s') is not hungry.\n", a.name)
	}

	a.printf("Animal('%s') is eating.\n", a.name)
	a.hunger -= value

	if a.hunger < 0 {
		a.hunger = 0
	}
}

// Release emits the deletion notice. Only the first call has an effect;
// the animal stays usable afterwards.
func (a *Animal) Release() {
	if a.released {
		return
	}
	a.released = true
	a.printf("Animal('%s') is deleted.\n", a.name)
	a.log().Debug("animal released", "id", a.id, "name", a.name)
}

// Released reports whether Release has been called.
func (a *Animal) Released() bool {
	return a.released
}

// Printf writes a formatted message to the animal's output. Types that
// embed Animal use it so their messages share the same destination.
func (a *Animal) Printf(format string, args ...any) {
	a.printf(format, args...)
}

func (a *Animal) printf(format string, args ...any) {
	out := a.out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, format, args...)
}

func (a *Animal) log() *slog.Logger {
	if a.logger == nil {
		return slog.Default()
	}
	return a.logger
}
