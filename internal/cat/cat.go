// Package cat defines Cat, an Animal with a race that can meow.
package cat

import (
	"github.com/rcliao/zoo/internal/animal"
)

// Meower is implemented by anything that can meow. Calls through a Meower
// are resolved by the dynamic type of the value.
type Meower interface {
	Meow()
}

// Cat is an animal with a race.
//
// Cat embeds animal.Animal, so Animal's name and hunger are only reachable
// through its methods. Cat.Eat shadows Animal.Eat: it is selected by the
// static type of the receiver, so feeding a cat through its *animal.Animal
// handle runs Animal.Eat alone.
type Cat struct {
	animal.Animal

	race string
}

var _ Meower = (*Cat)(nil)

// New creates a cat with an empty name, zero hunger and no race.
func New(opts ...animal.Option) *Cat {
	return &Cat{Animal: *animal.New(opts...)}
}

// NewNamed creates a cat with the given name and race.
func NewNamed(name, race string, opts ...animal.Option) *Cat {
	return &Cat{Animal: *animal.NewNamed(name, opts...), race: race}
}

// SetRace updates the cat's race.
func (c *Cat) SetRace(race string) {
	c.race = race
}

// Race returns the cat's race.
func (c *Cat) Race() string {
	return c.race
}

// Base returns the cat viewed as an Animal.
func (c *Cat) Base() *animal.Animal {
	return &c.Animal
}

// Eat feeds the cat as an Animal, then reports that it finished.
func (c *Cat) Eat(value int) {
	c.Animal.Eat(value)
	c.Printf("Cat('%s') has finished eating.\n", c.Name())
}

// Meow makes the cat speak.
func (c *Cat) Meow() {
	c.Printf("Cat('%s') says meow.\n", c.Name())
}
