// Package demo holds the scripted walkthroughs run by the zoo CLI.
package demo

import (
	"io"
	"log/slog"

	"github.com/rcliao/zoo/internal/animal"
	"github.com/rcliao/zoo/internal/cat"
)

// Reference constructs animals with every constructor, releases one early,
// then renames and feeds it. Animals still live when Reference returns are
// released in reverse construction order.
func Reference(w io.Writer, logger *slog.Logger) {
	opts := []animal.Option{animal.WithOutput(w), animal.WithLogger(logger)}

	defaultAnimal1 := animal.New(opts...)
	defer defaultAnimal1.Release()
	defaultAnimal2 := animal.New(opts...)
	defer defaultAnimal2.Release()
	defaultAnimal3 := animal.New(opts...)
	defer defaultAnimal3.Release()

	animal1 := animal.NewWithHunger("Cat", 0, opts...)
	defer animal1.Release()

	animal2 := animal.NewNamed("Cat", opts...)
	defer animal2.Release()

	a := animal.NewWithHunger("Cat", 0, opts...)
	defer a.Release()
	a.Release()

	a.SetName("My Cat")
	a.Eat(10)
	a.SetHunger(50)
	a.Eat(10)
}

// Dispatch feeds a cat through its own handle and through its Animal
// handle, then makes it meow through a Meower.
func Dispatch(w io.Writer, logger *slog.Logger) {
	c := cat.NewNamed("Tom", "Siamese", animal.WithOutput(w), animal.WithLogger(logger))
	defer c.Release()

	c.Eat(10)

	var base *animal.Animal = c.Base()
	base.Eat(10)

	var m cat.Meower = c
	m.Meow()
}
