package cli

import (
	"github.com/rcliao/zoo/internal/animal"
	"github.com/rcliao/zoo/internal/cat"
	"github.com/spf13/cobra"
)

func init() {
	feedCmd := &cobra.Command{
		Use:   "feed",
		Short: "Create an animal, feed it once and release it",
		Long:  "Create an animal with the given name and hunger, feed it once and release it. A plain animal takes hunger as-is, negative values included; a cat's hunger goes through SetHunger and negative values are ignored.",
		Args:  cobra.NoArgs,
		Run:   runFeed,
	}

	feedCmd.Flags().StringP("name", "n", "", "Animal name")
	feedCmd.Flags().Int("hunger", 0, "Initial hunger")
	feedCmd.Flags().IntP("amount", "a", 10, "Amount to eat")
	feedCmd.Flags().Bool("cat", false, "Feed a cat instead of a plain animal")
	feedCmd.Flags().StringP("race", "r", "", "Cat race (with --cat)")

	meowCmd := &cobra.Command{
		Use:   "meow",
		Short: "Create a cat and make it meow",
		Args:  cobra.NoArgs,
		Run:   runMeow,
	}

	meowCmd.Flags().StringP("name", "n", "", "Cat name")

	RootCmd.AddCommand(feedCmd, meowCmd)
}

func runFeed(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	hunger, _ := cmd.Flags().GetInt("hunger")
	amount, _ := cmd.Flags().GetInt("amount")
	isCat, _ := cmd.Flags().GetBool("cat")
	race, _ := cmd.Flags().GetString("race")

	logger, cleanup, err := openLogger()
	if err != nil {
		exitErr("open logger", err)
	}
	defer cleanup()

	opts := []animal.Option{animal.WithOutput(cmd.OutOrStdout()), animal.WithLogger(logger)}

	if isCat {
		c := cat.NewNamed(name, race, opts...)
		defer c.Release()
		c.SetHunger(hunger)
		c.Eat(amount)
		logger.Info("fed cat", "id", c.ID(), "name", c.Name(), "race", c.Race(), "hungry", c.IsHungry())
		return
	}

	a := animal.NewWithHunger(name, hunger, opts...)
	defer a.Release()
	a.Eat(amount)
	logger.Info("fed animal", "id", a.ID(), "name", a.Name(), "hungry", a.IsHungry())
}

func runMeow(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")

	logger, cleanup, err := openLogger()
	if err != nil {
		exitErr("open logger", err)
	}
	defer cleanup()

	c := cat.NewNamed(name, "", animal.WithOutput(cmd.OutOrStdout()), animal.WithLogger(logger))
	defer c.Release()

	var m cat.Meower = c
	m.Meow()
}
