package main

import (
	"os"

	"github.com/SystemBuilders/OrderedChain/internal/chain"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.GlobalLevel())

	sll := chain.NewSinglyLinkedList[int](log)
	if err := run(sll, log); err != nil {
		log.Error().Err(err).Str("chain", sll.ID().String()).Msg("walkthrough failed")
		os.Exit(1)
	}
}

// run walks the list through its operations and logs the rendered
// contents after each step.
func run(c chain.Chain[int], log zerolog.Logger) error {
	show := func(step string) error {
		rendered, err := c.Render()
		if err != nil {
			return err
		}
		log.Info().Str("step", step).Int("count", c.Len()).Msg(rendered)
		return nil
	}

	for _, v := range []int{10, 20, 30} {
		c.Append(v)
	}
	if err := show("append"); err != nil {
		return err
	}

	if err := c.Insert(15, 1); err != nil {
		return err
	}
	if err := show("insert"); err != nil {
		return err
	}

	if err := c.Reverse(); err != nil {
		return err
	}
	if err := show("reverse"); err != nil {
		return err
	}

	removed, ok, err := c.DeleteValue(15)
	if err != nil {
		return err
	}
	log.Info().Bool("found", ok).Int("value", removed).Msg("delete value")
	if err := show("delete value"); err != nil {
		return err
	}

	removed, err = c.DeleteByIndex(1)
	if err != nil {
		return err
	}
	log.Info().Int("value", removed).Msg("delete by index")
	if err := show("delete by index"); err != nil {
		return err
	}

	for !c.IsEmpty() {
		if _, err := c.PopBack(); err != nil {
			return err
		}
	}
	_, err = c.Render()
	if err != chain.ErrEmptyList {
		return err
	}
	log.Info().Msg("list drained")
	return nil
}
