package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/osse101/CharacterForge_Go/internal/config"
	"github.com/osse101/CharacterForge_Go/internal/event"
)

type DeadLettersCommand struct{}

func (c *DeadLettersCommand) Name() string {
	return "deadletters"
}

func (c *DeadLettersCommand) Aliases() []string {
	return []string{"dlq"}
}

func (c *DeadLettersCommand) Description() string {
	return "List events that exhausted their publish retries [-file PATH]"
}

func (c *DeadLettersCommand) Run(args []string) error {
	flags := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	file := flags.String("file", getEnv("EVENT_DEADLETTER_PATH", config.DefaultEventDeadLetterPath), "dead-letter file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	n, err := listDeadLetters(os.Stdout, *file)
	if err != nil {
		return err
	}
	if n == 0 {
		PrintSuccess("No dead-lettered events in %s", *file)
	}
	return nil
}

// listDeadLetters prints one row per entry and returns how many there were.
// A missing file means nothing was ever dead-lettered.
func listDeadLetters(w io.Writer, path string) (int, error) {
	entries, err := event.ReadDeadLetters(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Timestamp.Format(time.RFC3339),
			string(e.Event.Type),
			fmt.Sprint(e.Attempts),
			e.LastError,
		})
	}
	printTable(w, []string{"TIME", "TYPE", "ATTEMPTS", "ERROR"}, rows)
	return len(entries), nil
}
