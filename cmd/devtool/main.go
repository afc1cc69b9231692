package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := newDefaultRegistry()

	if len(os.Args) < 2 {
		registry.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}

// newDefaultRegistry registers every devtool command
func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&MigrateCommand{})
	r.Register(&WaitForDBCommand{})
	r.Register(&HealthCheckCommand{})
	r.Register(&ValidateCommand{})
	r.Register(&InspectCommand{})
	r.Register(&DeadLettersCommand{})
	return r
}
