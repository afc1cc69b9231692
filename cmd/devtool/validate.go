package main

import (
	"errors"
	"flag"
	"os"
	"path"
	"path/filepath"

	"github.com/osse101/CharacterForge_Go/configs"
	"github.com/osse101/CharacterForge_Go/internal/config"
	"github.com/osse101/CharacterForge_Go/internal/validation"
)

type ValidateCommand struct{}

func (c *ValidateCommand) Name() string {
	return "validate"
}

func (c *ValidateCommand) Description() string {
	return "Validate catalog files against the embedded schemas [-dir configs]"
}

func (c *ValidateCommand) Run(args []string) error {
	flags := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	dir := flags.String("dir", config.ConfigDirDefault, "directory holding the catalog files")
	if err := flags.Parse(args); err != nil {
		return err
	}

	PrintHeader("Validating catalogs in " + *dir)

	failed := validateCatalogs(*dir, validation.NewFSSchemaValidator(configs.FS))
	if failed > 0 {
		return errors.New("catalog validation failed")
	}
	PrintSuccess("All %d catalogs are valid", len(config.CatalogFiles))
	return nil
}

// validateCatalogs checks every catalog file in dir and returns how many failed.
// A missing file counts as a failure.
func validateCatalogs(dir string, v validation.SchemaValidator) int {
	failed := 0
	for _, catalogPath := range config.CatalogFiles {
		file := path.Base(catalogPath)
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			PrintError("%s: %v", file, err)
			failed++
			continue
		}
		if err := v.ValidateBytes(data, configs.SchemaPath(file)); err != nil {
			PrintError("%s: %v", file, err)
			failed++
			continue
		}
		PrintSuccess("%s", file)
	}
	return failed
}
