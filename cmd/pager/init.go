package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pager/internal/config"
	"github.com/vango-dev/pager/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default pager.json",
		Long: `Write pager.json with every setting at its default value.

Examples:
  pager init
  pager init ./site --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing pager.json")

	return cmd
}

func runInit(dir string, force bool) error {
	path := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		if !force {
			return errors.New("E140").
				WithDetail(path + " already exists.").
				WithSuggestion("Pass --force to overwrite it")
		}
		warn("Overwriting %s", path)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.New("E103").Wrap(err)
	}
	if err := config.New().SaveTo(path); err != nil {
		return err
	}

	success("Wrote %s", path)
	info("Edit the pagination section to set defaults for render, serve and export")
	return nil
}
