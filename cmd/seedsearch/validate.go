// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardforge/seedsearch/compile"
)

func validateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Compile a filter JSON document and report any errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the filter JSON document")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runValidate(configPath string) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return configError(fmt.Errorf("reading %s: %w", configPath, err))
	}

	f, err := compile.Compile(raw)
	if err != nil {
		return configError(err)
	}

	fmt.Printf("OK: %d must, %d should, %d mustNot clauses; %d streams planned\n",
		len(f.Must), len(f.Should), len(f.MustNot), len(f.Plan))
	return nil
}
