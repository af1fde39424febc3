// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command iconbake converts SVG files into Go source declaring
// pre-tessellated icons, so that apps need not parse SVG at startup.
//
//	iconbake --pkg myicons --out icons.go logo.svg arrow-left.svg
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cogentcore.org/armas/base/logx"
)

type flags struct {
	pkg  string
	out  string
	name string
	vv   bool
	v    bool
	q    bool
}

func newRootCmd() *cobra.Command {
	fl := &flags{}
	cmd := &cobra.Command{
		Use:           "iconbake [flags] file.svg...",
		Short:         "Bake SVG icons into Go source",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(fl.vv, fl.v, fl.q)
			logx.SetDefaultLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fl, args)
		},
	}
	cmd.Flags().StringVar(&fl.pkg, "pkg", "icons", "package name of the generated file")
	cmd.Flags().StringVarP(&fl.out, "out", "o", "icons.go", "output file, or - for standard output")
	cmd.Flags().StringVar(&fl.name, "name", "", "Go identifier of the icon when baking a single file")
	cmd.Flags().BoolVar(&fl.vv, "vv", false, "log debug messages")
	cmd.Flags().BoolVarP(&fl.v, "verbose", "v", false, "log info messages")
	cmd.Flags().BoolVarP(&fl.q, "quiet", "q", false, "only log errors")
	return cmd
}

func run(cmd *cobra.Command, fl *flags, args []string) error {
	if fl.name != "" && len(args) != 1 {
		return fmt.Errorf("iconbake: --name needs exactly one input file, not %d", len(args))
	}
	srcs := make([]Source, len(args))
	for i, a := range args {
		b, err := os.ReadFile(a)
		if err != nil {
			return err
		}
		srcs[i] = Source{Path: a, Ident: fl.name, Data: b}
	}
	out, err := Bake(fl.pkg, srcs)
	if err != nil {
		return err
	}
	if fl.out == "-" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	return os.WriteFile(fl.out, out, 0666)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
