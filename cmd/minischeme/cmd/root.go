/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "minischeme",
	Short: "A small Scheme-like dialect: tokenizer, parser, arena GC, evaluator",
	Long: `minischeme is a tree-walking interpreter for a small Scheme-like
dialect: signed 64-bit integers, booleans, symbols, cons pairs, lambdas,
and a fixed set of built-in procedures, backed by an arena with a
mark-and-sweep collector run between top-level expressions.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
