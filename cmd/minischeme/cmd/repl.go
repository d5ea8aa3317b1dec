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
	"fmt"
	"io"
	"runtime/debug"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
	"github.com/spf13/cobra"

	"github.com/cph-lisp/minischeme/lisp"
)

const newprompt = "\033[32m>\033[0m "
const resultprompt = "\033[31m=\033[0m "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(_ *cobra.Command, _ []string) error {
		runRepl()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl() {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".minischeme-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	onexit.Register(func() { l.Close() })

	interp := lisp.NewInterpreter()
	fmt.Printf("session %s\n", interp.ID)

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Println("panic:", r, string(debug.Stack()))
				}
			}()
			result, err := interp.Run(line)
			if err != nil {
				fmt.Println(err)
				return
			}
			fmt.Print(resultprompt)
			fmt.Println(result)
		}()
	}
}
