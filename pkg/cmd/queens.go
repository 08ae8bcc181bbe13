// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/consensys/go-peano/pkg/display"
	"github.com/consensys/go-peano/pkg/list"
	"github.com/consensys/go-peano/pkg/numeral"
	"github.com/consensys/go-peano/pkg/queens"
	"github.com/consensys/go-peano/pkg/util"
	"github.com/consensys/go-peano/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// queensCmd represents the queens command
var queensCmd = &cobra.Command{
	Use:   "queens [flags] [n]",
	Short: "Enumerate every solution to the N-Queens problem.",
	Long: `Enumerate every placement of n queens on an n x n board such that no queen
	threatens another.  The board size defaults to 5.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg queensConfig
		//
		if len(args) > 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg.size = 5
		cfg.count = getFlag(cmd, "count")
		cfg.boards = getFlag(cmd, "boards")
		cfg.table = getFlag(cmd, "table")
		cfg.ansiEscapes = useAnsiEscapes(cmd)
		cfg.jobs = getUint(cmd, "jobs")
		cfg.verify = getFlag(cmd, "verify")
		//
		if len(args) == 1 {
			size, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				fmt.Printf("invalid board size \"%s\"\n", args[0])
				os.Exit(1)
			}
			//
			cfg.size = uint(size)
		}
		//
		stats := util.NewPerfStats()
		n := numeral.FromInt(int(cfg.size))
		solutions, err := queens.SolveParallel(context.Background(), n, cfg.jobs)
		//
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		stats.Log(fmt.Sprintf("Solving %d-queens", cfg.size))
		//
		if cfg.verify {
			if err := verifySolutions(n, solutions); err != nil {
				log.Error(err)
				os.Exit(1)
			}
		}
		//
		if err := printSolutions(os.Stdout, solutions, cfg); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

// queensConfig encapsulates the options for printing solutions.
type queensConfig struct {
	// Size of the board
	size uint
	// Print only the number of solutions
	count bool
	// Draw each solution as a chessboard
	boards bool
	// Print solutions as a table of columns
	table bool
	// Use ANSI escapes when drawing
	ansiEscapes bool
	// Number of goroutines used to expand each row of the search
	jobs uint
	// Check every solution independently before printing
	verify bool
}

func verifySolutions(n numeral.Numeral, solutions list.List[queens.Configuration]) error {
	stats := util.NewPerfStats()
	ok, err := queens.Verify(n, solutions)
	//
	if err != nil {
		return err
	} else if !ok.Holds() {
		return fmt.Errorf("invalid %s-queens solution found", n)
	}
	//
	stats.Log(fmt.Sprintf("Verifying %d solutions", solutions.Len()))
	//
	return nil
}

func printSolutions(w io.Writer, solutions list.List[queens.Configuration], cfg queensConfig) error {
	switch {
	case cfg.count:
		_, err := fmt.Fprintf(w, "%d solutions\n", solutions.Len())
		return err
	case cfg.table:
		return solutionTable(solutions, cfg).Print(w)
	case cfg.boards:
		return printBoards(w, solutions, cfg)
	default:
		_, err := fmt.Fprintln(w, display.String(solutions))
		return err
	}
}

// Draw each solution as a chessboard, with rows running down the page.
func printBoards(w io.Writer, solutions list.List[queens.Configuration], cfg queensConfig) error {
	style := display.QueenStyle
	//
	if cfg.ansiEscapes {
		style = style.Coloured(termio.TERM_RED)
	}
	//
	for config := range solutions.All() {
		board := display.NewBoard()
		board.Include(0, 0)
		board.Include(int(cfg.size)-1, int(cfg.size)-1)
		//
		for q := range config.All() {
			board.Set(numeral.ToInt(q.Y), numeral.ToInt(q.X))
		}
		//
		if err := board.Render(w, style); err != nil {
			return err
		} else if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	//
	return nil
}

// Construct a table with one line per solution, giving the column of the queen
// on each row.
func solutionTable(solutions list.List[queens.Configuration], cfg queensConfig) *termio.TablePrinter {
	tbl := termio.NewTablePrinter(1+cfg.size, 1+solutions.Len())
	tbl.AnsiEscapes(cfg.ansiEscapes)
	tbl.Set(0, 0, "#")
	//
	for i := uint(0); i < cfg.size; i++ {
		tbl.Set(1+i, 0, fmt.Sprintf("row %d", i))
		tbl.SetEscape(1+i, 0, termio.BoldAnsiEscape().FgColour(termio.TERM_WHITE))
	}
	//
	for i, config := range solutions.ToSlice() {
		row := uint(i + 1)
		tbl.Set(0, row, strconv.Itoa(i+1))
		//
		for q := range config.All() {
			tbl.Set(1+uint(numeral.ToInt(q.X)), row, q.Y.String())
		}
	}
	//
	return tbl
}

func init() {
	queensCmd.Flags().Bool("count", false, "print only the number of solutions")
	queensCmd.Flags().Bool("boards", false, "draw each solution as a chessboard")
	queensCmd.Flags().Bool("table", false, "print solutions as a table")
	queensCmd.Flags().Uint("jobs", 1, "number of goroutines used to expand each row of the search")
	queensCmd.Flags().Bool("verify", false, "check every solution independently before printing")
	queensCmd.Flags().Bool("ansi-escapes", false, "specify whether to use ANSI escapes (default: when a terminal)")
	rootCmd.AddCommand(queensCmd)
}
