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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-peano/pkg/display"
	"github.com/consensys/go-peano/pkg/life"
	"github.com/consensys/go-peano/pkg/list"
	"github.com/consensys/go-peano/pkg/numeral"
	"github.com/consensys/go-peano/pkg/util"
	"github.com/consensys/go-peano/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// lifeCmd represents the life command
var lifeCmd = &cobra.Command{
	Use:   "life [flags]",
	Short: "Run Conway's Game of Life from a seed pattern.",
	Long: `Run Conway's Game of Life for a number of generations, starting from either a
	built-in pattern or a pattern file.  Pattern files are YAML documents giving a
	name and a list of [x, y] cells.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg lifeConfig
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if getFlag(cmd, "list") {
			for _, p := range life.Patterns() {
				fmt.Printf("%s (%d cells)\n", p.Name, p.Cells.Len())
			}
			//
			return
		}
		//
		cfg.steps = getUint(cmd, "steps")
		cfg.text = getFlag(cmd, "text")
		cfg.ansiEscapes = useAnsiEscapes(cmd)
		//
		pattern, err := selectPattern(getString(cmd, "pattern"), getString(cmd, "file"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		stats := util.NewPerfStats()
		generations, err := life.Generations(pattern.Cells, numeral.FromInt(int(cfg.steps)))
		//
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		stats.Log(fmt.Sprintf("Running %s for %d generations", pattern.Name, cfg.steps))
		//
		if err := printGenerations(os.Stdout, generations, cfg); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

// lifeConfig encapsulates the options for running a game.
type lifeConfig struct {
	// Number of generations to compute
	steps uint
	// Print each generation as a list of cells, rather than drawing it
	text bool
	// Use ANSI escapes when drawing
	ansiEscapes bool
}

// Select the seed pattern, where a pattern file takes precedence over a named
// pattern.
func selectPattern(name string, filename string) (life.Pattern, error) {
	if filename != "" {
		p, err := life.ReadPatternFile(filename)
		if err != nil {
			return p, fmt.Errorf("reading %s: %w", filename, err)
		}
		//
		return p, nil
	} else if p, ok := life.LookupPattern(name); ok {
		return p, nil
	}
	//
	return life.Pattern{}, fmt.Errorf("unknown pattern \"%s\"", name)
}

func printGenerations(w io.Writer, generations list.List[list.List[life.Cell]], cfg lifeConfig) error {
	style := display.CellStyle
	//
	if cfg.ansiEscapes {
		style = style.Coloured(termio.TERM_GREEN)
	}
	//
	for i, cells := range generations.ToSlice() {
		banner := fmt.Sprintf("########### ITER %d ############", i+1)
		rule := strings.Repeat("#", len(banner))
		//
		if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", rule, banner, rule); err != nil {
			return err
		}
		//
		if cfg.text {
			if _, err := fmt.Fprintln(w, display.String(cells)); err != nil {
				return err
			}
			//
			continue
		}
		//
		if err := cellBoard(cells).Render(w, style); err != nil {
			return err
		}
	}
	//
	return nil
}

func cellBoard(cells list.List[life.Cell]) *display.Board {
	board := display.NewBoard()
	//
	for c := range cells.All() {
		board.Set(numeral.ToInt(c.X), numeral.ToInt(c.Y))
	}
	//
	return board
}

func init() {
	lifeCmd.Flags().String("pattern", "glider", "name of a built-in seed pattern")
	lifeCmd.Flags().String("file", "", "read the seed pattern from a YAML file")
	lifeCmd.Flags().Uint("steps", 5, "number of generations to run")
	lifeCmd.Flags().Bool("text", false, "print generations as lists of cells")
	lifeCmd.Flags().Bool("list", false, "list the built-in patterns")
	lifeCmd.Flags().Bool("ansi-escapes", false, "specify whether to use ANSI escapes (default: when a terminal)")
	rootCmd.AddCommand(lifeCmd)
}
