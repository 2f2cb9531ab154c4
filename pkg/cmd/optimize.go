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
	"os"

	"github.com/consensys/go-zirc/pkg/util/field"
	"github.com/consensys/go-zirc/pkg/util/field/bls12_377"
	"github.com/consensys/go-zirc/pkg/util/field/bn254"
	"github.com/consensys/go-zirc/pkg/zir"
	"github.com/consensys/go-zirc/pkg/zir/opt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [flags] program.json",
	Short: "minimise the range reductions of a given program.",
	Long: `Resolve the bound metadata of every unsigned integer expression in the
given program, marking the (hopefully few) points at which a range reduction
must be inserted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runFieldAgnosticCmd(cmd, args, optimizeCmds)
	},
}

// Available instances
var optimizeCmds = []FieldAgnosticCmd{
	{field.BN254, runOptimizeCmd[bn254.Element]},
	{field.BLS12_377, runOptimizeCmd[bls12_377.Element]},
}

func runOptimizeCmd[F field.Element[F]](cmd *cobra.Command, args []string) {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	var (
		output  = GetString(cmd, "out")
		program = readProgramFile(args[0])
	)
	//
	program = opt.Optimize[F](program)
	// Write back as JSON when requested, otherwise pretty-print.
	if output != "" {
		bytes, err := zir.ProgramToJsonBytes(&program)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		writeOutput(output, bytes)
	} else {
		fmt.Print(program.Format(termWidth()))
	}
}

// termWidth determines the width of the enclosing terminal, falling back to a
// sensible default when stdout is not a terminal.
func termWidth() uint {
	if term.IsTerminal(0) {
		if width, _, err := term.GetSize(0); err == nil {
			return uint(width)
		}
	}
	//
	return 130
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
	optimizeCmd.Flags().StringP("out", "o", "", "write optimised program (JSON) to given file")
}
