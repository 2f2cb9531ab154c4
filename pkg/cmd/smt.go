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

	"github.com/consensys/go-zirc/pkg/cir"
	"github.com/consensys/go-zirc/pkg/cir/smt"
	"github.com/consensys/go-zirc/pkg/util/field"
	"github.com/consensys/go-zirc/pkg/util/field/bls12_377"
	"github.com/consensys/go-zirc/pkg/util/field/bn254"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var smtCmd = &cobra.Command{
	Use:   "smt [flags] circuit.json",
	Short: "export a flattened circuit as an SMT-LIB2 problem.",
	Long: `Translate a flattened circuit into an SMT-LIB2 problem over the integers,
suitable for checking satisfiability with an off-the-shelf solver.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runFieldAgnosticCmd(cmd, args, smtCmds)
	},
}

// Available instances
var smtCmds = []FieldAgnosticCmd{
	{field.BN254, runSmtCmd[bn254.Element]},
	{field.BLS12_377, runSmtCmd[bls12_377.Element]},
}

func runSmtCmd[F field.Element[F]](cmd *cobra.Command, args []string) {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	bytes, err := os.ReadFile(args[0])
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	prog, err := cir.ProgFromJsonBytes[F](bytes)
	//
	if err != nil {
		fmt.Printf("%s: %v\n", args[0], err)
		os.Exit(2)
	}
	//
	if _, err := smt.NewWriter(&prog).WriteTo(os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(smtCmd)
}
