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
	"path"

	"github.com/consensys/go-zirc/pkg/zir"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a circuit program file based on the extension of the filename.
func readProgramFile(filename string) zir.Program {
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		// Check file extension
		ext := path.Ext(filename)
		//
		switch ext {
		case ".json":
			program, err := zir.ProgramFromJsonBytes(bytes)
			if err == nil {
				return program
			}
			//
			fmt.Printf("%s: %v\n", filename, err)
			os.Exit(2)
		default:
			err = fmt.Errorf("unknown program file format: %s", ext)
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return zir.Program{}
}

// Write generated output to the given file, or stdout when no file is given.
func writeOutput(filename string, bytes []byte) {
	if filename == "" {
		fmt.Println(string(bytes))
		//
		return
	}
	//
	if err := os.WriteFile(filename, bytes, 0o644); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}
