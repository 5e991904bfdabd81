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

	"github.com/spf13/cobra"

	"github.com/consensys/go-smt/pkg/smt"
)

// logicsCmd represents the logics command
var logicsCmd = &cobra.Command{
	Use:   "logics",
	Short: "List the known SMT-LIB logics.",
	Long: `List the acronyms of every SMT-LIB logic which can be given as a
	hint when constructing a solver.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, logic := range smt.Logics() {
			fmt.Println(logic)
		}
	},
}

func init() {
	rootCmd.AddCommand(logicsCmd)
}
