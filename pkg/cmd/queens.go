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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-smt/pkg/smt"
	"github.com/consensys/go-smt/pkg/smt/sat"
)

// queensCmd represents the queens command
var queensCmd = &cobra.Command{
	Use:   "queens [flags]",
	Short: "Decide the n-queens problem.",
	Long: `Build the n-queens placement constraints over bit-vector terms and
	decide them with the SAT back end.  A board of size n is satisfiable
	exactly when n != 2 and n != 3.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		size := GetUint(cmd, "size")
		//
		if size == 0 || size > 100 {
			fmt.Println("board size must lie between 1 and 100")
			os.Exit(1)
		}
		//
		solver := sat.NewWithLogic(smt.QF_BV)
		assertQueens(solver, size)
		//
		fmt.Println(solver.Check())
		//
		if GetFlag(cmd, "stats") {
			stats := solver.Stats()
			fmt.Printf("constants:     %d\n", stats.Constants)
			fmt.Printf("equalities:    %d\n", stats.Equalities)
			fmt.Printf("disequalities: %d\n", stats.Disequalities)
			fmt.Printf("inequalities:  %d\n", stats.Inequalities)
			fmt.Printf("binary ops:    %d\n", stats.BinaryOps)
			fmt.Printf("nary ops:      %d\n", stats.NaryOps)
		}
	},
}

// Assert one queen per row, all on distinct columns and distinct diagonals.
// Columns are u8 terms, hence the board size cap.
func assertQueens(solver smt.Solver, size uint) {
	queens := make([]smt.Term[smt.Bv[uint8]], size)
	//
	for i := range queens {
		queens[i] = smt.Any[smt.Bv[uint8]](fmt.Sprintf("q%d", i))
		mustAdd(solver, smt.Lt(queens[i], smt.Literal[smt.Bv[uint8]](uint8(size))))
	}
	//
	mustAdd(solver, smt.Distinct(queens...))
	//
	for i := 0; i < len(queens); i++ {
		for j := i + 1; j < len(queens); j++ {
			// Queens i and j share a diagonal when their column distance
			// equals their row distance.
			gap := smt.Literal[smt.Bv[uint8]](uint8(j - i))
			mustAdd(solver, smt.Ne(smt.Add(queens[i], gap), queens[j]))
			mustAdd(solver, smt.Ne(smt.Add(queens[j], gap), queens[i]))
		}
	}
}

func mustAdd(solver smt.Solver, condition smt.Term[smt.Bool]) {
	if err := solver.Add(condition); err != smt.OK {
		fmt.Printf("assertion failed: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(queensCmd)
	queensCmd.Flags().Uint("size", 8, "board size")
	queensCmd.Flags().Bool("stats", false, "report encoding statistics")
}
