/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package table prints aligned text tables, e.g. the function registry.
package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/rulego/bandmath/functions"
)

// Write prints rows under columns as a bordered table followed by the row
// count. Missing cells are left blank.
func Write(w io.Writer, columns []string, rows [][]string) {
	if len(columns) == 0 {
		fmt.Fprintln(w, "(0 rows)")
		return
	}

	// Calculate maximum width for each column
	colWidths := make([]int, len(columns))
	for i, col := range columns {
		colWidths[i] = len(col)
		for _, row := range rows {
			if i < len(row) && len(row[i]) > colWidths[i] {
				colWidths[i] = len(row[i])
			}
		}
		// Minimum width is 4
		if colWidths[i] < 4 {
			colWidths[i] = 4
		}
	}

	writeBorder(w, colWidths)
	writeRow(w, colWidths, columns)
	writeBorder(w, colWidths)
	for _, row := range rows {
		writeRow(w, colWidths, row)
	}
	writeBorder(w, colWidths)
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

// Functions prints name, signature, type and description of fns
func Functions(w io.Writer, fns []*functions.Function) {
	rows := make([][]string, 0, len(fns))
	for _, fn := range fns {
		rows = append(rows, []string{fn.Name(), fn.Signature(), string(fn.GetType()), fn.GetDescription()})
	}
	Write(w, []string{"name", "signature", "type", "description"}, rows)
}

func writeRow(w io.Writer, colWidths []int, cells []string) {
	var sb strings.Builder
	sb.WriteString("|")
	for i, width := range colWidths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		fmt.Fprintf(&sb, " %-*s |", width, cell)
	}
	fmt.Fprintln(w, sb.String())
}

func writeBorder(w io.Writer, colWidths []int) {
	var sb strings.Builder
	sb.WriteString("+")
	for _, width := range colWidths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	fmt.Fprintln(w, sb.String())
}
