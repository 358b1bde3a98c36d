// This file is part of mos6502.
//
// mos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502.  If not, see <https://www.gnu.org/licenses/>.

// instructions_gen creates the table of instruction definitions from the CSV
// file. It is run with "go generate" from the instructions package directory.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

const definitionsCSVFile = "./generator/instructions.csv"
const generatedGoFile = "./table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// table of instruction definitions for the NMOS 6502, indexed by opcode\n" +
	"var table = [256]Definition{"

const trailingBoilerPlate = "}\n"

var modes = map[string]instructions.AddressingMode{
	"IMPLIED":             instructions.Implied,
	"ACCUMULATOR":         instructions.Accumulator,
	"IMMEDIATE":           instructions.Immediate,
	"RELATIVE":            instructions.Relative,
	"ABSOLUTE":            instructions.Absolute,
	"ZERO_PAGE":           instructions.ZeroPage,
	"INDIRECT":            instructions.Indirect,
	"PRE_INDEX_INDIRECT":  instructions.IndexedIndirect,
	"POST_INDEX_INDIRECT": instructions.IndirectIndexed,
	"ABSOLUTE_INDEXED_X":  instructions.AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  instructions.AbsoluteIndexedY,
	"INDEXED_ZERO_PAGE_X": instructions.ZeroPageIndexedX,
	"INDEXED_ZERO_PAGE_Y": instructions.ZeroPageIndexedY,
}

var effects = map[string]instructions.EffectCategory{
	"READ":        instructions.Read,
	"WRITE":       instructions.Write,
	"RMW":         instructions.RMW,
	"FLOW":        instructions.Flow,
	"SUB-ROUTINE": instructions.Subroutine,
	"INTERRUPT":   instructions.Interrupt,
}

// operator constants are the mnemonic with only the first letter in upper case
func operatorName(o instructions.Operator) string {
	m := o.String()
	return m[:1] + strings.ToLower(m[1:])
}

func parseCSV() (string, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// the effect and undocumented fields are optional
	csvr.FieldsPerRecord = -1

	var deftable [256]*instructions.Definition

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		if len(rec) < 5 || len(rec) > 7 {
			return "", fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(n)

		if deftable[defn.OpCode] != nil {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		// field: mnemonic
		var ok bool
		defn.Operator, ok = instructions.OperatorFromMnemonic(strings.ToUpper(rec[1]))
		if !ok {
			return "", fmt.Errorf("unknown mnemonic for %#02x (%s) [line %d]", defn.OpCode, rec[1], line)
		}

		// field: cycle count
		defn.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", defn.OpCode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		defn.AddressingMode, ok = modes[strings.ToUpper(rec[3])]
		if !ok {
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", defn.OpCode, rec[3], line)
		}
		defn.Bytes = defn.AddressingMode.Bytes()

		// field: page sensitive
		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			defn.PageSensitive = true
		case "FALSE":
			defn.PageSensitive = false
		default:
			return "", fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", defn.OpCode, rec[4], line)
		}

		// field: effect category
		defn.Effect = instructions.Read
		if len(rec) > 5 {
			defn.Effect, ok = effects[strings.ToUpper(rec[5])]
			if !ok {
				return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", defn.OpCode, rec[5], line)
			}
		}

		// field: undocumented
		if len(rec) > 6 {
			if strings.ToUpper(rec[6]) != "UNDOCUMENTED" {
				return "", fmt.Errorf("unknown flag for %#02x (%s) [line %d]", defn.OpCode, rec[6], line)
			}
			defn.Undocumented = true
		}

		deftable[defn.OpCode] = &defn
	}

	s := strings.Builder{}
	for opcode, defn := range deftable {
		if defn == nil {
			return "", fmt.Errorf("missing definition for opcode %#02x", opcode)
		}
		s.WriteString(fmt.Sprintf("\n{OpCode: 0x%02x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %v, Effect: %s, Undocumented: %v},",
			defn.OpCode, operatorName(defn.Operator), defn.Bytes, defn.Cycles, defn.AddressingMode,
			defn.PageSensitive, defn.Effect, defn.Undocumented))
	}

	return s.String(), nil
}

func main() {
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output = fmt.Sprintf("%s%s%s", leadingBoilerPlate, output, trailingBoilerPlate)

	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, formattedOutput, 0644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
