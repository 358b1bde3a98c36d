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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/cpu/microcode"
	"github.com/jetsetilly/mos6502/hardware/memory/memorymap"
	"github.com/jetsetilly/mos6502/test"
)

// address of the test programs. the reset vector points here
const origin = uint16(0x0200)

type access struct {
	address uint16
	data    uint8
}

type mockMem struct {
	internal [0x10000]uint8

	// every write made to memory, in order
	writes []access

	// total number of bus accesses
	accesses int
}

func newMockMem() *mockMem {
	return &mockMem{}
}

func (mem *mockMem) Read(address uint16) uint8 {
	mem.accesses++
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.accesses++
	mem.internal[address] = data
	mem.writes = append(mem.writes, access{address: address, data: data})
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) putVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if d := mem.internal[address]; d != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", d, value, address)
	}
}

// newCPU returns a CPU that has completed its reset sequence. the PC will
// be at origin
func newCPU(t *testing.T, policy cpu.IllegalPolicy) (*cpu.CPU, *mockMem) {
	t.Helper()

	mem := newMockMem()
	mem.putVector(memorymap.Reset, origin)

	prefs := cpu.NewPreferences()
	prefs.IllegalOpcodes = policy
	mc := cpu.NewCPU(mem, prefs)

	n, err := mc.ExecuteInstruction(nil)
	test.DemandSuccess(t, err)
	test.Equate(t, n, 7)
	test.Equate(t, mc.PC().Address(), origin)

	return mc, mem
}

// step executes one instruction and checks the result against the
// instruction definition
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()

	n, err := mc.ExecuteInstruction(nil)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatalf("%s: %v", mc.LastResult.String(), err)
	}
	return n
}

// stepWithTrace is like step but returns the bus accesses made
func stepWithTrace(t *testing.T, mc *cpu.CPU) []microcode.Step {
	t.Helper()

	var steps []microcode.Step
	n, err := mc.ExecuteInstruction(func(s microcode.Step) error {
		steps = append(steps, s)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatalf("%s: %v", mc.LastResult.String(), err)
	}
	test.Equate(t, len(steps), n)
	return steps
}

func TestReset(t *testing.T) {
	mem := newMockMem()
	mem.putVector(memorymap.Reset, 0x1234)
	mc := cpu.NewCPU(mem, cpu.NewPreferences())

	steps := stepWithTrace(t, mc)
	test.Equate(t, len(steps), 7)
	test.Equate(t, mc.LastResult.Reset, true)
	test.Equate(t, mc.PC().Address(), 0x1234)
	test.Equate(t, mc.SP().Value(), 0xfd)
	test.Equate(t, mc.Status().String(), "sv--dIzc")
	test.Equate(t, mc.Cycles(), 7)

	// the stack accesses are reads and nothing is written
	test.Equate(t, len(mem.writes), 0)
	for _, s := range steps[2:5] {
		test.Equate(t, s.Kind == microcode.DummyRead, true)
	}
	test.Equate(t, steps[2].Address, 0x0100)
	test.Equate(t, steps[4].Address, 0x01fe)

	// vector is read low byte first
	test.Equate(t, steps[5].Address, 0xfffc)
	test.Equate(t, steps[5].Data, 0x34)
	test.Equate(t, steps[6].Address, 0xfffd)
	test.Equate(t, steps[6].Data, 0x12)

	// a second reset keeps the accumulator and moves the stack pointer down
	// by another three
	mem.putInstructions(0x1234, 0xa9, 0x42)
	step(t, mc)
	mc.Reset()
	test.Equate(t, mc.AtBoundary(), false)
	n := step(t, mc)
	test.Equate(t, n, 7)
	test.Equate(t, mc.A().Value(), 0x42)
	test.Equate(t, mc.SP().Value(), 0xfa)
	test.Equate(t, mc.PC().Address(), 0x1234)
	test.Equate(t, mc.Cycles(), 16)
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	pc := mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.Equate(t, mc.Status().String(), "sv--dIzC")
	step(t, mc) // CLC
	test.Equate(t, mc.Status().String(), "sv--dIzc")
	step(t, mc) // CLI
	test.Equate(t, mc.Status().String(), "sv--dizc")
	step(t, mc) // SEI
	test.Equate(t, mc.Status().String(), "sv--dIzc")
	step(t, mc) // SED
	test.Equate(t, mc.Status().String(), "sv--DIzc")
	step(t, mc) // CLD
	test.Equate(t, mc.Status().String(), "sv--dIzc")
	step(t, mc) // CLV
	test.Equate(t, mc.Status().String(), "sv--dIzc")

	// PHP; PLP
	mem.putInstructions(pc, 0x08, 0x28)
	n := step(t, mc) // PHP
	test.Equate(t, n, 3)
	test.Equate(t, mc.SP().Value(), 0xfc)

	// break and unused bits are set in the pushed value
	mem.assert(t, 0x01fd, 0x34)

	// mangle the stacked value
	mem.internal[0x01fd] = 0xc3

	n = step(t, mc) // PLP
	test.Equate(t, n, 4)
	test.Equate(t, mc.SP().Value(), 0xfd)
	test.Equate(t, mc.Status().String(), "SV--diZC")
	test.Equate(t, mc.Status().Value(), 0xe3)
}

func TestLoadAndTransfer(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	// LDA #$00; LDA #$80; LDX #$ff; LDY #$01; TXA; TAY; INX; DEY
	mem.putInstructions(origin, 0xa9, 0x00, 0xa9, 0x80, 0xa2, 0xff, 0xa0, 0x01, 0x8a, 0xa8, 0xe8, 0x88)

	step(t, mc) // LDA #$00
	test.Equate(t, mc.A().Value(), 0x00)
	test.Equate(t, mc.Status().String(), "sv--dIZc")

	step(t, mc) // LDA #$80
	test.Equate(t, mc.A().Value(), 0x80)
	test.Equate(t, mc.Status().String(), "Sv--dIzc")

	step(t, mc) // LDX #$ff
	test.Equate(t, mc.X().Value(), 0xff)

	step(t, mc) // LDY #$01
	test.Equate(t, mc.Y().Value(), 0x01)
	test.Equate(t, mc.Status().String(), "sv--dIzc")

	step(t, mc) // TXA
	test.Equate(t, mc.A().Value(), 0xff)
	test.Equate(t, mc.Status().String(), "Sv--dIzc")

	step(t, mc) // TAY
	test.Equate(t, mc.Y().Value(), 0xff)

	step(t, mc) // INX
	test.Equate(t, mc.X().Value(), 0x00)
	test.Equate(t, mc.Status().String(), "sv--dIZc")

	step(t, mc) // DEY
	test.Equate(t, mc.Y().Value(), 0xfe)
	test.Equate(t, mc.Status().String(), "Sv--dIzc")
}

func TestArithmetic(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	// CLC; LDA #$7f; ADC #$01
	pc := mem.putInstructions(origin, 0x18, 0xa9, 0x7f, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A().Value(), 0x80)
	test.Equate(t, mc.Status().String(), "SV--dIzc")

	// SEC; LDA #$00; SBC #$01
	pc = mem.putInstructions(pc, 0x38, 0xa9, 0x00, 0xe9, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A().Value(), 0xff)
	test.Equate(t, mc.Status().String(), "Sv--dIzc")

	// SED; CLC; LDA #$58; ADC #$46
	pc = mem.putInstructions(pc, 0xf8, 0x18, 0xa9, 0x58, 0x69, 0x46)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A().Value(), 0x04)
	test.Equate(t, mc.Status().Carry, true)

	// SEC; LDA #$46; SBC #$12; CLD
	mem.putInstructions(pc, 0x38, 0xa9, 0x46, 0xe9, 0x12, 0xd8)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A().Value(), 0x34)
	test.Equate(t, mc.Status().Carry, true)
	step(t, mc)
	test.Equate(t, mc.Status().DecimalMode, false)
}

func TestCompareAndBit(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	// LDA #$40; CMP #$40; CMP #$41; CMP #$3f
	pc := mem.putInstructions(origin, 0xa9, 0x40, 0xc9, 0x40, 0xc9, 0x41, 0xc9, 0x3f)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.Status().String(), "sv--dIZC")
	step(t, mc)
	test.Equate(t, mc.Status().String(), "Sv--dIzc")
	step(t, mc)
	test.Equate(t, mc.Status().String(), "sv--dIzC")

	// accumulator is unchanged by compare
	test.Equate(t, mc.A().Value(), 0x40)

	// LDA #$01; BIT $10
	mem.internal[0x10] = 0xc0
	mem.putInstructions(pc, 0xa9, 0x01, 0x24, 0x10)
	step(t, mc)
	n := step(t, mc)
	test.Equate(t, n, 3)
	test.Equate(t, mc.Status().String(), "SV--dIZC")
}

func TestPageCross(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	mem.internal[0x00ff] = 0x11
	mem.internal[0x0100] = 0x77

	// LDX #$01; LDA $00ff,X
	pc := mem.putInstructions(origin, 0xa2, 0x01, 0xbd, 0xff, 0x00)
	step(t, mc)
	steps := stepWithTrace(t, mc)
	test.Equate(t, len(steps), 5)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.A().Value(), 0x77)

	// the first access is to the address before the high byte is fixed
	test.Equate(t, steps[3].Kind == microcode.DummyRead, true)
	test.Equate(t, steps[3].Address, 0x0000)
	test.Equate(t, steps[4].Kind == microcode.ReadOperand, true)
	test.Equate(t, steps[4].Address, 0x0100)

	// LDX #$00; LDA $00ff,X
	pc = mem.putInstructions(pc, 0xa2, 0x00, 0xbd, 0xff, 0x00)
	step(t, mc)
	n := step(t, mc)
	test.Equate(t, n, 4)
	test.Equate(t, mc.LastResult.PageFault, false)
	test.Equate(t, mc.A().Value(), 0x11)

	// stores always take the extra cycle
	// LDX #$00; STA $00ff,X
	mem.putInstructions(pc, 0xa2, 0x00, 0x9d, 0xff, 0x00)
	step(t, mc)
	n = step(t, mc)
	test.Equate(t, n, 5)
	test.Equate(t, mc.LastResult.PageFault, false)
	mem.assert(t, 0x00ff, 0x11)
}

func TestIndirectModes(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	// pointer for (zp,X)
	mem.internal[0x24] = 0x00
	mem.internal[0x25] = 0x30
	mem.internal[0x3000] = 0x99

	// pointer for (zp),Y
	mem.internal[0x40] = 0xf8
	mem.internal[0x41] = 0x30
	mem.internal[0x3108] = 0x42

	// LDX #$04; LDA ($20,X)
	pc := mem.putInstructions(origin, 0xa2, 0x04, 0xa1, 0x20)
	step(t, mc)
	n := step(t, mc)
	test.Equate(t, n, 6)
	test.Equate(t, mc.A().Value(), 0x99)

	// LDY #$10; LDA ($40),Y
	pc = mem.putInstructions(pc, 0xa0, 0x10, 0xb1, 0x40)
	step(t, mc)
	n = step(t, mc)
	test.Equate(t, n, 6)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.A().Value(), 0x42)

	// STA ($40),Y
	mem.putInstructions(pc, 0xa9, 0x5a, 0x91, 0x40)
	step(t, mc)
	n = step(t, mc)
	test.Equate(t, n, 6)
	mem.assert(t, 0x3108, 0x5a)
}

func TestReadModifyWrite(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	mem.internal[0x2000] = 0x41

	// INC $2000
	pc := mem.putInstructions(origin, 0xee, 0x00, 0x20)
	mem.writes = nil
	steps := stepWithTrace(t, mc)
	test.Equate(t, len(steps), 6)

	// the unmodified value is written before the modified value
	test.Equate(t, len(mem.writes), 2)
	test.Equate(t, mem.writes[0].address, 0x2000)
	test.Equate(t, mem.writes[0].data, 0x41)
	test.Equate(t, mem.writes[1].address, 0x2000)
	test.Equate(t, mem.writes[1].data, 0x42)

	kinds := []microcode.Kind{
		microcode.FetchOpcode,
		microcode.ReadOperand,
		microcode.ReadOperand,
		microcode.ReadOperand,
		microcode.DummyWrite,
		microcode.WriteOperand,
	}
	for i, k := range kinds {
		if steps[i].Kind != k {
			t.Errorf("cycle %d: %s (wanted %s)", i+1, steps[i].Kind, k)
		}
	}

	// LDX #$01; ASL $1fff,X
	mem.internal[0x2000] = 0x81
	mem.putInstructions(pc, 0xa2, 0x01, 0x1e, 0xff, 0x1f)
	step(t, mc)
	n := step(t, mc)
	test.Equate(t, n, 7)
	mem.assert(t, 0x2000, 0x02)
	test.Equate(t, mc.Status().Carry, true)
}

func TestStack(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	// LDX #$00; TXS; LDA #$99; PHA
	pc := mem.putInstructions(origin, 0xa2, 0x00, 0x9a, 0xa9, 0x99, 0x48)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.SP().Value(), 0x00)
	step(t, mc)
	n := step(t, mc)
	test.Equate(t, n, 3)

	// the stack pointer wraps within page one
	mem.assert(t, 0x0100, 0x99)
	test.Equate(t, mc.SP().Value(), 0xff)

	// LDA #$00; PLA
	mem.putInstructions(pc, 0xa9, 0x00, 0x68)
	step(t, mc)
	n = step(t, mc)
	test.Equate(t, n, 4)
	test.Equate(t, mc.A().Value(), 0x99)
	test.Equate(t, mc.SP().Value(), 0x00)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	// JSR $0300
	mem.putInstructions(origin, 0x20, 0x00, 0x03)

	// RTS
	mem.putInstructions(0x0300, 0x60)

	n := step(t, mc)
	test.Equate(t, n, 6)
	test.Equate(t, mc.PC().Address(), 0x0300)
	test.Equate(t, mc.SP().Value(), 0xfb)

	// return address is the last byte of the JSR instruction
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x02)

	n = step(t, mc)
	test.Equate(t, n, 6)
	test.Equate(t, mc.PC().Address(), 0x0203)
	test.Equate(t, mc.SP().Value(), 0xfd)
}

func TestJmp(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	// JMP $3000
	mem.putInstructions(origin, 0x4c, 0x00, 0x30)
	n := step(t, mc)
	test.Equate(t, n, 3)
	test.Equate(t, mc.PC().Address(), 0x3000)

	// JMP ($30ff). the high byte of the address is read from $3000 and not
	// from $3100
	mem.putInstructions(0x3000, 0x6c, 0xff, 0x30)
	mem.internal[0x30ff] = 0x34
	mem.internal[0x3100] = 0x56
	n = step(t, mc)
	test.Equate(t, n, 5)
	test.Equate(t, mc.PC().Address(), 0x6c34)
	test.Equate(t, mc.LastResult.CPUBug == execution.JmpIndirectAddressingBug, true)
}

func TestZeroPageIndexWrap(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	mem.internal[0x0008] = 0x5a
	mem.internal[0x0108] = 0xee

	// LDX #$10; LDA $f8,X
	mem.putInstructions(origin, 0xa2, 0x10, 0xb5, 0xf8)
	step(t, mc)
	n := step(t, mc)
	test.Equate(t, n, 4)
	test.Equate(t, mc.A().Value(), 0x5a)
	test.Equate(t, mc.LastResult.CPUBug == execution.ZeroPageIndexBug, true)
}

func TestBranches(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	// LDA #$01; BEQ +$10; BNE +$02
	mem.putInstructions(origin, 0xa9, 0x01, 0xf0, 0x10, 0xd0, 0x02)
	step(t, mc)

	n := step(t, mc)
	test.Equate(t, n, 2)
	test.Equate(t, mc.LastResult.BranchSuccess, false)
	test.Equate(t, mc.PC().Address(), 0x0204)

	n = step(t, mc)
	test.Equate(t, n, 3)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
	test.Equate(t, mc.LastResult.PageFault, false)
	test.Equate(t, mc.PC().Address(), 0x0208)

	// BNE -$10. crosses into page one
	mem.putInstructions(0x0208, 0xd0, 0xf0)
	n = step(t, mc)
	test.Equate(t, n, 4)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.PC().Address(), 0x01fa)
}

func TestBRKAndRTI(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)
	mem.putVector(memorymap.BRK, 0x0400)

	// BRK; padding byte
	mem.putInstructions(origin, 0x00, 0xea)

	// RTI
	mem.putInstructions(0x0400, 0x40)

	n := step(t, mc)
	test.Equate(t, n, 7)
	test.Equate(t, mc.PC().Address(), 0x0400)
	test.Equate(t, mc.LastResult.Interrupt == execution.NoInterrupt, true)
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x02)

	// break flag is set in the pushed status
	mem.assert(t, 0x01fb, 0x34)
	test.Equate(t, mc.SP().Value(), 0xfa)

	n = step(t, mc)
	test.Equate(t, n, 6)
	test.Equate(t, mc.PC().Address(), 0x0202)
	test.Equate(t, mc.SP().Value(), 0xfd)
	test.Equate(t, mc.Status().String(), "sv--dIzc")
}

func TestIRQ(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)
	mem.putVector(memorymap.IRQ, 0x0400)

	// NOP with interrupts disabled. the IRQ is not serviced
	pc := mem.putInstructions(origin, 0xea)
	mc.SetIRQ(true)
	n := step(t, mc)
	test.Equate(t, n, 2)
	test.Equate(t, mc.LastResult.Interrupt == execution.NoInterrupt, true)

	// CLI. the IRQ is serviced at the end of the instruction
	mem.putInstructions(pc, 0x58, 0xea)
	mem.writes = nil
	n = step(t, mc)
	test.Equate(t, n, 9)
	test.Equate(t, mc.LastResult.Cycles, 2)
	test.Equate(t, mc.LastResult.Interrupt == execution.IRQ, true)
	test.Equate(t, mc.LastResult.InterruptCycles, 7)
	test.Equate(t, mc.PC().Address(), 0x0400)
	test.Equate(t, mc.SP().Value(), 0xfa)
	test.Equate(t, mc.Status().InterruptDisable, true)

	// PCH, PCL then status with the break flag clear
	test.Equate(t, len(mem.writes), 3)
	test.Equate(t, mem.writes[0].address, 0x01fd)
	test.Equate(t, mem.writes[0].data, 0x02)
	test.Equate(t, mem.writes[1].address, 0x01fc)
	test.Equate(t, mem.writes[1].data, 0x02)
	test.Equate(t, mem.writes[2].address, 0x01fb)
	test.Equate(t, mem.writes[2].data, 0x20)

	// the line is still active but the interrupt disable flag is now set
	mem.putInstructions(0x0400, 0xea)
	n = step(t, mc)
	test.Equate(t, n, 2)
}

func TestNMI(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)
	mem.putVector(memorymap.NMI, 0x0500)
	mem.putVector(memorymap.IRQ, 0x0400)

	// NMI is serviced even with interrupts disabled and takes priority over
	// IRQ
	mem.putInstructions(origin, 0xea)
	mc.TriggerNMI()
	mc.SetIRQ(true)
	test.Equate(t, mc.NMIPending(), true)

	n := step(t, mc)
	test.Equate(t, n, 9)
	test.Equate(t, mc.LastResult.Interrupt == execution.NMI, true)
	test.Equate(t, mc.PC().Address(), 0x0500)
	test.Equate(t, mc.NMIPending(), false)
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x01)
	mem.assert(t, 0x01fb, 0x24)

	// the edge has been consumed
	mem.putInstructions(0x0500, 0xea)
	n = step(t, mc)
	test.Equate(t, n, 2)
	test.Equate(t, mc.LastResult.Interrupt == execution.NoInterrupt, true)
}

func TestStepCycle(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	// LDA #$42
	mem.putInstructions(origin, 0xa9, 0x42)

	s, err := mc.StepCycle()
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.Kind == microcode.FetchOpcode, true)
	test.Equate(t, s.Address, origin)
	test.Equate(t, s.Data, 0xa9)
	test.Equate(t, mc.AtBoundary(), false)

	s, err = mc.StepCycle()
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.Kind == microcode.ReadOperand, true)
	test.Equate(t, s.Address, 0x0201)
	test.Equate(t, s.Data, 0x42)
	test.Equate(t, mc.AtBoundary(), true)
	test.Equate(t, mc.A().Value(), 0x42)
	test.Equate(t, mc.LastResult.String(), "$0200  LDA #$42 [2]")
}

func TestCallbackError(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	// LDA $3000
	mem.putInstructions(origin, 0xad, 0x00, 0x30)
	mem.internal[0x3000] = 0x10

	stop := errors.New("stop")
	c := 0
	n, err := mc.ExecuteInstruction(func(_ microcode.Step) error {
		c++
		if c == 2 {
			return stop
		}
		return nil
	})
	test.Equate(t, n, 2)
	test.Equate(t, errors.Is(err, stop), true)
	test.Equate(t, mc.AtBoundary(), false)
	test.Equate(t, mc.LastResult.Final, false)

	err = mc.LoadPC(0x0300)
	test.Equate(t, curated.Is(err, cpu.MidInstruction), true)

	// execution continues from where it stopped
	n, err = mc.ExecuteInstruction(nil)
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 2)
	test.Equate(t, mc.A().Value(), 0x10)
	test.ExpectedSuccess(t, mc.LastResult.IsValid())

	test.ExpectedSuccess(t, mc.LoadPC(0x0300))
	test.Equate(t, mc.PC().Address(), 0x0300)
}

func TestIllegalTrap(t *testing.T) {
	mc, mem := newCPU(t, cpu.TrapIllegal)

	// LAX $10
	mem.putInstructions(origin, 0xa7, 0x10)

	n, err := mc.ExecuteInstruction(nil)
	test.Equate(t, n, 1)
	test.Equate(t, curated.Is(err, cpu.IllegalOpcode), true)
	test.Equate(t, mc.PC().Address(), origin)
	test.Equate(t, mc.A().Value(), 0x00)
	test.Equate(t, curated.Is(mc.Halted(), cpu.IllegalOpcode), true)

	// the CPU stays halted
	n, err = mc.ExecuteInstruction(nil)
	test.Equate(t, n, 0)
	test.Equate(t, curated.Is(err, cpu.IllegalOpcode), true)

	s, err := mc.StepCycle()
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.Kind == microcode.InternalCycle, true)
	test.Equate(t, mc.Cycles(), 9)

	// until it is reset
	mc.Reset()
	test.ExpectedSuccess(t, mc.Halted())
	n = step(t, mc)
	test.Equate(t, n, 7)
}

func TestIllegalEmulate(t *testing.T) {
	mc, mem := newCPU(t, cpu.EmulateIllegal)

	mem.internal[0x10] = 0x5a
	mem.internal[0x30] = 0x5b
	mem.internal[0x40] = 0x0f

	// LAX $10; SAX $20; DCP $30; ISC $40
	mem.putInstructions(origin, 0xa7, 0x10, 0x87, 0x20, 0xc7, 0x30, 0xe7, 0x40)

	n := step(t, mc)
	test.Equate(t, n, 3)
	test.Equate(t, mc.A().Value(), 0x5a)
	test.Equate(t, mc.X().Value(), 0x5a)

	n = step(t, mc)
	test.Equate(t, n, 3)
	mem.assert(t, 0x20, 0x5a)

	mem.writes = nil
	n = step(t, mc)
	test.Equate(t, n, 5)
	mem.assert(t, 0x30, 0x5a)
	test.Equate(t, len(mem.writes), 2)
	test.Equate(t, mem.writes[0].data, 0x5b)
	test.Equate(t, mc.Status().String(), "sv--dIZC")

	n = step(t, mc)
	test.Equate(t, n, 5)
	mem.assert(t, 0x40, 0x10)
	test.Equate(t, mc.A().Value(), 0x4a)
}

func TestJam(t *testing.T) {
	mc, mem := newCPU(t, cpu.EmulateIllegal)

	mem.putInstructions(origin, 0x02)

	n, err := mc.ExecuteInstruction(nil)
	test.Equate(t, n, 2)
	test.Equate(t, curated.Is(err, cpu.Jammed), true)
	test.Equate(t, mc.PC().Address(), origin)

	n, err = mc.ExecuteInstruction(nil)
	test.Equate(t, n, 0)
	test.Equate(t, curated.Is(err, cpu.Jammed), true)
}

// every opcode is executed with index registers that do and do not cause a
// page to be crossed. the number of cycles must match the instruction
// definition exactly and every cycle must access the bus exactly once
func TestTimingContract(t *testing.T) {
	for op := 0; op <= 0xff; op++ {
		defn := instructions.Lookup(uint8(op))
		if defn.Operator == instructions.Jam {
			continue
		}

		for _, idx := range []uint8{0x00, 0xff} {
			mc, mem := newCPU(t, cpu.EmulateIllegal)

			// LDX #idx; LDY #idx; opcode idx $00
			mem.putInstructions(origin, 0xa2, idx, 0xa0, idx, uint8(op), idx, 0x00)
			step(t, mc)
			step(t, mc)

			before := mem.accesses
			n := step(t, mc)
			test.Equate(t, n, mc.LastResult.Cycles+mc.LastResult.InterruptCycles)
			test.Equate(t, mem.accesses-before, n)
			test.Equate(t, mc.LastResult.Defn.OpCode, uint8(op))

			switch defn.AddressingMode {
			case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
				if defn.PageSensitive {
					test.Equate(t, mc.LastResult.PageFault, idx == 0xff)
				}
			}
		}
	}
}
