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

package bus

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/logger"
)

// OpenBusValue is the value returned by a read of an unmapped address.
const OpenBusValue = uint8(0xff)

// Sentinal error patterns returned by Controller.Register().
const (
	RangeOverlap = "bus: %s (%#04x to %#04x) overlaps %s (%#04x to %#04x)"
	InvalidRange = "bus: invalid range for %s (%#04x to %#04x)"
	NilDevice    = "bus: nil device for range (%#04x to %#04x)"
	Uncomparable = "bus: %s is a ticker or interrupt source of uncomparable type %T"
)

// Mapping is a single registration. The range is inclusive at both ends.
type Mapping struct {
	Origin uint16
	Memtop uint16
	Device Device
	Label  string
}

func (m Mapping) String() string {
	return fmt.Sprintf("%#04x -> %#04x %s", m.Origin, m.Memtop, m.Label)
}

func (m Mapping) contains(address uint16) bool {
	return address >= m.Origin && address <= m.Memtop
}

// Controller routes CPU accesses to registered devices. The zero value is not
// usable, use NewController().
type Controller struct {
	// ordered by origin. ranges never overlap so ordering by origin also
	// orders by memtop
	mappings []Mapping

	// the most recently used mapping. accesses tend to cluster so this saves
	// searching the list for most accesses
	last int

	tickers []Ticker
	sources []InterruptSource

	diagnostic func(Diagnostic)
	strays     int
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{
		last: -1,
	}
}

// Register attaches a device to an inclusive address range. The label is
// used for logging and for the String() function. If the label is empty the
// type of the device is used.
//
// A range that overlaps an existing registration causes a RangeOverlap error.
// The existing mappings are unchanged in that case.
//
// A device implementing Ticker or InterruptSource must be of a comparable
// type, normally a pointer, so that a device registered for more than one
// range is recognised. Otherwise an Uncomparable error is returned.
func (bus *Controller) Register(origin uint16, memtop uint16, dev Device, label string) error {
	if dev == nil {
		return curated.Errorf(NilDevice, origin, memtop)
	}

	if label == "" {
		label = fmt.Sprintf("%T", dev)
	}

	if origin > memtop {
		return curated.Errorf(InvalidRange, label, origin, memtop)
	}

	_, isTicker := dev.(Ticker)
	_, isSource := dev.(InterruptSource)
	if (isTicker || isSource) && !reflect.TypeOf(dev).Comparable() {
		return curated.Errorf(Uncomparable, label, dev)
	}

	for _, m := range bus.mappings {
		if origin <= m.Memtop && memtop >= m.Origin {
			return curated.Errorf(RangeOverlap, label, origin, memtop, m.Label, m.Origin, m.Memtop)
		}
	}

	i := sort.Search(len(bus.mappings), func(i int) bool {
		return bus.mappings[i].Origin > origin
	})
	bus.mappings = append(bus.mappings, Mapping{})
	copy(bus.mappings[i+1:], bus.mappings[i:])
	bus.mappings[i] = Mapping{
		Origin: origin,
		Memtop: memtop,
		Device: dev,
		Label:  label,
	}
	bus.last = -1

	// a device registered for more than one range is only ticked and
	// sampled once
	if t, ok := dev.(Ticker); ok && !bus.hasTicker(t) {
		bus.tickers = append(bus.tickers, t)
	}
	if s, ok := dev.(InterruptSource); ok && !bus.hasSource(s) {
		bus.sources = append(bus.sources, s)
	}

	logger.Logf(logger.Allow, "bus", "registered %s", bus.mappings[i])

	return nil
}

func sameDevice(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a == b
}

func (bus *Controller) hasTicker(t Ticker) bool {
	for _, e := range bus.tickers {
		if sameDevice(e, t) {
			return true
		}
	}
	return false
}

func (bus *Controller) hasSource(s InterruptSource) bool {
	for _, e := range bus.sources {
		if sameDevice(e, s) {
			return true
		}
	}
	return false
}

// Mappings returns a copy of the current registrations in address order.
func (bus *Controller) Mappings() []Mapping {
	m := make([]Mapping, len(bus.mappings))
	copy(m, bus.mappings)
	return m
}

// OnDiagnostic sets the function to be called for every open bus access. A
// nil function removes any previously set function.
func (bus *Controller) OnDiagnostic(f func(Diagnostic)) {
	bus.diagnostic = f
}

// Strays returns the number of open bus accesses since the controller was
// created.
func (bus *Controller) Strays() int {
	return bus.strays
}

func (bus *Controller) find(address uint16) (Mapping, bool) {
	if bus.last >= 0 && bus.mappings[bus.last].contains(address) {
		return bus.mappings[bus.last], true
	}

	i := sort.Search(len(bus.mappings), func(i int) bool {
		return bus.mappings[i].Memtop >= address
	})
	if i < len(bus.mappings) && bus.mappings[i].contains(address) {
		bus.last = i
		return bus.mappings[i], true
	}

	return Mapping{}, false
}

func (bus *Controller) stray(d Diagnostic) {
	bus.strays++
	logger.Log(logger.Allow, "bus", d)
	if bus.diagnostic != nil {
		bus.diagnostic(d)
	}
}

// Read implements the Memory interface.
func (bus *Controller) Read(address uint16) uint8 {
	if m, ok := bus.find(address); ok {
		return m.Device.Read(address)
	}
	bus.stray(Diagnostic{Kind: OpenBusRead, Address: address, Data: OpenBusValue})
	return OpenBusValue
}

// Write implements the Memory interface.
func (bus *Controller) Write(address uint16, data uint8) {
	if m, ok := bus.find(address); ok {
		m.Device.Write(address, data)
		return
	}
	bus.stray(Diagnostic{Kind: OpenBusWrite, Address: address, Data: data})
}

// Peek returns the value at the address without side effects. An unmapped
// address returns OpenBusValue but no diagnostic is emitted.
func (bus *Controller) Peek(address uint16) uint8 {
	m, ok := bus.find(address)
	if !ok {
		return OpenBusValue
	}
	if p, ok := m.Device.(Peeker); ok {
		return p.Peek(address)
	}
	return m.Device.Read(address)
}

// Poke alters the value at the address. Devices implementing the Poker
// interface will have their Poke() function called, otherwise the value is
// written with Write(). Returns false if the address is unmapped.
func (bus *Controller) Poke(address uint16, data uint8) bool {
	m, ok := bus.find(address)
	if !ok {
		return false
	}
	if p, ok := m.Device.(Poker); ok {
		p.Poke(address, data)
	} else {
		m.Device.Write(address, data)
	}
	return true
}

// Tick advances every registered device that implements the Ticker
// interface.
func (bus *Controller) Tick() {
	for _, t := range bus.tickers {
		t.Tick()
	}
}

// IRQ returns true if any registered device is asserting the IRQ line.
func (bus *Controller) IRQ() bool {
	for _, s := range bus.sources {
		if s.IRQ() {
			return true
		}
	}
	return false
}

// NMI returns true if any registered device is asserting the NMI line.
func (bus *Controller) NMI() bool {
	for _, s := range bus.sources {
		if s.NMI() {
			return true
		}
	}
	return false
}

func (bus *Controller) String() string {
	s := strings.Builder{}
	for _, m := range bus.mappings {
		s.WriteString(m.String())
		s.WriteString("\n")
	}
	return s.String()
}
