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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/mos6502/test"
	"github.com/jetsetilly/mos6502/wavwriter"
)

func TestWrite(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(filename, 22050)
	test.DemandSuccess(t, err)

	for i := 0; i < 100; i++ {
		if i%2 == 0 {
			aw.AddSample(0x40)
		} else {
			aw.AddSample(0xc0)
		}
	}
	test.Equate(t, aw.Len(), 100)

	err = aw.EndMixing()
	test.DemandSuccess(t, err)

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.Equate(t, dec.IsValidFile(), true)
	test.Equate(t, int(dec.SampleRate), 22050)
	test.Equate(t, int(dec.NumChans), 1)
	test.Equate(t, int(dec.BitDepth), 8)
}

func TestBadSampleRate(t *testing.T) {
	_, err := wavwriter.New("out.wav", 0)
	test.ExpectedFailure(t, err)
}

func TestBadFilename(t *testing.T) {
	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "missing", "out.wav"), 22050)
	test.DemandSuccess(t, err)
	test.ExpectedFailure(t, aw.EndMixing())
}
