// This file is part of Chippy8.
//
// Chippy8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chippy8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chippy8.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences holds the machine-level preferences: the quirk
// toggles that select between divergent historical interpreter behaviours
// and the nominal instruction rate.
//
// The quirks are real and ROM-dependent. A ROM written for one
// interpreter family may depend on the shift instructions reading Vy, on
// the index register being left alone by the register dump instructions,
// or on sprites clipping at the screen edge. Rather than guessing a
// canonical behaviour the toggles are exposed here, are changeable at
// runtime, and persist to the preferences file like any other setting.
package preferences

import (
	"fmt"

	"github.com/julienr/chippy8/curated"
	"github.com/julienr/chippy8/prefs"
	"github.com/julienr/chippy8/resources"
)

// InstRateDefault is the default instruction rate in instructions per
// second. A rate in the region of 500 to 1000 suits most ROMs.
const InstRateDefault = 700

// Preferences for the machine. Use NewPreferences() to initialise.
type Preferences struct {
	dsk *prefs.Disk

	// ShiftSourceY selects the older convention for the shift
	// instructions: the value shifted is read from Vy rather than from Vx.
	ShiftSourceY prefs.Bool

	// IndexOverflow causes the add-to-index instruction to set VF when
	// the index register is taken past the top of memory.
	IndexOverflow prefs.Bool

	// IndexIncrement selects the original convention for the register
	// dump and load instructions: the index register is advanced past the
	// block that was transferred.
	IndexIncrement prefs.Bool

	// SpriteClipping discards sprite pixels beyond the right and bottom
	// screen edges rather than wrapping them to the opposite side.
	SpriteClipping prefs.Bool

	// HighRes runs the machine with the large 128x64 framebuffer.
	HighRes prefs.Bool

	// InstRate is the nominal instruction rate in instructions per
	// second. Only consulted by hosts that pace the machine; stepping by
	// hand in the debugger ignores it.
	InstRate prefs.Int
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Add("machine.quirks.shiftsourcey", &p.ShiftSourceY)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("machine.quirks.indexoverflow", &p.IndexOverflow)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("machine.quirks.indexincrement", &p.IndexIncrement)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("machine.quirks.spriteclipping", &p.SpriteClipping)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("machine.hires", &p.HighRes)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("machine.instrate", &p.InstRate)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to the default values: modern shift
// and overflow behaviour, original index increment behaviour, wrapping
// sprites, the small framebuffer.
func (p *Preferences) SetDefaults() {
	p.ShiftSourceY.Set(false)
	p.IndexOverflow.Set(false)
	p.IndexIncrement.Set(true)
	p.SpriteClipping.Set(false)
	p.HighRes.Set(false)
	p.InstRate.Set(InstRateDefault)
}

// String returns the quirk profile in the form it is stored in transcript
// and regression database entries.
func (p *Preferences) String() string {
	return fmt.Sprintf("shiftsourcey=%s indexoverflow=%s indexincrement=%s spriteclipping=%s hires=%s",
		p.ShiftSourceY.String(), p.IndexOverflow.String(), p.IndexIncrement.String(),
		p.SpriteClipping.String(), p.HighRes.String())
}

// SetFromString applies a quirk profile in the format produced by
// String(). Unrecognised fields are an error.
func (p *Preferences) SetFromString(profile string) error {
	var shift, overflow, increment, clipping, hires string

	_, err := fmt.Sscanf(profile, "shiftsourcey=%s indexoverflow=%s indexincrement=%s spriteclipping=%s hires=%s",
		&shift, &overflow, &increment, &clipping, &hires)
	if err != nil {
		return curated.Errorf("preferences: %v", fmt.Sprintf("unrecognised quirk profile: %s", err))
	}

	if err := p.ShiftSourceY.Set(shift); err != nil {
		return err
	}
	if err := p.IndexOverflow.Set(overflow); err != nil {
		return err
	}
	if err := p.IndexIncrement.Set(increment); err != nil {
		return err
	}
	if err := p.SpriteClipping.Set(clipping); err != nil {
		return err
	}
	return p.HighRes.Set(hires)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
