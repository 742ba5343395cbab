// This file is part of makeref.
//
// makeref is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// makeref is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with makeref.  If not, see <https://www.gnu.org/licenses/>.

package demo

import (
	"fmt"
	"time"

	"github.com/jetsetilly/makeref/curated"
	"github.com/jetsetilly/makeref/geometry"
	"github.com/jetsetilly/makeref/prefs"
)

// Preferences for the demonstration.
type Preferences struct {
	dsk *prefs.Disk

	// initial value of the makeRef setting
	MakeRef prefs.Bool

	// unit of the cubic pause used while generating the grid. zero for no
	// pause
	PauseUnit prefs.Duration

	// delay added to the start of every frame by the capture backend
	Latency prefs.Duration
}

func (p *Preferences) String() string {
	return fmt.Sprintf("makeref=%v pause=%v latency=%v", p.MakeRef.Get(), p.PauseUnit.Get(), p.Latency.Get())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are read from the file at path. A missing file
// is not an error.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("demo.makeref", &p.MakeRef)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("demo.pause", &p.PauseUnit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("demo.latency", &p.Latency)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.MakeRef.Set(true)
	p.PauseUnit.Set(time.Nanosecond)
	p.Latency.Set(time.Duration(0))
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Pause returns the generator pause implied by the PauseUnit setting.
func (p *Preferences) Pause() geometry.Pause {
	return geometry.CubicPause(p.PauseUnit.Get().(time.Duration))
}
