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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is remembered and can be tested for with the Is() and Has()
// functions. Is() checks the outermost error only while Has() checks the
// entire chain:
//
//	e := curated.Errorf("engine: %v", curated.Errorf(NoBackend))
//
//	curated.Is(e, "engine: %v")   // true
//	curated.Is(e, NoBackend)      // false
//	curated.Has(e, NoBackend)     // true
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented, in the package that returns them.
//
// The Error() function normalises the message so that adjacent duplicate
// parts of the chain are removed. Parts are separated by the sub-string ": ".
// This means that callers can wrap errors with their package prefix without
// worrying whether the prefix has already been added. For example:
//
//	engine: engine: backend not initialised
//
// is printed as:
//
//	engine: backend not initialised
package curated
