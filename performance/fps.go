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

package performance

import "time"

// CalcFPS takes the number of frames and the duration and returns the
// frames-per-second and the accuracy of that value as a percentage of the
// target rate. Accuracy is zero if the target is not positive.
func CalcFPS(numFrames uint64, duration time.Duration, target float64) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration.Seconds()
	if target > 0 {
		accuracy = 100 * fps / target
	}
	return fps, accuracy
}
