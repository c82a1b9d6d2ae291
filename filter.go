/* Copyright (C) 2020 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package metagene

/* -------------------------------------------------------------------------- */

import "math"

/* -------------------------------------------------------------------------- */

// Remove all values that are not finite, i.e. NaN and ±Inf. Returns the
// finite values in their original order and the number of values
// dropped.
func FilterFinite(values []float64) ([]float64, int) {
  result := []float64{}

  for i := 0; i < len(values); i++ {
    if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
      continue
    }
    result = append(result, values[i])
  }
  return result, len(values) - len(result)
}
