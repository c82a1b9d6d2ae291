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

// Average coverage over replicates. The i-th value of the result is the
// mean over the i-th values of the arguments, rounded up to the nearest
// integer. All arrays must have the same length, otherwise a
// ShapeMismatchError is returned. NaN and ±Inf values propagate into the
// result.
func Combine(values ...[]float64) ([]float64, error) {
  if len(values) == 0 {
    panic("Combine(): no coverage data given!")
  }
  n := len(values[0])
  for i := 1; i < len(values); i++ {
    if len(values[i]) != n {
      return nil, ShapeMismatchError{n, len(values[i])}
    }
  }
  k      := float64(len(values))
  result := make([]float64, n)

  for j := 0; j < n; j++ {
    sum := 0.0
    for i := 0; i < len(values); i++ {
      sum += values[i][j]
    }
    result[j] = math.Ceil(sum/k)
  }
  return result, nil
}
