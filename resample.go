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

// Resample a coverage array of arbitrary length L to exactly n values
// by averaging over blocks of source values. The k-th output value is
// the mean over the source positions [k*L/n, (k+1)*L/n), with integer
// division, so that the blocks partition the source array. NaN values
// do not contribute to the mean; blocks without any value are set to
// zero.
func Resample(values []float64, n int) []float64 {
  if n <= 0 {
    panic("Resample(): invalid target length!")
  }
  l := len(values)

  result := make([]float64, n)

  for k := 0; k < n; k++ {
    from := (k+0)*l/n
    to   := (k+1)*l/n
    sum  := 0.0
    m    := 0
    for i := from; i < to; i++ {
      if math.IsNaN(values[i]) {
        continue
      }
      sum += values[i]
      m   += 1
    }
    if m > 0 {
      result[k] = sum/float64(m)
    }
  }
  return result
}
