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

// Return the coverage of a gene in transcriptional direction, i.e. the
// first value of the result corresponds to the transcription start
// site. Coverage of genes on the minus strand is reversed. The result
// is always a newly allocated copy; the argument is never modified.
func Orient(values []float64, strand byte) []float64 {
  if strand == '-' {
    return reverseFloat64(values)
  }
  result := make([]float64, len(values))
  copy(result, values)

  return result
}
