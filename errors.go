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

import "fmt"

/* -------------------------------------------------------------------------- */

// Replicate coverage arrays extracted for the same gene differ in
// length. This is always a data error and never coerced by padding
// or truncation.
type ShapeMismatchError struct {
  N1, N2 int
}

func (err ShapeMismatchError) Error() string {
  return fmt.Sprintf("coverage arrays have mismatching lengths `%d' and `%d'", err.N1, err.N2)
}

/* -------------------------------------------------------------------------- */

// A track does not carry the chromosome a gene is located on.
type MissingChromosomeError struct {
  Seqname string
}

func (err MissingChromosomeError) Error() string {
  return fmt.Sprintf("sequence `%s' not found", err.Seqname)
}

/* -------------------------------------------------------------------------- */

// The promoter or gene body window does not fit into the gene.
type WindowOutOfRangeError struct {
  Length   int
  From, To int
}

func (err WindowOutOfRangeError) Error() string {
  return fmt.Sprintf("window [%d, %d) out of range for gene of length `%d'", err.From, err.To, err.Length)
}

/* -------------------------------------------------------------------------- */

// GeneError attaches the name of a gene to the error that aborted
// its computation. Batch operations report failures as GeneErrors.
type GeneError struct {
  Name string
  Err  error
}

func (err GeneError) Error() string {
  return fmt.Sprintf("gene `%s': %v", err.Name, err.Err)
}

func (err GeneError) Unwrap() error {
  return err.Err
}
