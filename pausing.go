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

import "github.com/pbenner/threadpool"

import "gonum.org/v1/gonum/stat"

/* -------------------------------------------------------------------------- */

// Compute the pausing ratio of a single oriented coverage array, i.e.
// the mean coverage of the promoter window [0, promoterWidth) divided
// by the mean coverage of the gene body window [promoterWidth,
// promoterWidth + floor(bodyFraction*L)). The windows do not overlap.
// If the gene is too short to accommodate both windows a
// WindowOutOfRangeError is returned. A zero-mean body window yields
// ±Inf or NaN, which is returned as a value, not an error.
func pausingRatio(values []float64, promoterWidth int, bodyFraction float64) (float64, error) {
  l := len(values)
  d := int(bodyFraction*float64(l))

  if promoterWidth > l {
    return math.NaN(), WindowOutOfRangeError{l, 0, promoterWidth}
  }
  if d == 0 || promoterWidth+d > l {
    return math.NaN(), WindowOutOfRangeError{l, promoterWidth, promoterWidth+d}
  }
  p := stat.Mean(values[0:promoterWidth], nil)
  b := stat.Mean(values[promoterWidth:promoterWidth+d], nil)

  return p/b, nil
}

/* -------------------------------------------------------------------------- */

// Compute the pausing index of a single gene, i.e. the pausing ratio
// averaged over replicate tracks. The coverage of each track is
// extracted and oriented in transcriptional direction, so that the
// promoter window always starts at the transcription start site.
// Degenerate ratios (±Inf, NaN) propagate into the result and must be
// filtered by the caller, e.g. with FilterFinite.
func PausingIndex(gene GRangesRow, tracks []Track, promoterWidth int, bodyFraction float64) (float64, error) {
  if len(tracks) == 0 {
    panic("PausingIndex(): no tracks given!")
  }
  if promoterWidth <= 0 {
    panic("PausingIndex(): invalid promoter width!")
  }
  if bodyFraction <= 0.0 || bodyFraction > 1.0 {
    panic("PausingIndex(): invalid body fraction!")
  }
  sum := 0.0

  for i := 0; i < len(tracks); i++ {
    values, err := tracks[i].Slice(gene)
    if err != nil {
      return math.NaN(), err
    }
    r, err := pausingRatio(Orient(values, gene.Strand), promoterWidth, bodyFraction)
    if err != nil {
      return math.NaN(), err
    }
    sum += r
  }
  return sum/float64(len(tracks)), nil
}

/* -------------------------------------------------------------------------- */

// Compute pausing indices for a set of genes on a worker pool with the
// given number of threads. The i-th index corresponds to the i-th gene.
// The computation stops at the first gene that fails, returning a
// GeneError.
func PausingIndices(genes Genes, tracks []Track, promoterWidth int, bodyFraction float64, threads int) ([]float64, error) {
  indices := make([]float64, genes.Length())

  if threads < 1 {
    threads = 1
  }
  pool := threadpool.New(threads, 100*threads)
  jg   := pool.NewJobGroup()

  if err := pool.AddRangeJob(0, genes.Length(), jg, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if erf() != nil {
      // another gene already failed
      return nil
    }
    index, err := PausingIndex(genes.Row(i), tracks, promoterWidth, bodyFraction)
    if err != nil {
      return GeneError{genes.Names[i], err}
    }
    indices[i] = index
    return nil
  }); err != nil {
    return nil, err
  }
  if err := pool.Wait(jg); err != nil {
    return nil, err
  }
  return indices, nil
}

// Same as PausingIndices, except that genes that fail are dropped
// instead of aborting the computation. Returns the subset of genes that
// were processed, their pausing indices, and one GeneError per dropped
// gene. Note that degenerate indices (±Inf, NaN) are values and do not
// cause a gene to be dropped.
func PausingIndicesSkipErrors(genes Genes, tracks []Track, promoterWidth int, bodyFraction float64, threads int) (Genes, []float64, []GeneError) {
  indices  := make([]float64, genes.Length())
  failures := make([]error,   genes.Length())

  if threads < 1 {
    threads = 1
  }
  pool := threadpool.New(threads, 100*threads)
  jg   := pool.NewJobGroup()

  pool.AddRangeJob(0, genes.Length(), jg, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if index, err := PausingIndex(genes.Row(i), tracks, promoterWidth, bodyFraction); err != nil {
      failures[i] = err
    } else {
      indices[i] = index
    }
    return nil
  })
  pool.Wait(jg)

  idx        := []int{}
  result     := []float64{}
  geneErrors := []GeneError{}

  for i := 0; i < genes.Length(); i++ {
    if failures[i] != nil {
      geneErrors = append(geneErrors, GeneError{genes.Names[i], failures[i]})
    } else {
      idx    = append(idx,    i)
      result = append(result, indices[i])
    }
  }
  return genes.Subset(idx), result, geneErrors
}
