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

// Compute a fixed-length coverage profile for a single gene. The
// coverage of the gene is extracted from every track, oriented in
// transcriptional direction, averaged over tracks, and resampled to n
// values. Genes reaching beyond the end of a chromosome are truncated.
func MetageneProfile(gene GRangesRow, tracks []Track, n int) ([]float64, error) {
  coverage := make([][]float64, len(tracks))

  for i := 0; i < len(tracks); i++ {
    values, err := tracks[i].Slice(gene)
    if err != nil {
      return nil, err
    }
    coverage[i] = Orient(values, gene.Strand)
  }
  combined, err := Combine(coverage...)
  if err != nil {
    return nil, err
  }
  return Resample(combined, n), nil
}

/* -------------------------------------------------------------------------- */

// Compute fixed-length coverage profiles for a set of genes on a worker
// pool with the given number of threads. The i-th profile corresponds
// to the i-th gene. The computation stops at the first gene that fails,
// returning a GeneError; jobs that are already queued drain without
// doing any work.
func MetageneMatrix(genes Genes, tracks []Track, n, threads int) ([][]float64, error) {
  profiles := make([][]float64, genes.Length())

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
    profile, err := MetageneProfile(genes.Row(i), tracks, n)
    if err != nil {
      return GeneError{genes.Names[i], err}
    }
    profiles[i] = profile
    return nil
  }); err != nil {
    return nil, err
  }
  if err := pool.Wait(jg); err != nil {
    return nil, err
  }
  return profiles, nil
}

// Same as MetageneMatrix, except that genes that fail are dropped
// instead of aborting the computation. Returns the subset of genes that
// were processed, their profiles, and one GeneError per dropped gene.
func MetageneMatrixSkipErrors(genes Genes, tracks []Track, n, threads int) (Genes, [][]float64, []GeneError) {
  profiles := make([][]float64, genes.Length())
  failures := make([]error,     genes.Length())

  if threads < 1 {
    threads = 1
  }
  pool := threadpool.New(threads, 100*threads)
  jg   := pool.NewJobGroup()

  pool.AddRangeJob(0, genes.Length(), jg, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if profile, err := MetageneProfile(genes.Row(i), tracks, n); err != nil {
      failures[i] = err
    } else {
      profiles[i] = profile
    }
    return nil
  })
  pool.Wait(jg)

  idx        := []int{}
  result     := [][]float64{}
  geneErrors := []GeneError{}

  for i := 0; i < genes.Length(); i++ {
    if failures[i] != nil {
      geneErrors = append(geneErrors, GeneError{genes.Names[i], failures[i]})
    } else {
      idx    = append(idx,    i)
      result = append(result, profiles[i])
    }
  }
  return genes.Subset(idx), result, geneErrors
}

/* -------------------------------------------------------------------------- */

// Summarize a profile matrix as one row per profile position, giving
// the mean and the standard error of the mean over all profiles at that
// position. NaN and ±Inf values are ignored; the standard error is zero
// where fewer than two values remain. The group name is attached as a
// constant column, so that summaries of several gene sets can be
// appended into a single table.
func Summarize(profiles [][]float64, group string) Meta {
  if len(profiles) == 0 {
    panic("Summarize(): no profiles given!")
  }
  n := len(profiles[0])
  for i := 1; i < len(profiles); i++ {
    if len(profiles[i]) != n {
      panic("Summarize(): profiles have varying lengths!")
    }
  }
  position := make([]int,     n)
  groups   := make([]string,  n)
  mean     := make([]float64, n)
  se       := make([]float64, n)

  values := []float64{}

  for j := 0; j < n; j++ {
    values = values[0:0]
    for i := 0; i < len(profiles); i++ {
      if math.IsNaN(profiles[i][j]) || math.IsInf(profiles[i][j], 0) {
        continue
      }
      values = append(values, profiles[i][j])
    }
    position[j] = j+1
    groups  [j] = group
    switch len(values) {
    case 0:
      mean[j] = math.NaN()
    case 1:
      mean[j] = values[0]
    default:
      m, sd  := stat.MeanStdDev(values, nil)
      mean[j] = m
      se  [j] = sd/math.Sqrt(float64(len(values)))
    }
  }
  meta := Meta{}
  meta.AddMeta("position", position)
  meta.AddMeta("group",    groups)
  meta.AddMeta("mean",     mean)
  meta.AddMeta("se",       se)

  return meta
}
