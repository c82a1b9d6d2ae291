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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"
import   "strconv"

import . "github.com/schoelz-j/schoelz-feng-riddle-2020"
import   "github.com/schoelz-j/schoelz-feng-riddle-2020/lib/progress"

import   "github.com/pbenner/threadpool"
import   "github.com/pborman/getopt"

/* -------------------------------------------------------------------------- */

type Config struct {
  PromoterWidth  int
  BodyFraction   float64
  FragmentLength int
  SkipErrors     bool
  Status         bool
  Threads        int
  Verbose        int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importGenome(config Config, filename string) Genome {
  PrintStderr(config, 1, "Reading chromosome sizes `%s'... ", filename)
  if _, err := os.Stat(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  genome := ReadGenome(filename)
  PrintStderr(config, 1, "done\n")
  return genome
}

func importGenes(config Config, filename string, genome Genome) Genes {
  PrintStderr(config, 1, "Reading genes `%s'... ", filename)
  genes, err := ImportGenes(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  filtered, n := genes.FilterGenome(genome)
  if n != 0 {
    fmt.Fprintf(os.Stderr, "removed %d genes not compatible with the genome\n", n)
  }
  return filtered
}

func importTrack(config Config, name, filename string, genome Genome) Track {
  options := []interface{}{
    OptionFragmentLength  {Value: config.FragmentLength},
    OptionNormalizeTrack  {Value: "rpm"}}
  if config.Verbose >= 1 {
    options = append(options, OptionLogger{Value: log.New(os.Stderr, "", 0)})
  }
  track, n, err := BedCoverage(name, []string{filename}, genome, options...)
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Track `%s' has %d reads\n", name, n)
  return track
}

func exportIndices(config Config, genes Genes, indices []float64, filename string) {
  granges := genes.Clone().GRanges
  granges.AddMeta("index", indices)
  PrintStderr(config, 1, "Writing table `%s'... ", filename)
  if err := granges.ExportTable(filename, true, true); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func computeIndices(config Config, genes Genes, tracks []Track) (Genes, []float64) {

  pool     := threadpool.New(config.Threads, 100*config.Threads)
  indices  := make([]float64, genes.Length())
  failures := make([]error,   genes.Length())

  if !config.Status {
    PrintStderr(config, 1, "Computing pausing indices... ")
  }
  g := pool.NewJobGroup()

  for n, i := genes.Length(), 0; i < n; i++ {
    // make a thread safe copy of i
    j := i
    // add task to the thread pool
    pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
      if result, err := PausingIndex(genes.Row(j), tracks, config.PromoterWidth, config.BodyFraction); err != nil {
        failures[j] = GeneError{Name: genes.Names[j], Err: err}
      } else {
        indices[j] = result
      }
      return nil
    })
    if config.Status {
      progress.New(n, 1000).PrintStderr(i+1)
    }
  }
  pool.Wait(g)
  if !config.Status {
    PrintStderr(config, 1, "done\n")
  }

  idx := []int{}
  for i := 0; i < genes.Length(); i++ {
    if failures[i] != nil {
      if !config.SkipErrors {
        log.Fatal(failures[i])
      }
      fmt.Fprintf(os.Stderr, "skipping %v\n", failures[i])
    } else {
      idx = append(idx, i)
    }
  }
  result := make([]float64, len(idx))
  for i := 0; i < len(idx); i++ {
    result[i] = indices[idx[i]]
  }
  return genes.Subset(idx), result
}

/* -------------------------------------------------------------------------- */

func pausingIndex(config Config, filenameGenes, filenameGenome, filenameReads1, filenameReads2, filenameOut string) {

  genome := importGenome(config, filenameGenome)
  genes  := importGenes (config, filenameGenes, genome)

  track1 := importTrack(config, "rep1", filenameReads1, genome)
  track2 := importTrack(config, "rep2", filenameReads2, genome)

  genes, indices := computeIndices(config, genes, []Track{track1, track2})

  exportIndices(config, genes, indices, filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}

  options := getopt.New()

  optPromoterWidth  := options.    IntLong("promoter-width",  0 ,  500, "promoter window width [default: 500]")
  optBodyFraction   := options. StringLong("body-fraction",   0 ,   "", "gene body fraction [default: 0.25]")
  optFragmentLength := options.    IntLong("fragment-length", 0 ,    0, "extend reads to the given fragment length")
  optThreads        := options.    IntLong("threads",         0 ,    1, "number of threads [default: 1]")
  optSkipErrors     := options.   BoolLong("skip-errors",     0 ,       "report failed genes and continue")
  optStatus         := options.   BoolLong("status",          0 ,       "show status bar")
  optHelp           := options.   BoolLong("help",           'h',       "print help")
  optVerbose        := options.CounterLong("verbose",        'v',       "be verbose")

  options.SetParameters("<GENES.table> <CHROM.sizes> <READS1.bed> <READS2.bed> <OUTPUT.table>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 5 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optBodyFraction != "" {
    v, err := strconv.ParseFloat(*optBodyFraction, 64)
    if err != nil {
      log.Fatalf("parsing body fraction failed: %v", err)
    }
    config.BodyFraction = v
  } else {
    config.BodyFraction = 0.25
  }
  if config.BodyFraction <= 0.0 || config.BodyFraction > 1.0 {
    log.Fatal("invalid body fraction")
  }
  if *optPromoterWidth < 1 {
    log.Fatal("invalid promoter width")
  }
  if *optThreads < 1 {
    log.Fatal("invalid number of threads")
  }
  config.PromoterWidth  = *optPromoterWidth
  config.FragmentLength = *optFragmentLength
  config.Threads        = *optThreads
  config.SkipErrors     = *optSkipErrors
  config.Status         = *optStatus
  config.Verbose        = *optVerbose

  filenameGenes  := options.Args()[0]
  filenameGenome := options.Args()[1]
  filenameReads1 := options.Args()[2]
  filenameReads2 := options.Args()[3]
  filenameOut    := options.Args()[4]

  pausingIndex(config, filenameGenes, filenameGenome, filenameReads1, filenameReads2, filenameOut)
}
