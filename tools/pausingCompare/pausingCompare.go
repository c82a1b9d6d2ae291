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
import   "sort"

import . "github.com/schoelz-j/schoelz-feng-riddle-2020"

import   "github.com/aclements/go-moremath/stats"
import   "github.com/pborman/getopt"

import   "gonum.org/v1/gonum/stat"
import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type Config struct {
  GroupA  string
  GroupB  string
  Plot    string
  Verbose int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importIndices(config Config, filename string) []float64 {
  granges := GRanges{}
  PrintStderr(config, 1, "Reading pausing indices `%s'... ", filename)
  if err := granges.ImportTable(filename,
    []string{"names", "index"},
    []string{"[]string", "[]float64"}); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return granges.GetMetaFloat("index")
}

/* -------------------------------------------------------------------------- */

func median(values []float64) float64 {
  sorted := make([]float64, len(values))
  copy(sorted, values)
  sort.Float64s(sorted)
  return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

func filterPositive(values []float64) ([]float64, int) {
  result := []float64{}
  for _, v := range values {
    if v > 0.0 {
      result = append(result, v)
    }
  }
  return result, len(values)-len(result)
}

/* -------------------------------------------------------------------------- */

func plotIndices(config Config, xs, ys []float64, filename string) {

  // a log scale requires strictly positive values
  xsPos, nx := filterPositive(xs)
  ysPos, ny := filterPositive(ys)
  if nx != 0 || ny != 0 {
    fmt.Fprintf(os.Stderr, "excluded %d non-positive values from the plot\n", nx+ny)
  }
  if len(xsPos) == 0 || len(ysPos) == 0 {
    log.Fatal("no positive values to plot")
  }

  pl := plot.New()
  pl.Y.Label.Text  = "pausing index"
  pl.Y.Scale       = plot.LogScale{}
  pl.Y.Tick.Marker = plot.LogTicks{Prec: -1}
  pl.NominalX(config.GroupA, config.GroupB)

  boxA, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(xsPos))
  if err != nil {
    log.Fatal(err)
  }
  boxB, err := plotter.NewBoxPlot(vg.Points(40), 1, plotter.Values(ysPos))
  if err != nil {
    log.Fatal(err)
  }
  pl.Add(boxA, boxB)

  PrintStderr(config, 1, "Writing plot `%s'... ", filename)
  if err := pl.Save(12*vg.Centimeter, 12*vg.Centimeter, filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func pausingCompare(config Config, filenameA, filenameB string) {

  indicesA := importIndices(config, filenameA)
  indicesB := importIndices(config, filenameB)

  xs, droppedA := FilterFinite(indicesA)
  ys, droppedB := FilterFinite(indicesB)

  if len(xs) == 0 || len(ys) == 0 {
    log.Fatal("no finite pausing indices left after filtering")
  }
  result, err := stats.MannWhitneyUTest(xs, ys, stats.LocationDiffers)
  if err != nil {
    log.Fatal(err)
  }
  fmt.Printf("%s: n = %d (%d non-finite values dropped), median = %f\n",
    config.GroupA, len(xs), droppedA, median(xs))
  fmt.Printf("%s: n = %d (%d non-finite values dropped), median = %f\n",
    config.GroupB, len(ys), droppedB, median(ys))
  fmt.Printf("Mann-Whitney U = %f, p-value = %e\n", result.U, result.P)

  if config.Plot != "" {
    plotIndices(config, xs, ys, config.Plot)
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}

  options := getopt.New()

  optGroupA  := options. StringLong("group-a", 0 , "A", "name of the first group [default: A]")
  optGroupB  := options. StringLong("group-b", 0 , "B", "name of the second group [default: B]")
  optPlot    := options. StringLong("plot",    0 ,  "", "box plot of both groups to the given file")
  optHelp    := options.   BoolLong("help",   'h',      "print help")
  optVerbose := options.CounterLong("verbose",'v',      "be verbose")

  options.SetParameters("<INDEX_A.table> <INDEX_B.table>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.GroupA  = *optGroupA
  config.GroupB  = *optGroupB
  config.Plot    = *optPlot
  config.Verbose = *optVerbose

  filenameA := options.Args()[0]
  filenameB := options.Args()[1]

  pausingCompare(config, filenameA, filenameB)
}
