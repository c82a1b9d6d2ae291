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
import   "image/color"
import   "log"
import   "os"
import   "strconv"
import   "strings"

import . "github.com/schoelz-j/schoelz-feng-riddle-2020"

import   "github.com/guptarohit/asciigraph"
import   "github.com/pborman/getopt"
import   "github.com/vertgenlab/gonomics/fileio"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type Config struct {
  GroupA  string
  GroupB  string
  Plot    string
  Preview bool
  Vlines  []float64
  Verbose int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importProfiles(config Config, filename string) [][]float64 {
  granges := GRanges{}
  PrintStderr(config, 1, "Reading profiles `%s'... ", filename)
  if err := granges.ImportTable(filename,
    []string{"names", "profile"},
    []string{"[]string", "[][]float64"}); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  if granges.Length() == 0 {
    log.Fatalf("table `%s' contains no profiles", filename)
  }
  return granges.GetMetaFloatMatrix("profile")
}

func exportTable(config Config, meta Meta, filename string) {
  PrintStderr(config, 1, "Writing table `%s'... ", filename)
  w := fileio.EasyCreate(filename)
  if err := meta.WriteTable(w, true); err != nil {
    PrintStderr(config, 1, "failed\n")
    w.Close()
    log.Fatal(err)
  }
  if err := w.Close(); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func previewSummary(config Config, meanA, meanB []float64) {
  // resample both curves so that they fit the terminal
  fmt.Println(asciigraph.PlotMany(
    [][]float64{Resample(meanA, 100), Resample(meanB, 100)},
    asciigraph.Height(10),
    asciigraph.Precision(1),
    asciigraph.SeriesColors(
      asciigraph.Blue,
      asciigraph.Red)))
  fmt.Printf("blue: %s, red: %s\n", config.GroupA, config.GroupB)
}

func plotSummary(config Config, meanA, meanB []float64, filename string) {

  ptsA := make(plotter.XYs, len(meanA))
  for i := 0; i < len(meanA); i++ {
    ptsA[i].X = float64(i+1)
    ptsA[i].Y = meanA[i]
  }
  ptsB := make(plotter.XYs, len(meanB))
  for i := 0; i < len(meanB); i++ {
    ptsB[i].X = float64(i+1)
    ptsB[i].Y = meanB[i]
  }
  ymin := meanA[0]
  ymax := meanA[0]
  for i := 0; i < len(meanA); i++ {
    if meanA[i] < ymin { ymin = meanA[i] }
    if meanA[i] > ymax { ymax = meanA[i] }
  }
  for i := 0; i < len(meanB); i++ {
    if meanB[i] < ymin { ymin = meanB[i] }
    if meanB[i] > ymax { ymax = meanB[i] }
  }

  pl := plot.New()
  pl.X.Label.Text = "relative position"
  pl.Y.Label.Text = "mean coverage"

  if err := plotutil.AddLines(pl, config.GroupA, ptsA, config.GroupB, ptsB); err != nil {
    log.Fatal(err)
  }
  for _, x := range config.Vlines {
    line, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
    if err != nil {
      log.Fatal(err)
    }
    line.LineStyle.Color  = color.Gray{128}
    line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
    pl.Add(line)
  }
  PrintStderr(config, 1, "Writing plot `%s'... ", filename)
  if err := pl.Save(20*vg.Centimeter, 12*vg.Centimeter, filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func metageneSummary(config Config, filenameA, filenameB, filenameOut string) {

  profilesA := importProfiles(config, filenameA)
  profilesB := importProfiles(config, filenameB)

  summaryA := Summarize(profilesA, config.GroupA)
  summaryB := Summarize(profilesB, config.GroupB)
  summary  := summaryA.Append(summaryB)

  exportTable(config, summary, filenameOut)

  if config.Preview {
    previewSummary(config, summaryA.GetMetaFloat("mean"), summaryB.GetMetaFloat("mean"))
  }
  if config.Plot != "" {
    plotSummary(config, summaryA.GetMetaFloat("mean"), summaryB.GetMetaFloat("mean"), config.Plot)
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}

  options := getopt.New()

  optGroupA  := options. StringLong("group-a", 0 , "A", "name of the first group [default: A]")
  optGroupB  := options. StringLong("group-b", 0 , "B", "name of the second group [default: B]")
  optPlot    := options. StringLong("plot",    0 ,  "", "plot group means to the given file")
  optPreview := options.   BoolLong("preview", 0 ,      "print group means to the terminal")
  optVlines  := options. StringLong("vline",   0 ,  "", "comma separated vertical reference lines (profile coordinates)")
  optHelp    := options.   BoolLong("help",   'h',      "print help")
  optVerbose := options.CounterLong("verbose",'v',      "be verbose")

  options.SetParameters("<MATRIX_A.table> <MATRIX_B.table> <OUTPUT.table>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optVlines != "" {
    for _, str := range strings.Split(*optVlines, ",") {
      v, err := strconv.ParseFloat(str, 64)
      if err != nil {
        log.Fatalf("parsing vline positions failed: %v", err)
      }
      config.Vlines = append(config.Vlines, v)
    }
  }
  config.GroupA  = *optGroupA
  config.GroupB  = *optGroupB
  config.Plot    = *optPlot
  config.Preview = *optPreview
  config.Verbose = *optVerbose

  filenameA   := options.Args()[0]
  filenameB   := options.Args()[1]
  filenameOut := options.Args()[2]

  metageneSummary(config, filenameA, filenameB, filenameOut)
}
