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

import   "github.com/pborman/getopt"

import . "github.com/schoelz-j/schoelz-feng-riddle-2020"

/* -------------------------------------------------------------------------- */

type Config struct {
  Verbose int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importGenes(config Config, host, genome, table string) Genes {
  PrintStderr(config, 1, "Fetching genes from `%s/%s'... ", genome, table)
  genes, err := ImportGenesFromUCSC(host, genome, table)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  PrintStderr(config, 1, "Fetched %d genes\n", genes.Length())
  return genes
}

func exportGenes(config Config, genes Genes, filename string) {
  PrintStderr(config, 1, "Writing table `%s'... ", filename)
  if err := genes.ExportTable(filename, true); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func ucscGenes(config Config, host, genome, table, filenameOut string) {
  genes := importGenes(config, host, genome, table)
  exportGenes(config, genes, filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}

  options := getopt.New()

  optHost    := options. StringLong("host",  0 , "genome-mysql.soe.ucsc.edu", "UCSC MySQL server [default: genome-mysql.soe.ucsc.edu]")
  optTable   := options. StringLong("table", 0 , "refGene", "gene annotation table [default: refGene]")
  optHelp    := options.   BoolLong("help", 'h',            "print help")
  optVerbose := options.CounterLong("verbose", 'v',         "be verbose")

  options.SetParameters("<GENOME> <OUTPUT.table>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose = *optVerbose

  genome      := options.Args()[0]
  filenameOut := options.Args()[1]

  ucscGenes(config, *optHost, genome, *optTable, filenameOut)
}
