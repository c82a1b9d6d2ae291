/* Copyright (C) 2016 Philipp Benner
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
import "bufio"
import "bytes"
import "io"
import "io/ioutil"
import "os"
import "strconv"
import "strings"

import "github.com/vertgenlab/gonomics/fileio"

/* -------------------------------------------------------------------------- */

// Write genes as a table with columns names, seqnames, strand, txStart,
// and txEnd, followed by all meta columns. Transcript coordinates are
// printed 1-based inclusive.
func (genes Genes) WriteTable(writer io.Writer, header bool) error {
  // pretty print meta data and create a scanner reading
  // the resulting string
  meta := genes.Meta.Clone()
  meta.DeleteMeta("names")
  metaStr     := meta.PrintTable(header)
  metaReader  := strings.NewReader(metaStr)
  metaScanner := bufio.NewScanner(metaReader)

  // compute the width of a single cell
  updateMaxWidth := func(format string, widths []int, j int, args ...interface{}) error {
    if width, err := fmt.Fprintf(ioutil.Discard, format, args...); err != nil {
      return err
    } else {
      if width > widths[j] {
        widths[j] = width
      }
    }
    return nil
  }
  // compute widths of all cells in row i
  updateMaxWidths := func(i int, widths []int) error {
    if err := updateMaxWidth("%s", widths, 0, genes.Names[i]); err != nil {
      return err
    }
    if err := updateMaxWidth("%s", widths, 1, genes.Seqnames[i]); err != nil {
      return err
    }
    if err := updateMaxWidth("%c", widths, 2, genes.Strand[i]); err != nil {
      return err
    }
    if err := updateMaxWidth("%d", widths, 3, genes.Ranges[i].From+1); err != nil {
      return err
    }
    if err := updateMaxWidth("%d", widths, 4, genes.Ranges[i].To); err != nil {
      return err
    }
    return nil
  }
  printMetaRow := func(writer io.Writer) error {
    if meta.MetaLength() != 0 {
      if _, err := fmt.Fprintf(writer, " "); err != nil {
        return err
      }
      metaScanner.Scan()
      if _, err := fmt.Fprintf(writer, "%s", metaScanner.Text()); err != nil {
        return err
      }
    }
    return nil
  }
  printHeader := func(writer io.Writer, format string) error {
    if _, err := fmt.Fprintf(writer, format,
      "names", "seqnames", "strand", "txStart", "txEnd"); err != nil {
      return err
    }
    if err := printMetaRow(writer); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(writer, "\n"); err != nil {
      return err
    }
    return nil
  }
  printRow := func(writer io.Writer, format string, i int) error {
    if i != 0 {
      if _, err := fmt.Fprintf(writer, "\n"); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(writer, format,
      genes.Names[i],
      genes.Seqnames[i],
      genes.Strand[i],
      genes.Ranges[i].From+1,
      genes.Ranges[i].To); err != nil {
      return err
    }
    if err := printMetaRow(writer); err != nil {
      return err
    }
    return nil
  }
  applyRows := func(f1 func(i int) error) error {
    // apply to all entries
    for i := 0; i < genes.Length(); i++ {
      if err := f1(i); err != nil {
        return err
      }
    }
    return nil
  }
  // maximum column widths
  widths := []int{5, 8, 6, 7, 5}
  // determine column widths
  if err := applyRows(func(i int) error { return updateMaxWidths(i, widths) }); err != nil {
    return err
  }
  // generate format strings
  formatRow    := fmt.Sprintf("%%%ds %%%ds %%%dc %%%dd %%%dd",
    widths[0], widths[1], widths[2], widths[3], widths[4])
  formatHeader := fmt.Sprintf("%%%ds %%%ds %%%ds %%%ds %%%ds",
    widths[0], widths[1], widths[2], widths[3], widths[4])
  // print header
  if header {
    if err := printHeader(writer, formatHeader); err != nil {
      return err
    }
  }
  // print rows
  if err := applyRows(
    func(i int) error {
      return printRow(writer, formatRow, i)
    }); err != nil {
    return err
  }
  if _, err := fmt.Fprintf(writer, "\n"); err != nil {
    return err
  }
  return nil
}

/* -------------------------------------------------------------------------- */

func (genes Genes) PrintTable(header bool) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  if err := genes.WriteTable(writer, header); err != nil {
    return ""
  }
  writer.Flush()

  return buffer.String()
}

/* -------------------------------------------------------------------------- */

// Write the gene table to the given file. Files ending in `.gz' are
// compressed.
func (genes Genes) ExportTable(filename string, header bool) error {
  w := fileio.EasyCreate(filename)

  if err := genes.WriteTable(w, header); err != nil {
    w.Close()
    return err
  }
  return w.Close()
}

/* -------------------------------------------------------------------------- */

// Read genes from a whitespace separated table with columns names,
// seqnames, strand, txStart, and txEnd. The header line is optional.
// Transcript coordinates are expected 1-based inclusive and converted
// to zero-based half-open ranges. Gene names must be unique.
func ReadGenes(r io.Reader) (Genes, error) {
  genes   := Genes{}
  scanner := bufio.NewScanner(r)

  names    := []string{}
  seqnames := []string{}
  txFrom   := []int{}
  txTo     := []int{}
  strand   := []byte{}
  index    := map[string]bool{}

  first := true
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if first && fields[0] == "names" {
      // skip header
      first = false
      continue
    }
    first = false
    if len(fields) < 5 {
      return genes, fmt.Errorf("file must have at least five columns")
    }
    t1, e := strconv.ParseInt(fields[3], 10, 64)
    if e != nil {
      return genes, e
    }
    t2, e := strconv.ParseInt(fields[4], 10, 64)
    if e != nil {
      return genes, e
    }
    if fields[2][0] != '+' && fields[2][0] != '-' {
      return genes, fmt.Errorf("gene `%s' has invalid strand `%c'", fields[0], fields[2][0])
    }
    if index[fields[0]] {
      return genes, fmt.Errorf("duplicate gene name `%s'", fields[0])
    }
    index[fields[0]] = true
    names    = append(names,    fields[0])
    seqnames = append(seqnames, fields[1])
    txFrom   = append(txFrom,   int(t1)-1)
    txTo     = append(txTo,     int(t2))
    strand   = append(strand,   fields[2][0])
  }
  if err := scanner.Err(); err != nil {
    return genes, err
  }
  return NewGenes(names, seqnames, txFrom, txTo, strand), nil
}

// Import genes from the given file. Files ending in `.gz' are
// decompressed.
func ImportGenes(filename string) (Genes, error) {
  if _, err := os.Stat(filename); err != nil {
    return Genes{}, err
  }
  f := fileio.EasyOpen(filename)
  defer f.Close()

  return ReadGenes(f)
}
