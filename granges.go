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

import "bufio"
import "bytes"
import "fmt"
import "io"
import "io/ioutil"

/* -------------------------------------------------------------------------- */

// GRanges is a collection of genomic ranges, i.e. intervals on named
// sequences with optional strand information and meta columns. Ranges
// are zero-based half-open.
type GRanges struct {
  Seqnames   []string
  Ranges     []Range
  Strand     []byte
  Meta
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewGRanges(seqnames []string, from, to []int, strand []byte) GRanges {
  n := len(seqnames)
  if len(  from) != n || len(    to) != n ||
    (len(strand) != 0 && len(strand) != n) {
    panic("NewGRanges(): invalid arguments!")
  }
  if len(strand) == 0 {
    strand = make([]byte, n)
    for i := 0; i < n; i++ {
      strand[i] = '*'
    }
  }
  ranges := make([]Range, n)
  for i := 0; i < n; i++ {
    // create range
    ranges[i] = NewRange(from[i], to[i])
    // check if strand is valid
    if strand[i] != '+' && strand[i] != '-' && strand[i] != '*' {
      panic("NewGRanges(): Invalid strand!")
    }
  }
  return GRanges{seqnames, ranges, strand, Meta{}}
}

func NewEmptyGRanges(n int) GRanges {
  seqnames := make([]string, n)
  ranges   := make([]Range, n)
  strand   := make([]byte, n)
  for i := 0; i < n; i++ {
    strand[i] = '*'
  }
  return GRanges{seqnames, ranges, strand, Meta{}}
}

func (r *GRanges) Clone() GRanges {
  result := GRanges{}
  n := r.Length()
  result.Seqnames = make([]string, n)
  result.Ranges   = make([]Range, n)
  result.Strand   = make([]byte, n)
  copy(result.Seqnames, r.Seqnames)
  copy(result.Ranges,   r.Ranges)
  copy(result.Strand,   r.Strand)
  result.Meta = r.Meta.Clone()
  return result
}

/* -------------------------------------------------------------------------- */

func (r *GRanges) Length() int {
  return len(r.Ranges)
}

func (r1 *GRanges) Append(r2 GRanges) GRanges {
  result := GRanges{}

  result.Seqnames = append(r1.Seqnames, r2.Seqnames...)
  result.Ranges   = append(r1.Ranges,   r2.Ranges...)
  result.Strand   = append(r1.Strand,   r2.Strand...)

  result.Meta = r1.Meta.Append(r2.Meta)

  return result
}

func (r *GRanges) Subset(indices []int) GRanges {
  n := len(indices)
  seqnames := make([]string, n)
  from     := make([]int, n)
  to       := make([]int, n)
  strand   := make([]byte, n)

  for i := 0; i < n; i++ {
    seqnames[i] = r.Seqnames[indices[i]]
    from    [i] = r.Ranges  [indices[i]].From
    to      [i] = r.Ranges  [indices[i]].To
    strand  [i] = r.Strand  [indices[i]]
  }
  result := NewGRanges(seqnames, from, to, strand)
  result.Meta = r.Meta.Subset(indices)

  return result
}

// Remove all ranges on sequences that are not part of the given genome
// or that reach beyond the end of their sequence. The second return
// value gives the number of ranges removed.
func (r *GRanges) FilterGenome(genome Genome) (GRanges, int) {
  idx := []int{}
  for i := 0; i < r.Length(); i++ {
    length, err := genome.SeqLength(r.Seqnames[i])
    if err != nil || r.Ranges[i].To > length {
      continue
    }
    idx = append(idx, i)
  }
  return r.Subset(idx), r.Length() - len(idx)
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (granges GRanges) PrettyPrint(n int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  // compute the width of a single cell
  updateMaxWidth := func(format string, widths []int, j int, args ...interface{}) {
    width, _ := fmt.Fprintf(ioutil.Discard, format, args...)
    if width > widths[j] {
      widths[j] = width
    }
  }
  // compute widths of all cells in row i
  updateMaxWidths := func(i int, widths []int) {
    updateMaxWidth("%d", widths, 0, i+1)
    updateMaxWidth("%s", widths, 1, granges.Seqnames[i])
    updateMaxWidth("%d", widths, 2, granges.Ranges[i].From)
    updateMaxWidth("%d", widths, 3, granges.Ranges[i].To)
    updateMaxWidth("%c", widths, 4, granges.Strand[i])
  }
  printMetaRow := func(writer io.Writer, i int) {
    if granges.MetaLength() != 0 {
      fmt.Fprintf(writer, " |")
      granges.Meta.WriteTableRow(writer, i)
    }
  }
  printHeader := func(writer io.Writer, format string) {
    fmt.Fprintf(writer, format,
      "", "seqnames", "ranges", "strand")
    printMetaRow(writer, -1)
    fmt.Fprintf(writer, "\n")
  }
  printRow := func(writer io.Writer, format string, i int) {
    if i != 0 {
      fmt.Fprintf(writer, "\n")
    }
    fmt.Fprintf(writer, format,
      i+1,
      granges.Seqnames[i],
      granges.Ranges[i].From,
      granges.Ranges[i].To,
      granges.Strand[i])
    printMetaRow(writer, i)
  }
  applyRows := func(f1 func(i int), f2 func()) {
    if granges.Length() <= n+1 {
      // apply to all entries
      for i := 0; i < granges.Length(); i++ { f1(i) }
    } else {
      // apply to first n/2 rows
      for i := 0; i < n/2; i++ { f1(i) }
      // between first and last n/2 rows
      f2()
      // apply to last n/2 rows
      for i := granges.Length() - n/2; i < granges.Length(); i++ { f1(i) }
    }
  }
  // maximum column widths
  widths := []int{1, 8, 1, 1, 6}
  // determine column widths
  applyRows(func(i int) { updateMaxWidths(i, widths) }, func() {})
  // generate format strings
  formatRow    := fmt.Sprintf("%%%dd %%%ds [%%%dd, %%%dd) %%%dc",
    widths[0], widths[1], widths[2], widths[3], widths[4])
  formatHeader := fmt.Sprintf("%%%ds %%%ds %%%ds %%%ds",
    widths[0], widths[1], widths[2]+widths[3]+4, widths[4])
  // print header
  printHeader(writer, formatHeader)
  // print rows
  applyRows(
    func(i int) {
      printRow(writer, formatRow, i)
    },
    func() {
      fmt.Fprintf(writer, "\n")
      fmt.Fprintf(writer, formatHeader, "", "...", "...", "")
    })
  writer.Flush()

  return buffer.String()
}

func (granges GRanges) String() string {
  return granges.PrettyPrint(10)
}
