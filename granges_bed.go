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
import "os"

import "github.com/vertgenlab/gonomics/bed"
import "github.com/vertgenlab/gonomics/fileio"

/* -------------------------------------------------------------------------- */

// Import GRanges from a Bed file with six columns. Name and score are
// stored as meta columns. A strand of `.' is imported as `*'. Note that
// parse errors cause the gonomics bed reader to panic.
func (g *GRanges) ReadBed6(filename string) error {
  if _, err := os.Stat(filename); err != nil {
    return err
  }
  records := bed.Read(filename)

  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  name     := []string{}
  score    := []int{}
  strand   := []byte{}

  for _, r := range records {
    if r.FieldsInitialized < 6 {
      return fmt.Errorf("ReadBed6(): Bed file must have at least six columns!")
    }
    seqnames = append(seqnames, r.Chrom)
    from     = append(from,     r.ChromStart)
    to       = append(to,       r.ChromEnd)
    name     = append(name,     r.Name)
    score    = append(score,    r.Score)
    switch r.Strand {
    case bed.Positive: strand = append(strand, '+')
    case bed.Negative: strand = append(strand, '-')
    default          : strand = append(strand, '*')
    }
  }
  *g = NewGRanges(seqnames, from, to, strand)
  g.AddMeta("name",  name)
  g.AddMeta("score", score)

  return nil
}

// Export GRanges object as bed file with six columns. Name and score
// columns are filled with `.' and zeros if no such meta data is
// available. Files ending in `.gz' are compressed.
func (granges GRanges) WriteBed6(filename string) error {
  w := fileio.EasyCreate(filename)

  name  := granges.GetMetaStr("name")
  score := granges.GetMetaInt("score")

  for i := 0; i < granges.Length(); i++ {
    fmt.Fprintf(w,   "%s", granges.Seqnames[i])
    fmt.Fprintf(w, "\t%d", granges.Ranges[i].From)
    fmt.Fprintf(w, "\t%d", granges.Ranges[i].To)
    if len(name) > 0 {
      fmt.Fprintf(w, "\t%s", name[i])
    } else {
      fmt.Fprintf(w, "\t%s", ".")
    }
    if len(score) > 0 {
      fmt.Fprintf(w, "\t%d", score[i])
    } else {
      fmt.Fprintf(w, "\t%d", 0)
    }
    if len(granges.Strand) > 0 && granges.Strand[i] != '*' {
      fmt.Fprintf(w, "\t%c", granges.Strand[i])
    } else {
      fmt.Fprintf(w, "\t%s", ".")
    }
    fmt.Fprintf(w, "\n")
  }
  return w.Close()
}
