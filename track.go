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

/* -------------------------------------------------------------------------- */

type TMapType map[string][]float64

// A track is a container for experimental data mapped to genomic
// locations at single basepair resolution. The first position in a
// sequence is numbered 0.
type Track struct {
  Name string
  Data TMapType
}

/* constructors
 * -------------------------------------------------------------------------- */

// Allocate a new track with a zero initialized sequence for every
// sequence in the genome.
func NewTrack(name string, genome Genome) Track {
  data := make(TMapType)

  for i := 0; i < genome.Length(); i++ {
    data[genome.Seqnames[i]] = make([]float64, genome.Lengths[i])
  }
  return Track{name, data}
}

/* access methods
 * -------------------------------------------------------------------------- */

func (track Track) Clone() Track {
  name := track.Name
  data := make(TMapType)

  for name, sequence := range track.Data {
    t := make([]float64, len(sequence))
    copy(t, sequence)
    data[name] = t
  }
  return Track{name, data}
}

func (track Track) Length(seqname string) (int, error) {
  seq, ok := track.Data[seqname]
  if !ok {
    return 0, MissingChromosomeError{seqname}
  }
  return len(seq), nil
}

func (track Track) At(seqname string, position int) (float64, error) {
  seq, ok := track.Data[seqname]
  if !ok {
    return 0, MissingChromosomeError{seqname}
  }
  if position < 0 || position >= len(seq) {
    return 0, fmt.Errorf("position `%d' is out of range on sequence `%s'", position, seqname)
  }
  return seq[position], nil
}

func (track Track) Set(seqname string, position int, value float64) error {
  seq, ok := track.Data[seqname]
  if !ok {
    return MissingChromosomeError{seqname}
  }
  if position < 0 || position >= len(seq) {
    return fmt.Errorf("position `%d' is out of range on sequence `%s'", position, seqname)
  }
  seq[position] = value

  return nil
}

func (track Track) Add(seqname string, position int, value float64) error {
  seq, ok := track.Data[seqname]
  if !ok {
    return MissingChromosomeError{seqname}
  }
  if position < 0 || position >= len(seq) {
    return fmt.Errorf("position `%d' is out of range on sequence `%s'", position, seqname)
  }
  seq[position] += value

  return nil
}

// Returns the coverage sequence of a single chromosome. The slice is
// a view on the track data, not a copy.
func (track Track) GetSequence(seqname string) ([]float64, error) {
  seq, ok := track.Data[seqname]
  if !ok {
    return nil, MissingChromosomeError{seqname}
  }
  return seq, nil
}

// Extract the coverage of a single genomic range as a newly allocated
// slice. Ranges reaching beyond the end of the sequence are truncated.
func (track Track) Slice(r GRangesRow) ([]float64, error) {
  seq, err := track.GetSequence(r.Seqname)
  if err != nil {
    return nil, err
  }
  s := r.Range.Intersection(NewRange(0, len(seq)))

  result := make([]float64, s.Length())
  copy(result, seq[s.From:s.To])

  return result, nil
}

/* add read counts to the track
 * -------------------------------------------------------------------------- */

// Add reads to track. All reads shorter than [d] are extended in 3'
// direction to have a length of [d]. This is the same as the macs2
// `extsize' parameter. Reads are not extended if [d] is zero. Reads
// mapped to sequences that are not part of the track are ignored.
// Returns the number of reads added.
func (track Track) AddReads(reads GRanges, d int) int {
  n := 0
  sum_reads_outside := 0
  for i := 0; i < reads.Length(); i++ {
    seq, ok := track.Data[reads.Seqnames[i]]
    if !ok {
      continue
    }
    from := reads.Ranges[i].From
    to   := reads.Ranges[i].To
    if d != 0 && to - from < d {
      // extend read in 3' direction
      if reads.Strand[i] == '+' {
        to = from + d
      } else if reads.Strand[i] == '-' {
        from = to - d
      } else {
        panic("AddReads(): no strand information given!")
      }
    }
    if from < 0 {
      from = 0
    }
    if to > len(seq) {
      to = len(seq)
    }
    if from >= len(seq) {
      sum_reads_outside++
      continue
    }
    for j := from; j < to; j++ {
      seq[j] += 1.0
    }
    n++
  }
  if sum_reads_outside > 0 {
    fmt.Fprintf(os.Stderr, "AddReads(): %d read(s) are outside the genome!\n",
      sum_reads_outside)
  }
  return n
}

/* map/reduce
 * -------------------------------------------------------------------------- */

func (track *Track) Map(f func(float64) float64) {
  for _, sequence := range track.Data {
    for i := 0; i < len(sequence); i++ {
      sequence[i] = f(sequence[i])
    }
  }
}

// Multiply all values of the track with a constant, e.g. a
// reads-per-million normalization factor.
func (track *Track) Scale(c float64) {
  track.Map(func(x float64) float64 { return c*x })
}
