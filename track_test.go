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

//import   "fmt"
import   "errors"
import   "math"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestTrack1(t *testing.T) {

  genome := NewGenome([]string{"chrX"}, []int{1000})
  track  := NewTrack("test", genome)

  track.Set("chrX", 100, 13.0)
  track.Add("chrX", 100, 10.0)

  if v, _ := track.At("chrX", 100); v != 23 {
    t.Error("TestTrack1 failed!")
  }
  if err := track.Set("chrY", 100, 1.0); err == nil {
    t.Error("TestTrack1 failed!")
  }
  if _, err := track.At("chrX", 1000); err == nil {
    t.Error("TestTrack1 failed!")
  }
}

func TestTrack2(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{300})
  track  := NewTrack("test", genome)

  // r1:                 |-------------| [ 98, 231)
  // r2:                        |--------------| [173, 286)
  // r3: |----| [0, 33)
  seqnames := []string{"chr1", "chr1", "chr1"}
  from     := []int   { 98, 173, 00}
  to       := []int   {231, 286, 33}
  strand   := []byte  {'+', '+', '+'}
  reads    := NewGRanges(seqnames, from, to, strand)

  if n := track.AddReads(reads, 0); n != 3 {
    t.Error("TestTrack2 failed!")
  }

  if v, _ := track.At("chr1",   0); math.Abs(v - 1.0) > 1e-8 {
    t.Error("TestTrack2 failed!")
  }
  if v, _ := track.At("chr1",  33); math.Abs(v - 0.0) > 1e-8 {
    t.Error("TestTrack2 failed!")
  }
  if v, _ := track.At("chr1", 172); math.Abs(v - 1.0) > 1e-8 {
    t.Error("TestTrack2 failed!")
  }
  if v, _ := track.At("chr1", 173); math.Abs(v - 2.0) > 1e-8 {
    t.Error("TestTrack2 failed!")
  }
  if v, _ := track.At("chr1", 230); math.Abs(v - 2.0) > 1e-8 {
    t.Error("TestTrack2 failed!")
  }
  if v, _ := track.At("chr1", 231); math.Abs(v - 1.0) > 1e-8 {
    t.Error("TestTrack2 failed!")
  }
  if v, _ := track.At("chr1", 286); math.Abs(v - 0.0) > 1e-8 {
    t.Error("TestTrack2 failed!")
  }
}

func TestTrack3(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{300})
  track  := NewTrack("test", genome)

  // reads are extended to the fragment length in strand direction
  seqnames := []string{"chr1", "chr1"}
  from     := []int   { 10, 250}
  to       := []int   { 60, 280}
  strand   := []byte  {'+', '-'}
  reads    := NewGRanges(seqnames, from, to, strand)

  track.AddReads(reads, 100)

  if v, _ := track.At("chr1",  10); v != 1.0 {
    t.Error("TestTrack3 failed!")
  }
  if v, _ := track.At("chr1", 109); v != 1.0 {
    t.Error("TestTrack3 failed!")
  }
  if v, _ := track.At("chr1", 110); v != 0.0 {
    t.Error("TestTrack3 failed!")
  }
  if v, _ := track.At("chr1", 179); v != 0.0 {
    t.Error("TestTrack3 failed!")
  }
  if v, _ := track.At("chr1", 180); v != 1.0 {
    t.Error("TestTrack3 failed!")
  }
  if v, _ := track.At("chr1", 279); v != 1.0 {
    t.Error("TestTrack3 failed!")
  }
}

func TestTrack4(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{10})
  track  := NewTrack("test", genome)

  for i := 0; i < 10; i++ {
    track.Set("chr1", i, float64(i))
  }
  // slices extending past the chromosome end are truncated
  values, err := track.Slice(GRangesRow{"chr1", Range{6, 15}, '+'})
  if err != nil {
    t.Error(err)
  }
  if len(values) != 4 {
    t.Error("TestTrack4 failed!")
  }
  if values[0] != 6.0 || values[3] != 9.0 {
    t.Error("TestTrack4 failed!")
  }
  // the returned slice is a copy
  values[0] = 100.0
  if v, _ := track.At("chr1", 6); v != 6.0 {
    t.Error("TestTrack4 failed!")
  }
  if _, err := track.Slice(GRangesRow{"chr2", Range{0, 5}, '+'}); err == nil {
    t.Error("TestTrack4 failed!")
  }
}

func TestTrack5(t *testing.T) {

  genome := NewGenome(
    []string{"chr1", "chr2", "chr3", "chr4"},
    []int   {  1000,   1000,    500,    500})

  track, n, err := BedCoverage("coverage", []string{"granges_test.bed"}, genome,
    OptionNormalizeTrack{"rpm"})
  if err != nil {
    t.Error(err)
  }
  if n != 20 {
    t.Error("TestTrack5 failed!")
  }
  // 20 reads in total, i.e. each read contributes 10^6/20 to its positions
  if v, _ := track.At("chr1", 100); math.Abs(v - 50000.0) > 1e-8 {
    t.Error("TestTrack5 failed!")
  }
  if v, _ := track.At("chr1", 200); v != 0.0 {
    t.Error("TestTrack5 failed!")
  }
}

func TestTrack6(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{4})
  track  := NewTrack("test", genome)

  track.Set("chr1", 0, 2.0)
  track.Set("chr1", 1, 4.0)
  track.Scale(0.5)

  if v, _ := track.At("chr1", 0); math.Abs(v - 1.0) > 1e-8 {
    t.Error("TestTrack6 failed!")
  }
  if v, _ := track.At("chr1", 1); math.Abs(v - 2.0) > 1e-8 {
    t.Error("TestTrack6 failed!")
  }
  if v, _ := track.At("chr1", 2); v != 0.0 {
    t.Error("TestTrack6 failed!")
  }
}

func TestTrack7(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{300})
  track  := NewTrack("test", genome)

  // extended reads are clamped to the sequence boundaries
  seqnames := []string{"chr1", "chr1"}
  from     := []int   {  0, 280}
  to       := []int   { 30, 290}
  strand   := []byte  {'-', '+'}
  reads    := NewGRanges(seqnames, from, to, strand)

  if n := track.AddReads(reads, 100); n != 2 {
    t.Error("TestTrack7 failed!")
  }
  if v, _ := track.At("chr1",   0); v != 1.0 {
    t.Error("TestTrack7 failed!")
  }
  if v, _ := track.At("chr1",  30); v != 0.0 {
    t.Error("TestTrack7 failed!")
  }
  if v, _ := track.At("chr1", 299); v != 1.0 {
    t.Error("TestTrack7 failed!")
  }
}

func TestTrack8(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{100})
  track  := NewTrack("test", genome)

  if n, err := track.Length("chr1"); err != nil || n != 100 {
    t.Error("TestTrack8 failed!")
  }
  // the sequence is a view on the track data, not a copy
  seq, err := track.GetSequence("chr1")
  if err != nil {
    t.Error(err)
  }
  seq[10] = 42.0

  if v, _ := track.At("chr1", 10); v != 42.0 {
    t.Error("TestTrack8 failed!")
  }
  _, err = track.GetSequence("chr2")
  if err == nil {
    t.Error("TestTrack8 failed!")
  }
  missingErr := MissingChromosomeError{}
  if !errors.As(err, &missingErr) || missingErr.Seqname != "chr2" {
    t.Error("TestTrack8 failed!")
  }
  if _, err := track.Length("chr2"); err == nil {
    t.Error("TestTrack8 failed!")
  }
}

func TestTrack9(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{10})
  track  := NewTrack("test", genome)
  track.Set("chr1", 5, 1.0)

  clone := track.Clone()
  track.Scale(100.0)

  // the clone is not affected by modifications of the original
  if v, _ := clone.At("chr1", 5); v != 1.0 {
    t.Error("TestTrack9 failed!")
  }
  if v, _ := track.At("chr1", 5); v != 100.0 {
    t.Error("TestTrack9 failed!")
  }
  if clone.Name != "test" {
    t.Error("TestTrack9 failed!")
  }
}
