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
import   "bytes"
import   "math"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestGRanges1(t *testing.T) {

  granges := NewEmptyGRanges(0)
  if err := granges.ReadBed6("granges_test.bed"); err != nil {
    t.Error(err)
  }
  granges.AddMeta("TestMeta",
    []int{1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20})

  //fmt.Println(granges)

  if granges.Length() != 20 {
    t.Error("TestGRanges1 failed!")
  }
  // name and score columns from the bed file plus TestMeta
  if granges.MetaLength() != 3 {
    t.Error("TestGRanges1 failed!")
  }
  name := granges.GetMetaStr("name")
  if name[0] != "r001" || name[19] != "r020" {
    t.Error("TestGRanges1 failed!")
  }
  score := granges.GetMetaInt("score")
  if score[2] != 1 || score[18] != 4 {
    t.Error("TestGRanges1 failed!")
  }
}

func TestGRanges2(t *testing.T) {

  granges := NewEmptyGRanges(0)
  if err := granges.ReadBed6("granges_test.bed"); err != nil {
    t.Error(err)
  }
  genome := NewGenome(
    []string{"chr1", "chr2", "chr3"},
    []int   {  1000,   1000,    300})

  filtered, n := granges.FilterGenome(genome)

  // two regions on chr3 extend past 300 bp, chr4 is missing entirely
  if n != 7 {
    t.Error("TestGRanges2 failed!")
  }
  if filtered.Length() != 13 {
    t.Error("TestGRanges2 failed!")
  }
  for i := 0; i < filtered.Length(); i++ {
    if filtered.Seqnames[i] == "chr4" {
      t.Error("TestGRanges2 failed!")
    }
  }
}

func TestGRanges3(t *testing.T) {

  seqnames := []string{"chr1", "chr1", "chr2"}
  from     := []int   {100000266, 100000271, 100000383}
  to       := []int   {100000291, 100000296, 100000408}
  strand   := []byte  {'+', '+', '-'}

  granges := NewGRanges(seqnames, from, to, strand)

  if granges.Length() != 3 {
    t.Error("TestGRanges3 failed!")
  }
  if granges.Row(2).String() != "chr2:[100000383, 100000408):-" {
    t.Error("TestGRanges3 failed!")
  }
}

func TestGRanges4(t *testing.T) {

  granges1 := NewGRanges(
    []string{"chr1", "chr2"},
    []int   {    98,    173},
    []int   {   231,    286},
    []byte  {   '+',    '-'})
  granges1.AddMeta("score", []float64{1.5, 2.5})

  buffer := new(bytes.Buffer)

  if err := granges1.WriteTable(buffer, true, true); err != nil {
    t.Error(err)
  }

  granges2 := NewEmptyGRanges(0)
  if err := granges2.ReadTable(bytes.NewReader(buffer.Bytes())); err != nil {
    t.Error(err)
  }
  if err := granges2.Meta.ReadTable(bytes.NewReader(buffer.Bytes()),
    []string{"score"}, []string{"[]float64"}); err != nil {
    t.Error(err)
  }
  if granges2.Length() != 2 {
    t.Error("TestGRanges4 failed!")
  }
  for i := 0; i < granges2.Length(); i++ {
    if granges1.Seqnames[i] != granges2.Seqnames[i] {
      t.Error("TestGRanges4 failed!")
    }
    if granges1.Ranges[i] != granges2.Ranges[i] {
      t.Error("TestGRanges4 failed!")
    }
    if granges1.Strand[i] != granges2.Strand[i] {
      t.Error("TestGRanges4 failed!")
    }
  }
  score := granges2.GetMetaFloat("score")
  if len(score) != 2 {
    t.Error("TestGRanges4 failed!")
  }
  if math.Abs(score[0] - 1.5) > 1e-8 || math.Abs(score[1] - 2.5) > 1e-8 {
    t.Error("TestGRanges4 failed!")
  }
}

func TestGRanges5(t *testing.T) {

  granges1 := NewGRanges(
    []string{"chr1", "chr2"},
    []int   {   100,    200},
    []int   {   200,    300},
    []byte  {   '+',    '-'})
  granges1.AddMeta("score", []int{1, 2})

  granges2 := NewGRanges(
    []string{"chr3"},
    []int   {   300},
    []int   {   400},
    []byte  {   '+'})
  granges2.AddMeta("score", []int{3})

  result := granges1.Append(granges2)

  if result.Length() != 3 || granges1.Length() != 2 {
    t.Error("TestGRanges5 failed!")
  }
  if result.Seqnames[2] != "chr3" || result.Ranges[2].From != 300 {
    t.Error("TestGRanges5 failed!")
  }
  if result.Strand[2] != '+' {
    t.Error("TestGRanges5 failed!")
  }
  score := result.GetMetaInt("score")
  if len(score) != 3 || score[0] != 1 || score[2] != 3 {
    t.Error("TestGRanges5 failed!")
  }
}

func TestGRanges6(t *testing.T) {

  filename := "granges_test.out.bed"

  granges1 := NewGRanges(
    []string{"chr1", "chr2"},
    []int   {   100,    200},
    []int   {   200,    300},
    []byte  {   '+',    '-'})
  granges1.AddMeta("name",  []string{"r001", "r002"})
  granges1.AddMeta("score", []int{1, 2})

  if err := granges1.WriteBed6(filename); err != nil {
    t.Error(err)
  }
  granges2 := NewEmptyGRanges(0)
  if err := granges2.ReadBed6(filename); err != nil {
    t.Error(err)
  }
  if granges2.Length() != 2 {
    t.Error("TestGRanges6 failed!")
  }
  for i := 0; i < granges2.Length(); i++ {
    if granges1.Seqnames[i] != granges2.Seqnames[i] {
      t.Error("TestGRanges6 failed!")
    }
    if granges1.Ranges[i] != granges2.Ranges[i] {
      t.Error("TestGRanges6 failed!")
    }
    if granges1.Strand[i] != granges2.Strand[i] {
      t.Error("TestGRanges6 failed!")
    }
  }
  name  := granges2.GetMetaStr("name")
  score := granges2.GetMetaInt("score")
  if name[0] != "r001" || name[1] != "r002" {
    t.Error("TestGRanges6 failed!")
  }
  if score[0] != 1 || score[1] != 2 {
    t.Error("TestGRanges6 failed!")
  }
}
