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

package metagene

/* -------------------------------------------------------------------------- */

//import   "fmt"
import   "errors"
import   "math"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestMetagene1(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{3000})
  track1 := NewTrack("rep1", genome)
  track2 := NewTrack("rep2", genome)

  for i := 0; i < 3000; i++ {
    track1.Set("chr1", i, 2.0)
    track2.Set("chr1", i, 4.0)
  }
  gene := GRangesRow{"chr1", Range{0, 3000}, '+'}

  profile, err := MetageneProfile(gene, []Track{track1, track2}, 1500)
  if err != nil {
    t.Error(err)
  }
  if len(profile) != 1500 {
    t.Error("TestMetagene1 failed!")
  }
  for i := 0; i < len(profile); i++ {
    if math.Abs(profile[i] - 3.0) > 1e-8 {
      t.Error("TestMetagene1 failed!")
    }
  }
}

func TestMetagene2(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{100})
  track  := NewTrack("test", genome)

  for i := 0; i < 100; i++ {
    track.Set("chr1", i, float64(i))
  }
  geneFwd := GRangesRow{"chr1", Range{0, 100}, '+'}
  geneRev := GRangesRow{"chr1", Range{0, 100}, '-'}

  profileFwd, err := MetageneProfile(geneFwd, []Track{track}, 10)
  if err != nil {
    t.Error(err)
  }
  profileRev, err := MetageneProfile(geneRev, []Track{track}, 10)
  if err != nil {
    t.Error(err)
  }
  if math.Abs(profileFwd[0] - 4.5) > 1e-8 {
    t.Error("TestMetagene2 failed!")
  }
  // the reverse strand profile is the forward profile read backwards
  for i := 0; i < len(profileFwd); i++ {
    if math.Abs(profileFwd[i] - profileRev[len(profileRev)-i-1]) > 1e-8 {
      t.Error("TestMetagene2 failed!")
    }
  }
}

func TestMetagene3(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{5000})
  track1 := NewTrack("rep1", genome)
  track2 := NewTrack("rep2", genome)

  for i := 0; i < 5000; i++ {
    track1.Set("chr1", i, 1.0)
    track2.Set("chr1", i, 1.0)
  }
  genes := NewGenes(
    []string{"gene1", "gene2", "gene3"},
    []string{"chr1", "chr1", "chr1"},
    []int   {   0, 1000, 3000},
    []int   { 900, 2800, 4900},
    []byte  { '+',  '-',  '+'})

  profiles, err := MetageneMatrix(genes, []Track{track1, track2}, 1500, 2)
  if err != nil {
    t.Error(err)
  }
  if len(profiles) != 3 {
    t.Error("TestMetagene3 failed!")
  }
  for i := 0; i < len(profiles); i++ {
    if len(profiles[i]) != 1500 {
      t.Error("TestMetagene3 failed!")
    }
  }
  meta := Summarize(profiles, "control")

  if meta.Length() != 1500 {
    t.Error("TestMetagene3 failed!")
  }
}

func TestMetagene4(t *testing.T) {

  genome := NewGenome([]string{"chr1"}, []int{1000})
  track  := NewTrack("test", genome)

  genes := NewGenes(
    []string{"gene1", "gene2"},
    []string{"chr1", "chrX"},
    []int   { 100,  100},
    []int   { 600,  600},
    []byte  { '+',  '-'})

  _, err := MetageneMatrix(genes, []Track{track}, 100, 2)
  if err == nil {
    t.Error("TestMetagene4 failed!")
  }
  geneErr := GeneError{}
  if !errors.As(err, &geneErr) {
    t.Error("TestMetagene4 failed!")
  }
  if geneErr.Name != "gene2" {
    t.Error("TestMetagene4 failed!")
  }

  genesOk, profiles, failures := MetageneMatrixSkipErrors(genes, []Track{track}, 100, 2)

  if genesOk.Length() != 1 || genesOk.Names[0] != "gene1" {
    t.Error("TestMetagene4 failed!")
  }
  if len(profiles) != 1 || len(profiles[0]) != 100 {
    t.Error("TestMetagene4 failed!")
  }
  if len(failures) != 1 || failures[0].Name != "gene2" {
    t.Error("TestMetagene4 failed!")
  }
}

func TestSummarize1(t *testing.T) {

  profiles := [][]float64{
    {1.0, 2.0},
    {3.0, 6.0}}

  meta := Summarize(profiles, "treatment")

  position := meta.GetMetaInt("position")
  group    := meta.GetMetaStr("group")
  mean     := meta.GetMetaFloat("mean")
  se       := meta.GetMetaFloat("se")

  if meta.Length() != 2 {
    t.Error("TestSummarize1 failed!")
  }
  if position[0] != 1 || position[1] != 2 {
    t.Error("TestSummarize1 failed!")
  }
  if group[0] != "treatment" || group[1] != "treatment" {
    t.Error("TestSummarize1 failed!")
  }
  if math.Abs(mean[0] - 2.0) > 1e-8 || math.Abs(mean[1] - 4.0) > 1e-8 {
    t.Error("TestSummarize1 failed!")
  }
  // the standard error of {1,3} is 1, of {2,6} is 2
  if math.Abs(se[0] - 1.0) > 1e-8 || math.Abs(se[1] - 2.0) > 1e-8 {
    t.Error("TestSummarize1 failed!")
  }
}

func TestSummarize2(t *testing.T) {

  // non-finite values are ignored position-wise
  profiles := [][]float64{
    {math.NaN(), 1.0},
    {       4.0, math.Inf(1)}}

  meta := Summarize(profiles, "control")

  mean := meta.GetMetaFloat("mean")
  se   := meta.GetMetaFloat("se")

  if math.Abs(mean[0] - 4.0) > 1e-8 || math.Abs(mean[1] - 1.0) > 1e-8 {
    t.Error("TestSummarize2 failed!")
  }
  if se[0] != 0.0 || se[1] != 0.0 {
    t.Error("TestSummarize2 failed!")
  }
}

func TestSummarize3(t *testing.T) {

  // a single profile has zero standard error
  meta := Summarize([][]float64{{5.0, 7.0}}, "control")

  mean := meta.GetMetaFloat("mean")
  se   := meta.GetMetaFloat("se")

  if math.Abs(mean[0] - 5.0) > 1e-8 || math.Abs(mean[1] - 7.0) > 1e-8 {
    t.Error("TestSummarize3 failed!")
  }
  if se[0] != 0.0 || se[1] != 0.0 {
    t.Error("TestSummarize3 failed!")
  }
}
