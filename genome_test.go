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
import   "testing"

/* -------------------------------------------------------------------------- */

func TestGenome1(t *testing.T) {

  genome := ReadGenome("genome_test.sizes")

  //fmt.Println(genome)

  if genome.Length() != 3 {
    t.Error("TestGenome1 failed!")
  }
  if n, err := genome.SeqLength("chr2"); err != nil || n != 243199373 {
    t.Error("TestGenome1 failed!")
  }
  _, err := genome.SeqLength("chr3")
  if err == nil {
    t.Error("TestGenome1 failed!")
  }
  missingErr := MissingChromosomeError{}
  if !errors.As(err, &missingErr) || missingErr.Seqname != "chr3" {
    t.Error("TestGenome1 failed!")
  }
}

func TestGenome2(t *testing.T) {

  genome := NewGenome(
    []string{"chr1", "chr2"},
    []int   {  1000,   2000})

  if genome.Length() != 2 {
    t.Error("TestGenome2 failed!")
  }
  if n, _ := genome.SeqLength("chr1"); n != 1000 {
    t.Error("TestGenome2 failed!")
  }
}
