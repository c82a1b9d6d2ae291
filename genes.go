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

/* -------------------------------------------------------------------------- */

// Container for genes. The ranges give the transcription start and end
// positions. Names must be unique and every gene must be stranded.
type Genes struct {
  GRanges
  // pointer to the names meta column
  Names []string
  index map[string]int
}

/* constructors
 * -------------------------------------------------------------------------- */

func newGenes(granges GRanges) Genes {
  if granges.GetMeta("names") == nil {
    panic("NewGenes(): names column is missing")
  }
  names := granges.GetMetaStr("names")
  index := map[string]int{}
  for i := 0; i < granges.Length(); i++ {
    // check if strand is valid
    if granges.Strand[i] != '+' && granges.Strand[i] != '-' {
      panic("NewGenes(): Invalid strand!")
    }
    if _, ok := index[names[i]]; ok {
      panic(fmt.Sprintf("NewGenes(): duplicate gene name `%s'!", names[i]))
    }
    index[names[i]] = i
  }
  return Genes{granges, names, index}
}

func NewGenes(names, seqnames []string, txFrom, txTo []int, strand []byte) Genes {
  granges := NewGRanges(seqnames, txFrom, txTo, strand)
  granges.AddMeta("names", names)
  return newGenes(granges)
}

func (g *Genes) Clone() Genes {
  return newGenes(g.GRanges.Clone())
}

/* -------------------------------------------------------------------------- */

func (obj Genes) Subset(indices []int) Genes {
  r := obj.GRanges.Subset(indices)
  return newGenes(r)
}

// Remove all genes on sequences that are not part of the given genome
// or that reach beyond the end of their sequence. The second return
// value gives the number of genes removed.
func (obj Genes) FilterGenome(genome Genome) (Genes, int) {
  r, n := obj.GRanges.FilterGenome(genome)
  return newGenes(r), n
}

/* -------------------------------------------------------------------------- */

// Returns the index of a gene.
func (g Genes) FindGene(name string) (int, bool) {
  i, ok := g.index[name]
  return i, ok
}
