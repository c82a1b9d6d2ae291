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
import "database/sql"

import _ "github.com/go-sql-driver/mysql"

/* import genes from ucsc
 * -------------------------------------------------------------------------- */

// Import genes from a UCSC annotation database, e.g. host
// genome-mysql.soe.ucsc.edu, genome hg19, and table refGene. Annotation
// tables typically list one transcript per row, which may result in
// several rows sharing one gene name; only the first occurrence of each
// name is imported. UCSC coordinates are already zero-based half-open.
func ImportGenesFromUCSC(host, genome, table string) (Genes, error) {
  genes := Genes{}
  /* variables for storing a single database row */
  var i_name, i_seqname, i_strand string
  var i_txFrom, i_txTo int

  names    := []string{}
  seqnames := []string{}
  txFrom   := []int{}
  txTo     := []int{}
  strand   := []byte{}
  index    := map[string]bool{}

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(%s:3306)/%s", host, genome))
  if err != nil {
    return genes, err
  }
  defer db.Close()

  err = db.Ping()
  if err != nil {
    return genes, err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT name, chrom, strand, txStart, txEnd FROM %s", table))
  if err != nil {
    return genes, err
  }
  defer rows.Close()
  for rows.Next() {
    err := rows.Scan(&i_name, &i_seqname, &i_strand, &i_txFrom, &i_txTo)
    if err != nil {
      return genes, err
    }
    if index[i_name] {
      continue
    }
    index[i_name] = true
    names    = append(names,    i_name)
    seqnames = append(seqnames, i_seqname)
    txFrom   = append(txFrom,   i_txFrom)
    txTo     = append(txTo,     i_txTo)
    strand   = append(strand,   i_strand[0])
  }
  if err := rows.Err(); err != nil {
    return genes, err
  }
  return NewGenes(names, seqnames, txFrom, txTo, strand), nil
}
