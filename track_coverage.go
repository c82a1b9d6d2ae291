/* Copyright (C) 2016-2018 Philipp Benner
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

import   "fmt"
import   "log"
import   "io/ioutil"

/* -------------------------------------------------------------------------- */

type OptionLogger struct {
  Value *log.Logger
}

type OptionFragmentLength struct {
  Value int
}

type OptionNormalizeTrack struct {
  Value string
}

/* -------------------------------------------------------------------------- */

type BedCoverageConfig struct {
  Logger         *log.Logger
  FragmentLength  int
  NormalizeTrack  string
}

func BedCoverageDefaultConfig() BedCoverageConfig {
  config := BedCoverageConfig{}
  // set default values
  config.Logger         = log.New(ioutil.Discard, "", 0)
  config.FragmentLength = 0
  config.NormalizeTrack = ""
  return config
}

/* -------------------------------------------------------------------------- */

// Compute the read coverage at single basepair resolution from a set of
// bed files. Reads are extended in 3' direction to the configured
// fragment length before they are added to the track. If the track is
// normalized to reads per million, the scaling factor is computed from
// the returned read count. Returns the track and the total number of
// reads added.
func BedCoverage(name string, filenames []string, genome Genome, options ...interface{}) (Track, int, error) {

  config := BedCoverageDefaultConfig()

  // parse options
  for _, option := range options {
    switch opt := option.(type) {
    case OptionLogger:
      config.Logger = opt.Value
    case OptionFragmentLength:
      config.FragmentLength = opt.Value
    case OptionNormalizeTrack:
      config.NormalizeTrack = opt.Value
    default:
      return Track{}, 0, fmt.Errorf("BedCoverage(): invalid option: %v", opt)
    }
  }
  if config.NormalizeTrack != "" && config.NormalizeTrack != "rpm" {
    return Track{}, 0, fmt.Errorf("BedCoverage(): invalid normalization `%s'", config.NormalizeTrack)
  }

  track := NewTrack(name, genome)

  // number of reads
  n := 0

  for _, filename := range filenames {
    reads := GRanges{}
    config.Logger.Printf("Reading tags from `%s'", filename)
    if err := reads.ReadBed6(filename); err != nil {
      return Track{}, n, fmt.Errorf("%s: %w", filename, err)
    }
    m := track.AddReads(reads, config.FragmentLength)
    config.Logger.Printf("Added %d reads from `%s'", m, filename)
    n += m
  }
  if config.NormalizeTrack == "rpm" {
    if n == 0 {
      return Track{}, n, fmt.Errorf("BedCoverage(): track has no reads to normalize")
    }
    config.Logger.Printf("Normalizing track (rpm)")
    c := float64(1000000)/float64(n)
    track.Scale(c)
  }
  return track, n, nil
}
