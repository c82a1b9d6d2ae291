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
import   "math"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestResample1(t *testing.T) {

  values := []float64{1, 2, 3, 4, 5, 6}
  result := Resample(values, 3)

  if len(result) != 3 {
    t.Error("TestResample1 failed!")
  }
  if math.Abs(result[0] - 1.5) > 1e-8 ||
     math.Abs(result[1] - 3.5) > 1e-8 ||
     math.Abs(result[2] - 5.5) > 1e-8 {
    t.Error("TestResample1 failed!")
  }
  // resampling to the input length is the identity
  result = Resample(values, 6)

  for i := 0; i < len(values); i++ {
    if math.Abs(result[i] - values[i]) > 1e-8 {
      t.Error("TestResample1 failed!")
    }
  }
}

func TestResample2(t *testing.T) {

  // uneven block boundaries: [0,1), [1,3), [3,5)
  values := []float64{1, 2, 3, 4, 5}
  result := Resample(values, 3)

  if math.Abs(result[0] - 1.0) > 1e-8 ||
     math.Abs(result[1] - 2.5) > 1e-8 ||
     math.Abs(result[2] - 4.5) > 1e-8 {
    t.Error("TestResample2 failed!")
  }
}

func TestResample3(t *testing.T) {

  // resampling a constant array yields a constant array
  values := make([]float64, 2377)
  for i := 0; i < len(values); i++ {
    values[i] = 4.2
  }
  result := Resample(values, 1500)

  if len(result) != 1500 {
    t.Error("TestResample3 failed!")
  }
  for i := 0; i < len(result); i++ {
    if math.Abs(result[i] - 4.2) > 1e-8 {
      t.Error("TestResample3 failed!")
    }
  }
}

func TestResample4(t *testing.T) {

  // NaN values are skipped when averaging
  values := []float64{1.0, math.NaN(), 3.0, math.NaN()}
  result := Resample(values, 2)

  if math.Abs(result[0] - 1.0) > 1e-8 ||
     math.Abs(result[1] - 3.0) > 1e-8 {
    t.Error("TestResample4 failed!")
  }
}

func TestResample5(t *testing.T) {

  // blocks without defined values fall back to zero
  values := []float64{math.NaN(), math.NaN()}
  result := Resample(values, 2)

  if result[0] != 0.0 || result[1] != 0.0 {
    t.Error("TestResample5 failed!")
  }

  result = Resample([]float64{}, 3)

  if len(result) != 3 {
    t.Error("TestResample5 failed!")
  }
  if result[0] != 0.0 || result[1] != 0.0 || result[2] != 0.0 {
    t.Error("TestResample5 failed!")
  }
}

func TestResample6(t *testing.T) {

  // upsampling produces empty blocks: [0,0), [0,1), [1,1), [1,2)
  values := []float64{1, 2}
  result := Resample(values, 4)

  if len(result) != 4 {
    t.Error("TestResample6 failed!")
  }
  if result[0] != 0.0 || result[1] != 1.0 || result[2] != 0.0 || result[3] != 2.0 {
    t.Error("TestResample6 failed!")
  }
}

func TestResample7(t *testing.T) {

  // every input element is assigned to exactly one block
  values := make([]float64, 3001)
  for i := 0; i < len(values); i++ {
    values[i] = 1.0
  }
  result := Resample(values, 1500)

  sum := 0.0
  for k := 0; k < 1500; k++ {
    from := (k+0)*len(values)/1500
    to   := (k+1)*len(values)/1500
    sum += result[k]*float64(to-from)
  }
  if math.Abs(sum - 3001.0) > 1e-8 {
    t.Error("TestResample7 failed!")
  }
}
