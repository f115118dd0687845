package landmask

import (
	"errors"
	"reflect"
	"testing"
)

func TestAggregateSumRejectsNonIntegralRatio(t *testing.T) {
	indicator := NewLayer(testGrid(6, 6, 10), 0)
	coarse := testGrid(2, 2, 25)

	_, err := AggregateSum(indicator, coarse, t.TempDir(), "water")
	if !errors.Is(err, ErrGridMismatch) {
		t.Errorf("got %v, want ErrGridMismatch", err)
	}
}

func TestAggregateSumCountsWindowMatches(t *testing.T) {
	fine := testGrid(6, 6, 10)
	coarse := fine.WithResolution(30)

	// Quadrants of 3x3 fine pixels per coarse cell: all nine match in the
	// top-left, two in the top-right, none below.
	indicator := NewLayer(fine, 0)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			indicator.Data[row*fine.Cols+col] = 1
		}
	}
	indicator.Data[0*fine.Cols+4] = 1
	indicator.Data[2*fine.Cols+5] = 1

	counts, err := AggregateSum(indicator, coarse, t.TempDir(), "tree")
	if err != nil {
		t.Fatal(err)
	}

	want := []uint16{9, 2, 0, 0}
	if !reflect.DeepEqual(counts.Data, want) {
		t.Errorf("got %v, want %v", counts.Data, want)
	}
	if !sameGeometry(counts.Grid, coarse) {
		t.Errorf("count grid %+v does not match coarse grid %+v", counts.Grid, coarse)
	}
}
