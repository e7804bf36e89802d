package refsample

import (
	"fmt"

	"github.com/katalvlaran/growthref"
	"github.com/katalvlaran/growthref/lms"
)

// dataset is an immutable Indicator → Table map.
type dataset map[growthref.Indicator]*lms.Table

// Table implements growthref.Dataset.
func (d dataset) Table(ind growthref.Indicator) (*lms.Table, bool) {
	t, ok := d[ind]

	return t, ok
}

// mustTable builds a table from constant rows, panicking on defects:
// the rows are compiled-in data, so a failure here is a build mistake,
// not a runtime condition.
func mustTable(name string, inc lms.Increment, rows []lms.Record) *lms.Table {
	t, err := lms.NewTable(name, inc, rows)
	if err != nil {
		panic(fmt.Sprintf("refsample: %v", err))
	}

	return t
}
