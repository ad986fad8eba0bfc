package tabgenie

import (
	"errors"
	"fmt"
)

// MergeRegion is an inclusive rectangle of grid positions that form one
// merged cell.
type MergeRegion struct {
	FirstRow int `json:"first_row"`
	FirstCol int `json:"first_column"`
	LastRow  int `json:"last_row"`
	LastCol  int `json:"last_column"`
}

func (r MergeRegion) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.FirstRow, r.FirstCol, r.LastRow, r.LastCol)
}

func (r MergeRegion) overlaps(o MergeRegion) bool {
	return r.FirstRow <= o.LastRow && o.FirstRow <= r.LastRow &&
		r.FirstCol <= o.LastCol && o.FirstCol <= r.LastCol
}

// MergeError reports a merge region that was skipped.
type MergeError struct {
	Region MergeRegion
	Reason string
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge region %s skipped: %s", e.Region, e.Reason)
}

// Unwrap exposes the EMERGE code to ErrorCode.
func (e *MergeError) Unwrap() error {
	return Errorf(EMERGE, "merge region %s skipped: %s", e.Region, e.Reason)
}

// MaterializeMerges rewrites a dense grid into one anchor per merged region.
//
// The cell at the top-left corner of each region becomes the anchor and
// receives the region's span. Every other covered cell becomes a dummy that
// mirrors the anchor's value, header flags and highlight.
//
// Regions that fall outside the grid, are inverted or overlap a region
// applied earlier are skipped. The remaining regions are still applied and
// the returned error joins one *MergeError per skipped region.
func MaterializeMerges(t *Table, regions []MergeRegion) error {
	var errs []error
	var applied []MergeRegion

	for _, r := range regions {
		if reason := checkRegion(t, r, applied); reason != "" {
			errs = append(errs, &MergeError{Region: r, Reason: reason})
			continue
		}

		anchorPos := Position{Row: r.FirstRow, Col: r.FirstCol}
		anchor := t.Cell(anchorPos.Row, anchorPos.Col)
		anchor.Rowspan = r.LastRow - r.FirstRow + 1
		anchor.Colspan = r.LastCol - r.FirstCol + 1

		for i := r.FirstRow; i <= r.LastRow; i++ {
			for j := r.FirstCol; j <= r.LastCol; j++ {
				if i == anchorPos.Row && j == anchorPos.Col {
					continue
				}
				t.Cell(i, j).dummyOf(anchor, anchorPos)
			}
		}
		applied = append(applied, r)
	}

	return errors.Join(errs...)
}

func checkRegion(t *Table, r MergeRegion, applied []MergeRegion) string {
	if r.FirstRow < 0 || r.FirstCol < 0 {
		return "negative position"
	}
	if r.LastRow < r.FirstRow || r.LastCol < r.FirstCol {
		return "inverted rectangle"
	}
	for i := r.FirstRow; i <= r.LastRow; i++ {
		for j := r.FirstCol; j <= r.LastCol; j++ {
			if t.Cell(i, j) == nil {
				return fmt.Sprintf("position (%d,%d) outside grid", i, j)
			}
		}
	}
	for _, a := range applied {
		if r.overlaps(a) {
			return fmt.Sprintf("overlaps region %s", a)
		}
	}
	return ""
}
