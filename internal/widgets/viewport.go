package widgets

// viewport tracks a cursor over total rows and the first materialized row.
type viewport struct {
	Total  int
	Cursor int
	Offset int
}

// Home moves the cursor to the first row.
func (v *viewport) Home() bool {
	if v.Total == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	v.Cursor = 0
	return old != v.Cursor
}

// End moves the cursor to the last row.
func (v *viewport) End() bool {
	if v.Total == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	v.Cursor = v.Total - 1
	return old != v.Cursor
}

// PageUp moves the cursor up by one page of size rows.
func (v *viewport) PageUp(size int) bool {
	return v.MoveBy(-v.pageSize(size))
}

// PageDown moves the cursor down by one page of size rows.
func (v *viewport) PageDown(size int) bool {
	return v.MoveBy(v.pageSize(size))
}

// MoveBy shifts the cursor by delta, clamped to the rows.
func (v *viewport) MoveBy(delta int) bool {
	if v.Total == 0 {
		v.Cursor = 0
		return false
	}
	old := v.Cursor
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	v.Cursor += delta
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor >= v.Total {
		v.Cursor = v.Total - 1
	}
	return v.Cursor != old
}

func (v *viewport) pageSize(size int) int {
	if v.Total == 0 {
		return 0
	}
	if size <= 0 || size > v.Total {
		size = v.Total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// Follow adjusts Offset so the cursor stays within size visible rows.
func (v *viewport) Follow(size int) {
	if v.Total == 0 {
		v.Cursor = 0
		v.Offset = 0
		return
	}
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor >= v.Total {
		v.Cursor = v.Total - 1
	}
	if size <= 0 {
		v.Offset = 0
		return
	}
	maxOffset := v.Total - size
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if v.Cursor < v.Offset {
		v.Offset = v.Cursor
	}
	if upper := v.Offset + size - 1; v.Cursor > upper {
		v.Offset = v.Cursor - size + 1
	}
}

// Window returns the half-open range of rows visible at size.
func (v *viewport) Window(size int) (start, end int) {
	start = v.Offset
	end = start + size
	if size <= 0 || end > v.Total {
		end = v.Total
	}
	if start > end {
		start = end
	}
	return start, end
}
