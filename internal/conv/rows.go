package conv

// Flatten copies rows into one row-major buffer of len(rows)*dim values.
// Every row is assumed to hold at least dim values; extra values are ignored.
func Flatten(rows [][]float64, dim int) []float64 {
	flat := make([]float64, len(rows)*dim)
	for i, row := range rows {
		copy(flat[i*dim:(i+1)*dim], row[:dim])
	}
	return flat
}

// Unflatten splits a row-major buffer into rows of dim values.
// The rows share one freshly allocated backing array, not flat's.
func Unflatten(flat []float64, dim int) [][]float64 {
	if dim <= 0 {
		return nil
	}
	n := len(flat) / dim
	backing := make([]float64, n*dim)
	copy(backing, flat)

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = backing[i*dim : (i+1)*dim : (i+1)*dim]
	}
	return rows
}
