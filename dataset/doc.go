// Package dataset reads clustering inputs.
//
// An input is a header-less CSV file whose first column is a numeric key and
// whose remaining columns are coordinates. Several inputs are combined by an
// inner join on the key, their coordinate columns concatenated left to right,
// and the result is ordered by key:
//
//	tbl, err := dataset.Load(ctx, store, []string{"input_1.csv", "input_2.csv.gz"},
//	    dataset.WithResourceController(rc),
//	)
//	res, err := kmeans.Fit(ctx, tbl.Rows, initial)
//
// Inputs ending in .gz, .zst or .lz4 are decompressed transparently.
package dataset
