// Package spec loads a query specification and its CSV tables into the
// initial subproblem the rewriting engine consumes.
//
// The YAML specification file carries five keys:
//
//	GlobalSchema:     [A:int, B:double, C:string, D:int]
//	OutputAttributes: [[A, B, C], [B, C, D]]
//	Tables:           [[t1.csv, "3", "0.5"], ...]
//	M:                [[[B], [A], 1], ...]
//	S:                [[[A], [C], [B], 1], ...]
//
// GlobalSchema lists the attribute names in bit order; an optional
// ":int", ":double" or ":string" suffix selects the column parser (bare
// names default to string). OutputAttributes lists the output groups
// (duplicates accumulate as counts). Each Tables entry names a CSV file
// under the tables directory together with its degree constraint and the
// weight of that constraint in the global bound Π constraintᵢ^weightᵢ.
// M entries are (Y columns, X columns, count) monotonicity witnesses; S
// entries are (Y, Z, X, count) submodularity witnesses.
//
// Each CSV's header row is matched against the global schema to derive
// the table's attribute mask; every data row is parsed cell by cell with
// the schema's typed parsers. The loaded tables seed T_tables and the
// demand multiset D (one demand per stacked table); T_dicts starts
// empty.
//
// A defect in GlobalSchema itself — an unknown type, a duplicate name, a
// schema wider than the mask width — is returned on its own, wrapping
// ErrSpecInvalid, before anything else is checked. All other structural
// problems — unknown columns, unparsable cells, overlap in witness masks
// — are aggregated with go-multierror and returned wrapping
// ErrSpecInvalid, so one load reports every such defect at once.
package spec
