package sheets

// HeaderIndex maps canonical field keys to zero-based column positions.
// It is rebuilt from row 0 of every fetched range, never persisted, and
// immutable once built for that fetch. A field whose label is absent
// from the header row is simply missing from the index; its rows then
// carry the kind's default value.
type HeaderIndex map[string]int

// ResolveHeader matches the raw header row against the schema labels.
// Both sides go through NormalizeLabel, so emoji presentation, accents,
// NBSP and spacing differences cannot break the mapping. The first
// column matching a field wins; later duplicates are ignored silently,
// as are header cells matching no field. Never fails.
func ResolveHeader(headerRow []Cell, schema []Field) HeaderIndex {
	wanted := make(map[string]string, len(schema))
	for _, f := range schema {
		wanted[NormalizeLabel(f.Label)] = f.Key
	}

	idx := make(HeaderIndex, len(schema))
	for col, cell := range headerRow {
		key, ok := wanted[NormalizeLabel(cell.String())]
		if !ok {
			continue
		}
		if _, taken := idx[key]; taken {
			continue
		}
		idx[key] = col
	}
	return idx
}

// Column returns the column position for key and whether it resolved.
func (ix HeaderIndex) Column(key string) (int, bool) {
	col, ok := ix[key]
	return col, ok
}
