package catalog

import "fmt"

// Row is one line of a parts table: name, description and an optional
// needs-spare flag that defaults to true.
type Row []any

// Config is an ordered parts table. Row order is preserved all the way to
// the assembled collection.
type Config []Row

type MalformedRowError struct {
	Index  int
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %v: %v", e.Index, e.Reason)
}

func parseRow(index int, row Row) (string, string, bool, error) {
	if len(row) < 2 {
		return "", "", false, &MalformedRowError{
			Index:  index,
			Reason: fmt.Sprintf("expected at least 2 fields, got %v", len(row)),
		}
	}
	if len(row) > 3 {
		return "", "", false, &MalformedRowError{
			Index:  index,
			Reason: fmt.Sprintf("expected at most 3 fields, got %v", len(row)),
		}
	}

	name, ok := row[0].(string)
	if !ok {
		return "", "", false, &MalformedRowError{Index: index, Reason: "name must be a string"}
	}

	description, ok := row[1].(string)
	if !ok {
		return "", "", false, &MalformedRowError{Index: index, Reason: "description must be a string"}
	}

	needsSpare := true
	if len(row) == 3 {
		needsSpare, ok = row[2].(bool)
		if !ok {
			return "", "", false, &MalformedRowError{Index: index, Reason: "needs-spare flag must be a bool"}
		}
	}

	return name, description, needsSpare, nil
}
