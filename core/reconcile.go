package core

import "strings"

// Reconcile maps an input header row onto the schema's canonical order
// and returns the plan the row processor replays for every data row.
//
// Matching is two-pass per canonical column: an exact match on the
// normalized spelling first, then a synonym-map match. When two
// canonical columns would claim the same input column, the one earlier
// in schema order wins and the later one stays absent. Reconciling the
// same header row twice yields the same plan.
//
// Missing required columns do not stop reconciliation. The caller reads
// MissingRequired from the plan and decides whether to go on.
func Reconcile(schema *Schema, inputHeaders []string) *ReconciliationPlan {
	normalized := make([]string, len(inputHeaders))
	for i, h := range inputHeaders {
		normalized[i] = NormalizeHeader(h)
	}

	// All input positions per normalized spelling, so a duplicated
	// header can still serve a second canonical column.
	positions := make(map[string][]int, len(normalized))
	for i, n := range normalized {
		positions[n] = append(positions[n], i)
	}

	plan := &ReconciliationPlan{
		ColumnOrder: make([]int, len(schema.Headers)),
	}
	claimed := make([]bool, len(inputHeaders))

	for ci, h := range schema.Headers {
		idx := Absent

		for _, j := range positions[NormalizeHeader(h.Name)] {
			if !claimed[j] {
				idx = j
				break
			}
		}
		if idx == Absent {
			for j, n := range normalized {
				if claimed[j] {
					continue
				}
				if canonical, ok := schema.Synonyms[n]; ok && canonical == h.Name {
					idx = j
					break
				}
			}
		}

		plan.ColumnOrder[ci] = idx
		if idx != Absent {
			claimed[idx] = true
		} else if h.Required {
			plan.MissingRequired = append(plan.MissingRequired, h.Name)
		}
	}

	for j, raw := range inputHeaders {
		if !claimed[j] {
			plan.Unmatched = append(plan.Unmatched, strings.TrimSpace(raw))
		}
	}

	return plan
}
