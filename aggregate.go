package main

import "time"

// GroupKey identifies a report group. Level is empty when grouping by
// prison only.
type GroupKey struct {
	PrisonID string
	Level    string
}

// AggregateRow holds the counts for one report group.
type AggregateRow struct {
	GroupKey
	Population int
	Overdue    int
}

// Aggregates holds population and overdue counts for every group seen in
// the joined data, including prisons outside the allow-list.
type Aggregates struct {
	Granularity Granularity
	Population  map[GroupKey]int
	Overdue     map[GroupKey]int
}

func keyFor(record JoinedRecord, g Granularity) GroupKey {
	if g == GranularityFacility {
		return GroupKey{PrisonID: record.PrisonID}
	}
	return GroupKey{PrisonID: record.PrisonID, Level: record.Level}
}

func countBy(records []JoinedRecord, g Granularity, keep func(JoinedRecord) bool) map[GroupKey]int {
	counts := map[GroupKey]int{}
	for _, record := range records {
		if keep != nil && !keep(record) {
			continue
		}
		counts[keyFor(record, g)]++
	}
	return counts
}

// aggregate counts the joined population and the overdue subset per group.
func aggregate(records []JoinedRecord, today time.Time, g Granularity) Aggregates {
	today = dateOnly(today)
	return Aggregates{
		Granularity: g,
		Population:  countBy(records, g, nil),
		Overdue: countBy(records, g, func(record JoinedRecord) bool {
			return record.Overdue(today)
		}),
	}
}

// reportKeys materialises the allow-listed groups in output order: prisons
// in allow-list order, then levels in ascending order.
func reportKeys(g Granularity) []GroupKey {
	if g == GranularityFacility {
		keys := make([]GroupKey, 0, len(prisons))
		for _, prison := range prisons {
			keys = append(keys, GroupKey{PrisonID: prison.ID})
		}
		return keys
	}
	keys := make([]GroupKey, 0, len(prisons)*len(levels))
	for _, prison := range prisons {
		for _, level := range levels {
			keys = append(keys, GroupKey{PrisonID: prison.ID, Level: level.ID})
		}
	}
	return keys
}

// Rows left-joins the counts onto the allow-listed groups. Groups with no
// population are dropped unless includeEmpty is set; a populated group
// without overdue prisoners reports zero.
func (a Aggregates) Rows(includeEmpty bool) []AggregateRow {
	keys := reportKeys(a.Granularity)
	rows := make([]AggregateRow, 0, len(keys))
	for _, key := range keys {
		population, ok := a.Population[key]
		if !ok && !includeEmpty {
			continue
		}
		rows = append(rows, AggregateRow{
			GroupKey:   key,
			Population: population,
			Overdue:    a.Overdue[key],
		})
	}
	return rows
}

// Excluded returns the populated prisons that the allow-list drops.
func (a Aggregates) Excluded() map[string]int {
	excluded := map[string]int{}
	for key, population := range a.Population {
		if _, ok := prisonNames[key.PrisonID]; ok {
			if a.Granularity == GranularityFacility {
				continue
			}
			if _, known := levelNames[key.Level]; known {
				continue
			}
		}
		excluded[key.PrisonID] += population
	}
	return excluded
}

// FacilitySummary totals a prison's groups across levels.
type FacilitySummary struct {
	PrisonID   string
	Name       string
	Population int
	Overdue    int
}

func summarizeFacilities(rows []AggregateRow) []FacilitySummary {
	summaries := []FacilitySummary{}
	index := map[string]int{}
	for _, row := range rows {
		idx, ok := index[row.PrisonID]
		if !ok {
			idx = len(summaries)
			index[row.PrisonID] = idx
			summaries = append(summaries, FacilitySummary{
				PrisonID: row.PrisonID,
				Name:     prisonNames[row.PrisonID],
			})
		}
		summaries[idx].Population += row.Population
		summaries[idx].Overdue += row.Overdue
	}
	return summaries
}
