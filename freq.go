package htmltable

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FreqOptions configures MakeFreqTable. The zero value gives ranked rows
// sorted by descending count with default headers and no truncation.
type FreqOptions[K cmp.Ordered] struct {
	// Labels maps raw keys to display values. Keys without an entry display
	// as themselves.
	Labels map[K]any
	// Headers overrides header cells by output column index: 0 is the rank
	// column, 1 the first value column, and so on. The indexing is the same
	// whether or not the rank column is shown.
	Headers map[int]any
	// MaxRows caps the number of data rows; zero or negative means no cap.
	// Truncation adds an ellipsis row, and percentages stay relative to the
	// full total.
	MaxRows int
	// OmitRanks drops the rank column.
	OmitRanks bool
	// Splitter expands one key into several label columns. It must return
	// the same number of columns for every key.
	Splitter func(K) []any
	// Order lists keys in the order they should appear, ahead of everything
	// else. Keys not listed keep their frequency order after the listed
	// ones.
	Order []K
}

type freqItem[K cmp.Ordered] struct {
	key   K
	count int
}

// countPrinter formats counts with thousands separators.
var countPrinter = message.NewPrinter(language.English)

// MakeFreqTable builds a Table summarizing a value-to-count mapping: one row
// per value with rank, label, count, and percentage columns, sorted by
// descending count (ties broken by ascending key), followed by a total row.
// Percentages share a table-wide precision: the smallest number of decimals
// that keeps a significant digit in every shown sub-1% row. Whole-number
// percentages render bare and left-aligned; fractional ones render with the
// shared precision and right-aligned.
func MakeFreqTable[K cmp.Ordered](freqs map[K]int, opts FreqOptions[K]) (*Table, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyFreqs
	}
	allItems := make([]freqItem[K], 0, len(freqs))
	for key, count := range freqs {
		allItems = append(allItems, freqItem[K]{key: key, count: count})
	}
	slices.SortFunc(allItems, func(a, b freqItem[K]) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})
	if len(opts.Order) > 0 {
		keys := make([]K, len(allItems))
		for i, item := range allItems {
			keys[i] = item.key
		}
		reordered := partialOrder(keys, opts.Order)
		for i, key := range reordered {
			allItems[i] = freqItem[K]{key: key, count: freqs[key]}
		}
	}
	total := 0
	for _, item := range allItems {
		total += item.count
	}
	items := allItems
	trunc := false
	if opts.MaxRows > 0 && len(allItems) > opts.MaxRows {
		items = allItems[:opts.MaxRows]
		trunc = true
	}
	digits := 0
	for _, item := range items {
		pct := 100 * float64(item.count) / float64(total)
		digits = max(digits, pctDigits(pct))
	}

	labelsLen := 1
	var rows []any
	for rowNum, item := range items {
		pct := 100 * float64(item.count) / float64(total)
		pctStr, pctAlign := formatPct(pct, digits)
		var labelCells []any
		if opts.Splitter == nil {
			label, ok := opts.Labels[item.key]
			if !ok {
				label = item.key
			}
			labelCells = []any{label}
		} else {
			labelCells = opts.Splitter(item.key)
			if rowNum == 0 {
				labelsLen = len(labelCells)
			} else if len(labelCells) != labelsLen {
				return nil, fmt.Errorf("%w (%d != %d)",
					ErrSplitterColumns, labelsLen, len(labelCells))
			}
		}
		row := make([]any, 0, labelsLen+3)
		if !opts.OmitRanks {
			row = append(row, rowNum+1)
		}
		row = append(row, labelCells...)
		row = append(row,
			map[string]any{"value": countPrinter.Sprintf("%d", item.count), "align": "right"},
			map[string]any{"value": pctStr, "align": pctAlign.String()},
		)
		rows = append(rows, row)
	}
	if trunc {
		rows = append(rows, []any{
			map[string]any{"value": "...", "width": labelsLen + 2, "align": "center"},
		})
	}
	totalPct, totalAlign := formatPct(100, digits)
	summary := []any{
		"(Total)",
		map[string]any{"value": countPrinter.Sprintf("%d", total), "align": "right"},
		map[string]any{"value": totalPct, "align": totalAlign.String()},
	}
	if !opts.OmitRanks {
		summary = append([]any{""}, summary...)
	}
	rows = append(rows, summary)

	return New(rows, Options{Header: freqHeaderRow(opts.Headers, labelsLen, !opts.OmitRanks)})
}

// freqHeaderRow synthesizes the header row: rank (blank), a Value cell
// spanning the label columns, then right-aligned Count and Percent, each
// overridable by output column index.
func freqHeaderRow(overrides map[int]any, labelsLen int, ranks bool) []any {
	cells := map[int]any{
		0: "",
		1: map[string]any{"value": "Value", "width": labelsLen},
		1 + labelsLen: map[string]any{"value": "Count", "align": "right"},
		2 + labelsLen: map[string]any{"value": "Percent", "align": "right"},
	}
	for i, cell := range overrides {
		cells[i] = cell
	}
	indexes := make([]int, 0, len(cells))
	for i := range cells {
		indexes = append(indexes, i)
	}
	slices.Sort(indexes)
	var row []any
	for _, i := range indexes {
		if i == 0 && !ranks {
			continue
		}
		row = append(row, cells[i])
	}
	return row
}

// pctDigits returns the number of decimals needed so a percentage keeps at
// least one significant digit: 1 for anything at or above 1%, growing as the
// value shrinks below 1% (0.04% needs 2).
func pctDigits(pct float64) int {
	if pct <= 0 {
		return 0
	}
	if pct >= 1 {
		return 1
	}
	return -int(math.Floor(math.Log10(pct)))
}

// formatPct formats a percentage under the shared precision rule: whole
// numbers render bare and left-aligned, fractional values render with the
// given decimal count and right-aligned.
func formatPct(pct float64, digits int) (string, Alignment) {
	if pct == math.Trunc(pct) {
		return fmt.Sprintf("%d%%", int(pct)), AlignLeft
	}
	return fmt.Sprintf("%.*f%%", digits, pct), AlignRight
}

// partialOrder reorders keys so that every key mentioned in order comes
// first, in order's sequence; unmentioned keys follow in their original
// relative order. Keys in order but absent from the input are ignored.
func partialOrder[K comparable](keys []K, order []K) []K {
	inKeys := make(map[K]bool, len(keys))
	for _, key := range keys {
		inKeys[key] = true
	}
	ordered := make([]K, 0, len(keys))
	picked := make(map[K]bool, len(order))
	for _, key := range order {
		if inKeys[key] && !picked[key] {
			ordered = append(ordered, key)
			picked[key] = true
		}
	}
	for _, key := range keys {
		if !picked[key] {
			ordered = append(ordered, key)
		}
	}
	return ordered
}
