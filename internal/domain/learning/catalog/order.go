package catalog

import "sort"

// SortDomains orders domains by order_position, then insertion order.
func SortDomains(rows []*Domain) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OrderPosition != rows[j].OrderPosition {
			return rows[i].OrderPosition < rows[j].OrderPosition
		}
		return rows[i].InsertSeq < rows[j].InsertSeq
	})
}

// SortTopics orders topics by order_position, then insertion order.
func SortTopics(rows []*Topic) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OrderPosition != rows[j].OrderPosition {
			return rows[i].OrderPosition < rows[j].OrderPosition
		}
		return rows[i].InsertSeq < rows[j].InsertSeq
	})
}

// SortContentItems orders items by type, order_position, then insertion order.
func SortContentItems(rows []*ContentItem) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Type != rows[j].Type {
			return rows[i].Type < rows[j].Type
		}
		if rows[i].OrderPosition != rows[j].OrderPosition {
			return rows[i].OrderPosition < rows[j].OrderPosition
		}
		return rows[i].InsertSeq < rows[j].InsertSeq
	})
}
