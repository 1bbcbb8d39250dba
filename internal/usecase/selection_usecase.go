package usecase

import (
	"sort"
	"time"

	"rentaudit/internal/domain"
)

// Exclusion drops a single known-misdated item from a month's bucket,
// e.g. a payment dated the last day of a month that belongs to the
// next month's statement.
type Exclusion struct {
	Month string    // bucket the item lands in, e.g. "2023-04"
	Date  time.Time // exact item date to drop
}

// MonthBucket is one calendar month's worth of ledger items.
type MonthBucket struct {
	Key   string // "2006-01"
	Items []domain.LineItem
}

// SelectionUseCase groups a validated ledger into month buckets and
// filters them to the billing period under calculation.
type SelectionUseCase struct {
	start      string
	end        string
	exclusions []Exclusion
}

// NewSelectionUseCase creates a new SelectionUseCase over an
// inclusive [startMonth, endMonth] range of year-month keys.
func NewSelectionUseCase(startMonth, endMonth string, exclusions []Exclusion) *SelectionUseCase {
	return &SelectionUseCase{
		start:      startMonth,
		end:        endMonth,
		exclusions: exclusions,
	}
}

// SelectMonths returns the in-range month buckets in ascending order,
// with exclusion rules applied.
func (uc *SelectionUseCase) SelectMonths(items []domain.LineItem) []MonthBucket {
	grouped := make(map[string][]domain.LineItem)
	for _, item := range items {
		key := item.MonthKey()
		if key < uc.start || key > uc.end {
			continue
		}
		grouped[key] = append(grouped[key], item)
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buckets := make([]MonthBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, MonthBucket{
			Key:   key,
			Items: uc.applyExclusions(key, grouped[key]),
		})
	}
	return buckets
}

func (uc *SelectionUseCase) applyExclusions(key string, items []domain.LineItem) []domain.LineItem {
	for _, ex := range uc.exclusions {
		if ex.Month != key {
			continue
		}
		kept := make([]domain.LineItem, 0, len(items))
		for _, item := range items {
			if item.Date.Equal(ex.Date) {
				continue
			}
			kept = append(kept, item)
		}
		items = kept
	}
	return items
}
