package service

import (
	"sort"

	"timegrid/modules/availability/entity"
)

// CountAt returns how many of the given participants marked the cell
// available. O(participants) per call; read-only.
func CountAt(date entity.CandidateDate, slot entity.TimeSlot, m *Matrix, participantIDs []string) int {
	count := 0
	for _, pid := range participantIDs {
		if m.Get(pid, date.Key, slot.Start) {
			count++
		}
	}
	return count
}

// Rank aggregates the matrix over the whole grid in one pass and
// returns the best times: descending by count, ties broken by earlier
// date in canonical grid order, then earlier slot start. Slots nobody
// can attend are excluded, and topN truncates without ever padding
// with zero-count entries. topN <= 0 means no truncation.
func Rank(dates []entity.CandidateDate, slots []entity.TimeSlot, m *Matrix, participantIDs []string, topN int) []entity.BestTime {
	type scored struct {
		dateIdx int
		slotIdx int
		best    entity.BestTime
	}

	// One consistent snapshot for the whole pass.
	snap := m.snapshot()

	ranked := []scored{}
	for di, date := range dates {
		for si, slot := range slots {
			var ids []string
			for _, pid := range participantIDs {
				if snap[cellKey{pid, date.Key, slot.Start}] {
					ids = append(ids, pid)
				}
			}
			if len(ids) == 0 {
				continue
			}
			sort.Strings(ids)
			ranked = append(ranked, scored{
				dateIdx: di,
				slotIdx: si,
				best: entity.BestTime{
					DateKey:        date.Key,
					SlotStart:      slot.Start,
					SlotEnd:        slot.End,
					Count:          len(ids),
					ParticipantIDs: ids,
				},
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].best.Count != ranked[j].best.Count {
			return ranked[i].best.Count > ranked[j].best.Count
		}
		if ranked[i].dateIdx != ranked[j].dateIdx {
			return ranked[i].dateIdx < ranked[j].dateIdx
		}
		return ranked[i].slotIdx < ranked[j].slotIdx
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	result := make([]entity.BestTime, len(ranked))
	for i, s := range ranked {
		result[i] = s.best
	}
	return result
}
