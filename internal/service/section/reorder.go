package section_service

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/model"
	section_repository "portfolio-content-service/internal/repository/section"
)

// Reordering has two strategies. A drag-and-drop move of one section is
// the common case and is applied as a hole-shift touching only the rows
// between the old and new index. Everything else (membership changes,
// swaps, arbitrary permutations) goes through a two-pass full renumber.
const (
	strategyNoop         = "noop"
	strategySingleMove   = "single_move"
	strategyFullRenumber = "full_renumber"
)

// sectionRecord is the engine's working unit: position state detached
// from the full row, indexed by current order.
type sectionRecord struct {
	id       int64
	position int32
}

type reorderPlan struct {
	strategy string
	oldIndex int
	newIndex int
	movedID  int64
}

func recordsFromSections(sections []*model.Section) []sectionRecord {
	records := make([]sectionRecord, len(sections))
	for i, s := range sections {
		records[i] = sectionRecord{id: s.ID, position: s.Position}
	}
	return records
}

func sameIDSet(current []sectionRecord, target []int64) bool {
	if len(current) != len(target) {
		return false
	}
	currentIDs := make([]int64, len(current))
	for i, r := range current {
		currentIDs[i] = r.id
	}
	targetIDs := make([]int64, len(target))
	copy(targetIDs, target)
	sort.Slice(currentIDs, func(i, j int) bool { return currentIDs[i] < currentIDs[j] })
	sort.Slice(targetIDs, func(i, j int) bool { return targetIDs[i] < targetIDs[j] })
	for i := range currentIDs {
		if currentIDs[i] != targetIDs[i] {
			return false
		}
	}
	return true
}

// planReorder decides the strategy for moving current into target order.
// A single move is recognized when exactly one changed id attains the
// maximum index delta and reinserting it at its new index reproduces
// the target exactly. Ties at the maximum (an adjacent swap reads as
// two equal deltas) are ambiguous and renumber instead.
func planReorder(current []sectionRecord, target []int64) reorderPlan {
	if !sameIDSet(current, target) {
		return reorderPlan{strategy: strategyFullRenumber}
	}

	newIndexByID := make(map[int64]int, len(target))
	for i, id := range target {
		newIndexByID[id] = i
	}

	changed := 0
	maxDelta := 0
	maxCount := 0
	var moved reorderPlan
	for oldIndex, record := range current {
		newIndex := newIndexByID[record.id]
		if newIndex == oldIndex {
			continue
		}
		changed++
		delta := newIndex - oldIndex
		if delta < 0 {
			delta = -delta
		}
		switch {
		case delta > maxDelta:
			maxDelta = delta
			maxCount = 1
			moved = reorderPlan{oldIndex: oldIndex, newIndex: newIndex, movedID: record.id}
		case delta == maxDelta:
			maxCount++
		}
	}

	if changed == 0 {
		return reorderPlan{strategy: strategyNoop}
	}
	if maxCount != 1 || !moveReproducesTarget(current, target, moved.oldIndex, moved.newIndex) {
		return reorderPlan{strategy: strategyFullRenumber}
	}
	moved.strategy = strategySingleMove
	return moved
}

// moveReproducesTarget simulates extracting the record at oldIndex and
// reinserting it at newIndex, then compares against the target order.
func moveReproducesTarget(current []sectionRecord, target []int64, oldIndex, newIndex int) bool {
	simulated := make([]int64, 0, len(current))
	for i, r := range current {
		if i != oldIndex {
			simulated = append(simulated, r.id)
		}
	}
	simulated = append(simulated, 0)
	copy(simulated[newIndex+1:], simulated[newIndex:])
	simulated[newIndex] = current[oldIndex].id

	for i := range simulated {
		if simulated[i] != target[i] {
			return false
		}
	}
	return true
}

func maxPosition(records []sectionRecord) int32 {
	var max int32
	for _, r := range records {
		if r.position > max {
			max = r.position
		}
	}
	return max
}

// applySingleMove performs the hole-shift: the moved row is parked at a
// temporary position past the maximum, the rows between old and new
// index chain into the freed slot one by one, and the moved row lands
// in the last freed position. Exactly |new-old|+2 writes.
func (s *SectionService) applySingleMove(
	ctx context.Context,
	repo section_repository.Repository,
	records []sectionRecord,
	plan reorderPlan,
) error {
	tempPosition := maxPosition(records) + 1

	if err := repo.UpdatePosition(ctx, plan.movedID, tempPosition); err != nil {
		return err
	}

	free := records[plan.oldIndex].position
	if plan.newIndex > plan.oldIndex {
		for i := plan.oldIndex + 1; i <= plan.newIndex; i++ {
			previous := records[i].position
			if err := repo.UpdatePosition(ctx, records[i].id, free); err != nil {
				return err
			}
			free = previous
		}
	} else {
		for i := plan.oldIndex - 1; i >= plan.newIndex; i-- {
			previous := records[i].position
			if err := repo.UpdatePosition(ctx, records[i].id, free); err != nil {
				return err
			}
			free = previous
		}
	}

	return repo.UpdatePosition(ctx, plan.movedID, free)
}

// applyFullRenumber reassigns 1..N in target order in two passes. The
// first pass parks every matched row past the current maximum so the
// second pass cannot collide with a position that is still occupied.
// Target ids with no matching section are skipped. A target that omits
// a live section leaves that row on its old position, which the unique
// page/position constraint rejects, rolling the reorder back.
func (s *SectionService) applyFullRenumber(
	ctx context.Context,
	repo section_repository.Repository,
	records []sectionRecord,
	target []int64,
) error {
	known := make(map[int64]bool, len(records))
	for _, r := range records {
		known[r.id] = true
	}

	offset := maxPosition(records) + int32(len(target)) + 1

	for i, id := range target {
		if !known[id] {
			continue
		}
		if err := repo.UpdatePosition(ctx, id, offset+int32(i)); err != nil {
			return err
		}
	}

	var next int32 = 1
	for _, id := range target {
		if !known[id] {
			continue
		}
		if err := repo.UpdatePosition(ctx, id, next); err != nil {
			return err
		}
		next++
	}
	return nil
}

func (s *SectionService) Reorder(ctx context.Context, pageID int64, orderedIDs []int64) (err error) {
	if len(orderedIDs) == 0 {
		return nil
	}

	sections, err := s.sectionRepo.GetByPage(ctx, pageID)
	if err != nil {
		s.log.Error("Failed to load sections for reorder",
			slog.Int64("page_id", pageID),
			slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if len(sections) == 0 {
		return nil
	}

	records := recordsFromSections(sections)
	plan := planReorder(records, orderedIDs)
	if plan.strategy == strategyNoop {
		s.log.Debug("Reorder target matches current order", slog.Int64("page_id", pageID))
		s.metrics.IncrementReorderStrategy(strategyNoop)
		return nil
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
				s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	repo := tx.SectionRepository()
	strategy := plan.strategy

	if strategy == strategySingleMove {
		// The in-memory snapshot must still agree with the plan; if it
		// does not, the safe path renumbers everything.
		if records[plan.oldIndex].id != plan.movedID {
			s.log.Warn("Moved section mismatch, falling back to full renumber",
				slog.Int64("page_id", pageID),
				slog.Int64("moved_id", plan.movedID))
			strategy = strategyFullRenumber
		} else if err := s.applySingleMove(ctx, repo, records, plan); err != nil {
			s.log.Error("Hole-shift failed",
				slog.Int64("page_id", pageID),
				slog.String("error", err.Error()))
			s.metrics.IncrementSectionOperations("reorder", false)
			if errors.Is(err, custom_errors.ErrSectionPositionConflict) {
				return custom_errors.ErrSectionPositionConflict
			}
			return custom_errors.ErrSectionReorderFailed
		}
	}

	if strategy == strategyFullRenumber {
		if err := s.applyFullRenumber(ctx, repo, records, orderedIDs); err != nil {
			s.log.Error("Full renumber failed",
				slog.Int64("page_id", pageID),
				slog.String("error", err.Error()))
			s.metrics.IncrementSectionOperations("reorder", false)
			if errors.Is(err, custom_errors.ErrSectionPositionConflict) {
				return custom_errors.ErrSectionPositionConflict
			}
			return custom_errors.ErrSectionReorderFailed
		}
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit reorder transaction",
			slog.Int64("page_id", pageID),
			slog.String("error", err.Error()))
		s.metrics.IncrementSectionOperations("reorder", false)
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementReorderStrategy(strategy)
	s.metrics.IncrementSectionOperations("reorder", true)
	s.log.Debug("Reordered sections",
		slog.Int64("page_id", pageID),
		slog.String("strategy", strategy),
		slog.Int("count", len(orderedIDs)))
	return nil
}
