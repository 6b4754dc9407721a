package service

import (
	"context"
	"sort"

	"github.com/anthanhphan/go-file-board/internal/filehost/domain"
)

// listService produces ordered listings straight from the backend on every call.
type listService struct {
	core *FileServiceImpl
}

// newListService creates the listing use-case service.
func newListService(core *FileServiceImpl) *listService {
	return &listService{core: core}
}

// list re-scans the backend, drops hidden entries and sorts.
func (s *listService) list(ctx context.Context, order domain.SortOrder) ([]domain.FileInfo, error) {
	infos, err := s.visible(ctx)
	if err != nil {
		return nil, err
	}

	switch order {
	case domain.SortByExt:
		sortByExt(infos)
	default:
		sortByTimeDesc(infos)
	}
	return infos, nil
}

// visible returns every non-hidden entry.
func (s *listService) visible(ctx context.Context) ([]domain.FileInfo, error) {
	all, err := s.core.backend.List(ctx)
	if err != nil {
		return nil, err
	}

	out := all[:0]
	for _, info := range all {
		if info.Hidden() {
			continue
		}
		out = append(out, info)
	}
	return out, nil
}

// sortByTimeDesc orders newest first; equal timestamps fall back to name ascending.
func sortByTimeDesc(infos []domain.FileInfo) {
	sort.SliceStable(infos, func(i, j int) bool {
		if !infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].CreatedAt.After(infos[j].CreatedAt)
		}
		return infos[i].Name < infos[j].Name
	})
}

// sortByExt orders by (lower-cased extension, name) ascending.
func sortByExt(infos []domain.FileInfo) {
	sort.SliceStable(infos, func(i, j int) bool {
		ei, ej := infos[i].Extension(), infos[j].Extension()
		if ei != ej {
			return ei < ej
		}
		return infos[i].Name < infos[j].Name
	})
}

// sortByAge orders oldest first; equal timestamps fall back to name ascending.
func sortByAge(infos []domain.FileInfo) {
	sort.SliceStable(infos, func(i, j int) bool {
		if !infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].CreatedAt.Before(infos[j].CreatedAt)
		}
		return infos[i].Name < infos[j].Name
	})
}
