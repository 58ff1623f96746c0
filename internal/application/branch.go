package application

import (
	"context"
	"errors"
	"fmt"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/output"
)

type BranchService struct {
	branches output.TranslationBranchRepository
}

func NewBranchService(branches output.TranslationBranchRepository) *BranchService {
	return &BranchService{branches: branches}
}

// OpenBranch returns the incomplete branch named after legalCode, creating it
// when none exists, and makes sure the legal code is tracked by it.
func (s *BranchService) OpenBranch(ctx context.Context, legalCode *entities.LegalCode) (*entities.TranslationBranch, error) {
	name := legalCode.BranchName()
	if len(name) > entities.MaxBranchNameLength {
		return nil, fmt.Errorf("%w: %q", domain.ErrBranchNameTooLong, name)
	}

	branch, err := s.branches.FindIncompleteByName(ctx, name)
	switch {
	case errors.Is(err, domain.ErrBranchNotFound):
		branch = &entities.TranslationBranch{
			BranchName:   name,
			Version:      legalCode.License.Version,
			LanguageCode: legalCode.LanguageCode,
			LegalCodeIDs: []uint{legalCode.ID},
		}
		if err := s.branches.Create(ctx, branch); err != nil {
			return nil, fmt.Errorf("create branch: %w", err)
		}
		return branch, nil
	case err != nil:
		return nil, fmt.Errorf("find branch %s: %w", name, err)
	}

	if !branch.HasLegalCode(legalCode.ID) {
		if err := s.branches.AddLegalCode(ctx, branch.ID, legalCode.ID); err != nil {
			return nil, fmt.Errorf("add legal code to branch: %w", err)
		}
		branch.LegalCodeIDs = append(branch.LegalCodeIDs, legalCode.ID)
	}
	return branch, nil
}

// CompleteBranch marks the branch complete; a new branch with the same name
// may be opened afterwards.
func (s *BranchService) CompleteBranch(ctx context.Context, branchID uint) error {
	branch, err := s.branches.FindByID(ctx, branchID)
	if err != nil {
		return err
	}
	if branch.Complete {
		return domain.ErrBranchComplete
	}
	branch.Complete = true
	return s.branches.Update(ctx, branch)
}
