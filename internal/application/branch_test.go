package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
)

func TestBranchService_OpenBranchCreatesOnce(t *testing.T) {
	_, fr, _ := fixtureLegalCodes()
	repo := newFakeBranches()
	svc := NewBranchService(repo)
	ctx := context.Background()

	b, err := svc.OpenBranch(ctx, fr)
	require.NoError(t, err)
	assert.Equal(t, "cc4-fr", b.BranchName)
	assert.Equal(t, "4.0", b.Version)
	assert.Equal(t, []uint{fr.ID}, b.LegalCodeIDs)

	again, err := svc.OpenBranch(ctx, fr)
	require.NoError(t, err)
	assert.Equal(t, b.ID, again.ID)
	assert.Equal(t, 1, repo.created)
}

func TestBranchService_OpenBranchAddsLegalCode(t *testing.T) {
	_, fr, _ := fixtureLegalCodes()
	byFr := &entities.LegalCode{ID: 10, LicenseID: 2, LanguageCode: "fr",
		License: &entities.License{ID: 2, LicenseCode: "by", Version: "4.0"}}
	svc := NewBranchService(newFakeBranches())
	ctx := context.Background()

	_, err := svc.OpenBranch(ctx, fr)
	require.NoError(t, err)
	b, err := svc.OpenBranch(ctx, byFr)
	require.NoError(t, err)

	assert.Equal(t, []uint{fr.ID, byFr.ID}, b.LegalCodeIDs)
}

func TestBranchService_CompleteThenReopen(t *testing.T) {
	_, fr, _ := fixtureLegalCodes()
	repo := newFakeBranches()
	svc := NewBranchService(repo)
	ctx := context.Background()

	b, err := svc.OpenBranch(ctx, fr)
	require.NoError(t, err)
	require.NoError(t, svc.CompleteBranch(ctx, b.ID))
	assert.ErrorIs(t, svc.CompleteBranch(ctx, b.ID), domain.ErrBranchComplete)

	next, err := svc.OpenBranch(ctx, fr)
	require.NoError(t, err)
	assert.NotEqual(t, b.ID, next.ID)
	assert.Equal(t, 2, repo.created)
}

func TestBranchService_NameTooLong(t *testing.T) {
	lc := &entities.LegalCode{ID: 1, LanguageCode: "fr",
		License: &entities.License{LicenseCode: strings.Repeat("x", 40), Version: "1.0"}}

	_, err := NewBranchService(newFakeBranches()).OpenBranch(context.Background(), lc)
	assert.ErrorIs(t, err, domain.ErrBranchNameTooLong)
}
