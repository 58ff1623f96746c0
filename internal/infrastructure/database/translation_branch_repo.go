package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"legaltext/internal/domain"
	"legaltext/internal/domain/entities"
	"legaltext/internal/ports/output"
)

var _ output.TranslationBranchRepository = (*TranslationBranchRepository)(nil)

type TranslationBranchRepository struct {
	db DBTX
}

func NewTranslationBranchRepository(db DBTX) *TranslationBranchRepository {
	return &TranslationBranchRepository{db: db}
}

const selectBranch = `SELECT id, branch_name, version, language_code, last_transifex_update,
	complete, created_at, updated_at
FROM translation_branches`

// Create inserts the branch and its legal code links in one transaction.
// A second incomplete branch with the same name is rejected with
// domain.ErrDuplicateIncompleteBranch.
func (r *TranslationBranchRepository) Create(ctx context.Context, branch *entities.TranslationBranch) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var (
			id                   int64
			createdAt, updatedAt pgtype.Timestamptz
		)
		err := tx.QueryRow(ctx,
			`INSERT INTO translation_branches (branch_name, version, language_code, last_transifex_update, complete)
			VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`,
			branch.BranchName, branch.Version, branch.LanguageCode,
			timeToPgtypeTimestamptz(branch.LastTransifexUpdate), branch.Complete,
		).Scan(&id, &createdAt, &updatedAt)
		if err != nil {
			return err
		}
		for _, lcID := range branch.LegalCodeIDs {
			if err := addLegalCode(ctx, tx, uint(id), lcID); err != nil {
				return err
			}
		}
		branch.ID = uint(id)
		branch.CreatedAt = pgtypeTimestamptzToTime(createdAt)
		branch.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
		return nil
	})
	if isUniqueViolation(err) {
		return fmt.Errorf("create translation branch: %w", domain.ErrDuplicateIncompleteBranch)
	}
	if err != nil {
		return fmt.Errorf("create translation branch: %w", err)
	}
	return nil
}

func (r *TranslationBranchRepository) FindByID(ctx context.Context, id uint) (*entities.TranslationBranch, error) {
	return r.findOne(ctx, "get translation branch by id", "id = $1", int64(id))
}

func (r *TranslationBranchRepository) FindIncompleteByName(ctx context.Context, branchName string) (*entities.TranslationBranch, error) {
	return r.findOne(ctx, "get incomplete translation branch", "branch_name = $1 AND NOT complete", branchName)
}

func (r *TranslationBranchRepository) findOne(ctx context.Context, what, where string, arg any) (*entities.TranslationBranch, error) {
	var (
		b                    entities.TranslationBranch
		id                   int64
		lastUpdate           pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectBranch+" WHERE "+where, arg).Scan(
		&id, &b.BranchName, &b.Version, &b.LanguageCode, &lastUpdate,
		&b.Complete, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, notFound(err, domain.ErrBranchNotFound, what)
	}
	b.ID = uint(id)
	b.LastTransifexUpdate = pgtypeTimestamptzToTime(lastUpdate)
	b.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	b.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)

	rows, err := r.db.Query(ctx,
		"SELECT legal_code_id FROM translation_branch_legal_codes WHERE branch_id = $1 ORDER BY legal_code_id",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	for _, lcID := range ids {
		b.LegalCodeIDs = append(b.LegalCodeIDs, uint(lcID))
	}
	return &b, nil
}

func addLegalCode(ctx context.Context, db DBTX, branchID, legalCodeID uint) error {
	_, err := db.Exec(ctx,
		`INSERT INTO translation_branch_legal_codes (branch_id, legal_code_id)
		VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		int64(branchID), int64(legalCodeID),
	)
	return err
}

// AddLegalCode links a legal code to the branch; linking twice is a no-op.
func (r *TranslationBranchRepository) AddLegalCode(ctx context.Context, branchID, legalCodeID uint) error {
	if err := addLegalCode(ctx, r.db, branchID, legalCodeID); err != nil {
		return fmt.Errorf("add legal code to branch: %w", err)
	}
	return nil
}

func (r *TranslationBranchRepository) Update(ctx context.Context, branch *entities.TranslationBranch) error {
	var updatedAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx,
		`UPDATE translation_branches SET
			branch_name = $1, version = $2, language_code = $3,
			last_transifex_update = $4, complete = $5, updated_at = now()
		WHERE id = $6 RETURNING updated_at`,
		branch.BranchName, branch.Version, branch.LanguageCode,
		timeToPgtypeTimestamptz(branch.LastTransifexUpdate), branch.Complete, int64(branch.ID),
	).Scan(&updatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("update translation branch: %w", domain.ErrDuplicateIncompleteBranch)
	}
	if err != nil {
		return notFound(err, domain.ErrBranchNotFound, "update translation branch")
	}
	branch.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}
