package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"golang.org/x/sync/errgroup"
)

type backupService struct {
	BaseService
	repos           portsrepo.RepositoryProvider
	defaultCurrency string
}

// BackupServiceOption is a functional option for configuring the backup service
type BackupServiceOption func(*backupService)

// WithBackupClock sets the clock used to stamp snapshots and restored rows.
func WithBackupClock(clock Clock) BackupServiceOption {
	return func(s *backupService) {
		s.Clock = clock
	}
}

// WithBackupDefaultCurrency sets the currency given to restored rows that name none.
func WithBackupDefaultCurrency(code string) BackupServiceOption {
	return func(s *backupService) {
		s.defaultCurrency = strings.ToUpper(code)
	}
}

// NewBackupService creates the bulk export and restore service.
func NewBackupService(repos portsrepo.RepositoryProvider, options ...BackupServiceOption) portssvc.BackupSvc {
	svc := &backupService{repos: repos, defaultCurrency: domain.DefaultCurrency}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BackupSvc = (*backupService)(nil)

// ExportSnapshot reads every live row of both ledgers and both taxonomies.
func (s *backupService) ExportSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	snap := domain.Snapshot{TakenAt: s.Now()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Expenses, err = s.repos.ExpenseRepo.ListAllEntries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Incomes, err = s.repos.IncomeRepo.ListAllEntries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Categories, err = s.repos.CategoryRepo.ListAllCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Snapshot export failed")
		return nil, fmt.Errorf("failed to export snapshot: %w", err)
	}
	if snap.Expenses == nil {
		snap.Expenses = []domain.Entry{}
	}
	if snap.Incomes == nil {
		snap.Incomes = []domain.Entry{}
	}
	if snap.Categories == nil {
		snap.Categories = []domain.Category{}
	}

	s.LogInfo(ctx, "Snapshot exported",
		slog.Int("expenses", len(snap.Expenses)),
		slog.Int("incomes", len(snap.Incomes)),
		slog.Int("categories", len(snap.Categories)))
	return &snap, nil
}

// RestoreSnapshot validates every row first and only then swaps the dataset in
// one store transaction, so a malformed backup or a failed write leaves the
// stores untouched.
func (s *backupService) RestoreSnapshot(ctx context.Context, req dto.RestoreRequest) (*domain.Snapshot, error) {
	now := s.Now()
	snap := domain.Snapshot{TakenAt: now}

	var err error
	if snap.Expenses, err = s.buildEntries(domain.KindExpense, req.Expenses, now); err != nil {
		return nil, err
	}
	if snap.Incomes, err = s.buildEntries(domain.KindIncome, req.Incomes, now); err != nil {
		return nil, err
	}
	if snap.Categories, err = buildCategories(req.Categories, now); err != nil {
		return nil, err
	}

	if err := s.repos.Snapshots.ReplaceSnapshot(ctx, snap); err != nil {
		s.LogError(ctx, err, "Restoring snapshot failed")
		return nil, fmt.Errorf("failed to restore snapshot: %w", err)
	}

	s.LogInfo(ctx, "Snapshot restored",
		slog.Int("expenses", len(snap.Expenses)),
		slog.Int("incomes", len(snap.Incomes)),
		slog.Int("categories", len(snap.Categories)))
	return &snap, nil
}

func (s *backupService) buildEntries(kind domain.EntryKind, reqs []dto.RestoreEntryRequest, now time.Time) ([]domain.Entry, error) {
	entries := make([]domain.Entry, 0, len(reqs))
	for i, req := range reqs {
		e, err := buildEntry(kind, req.Entry(), s.defaultCurrency, now)
		if err != nil {
			return nil, rowError(kind.Plural(), i, err)
		}
		e.AuditFields = restoredAudit(req.CreatedAt, req.UpdatedAt, now)
		entries = append(entries, e)
	}
	return entries, nil
}

// buildCategories falls back to the built-in taxonomies when the backup has none.
func buildCategories(reqs []dto.RestoreCategoryRequest, now time.Time) ([]domain.Category, error) {
	if len(reqs) == 0 {
		return stampCategories(now, domain.DefaultCategories(domain.KindExpense), domain.DefaultCategories(domain.KindIncome)), nil
	}

	seen := make(map[string]struct{}, len(reqs))
	out := make([]domain.Category, 0, len(reqs))
	for i, req := range reqs {
		kind := domain.EntryKind(req.Kind)
		name := strings.TrimSpace(req.Name)
		if !kind.Valid() {
			return nil, rowError("categories", i, apperrors.NewValidationError(fmt.Sprintf("invalid kind %q", req.Kind)))
		}
		if name == "" {
			return nil, rowError("categories", i, apperrors.NewValidationError("name is required"))
		}
		key := string(kind) + "/" + name
		if _, dup := seen[key]; dup {
			return nil, rowError("categories", i, apperrors.NewValidationError(fmt.Sprintf("duplicate %s %q", kind.GroupLabel(), name)))
		}
		seen[key] = struct{}{}

		c := newCategory(kind, name, req.Label, req.Icon, req.Color)
		if req.Enabled != nil {
			c.Enabled = *req.Enabled
		}
		if req.IsCustom != nil {
			c.IsCustom = *req.IsCustom
		}
		c.AuditFields = restoredAudit(req.CreatedAt, req.UpdatedAt, now)
		out = append(out, c)
	}
	return out, nil
}

func restoredAudit(createdAt, updatedAt *time.Time, now time.Time) domain.AuditFields {
	audit := domain.AuditFields{CreatedAt: now, UpdatedAt: now}
	if createdAt != nil && !createdAt.IsZero() {
		audit.CreatedAt = *createdAt
		audit.UpdatedAt = *createdAt
	}
	if updatedAt != nil && !updatedAt.IsZero() {
		audit.UpdatedAt = *updatedAt
	}
	return audit
}

func rowError(table string, i int, err error) error {
	msg := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	return apperrors.NewValidationError(fmt.Sprintf("%s[%d]: %s", table, i, msg))
}
