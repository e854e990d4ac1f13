package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

func newRepoWithMock(t *testing.T) (*AuditRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &AuditRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestGetByIDReturnsDomainNotFound(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, status, company_size").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !domain.IsKind(err, domain.ErrAuditNotFound) {
		t.Fatalf("expected ErrAuditNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByIDDecodesSourcesAndResult(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	sources, _ := json.Marshal([]domain.AuditSource{
		{Kind: domain.SourceFile, Name: "proposal.txt", StorageKey: "key1"},
	})
	result, _ := json.Marshal(&domain.AnalysisResult{OverallScore: 73.5, Band: domain.BandGood})
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "status", "company_size", "use_consistency_check",
		"sources", "result", "error_message", "created_at", "updated_at",
	}).AddRow("a1", "completed", 75, true, sources, result, "", now, now)

	mock.ExpectQuery("SELECT id, status, company_size").
		WithArgs("a1").
		WillReturnRows(rows)

	audit, err := repo.GetByID(context.Background(), "a1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if audit.Status != domain.AuditCompleted || audit.CompanySize != 75 {
		t.Fatalf("audit = %+v", audit)
	}
	if len(audit.Sources) != 1 || audit.Sources[0].StorageKey != "key1" {
		t.Fatalf("sources = %+v", audit.Sources)
	}
	if audit.Result == nil || audit.Result.OverallScore != 73.5 {
		t.Fatalf("result = %+v", audit.Result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateInsertsSourcesJSON(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO audits").
		WithArgs("a1", "queued", 50, false, sqlmock.AnyArg(), "", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &domain.Audit{
		ID:          "a1",
		Status:      domain.AuditQueued,
		CompanySize: 50,
		Sources:     []domain.AuditSource{{Kind: domain.SourceWebsite, Name: "example.com", URL: "https://example.com"}},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateStatusReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE audits").
		WithArgs("missing", string(domain.AuditProcessing), "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.AuditProcessing, "")
	if !domain.IsKind(err, domain.ErrAuditNotFound) {
		t.Fatalf("expected ErrAuditNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveResultMarksCompleted(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE audits").
		WithArgs("a1", string(domain.AuditCompleted), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveResult(context.Background(), "a1", &domain.AnalysisResult{OverallScore: 48})
	if err != nil {
		t.Fatalf("SaveResult() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveResultReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE audits").
		WithArgs("missing", string(domain.AuditCompleted), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveResult(context.Background(), "missing", &domain.AnalysisResult{})
	if !domain.IsKind(err, domain.ErrAuditNotFound) {
		t.Fatalf("expected ErrAuditNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
