package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *AuditRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026031101)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS audits (
	id TEXT PRIMARY KEY,
	status TEXT NOT NULL,
	company_size INTEGER NOT NULL,
	use_consistency_check BOOLEAN NOT NULL DEFAULT FALSE,
	sources JSONB NOT NULL DEFAULT '[]'::jsonb,
	result JSONB,
	error_message TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audits_status ON audits(status);
CREATE INDEX IF NOT EXISTS idx_audits_created_at ON audits(created_at DESC);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *AuditRepository) Create(ctx context.Context, audit *domain.Audit) error {
	sourcesJSON, err := json.Marshal(audit.Sources)
	if err != nil {
		return fmt.Errorf("marshal audit sources: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO audits (id, status, company_size, use_consistency_check, sources, error_message, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
`, audit.ID, string(audit.Status), audit.CompanySize, audit.UseConsistencyCheck, sourcesJSON, audit.Error, audit.CreatedAt, audit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

func (r *AuditRepository) GetByID(ctx context.Context, id string) (*domain.Audit, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, status, company_size, use_consistency_check, sources, result, COALESCE(error_message, ''), created_at, updated_at
FROM audits
WHERE id = $1
`, id)

	var (
		audit      domain.Audit
		status     string
		sourcesRaw []byte
		resultRaw  []byte
	)
	if err := row.Scan(
		&audit.ID,
		&status,
		&audit.CompanySize,
		&audit.UseConsistencyCheck,
		&sourcesRaw,
		&resultRaw,
		&audit.Error,
		&audit.CreatedAt,
		&audit.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrAuditNotFound, "get audit", fmt.Errorf("id %s", id))
		}
		return nil, fmt.Errorf("scan audit: %w", err)
	}

	if err := json.Unmarshal(sourcesRaw, &audit.Sources); err != nil {
		return nil, fmt.Errorf("unmarshal audit sources: %w", err)
	}
	if len(resultRaw) > 0 {
		audit.Result = &domain.AnalysisResult{}
		if err := json.Unmarshal(resultRaw, audit.Result); err != nil {
			return nil, fmt.Errorf("unmarshal audit result: %w", err)
		}
	}
	audit.Status = domain.AuditStatus(status)
	return &audit, nil
}

func (r *AuditRepository) UpdateStatus(ctx context.Context, id string, status domain.AuditStatus, errMessage string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE audits
SET status = $2, error_message = $3, updated_at = $4
WHERE id = $1
`, id, string(status), errMessage, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update audit status: %w", err)
	}
	return requireRowAffected(res, "update audit status", id)
}

func (r *AuditRepository) SaveResult(ctx context.Context, id string, result *domain.AnalysisResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal audit result: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
UPDATE audits
SET status = $2, result = $3, error_message = '', updated_at = $4
WHERE id = $1
`, id, string(domain.AuditCompleted), resultJSON, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save audit result: %w", err)
	}
	return requireRowAffected(res, "save audit result", id)
}

func requireRowAffected(res sql.Result, operation, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", operation, err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrAuditNotFound, operation, fmt.Errorf("id %s", id))
	}
	return nil
}
