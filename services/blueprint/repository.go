package blueprint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// This file repository.go contains the form definition DB reads.
// Note: The query uses raw SQL and manual scanning, the table is only ever read here.

// FormDefinitionsDDL is the table FormRepository reads from. definition must stay json:
// jsonb re-sorts object keys, which would reorder field_schema.properties.
const FormDefinitionsDDL = `
CREATE TABLE IF NOT EXISTS form_definitions (
	id         text NOT NULL,
	tenant_id  text NOT NULL,
	definition json NOT NULL,
	PRIMARY KEY (tenant_id, id)
)`

const selectFormDefinitionsSQL = `
	SELECT coalesce(json_agg(definition ORDER BY id), '[]'::json)
	FROM form_definitions
	WHERE tenant_id = $1
`

// rowQuerier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// FormRepository serves form definitions stored per tenant in Postgres.
type FormRepository struct {
	db rowQuerier
}

func NewFormRepository(db rowQuerier) *FormRepository {
	return &FormRepository{db: db}
}

// FormDefinitions returns the form definitions of a tenant. The graph is not consulted.
func (r *FormRepository) FormDefinitions(ctx context.Context, tenantID string, _ *GraphData) ([]FormDefinition, error) {
	var definitions []byte

	err := r.db.QueryRow(ctx, selectFormDefinitionsSQL, tenantID).Scan(&definitions)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []FormDefinition{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrFormDefinitionsUnavailable, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(definitions, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormDefinitionsUnavailable, err)
	}
	return DecodeFormDefinitions(raw), nil
}
