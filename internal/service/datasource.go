package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/models"

	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

// Source kinds accepted by OpenSource
const (
	SourceBuiltin  = "builtin"
	SourceYAML     = "yaml"
	SourceFASTA    = "fasta"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

const DefaultReferenceTable = "reference_sequences"

var ErrUnsupportedSource = errors.New("unsupported reference source")

// SourceConfig holds the reference catalogue location
type SourceConfig struct {
	Type  string // builtin, yaml, fasta, postgres, sqlite
	Path  string // yaml/fasta file
	DSN   string // postgres connection string or sqlite file
	Table string
}

// ReferenceSource defines where a reference catalogue is loaded from
type ReferenceSource interface {
	Name() string
	Load(ctx context.Context) ([]models.ReferenceSequence, error)
}

// OpenSource builds the ReferenceSource described by cfg.
// The returned closer releases any database handle and is never nil.
func OpenSource(cfg SourceConfig) (ReferenceSource, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Type {
	case "", SourceBuiltin:
		return BuiltinSource{}, noop, nil
	case SourceYAML:
		if cfg.Path == "" {
			return nil, noop, fmt.Errorf("%w: yaml source needs a path", ErrUnsupportedSource)
		}
		return YAMLSource{Path: cfg.Path}, noop, nil
	case SourceFASTA:
		if cfg.Path == "" {
			return nil, noop, fmt.Errorf("%w: fasta source needs a path", ErrUnsupportedSource)
		}
		return FASTASource{Path: cfg.Path}, noop, nil
	case SourcePostgres, SourceSQLite:
		src, err := OpenSQLSource(cfg.Type, cfg.DSN, cfg.Table)
		if err != nil {
			return nil, noop, err
		}
		return src, src.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnsupportedSource, cfg.Type)
	}
}

// BuiltinSource serves DefaultCatalog
type BuiltinSource struct{}

func (BuiltinSource) Name() string { return SourceBuiltin }

func (BuiltinSource) Load(ctx context.Context) ([]models.ReferenceSequence, error) {
	return DefaultCatalog(), nil
}

// YAMLSource reads a catalogue file of the form
//
//	references:
//	  - species: Sardinella aurita
//	    common_name: Round Sardinella
//	    sequence: ATGG...
type YAMLSource struct {
	Path string
}

type yamlCatalog struct {
	References []models.ReferenceSequence `yaml:"references"`
}

func (s YAMLSource) Name() string { return SourceYAML + ":" + s.Path }

func (s YAMLSource) Load(ctx context.Context) ([]models.ReferenceSequence, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}

	var catalog yamlCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}
	return catalog.References, nil
}

// FASTASource reads one reference per record. The header is split on '|' into
// species|common name|family|habitat|description; trailing fields are optional.
type FASTASource struct {
	Path string
}

func (s FASTASource) Name() string { return SourceFASTA + ":" + s.Path }

func (s FASTASource) Load(ctx context.Context) ([]models.ReferenceSequence, error) {
	records, err := ReadFASTA(ctx, s.Path)
	if err != nil {
		return nil, err
	}

	refs := make([]models.ReferenceSequence, 0, len(records))
	for _, rec := range records {
		fields := strings.SplitN(rec.Header, "|", 5)
		for len(fields) < 5 {
			fields = append(fields, "")
		}
		refs = append(refs, models.ReferenceSequence{
			ID:          strings.TrimSpace(fields[0]),
			CommonName:  strings.TrimSpace(fields[1]),
			Family:      strings.TrimSpace(fields[2]),
			Habitat:     strings.TrimSpace(fields[3]),
			Description: strings.TrimSpace(fields[4]),
			Sequence:    rec.Sequence,
		})
	}
	return refs, nil
}

var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLSource reads the catalogue from a table with columns
// species, common_name, family, habitat, description, sequence.
type SQLSource struct {
	db     *sql.DB
	driver string
	table  string
}

// OpenSQLSource connects with driver "postgres" (lib/pq) or "sqlite" (modernc).
func OpenSQLSource(driver, dsn, table string) (*SQLSource, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%w: %s source needs a dsn", ErrUnsupportedSource, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	src, err := NewSQLSource(db, driver, table)
	if err != nil {
		db.Close()
		return nil, err
	}
	return src, nil
}

// NewSQLSource wraps an existing handle. The table name is checked against a
// plain identifier pattern since it cannot be a bind parameter.
func NewSQLSource(db *sql.DB, driver, table string) (*SQLSource, error) {
	if table == "" {
		table = DefaultReferenceTable
	}
	if !tableNameRe.MatchString(table) {
		return nil, fmt.Errorf("%w: invalid table name %q", ErrUnsupportedSource, table)
	}
	return &SQLSource{db: db, driver: driver, table: table}, nil
}

func (s *SQLSource) Name() string { return s.driver + ":" + s.table }

func (s *SQLSource) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLSource) Load(ctx context.Context) ([]models.ReferenceSequence, error) {
	query := fmt.Sprintf(
		"SELECT species, common_name, family, habitat, description, sequence FROM %s ORDER BY species",
		s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []models.ReferenceSequence
	for rows.Next() {
		var ref models.ReferenceSequence
		var common, family, habitat, description sql.NullString
		if err := rows.Scan(&ref.ID, &common, &family, &habitat, &description, &ref.Sequence); err != nil {
			return nil, err
		}
		ref.CommonName = common.String
		ref.Family = family.String
		ref.Habitat = habitat.String
		ref.Description = description.String
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
