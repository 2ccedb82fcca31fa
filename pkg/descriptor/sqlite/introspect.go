package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-scaffold/pkg/descriptor"

	// SQLite driver
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// ErrTableNotFound is returned when introspecting a table that does not exist.
var ErrTableNotFound = errors.New("sqlite descriptor: table not found")

// Options configures introspection.
type Options struct {
	Logger zerolog.Logger
	// ModelNames maps table names to model names; unmapped tables use
	// descriptor.Classify.
	ModelNames map[string]string
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes diagnostics to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithModelName names the model built for table.
func WithModelName(table, model string) Option {
	return func(o *Options) {
		if o.ModelNames == nil {
			o.ModelNames = make(map[string]string)
		}
		o.ModelNames[table] = model
	}
}

func newOptions(opts []Option) Options {
	options := Options{Logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	return options
}

func (o Options) modelName(table string) string {
	if name, ok := o.ModelNames[table]; ok && name != "" {
		return name
	}
	return descriptor.Classify(table)
}

// Open opens the database at dsn with the modernc driver and verifies the
// connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite descriptor: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite descriptor: ping: %w", err)
	}
	return db, nil
}

// Tables lists the user tables in name order.
func Tables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("sqlite descriptor: list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("sqlite descriptor: scan table: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite descriptor: list tables: %w", err)
	}
	return tables, nil
}

// Introspect builds the model of a single table: every column becomes an
// attribute and every foreign key a belongs_to association.
func Introspect(ctx context.Context, db *sql.DB, table string, opts ...Option) (*descriptor.Static, error) {
	options := newOptions(opts)
	columns, err := tableInfo(ctx, db, table)
	if err != nil {
		return nil, err
	}
	keys, err := foreignKeys(ctx, db, table)
	if err != nil {
		return nil, err
	}
	return buildModel(options, table, columns, keys), nil
}

// Schema introspects every user table. Foreign keys also declare has_many
// associations on the referenced tables.
func Schema(ctx context.Context, db *sql.DB, opts ...Option) ([]*descriptor.Static, error) {
	options := newOptions(opts)
	tables, err := Tables(ctx, db)
	if err != nil {
		return nil, err
	}

	models := make([]*descriptor.Static, 0, len(tables))
	byTable := make(map[string]*descriptor.Static, len(tables))
	inverse := make(map[string][]descriptor.Association)
	for _, table := range tables {
		columns, err := tableInfo(ctx, db, table)
		if err != nil {
			return nil, err
		}
		keys, err := foreignKeys(ctx, db, table)
		if err != nil {
			return nil, err
		}
		model := buildModel(options, table, columns, keys)
		models = append(models, model)
		byTable[table] = model
		for _, key := range keys {
			inverse[key.Table] = append(inverse[key.Table], descriptor.Association{
				Name:       table,
				Kind:       descriptor.HasMany,
				Target:     model.Name(),
				ForeignKey: key.From,
			})
		}
	}

	for table, assocs := range inverse {
		owner, ok := byTable[table]
		if !ok {
			options.Logger.Debug().Str("table", table).Msg("sqlite descriptor: foreign key references unknown table")
			continue
		}
		for _, assoc := range assocs {
			if _, exists := owner.Association(assoc.Name); exists {
				continue
			}
			if _, exists := owner.Attribute(assoc.Name); exists {
				continue
			}
			owner.WithAssociation(assoc)
		}
	}
	options.Logger.Debug().Int("tables", len(models)).Msg("sqlite descriptor: introspected schema")
	return models, nil
}

type columnInfo struct {
	Name       string
	Type       string
	NotNull    bool
	Default    sql.NullString
	PrimaryKey int
}

type foreignKey struct {
	Table string
	From  string
	To    string
}

func tableInfo(ctx context.Context, db *sql.DB, table string) ([]columnInfo, error) {
	rows, err := db.QueryContext(ctx, "PRAGMA table_info("+descriptor.QuoteIdentifier(table)+")")
	if err != nil {
		return nil, fmt.Errorf("sqlite descriptor: table_info %s: %w", table, err)
	}
	defer rows.Close()

	var columns []columnInfo
	for rows.Next() {
		var (
			cid int
			col columnInfo
		)
		if err := rows.Scan(&cid, &col.Name, &col.Type, &col.NotNull, &col.Default, &col.PrimaryKey); err != nil {
			return nil, fmt.Errorf("sqlite descriptor: scan column of %s: %w", table, err)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite descriptor: table_info %s: %w", table, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	return columns, nil
}

func foreignKeys(ctx context.Context, db *sql.DB, table string) ([]foreignKey, error) {
	rows, err := db.QueryContext(ctx, "PRAGMA foreign_key_list("+descriptor.QuoteIdentifier(table)+")")
	if err != nil {
		return nil, fmt.Errorf("sqlite descriptor: foreign_key_list %s: %w", table, err)
	}
	defer rows.Close()

	var keys []foreignKey
	for rows.Next() {
		var (
			id, seq                   int
			key                       foreignKey
			to                        sql.NullString
			onUpdate, onDelete, match string
		)
		if err := rows.Scan(&id, &seq, &key.Table, &key.From, &to, &onUpdate, &onDelete, &match); err != nil {
			return nil, fmt.Errorf("sqlite descriptor: scan foreign key of %s: %w", table, err)
		}
		key.To = to.String
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite descriptor: foreign_key_list %s: %w", table, err)
	}
	return keys, nil
}

func buildModel(options Options, table string, columns []columnInfo, keys []foreignKey) *descriptor.Static {
	model := descriptor.NewStatic(options.modelName(table)).WithTable(table)
	for _, col := range columns {
		attr := descriptor.Attribute{
			Name:       col.Name,
			Type:       attributeType(col.Type),
			PrimaryKey: col.PrimaryKey > 0,
			Nullable:   !col.NotNull && col.PrimaryKey == 0,
		}
		if col.Default.Valid {
			attr.Default = strings.Trim(col.Default.String, `'"`)
		}
		model.WithAttribute(attr)
	}
	for _, key := range keys {
		name := strings.TrimSuffix(key.From, "_id")
		if name == key.From {
			name = descriptor.Singularize(key.Table)
		}
		if _, exists := model.Attribute(name); exists {
			options.Logger.Debug().Str("table", table).Str("column", key.From).
				Msg("sqlite descriptor: association name shadows a column, skipped")
			continue
		}
		model.WithAssociation(descriptor.Association{
			Name:       name,
			Kind:       descriptor.BelongsTo,
			Target:     options.modelName(key.Table),
			ForeignKey: key.From,
		})
	}
	return model
}

// attributeType maps a declared column type following SQLite's affinity
// rules, refined by the common type names.
func attributeType(declared string) descriptor.AttributeType {
	t := strings.ToUpper(declared)
	switch {
	case strings.Contains(t, "BOOL"):
		return descriptor.TypeBoolean
	case strings.Contains(t, "INT"):
		return descriptor.TypeInteger
	case strings.Contains(t, "DATETIME"), strings.Contains(t, "TIMESTAMP"):
		return descriptor.TypeDateTime
	case strings.Contains(t, "DATE"):
		return descriptor.TypeDate
	case strings.Contains(t, "TIME"):
		return descriptor.TypeTime
	case strings.Contains(t, "JSON"):
		return descriptor.TypeJSON
	case strings.Contains(t, "TEXT"), strings.Contains(t, "CLOB"):
		return descriptor.TypeText
	case strings.Contains(t, "CHAR"):
		return descriptor.TypeString
	case t == "", strings.Contains(t, "BLOB"):
		return descriptor.TypeBinary
	case strings.Contains(t, "REAL"), strings.Contains(t, "FLOA"), strings.Contains(t, "DOUB"):
		return descriptor.TypeFloat
	case strings.Contains(t, "DEC"), strings.Contains(t, "NUMERIC"):
		return descriptor.TypeDecimal
	default:
		return descriptor.TypeString
	}
}
