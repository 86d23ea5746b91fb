package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/entity/grocery"
	"max.ks1230/grocery-bot/internal/entity/user"
	"max.ks1230/grocery-bot/internal/logger"

	// postgres driver
	_ "github.com/lib/pq"
	// pure go sqlite driver
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

var ErrNotFound = errors.New("not found")

type config interface {
	Driver() string
	Host() string
	Username() string
	Password() string
	Database() string
	Path() string
}

type SQLStorage struct {
	db   *sql.DB
	psql sq.StatementBuilderType
}

func NewSQLStorage(config config) (*SQLStorage, error) {
	var (
		dsn    string
		schema string
		format sq.PlaceholderFormat
	)
	switch config.Driver() {
	case DriverPostgres:
		dsn = fmt.Sprintf(dsnTemplate, config.Username(), config.Password(), config.Host(), config.Database())
		schema, format = postgresSchema, sq.Dollar
	case DriverSQLite:
		dsn = config.Path()
		schema, format = sqliteSchema, sq.Question
	default:
		return nil, errors.Errorf("unsupported sql driver %q", config.Driver())
	}

	db, err := sql.Open(config.Driver(), dsn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if config.Driver() == DriverSQLite {
		// one writer at a time, otherwise sqlite reports SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}
	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "cannot apply schema")
	}

	return &SQLStorage{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(format),
	}, nil
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

func (s *SQLStorage) GetUserByID(ctx context.Context, id int64) (user.Record, error) {
	query := s.psql.Select("full_name", "preferred_currency", "birth_day", "birth_month").
		From("users").
		Where(sq.Eq{"id": id})

	var res user.Record
	var curr string
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&res.FullName, &curr, &res.BirthDay, &res.BirthMonth)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Record{}, nil
	}
	if err != nil {
		return user.Record{}, errors.Wrap(err, "get user")
	}
	res.SetPreferredCurrency(currency.Code(curr))
	return res, nil
}

func (s *SQLStorage) SaveUserByID(ctx context.Context, id int64, rec user.Record) error {
	query := s.psql.Insert("users").
		Columns("id", "full_name", "preferred_currency", "birth_day", "birth_month", "updated_at").
		Values(id, rec.FullName, string(rec.PreferredCurrency()), rec.BirthDay, rec.BirthMonth, time.Now().UTC()).
		Suffix("ON CONFLICT(id) DO UPDATE SET " +
			"full_name = excluded.full_name, " +
			"preferred_currency = excluded.preferred_currency, " +
			"birth_day = excluded.birth_day, " +
			"birth_month = excluded.birth_month, " +
			"updated_at = excluded.updated_at")

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save user")
}

func (s *SQLStorage) AddItem(ctx context.Context, userID int64, item grocery.Item) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, errors.Wrap(err, "add item")
	}
	if item.Created.IsZero() {
		item.Created = time.Now()
	}

	query := s.psql.Insert("items").
		Columns("user_id", "name", "quantity", "price", "category", "purchased", "created_at").
		Values(userID, item.Name, item.Quantity, item.Price, string(item.Category), item.Purchased, item.Created.UTC()).
		Suffix("RETURNING id")

	var id int64
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "add item")
	}
	return id, nil
}

func (s *SQLStorage) GetUserItems(ctx context.Context, userID int64) ([]grocery.Item, error) {
	query := s.psql.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get items")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	items := make([]grocery.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, errors.Wrap(err, "get items")
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get items")
	}
	return items, nil
}

func (s *SQLStorage) ToggleItem(ctx context.Context, userID, itemID int64) (grocery.Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return grocery.Item{}, errors.Wrap(err, "toggle item")
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	res, err := s.psql.Update("items").
		Set("purchased", sq.Expr("NOT purchased")).
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		RunWith(tx).ExecContext(ctx)
	if err != nil {
		return grocery.Item{}, errors.Wrap(err, "toggle item")
	}
	if err = expectOneRow(res); err != nil {
		return grocery.Item{}, errors.Wrapf(err, "toggle item %d", itemID)
	}

	row := s.psql.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"id": itemID}).
		RunWith(tx).QueryRowContext(ctx)
	item, err := scanItem(row)
	if err != nil {
		return grocery.Item{}, errors.Wrap(err, "toggle item")
	}
	return item, errors.Wrap(tx.Commit(), "toggle item")
}

func (s *SQLStorage) RemoveItem(ctx context.Context, userID, itemID int64) error {
	res, err := s.psql.Delete("items").
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "remove item")
	}
	return errors.Wrapf(expectOneRow(res), "remove item %d", itemID)
}

// SaveRate appends to the rate history; the latest row per code wins.
func (s *SQLStorage) SaveRate(ctx context.Context, code currency.Code, val decimal.Decimal) error {
	query := s.psql.Insert("rates").
		Columns("code", "rate", "updated_at").
		Values(string(code), val, time.Now().UTC())
	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save rate")
}

// GetRates returns the latest stored value for each requested code.
// Codes without history are left out.
func (s *SQLStorage) GetRates(ctx context.Context, base currency.Code, relatives []currency.Code) (map[currency.Code]decimal.Decimal, error) {
	if base != currency.Base {
		return nil, errors.Errorf("stored rates are relative to %s, not %s", currency.Base, base)
	}

	res := make(map[currency.Code]decimal.Decimal, len(relatives))
	for _, code := range relatives {
		query := s.psql.Select("rate").
			From("rates").
			Where(sq.Eq{"code": string(code)}).
			OrderBy("id DESC").
			Limit(1)

		var val decimal.Decimal
		err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&val)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "get rate %s", code)
		}
		res[code] = val
	}
	return res, nil
}

var itemColumns = []string{"id", "name", "quantity", "price", "category", "purchased", "created_at"}

func scanItem(row sq.RowScanner) (grocery.Item, error) {
	var (
		item     grocery.Item
		category string
	)
	err := row.Scan(&item.ID, &item.Name, &item.Quantity, &item.Price, &category, &item.Purchased, &item.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return grocery.Item{}, ErrNotFound
	}
	if err != nil {
		return grocery.Item{}, err
	}
	item.Category = grocery.Category(category)
	return item, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
