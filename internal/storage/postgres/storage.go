package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/vpetrenko/shopadmin/internal/domain/errors"
	"github.com/vpetrenko/shopadmin/internal/domain/model"
	"github.com/vpetrenko/shopadmin/internal/domain/repository"
)

// pgxPool abstracts the pgxpool surface used by the storage so tests can
// substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type adminRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type paymentRepository struct {
	storage *Storage
}

type eventRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Admins() repository.AdminRepository {
	return &adminRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

func (s *Storage) Events() repository.EventRepository {
	return &eventRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS admins (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'admin',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            status TEXT NOT NULL DEFAULT 'pending',
            payment_status TEXT NOT NULL DEFAULT 'pending',
            payment_method TEXT NOT NULL DEFAULT 'cod',
            total_price DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            quantity INT NOT NULL,
            price DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            id SERIAL PRIMARY KEY,
            order_id BIGINT UNIQUE NOT NULL REFERENCES orders(id),
            status TEXT NOT NULL,
            payment_method TEXT NOT NULL,
            transaction_id TEXT,
            payment_date TIMESTAMPTZ,
            amount DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS validation_events (
            id SERIAL PRIMARY KEY,
            event TEXT NOT NULL,
            order_id BIGINT NOT NULL,
            admin_id BIGINT,
            details JSONB,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_validation_events_order ON validation_events(order_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- AdminRepository implementation ---

func (r *adminRepository) GetByLogin(ctx context.Context, login string) (*model.Admin, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM admins WHERE login=$1`
	var a model.Admin
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&a.ID, &a.Login, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM admins WHERE id=$1`
	var a model.Admin
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Login, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, status, payment_status, payment_method, total_price, created_at, updated_at
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) GetWithPayment(ctx context.Context, id int64) (*model.Order, *model.Payment, error) {
	const query = `SELECT o.id, o.status, o.payment_status, o.payment_method, o.total_price, o.created_at, o.updated_at,
                          p.id, p.status, p.transaction_id, p.payment_date, p.amount
                   FROM orders o
                   LEFT JOIN payments p ON p.order_id = o.id
                   WHERE o.id=$1`
	var (
		o             model.Order
		paymentID     *int64
		paymentStatus *string
		transactionID *string
		paymentDate   *time.Time
		amount        *float64
	)
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt,
		&paymentID, &paymentStatus, &transactionID, &paymentDate, &amount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domainErrors.ErrNotFound
		}
		return nil, nil, err
	}

	if paymentID == nil {
		return &o, nil, nil
	}

	payment := &model.Payment{
		ID:            *paymentID,
		OrderID:       o.ID,
		Status:        model.PaymentStatus(*paymentStatus),
		PaymentMethod: o.PaymentMethod,
		PaymentDate:   paymentDate,
	}
	if transactionID != nil {
		payment.TransactionID = *transactionID
	}
	if amount != nil {
		payment.Amount = *amount
	}
	return &o, payment, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, event *model.ValidationEvent) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateQuery = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
		tag, err := tx.Exec(ctx, updateQuery, status, orderID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		if event != nil {
			if err := appendEventTx(ctx, tx, event); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) ItemsTotal(ctx context.Context, orderID int64) (float64, error) {
	const query = `SELECT COALESCE(SUM(quantity * price), 0) FROM order_items WHERE order_id=$1`
	var total float64
	if err := r.storage.pool.QueryRow(ctx, query, orderID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// --- PaymentRepository implementation ---

func (r *paymentRepository) GetByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	const query = `SELECT id, order_id, status, payment_method, transaction_id, payment_date, amount, created_at, updated_at
                   FROM payments WHERE order_id=$1`
	var (
		p             model.Payment
		transactionID *string
	)
	err := r.storage.pool.QueryRow(ctx, query, orderID).Scan(&p.ID, &p.OrderID, &p.Status, &p.PaymentMethod, &transactionID, &p.PaymentDate, &p.Amount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if transactionID != nil {
		p.TransactionID = *transactionID
	}
	return &p, nil
}

func (r *paymentRepository) Apply(ctx context.Context, payment *model.Payment, orderTotal float64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const upsertQuery = `INSERT INTO payments (order_id, status, payment_method, transaction_id, payment_date, amount)
                             VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
                             ON CONFLICT (order_id) DO UPDATE
                             SET status = EXCLUDED.status,
                                 payment_method = EXCLUDED.payment_method,
                                 transaction_id = COALESCE(EXCLUDED.transaction_id, payments.transaction_id),
                                 payment_date = COALESCE(EXCLUDED.payment_date, payments.payment_date),
                                 amount = EXCLUDED.amount,
                                 updated_at = NOW()`
		if _, err := tx.Exec(ctx, upsertQuery, payment.OrderID, payment.Status, payment.PaymentMethod, payment.TransactionID, payment.PaymentDate, payment.Amount); err != nil {
			return err
		}

		const updateOrder = `UPDATE orders SET payment_status=$1, total_price=$2, updated_at=NOW() WHERE id=$3`
		tag, err := tx.Exec(ctx, updateOrder, payment.Status, orderTotal, payment.OrderID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}

func (r *paymentRepository) Summary(ctx context.Context, orderID int64) (*model.PaymentSummary, error) {
	const query = `SELECT o.id, o.payment_status, o.payment_method, o.total_price,
                          p.status, p.transaction_id, p.payment_date, p.amount
                   FROM orders o
                   LEFT JOIN payments p ON p.order_id = o.id
                   WHERE o.id=$1`
	var (
		summary       model.PaymentSummary
		paymentStatus *string
		transactionID *string
		paymentDate   *time.Time
		amount        *float64
	)
	err := r.storage.pool.QueryRow(ctx, query, orderID).Scan(
		&summary.OrderID, &summary.Status, &summary.PaymentMethod, &summary.Amount,
		&paymentStatus, &transactionID, &paymentDate, &amount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	if paymentStatus != nil {
		summary.Status = model.PaymentStatus(*paymentStatus)
	}
	if transactionID != nil {
		summary.TransactionID = *transactionID
	}
	if amount != nil {
		summary.Amount = *amount
	}
	summary.PaymentDate = paymentDate
	return &summary, nil
}

// --- EventRepository implementation ---

func appendEventTx(ctx context.Context, tx pgx.Tx, event *model.ValidationEvent) error {
	const query = `INSERT INTO validation_events (event, order_id, admin_id, details) VALUES ($1, $2, $3, $4)`
	_, err := tx.Exec(ctx, query, event.Event, event.OrderID, event.AdminID, event.Details)
	return err
}

func (r *eventRepository) Append(ctx context.Context, event *model.ValidationEvent) error {
	const query = `INSERT INTO validation_events (event, order_id, admin_id, details) VALUES ($1, $2, $3, $4)`
	_, err := r.storage.pool.Exec(ctx, query, event.Event, event.OrderID, event.AdminID, event.Details)
	return err
}

func (r *eventRepository) ListByOrder(ctx context.Context, orderID int64, limit int) ([]model.ValidationEvent, error) {
	const query = `SELECT id, event, order_id, admin_id, details, created_at
                   FROM validation_events WHERE order_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, orderID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ValidationEvent
	for rows.Next() {
		var e model.ValidationEvent
		if err := rows.Scan(&e.ID, &e.Event, &e.OrderID, &e.AdminID, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
