// Package repository содержит реализацию доступа к данным в PostgreSQL.
package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mmeshcher/restaurant-backoffice/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrOrderNotFound возвращается, если заказ с указанным идентификатором не найден.
var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrBookingNotFound возвращается, если бронирование не найдено.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrUserNotFound возвращается, если пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists возвращается при попытке создать пользователя с уже занятым email.
	ErrUserExists = errors.New("user already exists")
)

// PostgresRepository предоставляет доступ к хранилищу данных в PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository создаёт новый репозиторий и инициализирует схему БД через миграции.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Close закрывает пул соединений с БД.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// CreateOrder сохраняет новый заказ и возвращает его с присвоенным идентификатором.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order model.Order) (model.Order, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO orders (table_number, items, status) VALUES ($1, $2, $3) RETURNING id`,
		order.TableNumber, order.Items, string(order.Status),
	).Scan(&order.ID)
	if err != nil {
		return model.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

// GetOrderByID возвращает заказ по идентификатору.
func (r *PostgresRepository) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, table_number, items, status FROM orders WHERE id = $1`,
		id,
	)

	var o model.Order
	var status string
	if err := row.Scan(&o.ID, &o.TableNumber, &o.Items, &status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Status = model.OrderStatus(status)

	return &o, nil
}

// GetOrders возвращает все заказы.
func (r *PostgresRepository) GetOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, table_number, items, status FROM orders`,
	)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		var status string
		if err := rows.Scan(&o.ID, &o.TableNumber, &o.Items, &status); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Status = model.OrderStatus(status)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}

// UpdateOrder перезаписывает заказ по его идентификатору.
func (r *PostgresRepository) UpdateOrder(ctx context.Context, order model.Order) (model.Order, error) {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE orders SET table_number = $2, items = $3, status = $4 WHERE id = $1`,
		order.ID, order.TableNumber, order.Items, string(order.Status),
	)
	if err != nil {
		return model.Order{}, fmt.Errorf("update order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// CreateBooking сохраняет новое бронирование и возвращает его с присвоенным идентификатором.
func (r *PostgresRepository) CreateBooking(ctx context.Context, booking model.TableBooking) (model.TableBooking, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO table_bookings (customer_name, booking_time, table_number, number_of_guests)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		booking.CustomerName, booking.BookingTime, booking.TableNumber, booking.NumberOfGuests,
	).Scan(&booking.ID)
	if err != nil {
		return model.TableBooking{}, fmt.Errorf("insert booking: %w", err)
	}
	return booking, nil
}

// GetBookingByID возвращает бронирование по идентификатору.
func (r *PostgresRepository) GetBookingByID(ctx context.Context, id int64) (*model.TableBooking, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, customer_name, booking_time, table_number, number_of_guests
		 FROM table_bookings
		 WHERE id = $1`,
		id,
	)

	var b model.TableBooking
	if err := row.Scan(&b.ID, &b.CustomerName, &b.BookingTime, &b.TableNumber, &b.NumberOfGuests); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return &b, nil
}

// GetBookings возвращает все бронирования.
func (r *PostgresRepository) GetBookings(ctx context.Context) ([]model.TableBooking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, customer_name, booking_time, table_number, number_of_guests FROM table_bookings`,
	)
	if err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.TableBooking
	for rows.Next() {
		var b model.TableBooking
		if err := rows.Scan(&b.ID, &b.CustomerName, &b.BookingTime, &b.TableNumber, &b.NumberOfGuests); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return bookings, nil
}

// BookingExists сообщает, существует ли бронирование с указанным идентификатором.
func (r *PostgresRepository) BookingExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM table_bookings WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("booking exists: %w", err)
	}
	return exists, nil
}

// UpdateBooking перезаписывает бронирование по его идентификатору.
func (r *PostgresRepository) UpdateBooking(ctx context.Context, booking model.TableBooking) (model.TableBooking, error) {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE table_bookings
		 SET customer_name = $2, booking_time = $3, table_number = $4, number_of_guests = $5
		 WHERE id = $1`,
		booking.ID, booking.CustomerName, booking.BookingTime, booking.TableNumber, booking.NumberOfGuests,
	)
	if err != nil {
		return model.TableBooking{}, fmt.Errorf("update booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.TableBooking{}, ErrBookingNotFound
	}
	return booking, nil
}

// DeleteBooking удаляет бронирование по идентификатору.
func (r *PostgresRepository) DeleteBooking(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM table_bookings WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// CreateUser сохраняет нового пользователя и возвращает его с присвоенным идентификатором.
// Уникальный индекс по email служит подстраховкой на уровне хранилища:
// нарушение уникальности отображается в ErrUserExists.
func (r *PostgresRepository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password, role) VALUES ($1, $2, $3, $4) RETURNING id`,
		user.Name, user.Email, user.Password, string(user.Role),
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, fmt.Errorf("%w: %s", ErrUserExists, user.Email)
		}
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// GetUsers возвращает всех пользователей.
func (r *PostgresRepository) GetUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, password, role FROM users`,
	)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		var role string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = model.Role(role)
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return users, nil
}

// GetUserByEmail возвращает пользователя по email.
func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password, role FROM users WHERE email = $1`,
		email,
	)

	var u model.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Role = model.Role(role)

	return &u, nil
}

// UserExistsByEmail сообщает, зарегистрирован ли пользователь с указанным email.
func (r *PostgresRepository) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return exists, nil
}
