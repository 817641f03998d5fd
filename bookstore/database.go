package bookstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Database provides high-level helpers around a SQLite connection.
type Database struct {
	db *sql.DB

	addMemberStmt *sql.Stmt
	addBookStmt   *sql.Stmt
}

// NewDatabase opens (or creates) the SQLite database at dbPath, applies
// schema migrations, inserts seed rows, and prepares common statements.
func NewDatabase(dbPath string) (*Database, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	// Enable busy_timeout and foreign keys.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := seed(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}

	database := &Database{db: db}
	if err := database.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return database, nil
}

// Close releases prepared statements and closes the DB.
func (d *Database) Close() error {
	if d.addMemberStmt != nil {
		d.addMemberStmt.Close()
	}
	if d.addBookStmt != nil {
		d.addBookStmt.Close()
	}
	return d.db.Close()
}

// ---------------------------------------------------------------------------
// Schema migration
// ---------------------------------------------------------------------------

const schemaVersion = 1

func applyMigrations(db *sql.DB) error {
	// WAL improves write concurrency.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS members (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            phone TEXT NOT NULL,
            email TEXT
        );`,
		`CREATE TABLE IF NOT EXISTS books (
            id TEXT PRIMARY KEY,
            title TEXT NOT NULL,
            price INTEGER NOT NULL,
            stock INTEGER NOT NULL
        );`,
		// AUTOINCREMENT so sale ids are monotone and never reused.
		`CREATE TABLE IF NOT EXISTS sales (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            date TEXT NOT NULL,
            member_id TEXT NOT NULL REFERENCES members(id),
            book_id TEXT NOT NULL REFERENCES books(id),
            quantity INTEGER NOT NULL,
            discount INTEGER NOT NULL,
            total INTEGER NOT NULL
        );`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value;`, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Seed data
// ---------------------------------------------------------------------------

// seed inserts the fixed starter rows. INSERT OR IGNORE keys on the
// primary key, so reruns on every startup leave existing rows alone.
func seed(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`INSERT OR IGNORE INTO members VALUES ('M001', 'Alice', '0912-345678', 'alice@example.com');`,
		`INSERT OR IGNORE INTO members VALUES ('M002', 'Bob', '0923-456789', 'bob@example.com');`,
		`INSERT OR IGNORE INTO members VALUES ('M003', 'Cathy', '0934-567890', 'cathy@example.com');`,

		`INSERT OR IGNORE INTO books VALUES ('B001', 'Python Programming', 600, 50);`,
		`INSERT OR IGNORE INTO books VALUES ('B002', 'Data Science Basics', 800, 30);`,
		`INSERT OR IGNORE INTO books VALUES ('B003', 'Machine Learning Guide', 1200, 20);`,

		`INSERT OR IGNORE INTO sales (id, date, member_id, book_id, quantity, discount, total) VALUES (1, '2024-01-15', 'M001', 'B001', 2, 100, 1100);`,
		`INSERT OR IGNORE INTO sales (id, date, member_id, book_id, quantity, discount, total) VALUES (2, '2024-01-16', 'M002', 'B002', 1, 50, 750);`,
		`INSERT OR IGNORE INTO sales (id, date, member_id, book_id, quantity, discount, total) VALUES (3, '2024-01-17', 'M001', 'B003', 3, 200, 3400);`,
		`INSERT OR IGNORE INTO sales (id, date, member_id, book_id, quantity, discount, total) VALUES (4, '2024-01-18', 'M003', 'B001', 1, 0, 600);`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Prepared statements
// ---------------------------------------------------------------------------

func (d *Database) prepareStatements() error {
	var err error
	if d.addMemberStmt, err = d.db.Prepare(`INSERT INTO members(id,name,phone,email) VALUES(?,?,?,?)`); err != nil {
		return err
	}
	if d.addBookStmt, err = d.db.Prepare(`INSERT INTO books(id,title,price,stock) VALUES(?,?,?,?)`); err != nil {
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// Member/book helpers
// ---------------------------------------------------------------------------

func (d *Database) AddMember(id, name, phone, email string) error {
	_, err := d.addMemberStmt.Exec(id, name, phone, email)
	return err
}

func (d *Database) AddBook(id, title string, price, stock int64) error {
	_, err := d.addBookStmt.Exec(id, title, price, stock)
	return err
}

// GetMember fetches a single member.
func (d *Database) GetMember(id string) (*Member, error) {
	var m Member
	err := d.db.QueryRow(`SELECT id,name,phone,COALESCE(email,'') FROM members WHERE id=?`, id).
		Scan(&m.ID, &m.Name, &m.Phone, &m.Email)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetBook fetches a single book.
func (d *Database) GetBook(id string) (*Book, error) {
	var b Book
	err := d.db.QueryRow(`SELECT id,title,price,stock FROM books WHERE id=?`, id).
		Scan(&b.ID, &b.Title, &b.Price, &b.Stock)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetAllBooks returns all books ordered by id.
func (d *Database) GetAllBooks() ([]*Book, error) {
	rows, err := d.db.Query(`SELECT id,title,price,stock FROM books ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Price, &b.Stock); err != nil {
			return nil, err
		}
		books = append(books, &b)
	}
	return books, rows.Err()
}

// GetSale fetches a single sale row.
func (d *Database) GetSale(id int64) (*Sale, error) {
	var s Sale
	err := d.db.QueryRow(`SELECT id,date,member_id,book_id,quantity,discount,total FROM sales WHERE id=?`, id).
		Scan(&s.ID, &s.Date, &s.MemberID, &s.BookID, &s.Quantity, &s.Discount, &s.Total)
	if err == sql.ErrNoRows {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ---------------------------------------------------------------------------
// Sale engine
// ---------------------------------------------------------------------------

// AddSale validates the member and book references and the stock level,
// then inserts the sale and decrements stock in one transaction. It
// returns the computed total.
//
// The discount is not clamped: a discount above price*quantity yields a
// negative total.
func (d *Database) AddSale(date, memberID, bookID string, quantity, discount int64) (int64, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM members WHERE id=?)`, memberID).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrInvalidReference
	}

	var price, stock int64
	err = tx.QueryRow(`SELECT price,stock FROM books WHERE id=?`, bookID).Scan(&price, &stock)
	if err == sql.ErrNoRows {
		return 0, ErrInvalidReference
	}
	if err != nil {
		return 0, err
	}

	if stock < quantity {
		return 0, &InsufficientStockError{Stock: stock}
	}

	total := price*quantity - discount

	if _, err := tx.Exec(`INSERT INTO sales(date,member_id,book_id,quantity,discount,total) VALUES(?,?,?,?,?,?)`,
		date, memberID, bookID, quantity, discount, total); err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	if _, err := tx.Exec(`UPDATE books SET stock = stock - ? WHERE id=?`, quantity, bookID); err != nil {
		return 0, fmt.Errorf("decrement stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	log.Debug().
		Str("member", memberID).
		Str("book", bookID).
		Int64("quantity", quantity).
		Int64("total", total).
		Msg("sale added")
	return total, nil
}

// UpdateSaleDiscount recomputes the sale's total from its original
// quantity and the book's current price, then writes the new discount
// and total back. Stock is never touched here.
func (d *Database) UpdateSaleDiscount(saleID, newDiscount int64) (int64, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var quantity, price int64
	err = tx.QueryRow(`SELECT s.quantity, b.price FROM sales s JOIN books b ON s.book_id = b.id WHERE s.id=?`, saleID).
		Scan(&quantity, &price)
	if err == sql.ErrNoRows {
		return 0, ErrSaleNotFound
	}
	if err != nil {
		return 0, err
	}

	newTotal := price*quantity - newDiscount

	if _, err := tx.Exec(`UPDATE sales SET discount=?, total=? WHERE id=?`, newDiscount, newTotal, saleID); err != nil {
		return 0, fmt.Errorf("update sale: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	log.Debug().Int64("sale", saleID).Int64("total", newTotal).Msg("sale updated")
	return newTotal, nil
}

// DeleteSale removes the sale row. Deleting never credits stock back
// to the book.
func (d *Database) DeleteSale(saleID int64) error {
	result, err := d.db.Exec(`DELETE FROM sales WHERE id=?`, saleID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSaleNotFound
	}
	log.Debug().Int64("sale", saleID).Msg("sale deleted")
	return nil
}

// ---------------------------------------------------------------------------
// Projections
// ---------------------------------------------------------------------------

// ListSales returns (sale id, member name, date) for every sale,
// ordered by sale id. An empty slice is a valid result.
func (d *Database) ListSales() ([]SaleListItem, error) {
	rows, err := d.db.Query(`
        SELECT s.id, m.name, s.date
        FROM sales s
        JOIN members m ON s.member_id = m.id
        ORDER BY s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SaleListItem
	for rows.Next() {
		var it SaleListItem
		if err := rows.Scan(&it.SaleID, &it.MemberName, &it.Date); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// SaleReport joins sales with members and books and returns one row per
// sale ordered by sale id. Seq numbers the rows 1..N regardless of the
// sale ids themselves.
func (d *Database) SaleReport() ([]ReportRow, error) {
	rows, err := d.db.Query(`
        SELECT s.id, s.date, m.name, b.title, b.price, s.quantity, s.discount, s.total
        FROM sales s
        JOIN members m ON s.member_id = m.id
        JOIN books b ON s.book_id = b.id
        ORDER BY s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []ReportRow
	for rows.Next() {
		var r ReportRow
		if err := rows.Scan(&r.SaleID, &r.Date, &r.MemberName, &r.BookTitle, &r.UnitPrice, &r.Quantity, &r.Discount, &r.Total); err != nil {
			return nil, err
		}
		r.Seq = len(report) + 1
		report = append(report, r)
	}
	return report, rows.Err()
}
