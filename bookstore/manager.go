package bookstore

// Manager is a thin façade over the Database, keeping CLI code simple.
type Manager struct {
	db *Database
}

// NewManager opens (or creates) the SQLite database at dbPath.
func NewManager(dbPath string) (*Manager, error) {
	db, err := NewDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	return &Manager{db: db}, nil
}

// Close closes the underlying database.
func (m *Manager) Close() error { return m.db.Close() }

// ------------------ Sale engine ------------------

func (m *Manager) AddSale(date, memberID, bookID string, quantity, discount int64) (int64, error) {
	return m.db.AddSale(date, memberID, bookID, quantity, discount)
}

func (m *Manager) UpdateSaleDiscount(saleID, newDiscount int64) (int64, error) {
	return m.db.UpdateSaleDiscount(saleID, newDiscount)
}

func (m *Manager) DeleteSale(saleID int64) error { return m.db.DeleteSale(saleID) }

// ------------------ Projections ------------------

func (m *Manager) ListSales() ([]SaleListItem, error) { return m.db.ListSales() }
func (m *Manager) SaleReport() ([]ReportRow, error)   { return m.db.SaleReport() }

// ------------------ Lookup helpers ------------------

func (m *Manager) GetMember(id string) (*Member, error) { return m.db.GetMember(id) }
func (m *Manager) GetBook(id string) (*Book, error)     { return m.db.GetBook(id) }
func (m *Manager) GetAllBooks() ([]*Book, error)        { return m.db.GetAllBooks() }
func (m *Manager) GetSale(id int64) (*Sale, error)      { return m.db.GetSale(id) }

// ------------------ Fixture helpers ------------------

func (m *Manager) AddMember(id, name, phone, email string) error {
	return m.db.AddMember(id, name, phone, email)
}

func (m *Manager) AddBook(id, title string, price, stock int64) error {
	return m.db.AddBook(id, title, price, stock)
}
