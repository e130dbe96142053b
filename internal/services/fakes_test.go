package services

import (
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"inventory_pos_backend/internal/models"
	"inventory_pos_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// fakeTx is a no-op transaction recording whether it was committed or rolled
// back. The fakes ignore the executor, so the SQLExecutor methods return
// zero values.
type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(string, ...interface{}) (sql.Result, error) { return nil, nil }
func (t *fakeTx) QueryRow(string, ...interface{}) *sql.Row        { return nil }
func (t *fakeTx) Query(string, ...interface{}) (*sql.Rows, error) { return nil, nil }

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

// fakeTxBeginner hands out fakeTx instances and remembers the last one so
// tests can assert on its outcome.
type fakeTxBeginner struct {
	last *fakeTx
}

var _ TxBeginner = (*fakeTxBeginner)(nil)

func (b *fakeTxBeginner) Begin() (Tx, error) {
	b.last = &fakeTx{}
	return b.last, nil
}

// fakeInventoryRepo keeps items in memory and mirrors the real repository's
// company scoping and conditional decrement semantics. The executor argument
// is ignored; services under test pass a nil *sql.DB.
type fakeInventoryRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]models.InventoryItem
}

var _ repositories.InventoryRepository = (*fakeInventoryRepo)(nil)

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[int64]models.InventoryItem)}
}

func (f *fakeInventoryRepo) CreateItem(_ repositories.SQLExecutor, item *models.InventoryItem) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	item.ID = f.nextID
	item.CreatedAt = time.Now()
	f.items[item.ID] = *item
	return item.ID, nil
}

func (f *fakeInventoryRepo) get(companyID, id int64) (models.InventoryItem, bool) {
	it, ok := f.items[id]
	if !ok || it.CompanyID != companyID {
		return models.InventoryItem{}, false
	}
	return it, true
}

func (f *fakeInventoryRepo) GetItemByID(companyID, id int64) (*models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.get(companyID, id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &it, nil
}

func (f *fakeInventoryRepo) GetItemForUpdate(_ repositories.SQLExecutor, companyID, id int64) (*models.InventoryItem, error) {
	return f.GetItemByID(companyID, id)
}

func matches(field *string, needle string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), needle)
}

func (f *fakeInventoryRepo) GetItems(companyID int64, search string) ([]models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	needle := strings.ToLower(search)
	items := []models.InventoryItem{}
	for _, it := range f.items {
		if it.CompanyID != companyID {
			continue
		}
		if search != "" && !matches(it.ItemSKU, needle) && !matches(it.Description, needle) && !matches(it.SerialOrIMEI, needle) {
			continue
		}
		items = append(items, it)
	}
	// Newest first, same as the created_at DESC ordering in SQL.
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items, nil
}

func (f *fakeInventoryRepo) UpdateItem(_ repositories.SQLExecutor, item *models.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.get(item.CompanyID, item.ID); !ok {
		return repositories.ErrNotFound
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeInventoryRepo) DeleteItem(_ repositories.SQLExecutor, companyID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.get(companyID, id); !ok {
		return repositories.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeInventoryRepo) DecrementQty(_ repositories.SQLExecutor, companyID, itemID int64, qty int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.get(companyID, itemID)
	if !ok {
		return 0, repositories.ErrNotFound
	}
	if it.Qty < qty {
		return 0, repositories.ErrInsufficientStock
	}
	it.Qty -= qty
	f.items[itemID] = it
	return it.Qty, nil
}

// fakeSalesRepo is an append-only in-memory sale store.
type fakeSalesRepo struct {
	mu     sync.Mutex
	nextID int64
	sales  []models.SaleRecord
}

var _ repositories.SalesRepository = (*fakeSalesRepo)(nil)

func newFakeSalesRepo() *fakeSalesRepo {
	return &fakeSalesRepo{}
}

func (f *fakeSalesRepo) CreateSale(_ repositories.SQLExecutor, sale *models.SaleRecord) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	sale.ID = f.nextID
	sale.SoldAt = time.Now()
	f.sales = append(f.sales, *sale)
	return sale.ID, nil
}

func (f *fakeSalesRepo) GetSales(companyID int64) ([]models.SaleRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sales := []models.SaleRecord{}
	for i := len(f.sales) - 1; i >= 0; i-- {
		if f.sales[i].CompanyID == companyID {
			sales = append(sales, f.sales[i])
		}
	}
	return sales, nil
}

func (f *fakeSalesRepo) GetSalesSummary(companyID int64) (int, decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	profit := decimal.Zero
	for _, s := range f.sales {
		if s.CompanyID == companyID {
			count++
			profit = profit.Add(s.Profit)
		}
	}
	return count, profit, nil
}

// fakeProfileRepo keeps companies and profiles (one per user) in memory.
type fakeProfileRepo struct {
	mu        sync.Mutex
	nextID    int64
	companies map[int64]string
	profiles  map[int64]models.Profile
}

var _ repositories.ProfileRepository = (*fakeProfileRepo)(nil)

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		companies: make(map[int64]string),
		profiles:  make(map[int64]models.Profile),
	}
}

func (f *fakeProfileRepo) CreateCompany(_ repositories.SQLExecutor, name string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.companies[f.nextID] = name
	return f.nextID, nil
}

func (f *fakeProfileRepo) UpsertProfile(_ repositories.SQLExecutor, profile *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile.CreatedAt = time.Now()
	f.profiles[profile.UserID] = *profile
	return nil
}

func (f *fakeProfileRepo) GetProfileByUserID(userID int64) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProfileRepo) GetProfilesByCompany(companyID int64) ([]models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profiles := []models.Profile{}
	for _, p := range f.profiles {
		if p.CompanyID == companyID {
			profiles = append(profiles, p)
		}
	}
	return profiles, nil
}

// fakeAuthRepo keeps user accounts in memory. Lookups attach the profile from
// the linked fakeProfileRepo, mirroring the LEFT JOIN in the SQL repository.
type fakeAuthRepo struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]models.User
	hashes   map[int64]string
	profiles *fakeProfileRepo
}

var _ repositories.AuthRepository = (*fakeAuthRepo)(nil)

func newFakeAuthRepo(profiles *fakeProfileRepo) *fakeAuthRepo {
	return &fakeAuthRepo{
		users:    make(map[int64]models.User),
		hashes:   make(map[int64]string),
		profiles: profiles,
	}
}

func (f *fakeAuthRepo) CreateUser(_ repositories.SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return 0, repositories.ErrDuplicateKey
		}
	}
	f.nextID++
	stored := *user
	stored.ID = f.nextID
	stored.IsActive = true
	stored.CreatedAt = time.Now()
	f.users[stored.ID] = stored
	f.hashes[stored.ID] = hashedPassword
	return stored.ID, nil
}

func (f *fakeAuthRepo) withProfile(u models.User) *models.User {
	if p, err := f.profiles.GetProfileByUserID(u.ID); err == nil {
		u.Profile = p
	}
	return &u
}

func (f *fakeAuthRepo) FindUserByEmail(email string) (*models.User, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, u := range f.users {
		if u.Email == email {
			return f.withProfile(u), f.hashes[id], nil
		}
	}
	return nil, "", repositories.ErrNotFound
}

func (f *fakeAuthRepo) FindUserByID(userID int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return f.withProfile(u), nil
}

// dec parses a decimal literal or fails the build of the test fixture.
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}
