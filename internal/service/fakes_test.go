package service

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/event-planner/internal/domain"
)

// In-memory repository fakes. They mirror the store's behavior closely
// enough for service tests: descending id ordering, pgx.ErrNoRows for
// misses, and a unique-violation PgError when a username or email is
// already taken.

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return uniqueViolation("users_username_key")
		}
		if existing.Email == user.Email {
			return uniqueViolation("users_email_key")
		}
	}
	f.nextID++
	user.ID = f.nextID
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, existing := range f.users {
		if id == user.ID {
			continue
		}
		if existing.Username == user.Username {
			return uniqueViolation("users_username_key")
		}
		if existing.Email == user.Email {
			return uniqueViolation("users_email_key")
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetByUsernameOrEmail(_ context.Context, identifier string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == identifier || user.Email == identifier {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) FindConflict(_ context.Context, username, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == username || user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context, limit, offset int) ([]domain.User, error) {
	ids := sortedIDsDesc(f.users)
	var result []domain.User
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		result = append(result, *f.users[ids[i]])
	}
	return result, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeEventRepo struct {
	nextID int64
	events map[int64]*domain.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[int64]*domain.Event)}
}

func (f *fakeEventRepo) Create(_ context.Context, event *domain.Event) error {
	f.nextID++
	event.ID = f.nextID
	clone := *event
	f.events[event.ID] = &clone
	return nil
}

func (f *fakeEventRepo) Update(_ context.Context, event *domain.Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *event
	f.events[event.ID] = &clone
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.events[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *event
	return &clone, nil
}

func (f *fakeEventRepo) List(_ context.Context, limit, offset int) ([]domain.Event, error) {
	ids := sortedIDsDesc(f.events)
	var result []domain.Event
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		result = append(result, *f.events[ids[i]])
	}
	return result, nil
}

func (f *fakeEventRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.events)), nil
}

type fakeVendorRepo struct {
	nextID  int64
	vendors map[int64]*domain.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[int64]*domain.Vendor)}
}

func (f *fakeVendorRepo) Create(_ context.Context, vendor *domain.Vendor) error {
	f.nextID++
	vendor.ID = f.nextID
	clone := *vendor
	f.vendors[vendor.ID] = &clone
	return nil
}

func (f *fakeVendorRepo) Update(_ context.Context, vendor *domain.Vendor) error {
	if _, ok := f.vendors[vendor.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *vendor
	f.vendors[vendor.ID] = &clone
	return nil
}

func (f *fakeVendorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.vendors[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.vendors, id)
	return nil
}

func (f *fakeVendorRepo) GetByID(_ context.Context, id int64) (*domain.Vendor, error) {
	vendor, ok := f.vendors[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *vendor
	return &clone, nil
}

func (f *fakeVendorRepo) List(_ context.Context, limit, offset int) ([]domain.Vendor, error) {
	ids := sortedIDsDesc(f.vendors)
	var result []domain.Vendor
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		result = append(result, *f.vendors[ids[i]])
	}
	return result, nil
}

func (f *fakeVendorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.vendors)), nil
}

type fakeBookingRepo struct {
	nextID   int64
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = time.Now()
	clone := *booking
	f.bookings[booking.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *booking
	f.bookings[booking.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *booking
	return &clone, nil
}

func (f *fakeBookingRepo) List(_ context.Context, limit, offset int) ([]domain.Booking, error) {
	ids := sortedIDsDesc(f.bookings)
	var result []domain.Booking
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		result = append(result, *f.bookings[ids[i]])
	}
	return result, nil
}

func (f *fakeBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func sortedIDsDesc[V any](m map[int64]*V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	return ids
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
