//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork. Transactions run one at
// a time against a copy of the state that replaces it only on commit.
package memstore

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"doglivebot/internal/domain/booking"
	"doglivebot/internal/domain/navigation"
	"doglivebot/internal/domain/schedule"
	"doglivebot/internal/domain/user"
	"doglivebot/internal/infra"
	"doglivebot/internal/infra/db"
	"doglivebot/internal/usecase/shared"
)

type ScheduleRow struct {
	ID        int64
	WeekStart time.Time
	WeekEnd   time.Time
	Active    bool
	CreatedAt time.Time
}

type SlotRow struct {
	ID         int64
	ScheduleID int64
	Date       time.Time
	Day        schedule.Weekday
	Start      schedule.Clock
	End        schedule.Clock
	Reserved   bool
	Version    int32
}

type BookingRow struct {
	ID       int64
	UserID   int64
	DogID    int64
	SlotID   int64
	Status   booking.Status
	BookedAt time.Time
}

type DogRow struct {
	ID     int64
	UserID int64
	Name   string
}

type state struct {
	seq       int64
	schedules map[int64]ScheduleRow
	slots     map[int64]SlotRow
	bookings  map[int64]BookingRow
	users     map[int64]*user.User
	dogs      map[int64]DogRow
	convs     map[int64]navigation.Record
}

func (s *state) clone() *state {
	return &state{
		seq:       s.seq,
		schedules: maps.Clone(s.schedules),
		slots:     maps.Clone(s.slots),
		bookings:  maps.Clone(s.bookings),
		users:     maps.Clone(s.users),
		dogs:      maps.Clone(s.dogs),
		convs:     maps.Clone(s.convs),
	}
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

type Store struct {
	mu     sync.Mutex
	st     *state
	faults map[string]error
}

func New() *Store {
	return &Store{
		st: &state{
			schedules: map[int64]ScheduleRow{},
			slots:     map[int64]SlotRow{},
			bookings:  map[int64]BookingRow{},
			users:     map[int64]*user.User{},
			dogs:      map[int64]DogRow{},
			convs:     map[int64]navigation.Record{},
		},
		faults: map[string]error{},
	}
}

// Operation names accepted by Fail.
const (
	OpCreateSchedule = "schedules.Create"
	OpCreateSlots    = "slots.CreateBatch"
	OpMarkReserved   = "slots.MarkReserved"
	OpCreateBooking  = "bookings.Create"
	OpFindRecord     = "conversations.Find"
)

// Fail makes every later call of op return err until cleared with a nil err.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.faults, op)
		return
	}
	s.faults[op] = err
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, &memTx{st: work, faults: s.faults}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = work
	return nil
}

// ---- seeding and inspection ----

func (s *Store) AddUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[u.ID()] = u
}

func (s *Store) AddDog(userID int64, name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.st.nextID()
	s.st.dogs[id] = DogRow{ID: id, UserID: userID, Name: name}
	return id
}

// SeedWeek stores an active schedule for the week containing now, with its slots.
func (s *Store) SeedWeek(now time.Time, hours schedule.Hours) (int64, error) {
	sch := schedule.NewWeeklySchedule(now)
	drafts, err := schedule.GenerateWeek(sch.WeekStart(), hours)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.st.nextID()
	s.st.schedules[id] = ScheduleRow{ID: id, WeekStart: sch.WeekStart(), WeekEnd: sch.WeekEnd(), Active: true, CreatedAt: now}
	for _, d := range drafts {
		sid := s.st.nextID()
		s.st.slots[sid] = SlotRow{ID: sid, ScheduleID: id, Date: d.Date, Day: d.Day, Start: d.Start, End: d.End}
	}
	return id, nil
}

func (s *Store) Schedules() []ScheduleRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ScheduleRow, 0, len(s.st.schedules))
	for _, r := range s.st.schedules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) ActiveSchedules() []ScheduleRow {
	var out []ScheduleRow
	for _, r := range s.Schedules() {
		if r.Active {
			out = append(out, r)
		}
	}
	return out
}

// Slots returns the schedule's slots ordered by id.
func (s *Store) Slots(scheduleID int64) []SlotRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []SlotRow
	for _, r := range s.st.slots {
		if r.ScheduleID == scheduleID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Bookings() []BookingRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]BookingRow, 0, len(s.st.bookings))
	for _, r := range s.st.bookings {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) User(id int64) (*user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.st.users[id]
	return u, ok
}

func (s *Store) DogsOf(userID int64) []DogRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []DogRow
	for _, d := range s.st.dogs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Record(userID int64) (navigation.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.convs[userID]
	return r, ok
}

// ---- transaction ----

type memTx struct {
	st     *state
	faults map[string]error
}

func (t *memTx) fault(op string) error { return t.faults[op] }

func (t *memTx) Schedules() shared.ScheduleRepository         { return scheduleRepo{t} }
func (t *memTx) Slots() shared.SlotRepository                 { return slotRepo{t} }
func (t *memTx) Bookings() shared.BookingRepository           { return bookingRepo{t} }
func (t *memTx) Users() shared.UserRepository                 { return userRepo{t} }
func (t *memTx) Dogs() shared.DogRepository                   { return dogRepo{t} }
func (t *memTx) Conversations() shared.ConversationRepository { return convRepo{t} }
func (t *memTx) DB() db.DBTX                                  { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type scheduleRepo struct{ tx *memTx }

func (r scheduleRepo) LockRollover(context.Context, db.DBTX) error { return nil }

func (r scheduleRepo) FindActive(context.Context, db.DBTX) (*schedule.Schedule, error) {
	for _, s := range r.tx.st.schedules {
		if s.Active {
			return schedule.ReconstructSchedule(s.ID, s.WeekStart, s.WeekEnd, true, s.CreatedAt), nil
		}
	}
	return nil, notFound("active schedule not found")
}

func (r scheduleRepo) DeactivateAll(context.Context, db.DBTX) (int64, error) {
	var n int64
	for id, s := range r.tx.st.schedules {
		if s.Active {
			s.Active = false
			r.tx.st.schedules[id] = s
			n++
		}
	}
	return n, nil
}

func (r scheduleRepo) Create(_ context.Context, _ db.DBTX, s *schedule.Schedule) (int64, error) {
	if err := r.tx.fault(OpCreateSchedule); err != nil {
		return 0, infra.WrapRepoErr("failed to create schedule", err, infra.KindDBFailure)
	}
	for _, existing := range r.tx.st.schedules {
		if existing.Active && s.IsActive() {
			return 0, infra.WrapRepoErr("second active schedule", nil, infra.KindDuplicateKey)
		}
	}
	id := r.tx.st.nextID()
	r.tx.st.schedules[id] = ScheduleRow{ID: id, WeekStart: s.WeekStart(), WeekEnd: s.WeekEnd(), Active: s.IsActive(), CreatedAt: s.CreatedAt()}
	return id, nil
}

type slotRepo struct{ tx *memTx }

func (r slotRepo) CreateBatch(_ context.Context, _ db.DBTX, scheduleID int64, drafts []schedule.SlotDraft) (int64, error) {
	if err := r.tx.fault(OpCreateSlots); err != nil {
		return 0, infra.WrapRepoErr("failed to insert slots", err, infra.KindDBFailure)
	}
	type key struct {
		day   schedule.Weekday
		start schedule.Clock
	}
	seen := map[key]bool{}
	for _, s := range r.tx.st.slots {
		if s.ScheduleID == scheduleID {
			seen[key{s.Day, s.Start}] = true
		}
	}
	for _, d := range drafts {
		k := key{d.Day, d.Start}
		if seen[k] {
			return 0, infra.WrapRepoErr("duplicate slot", nil, infra.KindDuplicateKey)
		}
		seen[k] = true
		id := r.tx.st.nextID()
		r.tx.st.slots[id] = SlotRow{ID: id, ScheduleID: scheduleID, Date: d.Date, Day: d.Day, Start: d.Start, End: d.End}
	}
	return int64(len(drafts)), nil
}

func (r slotRepo) FindForUpdate(_ context.Context, _ db.DBTX, scheduleID int64, day schedule.Weekday, slotID int64) (*schedule.Slot, error) {
	s, ok := r.tx.st.slots[slotID]
	if !ok || s.ScheduleID != scheduleID || s.Day != day {
		return nil, notFound("slot not found")
	}
	return schedule.ReconstructSlot(s.ID, s.ScheduleID, s.Date, s.Day, s.Start, s.End, s.Reserved, s.Version), nil
}

func (r slotRepo) MarkReserved(_ context.Context, _ db.DBTX, slotID int64, version int32) (bool, error) {
	if err := r.tx.fault(OpMarkReserved); err != nil {
		return false, infra.WrapRepoErr("failed to reserve slot", err, infra.KindDBFailure)
	}
	s, ok := r.tx.st.slots[slotID]
	if !ok || s.Reserved || s.Version != version {
		return false, nil
	}
	s.Reserved = true
	s.Version++
	r.tx.st.slots[slotID] = s
	return true, nil
}

type bookingRepo struct{ tx *memTx }

func (r bookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (int64, error) {
	if err := r.tx.fault(OpCreateBooking); err != nil {
		return 0, err
	}
	for _, existing := range r.tx.st.bookings {
		if existing.SlotID == b.SlotID() {
			return 0, infra.WrapRepoErr("slot already booked", nil, infra.KindDuplicateKey)
		}
	}
	id := r.tx.st.nextID()
	r.tx.st.bookings[id] = BookingRow{ID: id, UserID: b.UserID(), DogID: b.DogID(), SlotID: b.SlotID(), Status: b.Status(), BookedAt: b.BookedAt()}
	return id, nil
}

type userRepo struct{ tx *memTx }

func (r userRepo) Upsert(_ context.Context, _ db.DBTX, u *user.User) error {
	r.tx.st.users[u.ID()] = u
	return nil
}

type dogRepo struct{ tx *memTx }

func (r dogRepo) Create(_ context.Context, _ db.DBTX, d *user.Dog) (int64, error) {
	if _, ok := r.tx.st.users[d.UserID()]; !ok {
		return 0, infra.WrapRepoErr("owner does not exist", nil, infra.KindForeignKeyViolated)
	}
	id := r.tx.st.nextID()
	r.tx.st.dogs[id] = DogRow{ID: id, UserID: d.UserID(), Name: d.Name().String()}
	return id, nil
}

type convRepo struct{ tx *memTx }

func (r convRepo) Upsert(_ context.Context, _ db.DBTX, userID int64, cmd navigation.Command, at time.Time) error {
	r.tx.st.convs[userID] = navigation.Record{UserID: userID, Command: cmd, UpdatedAt: at}
	return nil
}

func (r convRepo) Find(_ context.Context, _ db.DBTX, userID int64) (*navigation.Record, error) {
	if err := r.tx.fault(OpFindRecord); err != nil {
		return nil, infra.WrapRepoErr("failed to load last command", err, infra.KindDBFailure)
	}
	rec, ok := r.tx.st.convs[userID]
	if !ok {
		return nil, notFound("no last command")
	}
	return &rec, nil
}
