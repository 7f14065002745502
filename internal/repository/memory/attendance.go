package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{records: make(map[string]attendance.Attendance)}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (r *AttendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.EmployeeID == record.EmployeeID && sameDay(existing.Date, record.Date) {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	r.records[record.ID] = record
	return record, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return record, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if record.EmployeeID == employeeID && sameDay(record.Date, date) {
			found := record
			return &found, nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepository) GetByDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []attendance.Attendance
	for _, record := range r.records {
		if record.EmployeeID != employeeID {
			continue
		}
		if record.Date.Before(start) || record.Date.After(end) {
			continue
		}
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[record.ID]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = time.Now()
	r.records[record.ID] = record
	return nil
}

func (r *AttendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []attendance.Attendance
	for _, record := range r.records {
		if filter.EmployeeID != nil && *filter.EmployeeID != "" && record.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.StartDate != nil && *filter.StartDate != "" {
			start, _ := time.ParseInLocation("2006-01-02", *filter.StartDate, record.Date.Location())
			if record.Date.Before(start) {
				continue
			}
		}
		if filter.EndDate != nil && *filter.EndDate != "" {
			end, _ := time.ParseInLocation("2006-01-02", *filter.EndDate, record.Date.Location())
			if record.Date.After(end) {
				continue
			}
		}
		matched = append(matched, record)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].EmployeeID < matched[j].EmployeeID
	})

	total := int64(len(matched))

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return []attendance.Attendance{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type TardinessRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.TardinessRecord
}

func NewTardinessRepository() *TardinessRepository {
	return &TardinessRepository{records: make(map[string]attendance.TardinessRecord)}
}

func (r *TardinessRepository) Create(ctx context.Context, record attendance.TardinessRecord) (attendance.TardinessRecord, error) {
	if record.AttendanceID == "" {
		return attendance.TardinessRecord{}, attendance.ErrMissingAttendanceID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.CreatedAt = time.Now()
	r.records[record.ID] = record
	return record, nil
}

func (r *TardinessRepository) GetByAttendanceID(ctx context.Context, attendanceID string) ([]attendance.TardinessRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []attendance.TardinessRecord
	for _, record := range r.records {
		if record.AttendanceID == attendanceID {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out, nil
}

func (r *TardinessRepository) DeleteByAttendanceID(ctx context.Context, attendanceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, record := range r.records {
		if record.AttendanceID == attendanceID {
			delete(r.records, id)
		}
	}
	return nil
}
