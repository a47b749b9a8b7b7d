package users

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound           = errors.New("users: not found")
	ErrInvalidCredentials = errors.New("users: invalid credentials")
)

// Record is a single user entry. The set is fixed at startup and never
// mutated while the process runs.
type Record struct {
	ID       int
	Username string

	// Password is compared byte-for-byte, matching the reference
	// deployment this service replaces. PasswordHash, when set, takes
	// precedence and is verified with bcrypt instead.
	Password     string
	PasswordHash string
}

func (r Record) matches(password string) bool {
	if r.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword(
			[]byte(r.PasswordHash),
			[]byte(password),
		) == nil
	}
	return r.Password == password
}

// Store is the credential lookup collaborator. Implementations must be
// safe for concurrent readers.
type Store interface {
	FindByID(id int) (Record, error)
	FindByCredentials(username, password string) (Record, error)
}

// InMemory is a fixed, ordered list of records.
type InMemory struct {
	records []Record
}

// DefaultRecords is the seed set used when no records are supplied.
func DefaultRecords() []Record {
	return []Record{
		{ID: 1, Username: "test", Password: "test"},
	}
}

func NewInMemory(records ...Record) *InMemory {
	if len(records) == 0 {
		records = DefaultRecords()
	}

	s := &InMemory{records: make([]Record, len(records))}
	copy(s.records, records)
	return s
}

// FindByID matches on integer equality.
func (s *InMemory) FindByID(id int) (Record, error) {
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}

// FindByCredentials returns the first record, in store order, whose
// username and password both match.
func (s *InMemory) FindByCredentials(username, password string) (Record, error) {
	for _, r := range s.records {
		if r.Username != username {
			continue
		}
		if r.matches(password) {
			return r, nil
		}
	}
	return Record{}, ErrInvalidCredentials
}
