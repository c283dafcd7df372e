package memcontact

import (
	"context"
	"sync"

	"github.com/AutoVitrine/AutoVitrine/internal/models"
	"github.com/pkg/errors"
)

// Store keeps submissions in process memory. Contents are lost on
// restart, and the protocol counter restarts with them.
type Store struct {
	mu          sync.Mutex
	contacts    map[string]models.Contact
	order       []string
	protocolSeq uint64
}

func New() *Store {
	return &Store{
		contacts: make(map[string]models.Contact),
	}
}

func (s *Store) Create(ctx context.Context, c models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contacts[c.IDContato]; ok {
		return errors.New("duplicate contact id")
	}
	s.contacts[c.IDContato] = c
	s.order = append(s.order, c.IDContato)
	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*models.Contact, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok {
		return nil, false, nil
	}
	return &c, true, nil
}

func (s *Store) List(ctx context.Context) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Contact, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.contacts[id])
	}
	return out, nil
}

// NextProtocolSeq increments the shared counter. It is never reset, not
// even on day boundaries, so protocols keep growing across dates.
func (s *Store) NextProtocolSeq(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.protocolSeq++
	return s.protocolSeq, nil
}
