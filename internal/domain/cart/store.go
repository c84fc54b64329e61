package cart

import "sync"

// Store mantém os carrinhos abertos, um por operador, apenas em memória.
// Handlers HTTP rodam em goroutines concorrentes, então todo acesso ao
// carrinho passa pelo mutex do Store: leituras recebem uma cópia e
// mutações acontecem dentro de Mutate, sob o lock.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewStore cria um novo Store vazio
func NewStore() *Store {
	return &Store{
		carts: make(map[string]*Cart),
	}
}

// Get retorna uma cópia do carrinho do operador, criando um vazio se
// necessário. A cópia pode ser lida e serializada sem lock.
func (s *Store) Get(operatorID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(operatorID).Clone()
}

// Mutate executa fn sobre o carrinho do operador sob o lock do Store e
// retorna uma cópia do estado resultante
func (s *Store) Mutate(operatorID string, fn func(c *Cart) error) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(operatorID)
	if err := fn(c); err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// Clear descarta o carrinho do operador (finalização ou cancelamento)
func (s *Store) Clear(operatorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, operatorID)
}

func (s *Store) get(operatorID string) *Cart {
	c, ok := s.carts[operatorID]
	if !ok {
		c = New(operatorID)
		s.carts[operatorID] = c
	}
	return c
}
