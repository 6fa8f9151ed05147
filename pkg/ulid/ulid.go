package ulid

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produce ULIDs monotónicos: identificadores globalmente únicos y
// ordenables lexicográficamente por instante de creación, incluso para varios
// generados dentro del mismo milisegundo. El orden lexicográfico de los IDs
// coincide así con el orden de creación de los registros.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewGenerator construye un generador con entropía criptográfica.
func NewGenerator() *Generator {
	return &Generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New devuelve un ULID nuevo en representación canónica (26 caracteres, Crockford base32).
func (g *Generator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}
