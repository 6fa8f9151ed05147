package entity

// Roles válidos para User.
const (
	RoleCollector = "collector"
	RoleAdmin     = "admin"
)

// User representa una cuenta del sistema. El rol decide qué operaciones puede
// ejecutar: un collector solo registra solicitantes; un admin además crea usuarios,
// consulta y corrige registros y exporta.
//
// Las columnas coinciden en ambos backends: id, email, password_hash, role.
// El email se persiste siempre en minúsculas para que la búsqueda sea
// case-insensitive. Los usuarios nunca se eliminan.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"` // bcrypt; nunca texto plano después de persistir
	Role         string `json:"role"`          // collector | admin
}

// ValidRole indica si el rol pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	return role == RoleCollector || role == RoleAdmin
}
