package entity

// Papéis de usuário. O papel só decide o que a interface mostra;
// a autorização de dados é responsabilidade do backend.
const (
	RoleAdmin    = "admin"
	RoleStandard = "standard"
)

// User representa o usuário autenticado devolvido pelo POST /login.
type User struct {
	ID       int64  `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"` // admin | standard
}
