package user

import "context"

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List lista os usuários com paginação
	List(ctx context.Context, limit, offset int) ([]*User, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error

	// UpdateStatus atualiza o status de um usuário
	UpdateStatus(ctx context.Context, id string, status Status) error

	// RegisterLogin atualiza o momento do último login
	RegisterLogin(ctx context.Context, id string) error

	// HasRole verifica, no banco, se o usuário possui um dos papéis informados.
	// É a checagem autoritativa usada antes de operações sensíveis; a claim
	// do token serve apenas como atalho de UX.
	HasRole(ctx context.Context, id string, roles ...Role) (bool, error)
}
