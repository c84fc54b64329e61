package auth

import "github.com/viamercado/pdv-varejo/internal/domain/user"

// Action identifica uma operação sensível do sistema
type Action string

const (
	ActionEmitirNFe      Action = "fiscal:emitir"
	ActionCancelarNFe    Action = "fiscal:cancelar"
	ActionCartaCorrecao  Action = "fiscal:carta_correcao"
	ActionExcluir        Action = "registro:excluir"
	ActionGerenciarUser  Action = "usuario:gerenciar"
	ActionConfigurar     Action = "configuracao:alterar"
	ActionFinalizarVenda Action = "venda:finalizar"
	ActionAjustarEstoque Action = "estoque:ajustar"
)

// rolePolicy mapeia cada ação aos papéis autorizados. Toda checagem de
// autorização do sistema passa por Allowed, tanto a do middleware quanto
// a reexecutada pelos controllers antes de operações de escrita.
var rolePolicy = map[Action][]user.Role{
	ActionEmitirNFe:      {user.RoleAdmin, user.RoleGerente},
	ActionCancelarNFe:    {user.RoleAdmin, user.RoleGerente},
	ActionCartaCorrecao:  {user.RoleAdmin, user.RoleGerente},
	ActionExcluir:        {user.RoleAdmin, user.RoleGerente},
	ActionGerenciarUser:  {user.RoleAdmin},
	ActionConfigurar:     {user.RoleAdmin, user.RoleGerente},
	ActionFinalizarVenda: {user.RoleAdmin, user.RoleGerente, user.RoleOperadorCaixa, user.RoleVendedor},
	ActionAjustarEstoque: {user.RoleAdmin, user.RoleGerente},
}

// Allowed verifica se o papel informado pode executar a ação
func Allowed(role user.Role, action Action) bool {
	allowed, ok := rolePolicy[action]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// Roles retorna os papéis autorizados para uma ação
func Roles(action Action) []user.Role {
	return rolePolicy[action]
}
