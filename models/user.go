package models

// User usuário autorizado a acessar o painel. A senha nunca fica em texto
// puro depois da construção do verificador de credenciais.
type User struct {
	Username     string
	PasswordHash []byte
}
