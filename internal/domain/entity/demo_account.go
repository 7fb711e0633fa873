package entity

// DemoAccount es una credencial de demostración con la que se puede iniciar
// sesión (una por rol). El secreto se guarda como hash bcrypt y nunca se
// serializa hacia afuera: la identidad persistida es solo el User.
type DemoAccount struct {
	User
	SecretHash []byte
}
