package ports

// Notifier es el canal de notificaciones hacia el usuario (el "toast" del
// portal). Contrato: exactamente una notificación por operación completada,
// nunca en lote.
type Notifier interface {
	// Success notifica una operación completada.
	Success(title, description string)
	// Failure notifica un fallo recuperable visible para el usuario.
	Failure(title, description string)
}
