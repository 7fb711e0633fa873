// Package auth implementa el gestor de sesión del portal: login/logout contra
// las cuentas demo, restauración de la sesión persistida y la identidad
// actual de la que derivan las comprobaciones de acceso.
package auth

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/portal-isp-api/internal/application/dto"
	"github.com/jhoicas/portal-isp-api/internal/application/ports"
	"github.com/jhoicas/portal-isp-api/internal/domain"
	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
	"github.com/jhoicas/portal-isp-api/pkg/jwt"
)

// SessionKey clave del registro de sesión persistido.
const SessionKey = "user"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase gestor de sesión. El portal modela una única sesión activa por
// proceso: la identidad actual es estado del use case, no de la petición.
type UseCase struct {
	mu       sync.RWMutex
	current  *entity.User // nil = no autenticado
	loading  bool
	accounts []*entity.DemoAccount
	store    ports.SessionStore
	notifier ports.Notifier
	jwtCfg   JWTConfig
	delay    time.Duration // latencia simulada del login
}

// NewUseCase construye el gestor de sesión.
func NewUseCase(accounts []*entity.DemoAccount, store ports.SessionStore, notifier ports.Notifier, jwtCfg JWTConfig, loginDelay time.Duration) *UseCase {
	return &UseCase{
		accounts: accounts,
		store:    store,
		notifier: notifier,
		jwtCfg:   jwtCfg,
		delay:    loginDelay,
		loading:  true,
	}
}

// RestoreSession intenta cargar la identidad persistida bajo la clave "user".
// Un registro corrupto se descarta en silencio y se continúa sin sesión.
// Siempre termina con loading=false.
func (uc *UseCase) RestoreSession() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	defer func() { uc.loading = false }()

	raw, ok, err := uc.store.Get(SessionKey)
	if err != nil || !ok {
		return
	}
	var persisted dto.UserResponse
	if err := json.Unmarshal(raw, &persisted); err != nil || persisted.ID == "" {
		_ = uc.store.Delete(SessionKey)
		return
	}
	uc.current = &entity.User{
		ID:        persisted.ID,
		Name:      persisted.Name,
		Email:     persisted.Email,
		Role:      entity.Role(persisted.Role),
		Phone:     persisted.Phone,
		Address:   persisted.Address,
		CreatedAt: persisted.CreatedAt,
	}
}

// Login valida email + secreto compartido contra las cuentas demo, con la
// latencia simulada configurada. Credenciales inválidas son un fallo
// recuperable: ErrUnauthorized, identidad intacta, notificación destructiva.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	if uc.delay > 0 {
		select {
		case <-time.After(uc.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	account := uc.findAccount(email)
	if account == nil || bcrypt.CompareHashAndPassword(account.SecretHash, []byte(password)) != nil {
		uc.notifier.Failure("Login failed", "Invalid email or password")
		return nil, domain.ErrUnauthorized
	}

	// Identidad sin material secreto: es lo que se persiste y se devuelve.
	identity := account.User

	userJSON, err := json.Marshal(dto.ToUserResponse(&identity))
	if err != nil {
		return nil, err
	}
	if err := uc.store.Set(SessionKey, userJSON); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.current = &identity
	uc.mu.Unlock()

	token, err := jwt.Generate(uc.jwtCfg.Secret, identity.ID, string(identity.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success("Login successful", "Welcome back, "+identity.Name+"!")
	return &dto.LoginResponse{Token: token, User: *dto.ToUserResponse(&identity)}, nil
}

// Logout limpia la identidad actual y el registro persistido.
func (uc *UseCase) Logout() error {
	uc.mu.Lock()
	uc.current = nil
	uc.mu.Unlock()
	if err := uc.store.Delete(SessionKey); err != nil {
		return err
	}
	uc.notifier.Success("Logged out", "You have been successfully logged out")
	return nil
}

// CurrentUser devuelve una copia de la identidad actual, o nil.
func (uc *UseCase) CurrentUser() *entity.User {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.current == nil {
		return nil
	}
	u := *uc.current
	return &u
}

// IsAuthenticated indica si hay identidad activa.
func (uc *UseCase) IsAuthenticated() bool {
	return uc.CurrentUser() != nil
}

// IsLoading indica si la restauración inicial sigue en curso.
func (uc *UseCase) IsLoading() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loading
}

// UserByID devuelve la identidad de una cuenta demo por id, o nil.
// Lo usa el perfil del admin, que no vive en los repositorios de dominio.
func (uc *UseCase) UserByID(id string) *entity.User {
	for _, a := range uc.accounts {
		if a.ID == id {
			u := a.User
			return &u
		}
	}
	return nil
}

func (uc *UseCase) findAccount(email string) *entity.DemoAccount {
	for _, a := range uc.accounts {
		if a.Email == email {
			return a
		}
	}
	return nil
}
