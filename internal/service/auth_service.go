package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"food-orders-service/internal/repository"
)

var (
	ErrNoAdmin      = errors.New("no existe el perfil admin")
	ErrUnauthorized = errors.New("contraseña incorrecta")
)

// minTokenLen: un Expo push token real siempre supera esto; strings más
// cortos se descartan sin hacer fallar el login.
const minTokenLen = 10

const tokenTTL = 24 * time.Hour

// AuthService maneja el login del admin y los tokens de sesión.
// La contraseña se guarda hasheada con bcrypt y el acceso a las rutas
// admin se valida con un JWT firmado, no con la contraseña en cada call.
type AuthService struct {
	adminRepo AdminRepository
	jwtSecret []byte
}

func NewAuthService(a AdminRepository, jwtSecret string) *AuthService {
	return &AuthService{adminRepo: a, jwtSecret: []byte(jwtSecret)}
}

// Login valida la contraseña contra el hash guardado y emite un JWT.
// Si viene un push token utilizable, reemplaza el anterior: queda
// registrado un solo dispositivo admin, el último en loguearse.
func (a *AuthService) Login(ctx context.Context, password, pushToken string) (string, error) {
	profile, err := a.adminRepo.Find(ctx)
	if err == repository.ErrNotFound {
		return "", ErrNoAdmin
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return "", ErrUnauthorized
	}

	if len(pushToken) > minTokenLen {
		if err := a.adminRepo.SavePushToken(ctx, pushToken); err != nil {
			return "", err
		}
	} else if pushToken != "" {
		logrus.WithField("len", len(pushToken)).Warn("push token demasiado corto, se descarta")
	}

	return a.issueToken()
}

func (a *AuthService) issueToken() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "Admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.jwtSecret)
}

// ValidateToken verifica firma y expiración del token de sesión.
func (a *AuthService) ValidateToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return a.jwtSecret, nil
		})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}

// EnsureAdmin siembra el perfil admin en el primer arranque.
// Con un perfil ya creado no hace nada, tampoco pisa la contraseña.
func (a *AuthService) EnsureAdmin(ctx context.Context, password string) error {
	if password == "" {
		return nil
	}

	_, err := a.adminRepo.Find(ctx)
	if err == nil {
		return nil
	}
	if err != repository.ErrNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	logrus.Info("creando perfil admin inicial")
	return a.adminRepo.Seed(ctx, string(hash))
}
