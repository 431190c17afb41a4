package domain

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/talkmate/talkmate-backend/internal/ports"
)

const (
	accessTTL  = 1 * time.Hour
	refreshTTL = 7 * 24 * time.Hour

	kindAccess  = "access"
	kindRefresh = "refresh"
)

type authService struct {
	users  ports.UserRepo
	tokens ports.TokenRepo
	secret string
	now    func() time.Time
}

func NewAuthService(users ports.UserRepo, tokens ports.TokenRepo, secret string) ports.AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		secret: secret,
		now:    time.Now,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, ports.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	return s.users.Create(ctx, username, string(hash))
}

func (s *authService) Login(ctx context.Context, username, password string) (ports.TokenPair, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return ports.TokenPair{}, ports.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ports.TokenPair{}, ports.ErrInvalidCredentials
	}

	access := s.issue(user.ID, kindAccess, uuid.NewString(), s.now().Add(accessTTL))

	refreshJTI := uuid.NewString()
	refreshExp := s.now().Add(refreshTTL)
	refresh := s.issue(user.ID, kindRefresh, refreshJTI, refreshExp)

	if err := s.tokens.Save(ctx, refreshJTI, user.ID, refreshExp); err != nil {
		return ports.TokenPair{}, err
	}

	return ports.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, jti, err := s.verify(refreshToken, kindRefresh)
	if err != nil {
		return "", err
	}

	// отозванный refresh не продлевается
	ok, err := s.tokens.Exists(ctx, jti)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ports.ErrInvalidToken
	}

	return s.issue(userID, kindAccess, uuid.NewString(), s.now().Add(accessTTL)), nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	_, jti, err := s.verify(refreshToken, kindRefresh)
	if err != nil {
		return err
	}

	deleted, err := s.tokens.Delete(ctx, jti)
	if err != nil {
		return err
	}
	if !deleted {
		return ports.ErrInvalidToken
	}
	return nil
}

func (s *authService) ValidateAccess(ctx context.Context, token string) (int64, error) {
	userID, _, err := s.verify(token, kindAccess)
	return userID, err
}

// issue — payload "userID.kind.jti.exp", подпись HMAC-SHA256
func (s *authService) issue(userID int64, kind, jti string, exp time.Time) string {
	payload := fmt.Sprintf("%d.%s.%s.%d", userID, kind, jti, exp.Unix())
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return encoded + "." + s.sign(payload)
}

func (s *authService) verify(token, wantKind string) (int64, string, error) {
	encoded, sig, found := strings.Cut(token, ".")
	if !found {
		return 0, "", ports.ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return 0, "", ports.ErrInvalidToken
	}
	payload := string(raw)

	if !hmac.Equal([]byte(s.sign(payload)), []byte(sig)) {
		return 0, "", ports.ErrInvalidToken
	}

	parts := strings.Split(payload, ".")
	if len(parts) != 4 {
		return 0, "", ports.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || userID <= 0 {
		return 0, "", ports.ErrInvalidToken
	}
	if parts[1] != wantKind {
		return 0, "", ports.ErrInvalidToken
	}

	exp, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || s.now().Unix() > exp {
		return 0, "", ports.ErrInvalidToken
	}

	return userID, parts[2], nil
}

func (s *authService) sign(msg string) string {
	h := hmac.New(sha256.New, []byte(s.secret))
	h.Write([]byte(msg))
	return hex.EncodeToString(h.Sum(nil))
}
