// Package session is the local mock sign-in. Nothing is verified; the name is
// only remembered so the shell can greet the user.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/kvstore"
)

const (
	userKey     = "session_user"
	signedInKey = "session_signed_in"
)

var ErrEmptyUsername = errors.New("username is empty")

type User struct {
	Name     string `json:"name"`
	SignedIn bool   `json:"signed_in"`
}

type Store struct {
	kv     kvstore.Store
	logger *zap.Logger
}

func New(kv kvstore.Store, logger *zap.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

func (s *Store) SignIn(ctx context.Context, username string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, ErrEmptyUsername
	}
	if err := s.kv.PutString(ctx, userKey, username); err != nil {
		return User{}, fmt.Errorf("sign in: %w", err)
	}
	if err := s.kv.PutBool(ctx, signedInKey, true); err != nil {
		return User{}, fmt.Errorf("sign in: %w", err)
	}
	s.logger.Info("Signed in", zap.String("user", username))
	return User{Name: username, SignedIn: true}, nil
}

// SignOut keeps the last username so it can be offered on the next sign in.
func (s *Store) SignOut(ctx context.Context) error {
	if err := s.kv.PutBool(ctx, signedInKey, false); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// Current returns the remembered user. Storage failures read as signed out.
func (s *Store) Current(ctx context.Context) User {
	name, _, err := s.kv.GetString(ctx, userKey)
	if err != nil {
		s.logger.Warn("Can't read session user", zap.Error(err))
		return User{}
	}
	signedIn, _, err := s.kv.GetBool(ctx, signedInKey)
	if err != nil {
		s.logger.Warn("Can't read session flag", zap.Error(err))
		return User{Name: name}
	}
	return User{Name: name, SignedIn: signedIn && name != ""}
}
