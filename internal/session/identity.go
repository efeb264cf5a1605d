// Package session carries the authenticated identity between requests and
// decides whether a request may reach a role-restricted operation.
package session

import (
	"context"

	"clinic-scheduler/internal/auth"
	"clinic-scheduler/internal/model"
)

// Identity is what a session holds. The zero value is the anonymous state.
type Identity struct {
	UserID string
	Role   model.Role
	Name   string
	Email  string
}

func (id Identity) Authenticated() bool { return id.UserID != "" }

// FromUser builds the identity stored after a successful login.
func FromUser(u *model.User) Identity {
	return Identity{UserID: u.ID, Role: u.Role, Name: u.Name, Email: u.Email}
}

type contextKey struct{ name string }

var identityKey = contextKey{"identity"}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext returns the identity in ctx, or the anonymous identity.
func FromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(identityKey).(Identity)
	return id
}

// Codec turns an identity into a signed token and back.
type Codec struct {
	secret string
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: secret}
}

func (c *Codec) Encode(id Identity) (string, error) {
	return auth.MakeToken(id.UserID, string(id.Role), id.Name, id.Email, c.secret)
}

func (c *Codec) Decode(raw string) (Identity, error) {
	claims, err := auth.ParseToken(raw, c.secret)
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		UserID: claims.UserID,
		Role:   model.Role(claims.Role),
		Name:   claims.Name,
		Email:  claims.Email,
	}, nil
}
