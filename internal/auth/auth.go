// Package auth gates game-master-only RPCs behind a bearer token checked
// against a bcrypt hash
package auth

import (
	"context"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	grpc_auth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

// Scheme is the authorization scheme expected in request metadata
const Scheme = "bearer"

type roleKey struct{}

// Role identifies who made a call
type Role string

const (
	// RoleGameMaster is attached to calls that presented a valid token
	RoleGameMaster Role = "game_master"
)

// RoleFromContext returns the role set by the gate, if any
func RoleFromContext(ctx context.Context) (Role, bool) {
	role, ok := ctx.Value(roleKey{}).(Role)
	return role, ok
}

// Config holds the gate settings
type Config struct {
	// TokenHash is a bcrypt hash of the game-master token. Empty disables
	// every gated method.
	TokenHash string
	// Methods are the full gRPC method names that need the token
	Methods []string
}

// Validate ensures the hash, when present, is a bcrypt hash
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Methods) == 0 {
		vb.RequiredField("Methods")
	}
	if c.TokenHash != "" {
		if _, err := bcrypt.Cost([]byte(c.TokenHash)); err != nil {
			vb.InvalidField("TokenHash", "not a bcrypt hash")
		}
	}

	return vb.Build()
}

// Gate checks game-master tokens
type Gate struct {
	hash    []byte
	methods map[string]struct{}
}

// NewGate creates a gate for the configured methods
func NewGate(cfg *Config) (*Gate, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	methods := make(map[string]struct{}, len(cfg.Methods))
	for _, m := range cfg.Methods {
		methods[m] = struct{}{}
	}

	var hash []byte
	if cfg.TokenHash != "" {
		hash = []byte(cfg.TokenHash)
	} else {
		slog.Warn("game-master token hash not configured, game-master methods are disabled")
	}

	return &Gate{hash: hash, methods: methods}, nil
}

// Requires reports whether a full method name is gated
func (g *Gate) Requires(fullMethod string) bool {
	_, ok := g.methods[fullMethod]
	return ok
}

// Authorize is the grpc_auth.AuthFunc run for gated methods
func (g *Gate) Authorize(ctx context.Context) (context.Context, error) {
	if g.hash == nil {
		return nil, errors.ToGRPCError(errors.PermissionDenied("game-master methods are disabled"))
	}

	token, err := grpc_auth.AuthFromMD(ctx, Scheme)
	if err != nil {
		return nil, err
	}

	if !CheckToken(g.hash, token) {
		slog.WarnContext(ctx, "rejected game-master token")
		return nil, errors.ToGRPCError(errors.Unauthenticated("invalid game-master token"))
	}

	return context.WithValue(ctx, roleKey{}, RoleGameMaster), nil
}

func (g *Gate) match(_ context.Context, callMeta interceptors.CallMeta) bool {
	return g.Requires(callMeta.FullMethod())
}

// UnaryServerInterceptor runs Authorize for gated methods only
func (g *Gate) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return selector.UnaryServerInterceptor(
		grpc_auth.UnaryServerInterceptor(g.Authorize),
		selector.MatchFunc(g.match),
	)
}

// StreamServerInterceptor runs Authorize for gated streaming methods
func (g *Gate) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return selector.StreamServerInterceptor(
		grpc_auth.StreamServerInterceptor(g.Authorize),
		selector.MatchFunc(g.match),
	)
}

// HashToken returns the bcrypt hash to configure for a token
func HashToken(token string) (string, error) {
	if token == "" {
		return "", errors.InvalidArgument("token is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash token")
	}
	return string(hash), nil
}

// CheckToken compares a token with its bcrypt hash
func CheckToken(hash []byte, token string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(token)) == nil
}
