// Package authgate is the authorization decision point. It resolves the
// identity behind a session token and evaluates role requirements into a
// tagged Outcome; rendering the outcome (redirect vs JSON status) is the
// caller's business, so page and API routes can share one gate.
package authgate

import (
	"context"

	"github.com/rs/zerolog"

	"adminpanel/api/internal/models"
	"adminpanel/api/internal/security"
)

type Decision int

const (
	DecisionAuthorized Decision = iota
	DecisionUnauthenticated
	DecisionForbidden
)

type Outcome struct {
	Decision Decision
	User     models.User
}

// UserSource is the slice of the user store the gate needs: a lookup of
// public fields only. The password hash never flows through this path.
type UserSource interface {
	GetPublicByID(ctx context.Context, id int64) (models.User, error)
}

type Gate struct {
	users  UserSource
	secret string
	log    zerolog.Logger
}

func New(users UserSource, sessionSecret string, log zerolog.Logger) *Gate {
	return &Gate{
		users:  users,
		secret: sessionSecret,
		log:    log,
	}
}

// CurrentUser resolves a session token to a user. Unparseable tokens,
// deleted users and store failures all collapse into "anonymous": a
// stale session must never surface as a hard error.
func (g *Gate) CurrentUser(ctx context.Context, token string) (models.User, bool) {
	if token == "" {
		return models.User{}, false
	}

	userID, err := security.ParseSessionToken(token, g.secret)
	if err != nil {
		return models.User{}, false
	}

	user, err := g.users.GetPublicByID(ctx, userID)
	if err != nil {
		g.log.Debug().Err(err).Int64("user_id", userID).Msg("session resolved to no user")
		return models.User{}, false
	}
	return user, true
}

func (g *Gate) Authenticate(ctx context.Context, token string) Outcome {
	user, ok := g.CurrentUser(ctx, token)
	if !ok {
		return Outcome{Decision: DecisionUnauthenticated}
	}
	return Outcome{Decision: DecisionAuthorized, User: user}
}

func (g *Gate) Authorize(ctx context.Context, token string, role models.UserRole) Outcome {
	outcome := g.Authenticate(ctx, token)
	if outcome.Decision != DecisionAuthorized {
		return outcome
	}
	if outcome.User.Role != role {
		return Outcome{Decision: DecisionForbidden, User: outcome.User}
	}
	return outcome
}
