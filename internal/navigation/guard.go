package navigation

import (
	"context"
	"errors"

	"stockroom/pkg/models"
	"stockroom/pkg/roles"

	"go.uber.org/zap"
)

// Decision is the outcome of one navigation attempt. An empty Redirect means
// the navigation may proceed.
type Decision struct {
	Redirect string
	Rule     string
}

func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

func allow(rule string) Decision {
	return Decision{Rule: rule}
}

func redirect(rule, path string) Decision {
	return Decision{Redirect: path, Rule: rule}
}

type attempt struct {
	session *Session
	route   Route
}

// rule returns ok=false when it does not apply to the attempt.
type rule struct {
	name  string
	check func(ctx context.Context, a attempt) (Decision, bool)
}

// Guard evaluates its rules in order for every navigation; the first rule
// that applies decides.
type Guard struct {
	routes RouteTable
	users  UserFetcher
	logger *zap.Logger
	rules  []rule
}

func NewGuard(routes RouteTable, users UserFetcher, logger *zap.Logger) *Guard {
	g := &Guard{
		routes: routes,
		users:  users,
		logger: logger,
	}
	g.rules = []rule{
		{name: "authenticated-login", check: g.leaveLogin},
		{name: "public", check: g.allowPublic},
		{name: "missing-token", check: g.requireToken},
		{name: "current-user", check: g.checkUser},
	}
	return g
}

func (g *Guard) Navigate(ctx context.Context, session *Session, target string) Decision {
	a := attempt{session: session, route: g.routes.Resolve(target)}
	for _, r := range g.rules {
		if decision, ok := r.check(ctx, a); ok {
			return decision
		}
	}
	return allow("default")
}

func (g *Guard) leaveLogin(_ context.Context, a attempt) (Decision, bool) {
	if a.session.HasToken() && a.route.Path == PathLogin {
		return redirect("authenticated-login", PathShop), true
	}
	return Decision{}, false
}

func (g *Guard) allowPublic(_ context.Context, a attempt) (Decision, bool) {
	if !a.route.RequiresAuth {
		return allow("public"), true
	}
	return Decision{}, false
}

func (g *Guard) requireToken(_ context.Context, a attempt) (Decision, bool) {
	if !a.session.HasToken() {
		return redirect("missing-token", PathLogin), true
	}
	return Decision{}, false
}

func (g *Guard) checkUser(ctx context.Context, a attempt) (Decision, bool) {
	user, err := g.users.CurrentUser(ctx, a.session.Token())
	if err != nil {
		if !errors.Is(err, ErrUnauthorized) {
			g.logger.Warn("Route guard could not load the current user",
				zap.String("path", a.route.Path),
				zap.Error(err),
			)
		}
		a.session.Clear()
		return redirect("current-user", PathLogin), true
	}

	return g.authorize(a.route, user), true
}

func (g *Guard) authorize(route Route, user *models.User) Decision {
	if !user.IsVerified() && route.Path != PathEmailWaiting {
		return redirect("email-unverified", PathEmailWaiting)
	}
	if !route.Allows(roles.Role(user.Role)) {
		return redirect("role", PathShop)
	}
	return allow("authorized")
}
