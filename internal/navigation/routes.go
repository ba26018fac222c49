package navigation

import (
	"strings"

	"stockroom/pkg/roles"
)

const (
	PathLogin        = "/login"
	PathShop         = "/shop"
	PathEmailWaiting = "/email-waiting"
)

// Route describes one client view. Path segments starting with ":" match any
// value; a trailing "?" makes the segment optional.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	RolesAllowed []roles.Role
	Redirect     string
}

type RouteTable []Route

var staff = []roles.Role{roles.Admin, roles.Employee}

// DefaultRoutes mirrors the views of the stockroom web client.
func DefaultRoutes() RouteTable {
	return RouteTable{
		{Path: "/", Redirect: PathLogin},
		{Path: PathLogin, Name: "login"},
		{Path: "/register", Name: "create-login"},
		{Path: PathShop, Name: "Shop", RequiresAuth: true},
		{Path: "/checkout", Name: "Checkout", RequiresAuth: true},
		{Path: "/order", Name: "OrderPage", RequiresAuth: true},
		{Path: "/item/:id", Name: "ItemDetails", RequiresAuth: true},
		{Path: "/admin/orders", Name: "adminOrders", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/sales-report", Name: "SalesReport", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/categories", Name: "categories", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/categories/create", Name: "categoriesCreate", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/categories/:id/edit", Name: "categoriesEdit", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/suppliers", Name: "suppliers", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/suppliers/create", Name: "suppliersCreate", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/suppliers/:id/edit", Name: "suppliersEdit", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/transactions", Name: "transactions", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/transactions/create", Name: "transactionsCreate", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/transactions/:id/edit", Name: "transactionsEdit", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/employees", Name: "employees", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/employees/create", Name: "employeesCreate", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/employees/:id/edit", Name: "employeesEdit", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/customers", Name: "customers", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/customers/create", Name: "customersCreate", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/customers/:id/edit", Name: "customersEdit", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/stocks", Name: "stocks", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/stocks/lowstock/:stockId?", Name: "stocksLowStock", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/stocks/logs", Name: "stockLogs"},
		{Path: "/stocks/release/:stockId?", Name: "stocksRelease", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/stocks/adjust/:stockId?", Name: "stocksAdjustment", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/stocks/items", Name: "stocksItems"},
		{Path: "/stocks/in", Name: "stocksIn", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/stocks/create", Name: "stocksCreate", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/orders", Name: "orders", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/orders/create", Name: "orderCreate", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/orders/:id/edit", Name: "orderEdit", RequiresAuth: true, RolesAllowed: staff},
		{Path: "/verify-email", Name: "EmailVerification"},
		{Path: PathEmailWaiting, Name: "EmailWaiting"},
	}
}

// Resolve returns the route for path after following redirect routes.
// Unknown paths resolve to a public route carrying the path itself.
func (t RouteTable) Resolve(path string) Route {
	path = cleanPath(path)
	for hops := 0; hops < len(t); hops++ {
		route, ok := t.match(path)
		if !ok {
			return Route{Path: path}
		}
		if route.Redirect == "" {
			return route
		}
		path = cleanPath(route.Redirect)
	}
	return Route{Path: path}
}

func (t RouteTable) match(path string) (Route, bool) {
	for _, route := range t {
		if matchPattern(route.Path, path) {
			return route, true
		}
	}
	return Route{}, false
}

func (r Route) Allows(role roles.Role) bool {
	if len(r.RolesAllowed) == 0 {
		return true
	}
	return role.In(r.RolesAllowed)
}

func matchPattern(pattern, path string) bool {
	patternParts := splitPath(pattern)
	pathParts := splitPath(path)

	i := 0
	for _, part := range patternParts {
		optional := strings.HasPrefix(part, ":") && strings.HasSuffix(part, "?")
		if i >= len(pathParts) {
			if optional {
				continue
			}
			return false
		}
		if !strings.HasPrefix(part, ":") && part != pathParts[i] {
			return false
		}
		i++
	}

	return i == len(pathParts)
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func cleanPath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
