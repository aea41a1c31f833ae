// Package authz define la tabla declarativa de permisos
// (rol, recurso, acción) → permitido. La consultan tanto el middleware HTTP
// como el cliente (visibilidad de menús), para que nunca diverjan.
package authz

import "sort"

// Recursos conocidos.
const (
	ResourceCompanies = "companies"
	ResourceEmployees = "employees"
	ResourceUsers     = "users"
	ResourceLeads     = "leads"
	ResourceTasks     = "tasks"
	ResourceReports   = "reports"
)

// Acciones conocidas.
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionList   = "list"
)

type actionSet map[string]struct{}

func actions(as ...string) actionSet {
	set := make(actionSet, len(as))
	for _, a := range as {
		set[a] = struct{}{}
	}
	return set
}

// table es la única fuente de verdad de autorización por rol.
var table = map[string]map[string]actionSet{
	"superadmin": {
		ResourceCompanies: actions(ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList),
		ResourceEmployees: actions(ActionRead, ActionList),
		ResourceUsers:     actions(ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList),
		ResourceReports:   actions(ActionRead),
	},
	"companyadmin": {
		ResourceCompanies: actions(ActionRead, ActionUpdate, ActionList),
		ResourceEmployees: actions(ActionCreate, ActionRead, ActionDelete, ActionList),
		ResourceUsers:     actions(ActionRead, ActionUpdate),
		ResourceLeads:     actions(ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList),
		ResourceTasks:     actions(ActionCreate, ActionUpdate, ActionDelete, ActionList),
		ResourceReports:   actions(ActionRead),
	},
	"employee": {
		ResourceCompanies: actions(ActionRead, ActionList),
		ResourceEmployees: actions(ActionRead, ActionList),
		ResourceUsers:     actions(ActionRead, ActionUpdate),
		ResourceTasks:     actions(ActionUpdate, ActionList),
	},
}

// Allowed informa si el rol puede ejecutar la acción sobre el recurso.
func Allowed(role, resource, action string) bool {
	perms, ok := table[role]
	if !ok {
		return false
	}
	set, ok := perms[resource]
	if !ok {
		return false
	}
	_, ok = set[action]
	return ok
}

// Resources devuelve los recursos visibles para un rol (al menos una acción
// permitida), ordenados. El cliente lo usa para componer menús.
func Resources(role string) []string {
	perms, ok := table[role]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(perms))
	for resource := range perms {
		out = append(out, resource)
	}
	sort.Strings(out)
	return out
}
