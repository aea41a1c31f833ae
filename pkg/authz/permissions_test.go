package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Empresas-api/pkg/authz"
)

func TestAllowed_SuperadminGestionaEmpresas(t *testing.T) {
	assert.True(t, authz.Allowed("superadmin", authz.ResourceCompanies, authz.ActionCreate))
	assert.True(t, authz.Allowed("superadmin", authz.ResourceCompanies, authz.ActionDelete))
	assert.True(t, authz.Allowed("superadmin", authz.ResourceUsers, authz.ActionList))
}

func TestAllowed_CompanyadminNoCreaNiBorraEmpresas(t *testing.T) {
	assert.False(t, authz.Allowed("companyadmin", authz.ResourceCompanies, authz.ActionCreate))
	assert.False(t, authz.Allowed("companyadmin", authz.ResourceCompanies, authz.ActionDelete))
	assert.True(t, authz.Allowed("companyadmin", authz.ResourceCompanies, authz.ActionUpdate))
}

func TestAllowed_CompanyadminGestionaEmpleadosLeadsYTareas(t *testing.T) {
	assert.True(t, authz.Allowed("companyadmin", authz.ResourceEmployees, authz.ActionCreate))
	assert.True(t, authz.Allowed("companyadmin", authz.ResourceEmployees, authz.ActionDelete))
	assert.True(t, authz.Allowed("companyadmin", authz.ResourceLeads, authz.ActionCreate))
	assert.True(t, authz.Allowed("companyadmin", authz.ResourceTasks, authz.ActionCreate))
	assert.True(t, authz.Allowed("companyadmin", authz.ResourceReports, authz.ActionRead))
}

func TestAllowed_EmpleadoSoloActualizaTareas(t *testing.T) {
	assert.True(t, authz.Allowed("employee", authz.ResourceTasks, authz.ActionUpdate))
	assert.False(t, authz.Allowed("employee", authz.ResourceTasks, authz.ActionCreate))
	assert.False(t, authz.Allowed("employee", authz.ResourceLeads, authz.ActionList))
	assert.False(t, authz.Allowed("employee", authz.ResourceEmployees, authz.ActionCreate))
}

func TestAllowed_RolDesconocido_TodoDenegado(t *testing.T) {
	assert.False(t, authz.Allowed("invitado", authz.ResourceCompanies, authz.ActionRead))
	assert.False(t, authz.Allowed("", authz.ResourceTasks, authz.ActionList))
}

func TestResources_VisibilidadPorRol(t *testing.T) {
	assert.Contains(t, authz.Resources("superadmin"), authz.ResourceCompanies)
	assert.Contains(t, authz.Resources("companyadmin"), authz.ResourceLeads)
	assert.NotContains(t, authz.Resources("employee"), authz.ResourceLeads)
	assert.Nil(t, authz.Resources("invitado"))
}

// Los recursos salen ordenados: el cliente los usa para componer menús
// estables.
func TestResources_Ordenados(t *testing.T) {
	resources := authz.Resources("companyadmin")
	for i := 1; i < len(resources); i++ {
		assert.LessOrEqual(t, resources[i-1], resources[i])
	}
}
