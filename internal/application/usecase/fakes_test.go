package usecase_test

import (
	"context"

	"github.com/jhoicas/Empresas-api/internal/application/provisioning"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

// Repositorios falsos en memoria, limitados a lo que consumen los casos de
// uso CRUD.

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	u := *user
	r.users[u.ID] = &u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, u := range r.users {
		dup := *u
		out = append(out, &dup)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	u := *user
	r.users[u.ID] = &u
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string, isFirstLogin bool) error {
	u := r.users[id]
	u.PasswordHash = hash
	u.IsFirstLogin = isFirstLogin
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) DeleteMany(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(r.users, id)
	}
	return nil
}

func (r *fakeUserRepo) AddToCompany(_ context.Context, userID, companyID string) error { return nil }
func (r *fakeUserRepo) RemoveFromCompany(_ context.Context, userID, companyID string) error {
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company

	// failOn inyecta un fallo en una operación concreta, para observar el
	// rollback de las actualizaciones transaccionales.
	failOn map[string]error
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		companies: make(map[string]*entity.Company),
		failOn:    make(map[string]error),
	}
}

func (r *fakeCompanyRepo) fail(op string) error {
	if err, ok := r.failOn[op]; ok {
		return err
	}
	return nil
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	c := *company
	r.companies[c.ID] = &c
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	out := *c
	return &out, nil
}

func (r *fakeCompanyRepo) GetByEmail(_ context.Context, email string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Email == email {
			out := *c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	out := []*entity.Company{}
	for _, c := range r.companies {
		dup := *c
		out = append(out, &dup)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	if err := r.fail("companies.Update"); err != nil {
		return err
	}
	c := *company
	r.companies[c.ID] = &c
	return nil
}

func (r *fakeCompanyRepo) ReplaceDepartments(_ context.Context, companyID string, departments []entity.Department) error {
	if err := r.fail("companies.ReplaceDepartments"); err != nil {
		return err
	}
	r.companies[companyID].Departments = departments
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	delete(r.companies, id)
	return nil
}

type fakeLeadRepo struct {
	leads map[string]*entity.Lead
}

var _ repository.LeadRepository = (*fakeLeadRepo)(nil)

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]*entity.Lead)}
}

func (r *fakeLeadRepo) Create(_ context.Context, lead *entity.Lead) error {
	l := *lead
	r.leads[l.ID] = &l
	return nil
}

func (r *fakeLeadRepo) GetByID(_ context.Context, id string) (*entity.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return nil, nil
	}
	out := *l
	return &out, nil
}

func (r *fakeLeadRepo) ListByCreator(_ context.Context, userID string) ([]*entity.Lead, error) {
	out := []*entity.Lead{}
	for _, l := range r.leads {
		if l.CreatedBy == userID {
			dup := *l
			out = append(out, &dup)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) Update(_ context.Context, lead *entity.Lead) error {
	l := *lead
	r.leads[l.ID] = &l
	return nil
}

func (r *fakeLeadRepo) Delete(_ context.Context, id string) error {
	delete(r.leads, id)
	return nil
}

type fakeTaskRepo struct {
	tasks map[string]*entity.Task
}

var _ repository.TaskRepository = (*fakeTaskRepo)(nil)

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*entity.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entity.Task) error {
	t := *task
	r.tasks[t.ID] = &t
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	out := *t
	return &out, nil
}

func (r *fakeTaskRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Task, error) {
	out := []*entity.Task{}
	for _, t := range r.tasks {
		if t.CompanyID == companyID {
			dup := *t
			out = append(out, &dup)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.tasks[id].Status = status
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	delete(r.tasks, id)
	return nil
}

type fakeEmploymentRepo struct {
	employments map[string]*entity.Employment
}

var _ repository.EmploymentRepository = (*fakeEmploymentRepo)(nil)

func newFakeEmploymentRepo() *fakeEmploymentRepo {
	return &fakeEmploymentRepo{employments: make(map[string]*entity.Employment)}
}

func (r *fakeEmploymentRepo) Create(_ context.Context, employment *entity.Employment) error {
	e := *employment
	r.employments[e.ID] = &e
	return nil
}

func (r *fakeEmploymentRepo) GetByID(_ context.Context, id string) (*entity.Employment, error) {
	e, ok := r.employments[id]
	if !ok {
		return nil, nil
	}
	out := *e
	return &out, nil
}

func (r *fakeEmploymentRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Employment, error) {
	out := []*entity.Employment{}
	for _, e := range r.employments {
		if e.CompanyID == companyID {
			dup := *e
			out = append(out, &dup)
		}
	}
	return out, nil
}

func (r *fakeEmploymentRepo) Delete(_ context.Context, id string) error {
	delete(r.employments, id)
	return nil
}

func (r *fakeEmploymentRepo) DeleteByCompany(_ context.Context, companyID string) error {
	for id, e := range r.employments {
		if e.CompanyID == companyID {
			delete(r.employments, id)
		}
	}
	return nil
}

// fakeTxRunner toma una instantánea de las empresas antes de ejecutar fn y la
// restaura si fn devuelve error: el rollback es observable en los tests.
type fakeTxRunner struct {
	companies   *fakeCompanyRepo
	users       *fakeUserRepo
	employments *fakeEmploymentRepo
}

var _ provisioning.TxRunner = (*fakeTxRunner)(nil)

func newFakeTxRunner(companies *fakeCompanyRepo) *fakeTxRunner {
	return &fakeTxRunner{
		companies:   companies,
		users:       newFakeUserRepo(),
		employments: newFakeEmploymentRepo(),
	}
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	employmentRepo repository.EmploymentRepository,
) error) error {
	snapshot := make(map[string]*entity.Company, len(t.companies.companies))
	for id, c := range t.companies.companies {
		dup := *c
		snapshot[id] = &dup
	}
	if err := fn(t.users, t.companies, t.employments); err != nil {
		t.companies.companies = snapshot
		return err
	}
	return nil
}
