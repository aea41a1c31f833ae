package provisioning_test

import (
	"context"
	"errors"

	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

// memStore es un almacén en memoria compartido por los tres repositorios
// falsos. failOn permite inyectar un fallo en una operación concreta para
// observar el rollback de la transacción.
type memStore struct {
	users       map[string]*entity.User
	companies   map[string]*entity.Company
	employments map[string]*entity.Employment
	memberships map[string]map[string]bool // userID → companyID → miembro

	failOn map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[string]*entity.User),
		companies:   make(map[string]*entity.Company),
		employments: make(map[string]*entity.Employment),
		memberships: make(map[string]map[string]bool),
		failOn:      make(map[string]error),
	}
}

func (s *memStore) fail(op string) error {
	if err, ok := s.failOn[op]; ok {
		return err
	}
	return nil
}

// clone copia el estado completo (para restaurarlo si la tx falla).
func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.users {
		u := *v
		c.users[k] = &u
	}
	for k, v := range s.companies {
		co := *v
		c.companies[k] = &co
	}
	for k, v := range s.employments {
		e := *v
		c.employments[k] = &e
	}
	for userID, set := range s.memberships {
		inner := make(map[string]bool, len(set))
		for companyID, ok := range set {
			inner[companyID] = ok
		}
		c.memberships[userID] = inner
	}
	c.failOn = s.failOn
	return c
}

func (s *memStore) restore(from *memStore) {
	s.users = from.users
	s.companies = from.companies
	s.employments = from.employments
	s.memberships = from.memberships
}

func (s *memStore) companyIDsOf(userID string) []string {
	out := []string{}
	for companyID, ok := range s.memberships[userID] {
		if ok {
			out = append(out, companyID)
		}
	}
	return out
}

// ── UserRepository falso ─────────────────────────────────────────────────────

type fakeUserRepo struct{ s *memStore }

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if err := r.s.fail("users.Create"); err != nil {
		return err
	}
	u := *user
	r.s.users[u.ID] = &u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	out := *u
	out.CompanyIDs = r.s.companyIDsOf(id)
	return &out, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			out := *u
			out.CompanyIDs = r.s.companyIDsOf(u.ID)
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, u := range r.s.users {
		dup := *u
		out = append(out, &dup)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.s.users[user.ID]; !ok {
		return errors.New("usuario inexistente")
	}
	u := *user
	r.s.users[u.ID] = &u
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string, isFirstLogin bool) error {
	u, ok := r.s.users[id]
	if !ok {
		return errors.New("usuario inexistente")
	}
	u.PasswordHash = passwordHash
	u.IsFirstLogin = isFirstLogin
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if err := r.s.fail("users.Delete"); err != nil {
		return err
	}
	delete(r.s.users, id)
	delete(r.s.memberships, id)
	return nil
}

func (r *fakeUserRepo) DeleteMany(_ context.Context, ids []string) error {
	if err := r.s.fail("users.DeleteMany"); err != nil {
		return err
	}
	for _, id := range ids {
		delete(r.s.users, id)
		delete(r.s.memberships, id)
	}
	return nil
}

func (r *fakeUserRepo) AddToCompany(_ context.Context, userID, companyID string) error {
	if err := r.s.fail("users.AddToCompany"); err != nil {
		return err
	}
	if r.s.memberships[userID] == nil {
		r.s.memberships[userID] = make(map[string]bool)
	}
	r.s.memberships[userID][companyID] = true
	return nil
}

func (r *fakeUserRepo) RemoveFromCompany(_ context.Context, userID, companyID string) error {
	delete(r.s.memberships[userID], companyID)
	return nil
}

// ── CompanyRepository falso ──────────────────────────────────────────────────

type fakeCompanyRepo struct{ s *memStore }

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func (r *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	if err := r.s.fail("companies.Create"); err != nil {
		return err
	}
	c := *company
	r.s.companies[c.ID] = &c
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	out := *c
	out.EmployeeIDs = []string{}
	for _, e := range r.s.employments {
		if e.CompanyID == id {
			out.EmployeeIDs = append(out.EmployeeIDs, e.ID)
		}
	}
	return &out, nil
}

func (r *fakeCompanyRepo) GetByEmail(_ context.Context, email string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if c.Email == email {
			out := *c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	out := []*entity.Company{}
	for _, c := range r.s.companies {
		dup := *c
		out = append(out, &dup)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	c := *company
	r.s.companies[c.ID] = &c
	return nil
}

func (r *fakeCompanyRepo) ReplaceDepartments(_ context.Context, companyID string, departments []entity.Department) error {
	c, ok := r.s.companies[companyID]
	if !ok {
		return errors.New("empresa inexistente")
	}
	c.Departments = departments
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	if err := r.s.fail("companies.Delete"); err != nil {
		return err
	}
	delete(r.s.companies, id)
	return nil
}

// ── EmploymentRepository falso ───────────────────────────────────────────────

type fakeEmploymentRepo struct{ s *memStore }

var _ repository.EmploymentRepository = (*fakeEmploymentRepo)(nil)

func (r *fakeEmploymentRepo) Create(_ context.Context, employment *entity.Employment) error {
	if err := r.s.fail("employments.Create"); err != nil {
		return err
	}
	e := *employment
	r.s.employments[e.ID] = &e
	return nil
}

func (r *fakeEmploymentRepo) GetByID(_ context.Context, id string) (*entity.Employment, error) {
	e, ok := r.s.employments[id]
	if !ok {
		return nil, nil
	}
	out := *e
	return &out, nil
}

func (r *fakeEmploymentRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Employment, error) {
	out := []*entity.Employment{}
	for _, e := range r.s.employments {
		if e.CompanyID == companyID {
			dup := *e
			out = append(out, &dup)
		}
	}
	return out, nil
}

func (r *fakeEmploymentRepo) Delete(_ context.Context, id string) error {
	delete(r.s.employments, id)
	return nil
}

func (r *fakeEmploymentRepo) DeleteByCompany(_ context.Context, companyID string) error {
	if err := r.s.fail("employments.DeleteByCompany"); err != nil {
		return err
	}
	for id, e := range r.s.employments {
		if e.CompanyID == companyID {
			delete(r.s.employments, id)
		}
	}
	return nil
}

// ── TxRunner falso ───────────────────────────────────────────────────────────

// fakeTxRunner toma una instantánea del almacén antes de ejecutar fn y la
// restaura si fn devuelve error: el rollback es observable en los tests.
type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	employmentRepo repository.EmploymentRepository,
) error) error {
	snapshot := t.s.clone()
	err := fn(&fakeUserRepo{s: t.s}, &fakeCompanyRepo{s: t.s}, &fakeEmploymentRepo{s: t.s})
	if err != nil {
		t.s.restore(snapshot)
		return err
	}
	return nil
}
