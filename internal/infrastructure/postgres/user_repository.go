package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Empresas-api/internal/domain"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// Acepta el pool o una tx (ver Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name, COALESCE(email, ''), password_hash, role, is_first_login, created_at, updated_at`

// Create persiste un nuevo usuario. El email vacío se guarda como NULL para
// no chocar con el índice único parcial.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, is_first_login, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, nullIfEmpty(user.Email), user.PasswordHash,
		user.Role, user.IsFirstLogin, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, con su set de empresas poblado.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email, con su set de empresas poblado.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsFirstLogin,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := r.loadCompanyIDs(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) loadCompanyIDs(ctx context.Context, u *entity.User) error {
	rows, err := r.q.Query(ctx, `SELECT company_id FROM user_companies WHERE user_id = $1 ORDER BY company_id`, u.ID)
	if err != nil {
		return fmt.Errorf("load user companies: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan company id: %w", err)
		}
		u.CompanyIDs = append(u.CompanyIDs, id)
	}
	return rows.Err()
}

// List lista usuarios con paginación, sets de empresas incluidos.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsFirstLogin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, u := range list {
		if err := r.loadCompanyIDs(ctx, u); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update actualiza nombre, email, hash, rol y flag de primer login.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, password_hash = $4, role = $5, is_first_login = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, nullIfEmpty(user.Email), user.PasswordHash,
		user.Role, user.IsFirstLogin, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdatePassword persiste el nuevo hash y el flag de primer login.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, passwordHash string, isFirstLogin bool) error {
	query := `UPDATE users SET password_hash = $2, is_first_login = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, passwordHash, isFirstLogin)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID (sus membresías caen por cascada).
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// DeleteMany elimina un lote de usuarios por ID.
func (r *UserRepo) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	return nil
}

// AddToCompany añade la empresa al set del usuario (idempotente).
func (r *UserRepo) AddToCompany(ctx context.Context, userID, companyID string) error {
	query := `
		INSERT INTO user_companies (user_id, company_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, company_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, query, userID, companyID); err != nil {
		return fmt.Errorf("add user to company: %w", err)
	}
	return nil
}

// RemoveFromCompany quita la empresa del set del usuario.
func (r *UserRepo) RemoveFromCompany(ctx context.Context, userID, companyID string) error {
	query := `DELETE FROM user_companies WHERE user_id = $1 AND company_id = $2`
	if _, err := r.q.Exec(ctx, query, userID, companyID); err != nil {
		return fmt.Errorf("remove user from company: %w", err)
	}
	return nil
}
