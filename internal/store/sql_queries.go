package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-keeper/models"
)

const (
	createUser = `INSERT INTO users (username, name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, username, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`
)

// buildUpdateUserQuery builds the UPDATE statement for the mutable profile
// fields of an existing user. The WHERE clause is always bound to
// user.UserID, so callers cannot redirect an update to a different record.
func buildUpdateUserQuery(user models.User) (string, []any, error) {
	query, args, err := sq.
		Update(user.TableName()).
		Set("username", user.Username).
		Set("name", user.Name).
		Set("email", user.Email).
		Where(sq.Eq{"user_id": user.UserID}).
		Suffix("RETURNING user_id, username, name, email, password_hash, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, ErrBuildingSQLQuery
	}

	return query, args, nil
}
