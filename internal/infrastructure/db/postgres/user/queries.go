package user

const (
	SelectUserByUUID = `
		SELECT id, uuid, username, password_hash, created_at
		FROM users
		WHERE uuid = $1
	`
	SelectUserByUsername = `
		SELECT id, uuid, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	InsertUser = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING
		  id, uuid, username, password_hash, created_at
	`
	SelectIdByUUID = `SELECT id FROM users WHERE uuid = $1::uuid`
)
