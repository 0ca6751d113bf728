package file

const (
	SelectFilesByOwner = `
		SELECT id, uuid, user_id, stored_name, original_name, mime_type, size_bytes, created_at
		FROM files
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 50 OFFSET ( ($2 - 1) * 50 )
	`
	InsertFile = `
		INSERT INTO files (user_id, stored_name, original_name, mime_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, uuid, user_id, stored_name, original_name, mime_type, size_bytes, created_at
	`
	SelectOwnedFile = `
		SELECT id, uuid, user_id, stored_name, original_name, mime_type, size_bytes, created_at
		FROM files
		WHERE uuid = $1 AND user_id = $2
	`
	DeleteOwnedFile = `
		DELETE FROM files
		WHERE uuid = $1 AND user_id = $2
		RETURNING stored_name
	`
)
