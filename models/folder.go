package models

import (
	"database/sql"
	"time"

	"recipebox/utils"

	"github.com/gofiber/fiber/v2/log"
)

// Folder represents a named grouping of recipes
type Folder struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateFolder creates a new folder
func CreateFolder(name string) (*Folder, error) {
	start := time.Now()
	defer utils.LogDuration("CreateFolder", start, name)

	result, err := db.Exec(`INSERT INTO folders (name) VALUES (?)`, name)
	if err != nil {
		log.Error("Failed to create folder:", err)
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Error("Failed to get folder ID:", err)
		return nil, err
	}

	return &Folder{ID: id, Name: name}, nil
}

// GetFolders retrieves all folders in creation order
func GetFolders() ([]Folder, error) {
	start := time.Now()
	defer utils.LogDuration("GetFolders", start)

	rows, err := db.Query(`SELECT id, name FROM folders ORDER BY id`)
	if err != nil {
		log.Error("Failed to get folders:", err)
		return nil, err
	}
	defer rows.Close()

	var folders []Folder
	for rows.Next() {
		var folder Folder
		if err := rows.Scan(&folder.ID, &folder.Name); err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}

	return folders, rows.Err()
}

// GetFolder retrieves a folder by ID, returning nil when it does not exist
func GetFolder(id int64) (*Folder, error) {
	start := time.Now()
	defer utils.LogDuration("GetFolder", start, id)

	var folder Folder
	err := db.QueryRow(`SELECT id, name FROM folders WHERE id = ?`, id).
		Scan(&folder.ID, &folder.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Error("Failed to get folder:", err)
		return nil, err
	}

	return &folder, nil
}

// DeleteFolder removes a folder and unfiles its recipes. Both steps run in a
// single transaction so no recipe is ever left referencing a deleted folder.
// Deleting a folder that does not exist is a no-op.
func DeleteFolder(id int64) error {
	start := time.Now()
	defer utils.LogDuration("DeleteFolder", start, id)

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`UPDATE recipes SET folder_id = NULL WHERE folder_id = ?`, id); err != nil {
		log.Error("Failed to unfile recipes:", err)
		return err
	}
	if _, err = tx.Exec(`DELETE FROM folders WHERE id = ?`, id); err != nil {
		log.Error("Failed to delete folder:", err)
		return err
	}

	return tx.Commit()
}

// CountFolders returns the total number of folders
func CountFolders() (int64, error) {
	return CountRecords(`SELECT COUNT(*) FROM folders`)
}
