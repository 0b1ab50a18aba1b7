package models

// CountRecords runs a COUNT query and returns the single result
func CountRecords(query string, args ...interface{}) (int64, error) {
	var count int64
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteRecord executes a delete statement, ignoring how many rows matched
func DeleteRecord(query string, args ...interface{}) error {
	_, err := db.Exec(query, args...)
	return err
}
