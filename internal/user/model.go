package user

// User is the single persisted entity. An ID of zero marks a record that has
// not been saved yet.
type User struct {
	ID   int64
	Name string
}

// IsNew reports whether u has not been assigned an ID by a repository.
func (u User) IsNew() bool {
	return u.ID == 0
}
