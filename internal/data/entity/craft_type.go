package entity

type CraftType struct {
	BaseNoDelete
	Name        string  `db:"name"`
	Description *string `db:"description"`
}
