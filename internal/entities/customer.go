package entities

type Customer struct {
	Name     string
	Phone    string
	Email    string
	Address  string
	City     string
	PostCode string
}
