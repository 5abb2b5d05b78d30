package v1

// Address is a postal address attached to a customer or an order.
type Address struct {
	FirstName     string `validate:"max=100"`
	LastName      string `validate:"max=100"`
	Company       string `validate:"max=200"`
	Address1      string `validate:"required,max=200"`
	Address2      string `validate:"max=200"`
	City          string `validate:"required,max=100"`
	StateProvince string `validate:"max=100"`
	ZipPostalCode string `validate:"max=20"`
	CountryCode   string `validate:"required,iso3166_1_alpha2"`
	Email         string `validate:"omitempty,email,max=200"`
	PhoneNumber   string `validate:"max=50"`
	FaxNumber     string `validate:"max=50"`
}
