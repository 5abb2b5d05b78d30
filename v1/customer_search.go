package v1

import (
	"context"
	"time"
)

// Default paging applied when a search does not set its own.
const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// CustomerCriteria is the raw search input the host executes. Zero-valued
// filters are ignored.
type CustomerCriteria struct {
	Email        string
	Username     string
	DepartmentID int
	ActiveOnly   bool
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
	Page         int
	PageSize     int
}

// CustomerSearch is a fluent builder over CustomerCriteria.
type CustomerSearch struct {
	customers Customers
	criteria  CustomerCriteria
}

// NewCustomerSearch starts a search against the given namespace.
func NewCustomerSearch(customers Customers) *CustomerSearch {
	return &CustomerSearch{
		customers: customers,
		criteria: CustomerCriteria{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
		},
	}
}

// ByEmail filters on the exact email address.
func (s *CustomerSearch) ByEmail(email string) *CustomerSearch {
	s.criteria.Email = email
	return s
}

// ByUsername filters on the exact username.
func (s *CustomerSearch) ByUsername(username string) *CustomerSearch {
	s.criteria.Username = username
	return s
}

// ByDepartment filters on department membership.
func (s *CustomerSearch) ByDepartment(departmentID int) *CustomerSearch {
	s.criteria.DepartmentID = departmentID
	return s
}

// ActiveOnly excludes deactivated customers.
func (s *CustomerSearch) ActiveOnly() *CustomerSearch {
	s.criteria.ActiveOnly = true
	return s
}

// CreatedBetween filters on the registration timestamp. Either bound may be
// the zero time to leave that side open.
func (s *CustomerSearch) CreatedBetween(from, to time.Time) *CustomerSearch {
	if !from.IsZero() {
		f := from
		s.criteria.CreatedFrom = &f
	}
	if !to.IsZero() {
		t := to
		s.criteria.CreatedTo = &t
	}
	return s
}

// Page sets the 1-based result page. Values below 1 reset to the default.
func (s *CustomerSearch) Page(page int) *CustomerSearch {
	if page < 1 {
		page = DefaultPage
	}
	s.criteria.Page = page
	return s
}

// PageSize sets the page size, clamped to MaxPageSize.
func (s *CustomerSearch) PageSize(size int) *CustomerSearch {
	switch {
	case size < 1:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	s.criteria.PageSize = size
	return s
}

// Criteria returns a copy of the accumulated criteria.
func (s *CustomerSearch) Criteria() CustomerCriteria {
	return s.criteria
}

// Execute runs the search on the host.
func (s *CustomerSearch) Execute(ctx context.Context) ([]Customer, error) {
	return s.customers.Search(ctx, s.criteria)
}
