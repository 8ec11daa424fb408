package gosuslugi

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// OrganizationsFilter selects organizations in the organization chooser search.
type OrganizationsFilter struct {
	// INN is the taxpayer identification number, 10 digits for legal entities or 12 for individuals.
	INN string
	// Page is the 1-based search page. Zero means the first page.
	Page int
	// ItemsPerPage is the search page size. Zero means the client default.
	ItemsPerPage int
}

// HousesFilter selects FIAS houses by house code.
type HousesFilter struct {
	// HouseCode is the registry house code.
	HouseCode string
	// Actual selects actual houses when true and not actual houses when false.
	Actual bool
	// IncludeDuplicates asks the registry to return duplicate house records too.
	IncludeDuplicates bool
}

// HomeManagementsFilter selects home managements of an organization.
type HomeManagementsFilter struct {
	// OrganizationGUID is the GUID of the managing organization.
	OrganizationGUID string
	// StartPage is the 1-based page the listing starts from. Zero means the first page.
	StartPage int
	// PerPage is the listing page size. Zero means the client default.
	PerPage int
}

// Filter names accepted by the Parse*Filter functions.
const (
	FilterINN               = "inn"
	FilterPage              = "page"
	FilterItemsPerPage      = "items_per_page"
	FilterHouseCode         = "house_code"
	FilterActual            = "actual"
	FilterIncludeDuplicates = "include_duplicates"
	FilterOrganizationGUID  = "organization_guid"
	FilterStartPage         = "start_page"
	FilterPerPage           = "per_page"
)

// Validate checks the filter values.
func (f OrganizationsFilter) Validate() error {
	if !isINN(f.INN) {
		return fmt.Errorf("%w: %s must be 10 or 12 digits, got '%s'", ErrInvalidFilter, FilterINN, f.INN)
	}

	if f.Page < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidFilter, FilterPage)
	}

	if f.ItemsPerPage < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidFilter, FilterItemsPerPage)
	}

	return nil
}

func (f OrganizationsFilter) withDefaults(itemsPerPage int) OrganizationsFilter {
	f.INN = strings.TrimSpace(f.INN)

	if f.Page == 0 {
		f.Page = 1
	}

	if f.ItemsPerPage == 0 {
		f.ItemsPerPage = itemsPerPage
	}

	return f
}

// Validate checks the filter values.
func (f HousesFilter) Validate() error {
	if strings.TrimSpace(f.HouseCode) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidFilter, FilterHouseCode)
	}

	return nil
}

// Validate checks the filter values.
func (f HomeManagementsFilter) Validate() error {
	if err := validateGUID(FilterOrganizationGUID, f.OrganizationGUID); err != nil {
		return err
	}

	if f.StartPage < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidFilter, FilterStartPage)
	}

	if f.PerPage < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidFilter, FilterPerPage)
	}

	return nil
}

func (f HomeManagementsFilter) withDefaults(perPage int) HomeManagementsFilter {
	f.OrganizationGUID = strings.TrimSpace(f.OrganizationGUID)

	if f.StartPage == 0 {
		f.StartPage = 1
	}

	if f.PerPage == 0 {
		f.PerPage = perPage
	}

	return f
}

// ParseOrganizationsFilter builds an OrganizationsFilter from name=value pairs.
func ParseOrganizationsFilter(values map[string]string) (OrganizationsFilter, error) {
	var f OrganizationsFilter

	err := applyFilterValues(values, map[string]func(string) error{
		FilterINN:          stringSetter(&f.INN),
		FilterPage:         intSetter(FilterPage, &f.Page),
		FilterItemsPerPage: intSetter(FilterItemsPerPage, &f.ItemsPerPage),
	})
	if err != nil {
		return OrganizationsFilter{}, err
	}

	return f, f.Validate()
}

// ParseHousesFilter builds a HousesFilter from name=value pairs.
func ParseHousesFilter(values map[string]string) (HousesFilter, error) {
	var f HousesFilter

	err := applyFilterValues(values, map[string]func(string) error{
		FilterHouseCode:         stringSetter(&f.HouseCode),
		FilterActual:            boolSetter(FilterActual, &f.Actual),
		FilterIncludeDuplicates: boolSetter(FilterIncludeDuplicates, &f.IncludeDuplicates),
	})
	if err != nil {
		return HousesFilter{}, err
	}

	return f, f.Validate()
}

// ParseHomeManagementsFilter builds a HomeManagementsFilter from name=value pairs.
func ParseHomeManagementsFilter(values map[string]string) (HomeManagementsFilter, error) {
	var f HomeManagementsFilter

	err := applyFilterValues(values, map[string]func(string) error{
		FilterOrganizationGUID: stringSetter(&f.OrganizationGUID),
		FilterStartPage:        intSetter(FilterStartPage, &f.StartPage),
		FilterPerPage:          intSetter(FilterPerPage, &f.PerPage),
	})
	if err != nil {
		return HomeManagementsFilter{}, err
	}

	return f, f.Validate()
}

// applyFilterValues feeds every value to its setter in name order and rejects names without a setter.
func applyFilterValues(values map[string]string, setters map[string]func(string) error) error {
	for _, name := range slices.Sorted(maps.Keys(values)) {
		setter, ok := setters[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return fmt.Errorf("%w: '%s' (supported: %s)",
				ErrUnsupportedFilter, name, strings.Join(slices.Sorted(maps.Keys(setters)), ", "))
		}

		if err := setter(strings.TrimSpace(values[name])); err != nil {
			return err
		}
	}

	return nil
}

func stringSetter(target *string) func(string) error {
	return func(value string) error {
		*target = value

		return nil
	}
}

func intSetter(name string, target *int) func(string) error {
	return func(value string) error {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got '%s'", ErrInvalidFilter, name, value)
		}

		*target = parsed

		return nil
	}
}

func boolSetter(name string, target *bool) func(string) error {
	return func(value string) error {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a boolean, got '%s'", ErrInvalidFilter, name, value)
		}

		*target = parsed

		return nil
	}
}

func validateGUID(name, value string) error {
	if _, err := uuid.Parse(strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("%w: %s must be a GUID, got '%s'", ErrInvalidFilter, name, value)
	}

	return nil
}

func isINN(value string) bool {
	value = strings.TrimSpace(value)
	if len(value) != 10 && len(value) != 12 {
		return false
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
