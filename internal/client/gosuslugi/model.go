package gosuslugi

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is a JSON object returned by the registry: an organization, a house or a home management.
type Record map[string]any

// String returns the value under key as a string.
// Numbers are formatted without exponent, missing keys and nulls produce an empty string.
func (r Record) String(key string) string {
	switch value := r[key].(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprint(value)
	}
}

// GUID returns the "guid" field.
func (r Record) GUID() string {
	return r.String("guid")
}

// INN returns the "inn" field.
func (r Record) INN() string {
	return r.String("inn")
}

// HomeManagementsPage is one page of the home management listing of an organization.
type HomeManagementsPage struct {
	// PageIndex is the 1-based index of the page.
	PageIndex int `json:"pageIndex" yaml:"page_index"`
	// PerPage is the requested page size.
	PerPage int `json:"elementsPerPage" yaml:"elements_per_page"`
	// Total is the total number of home managements reported by the registry.
	Total int `json:"total" yaml:"total"`
	// Items are the home managements on this page.
	Items []Record `json:"items" yaml:"items"`
}

// LicenseRow is one house row of a region license workbook.
// Text values are trimmed and lower-cased, empty dates are zero.
type LicenseRow struct {
	NumberInFile            int       `json:"number_in_file" yaml:"number_in_file"`
	HouseFIASID             string    `json:"house_fias_id" yaml:"house_fias_id"`
	LicenseNumber           string    `json:"license_number" yaml:"license_number"`
	LicenseDate             string    `json:"license_date" yaml:"license_date"`
	LicenseStatus           string    `json:"license_status" yaml:"license_status"`
	LicenseIncludedDate     string    `json:"license_included_date" yaml:"license_included_date"`
	OrderNumber             string    `json:"order_number" yaml:"order_number"`
	OrderDate               string    `json:"order_date" yaml:"order_date"`
	LicenseJuristicAddress  string    `json:"license_juristic_address" yaml:"license_juristic_address"`
	LicenseHolderUID        string    `json:"license_holder_uid" yaml:"license_holder_uid"`
	AdditionalInfo          string    `json:"additional_info" yaml:"additional_info"`
	LicenseHolderName       string    `json:"license_holder_name" yaml:"license_holder_name"`
	INN                     string    `json:"inn" yaml:"inn"`
	OGRN                    string    `json:"ogrn" yaml:"ogrn"`
	MKDAddress              string    `json:"mkd_address" yaml:"mkd_address"`
	GosUslugiHouseCode      string    `json:"gos_uslugi_house_code" yaml:"gos_uslugi_house_code"`
	MKDIncludedRegisterDate time.Time `json:"mkd_included_register_date" yaml:"mkd_included_register_date"`
	MKDBeginManagementDate  time.Time `json:"mkd_begin_management_date" yaml:"mkd_begin_management_date"`
	MKDEndManagementDate    time.Time `json:"mkd_end_management_date" yaml:"mkd_end_management_date"`
	MKDExcludedRegisterDate time.Time `json:"mkd_excluded_register_date" yaml:"mkd_excluded_register_date"`
	MKDExcludedReason       string    `json:"mkd_excluded_reason" yaml:"mkd_excluded_reason"`
	State198Info            string    `json:"state_198_info" yaml:"state_198_info"`
	IsInformationInRegister bool      `json:"is_information_in_register" yaml:"is_information_in_register"`
}

// IsLicenseActive reports whether the license of the row is in force.
func (r *LicenseRow) IsLicenseActive() bool {
	return r.LicenseStatus == activeLicenseStatus
}

// activeLicenseStatus is the status of a license in force.
const activeLicenseStatus = "действующая"

// licenseColumnsCount is the number of workbook columns mapped onto LicenseRow.
// The workbook has two trailing service columns, they are ignored.
const licenseColumnsCount = 21

// newLicenseRow maps workbook cells onto a LicenseRow. Missing trailing cells are treated as empty.
func newLicenseRow(numberInFile int, cells []string) (*LicenseRow, error) {
	values := make([]string, licenseColumnsCount)
	for i := 0; i < licenseColumnsCount && i < len(cells); i++ {
		values[i] = normalizeCell(cells[i])
	}

	row := &LicenseRow{
		NumberInFile:           numberInFile,
		LicenseNumber:          values[0],
		LicenseDate:            values[1],
		LicenseStatus:          values[2],
		LicenseIncludedDate:    values[3],
		OrderNumber:            values[4],
		OrderDate:              values[5],
		LicenseJuristicAddress: values[6],
		LicenseHolderUID:       values[7],
		AdditionalInfo:         values[8],
		LicenseHolderName:      values[9],
		INN:                    values[10],
		OGRN:                   values[11],
		MKDAddress:             values[12],
		GosUslugiHouseCode:     values[13],
		MKDExcludedReason:      values[18],
		State198Info:           values[19],
	}

	row.IsInformationInRegister = values[20] == inRegisterMark

	dates := []struct {
		target *time.Time
		value  string
		layout string
	}{
		{target: &row.MKDIncludedRegisterDate, value: values[14], layout: licenseDateTimeLayout},
		{target: &row.MKDBeginManagementDate, value: values[15], layout: licenseDateLayout},
		{target: &row.MKDEndManagementDate, value: values[16], layout: licenseDateLayout},
		{target: &row.MKDExcludedRegisterDate, value: values[17], layout: licenseDateTimeLayout},
	}

	for _, d := range dates {
		if d.value == "" {
			continue
		}

		parsed, err := time.Parse(d.layout, d.value)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", numberInFile, err)
		}

		*d.target = parsed
	}

	return row, nil
}

func normalizeCell(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// organizationsSearchRequest is the body of the organization chooser search.
type organizationsSearchRequest struct {
	SortCriteriaList         []sortCriteria     `json:"sortCriteriaList"`
	OrganizationStatuses     operandCollection  `json:"organizationStatuses"`
	OrganizationTypes        operandCollection  `json:"organizationTypes"`
	SubordinationOrgTypeList operandCollection  `json:"subordinationOrgTypeList"`
	CommonSearchString       string             `json:"commonSearchString"`
	RoleConstraints          roleConstraintList `json:"roleConstraints"`
}

type sortCriteria struct {
	SortedBy  string `json:"sortedBy"`
	Ascending bool   `json:"ascending"`
}

type operandCollection struct {
	Coll    []string `json:"coll"`
	Operand string   `json:"operand"`
}

type roleConstraint struct {
	RoleCode     string   `json:"roleCode"`
	RoleStatuses []string `json:"roleStatuses"`
}

type roleConstraintList struct {
	Coll    []roleConstraint `json:"coll"`
	Operand string           `json:"operand"`
}

// newOrganizationsSearchRequest builds the search the registry web UI sends from its organization chooser:
// registered head offices and branches of management companies and similar roles.
func newOrganizationsSearchRequest(searchString string) *organizationsSearchRequest {
	approved := []string{"APPROVED"}

	return &organizationsSearchRequest{
		SortCriteriaList: []sortCriteria{
			{SortedBy: "organizationType", Ascending: false},
			{SortedBy: "shortName", Ascending: true},
			{SortedBy: "fullName", Ascending: true},
			{SortedBy: "parentKpp", Ascending: true},
			{SortedBy: "kpp", Ascending: true},
		},
		OrganizationStatuses:     operandCollection{Coll: []string{"REGISTERED"}, Operand: "OR"},
		OrganizationTypes:        operandCollection{Coll: []string{"B", "L", "A"}, Operand: "OR"},
		SubordinationOrgTypeList: operandCollection{Coll: []string{"HEAD", "BRANCH"}, Operand: "OR"},
		CommonSearchString:       searchString,
		RoleConstraints: roleConstraintList{
			Coll: []roleConstraint{
				{RoleCode: "1", RoleStatuses: approved},
				{RoleCode: "19", RoleStatuses: approved},
				{RoleCode: "20", RoleStatuses: approved},
				{RoleCode: "22", RoleStatuses: approved},
				{RoleCode: "21", RoleStatuses: approved},
			},
			Operand: "OR",
		},
	}
}

// organizationsSearchResponse is the answer of the organization chooser search.
type organizationsSearchResponse struct {
	Items []Record `json:"items"`
	Total int      `json:"total"`
}

// homeManagementsRequest is the body of the home management listing.
type homeManagementsRequest struct {
	OrganizationGUID string `json:"organizationGuid"`
	CalcCount        bool   `json:"calcCount"`
}

// homeManagementsResponse is the answer of the home management listing.
// The registry sends null instead of zero for an empty listing.
type homeManagementsResponse struct {
	Items []Record `json:"items"`
	Total *int     `json:"total"`
}
