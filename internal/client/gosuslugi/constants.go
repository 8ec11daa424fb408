package gosuslugi

const (
	// licensesRegionUIDURI returns the file store UID of a region license workbook.
	licensesRegionUIDURI = "licenses/api/rest/services/public/licenses/region-license-xls"
	// licensesDownloadURI serves file store entries packed into a ZIP archive.
	licensesDownloadURI = "filestore/publicDownloadAllFilesServlet"
	// organizationsSearchURIFormat is the organization chooser search; page and page size are matrix parameters.
	organizationsSearchURIFormat = "ppa/api/rest/services/ppa/organizations/chooser/search;page=%d;itemsPerPage=%d"
	// organizationByGUIDURI returns a single organization.
	organizationByGUIDURI = "ppa/api/rest/services/ppa/public/organizations/orgByGuid"
	// housesURI returns FIAS houses by house code.
	housesURI = "nsi/api/rest/services/nsi/fias/v4/houses"
	// homeManagementsURI lists home managements of an organization.
	homeManagementsURI = "homemanagement/api/rest/services/houses/public/searchByOrg"
	// homeManagementURI is the prefix of a single home management; the GUID and a trailing slash follow.
	homeManagementURI = "homemanagement/api/rest/services/houses/public/1"
)

const (
	// licensesFileStoreContext is the file store context of license workbooks.
	licensesFileStoreContext = "licenses"
	// licensesHeaderFirstCell is the first cell of the header row in a license workbook.
	licensesHeaderFirstCell = "номер лицензии"
	// inRegisterMark marks a house whose information is placed in the register.
	inRegisterMark = "размещена"
	// licenseDateTimeLayout is the layout of date-time cells in a license workbook.
	licenseDateTimeLayout = "02.01.2006 15:04:05"
	// licenseDateLayout is the layout of date cells in a license workbook.
	licenseDateLayout = "02.01.2006"
)

const (
	contentTypeHeader   = "Content-Type"
	jsonContentType     = "application/json"
	maxErrorBodyInError = 4 * 1024
)
