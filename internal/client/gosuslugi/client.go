package gosuslugi

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"github.com/oshokin/gosuslugi-grabber/internal/config"
	"github.com/oshokin/gosuslugi-grabber/internal/logger"
	http_transport "github.com/oshokin/gosuslugi-grabber/internal/transport/http"
	"github.com/oshokin/gosuslugi-grabber/internal/utils"
)

// Client defines the interface for interacting with the housing registry API.
type Client interface {
	// GetBaseURL returns the base URL of the registry API.
	GetBaseURL() string
	// GetLicenses returns a lazy sequence with one licenses page per region code.
	GetLicenses(ctx context.Context, regionCodes []RegionCode) (iter.Seq2[*LicensesPage, error], error)
	// GetOrganizations returns the organizations whose INN equals the filter INN.
	GetOrganizations(ctx context.Context, filter OrganizationsFilter) ([]Record, error)
	// GetOrganization returns the organization with the given GUID.
	GetOrganization(ctx context.Context, guid string) (Record, error)
	// GetHouses returns the FIAS house records matching the filter.
	GetHouses(ctx context.Context, filter HousesFilter) ([]Record, error)
	// GetActualHouses returns the actual house records of a house code.
	GetActualHouses(ctx context.Context, houseCode string) ([]Record, error)
	// GetNotActualHouses returns the not actual house records of a house code.
	GetNotActualHouses(ctx context.Context, houseCode string) ([]Record, error)
	// GetHomeManagements returns a lazy sequence of home management pages of an organization.
	GetHomeManagements(
		ctx context.Context,
		filter HomeManagementsFilter,
	) (iter.Seq2[*HomeManagementsPage, error], error)
	// GetHomeManagement returns the home management with the given GUID.
	GetHomeManagement(ctx context.Context, guid string) (Record, error)
}

// ClientImpl implements the Client interface for interacting with the housing registry API.
type ClientImpl struct {
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// organizationsPerPage is the default page size of the organization search.
	organizationsPerPage int
	// homeManagementsPerPage is the default page size of the home management listing.
	homeManagementsPerPage int
}

// NewClient creates and returns a new instance of ClientImpl.
// The configuration is expected to have passed config.ValidateConfig.
func NewClient(cfg *config.Config) (Client, error) {
	// The registry keeps its session in cookies.
	cookies, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid host URL: %w", err)
	}

	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("unexpected default transport type %T", http.DefaultTransport)
	}

	transport = transport.Clone()
	transport.DisableKeepAlives = !cfg.KeepAlive

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(transport, cfg.ParsedMaxLogLength),
			utils.NewSimpleUserAgentProvider(cfg.UserAgent, http_transport.DefaultUserAgent)),
		Jar:     cookies,
		Timeout: cfg.ParsedRequestTimeout,
	}

	client := &ClientImpl{
		baseURL:                baseURL.String(),
		httpClient:             httpClient,
		organizationsPerPage:   int(cfg.OrganizationsPerPage),
		homeManagementsPerPage: int(cfg.HomeManagementsPerPage),
	}

	return client, nil
}

// GetBaseURL returns the base URL of the registry API.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// GetOrganizations searches organizations by INN.
// The search is full-text, so only items whose INN equals the requested one are returned.
func (c *ClientImpl) GetOrganizations(ctx context.Context, filter OrganizationsFilter) ([]Record, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	filter = filter.withDefaults(c.organizationsPerPage)

	result, err := fetchJSON[organizationsSearchResponse](c, ctx, &apiRequest{
		method:  http.MethodPost,
		uri:     []string{fmt.Sprintf(organizationsSearchURIFormat, filter.Page, filter.ItemsPerPage)},
		payload: newOrganizationsSearchRequest(filter.INN),
	})
	if err != nil {
		return nil, err
	}

	organizations := make([]Record, 0)
	if result == nil {
		return organizations, nil
	}

	for _, item := range result.Items {
		if item.INN() == filter.INN {
			organizations = append(organizations, item)
		}
	}

	logger.Debugf(ctx, "Organization search for INN %s: %d of %d items matched",
		filter.INN, len(organizations), len(result.Items))

	return organizations, nil
}

// GetOrganization returns the organization with the given GUID.
func (c *ClientImpl) GetOrganization(ctx context.Context, guid string) (Record, error) {
	guid = strings.TrimSpace(guid)
	if err := validateGUID("organization guid", guid); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("organizationGuid", guid)

	result, err := fetchJSON[Record](c, ctx, &apiRequest{
		method: http.MethodGet,
		uri:    []string{organizationByGUIDURI},
		query:  query,
	})
	if err != nil {
		return nil, err
	}

	if result == nil || (*result).GUID() == "" {
		return nil, fmt.Errorf("organization %s: %w", guid, ErrNotFound)
	}

	return *result, nil
}

// GetHouses returns the FIAS house records matching the filter.
func (c *ClientImpl) GetHouses(ctx context.Context, filter HousesFilter) ([]Record, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("houseCodes", strings.TrimSpace(filter.HouseCode))
	query.Set("includeDuplicates", strconv.FormatBool(filter.IncludeDuplicates))
	query.Set("actual", strconv.FormatBool(filter.Actual))

	result, err := fetchJSON[[]Record](c, ctx, &apiRequest{
		method: http.MethodGet,
		uri:    []string{housesURI},
		query:  query,
	})
	if err != nil {
		return nil, err
	}

	if result == nil {
		return make([]Record, 0), nil
	}

	return *result, nil
}

// GetActualHouses returns the actual house records of a house code.
func (c *ClientImpl) GetActualHouses(ctx context.Context, houseCode string) ([]Record, error) {
	return c.GetHouses(ctx, HousesFilter{HouseCode: houseCode, Actual: true})
}

// GetNotActualHouses returns the not actual house records of a house code.
func (c *ClientImpl) GetNotActualHouses(ctx context.Context, houseCode string) ([]Record, error) {
	return c.GetHouses(ctx, HousesFilter{HouseCode: houseCode, Actual: false})
}

// GetHomeManagement returns the home management with the given GUID.
func (c *ClientImpl) GetHomeManagement(ctx context.Context, guid string) (Record, error) {
	guid = strings.TrimSpace(guid)
	if err := validateGUID("home management guid", guid); err != nil {
		return nil, err
	}

	result, err := fetchJSON[Record](c, ctx, &apiRequest{
		method: http.MethodGet,
		uri:    []string{homeManagementURI, guid + "/"},
	})
	if err != nil {
		return nil, err
	}

	if result == nil || len(*result) == 0 {
		return nil, fmt.Errorf("home management %s: %w", guid, ErrNotFound)
	}

	return *result, nil
}
