package gosuslugi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/gosuslugi-grabber/internal/config"
)

// TestNewClient tests the NewClient function.
func TestNewClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      func() *config.Config
		expectError bool
	}{
		{
			name: "default config",
			config: func() *config.Config {
				cfg := config.Default()
				_ = config.ValidateConfig(cfg)

				return cfg
			},
		},
		{
			name: "keep alive enabled",
			config: func() *config.Config {
				cfg := config.Default()
				cfg.KeepAlive = true
				_ = config.ValidateConfig(cfg)

				return cfg
			},
		},
		{
			name: "invalid base URL",
			config: func() *config.Config {
				cfg := config.Default()
				cfg.BaseURL = "://invalid-url"

				return cfg
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := NewClient(tt.config())

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				require.NotNil(t, client)
				assert.Equal(t, config.DefaultBaseURL, client.GetBaseURL())
			}
		})
	}
}

// TestClientImpl_GetOrganizations tests the organization search.
func TestClientImpl_GetOrganizations(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ppa/api/rest/services/ppa/organizations/chooser/search;page=1;itemsPerPage=11", r.URL.Path)
		assert.Equal(t, jsonContentType, r.Header.Get(contentTypeHeader))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		var request map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, testINN, request["commonSearchString"])
		assert.Contains(t, request, "roleConstraints")

		writeJSON(t, w, map[string]any{
			"total": 3,
			"items": []map[string]any{
				{"guid": testOrganizationGUID, "inn": testINN, "shortName": "ООО УК ДОМ"},
				{"guid": "a0000000-0000-4000-8000-000000000000", "inn": "77012345670"},
				{"guid": "b0000000-0000-4000-8000-000000000000", "ogrn": testINN},
			},
		})
	})
	client := newTestClient(t, server)

	organizations, err := client.GetOrganizations(context.Background(), OrganizationsFilter{INN: " " + testINN + " "})
	require.NoError(t, err)
	require.Len(t, organizations, 1)
	assert.Equal(t, testOrganizationGUID, organizations[0].GUID())
	assert.Equal(t, "ООО УК ДОМ", organizations[0].String("shortName"))
}

// TestClientImpl_GetOrganizations_Paging tests that explicit paging reaches the URL.
func TestClientImpl_GetOrganizations_Paging(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, ";page=3;itemsPerPage=25"), r.URL.Path)

		w.WriteHeader(http.StatusOK)
	})
	client := newTestClient(t, server)

	organizations, err := client.GetOrganizations(context.Background(), OrganizationsFilter{
		INN:          "770123456789",
		Page:         3,
		ItemsPerPage: 25,
	})
	require.NoError(t, err)
	assert.NotNil(t, organizations)
	assert.Empty(t, organizations)
}

// TestClientImpl_GetOrganizations_InvalidINN tests that a malformed INN is rejected without a request.
func TestClientImpl_GetOrganizations_InvalidINN(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	client := newTestClient(t, server)

	for _, inn := range []string{"", "123", "77012345AB", "77012345671"} {
		_, err := client.GetOrganizations(context.Background(), OrganizationsFilter{INN: inn})
		require.ErrorIs(t, err, ErrInvalidFilter, inn)
	}

	assert.Zero(t, server.requestsCount())
}

// TestClientImpl_GetOrganization tests the organization lookup by GUID.
func TestClientImpl_GetOrganization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		expectFound bool
	}{
		{
			name:        "found",
			body:        `{"guid":"` + testOrganizationGUID + `","inn":"` + testINN + `"}`,
			expectFound: true,
		},
		{
			name: "empty body",
			body: "",
		},
		{
			name: "null",
			body: "null",
		},
		{
			name: "no guid",
			body: `{"inn":"` + testINN + `"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/"+organizationByGUIDURI, r.URL.Path)
				assert.Equal(t, testOrganizationGUID, r.URL.Query().Get("organizationGuid"))

				_, _ = w.Write([]byte(tt.body))
			})
			client := newTestClient(t, server)

			organization, err := client.GetOrganization(context.Background(), testOrganizationGUID)

			if tt.expectFound {
				require.NoError(t, err)
				assert.Equal(t, testOrganizationGUID, organization.GUID())
				assert.Equal(t, testINN, organization.INN())
			} else {
				require.ErrorIs(t, err, ErrNotFound)
				assert.True(t, IsNotFound(err))
				assert.Nil(t, organization)
			}
		})
	}
}

// TestClientImpl_GetOrganization_InvalidGUID tests that a malformed GUID is rejected without a request.
func TestClientImpl_GetOrganization_InvalidGUID(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	client := newTestClient(t, server)

	_, err := client.GetOrganization(context.Background(), "not-a-guid")
	require.ErrorIs(t, err, ErrInvalidFilter)

	_, err = client.GetHomeManagement(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidFilter)

	assert.Zero(t, server.requestsCount())
}

// TestClientImpl_GetHouses tests the house lookup flags.
func TestClientImpl_GetHouses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		call              func(c *ClientImpl) ([]Record, error)
		expectedActual    string
		expectedDuplicate string
	}{
		{
			name: "actual",
			call: func(c *ClientImpl) ([]Record, error) {
				return c.GetActualHouses(context.Background(), testHouseCode)
			},
			expectedActual:    "true",
			expectedDuplicate: "false",
		},
		{
			name: "not actual",
			call: func(c *ClientImpl) ([]Record, error) {
				return c.GetNotActualHouses(context.Background(), testHouseCode)
			},
			expectedActual:    "false",
			expectedDuplicate: "false",
		},
		{
			name: "with duplicates",
			call: func(c *ClientImpl) ([]Record, error) {
				return c.GetHouses(context.Background(), HousesFilter{
					HouseCode:         testHouseCode,
					Actual:            true,
					IncludeDuplicates: true,
				})
			},
			expectedActual:    "true",
			expectedDuplicate: "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				query := r.URL.Query()
				assert.Equal(t, "/"+housesURI, r.URL.Path)
				assert.Equal(t, testHouseCode, query.Get("houseCodes"))
				assert.Equal(t, tt.expectedActual, query.Get("actual"))
				assert.Equal(t, tt.expectedDuplicate, query.Get("includeDuplicates"))

				writeJSON(t, w, []map[string]any{{"houseCode": testHouseCode, "actual": query.Get("actual") == "true"}})
			})
			client := newTestClient(t, server)

			houses, err := tt.call(client)
			require.NoError(t, err)
			require.Len(t, houses, 1)
			assert.Equal(t, tt.expectedActual, houses[0].String("actual"))
		})
	}
}

// TestClientImpl_GetHouses_EmptyBody tests that an empty body is an empty result.
func TestClientImpl_GetHouses_EmptyBody(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	client := newTestClient(t, server)

	houses, err := client.GetActualHouses(context.Background(), testHouseCode)
	require.NoError(t, err)
	assert.NotNil(t, houses)
	assert.Empty(t, houses)

	_, err = client.GetActualHouses(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidFilter)
}

// TestClientImpl_GetHomeManagement tests the home management lookup by GUID.
func TestClientImpl_GetHomeManagement(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/"+homeManagementURI+"/"+testHomeManagementGUID+"/" {
			w.WriteHeader(http.StatusOK)

			return
		}

		writeJSON(t, w, map[string]any{"guid": testHomeManagementGUID, "houseCount": 12})
	})
	client := newTestClient(t, server)

	homeManagement, err := client.GetHomeManagement(context.Background(), testHomeManagementGUID)
	require.NoError(t, err)
	assert.Equal(t, testHomeManagementGUID, homeManagement.GUID())
	assert.Equal(t, "12", homeManagement.String("houseCount"))

	_, err = client.GetHomeManagement(context.Background(), testOrganizationGUID)
	require.ErrorIs(t, err, ErrNotFound)
}

// TestClientImpl_RemoteServiceError tests that non-2xx statuses keep their code and body.
func TestClientImpl_RemoteServiceError(t *testing.T) {
	t.Parallel()

	longBody := strings.Repeat("x", maxErrorBodyInError*2)

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/"+housesURI {
			http.Error(w, longBody, http.StatusBadGateway)

			return
		}

		http.Error(w, "organization is unavailable", http.StatusServiceUnavailable)
	})
	client := newTestClient(t, server)

	_, err := client.GetOrganization(context.Background(), testOrganizationGUID)
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, StatusCode(err))
	assert.False(t, IsNotFound(err))

	var remoteErr *RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Contains(t, remoteErr.Body, "organization is unavailable")
	assert.Contains(t, remoteErr.URL, "organizationGuid="+testOrganizationGUID)

	_, err = client.GetActualHouses(context.Background(), testHouseCode)
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadGateway, remoteErr.StatusCode)
	assert.Len(t, remoteErr.Body, maxErrorBodyInError)
}

// TestClientImpl_DecodeError tests that malformed JSON is reported as a decode error.
func TestClientImpl_DecodeError(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": [`))
	})
	client := newTestClient(t, server)

	_, err := client.GetOrganizations(context.Background(), OrganizationsFilter{INN: testINN})

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.URL, "chooser/search")
	assert.Zero(t, StatusCode(err))
}

// TestClientImpl_ConnectivityError tests that transport failures are reported as connectivity errors.
func TestClientImpl_ConnectivityError(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	client := newTestClient(t, server)
	server.Close()

	_, err := client.GetHomeManagement(context.Background(), testHomeManagementGUID)

	var connectivityErr *ConnectivityError
	require.ErrorAs(t, err, &connectivityErr)
	assert.Equal(t, http.MethodGet, connectivityErr.Method)
	assert.NotNil(t, connectivityErr.Unwrap())
}

// TestClientImpl_ContextCancel tests that a cancelled context aborts the request.
func TestClientImpl_ContextCancel(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}

		w.WriteHeader(http.StatusOK)
	})
	client := newTestClient(t, server)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GetActualHouses(ctx, testHouseCode)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	var connectivityErr *ConnectivityError
	require.ErrorAs(t, err, &connectivityErr)
}

// TestRecord_String tests the typed accessors of Record.
func TestRecord_String(t *testing.T) {
	t.Parallel()

	record := Record{
		"guid":    testOrganizationGUID,
		"inn":     float64(7701234567),
		"rate":    1.5,
		"active":  true,
		"nothing": nil,
		"nested":  []any{"a"},
	}

	assert.Equal(t, testOrganizationGUID, record.GUID())
	assert.Equal(t, testINN, record.INN())
	assert.Equal(t, "1.5", record.String("rate"))
	assert.Equal(t, "true", record.String("active"))
	assert.Empty(t, record.String("nothing"))
	assert.Empty(t, record.String("missing"))
	assert.Equal(t, "[a]", record.String("nested"))
}
