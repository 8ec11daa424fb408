package gosuslugi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseOrganizationsFilter tests the ParseOrganizationsFilter function.
func TestParseOrganizationsFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		values        map[string]string
		expected      OrganizationsFilter
		expectedError error
	}{
		{
			name:     "inn only",
			values:   map[string]string{"inn": testINN},
			expected: OrganizationsFilter{INN: testINN},
		},
		{
			name:     "all values with spaces and case",
			values:   map[string]string{" INN ": testINN, "page": " 2 ", "items_per_page": "30"},
			expected: OrganizationsFilter{INN: testINN, Page: 2, ItemsPerPage: 30},
		},
		{
			name:          "unsupported name",
			values:        map[string]string{"inn": testINN, "kpp": "770101001"},
			expectedError: ErrUnsupportedFilter,
		},
		{
			name:          "page is not a number",
			values:        map[string]string{"inn": testINN, "page": "first"},
			expectedError: ErrInvalidFilter,
		},
		{
			name:          "missing inn",
			values:        map[string]string{"page": "1"},
			expectedError: ErrInvalidFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filter, err := ParseOrganizationsFilter(tt.values)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, filter)
		})
	}
}

// TestParseHousesFilter tests the ParseHousesFilter function.
func TestParseHousesFilter(t *testing.T) {
	t.Parallel()

	filter, err := ParseHousesFilter(map[string]string{
		"house_code":         testHouseCode,
		"actual":             "true",
		"include_duplicates": "1",
	})
	require.NoError(t, err)
	assert.Equal(t, HousesFilter{HouseCode: testHouseCode, Actual: true, IncludeDuplicates: true}, filter)

	_, err = ParseHousesFilter(map[string]string{"house_code": testHouseCode, "actual": "yes please"})
	require.ErrorIs(t, err, ErrInvalidFilter)

	_, err = ParseHousesFilter(map[string]string{"actual": "false"})
	require.ErrorIs(t, err, ErrInvalidFilter)

	_, err = ParseHousesFilter(map[string]string{"house_code": testHouseCode, "region": "77"})
	require.ErrorIs(t, err, ErrUnsupportedFilter)
	assert.Contains(t, err.Error(), "actual, house_code, include_duplicates")
}

// TestParseHomeManagementsFilter tests the ParseHomeManagementsFilter function.
func TestParseHomeManagementsFilter(t *testing.T) {
	t.Parallel()

	filter, err := ParseHomeManagementsFilter(map[string]string{
		"organization_guid": testOrganizationGUID,
		"start_page":        "3",
		"per_page":          "100",
	})
	require.NoError(t, err)
	assert.Equal(t, HomeManagementsFilter{OrganizationGUID: testOrganizationGUID, StartPage: 3, PerPage: 100}, filter)

	_, err = ParseHomeManagementsFilter(map[string]string{"organization_guid": "guid"})
	require.ErrorIs(t, err, ErrInvalidFilter)

	_, err = ParseHomeManagementsFilter(map[string]string{"organization_guid": testOrganizationGUID, "page": "2"})
	require.ErrorIs(t, err, ErrUnsupportedFilter)

	filter, err = ParseHomeManagementsFilter(nil)
	require.ErrorIs(t, err, ErrInvalidFilter)
	assert.Equal(t, HomeManagementsFilter{}, filter)
}

// TestOrganizationsFilter_withDefaults tests that zero values get defaults and explicit values stay.
func TestOrganizationsFilter_withDefaults(t *testing.T) {
	t.Parallel()

	filter := OrganizationsFilter{INN: " " + testINN}.withDefaults(11)
	assert.Equal(t, OrganizationsFilter{INN: testINN, Page: 1, ItemsPerPage: 11}, filter)

	filter = OrganizationsFilter{INN: testINN, Page: 4, ItemsPerPage: 7}.withDefaults(11)
	assert.Equal(t, OrganizationsFilter{INN: testINN, Page: 4, ItemsPerPage: 7}, filter)
}

// TestHomeManagementsFilter_withDefaults tests that zero values get defaults and explicit values stay.
func TestHomeManagementsFilter_withDefaults(t *testing.T) {
	t.Parallel()

	filter := HomeManagementsFilter{OrganizationGUID: testOrganizationGUID + " "}.withDefaults(50)
	assert.Equal(t, HomeManagementsFilter{OrganizationGUID: testOrganizationGUID, StartPage: 1, PerPage: 50}, filter)
}
